package domain_test

import (
	"errors"
	"testing"
	"time"

	"focusdesk/internal/modules/backup/domain"
	apperrors "focusdesk/internal/platform/errors"
)

func TestFolderNameRoundTrip(t *testing.T) {
	t.Parallel()
	at := time.Date(2024, 3, 9, 7, 5, 1, 0, time.Local)
	folder := domain.FolderName("daily_notes", at)
	if folder != "daily_notes_20240309_070501" {
		t.Fatalf("unexpected folder %s", folder)
	}
	base, parsed, ok := domain.ParseFolderName(folder)
	if !ok || base != "daily_notes" || !parsed.Equal(at) {
		t.Fatalf("parse failed: %q %v %t", base, parsed, ok)
	}
	if _, _, ok := domain.ParseFolderName("catalog.db"); ok {
		t.Fatalf("expected non-backup name to be rejected")
	}
}

func TestValidateBaseName(t *testing.T) {
	t.Parallel()
	for _, bad := range []string{"", "  ", "a/b", `a\b`, ".."} {
		if err := domain.ValidateBaseName(bad); !errors.Is(err, apperrors.ErrInvalidInput) {
			t.Fatalf("%q: expected invalid input, got %v", bad, err)
		}
	}
	if err := domain.ValidateBaseName("daily"); err != nil {
		t.Fatalf("daily: %v", err)
	}
}
