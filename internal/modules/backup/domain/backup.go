package domain

import (
	"fmt"
	"strings"
	"time"

	apperrors "focusdesk/internal/platform/errors"
)

// TimestampLayout is the local-time suffix appended to every backup folder.
const TimestampLayout = "20060102_150405"

type Backup struct {
	Name      string
	Stamp     string
	Folder    string
	CreatedAt time.Time
	Documents []string
}

func ValidateBaseName(base string) error {
	if strings.TrimSpace(base) == "" {
		return fmt.Errorf("%w: backup name is required", apperrors.ErrInvalidInput)
	}
	if strings.ContainsAny(base, `/\`) || base == "." || base == ".." {
		return fmt.Errorf("%w: backup name %q must not contain path separators", apperrors.ErrInvalidInput, base)
	}
	return nil
}

func FolderName(base string, at time.Time) string {
	return base + "_" + at.Format(TimestampLayout)
}

// ParseFolderName splits "<base>_<YYYYMMDD_HHMMSS>" back into its parts.
func ParseFolderName(folder string) (string, time.Time, bool) {
	n := len(TimestampLayout)
	if len(folder) < n+2 || folder[len(folder)-n-1] != '_' {
		return "", time.Time{}, false
	}
	stamp := folder[len(folder)-n:]
	at, err := time.ParseInLocation(TimestampLayout, stamp, time.Local)
	if err != nil {
		return "", time.Time{}, false
	}
	return folder[:len(folder)-n-1], at, true
}
