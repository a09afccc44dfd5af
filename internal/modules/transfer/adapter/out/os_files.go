package out

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	transferout "focusdesk/internal/modules/transfer/port/out"
	apperrors "focusdesk/internal/platform/errors"
)

type OSFiles struct{}

func NewOSFiles() transferout.ExternalFiles {
	return &OSFiles{}
}

func (f *OSFiles) ReadFile(_ context.Context, path string) ([]byte, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", apperrors.ErrNotFound, path)
		}
		return nil, fmt.Errorf("%w: read %s: %w", apperrors.ErrIO, path, err)
	}
	return raw, nil
}

func (f *OSFiles) CopyFile(_ context.Context, src, dst string) (int, error) {
	in, err := os.Open(src)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return 0, fmt.Errorf("%w: %s", apperrors.ErrNotFound, src)
		}
		return 0, fmt.Errorf("%w: open %s: %w", apperrors.ErrIO, src, err)
	}
	defer in.Close()

	if err := rejectSameFile(in, dst); err != nil {
		return 0, err
	}
	out, err := os.OpenFile(dst, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return 0, fmt.Errorf("%w: create %s: %w", apperrors.ErrIO, dst, err)
	}
	n, err := io.Copy(out, in)
	if err != nil {
		_ = out.Close()
		return 0, fmt.Errorf("%w: copy to %s: %w", apperrors.ErrIO, dst, err)
	}
	if err := out.Close(); err != nil {
		return 0, fmt.Errorf("%w: close %s: %w", apperrors.ErrIO, dst, err)
	}
	return int(n), nil
}

// rejectSameFile stops a copy onto its own source, which O_TRUNC would empty
// before anything is read.
func rejectSameFile(src *os.File, dst string) error {
	dstInfo, err := os.Stat(dst)
	if err != nil {
		return nil
	}
	srcInfo, err := src.Stat()
	if err != nil {
		return fmt.Errorf("%w: stat %s: %w", apperrors.ErrIO, src.Name(), err)
	}
	if os.SameFile(srcInfo, dstInfo) {
		return fmt.Errorf("%w: %s is the stored document itself", apperrors.ErrInvalidInput, dst)
	}
	return nil
}
