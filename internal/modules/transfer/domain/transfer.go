package domain

import (
	"encoding/json"
	"fmt"
	"strings"

	apperrors "focusdesk/internal/platform/errors"
)

type Direction string

const (
	Export Direction = "export"
	Import Direction = "import"
)

type Request struct {
	Direction Direction
	Type      string
	Path      string
}

// Validate rejects a missing type as an unknown type. A missing import source
// is a file that does not exist; a missing export destination is invalid input.
func (r Request) Validate() error {
	if r.Type == "" {
		return fmt.Errorf("%w: data type is required", apperrors.ErrUnknownType)
	}
	if strings.TrimSpace(r.Path) == "" {
		if r.Direction == Import {
			return fmt.Errorf("%w: import path is empty", apperrors.ErrNotFound)
		}
		return fmt.Errorf("%w: %s path is required", apperrors.ErrInvalidInput, r.Direction)
	}
	return nil
}

// ValidatePayload only checks JSON syntax; document shape is the UI's concern.
func ValidatePayload(raw []byte, source string) error {
	if !json.Valid(raw) {
		return fmt.Errorf("%w: %s is not valid JSON", apperrors.ErrValidation, source)
	}
	return nil
}
