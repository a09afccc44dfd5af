package apperrors

import "errors"

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("not found")
	ErrIO           = errors.New("io error")
	ErrUnknownType  = errors.New("unknown document type")
	ErrValidation   = errors.New("validation failed")
	ErrWindow       = errors.New("window unavailable")
)
