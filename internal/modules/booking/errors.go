package booking

import "errors"

var (
	ErrValidation        = errors.New("validation error")
	ErrInvalidStatus     = errors.New("invalid booking status")
	ErrNotFound          = errors.New("booking not found")
	ErrReferenceNotFound = errors.New("member or class not found")
	ErrStorage           = errors.New("storage error")
)
