package models

import "errors"

// Error kinds shared by repositories, services and controllers. Wrap them with %w.
var (
	ErrNotFound             = errors.New("not found")
	ErrConflict             = errors.New("conflict")
	ErrStoreUnavailable     = errors.New("store unavailable")
	ErrInvalidConfiguration = errors.New("invalid configuration")
	ErrInvalidRequest       = errors.New("invalid request")
	ErrPartialClear         = errors.New("basket only partially cleared")
)
