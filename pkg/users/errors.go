package users

import "errors"

var (
	// ErrInvalidShape is returned when a configuration section is neither a
	// current-shape entry list nor a legacy-shape map
	ErrInvalidShape = errors.New("invalid config shape")

	// ErrProfileNotFound is returned when a profile document does not exist
	ErrProfileNotFound = errors.New("profile not found")
)
