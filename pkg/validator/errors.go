package validator

import "errors"

var (
	// ErrInvalidPattern is returned when a custom pattern does not compile.
	ErrInvalidPattern = errors.New("invalid validation pattern")

	// ErrValidationFailed is the error text of an empty ValidationErrors.
	ErrValidationFailed = errors.New("validation failed")
)
