package formschema

import "errors"

var (
	// ErrInvalidDefinition is returned when a form definition cannot be parsed or is malformed.
	ErrInvalidDefinition = errors.New("invalid form definition")

	// ErrUnknownValidator is returned when a definition names a validator that is not registered.
	ErrUnknownValidator = errors.New("unknown validator")

	// ErrInvalidArgs is returned when validator arguments do not match what the factory expects.
	ErrInvalidArgs = errors.New("invalid validator arguments")

	// ErrInvalidValues is returned when a values document is not a mapping.
	ErrInvalidValues = errors.New("values document must be a mapping")
)
