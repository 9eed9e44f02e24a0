package formpath

import "errors"

var (
	// ErrInvalidPath is returned when a path string does not follow the key/index grammar.
	ErrInvalidPath = errors.New("invalid path")

	// ErrNotContainer is returned by Set when an intermediate value cannot hold children.
	ErrNotContainer = errors.New("value at path is not a container")
)
