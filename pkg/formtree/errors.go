package formtree

import "errors"

var (
	// ErrInvalidNodeKind is returned when a traversal meets a node whose kind is
	// unknown or does not match the capabilities it implements.
	ErrInvalidNodeKind = errors.New("invalid node kind")

	// ErrInvalidState is returned for state names outside touched|untouched|dirty|pristine|pending.
	ErrInvalidState = errors.New("invalid mark state")

	// ErrAlreadyAttached is returned when a node that already has a parent is added elsewhere.
	ErrAlreadyAttached = errors.New("node is already attached to a parent")

	// ErrDuplicateKey is returned when a group key is added twice.
	ErrDuplicateKey = errors.New("duplicate group key")

	// ErrNotFound is returned when a path does not address a node.
	ErrNotFound = errors.New("node not found")

	// ErrIndexOutOfRange is returned for array positions outside [0, Len()].
	ErrIndexOutOfRange = errors.New("index out of range")

	// ErrInvalidMetadata is returned when metadata is not a mapping.
	ErrInvalidMetadata = errors.New("metadata must be a mapping")

	// ErrDecode is returned when a node value cannot be decoded into the target.
	ErrDecode = errors.New("failed to decode node value")
)
