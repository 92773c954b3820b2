package types

import "errors"

var (
	// ErrInvalidKey indicates a key that is not a scalar (string, integer,
	// float or bool).
	ErrInvalidKey = errors.New("cache: invalid key")

	// ErrInvalidCollection indicates a bulk-operation argument that is not a
	// sequence of keys or of key-value pairs.
	ErrInvalidCollection = errors.New("cache: invalid collection")
)
