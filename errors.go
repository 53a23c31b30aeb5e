package qsynth

import "errors"

var (
	// ErrInvalidInput is returned when the supplied matrix is not a 2x2
	// unitary within tolerance. No partial decomposition is produced.
	ErrInvalidInput = errors.New("input must be a 2x2 unitary matrix")

	// ErrUnsupportedMethod is returned when a decomposition method other
	// than "zyz" or "zxz" is requested.
	ErrUnsupportedMethod = errors.New("unsupported decomposition method")
)
