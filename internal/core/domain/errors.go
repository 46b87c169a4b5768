package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnknownSetting indicates a settings key that utilkit does not recognise.
	ErrUnknownSetting = errors.New("unknown setting")
)
