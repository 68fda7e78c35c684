package domain

import "errors"

var (
	// ErrInvalidInput indicates a negative or non-finite monetary value.
	ErrInvalidInput = errors.New("invalid input")
	// ErrInvalidDeadline indicates a deadline resolving to less than one month.
	ErrInvalidDeadline = errors.New("invalid deadline")
)
