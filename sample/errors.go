package sample

import "errors"

var (
	// ErrRadius indicates a non-positive or non-finite spacing radius.
	ErrRadius = errors.New("sample: radius must be finite and positive")

	// ErrBounds indicates a rectangle with no interior.
	ErrBounds = errors.New("sample: bounds have no interior")

	// ErrOption indicates an invalid Option value.
	ErrOption = errors.New("sample: invalid option supplied")
)
