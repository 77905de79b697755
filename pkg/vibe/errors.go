package vibe

import "errors"

var (
	// ErrInvalidAxis is returned when an axis outside the known set is used.
	ErrInvalidAxis = errors.New("unknown aesthetic axis")

	// ErrInvalidRange is returned when a target range violates the 1–10
	// scale or has min greater than max.
	ErrInvalidRange = errors.New("invalid target range")
)
