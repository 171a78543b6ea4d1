package meme

import (
	"errors"
	"fmt"
)

// Sentinel errors for the meme package.
var (
	// ErrNotLoaded is returned when a session is exported before its base
	// image has been attached.
	ErrNotLoaded = errors.New("meme: base image not loaded")

	// ErrAlreadyLoaded is returned when a base image is attached to a
	// session that already has one.
	ErrAlreadyLoaded = errors.New("meme: base image already loaded")

	// ErrBaseImage is returned when the base image cannot be read or decoded.
	ErrBaseImage = errors.New("meme: cannot load base image")

	// ErrEmptyBase is returned when the base image has zero width or height.
	ErrEmptyBase = errors.New("meme: base image is empty")

	// ErrFont is returned when font data cannot be read or parsed.
	ErrFont = errors.New("meme: cannot load font")
)

// SlotError is returned by ParseSlot for an unknown slot name.
type SlotError struct {
	Name string
}

func (e *SlotError) Error() string {
	return fmt.Sprintf("meme: unknown slot %q", e.Name)
}
