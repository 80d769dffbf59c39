package libset

import "errors"

// Sentinel errors reported by the store. They are always wrapped with
// context; test for them with errors.Is.
var (
	// ErrNotFound is returned when the item for a key does not exist.
	ErrNotFound = errors.New("item not found")

	// ErrInvalidName is returned when an application name, scope or item key
	// is empty or not a single filesystem-safe path segment.
	ErrInvalidName = errors.New("invalid name")

	// ErrInvalidVersion is returned when the store version is zero.
	ErrInvalidVersion = errors.New("invalid version")

	// ErrNoConfigDir is returned when the OS configuration root cannot be
	// resolved.
	ErrNoConfigDir = errors.New("config directory not found")

	// ErrUnknownFormat is returned when no codec is registered for the
	// requested format.
	ErrUnknownFormat = errors.New("unknown format")
)
