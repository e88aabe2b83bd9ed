// Package common defines shared constants and sentinel errors used across
// toneflow components. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrNotFound = errors.New("not found")

	// Input was blank or no session is active. No network call was made.
	ErrValidation = errors.New("validation error")

	// The model service call failed or returned an unexpected shape.
	ErrService = errors.New("service error")

	// A platform capability (dictation, clipboard, player) is unavailable.
	ErrUnsupportedCapability = errors.New("unsupported capability")

	// Stored JSON could not be parsed. Treated as empty state.
	ErrPersistenceCorruption = errors.New("persistence corruption")

	// Duplicate signup or non-matching login.
	ErrCredential = errors.New("credential error")

	// The feature already has a request in flight.
	ErrBusy = errors.New("operation already in progress")

	// A dropped file is not plain text.
	ErrUnsupportedFile = errors.New("unsupported file")
)
