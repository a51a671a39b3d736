// Package common defines shared sentinel errors used across the tracker
// layers. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrNotFound = errors.New("not found")
	ErrStorage  = errors.New("storage error")

	// Validation errors (empty required field, non-positive cost, bad number).
	ErrValidation = errors.New("validation error")

	// Import errors. ErrFormat means the payload itself is not usable
	// (not JSON, no armors array); ErrField means an individual entry
	// is missing a required field. Both abort the whole import.
	ErrFormat = errors.New("invalid payload format")
	ErrField  = errors.New("missing required field")

	// Profile lifecycle errors.
	ErrLastProfile = errors.New("cannot delete the last profile")
)
