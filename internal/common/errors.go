// Package common defines shared constants and sentinel errors used across
// the layers of the TravelPath backend. Callers should use errors.Is to
// match these values.
package common

import "errors"

var (
	// Repository / storage lookup errors.
	ErrorNotFound = errors.New("not found")

	// ErrorValidation marks bad input (size, content type, missing fields).
	// Reported to the caller, never retried.
	ErrorValidation = errors.New("validation error")

	// ErrorStorage marks an object storage backend failure. Propagated per
	// item, never retried internally: puts are idempotent by
	// content-addressed key, so retry policy belongs to the caller.
	ErrorStorage = errors.New("storage backend error")

	// ErrorInsufficientCandidates is returned by the planner when the
	// filtered candidate pool cannot produce a viable itinerary.
	ErrorInsufficientCandidates = errors.New("insufficient candidates")

	// Auth errors.
	ErrorUnauthorized = errors.New("unauthorized")
	ErrInvalidToken   = errors.New("invalid token")
	ErrTokenExpired   = errors.New("token expired")

	// Generic internal flow control.
	ErrorInternal = errors.New("internal error")
)
