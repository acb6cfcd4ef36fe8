// Package common contains shared constants and sentinel errors used across
// the LocalAddons client and server components. Callers should use errors.Is
// to match these values.
package common

import "errors"

var (
	// Transport-level errors.
	ErrServerUnavailable = errors.New("server unavailable")
	ErrUnauthorized      = errors.New("unauthorized")
	ErrNotFound          = errors.New("not found")

	// Auth errors.
	ErrAuthRequired = errors.New("authentication required")

	// Cart domain errors. Raised instead of matching on backend message
	// strings so callers can dispatch with errors.Is.
	ErrEnrollmentClosed    = errors.New("enrollment for this course is closed")
	ErrEnrollmentNotActive = errors.New("enrollment is not active")

	// Registration errors.
	ErrAlreadyRegistered = errors.New("already registered for this workshop")
	ErrInvalidInput      = errors.New("invalid input data")
)
