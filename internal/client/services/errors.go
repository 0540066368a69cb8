package services

import "errors"

var (
	// ErrValidation marks input rejected before any network call.
	ErrValidation = errors.New("validation failed")
	// ErrUnauthenticated is returned when an operation needs a session and
	// none is stored.
	ErrUnauthenticated = errors.New("not logged in")
	// ErrInFlight is returned when the same operation is already running.
	ErrInFlight = errors.New("operation already in progress")
)
