package adapter

import "errors"

var (
	ErrNotFound            = errors.New("resource not found")
	ErrInternalServerError = errors.New("internal server error")
	ErrServiceUnavailable  = errors.New("service unavailable")

	// ErrUnhealthy is returned when the instance answered 200 but the payload
	// does not report it as alive.
	ErrUnhealthy = errors.New("instance reported unhealthy")
)
