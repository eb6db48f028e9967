package models

// Health is the body of the liveness probe.
type Health struct {
	OK bool `json:"ok"`
}

// Pong is the body of the timestamped liveness probe.
type Pong struct {
	Pong bool `json:"pong"`

	// At is the handling time in ISO-8601 UTC with millisecond precision
	// (see [ISO8601Millis]).
	At string `json:"at"`
}

// RootInfo is the body served on the root path. Docs lists the paths a
// caller can probe.
type RootInfo struct {
	Message string   `json:"message"`
	Docs    []string `json:"docs"`
}

// ErrorResponse is the body of every non-2xx JSON response. It never carries
// internal error details.
type ErrorResponse struct {
	Error string `json:"error"`
}

// ISO8601Millis is the layout used for timestamps in response bodies,
// e.g. "2026-10-16T09:30:00.123Z".
const ISO8601Millis = "2006-01-02T15:04:05.000Z07:00"
