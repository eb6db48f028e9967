package app

const (
	// MsgSomethingWentWrong is the only body text a caller ever sees for an
	// internal failure.
	MsgSomethingWentWrong = "Something went wrong. We're on it."

	// MsgNotFound is returned for unmatched paths and methods.
	MsgNotFound = "Not Found"

	// MsgGreeting is the message served on the root path.
	MsgGreeting = "be-api: calm + humane /"
)

const (
	// EventUnhandledError tags the log line written by the terminal error
	// handler.
	EventUnhandledError = "unhandled_error"

	// EventBuildInfo tags the startup line carrying build metadata.
	EventBuildInfo = "build info"

	// EventListening is logged once the listening socket is bound.
	EventListening = "API listening"

	// EventRequestCompleted tags the access line written for every request.
	EventRequestCompleted = "request completed"
)

// Docs lists the paths advertised on the root endpoint.
var Docs = []string{"/healthz", "/ping"}
