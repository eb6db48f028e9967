// Package server wires and runs the application's HTTP server.
//
// It owns the server lifecycle: binding the listening socket, serving,
// reacting to termination signals and shutting down gracefully within the
// configured deadline.
package server
