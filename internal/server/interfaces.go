package server

import "context"

// Server defines the lifecycle contract for the transport server managed by
// this package.
//
// Implementations block in [Server.RunServer] until shutdown is requested and
// release resources in [Server.Shutdown].
type Server interface {
	// RunServer binds, starts serving requests and blocks until ctx is done
	// or a termination signal arrives. A bind failure is returned
	// immediately.
	RunServer(ctx context.Context) error

	// Shutdown gracefully stops the server, waiting for in-flight requests
	// until ctx expires.
	Shutdown(ctx context.Context) error
}
