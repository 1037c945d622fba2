package server

import "context"

// Server defines the lifecycle contract for the transport server managed by
// this package.
type Server interface {
	// RunServer serves requests until SIGTERM, SIGINT or SIGQUIT arrives and
	// then shuts down gracefully.
	RunServer()

	// Run serves requests until ctx is cancelled or the listener fails.
	Run(ctx context.Context) error

	// Shutdown gracefully stops the server and frees associated resources.
	Shutdown()
}
