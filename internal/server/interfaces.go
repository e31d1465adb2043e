package server

import "context"

// Server defines the lifecycle contract of the render API server.
type Server interface {
	// RunServer starts serving and blocks until SIGTERM, SIGINT or SIGQUIT
	// is received and the server has shut down. A listener or serve failure
	// is returned to the caller.
	RunServer() error

	// Run serves until ctx is done, then shuts down gracefully. It returns
	// early with an error if the listener cannot be opened.
	Run(ctx context.Context) error

	// Shutdown gracefully stops the server.
	Shutdown()
}
