package server

import "context"

// Server is the lifecycle of the transport server. RunServer blocks until
// SIGTERM, SIGINT or SIGQUIT and shuts down gracefully.
type Server interface {
	RunServer()
	Shutdown()
}

// Background is work that runs for the lifetime of the server, such as the
// scheduled sync jobs. Run must return once ctx is cancelled.
type Background interface {
	Run(ctx context.Context)
}
