package server

// Server is the lifecycle returned by NewServer.
type Server interface {
	// RunServer serves until SIGINT, SIGTERM or SIGQUIT, then shuts down
	// gracefully. It also returns if the listener fails.
	RunServer()

	// Shutdown stops accepting connections and waits for in-flight requests.
	Shutdown()
}
