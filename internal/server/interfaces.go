package server

// Server is one listener run by the course-auth process: the HTTP API or the
// gRPC health endpoint. RunServer blocks until a termination signal arrives
// or a listener fails, and Shutdown closes the listeners, waiting for
// in-flight requests.
type Server interface {
	RunServer()
	Shutdown()
}
