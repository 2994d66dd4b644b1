// Package server starts an in-process HTTP server on an ephemeral local port
// for integration tests.
//
// Start binds the listener synchronously, so the resolved address is known as
// soon as Start returns; serving continues on a background goroutine until
// Stop. The server fronts a Gin engine mounted on a ServeMux so arbitrary
// http.Handler values can be mounted beside Gin routes, and can optionally
// speak HTTP/2 cleartext (h2c).
package server
