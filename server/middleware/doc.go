// Package middleware provides the Gin middleware stack for the webtest
// server: panic recovery, request-ID injection, and request logging.
package middleware
