// Package logger provides zerolog-backed structured logging for webtest.
//
// The harness logs its lifecycle (listener bind, serve errors, shutdown) and
// per-request activity through this package. Tests usually run with the
// default "error" level so passing runs stay quiet; set WEBTEST_LOG_LEVEL=debug
// to see every request the harness issues.
package logger
