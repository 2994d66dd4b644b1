// Package errors defines the typed errors raised by the webtest harness.
//
// The harness is fatal-by-default: panicking accessors panic with a
// *HarnessError, and the Try* escape hatches return the same typed error so
// callers can assert on the failure mode via the machine-readable code.
package errors
