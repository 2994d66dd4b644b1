// Package component defines the lifecycle interface shared by webtest's
// managed pieces, so test helpers can start, stop, and health-check them
// uniformly.
package component
