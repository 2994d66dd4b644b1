// Package version reports the webtest build version, used in the default
// User-Agent of every test client.
package version
