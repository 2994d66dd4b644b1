// Package config loads optional harness-wide defaults for webtest.
//
// The harness works with zero configuration; this package only supplies
// defaults that individual TestClient options can still override. Settings
// come from, in precedence order: WEBTEST_* environment variables, an
// optional .env file, and an optional webtest.yml in the working directory.
//
//	WEBTEST_LOG_LEVEL=debug go test ./...
package config
