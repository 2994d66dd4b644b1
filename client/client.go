package client

import (
	"context"
	"net/http"
	"net/http/cookiejar"
	"testing"

	"github.com/skillsenselab/webtest/errors"
	"github.com/skillsenselab/webtest/logger"
	"github.com/skillsenselab/webtest/server"
)

// TestClient issues requests against an application handler served on an
// ephemeral 127.0.0.1 port. Create one per test with New.
type TestClient struct {
	t          testing.TB
	httpClient *http.Client
	srv        *server.Server
	log        *logger.Logger
	config     Config
}

// New starts handler on an ephemeral port and returns a client bound to it.
// The server is stopped automatically when the test ends. Failures during
// construction are fatal.
func New(t testing.TB, handler http.Handler, opts ...Option) *TestClient {
	t.Helper()

	tc, err := NewWithConfig(handler, buildConfig(opts))
	if err != nil {
		t.Fatalf("webtest: %v", err)
	}
	tc.t = t
	t.Cleanup(tc.Close)
	return tc
}

// NewWithConfig starts handler on an ephemeral port without a testing.TB
// attached. The caller owns the client's lifetime and must call Close; every
// fatal path panics with a typed error instead of failing a test.
func NewWithConfig(handler http.Handler, cfg Config) (*TestClient, error) {
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	log := logger.WithComponent("client")

	srv := server.NewWithHandler(cfg.Server, logger.GetGlobalLogger(), handler)
	if err := srv.Start(context.Background()); err != nil {
		return nil, err
	}

	httpClient := &http.Client{
		Timeout: cfg.Timeout,
		// Redirects are returned as-is so tests can assert on 3xx
		// responses and Location headers.
		CheckRedirect: func(_ *http.Request, _ []*http.Request) error {
			return http.ErrUseLastResponse
		},
	}
	if cfg.CookieJar {
		jar, err := cookiejar.New(nil)
		if err != nil {
			return nil, errors.New(errors.ErrCodeBindFailed, "failed to create cookie jar").WithCause(err)
		}
		httpClient.Jar = jar
	}

	log.Debug("Test client ready", map[string]interface{}{
		logger.FieldAddr: srv.Addr().String(),
		"cookie_jar":     cfg.CookieJar,
	})

	return &TestClient{
		httpClient: httpClient,
		srv:        srv,
		log:        log,
		config:     cfg,
	}, nil
}

func buildConfig(opts []Option) Config {
	defaults := loadDefaults()
	cfg := Config{
		Timeout:   defaults.Client.Timeout,
		CookieJar: defaults.Client.CookieJar,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// BaseURL returns "http://<resolved-ip>:<resolved-port>" for this client.
// Useful when checking that Location headers carry absolute URLs.
func (tc *TestClient) BaseURL() string {
	return tc.srv.BaseURL()
}

// Server returns the underlying test server.
func (tc *TestClient) Server() *server.Server {
	return tc.srv
}

// Unwrap returns the underlying *http.Client for less convenient but more
// complete access.
func (tc *TestClient) Unwrap() *http.Client {
	return tc.httpClient
}

// Close stops the background server. Redundant when the client was created
// with New, which registers Close with the test's cleanup.
func (tc *TestClient) Close() {
	if err := tc.srv.Stop(context.Background()); err != nil {
		tc.log.WithError(err).Error("Failed to stop test server")
	}
}

// Get starts a GET request for path.
func (tc *TestClient) Get(path string) *RequestBuilder {
	return tc.newRequest(http.MethodGet, path)
}

// Head starts a HEAD request for path.
func (tc *TestClient) Head(path string) *RequestBuilder {
	return tc.newRequest(http.MethodHead, path)
}

// Post starts a POST request for path.
func (tc *TestClient) Post(path string) *RequestBuilder {
	return tc.newRequest(http.MethodPost, path)
}

// Put starts a PUT request for path.
func (tc *TestClient) Put(path string) *RequestBuilder {
	return tc.newRequest(http.MethodPut, path)
}

// Patch starts a PATCH request for path.
func (tc *TestClient) Patch(path string) *RequestBuilder {
	return tc.newRequest(http.MethodPatch, path)
}

// Delete starts a DELETE request for path.
func (tc *TestClient) Delete(path string) *RequestBuilder {
	return tc.newRequest(http.MethodDelete, path)
}

// fatalf aborts the calling test, or panics with err when no testing.TB is
// attached.
func (tc *TestClient) fatalf(err error) {
	if tc.t != nil {
		tc.t.Helper()
		tc.t.Fatalf("webtest: %v", err)
	}
	panic(err)
}
