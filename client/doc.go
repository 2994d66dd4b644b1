// Package client provides a fluent test client for exercising an HTTP
// handler over a real ephemeral socket.
//
// New starts the handler on 127.0.0.1 with an OS-assigned port and returns a
// TestClient whose lifetime is tied to the test. Requests are built with
// chainable verb methods and sent synchronously; responses expose panicking
// convenience accessors so assertions read as one-liners:
//
//	func TestHello(t *testing.T) {
//	    engine := gin.New()
//	    engine.GET("/hello", func(c *gin.Context) { c.String(200, "world") })
//
//	    tc := client.New(t, engine)
//	    res := tc.Get("/hello").Send()
//	    if res.Status() != 200 || res.Text() != "world" {
//	        t.Fatalf("unexpected response")
//	    }
//	}
//
// Failures are fatal by default: with a testing.TB attached they call Fatalf,
// otherwise they panic with a typed *errors.HarnessError. The Try* variants
// return the error instead for tests that assert on failure modes.
//
// Redirects are never followed, so 3xx responses and their Location headers
// can be asserted on directly. Cookie persistence across requests is off by
// default and enabled per client with WithCookieJar.
package client
