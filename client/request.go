package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"golang.org/x/net/http/httpguts"

	"github.com/skillsenselab/webtest/errors"
	"github.com/skillsenselab/webtest/logger"
	"github.com/skillsenselab/webtest/version"
)

// RequestBuilder accumulates a single request. Builders are single-use:
// Send (or TrySend) consumes the builder.
type RequestBuilder struct {
	client      *TestClient
	method      string
	path        string
	header      http.Header
	query       url.Values
	body        io.Reader
	contentType string
	ctx         context.Context
	sent        bool
}

func (tc *TestClient) newRequest(method, path string) *RequestBuilder {
	return &RequestBuilder{
		client: tc,
		method: method,
		path:   path,
		header: make(http.Header),
		query:  make(url.Values),
		ctx:    context.Background(),
	}
}

// Body attaches a raw request body. Accepts io.Reader, []byte, or string;
// any other type is a fatal error.
func (rb *RequestBuilder) Body(body any) *RequestBuilder {
	switch v := body.(type) {
	case io.Reader:
		rb.body = v
	case []byte:
		rb.body = bytes.NewReader(v)
	case string:
		rb.body = strings.NewReader(v)
	default:
		rb.client.fatalf(errors.EncodeFailed("raw", fmt.Errorf("unsupported body type %T", body)))
	}
	return rb
}

// JSON attaches a JSON-encoded request body and sets the content type.
func (rb *RequestBuilder) JSON(v any) *RequestBuilder {
	data, err := json.Marshal(v)
	if err != nil {
		rb.client.fatalf(errors.EncodeFailed("json", err))
		return rb
	}
	rb.body = bytes.NewReader(data)
	rb.contentType = "application/json"
	return rb
}

// Form attaches a URL-form-encoded request body and sets the content type.
func (rb *RequestBuilder) Form(fields map[string]string) *RequestBuilder {
	form := make(url.Values, len(fields))
	for k, v := range fields {
		form.Set(k, v)
	}
	rb.body = strings.NewReader(form.Encode())
	rb.contentType = "application/x-www-form-urlencoded"
	return rb
}

// Multipart attaches a multipart/form-data request body.
func (rb *RequestBuilder) Multipart(form *MultipartBody) *RequestBuilder {
	body, contentType, err := form.encode()
	if err != nil {
		rb.client.fatalf(errors.EncodeFailed("multipart", err))
		return rb
	}
	rb.body = body
	rb.contentType = contentType
	return rb
}

// Header adds a header to the request. Malformed header names or values are
// a fatal error at call time.
func (rb *RequestBuilder) Header(key, value string) *RequestBuilder {
	if !httpguts.ValidHeaderFieldName(key) || !httpguts.ValidHeaderFieldValue(value) {
		rb.client.fatalf(errors.InvalidHeader(key, value))
		return rb
	}
	rb.header.Add(key, value)
	return rb
}

// Query adds a query parameter to the request URL.
func (rb *RequestBuilder) Query(key, value string) *RequestBuilder {
	rb.query.Add(key, value)
	return rb
}

// Context sets the context for the request. Defaults to context.Background.
func (rb *RequestBuilder) Context(ctx context.Context) *RequestBuilder {
	rb.ctx = ctx
	return rb
}

// Send issues the request and blocks until the response arrives. Transport
// failure is fatal. The builder must not be reused afterwards.
func (rb *RequestBuilder) Send() *TestResponse {
	if rb.client.t != nil {
		rb.client.t.Helper()
	}
	res, err := rb.TrySend()
	if err != nil {
		rb.client.fatalf(err)
	}
	return res
}

// TrySend issues the request and returns the transport error, if any, instead
// of aborting the test.
func (rb *RequestBuilder) TrySend() (*TestResponse, error) {
	if rb.sent {
		panic("webtest: request builder is single-use")
	}
	rb.sent = true

	fullURL := rb.client.BaseURL() + rb.path
	req, err := http.NewRequestWithContext(rb.ctx, rb.method, fullURL, rb.body)
	if err != nil {
		return nil, errors.TransportFailed(rb.method, fullURL, err)
	}

	if len(rb.query) > 0 {
		q := req.URL.Query()
		for k, vs := range rb.query {
			for _, v := range vs {
				q.Add(k, v)
			}
		}
		req.URL.RawQuery = q.Encode()
	}

	req.Header.Set("User-Agent", version.UserAgent())
	for k, v := range rb.client.config.BaseHeaders {
		req.Header.Set(k, v)
	}
	for k, vs := range rb.header {
		req.Header[k] = vs
	}
	if rb.contentType != "" && req.Header.Get("Content-Type") == "" {
		req.Header.Set("Content-Type", rb.contentType)
	}

	rb.client.log.Debug("Sending request", map[string]interface{}{
		logger.FieldMethod: rb.method,
		logger.FieldPath:   rb.path,
	})

	resp, err := rb.client.httpClient.Do(req)
	if err != nil {
		return nil, errors.TransportFailed(rb.method, fullURL, err)
	}

	return &TestResponse{client: rb.client, resp: resp}, nil
}
