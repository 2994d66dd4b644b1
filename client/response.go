package client

import (
	"encoding/json"
	"io"
	"net/http"
	"unicode/utf8"

	"github.com/skillsenselab/webtest/client/sse"
	"github.com/skillsenselab/webtest/errors"
)

// chunkSize bounds a single Chunk read.
const chunkSize = 32 * 1024

// TestResponse wraps a completed HTTP response with panicking convenience
// accessors. Status and headers can be read repeatedly; the whole-body
// accessors (Text, Bytes, JSON) consume the body and may be called once.
// Chunk and ChunkText read the body incrementally instead.
type TestResponse struct {
	client   *TestClient
	resp     *http.Response
	consumed bool
}

// Status returns the numeric HTTP status code.
func (tr *TestResponse) Status() int {
	return tr.resp.StatusCode
}

// Header returns the full response header collection.
func (tr *TestResponse) Header() http.Header {
	return tr.resp.Header
}

// Text reads the whole body as UTF-8 text. Non-UTF-8 content is fatal.
func (tr *TestResponse) Text() string {
	if tr.client.t != nil {
		tr.client.t.Helper()
	}
	s, err := tr.TryText()
	if err != nil {
		tr.client.fatalf(err)
	}
	return s
}

// TryText is Text with an error return instead of aborting the test.
func (tr *TestResponse) TryText() (string, error) {
	data, err := tr.TryBytes()
	if err != nil {
		return "", err
	}
	if !utf8.Valid(data) {
		return "", errors.DecodeFailed("utf-8 text", nil)
	}
	return string(data), nil
}

// Bytes reads the whole body as raw bytes.
func (tr *TestResponse) Bytes() []byte {
	if tr.client.t != nil {
		tr.client.t.Helper()
	}
	data, err := tr.TryBytes()
	if err != nil {
		tr.client.fatalf(err)
	}
	return data
}

// TryBytes is Bytes with an error return instead of aborting the test.
func (tr *TestResponse) TryBytes() ([]byte, error) {
	if err := tr.consume(); err != nil {
		return nil, err
	}
	data, err := io.ReadAll(tr.resp.Body)
	tr.resp.Body.Close()
	if err != nil {
		return nil, errors.DecodeFailed("bytes", err)
	}
	return data, nil
}

// JSON decodes the whole body into v. Malformed JSON is fatal.
func (tr *TestResponse) JSON(v any) {
	if tr.client.t != nil {
		tr.client.t.Helper()
	}
	if err := tr.TryJSON(v); err != nil {
		tr.client.fatalf(err)
	}
}

// TryJSON is JSON with an error return instead of aborting the test.
func (tr *TestResponse) TryJSON(v any) error {
	data, err := tr.TryBytes()
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, v); err != nil {
		return errors.DecodeFailed("json", err)
	}
	return nil
}

// Chunk reads the next chunk of the body. It may be called repeatedly and
// returns nil once the stream is exhausted.
func (tr *TestResponse) Chunk() []byte {
	if tr.client.t != nil {
		tr.client.t.Helper()
	}
	data, err := tr.TryChunk()
	if err != nil {
		tr.client.fatalf(err)
	}
	return data
}

// TryChunk is Chunk with an error return instead of aborting the test.
func (tr *TestResponse) TryChunk() ([]byte, error) {
	if tr.consumed {
		return nil, nil
	}

	buf := make([]byte, chunkSize)
	n, err := tr.resp.Body.Read(buf)
	if n > 0 {
		return buf[:n], nil
	}
	if err == io.EOF || err == nil {
		tr.consumed = true
		tr.resp.Body.Close()
		return nil, nil
	}
	return nil, errors.DecodeFailed("chunk", err)
}

// ChunkText reads the next chunk as UTF-8 text, returning "" at end of
// stream. A chunk boundary that splits a multi-byte code point is fatal.
func (tr *TestResponse) ChunkText() string {
	if tr.client.t != nil {
		tr.client.t.Helper()
	}
	data, err := tr.TryChunk()
	if err != nil {
		tr.client.fatalf(err)
	}
	if data == nil {
		return ""
	}
	if !utf8.Valid(data) {
		tr.client.fatalf(errors.DecodeFailed("utf-8 text", nil).WithDetail("chunk_len", len(data)))
	}
	return string(data)
}

// SSE returns a Server-Sent Events reader over the body for streaming
// assertions. The reader takes over body ownership; mixing it with the other
// body accessors is undefined.
func (tr *TestResponse) SSE() *sse.Reader {
	return sse.NewReader(tr.resp.Body)
}

// Unwrap returns the inner *http.Response for less convenient but more
// complete access. The caller takes over body ownership.
func (tr *TestResponse) Unwrap() *http.Response {
	return tr.resp
}

// consume marks the body as read, failing on a second whole-body read.
func (tr *TestResponse) consume() error {
	if tr.consumed {
		return errors.BodyConsumed()
	}
	tr.consumed = true
	return nil
}
