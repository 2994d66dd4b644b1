package errors

// ErrorCode represents a machine-readable error code.
type ErrorCode string

// Server lifecycle errors
const (
	// ErrCodeBindFailed indicates the ephemeral listener could not be bound.
	ErrCodeBindFailed ErrorCode = "BIND_FAILED"
	// ErrCodeServeFailed indicates the background serve task died.
	ErrCodeServeFailed ErrorCode = "SERVE_FAILED"
)

// Request construction errors
const (
	// ErrCodeInvalidHeader indicates a malformed header name or value.
	ErrCodeInvalidHeader ErrorCode = "INVALID_HEADER"
	// ErrCodeEncodeFailed indicates a request body could not be encoded.
	ErrCodeEncodeFailed ErrorCode = "ENCODE_FAILED"
)

// Transport and response errors
const (
	// ErrCodeTransportFailed indicates the request never produced a response.
	ErrCodeTransportFailed ErrorCode = "TRANSPORT_FAILED"
	// ErrCodeDecodeFailed indicates the response body could not be decoded
	// (malformed JSON, non-UTF-8 text).
	ErrCodeDecodeFailed ErrorCode = "DECODE_FAILED"
	// ErrCodeBodyConsumed indicates a second whole-body read on a response.
	ErrCodeBodyConsumed ErrorCode = "BODY_CONSUMED"
)
