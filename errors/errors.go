package errors

import (
	stderrors "errors"
	"fmt"
)

// HarnessError is the unified error type for harness failures.
type HarnessError struct {
	// Code is a machine-readable error code.
	Code ErrorCode `json:"code"`
	// Message is a human-readable error message.
	Message string `json:"message"`
	// Details contains additional context for the error.
	Details map[string]any `json:"details,omitempty"`
	// Cause is the underlying error that caused this error.
	Cause error `json:"-"`
}

// Error returns the string representation of the error.
func (e *HarnessError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %v)", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause of the error.
func (e *HarnessError) Unwrap() error { return e.Cause }

// WithCause sets the underlying cause of the error and returns the receiver.
func (e *HarnessError) WithCause(cause error) *HarnessError {
	e.Cause = cause
	return e
}

// WithDetail sets a single detail key-value pair and returns the receiver.
func (e *HarnessError) WithDetail(key string, value any) *HarnessError {
	if e.Details == nil {
		e.Details = make(map[string]any)
	}
	e.Details[key] = value
	return e
}

// New creates a new HarnessError.
func New(code ErrorCode, message string) *HarnessError {
	return &HarnessError{Code: code, Message: message}
}

// --- Common Error Constructors ---

// BindFailed creates a HarnessError for a listener that could not be bound.
func BindFailed(addr string, cause error) *HarnessError {
	return &HarnessError{
		Code: ErrCodeBindFailed, Message: fmt.Sprintf("failed to bind test listener on %s", addr),
		Details: map[string]any{"addr": addr}, Cause: cause,
	}
}

// ServeFailed creates a HarnessError for a background serve task that died.
func ServeFailed(cause error) *HarnessError {
	return &HarnessError{
		Code: ErrCodeServeFailed, Message: "test server stopped serving",
		Cause: cause,
	}
}

// InvalidHeader creates a HarnessError for a malformed header name or value.
func InvalidHeader(key, value string) *HarnessError {
	return &HarnessError{
		Code: ErrCodeInvalidHeader, Message: fmt.Sprintf("malformed header %q", key),
		Details: map[string]any{"key": key, "value": value},
	}
}

// EncodeFailed creates a HarnessError for a request body that could not be encoded.
func EncodeFailed(what string, cause error) *HarnessError {
	return &HarnessError{
		Code: ErrCodeEncodeFailed, Message: fmt.Sprintf("failed to encode %s request body", what),
		Details: map[string]any{"encoding": what}, Cause: cause,
	}
}

// TransportFailed creates a HarnessError for a request that never produced a response.
func TransportFailed(method, url string, cause error) *HarnessError {
	return &HarnessError{
		Code: ErrCodeTransportFailed, Message: fmt.Sprintf("%s %s failed in transport", method, url),
		Details: map[string]any{"method": method, "url": url}, Cause: cause,
	}
}

// DecodeFailed creates a HarnessError for an undecodable response body.
func DecodeFailed(what string, cause error) *HarnessError {
	return &HarnessError{
		Code: ErrCodeDecodeFailed, Message: fmt.Sprintf("failed to decode response body as %s", what),
		Details: map[string]any{"encoding": what}, Cause: cause,
	}
}

// BodyConsumed creates a HarnessError for a repeated whole-body read.
func BodyConsumed() *HarnessError {
	return &HarnessError{
		Code: ErrCodeBodyConsumed, Message: "response body already consumed",
	}
}

// IsHarnessError reports whether err wraps a *HarnessError.
func IsHarnessError(err error) bool {
	var he *HarnessError
	return stderrors.As(err, &he)
}

// AsHarnessError extracts the *HarnessError from an error chain.
func AsHarnessError(err error) (*HarnessError, bool) {
	var he *HarnessError
	if stderrors.As(err, &he) {
		return he, true
	}
	return nil, false
}

// CodeOf extracts the ErrorCode from an error, or "" for non-harness errors.
func CodeOf(err error) ErrorCode {
	if he, ok := AsHarnessError(err); ok {
		return he.Code
	}
	return ""
}
