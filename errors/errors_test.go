package errors

import (
	stderrors "errors"
	"fmt"
	"strings"
	"testing"
)

func TestHarnessErrorError(t *testing.T) {
	t.Run("without cause", func(t *testing.T) {
		err := New(ErrCodeDecodeFailed, "bad json")
		want := "DECODE_FAILED: bad json"
		if err.Error() != want {
			t.Errorf("expected %q, got %q", want, err.Error())
		}
	})

	t.Run("with cause", func(t *testing.T) {
		cause := fmt.Errorf("unexpected end of JSON input")
		err := New(ErrCodeDecodeFailed, "bad json").WithCause(cause)
		if !strings.Contains(err.Error(), "cause: unexpected end of JSON input") {
			t.Errorf("error string should include cause, got %q", err.Error())
		}
	})
}

func TestHarnessErrorUnwrap(t *testing.T) {
	cause := fmt.Errorf("connection refused")
	err := TransportFailed("GET", "http://127.0.0.1:1/", cause)

	if !stderrors.Is(err, cause) {
		t.Error("errors.Is should find the cause through Unwrap")
	}
}

func TestConstructors(t *testing.T) {
	tests := []struct {
		name     string
		err      *HarnessError
		wantCode ErrorCode
	}{
		{"bind failed", BindFailed("127.0.0.1:0", fmt.Errorf("eaddrinuse")), ErrCodeBindFailed},
		{"serve failed", ServeFailed(fmt.Errorf("accept: closed")), ErrCodeServeFailed},
		{"invalid header", InvalidHeader("bad key", "v"), ErrCodeInvalidHeader},
		{"encode failed", EncodeFailed("json", fmt.Errorf("cycle")), ErrCodeEncodeFailed},
		{"transport failed", TransportFailed("GET", "http://x/", fmt.Errorf("refused")), ErrCodeTransportFailed},
		{"decode failed", DecodeFailed("utf-8 text", fmt.Errorf("invalid byte")), ErrCodeDecodeFailed},
		{"body consumed", BodyConsumed(), ErrCodeBodyConsumed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.err.Code != tt.wantCode {
				t.Errorf("expected code %s, got %s", tt.wantCode, tt.err.Code)
			}
			if tt.err.Message == "" {
				t.Error("message should not be empty")
			}
		})
	}
}

func TestWithDetail(t *testing.T) {
	err := New(ErrCodeInvalidHeader, "bad header").WithDetail("key", "x\ny")
	if err.Details["key"] != "x\ny" {
		t.Errorf("expected detail to be stored, got %v", err.Details)
	}
}

func TestAsHarnessError(t *testing.T) {
	t.Run("direct", func(t *testing.T) {
		err := BodyConsumed()
		he, ok := AsHarnessError(err)
		if !ok {
			t.Fatal("expected AsHarnessError to match")
		}
		if he.Code != ErrCodeBodyConsumed {
			t.Errorf("expected BODY_CONSUMED, got %s", he.Code)
		}
	})

	t.Run("wrapped", func(t *testing.T) {
		err := fmt.Errorf("send: %w", TransportFailed("PUT", "http://x/", nil))
		if CodeOf(err) != ErrCodeTransportFailed {
			t.Errorf("expected TRANSPORT_FAILED through wrapping, got %s", CodeOf(err))
		}
	})

	t.Run("non-harness error", func(t *testing.T) {
		if IsHarnessError(fmt.Errorf("plain")) {
			t.Error("plain error should not match")
		}
		if CodeOf(fmt.Errorf("plain")) != "" {
			t.Error("expected empty code for plain error")
		}
	})
}
