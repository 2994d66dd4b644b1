package client

import (
	"context"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	harnesserrors "github.com/skillsenselab/webtest/errors"
)

func echoBodyEngine() *gin.Engine {
	engine := gin.New()
	engine.POST("/echo", func(c *gin.Context) {
		data, _ := c.GetRawData()
		c.Data(http.StatusOK, c.ContentType(), data)
	})
	return engine
}

func TestRawBodyVariants(t *testing.T) {
	tc := New(t, echoBodyEngine())

	tests := []struct {
		name string
		body any
	}{
		{"string", "from string"},
		{"bytes", []byte("from bytes")},
		{"reader", strings.NewReader("from reader")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := tc.Post("/echo").Body(tt.body).Send()
			want := "from " + tt.name
			if got := res.Text(); got != want {
				t.Errorf("expected %q, got %q", want, got)
			}
		})
	}
}

func TestHeaderForwarded(t *testing.T) {
	engine := gin.New()
	engine.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, c.GetHeader("X-Token"))
	})

	tc := New(t, engine)
	res := tc.Get("/").Header("X-Token", "abc123").Send()

	if got := res.Text(); got != "abc123" {
		t.Errorf("expected forwarded header value, got %q", got)
	}
}

func TestHeaderValidation(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"space in name", "bad key", "v"},
		{"newline in value", "X-Key", "a\nb"},
		{"empty name", "", "v"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tc, err := NewWithConfig(gin.New(), Config{})
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			defer tc.Close()

			defer func() {
				r := recover()
				if r == nil {
					t.Fatal("expected panic for malformed header")
				}
				he, ok := r.(*harnesserrors.HarnessError)
				if !ok {
					t.Fatalf("expected *HarnessError panic value, got %T", r)
				}
				if he.Code != harnesserrors.ErrCodeInvalidHeader {
					t.Errorf("expected INVALID_HEADER, got %s", he.Code)
				}
			}()
			tc.Get("/").Header(tt.key, tt.value)
		})
	}
}

func TestQueryParams(t *testing.T) {
	engine := gin.New()
	engine.GET("/search", func(c *gin.Context) {
		c.String(http.StatusOK, c.Query("q")+"/"+c.Query("page"))
	})

	tc := New(t, engine)
	res := tc.Get("/search").Query("q", "go testing").Query("page", "2").Send()

	if got := res.Text(); got != "go testing/2" {
		t.Errorf("expected query params forwarded, got %q", got)
	}
}

func TestContextCancellation(t *testing.T) {
	engine := gin.New()
	engine.GET("/slow", func(c *gin.Context) {
		select {
		case <-c.Request.Context().Done():
		case <-time.After(5 * time.Second):
		}
		c.Status(http.StatusOK)
	})

	tc, err := NewWithConfig(engine, Config{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer tc.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	if _, err := tc.Get("/slow").Context(ctx).TrySend(); err == nil {
		t.Fatal("expected error from cancelled context")
	}
}

func TestBuilderIsSingleUse(t *testing.T) {
	engine := gin.New()
	engine.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	tc := New(t, engine)
	rb := tc.Get("/")
	rb.Send()

	defer func() {
		if recover() == nil {
			t.Error("expected panic on second Send")
		}
	}()
	rb.Send()
}

func TestDefaultUserAgent(t *testing.T) {
	engine := gin.New()
	engine.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, c.GetHeader("User-Agent"))
	})

	tc := New(t, engine)
	if got := tc.Get("/").Send().Text(); !strings.HasPrefix(got, "webtest/") {
		t.Errorf("expected webtest User-Agent, got %q", got)
	}
}

func TestJSONBodySetsContentType(t *testing.T) {
	engine := gin.New()
	engine.POST("/", func(c *gin.Context) {
		c.String(http.StatusOK, c.ContentType())
	})

	tc := New(t, engine)
	res := tc.Post("/").JSON(map[string]string{"k": "v"}).Send()

	if got := res.Text(); got != "application/json" {
		t.Errorf("expected application/json content type, got %q", got)
	}
}

func TestExplicitContentTypeWins(t *testing.T) {
	engine := gin.New()
	engine.POST("/", func(c *gin.Context) {
		c.String(http.StatusOK, c.ContentType())
	})

	tc := New(t, engine)
	res := tc.Post("/").
		JSON(map[string]string{"k": "v"}).
		Header("Content-Type", "application/vnd.custom+json").
		Send()

	if got := res.Text(); got != "application/vnd.custom+json" {
		t.Errorf("expected explicit content type to win, got %q", got)
	}
}
