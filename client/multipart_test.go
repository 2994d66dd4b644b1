package client

import (
	"bytes"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestMultipartFields(t *testing.T) {
	engine := gin.New()
	engine.POST("/", func(c *gin.Context) {
		c.String(http.StatusOK, c.PostForm("name")+"/"+c.PostForm("kind"))
	})

	tc := New(t, engine)
	res := tc.Post("/").Multipart(&MultipartBody{
		Fields: map[string]string{"name": "sample", "kind": "fixture"},
	}).Send()

	if got := res.Text(); got != "sample/fixture" {
		t.Errorf("expected form fields received, got %q", got)
	}
}

func TestMultipartFileFromData(t *testing.T) {
	content := []byte("file contents here")

	engine := gin.New()
	engine.POST("/upload", func(c *gin.Context) {
		fh, err := c.FormFile("file")
		if err != nil {
			c.AbortWithStatus(http.StatusBadRequest)
			return
		}
		f, err := fh.Open()
		if err != nil {
			c.AbortWithStatus(http.StatusInternalServerError)
			return
		}
		defer f.Close()
		data, _ := io.ReadAll(f)
		c.Header("X-File-Name", fh.Filename)
		c.Data(http.StatusOK, "application/octet-stream", data)
	})

	tc := New(t, engine)
	res := tc.Post("/upload").Multipart(&MultipartBody{
		Files: []FileField{{
			FieldName: "file",
			FileName:  "notes.txt",
			Data:      content,
		}},
	}).Send()

	if res.Status() != http.StatusOK {
		t.Fatalf("expected 200, got %d", res.Status())
	}
	if got := res.Header().Get("X-File-Name"); got != "notes.txt" {
		t.Errorf("expected file name preserved, got %q", got)
	}
	if got := res.Bytes(); !bytes.Equal(got, content) {
		t.Errorf("expected file content %q, got %q", content, got)
	}
}

func TestMultipartFileFromReader(t *testing.T) {
	engine := gin.New()
	engine.POST("/upload", func(c *gin.Context) {
		fh, err := c.FormFile("stream")
		if err != nil {
			c.AbortWithStatus(http.StatusBadRequest)
			return
		}
		f, _ := fh.Open()
		defer f.Close()
		data, _ := io.ReadAll(f)
		c.Data(http.StatusOK, "text/plain", data)
	})

	tc := New(t, engine)
	res := tc.Post("/upload").Multipart(&MultipartBody{
		Files: []FileField{{
			FieldName:   "stream",
			FileName:    "streamed.bin",
			ContentType: "application/x-custom",
			Reader:      strings.NewReader("streamed data"),
		}},
	}).Send()

	if got := res.Text(); got != "streamed data" {
		t.Errorf("expected streamed file content, got %q", got)
	}
}

func TestMultipartContentTypeHasBoundary(t *testing.T) {
	engine := gin.New()
	engine.POST("/", func(c *gin.Context) {
		c.String(http.StatusOK, c.GetHeader("Content-Type"))
	})

	tc := New(t, engine)
	res := tc.Post("/").Multipart(&MultipartBody{
		Fields: map[string]string{"k": "v"},
	}).Send()

	ct := res.Text()
	if !strings.HasPrefix(ct, "multipart/form-data; boundary=") {
		t.Errorf("expected multipart content type with boundary, got %q", ct)
	}
}
