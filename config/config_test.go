package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	settings, err := LoadFrom(t.TempDir())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if settings.Log.Level != "error" {
		t.Errorf("expected default log level 'error', got %q", settings.Log.Level)
	}
	if settings.Client.Timeout != 30*time.Second {
		t.Errorf("expected default timeout 30s, got %v", settings.Client.Timeout)
	}
	if settings.Client.CookieJar {
		t.Error("cookie jar should be disabled by default")
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("WEBTEST_LOG_LEVEL", "debug")
	t.Setenv("WEBTEST_CLIENT_TIMEOUT", "5s")
	t.Setenv("WEBTEST_CLIENT_COOKIE_JAR", "true")

	settings, err := LoadFrom(t.TempDir())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if settings.Log.Level != "debug" {
		t.Errorf("expected log level 'debug' from env, got %q", settings.Log.Level)
	}
	if settings.Client.Timeout != 5*time.Second {
		t.Errorf("expected timeout 5s from env, got %v", settings.Client.Timeout)
	}
	if !settings.Client.CookieJar {
		t.Error("expected cookie jar enabled from env")
	}
}

func TestLoadFromYAML(t *testing.T) {
	dir := t.TempDir()
	yml := "log:\n  level: warn\nclient:\n  timeout: 2s\n"
	if err := os.WriteFile(filepath.Join(dir, "webtest.yml"), []byte(yml), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	settings, err := LoadFrom(dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if settings.Log.Level != "warn" {
		t.Errorf("expected log level 'warn' from file, got %q", settings.Log.Level)
	}
	if settings.Client.Timeout != 2*time.Second {
		t.Errorf("expected timeout 2s from file, got %v", settings.Client.Timeout)
	}
}

func TestLoadFromDotEnv(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, ".env"), []byte("WEBTEST_LOG_LEVEL=info\n"), 0o644); err != nil {
		t.Fatalf("write .env: %v", err)
	}
	t.Cleanup(func() { os.Unsetenv("WEBTEST_LOG_LEVEL") })

	settings, err := LoadFrom(dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if settings.Log.Level != "info" {
		t.Errorf("expected log level 'info' from .env, got %q", settings.Log.Level)
	}
}

func TestLoadRejectsInvalidLevel(t *testing.T) {
	t.Setenv("WEBTEST_LOG_LEVEL", "shouty")

	if _, err := LoadFrom(t.TempDir()); err == nil {
		t.Fatal("expected validation error for invalid log level")
	}
}

func TestValidateStruct(t *testing.T) {
	type probe struct {
		Count int `validate:"min=1"`
	}

	if err := ValidateStruct(&probe{Count: 3}); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if err := ValidateStruct(&probe{Count: 0}); err == nil {
		t.Error("expected error for count below minimum")
	}
}
