package config

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"

	"github.com/arbitraryrw/folio/internal/site"
	"github.com/arbitraryrw/folio/internal/typing"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"FOLIO_BANNER_PHRASES", "FOLIO_TYPE_DELAY", "FOLIO_DELETE_DELAY",
		"FOLIO_CONTENT_DIR", "FOLIO_SERVE_ADDR", "FOLIO_HOST_ADDR", "PORT",
		"FOLIO_TUI_MOUSE", "FOLIO_LOG_LEVEL", "FOLIO_LOG_FILE",
	} {
		t.Setenv(k, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)
	c, err := Load()
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !reflect.DeepEqual(c.Phrases, site.BannerPhrases) {
		t.Errorf("expected default phrases, got %q", c.Phrases)
	}
	if c.TypeDelay != typing.DefaultTypeDelay || c.DeleteDelay != typing.DefaultDeleteDelay {
		t.Errorf("unexpected delays %s/%s", c.TypeDelay, c.DeleteDelay)
	}
	if c.ServeAddr != ":8080" {
		t.Errorf("expected :8080, got %s", c.ServeAddr)
	}
	if c.Mouse {
		t.Error("expected mouse off by default")
	}
}

func TestLoadOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("FOLIO_BANNER_PHRASES", "Hi | | Yo")
	t.Setenv("FOLIO_TYPE_DELAY", "120")
	t.Setenv("FOLIO_DELETE_DELAY", "30ms")
	t.Setenv("FOLIO_CONTENT_DIR", "/tmp/posts")
	t.Setenv("PORT", "9000")
	t.Setenv("FOLIO_TUI_MOUSE", "yes")

	c, err := Load()
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !reflect.DeepEqual(c.Phrases, []string{"Hi", "Yo"}) {
		t.Errorf("unexpected phrases %q", c.Phrases)
	}
	if c.TypeDelay != 120*time.Millisecond || c.DeleteDelay != 30*time.Millisecond {
		t.Errorf("unexpected delays %s/%s", c.TypeDelay, c.DeleteDelay)
	}
	if c.ContentDir != "/tmp/posts" {
		t.Errorf("unexpected content dir %s", c.ContentDir)
	}
	if c.ServeAddr != ":9000" {
		t.Errorf("expected PORT to set serve addr, got %s", c.ServeAddr)
	}
	if !c.Mouse {
		t.Error("expected mouse on")
	}
}

func TestLoadRejectsInvalidTiming(t *testing.T) {
	tests := []struct {
		key, value string
	}{
		{"FOLIO_TYPE_DELAY", "0"},
		{"FOLIO_DELETE_DELAY", "-5ms"},
	}
	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(tt.key, tt.value)
			if _, err := Load(); !errors.Is(err, typing.ErrInvalidConfiguration) {
				t.Fatalf("expected ErrInvalidConfiguration, got %v", err)
			}
		})
	}
}

func TestLoadRejectsUnparsableDelay(t *testing.T) {
	clearEnv(t)
	t.Setenv("FOLIO_TYPE_DELAY", "fast")
	if _, err := Load(); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestLoadDotEnv(t *testing.T) {
	clearEnv(t)
	os.Unsetenv("FOLIO_LOG_LEVEL")
	path := filepath.Join(t.TempDir(), ".env")
	if err := os.WriteFile(path, []byte("FOLIO_LOG_LEVEL=debug\n"), 0600); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { os.Unsetenv("FOLIO_LOG_LEVEL") })

	if err := LoadDotEnv(path); err != nil {
		t.Fatalf("LoadDotEnv returned error: %v", err)
	}
	if got := os.Getenv("FOLIO_LOG_LEVEL"); got != "debug" {
		t.Fatalf("expected debug, got %q", got)
	}

	if err := LoadDotEnv(filepath.Join(t.TempDir(), "missing.env")); err != nil {
		t.Fatalf("expected missing file to be ignored, got %v", err)
	}
}

func TestBoolEnv(t *testing.T) {
	tests := []struct {
		value string
		want  bool
	}{
		{"", false}, {"true", true}, {"1", true}, {"ON", true}, {"0", false}, {"nah", false},
	}
	for _, tt := range tests {
		t.Setenv("FOLIO_TEST_BOOL", tt.value)
		if got := BoolEnv("FOLIO_TEST_BOOL"); got != tt.want {
			t.Errorf("BoolEnv(%q) = %v, want %v", tt.value, got, tt.want)
		}
	}
}
