// Package config loads folio's settings from FOLIO_* environment variables,
// optionally seeded from a .env file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/arbitraryrw/folio/internal/posts"
	"github.com/arbitraryrw/folio/internal/site"
	"github.com/arbitraryrw/folio/internal/typing"
)

// Config is the resolved runtime configuration.
type Config struct {
	Phrases     []string
	TypeDelay   time.Duration
	DeleteDelay time.Duration
	ContentDir  string
	ServeAddr   string
	HostAddr    string
	Mouse       bool
	LogLevel    string
	LogFile     string
}

// Typing returns the animator configuration.
func (c Config) Typing() typing.Config {
	return typing.Config{
		Phrases:     c.Phrases,
		TypeDelay:   c.TypeDelay,
		DeleteDelay: c.DeleteDelay,
	}
}

// LoadDotEnv loads path (default ".env") into the environment without
// overriding variables that are already set. A missing file is not an
// error.
func LoadDotEnv(path string) error {
	if path == "" {
		path = ".env"
	}
	if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("loading %s: %w", path, err)
	}
	return nil
}

// Load reads the environment and validates the result.
func Load() (Config, error) {
	c := Config{
		Phrases:     append([]string(nil), site.BannerPhrases...),
		TypeDelay:   typing.DefaultTypeDelay,
		DeleteDelay: typing.DefaultDeleteDelay,
		ServeAddr:   ":8080",
		HostAddr:    "127.0.0.1:8787",
		LogLevel:    "info",
	}

	if v := strings.TrimSpace(os.Getenv("FOLIO_BANNER_PHRASES")); v != "" {
		c.Phrases = splitPhrases(v)
	}

	var err error
	if c.TypeDelay, err = durationEnv("FOLIO_TYPE_DELAY", c.TypeDelay); err != nil {
		return Config{}, err
	}
	if c.DeleteDelay, err = durationEnv("FOLIO_DELETE_DELAY", c.DeleteDelay); err != nil {
		return Config{}, err
	}

	c.ContentDir = strings.TrimSpace(os.Getenv("FOLIO_CONTENT_DIR"))
	if c.ContentDir == "" {
		if dir, err := posts.DefaultContentDir(); err == nil {
			c.ContentDir = dir
		}
	}

	if v := strings.TrimSpace(os.Getenv("PORT")); v != "" {
		c.ServeAddr = ":" + v
	}
	if v := strings.TrimSpace(os.Getenv("FOLIO_SERVE_ADDR")); v != "" {
		c.ServeAddr = v
	}
	if v := strings.TrimSpace(os.Getenv("FOLIO_HOST_ADDR")); v != "" {
		c.HostAddr = v
	}
	c.Mouse = BoolEnv("FOLIO_TUI_MOUSE")
	if v := strings.TrimSpace(os.Getenv("FOLIO_LOG_LEVEL")); v != "" {
		c.LogLevel = v
	}
	c.LogFile = strings.TrimSpace(os.Getenv("FOLIO_LOG_FILE"))

	if err := c.Typing().Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// splitPhrases splits a "|"-separated list, dropping empty entries.
func splitPhrases(v string) []string {
	var out []string
	for _, p := range strings.Split(v, "|") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// durationEnv parses key as a Go duration, or as whole milliseconds when it
// is a bare integer.
func durationEnv(key string, def time.Duration) (time.Duration, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def, nil
	}
	if ms, err := strconv.Atoi(v); err == nil {
		return time.Duration(ms) * time.Millisecond, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("parsing %s: %w", key, err)
	}
	return d, nil
}

// BoolEnv reports whether key is set to a truthy value.
func BoolEnv(key string) bool {
	switch strings.ToLower(strings.TrimSpace(os.Getenv(key))) {
	case "1", "true", "yes", "on":
		return true
	default:
		return false
	}
}
