// Package logging owns folio's structured logger.
package logging

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/muesli/termenv"
)

// Logger is the package-level logger. It discards output until Init runs.
var Logger = log.New(io.Discard)

// Options controls where and how much Init logs.
type Options struct {
	Level   string
	File    string // when set, logs are appended here instead of Output
	Output  io.Writer
	NoColor bool
}

// Init configures Logger. The returned close func releases the log file, if
// one was opened.
func Init(opts Options) (func() error, error) {
	noColor := opts.NoColor || os.Getenv("NO_COLOR") != ""
	if noColor {
		lipgloss.SetColorProfile(termenv.Ascii)
	}

	out := opts.Output
	closeFn := func() error { return nil }
	if opts.File != "" {
		f, err := os.OpenFile(opts.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600)
		if err != nil {
			return closeFn, fmt.Errorf("opening log file: %w", err)
		}
		out = f
		closeFn = f.Close
	}
	if out == nil {
		out = os.Stderr
	}

	level, err := log.ParseLevel(strings.ToLower(opts.Level))
	if err != nil {
		level = log.InfoLevel
	}

	Logger = log.NewWithOptions(out, log.Options{
		Level:           level,
		ReportTimestamp: opts.File != "",
		Prefix:          "folio",
	})
	if noColor {
		Logger.SetColorProfile(termenv.Ascii)
	}
	return closeFn, nil
}

// Discard silences Logger, e.g. while the TUI owns the terminal.
func Discard() {
	Logger.SetOutput(io.Discard)
}
