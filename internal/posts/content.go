package posts

import (
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"
)

// ErrNoContent is returned when a post's document is missing from the
// content directory.
var ErrNoContent = errors.New("post content not found")

const wordsPerMinute = 200

// DefaultContentDir returns ~/.config/folio/posts.
func DefaultContentDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine home directory: %w", err)
	}
	return filepath.Join(home, ".config", "folio", "posts"), nil
}

// Content is a loaded post document.
type Content struct {
	Markdown    string
	Path        string
	ReadingTime int // minutes
}

// contentPaths lists where slug's document may live, in lookup order.
func contentPaths(dir, slug string) []string {
	return []string{
		filepath.Join(dir, slug+".md"),
		filepath.Join(dir, slug, "document.md"),
		filepath.Join(dir, slug, "document.mdx"),
	}
}

// LoadContent reads the markdown document for slug from dir.
func LoadContent(dir, slug string) (Content, error) {
	if strings.ContainsAny(slug, `/\`) || strings.Contains(slug, "..") {
		return Content{}, fmt.Errorf("invalid slug %q", slug)
	}
	if dir == "" {
		return Content{}, fmt.Errorf("%w: no content directory", ErrNoContent)
	}

	for _, p := range contentPaths(dir, slug) {
		raw, err := os.ReadFile(p)
		if os.IsNotExist(err) {
			continue
		}
		if err != nil {
			return Content{}, fmt.Errorf("reading %s: %w", p, err)
		}
		md := strings.ReplaceAll(string(raw), "\r\n", "\n")
		return Content{Markdown: md, Path: p, ReadingTime: ReadingTime(md)}, nil
	}
	return Content{}, fmt.Errorf("%w: %s in %s", ErrNoContent, slug, dir)
}

// ReadingTime estimates minutes to read text, never less than one.
func ReadingTime(text string) int {
	words := len(strings.Fields(text))
	mins := int(math.Ceil(float64(words) / wordsPerMinute))
	if mins < 1 {
		mins = 1
	}
	return mins
}

// Fallback renders the spoiler as a stand-in document when the full
// content is unavailable.
func Fallback(p Post) Content {
	md := p.Spoiler + "\n\n_The full article is not available offline._\n"
	return Content{Markdown: md, ReadingTime: ReadingTime(p.Spoiler)}
}
