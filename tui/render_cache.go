package tui

import (
	"strings"
	"sync"

	"github.com/charmbracelet/glamour"
)

type renderKey struct {
	slug  string
	width int
}

// renderCache keeps glamour output per post and wrap width for the life of
// the program; re-rendering on every resize is slow for long posts.
type renderCache struct {
	mu      sync.Mutex
	entries map[renderKey]string
}

func newRenderCache() *renderCache {
	return &renderCache{entries: make(map[renderKey]string)}
}

func (c *renderCache) render(slug, markdown string, width int) string {
	if c == nil {
		return renderMarkdown(markdown, width)
	}
	k := renderKey{slug: slug, width: width}

	c.mu.Lock()
	out, ok := c.entries[k]
	c.mu.Unlock()
	if ok {
		return out
	}

	out = renderMarkdown(markdown, width)
	c.mu.Lock()
	c.entries[k] = out
	c.mu.Unlock()
	return out
}

func (c *renderCache) len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

func renderMarkdown(content string, width int) string {
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return spoilerStyle.Width(width).Render(content)
	}
	out, err := r.Render(content)
	if err != nil {
		return spoilerStyle.Width(width).Render(content)
	}
	return strings.TrimRight(out, "\n")
}
