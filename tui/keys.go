package tui

import "github.com/charmbracelet/bubbles/key"

// Key bindings reference:
//
// Global:
//   ctrl+c    Quit the application
//
// Home screen:
//   space     Scroll from the banner down to the posts
//   j/down    Next post
//   k/up      Previous post
//   n/]       Next page of posts
//   p/[       Previous page of posts
//   enter     Open the selected post
//   g         Back to the banner
//   q         Quit
//
// Post screen:
//   up/down   Scroll the article
//   h/left    Previous (older) post
//   l/right   Next (newer) post
//   esc/b     Back to the index
type keyMap struct {
	Quit     key.Binding
	Scroll   key.Binding
	Down     key.Binding
	Up       key.Binding
	NextPage key.Binding
	PrevPage key.Binding
	Open     key.Binding
	Top      key.Binding
	Older    key.Binding
	Newer    key.Binding
	Back     key.Binding
}

var keys = keyMap{
	Quit:     key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
	Scroll:   key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "posts")),
	Down:     key.NewBinding(key.WithKeys("j", "down"), key.WithHelp("j/k", "select")),
	Up:       key.NewBinding(key.WithKeys("k", "up")),
	NextPage: key.NewBinding(key.WithKeys("n", "]"), key.WithHelp("n/p", "page")),
	PrevPage: key.NewBinding(key.WithKeys("p", "[")),
	Open:     key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "read")),
	Top:      key.NewBinding(key.WithKeys("g", "home"), key.WithHelp("g", "top")),
	Older:    key.NewBinding(key.WithKeys("h", "left"), key.WithHelp("h", "older")),
	Newer:    key.NewBinding(key.WithKeys("l", "right"), key.WithHelp("l", "newer")),
	Back:     key.NewBinding(key.WithKeys("esc", "b", "backspace"), key.WithHelp("esc", "back")),
}

// helpLine joins the help text of the given bindings for a footer.
func helpLine(bs ...key.Binding) string {
	var out string
	for _, b := range bs {
		h := b.Help()
		if h.Key == "" {
			continue
		}
		if out != "" {
			out += " | "
		}
		out += h.Key + ": " + h.Desc
	}
	return out
}
