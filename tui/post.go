package tui

import (
	"errors"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/arbitraryrw/folio/internal/logging"
	"github.com/arbitraryrw/folio/internal/posts"
	"github.com/arbitraryrw/folio/internal/site"
)

type contentLoadedMsg struct {
	slug    string
	content posts.Content
	err     error
}

// loadContent reads the post document off the UI goroutine. A missing
// document falls back to the spoiler.
func loadContent(dir string, p posts.Post) tea.Cmd {
	return func() tea.Msg {
		c, err := posts.LoadContent(dir, p.Slug)
		if errors.Is(err, posts.ErrNoContent) {
			logging.Logger.Debug("post content missing, using spoiler", "slug", p.Slug, "dir", dir)
			return contentLoadedMsg{slug: p.Slug, content: posts.Fallback(p)}
		}
		return contentLoadedMsg{slug: p.Slug, content: c, err: err}
	}
}

// PostModel shows one article: header, rendered markdown, and a footer
// with the bio and links to the neighbouring posts.
type PostModel struct {
	slug       string
	post       posts.Post
	found      bool
	previous   *posts.Details
	next       *posts.Details
	content    posts.Content
	loading    bool
	err        error
	contentDir string
	cache      *renderCache
	meta       site.Metadata
	profile    site.Profile

	spinner  spinner.Model
	viewport viewport.Model
	ready    bool
	width    int
	height   int
}

func NewPostModel(index *posts.Index, slug, contentDir string, cache *renderCache, meta site.Metadata, profile site.Profile) PostModel {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(colorAccent)

	m := PostModel{
		slug:       slug,
		contentDir: contentDir,
		cache:      cache,
		meta:       meta,
		profile:    profile,
		spinner:    sp,
	}

	p, err := index.Get(slug)
	if err != nil {
		return m
	}
	m.post = p
	m.found = true
	m.loading = true
	m.previous, m.next, _ = index.Neighbors(slug)
	return m
}

func (m PostModel) Init() tea.Cmd {
	if !m.found {
		return nil
	}
	return tea.Batch(m.spinner.Tick, loadContent(m.contentDir, m.post))
}

const (
	postHeaderHeight = 1
	postFooterHeight = 1
)

func (m PostModel) Update(msg tea.Msg) (PostModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		vpHeight := m.height - postHeaderHeight - postFooterHeight
		if vpHeight < 1 {
			vpHeight = 1
		}
		if !m.ready {
			m.viewport = viewport.New(m.width, vpHeight)
			m.ready = true
		} else {
			m.viewport.Width = m.width
			m.viewport.Height = vpHeight
		}
		m.refresh()
		return m, nil

	case contentLoadedMsg:
		if msg.slug != m.slug {
			return m, nil
		}
		m.loading = false
		m.content = msg.content
		m.err = msg.err
		if msg.err != nil {
			logging.Logger.Error("loading post content", "slug", msg.slug, "err", msg.err)
		}
		m.refresh()
		m.viewport.GotoTop()
		return m, nil

	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		m.refresh()
		return m, cmd

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Back):
			return m, func() tea.Msg { return switchScreenMsg{target: screenHome} }
		case key.Matches(msg, keys.Older):
			if m.previous != nil {
				slug := m.previous.Slug
				return m, func() tea.Msg { return openPostMsg{slug: slug} }
			}
			return m, nil
		case key.Matches(msg, keys.Newer):
			if m.next != nil {
				slug := m.next.Slug
				return m, func() tea.Msg { return openPostMsg{slug: slug} }
			}
			return m, nil
		case key.Matches(msg, keys.Top):
			m.viewport.GotoTop()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m PostModel) contentWidth() int {
	w := m.width - 4
	if w > 100 {
		w = 100
	}
	if w < 20 {
		w = 20
	}
	return w
}

func (m *PostModel) refresh() {
	if !m.ready {
		return
	}
	m.viewport.SetContent(m.renderArticle())
}

func (m PostModel) renderArticle() string {
	w := m.contentWidth()
	pad := lipgloss.NewStyle().PaddingLeft(2)

	if !m.found {
		return pad.Render(lipgloss.JoinVertical(lipgloss.Left,
			"",
			errorMsgStyle.Render("404 - Page not found"),
			"",
			metaStyle.Render("No post named "+m.slug+". Press esc to go back to the index."),
		))
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(postTitleStyle.Width(w).Render(m.post.Title))
	b.WriteString("\n")
	b.WriteString(metaStyle.Render(articleMeta(m.post, m.content.ReadingTime)))
	b.WriteString("\n\n")

	switch {
	case m.loading:
		b.WriteString(m.spinner.View() + metaStyle.Render(" loading..."))
		b.WriteString("\n")
		return pad.Render(b.String())
	case m.err != nil:
		b.WriteString(errorMsgStyle.Width(w).Render("Error: " + m.err.Error()))
		b.WriteString("\n\n")
	default:
		b.WriteString(m.cache.render(m.slug, m.content.Markdown, w))
		b.WriteString("\n\n")
	}

	b.WriteString(postTitleStyle.Render(m.meta.FooterTitle))
	b.WriteString("\n\n")
	b.WriteString(renderBio(m.profile, w))
	b.WriteString("\n\n")

	var links []string
	if m.previous != nil {
		links = append(links, linkStyle.Render("← "+m.previous.Title))
	}
	if m.next != nil {
		links = append(links, linkStyle.Render(m.next.Title+" →"))
	}
	b.WriteString(strings.Join(links, "   "))
	b.WriteString("\n")

	return pad.Render(b.String())
}

func (m PostModel) View() string {
	if !m.ready {
		return ""
	}

	left := headerStyle.Render(m.meta.PostTitle)
	right := headerStyle.Render(m.meta.PageTitle + " ")
	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 0 {
		gap = 0
	}
	header := left + headerStyle.Render(strings.Repeat(" ", gap)) + right

	footer := statusBarStyle.Width(m.width).Render(
		helpLine(keys.Back, keys.Older, keys.Newer, keys.Top))

	return lipgloss.JoinVertical(lipgloss.Left, header, m.viewport.View(), footer)
}
