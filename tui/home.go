package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/arbitraryrw/folio/internal/posts"
	"github.com/arbitraryrw/folio/internal/site"
)

// openPostMsg asks the main model to show a post.
type openPostMsg struct {
	slug string
}

// HomeModel is the index page: the banner filling the first screen, then
// the paginated post list and the bio.
type HomeModel struct {
	banner   BannerModel
	index    *posts.Index
	meta     site.Metadata
	profile  site.Profile
	viewport viewport.Model
	ready    bool
	width    int
	height   int
	page     int
	selected int
	inIndex  bool

	// indexOffset is the viewport line where the post list starts.
	indexOffset int
}

func NewHomeModel(banner BannerModel, index *posts.Index, meta site.Metadata, profile site.Profile) HomeModel {
	return HomeModel{
		banner:  banner,
		index:   index,
		meta:    meta,
		profile: profile,
		page:    1,
	}
}

func (m HomeModel) Init() tea.Cmd {
	return m.banner.Init()
}

const homeFooterHeight = 1

func (m HomeModel) currentPage() posts.Page {
	return m.index.Page(m.meta.IndexPageSize, m.page)
}

func (m HomeModel) Update(msg tea.Msg) (HomeModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		vpHeight := m.height - homeFooterHeight
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

	case tea.KeyMsg:
		return m.updateKeys(msg)
	}

	var cmds []tea.Cmd
	var cmd tea.Cmd
	m.banner, cmd = m.banner.Update(msg)
	cmds = append(cmds, cmd)
	if _, ok := msg.(bannerTickMsg); ok {
		m.refresh()
		return m, tea.Batch(cmds...)
	}

	// Mouse wheel and other viewport messages.
	m.viewport, cmd = m.viewport.Update(msg)
	cmds = append(cmds, cmd)
	m.refresh()
	return m, tea.Batch(cmds...)
}

func (m HomeModel) updateKeys(msg tea.KeyMsg) (HomeModel, tea.Cmd) {
	atBanner := !m.inIndex

	switch {
	case key.Matches(msg, keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, keys.Scroll):
		m.scrollToIndex()

	case key.Matches(msg, keys.Top):
		m.inIndex = false
		m.viewport.GotoTop()

	case key.Matches(msg, keys.Down):
		if atBanner {
			m.scrollToIndex()
			break
		}
		if m.selected < len(m.currentPage().Posts)-1 {
			m.selected++
		}

	case key.Matches(msg, keys.Up):
		if m.selected > 0 {
			m.selected--
		}

	case key.Matches(msg, keys.NextPage):
		if p := m.currentPage(); p.HasNext() {
			m.page++
			m.selected = 0
		}

	case key.Matches(msg, keys.PrevPage):
		if p := m.currentPage(); p.HasPrevious() {
			m.page--
			m.selected = 0
		}

	case key.Matches(msg, keys.Open):
		if atBanner {
			m.scrollToIndex()
			break
		}
		page := m.currentPage()
		if m.selected < len(page.Posts) {
			slug := page.Posts[m.selected].Slug
			return m, func() tea.Msg { return openPostMsg{slug: slug} }
		}

	default:
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	}

	m.refresh()
	return m, nil
}

// scrollToIndex brings the post list to the top of the viewport.
func (m *HomeModel) scrollToIndex() {
	m.inIndex = true
	m.refresh()
	m.viewport.SetYOffset(m.indexOffset)
}

func (m *HomeModel) refresh() {
	if !m.ready {
		return
	}
	bannerBlock := lipgloss.Place(
		m.width, m.viewport.Height,
		lipgloss.Center, lipgloss.Center,
		lipgloss.JoinVertical(lipgloss.Center,
			m.banner.View(),
			"",
			"",
			scrollHintStyle.Render("▼"),
		),
	)
	m.indexOffset = lipgloss.Height(bannerBlock)

	offset := m.viewport.YOffset
	m.viewport.SetContent(bannerBlock + "\n" + m.renderIndex())
	m.viewport.SetYOffset(offset)
}

func (m HomeModel) contentWidth() int {
	w := m.width - 4
	if w > 100 {
		w = 100
	}
	if w < 20 {
		w = 20
	}
	return w
}

func (m HomeModel) renderIndex() string {
	w := m.contentWidth()
	page := m.currentPage()

	var b strings.Builder
	b.WriteString("\n")
	if len(page.Posts) == 0 {
		b.WriteString(metaStyle.Render("No posts yet."))
		b.WriteString("\n")
	}
	for i, p := range page.Posts {
		title := postTitleStyle
		if i == m.selected {
			title = postTitleSelectedStyle
		}
		b.WriteString(title.Render(p.Title))
		b.WriteString("\n")
		b.WriteString(metaStyle.Render(articleMeta(p, 0)))
		b.WriteString("\n")
		b.WriteString(spoilerStyle.Width(w).Render(p.Spoiler))
		b.WriteString("\n\n")
	}

	if page.TotalPages > 1 {
		var nav []string
		if page.HasPrevious() {
			nav = append(nav, linkStyle.Render("← newer"))
		}
		nav = append(nav, metaStyle.Render(fmt.Sprintf("page %d of %d", page.Number, page.TotalPages)))
		if page.HasNext() {
			nav = append(nav, linkStyle.Render("older →"))
		}
		b.WriteString(strings.Join(nav, "  "))
		b.WriteString("\n\n")
	}

	b.WriteString(renderBio(m.profile, w))
	b.WriteString("\n")

	return lipgloss.NewStyle().PaddingLeft(2).Render(b.String())
}

func (m HomeModel) View() string {
	if !m.ready {
		return ""
	}
	footer := statusBarStyle.Width(m.width).Render(
		helpLine(keys.Scroll, keys.Down, keys.NextPage, keys.Open, keys.Top, keys.Quit))
	return lipgloss.JoinVertical(lipgloss.Left, m.viewport.View(), footer)
}

// articleMeta is the date, reading time and tags line shown under a title.
func articleMeta(p posts.Post, readingTime int) string {
	parts := []string{p.Date.Format("January 2, 2006")}
	if readingTime > 0 {
		parts = append(parts, fmt.Sprintf("%d min read", readingTime))
	}
	if len(p.Tags) > 0 {
		tags := make([]string, len(p.Tags))
		for i, t := range p.Tags {
			tags[i] = "#" + t
		}
		parts = append(parts, strings.Join(tags, " "))
	}
	return strings.Join(parts, " · ")
}
