package tui

import (
	"strings"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/bubbles/cursor"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/arbitraryrw/folio/internal/site"
	"github.com/arbitraryrw/folio/internal/typing"
)

var lastBannerID int64

func nextBannerID() int {
	return int(atomic.AddInt64(&lastBannerID, 1))
}

// bannerTickMsg drives one banner. tag changes on every Stop/Start so ticks
// from a cancelled chain are dropped on arrival.
type bannerTickMsg struct {
	id  int
	tag int
}

// BannerModel renders the typewriter banner with a blinking cursor, the
// tagline and the social links.
type BannerModel struct {
	id      int
	tag     int
	running bool
	anim    *typing.Animator
	cursor  cursor.Model
	profile site.Profile
}

// NewBannerModel returns a running banner; Init schedules its first tick.
func NewBannerModel(cfg typing.Config, profile site.Profile) (BannerModel, error) {
	anim, err := typing.New(cfg)
	if err != nil {
		return BannerModel{}, err
	}

	c := cursor.New()
	c.SetChar(" ")
	c.Style = bannerCursorStyle
	c.Focus()

	return BannerModel{
		id:      nextBannerID(),
		running: true,
		anim:    anim,
		cursor:  c,
		profile: profile,
	}, nil
}

func (m BannerModel) Init() tea.Cmd {
	if !m.running {
		return nil
	}
	return tea.Batch(m.tick(0), cursor.Blink)
}

// Start resumes ticking. It returns nil if the banner is already running,
// so a second chain is never scheduled.
func (m *BannerModel) Start() tea.Cmd {
	if m.running {
		return nil
	}
	m.running = true
	m.tag++
	return tea.Batch(m.tick(0), cursor.Blink)
}

// Stop cancels the pending tick. The animation state is kept.
func (m *BannerModel) Stop() {
	if !m.running {
		return
	}
	m.running = false
	m.tag++
}

func (m BannerModel) Running() bool { return m.running }

// Text is the typed text without the cursor.
func (m BannerModel) Text() string { return m.anim.Text() }

func (m BannerModel) tick(d time.Duration) tea.Cmd {
	id, tag := m.id, m.tag
	if d <= 0 {
		return func() tea.Msg { return bannerTickMsg{id: id, tag: tag} }
	}
	return tea.Tick(d, func(time.Time) tea.Msg {
		return bannerTickMsg{id: id, tag: tag}
	})
}

func (m BannerModel) Update(msg tea.Msg) (BannerModel, tea.Cmd) {
	switch msg := msg.(type) {
	case bannerTickMsg:
		if msg.id != m.id || msg.tag != m.tag || !m.running {
			return m, nil
		}
		wait := m.anim.Tick()
		return m, m.tick(wait)
	}

	var cmd tea.Cmd
	m.cursor, cmd = m.cursor.Update(msg)
	return m, cmd
}

func (m BannerModel) View() string {
	text := bannerTextStyle.Render(m.anim.Text()) + m.cursor.View()
	lines := []string{
		text,
		taglineStyle.Render(m.profile.Tagline),
		"",
		renderSocial(m.profile),
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func renderSocial(p site.Profile) string {
	var icons []string
	for _, l := range p.Social {
		icons = append(icons, socialStyle.Render("["+l.Icon+"] "+l.Name))
	}
	row := strings.Join(icons, "")
	if p.Location != "" {
		row = lipgloss.JoinVertical(lipgloss.Left, row, taglineStyle.Render("@ "+p.Location))
	}
	return row
}

func renderBio(p site.Profile, width int) string {
	if width < 20 {
		width = 20
	}
	return bioStyle.Width(width).Render(p.Bio)
}
