// Package tui is the terminal rendition of the blog.
package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/arbitraryrw/folio/internal/posts"
	"github.com/arbitraryrw/folio/internal/site"
	"github.com/arbitraryrw/folio/internal/typing"
)

type screen int

const (
	screenHome screen = iota
	screenPost
)

type switchScreenMsg struct {
	target screen
}

// Options configures NewMainModel. Zero values fall back to the compiled-in
// site and posts.
type Options struct {
	Typing     typing.Config
	Index      *posts.Index
	Meta       *site.Metadata
	Profile    *site.Profile
	ContentDir string
	// StartSlug opens a post instead of the index.
	StartSlug string
}

// MainModel routes between the index and post screens.
type MainModel struct {
	currentScreen screen
	width         int
	height        int
	home          HomeModel
	post          PostModel
	index         *posts.Index
	meta          site.Metadata
	profile       site.Profile
	contentDir    string
	cache         *renderCache
}

func NewMainModel(opts Options) (MainModel, error) {
	if len(opts.Typing.Phrases) == 0 && opts.Typing.TypeDelay == 0 && opts.Typing.DeleteDelay == 0 {
		opts.Typing = typing.DefaultConfig(site.BannerPhrases)
	}
	if opts.Index == nil {
		opts.Index = posts.Default()
	}
	meta := site.Default
	if opts.Meta != nil {
		meta = *opts.Meta
	}
	profile := site.DefaultProfile
	if opts.Profile != nil {
		profile = *opts.Profile
	}

	banner, err := NewBannerModel(opts.Typing, profile)
	if err != nil {
		return MainModel{}, err
	}

	m := MainModel{
		currentScreen: screenHome,
		home:          NewHomeModel(banner, opts.Index, meta, profile),
		index:         opts.Index,
		meta:          meta,
		profile:       profile,
		contentDir:    opts.ContentDir,
		cache:         newRenderCache(),
	}
	if opts.StartSlug != "" {
		m.home.banner.Stop()
		m.post = m.newPost(opts.StartSlug)
		m.currentScreen = screenPost
	}
	return m, nil
}

func (m MainModel) newPost(slug string) PostModel {
	return NewPostModel(m.index, slug, m.contentDir, m.cache, m.meta, m.profile)
}

func (m MainModel) Init() tea.Cmd {
	if m.currentScreen == screenPost {
		return m.post.Init()
	}
	return m.home.Init()
}

func (m MainModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.home, _ = m.home.Update(msg)
		m.post, _ = m.post.Update(msg)
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}

	case openPostMsg:
		// The banner is torn down while a post is shown.
		m.home.banner.Stop()
		m.post = m.newPost(msg.slug)
		if m.width > 0 {
			m.post, _ = m.post.Update(tea.WindowSizeMsg{Width: m.width, Height: m.height})
		}
		m.currentScreen = screenPost
		return m, m.post.Init()

	case switchScreenMsg:
		m.currentScreen = msg.target
		if msg.target == screenHome {
			return m, m.home.banner.Start()
		}
		return m, nil
	}

	var cmd tea.Cmd
	switch m.currentScreen {
	case screenHome:
		m.home, cmd = m.home.Update(msg)
	case screenPost:
		m.post, cmd = m.post.Update(msg)
	}

	return m, cmd
}

func (m MainModel) View() string {
	switch m.currentScreen {
	case screenHome:
		return m.home.View()
	case screenPost:
		return m.post.View()
	default:
		return ""
	}
}
