package cmd

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/arbitraryrw/folio/internal/logging"
	"github.com/arbitraryrw/folio/internal/posts"
	"github.com/arbitraryrw/folio/internal/site"
	"github.com/arbitraryrw/folio/internal/typing"
)

var serveAddrFlag string

var serveCmd = &cobra.Command{
	Use:     "serve",
	Short:   "Serve the site metadata, posts and banner over HTTP",
	Long:    "Start a JSON API for the blog with a server-sent event stream of banner frames at /api/banner.",
	GroupID: "folio",
	RunE: func(cmd *cobra.Command, args []string) error {
		addr := serveAddrFlag
		if addr == "" {
			addr = cfg.ServeAddr
		}

		s := &siteServer{
			index:      posts.Default(),
			meta:       site.Default,
			profile:    site.DefaultProfile,
			typing:     cfg.Typing(),
			contentDir: cfg.ContentDir,
		}
		server := &http.Server{
			Addr:              addr,
			Handler:           s.router(),
			ReadHeaderTimeout: 5 * time.Second,
			IdleTimeout:       60 * time.Second,
		}
		logging.Logger.Info("serving", "addr", addr)
		return server.ListenAndServe()
	},
}

// siteServer answers the API routes. clock is nil outside tests.
type siteServer struct {
	index      *posts.Index
	meta       site.Metadata
	profile    site.Profile
	typing     typing.Config
	contentDir string
	clock      clock.Clock
}

func (s *siteServer) router() *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery(), requestLogger())

	r.GET("/healthz", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})
	api := r.Group("/api")
	api.GET("/site", s.handleSite)
	api.GET("/posts", s.handlePosts)
	api.GET("/posts/:slug", s.handlePost)
	api.GET("/banner", s.handleBanner)
	return r
}

func requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		logging.Logger.Info("request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"took", time.Since(start).Round(time.Microsecond),
		)
	}
}

func (s *siteServer) handleSite(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"site":    s.meta,
		"profile": s.profile,
		"banner":  s.typing.Phrases,
		"tags":    s.index.Tags(),
	})
}

func (s *siteServer) handlePosts(c *gin.Context) {
	n, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "page must be a number"})
		return
	}

	list := s.index.All()
	if tag := c.Query("tag"); tag != "" {
		list = s.index.ByTag(tag)
	}
	c.JSON(http.StatusOK, posts.Paginate(list, s.meta.IndexPageSize, n))
}

func (s *siteServer) handlePost(c *gin.Context) {
	slug := c.Param("slug")
	p, err := s.index.Get(slug)
	if errors.Is(err, posts.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "post not found", "slug": slug})
		return
	}
	previous, next, _ := s.index.Neighbors(slug)

	content, err := posts.LoadContent(s.contentDir, slug)
	switch {
	case errors.Is(err, posts.ErrNoContent):
		content = posts.Fallback(p)
	case err != nil:
		logging.Logger.Error("loading post content", "slug", slug, "err", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not load post"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"post":         p,
		"previous":     previous,
		"next":         next,
		"markdown":     content.Markdown,
		"reading_time": content.ReadingTime,
	})
}

// handleBanner streams one "frame" event per tick of a fresh animator until
// the client goes away.
func (s *siteServer) handleBanner(c *gin.Context) {
	anim, err := typing.New(s.typing)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	frames := make(chan typing.Frame, 1)
	r := typing.NewRunner(anim, s.clock, func(f typing.Frame) { offerFrame(frames, f) })

	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")
	c.Status(http.StatusOK)

	ctx := c.Request.Context()
	r.Start()
	defer r.Stop()
	logging.Logger.Debug("banner stream opened", "remote", c.ClientIP())

	for {
		select {
		case <-ctx.Done():
			logging.Logger.Debug("banner stream closed", "remote", c.ClientIP())
			return
		case f := <-frames:
			c.SSEvent("frame", f)
			c.Writer.Flush()
		}
	}
}

func init() {
	serveCmd.Flags().StringVar(&serveAddrFlag, "addr", "", "listen address (default FOLIO_SERVE_ADDR, PORT or :8080)")
	rootCmd.AddCommand(serveCmd)
}
