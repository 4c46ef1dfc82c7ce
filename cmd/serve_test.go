package cmd

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/gin-gonic/gin"

	"github.com/arbitraryrw/folio/internal/posts"
	"github.com/arbitraryrw/folio/internal/site"
	"github.com/arbitraryrw/folio/internal/typing"
)

func newTestServer(t *testing.T) (*siteServer, *gin.Engine) {
	t.Helper()
	s := &siteServer{
		index:      posts.Default(),
		meta:       site.Default,
		profile:    site.DefaultProfile,
		typing:     typing.Config{Phrases: []string{"Hi", "Yo"}, TypeDelay: 150 * time.Millisecond, DeleteDelay: 50 * time.Millisecond},
		contentDir: t.TempDir(),
		clock:      clock.NewMock(),
	}
	return s, s.router()
}

func get(t *testing.T, r http.Handler, target string) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("GET", target, nil))
	return w
}

func TestServeHealthz(t *testing.T) {
	_, r := newTestServer(t)
	w := get(t, r, "/healthz")
	if w.Code != http.StatusOK || w.Body.String() != "ok" {
		t.Fatalf("unexpected healthz response: %d %q", w.Code, w.Body.String())
	}
}

func TestServeSite(t *testing.T) {
	_, r := newTestServer(t)
	w := get(t, r, "/api/site")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var body struct {
		Site    site.Metadata `json:"site"`
		Profile site.Profile  `json:"profile"`
		Banner  []string      `json:"banner"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decoding: %v", err)
	}
	if body.Site.FooterTitle != site.Default.FooterTitle {
		t.Errorf("unexpected site: %+v", body.Site)
	}
	if len(body.Profile.Social) != 3 {
		t.Errorf("expected 3 social links, got %d", len(body.Profile.Social))
	}
	if len(body.Banner) != 2 || body.Banner[0] != "Hi" {
		t.Errorf("unexpected banner phrases: %v", body.Banner)
	}
}

func TestServePosts(t *testing.T) {
	_, r := newTestServer(t)

	tests := []struct {
		name      string
		target    string
		wantPage  int
		wantTotal int
		wantCount int
	}{
		{name: "first page", target: "/api/posts", wantPage: 1, wantTotal: 2, wantCount: 5},
		{name: "second page", target: "/api/posts?page=2", wantPage: 2, wantTotal: 2, wantCount: 5},
		{name: "clamped", target: "/api/posts?page=9", wantPage: 2, wantTotal: 2, wantCount: 5},
		{name: "tag", target: "/api/posts?tag=android", wantPage: 1, wantTotal: 1, wantCount: 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := get(t, r, tt.target)
			if w.Code != http.StatusOK {
				t.Fatalf("expected 200, got %d", w.Code)
			}
			var page posts.Page
			if err := json.Unmarshal(w.Body.Bytes(), &page); err != nil {
				t.Fatalf("decoding: %v", err)
			}
			if page.Number != tt.wantPage || page.TotalPages != tt.wantTotal || len(page.Posts) != tt.wantCount {
				t.Errorf("got page %d of %d with %d posts", page.Number, page.TotalPages, len(page.Posts))
			}
		})
	}
}

func TestServePostsBadPage(t *testing.T) {
	_, r := newTestServer(t)
	if w := get(t, r, "/api/posts?page=abc"); w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestServePostNotFound(t *testing.T) {
	_, r := newTestServer(t)
	w := get(t, r, "/api/posts/missing")
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "post not found") {
		t.Errorf("unexpected body: %s", w.Body.String())
	}
}

func TestServePost(t *testing.T) {
	s, r := newTestServer(t)
	const slug = "2020-09-05-r2con2020"

	var body struct {
		Post        posts.Post     `json:"post"`
		Previous    *posts.Details `json:"previous"`
		Next        *posts.Details `json:"next"`
		Markdown    string         `json:"markdown"`
		ReadingTime int            `json:"reading_time"`
	}

	w := get(t, r, "/api/posts/"+slug)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decoding: %v", err)
	}
	if body.Post.Slug != slug || body.Previous == nil || body.Next == nil {
		t.Fatalf("unexpected post response: %+v", body)
	}
	if !strings.HasPrefix(body.Markdown, body.Post.Spoiler) {
		t.Errorf("expected spoiler fallback, got %q", body.Markdown)
	}

	if err := os.WriteFile(filepath.Join(s.contentDir, slug+".md"), []byte("# Cyberlock\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	w = get(t, r, "/api/posts/"+slug)
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decoding: %v", err)
	}
	if body.Markdown != "# Cyberlock\n" || body.ReadingTime != 1 {
		t.Errorf("expected document content, got %q (%d min)", body.Markdown, body.ReadingTime)
	}
}

func TestServeBannerStreamsFrames(t *testing.T) {
	_, r := newTestServer(t)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	req := httptest.NewRequest("GET", "/api/banner", nil).WithContext(ctx)
	w := httptest.NewRecorder()

	// Returns once the client context is done.
	r.ServeHTTP(w, req)

	if ct := w.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/event-stream") {
		t.Errorf("expected event stream, got %q", ct)
	}
	body := w.Body.String()
	if !strings.Contains(body, "event:frame") {
		t.Fatalf("expected a frame event, got %q", body)
	}
	if !strings.Contains(body, `"text":"H"`) || !strings.Contains(body, `"direction":"typing"`) {
		t.Errorf("expected first typed frame, got %q", body)
	}
}
