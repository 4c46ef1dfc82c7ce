// Package posts is the blog's post index. Post metadata is compiled in; the
// long-form content is authored elsewhere and loaded from a content
// directory.
package posts

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"
)

// ErrNotFound is returned for a slug that is not in the index.
var ErrNotFound = errors.New("post not found")

// Post is the metadata record for one article.
type Post struct {
	Slug    string    `json:"slug"`
	Title   string    `json:"title"`
	Date    time.Time `json:"date"`
	Tags    []string  `json:"tags"`
	Spoiler string    `json:"spoiler"`
}

// Details is the short form used for previous/next links.
type Details struct {
	Slug  string `json:"slug"`
	Title string `json:"title"`
}

func (p Post) Details() *Details {
	return &Details{Slug: p.Slug, Title: p.Title}
}

// HasTag reports whether p is tagged with tag, ignoring case.
func (p Post) HasTag(tag string) bool {
	for _, t := range p.Tags {
		if strings.EqualFold(t, tag) {
			return true
		}
	}
	return false
}

// Index is an immutable list of posts sorted newest first.
type Index struct {
	posts []Post
}

// NewIndex sorts a copy of ps newest first. Slugs must be unique and start
// with a YYYY-MM-DD date when Date is unset.
func NewIndex(ps []Post) (*Index, error) {
	out := make([]Post, len(ps))
	copy(out, ps)

	seen := make(map[string]bool, len(out))
	for i := range out {
		p := &out[i]
		if p.Slug == "" {
			return nil, fmt.Errorf("post %d has no slug", i)
		}
		if seen[p.Slug] {
			return nil, fmt.Errorf("duplicate post slug %q", p.Slug)
		}
		seen[p.Slug] = true

		if p.Date.IsZero() {
			d, err := dateFromSlug(p.Slug)
			if err != nil {
				return nil, err
			}
			p.Date = d
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date.After(out[j].Date)
	})
	return &Index{posts: out}, nil
}

func dateFromSlug(slug string) (time.Time, error) {
	if len(slug) < len("2006-01-02") {
		return time.Time{}, fmt.Errorf("slug %q has no date prefix", slug)
	}
	d, err := time.Parse("2006-01-02", slug[:10])
	if err != nil {
		return time.Time{}, fmt.Errorf("parsing date of %q: %w", slug, err)
	}
	return d, nil
}

// Len returns the number of posts.
func (x *Index) Len() int { return len(x.posts) }

// All returns every post, newest first.
func (x *Index) All() []Post {
	out := make([]Post, len(x.posts))
	copy(out, x.posts)
	return out
}

// Get returns the post with the given slug.
func (x *Index) Get(slug string) (Post, error) {
	for _, p := range x.posts {
		if p.Slug == slug {
			return p, nil
		}
	}
	return Post{}, fmt.Errorf("%w: %q", ErrNotFound, slug)
}

// ByTag returns the posts tagged with tag, newest first.
func (x *Index) ByTag(tag string) []Post {
	var out []Post
	for _, p := range x.posts {
		if p.HasTag(tag) {
			out = append(out, p)
		}
	}
	return out
}

// Tags returns every distinct tag, sorted.
func (x *Index) Tags() []string {
	seen := make(map[string]bool)
	var out []string
	for _, p := range x.posts {
		for _, t := range p.Tags {
			if !seen[t] {
				seen[t] = true
				out = append(out, t)
			}
		}
	}
	sort.Strings(out)
	return out
}

// Neighbors returns the older (previous) and newer (next) posts around
// slug. Either may be nil at the ends of the index.
func (x *Index) Neighbors(slug string) (previous, next *Details, err error) {
	for i, p := range x.posts {
		if p.Slug != slug {
			continue
		}
		if i+1 < len(x.posts) {
			previous = x.posts[i+1].Details()
		}
		if i > 0 {
			next = x.posts[i-1].Details()
		}
		return previous, next, nil
	}
	return nil, nil, fmt.Errorf("%w: %q", ErrNotFound, slug)
}

// Page is one page of the index listing.
type Page struct {
	Number     int    `json:"number"`
	TotalPages int    `json:"total_pages"`
	Posts      []Post `json:"posts"`
}

func (p Page) HasPrevious() bool { return p.Number > 1 }
func (p Page) HasNext() bool     { return p.Number < p.TotalPages }

// Paginate splits ps into pages of size and returns page n (1-based). n is
// clamped into range; an empty list yields a single empty page.
func Paginate(ps []Post, size, n int) Page {
	if size <= 0 {
		size = len(ps)
		if size == 0 {
			size = 1
		}
	}
	total := (len(ps) + size - 1) / size
	if total == 0 {
		total = 1
	}
	if n < 1 {
		n = 1
	}
	if n > total {
		n = total
	}

	start := (n - 1) * size
	end := start + size
	if end > len(ps) {
		end = len(ps)
	}
	page := Page{Number: n, TotalPages: total}
	if start < end {
		page.Posts = append([]Post(nil), ps[start:end]...)
	}
	return page
}

// Page returns page n of the full index.
func (x *Index) Page(size, n int) Page {
	return Paginate(x.posts, size, n)
}
