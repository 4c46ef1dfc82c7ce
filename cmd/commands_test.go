package cmd

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/arbitraryrw/folio/internal/typing"
)

func runRoot(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("FOLIO_LOG_LEVEL", "error")
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestOfferFrameKeepsLatest(t *testing.T) {
	ch := make(chan typing.Frame, 1)
	offerFrame(ch, typing.Frame{Text: "H"})
	offerFrame(ch, typing.Frame{Text: "Hi"})
	if f := <-ch; f.Text != "Hi" {
		t.Fatalf("expected latest frame, got %q", f.Text)
	}
	select {
	case f := <-ch:
		t.Fatalf("expected one frame, got extra %q", f.Text)
	default:
	}
}

func TestPlayBanner(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 40*time.Millisecond)
	defer cancel()

	var out bytes.Buffer
	tc := typing.Config{Phrases: []string{"Hi"}, TypeDelay: time.Millisecond, DeleteDelay: time.Millisecond}
	if err := playBanner(ctx, &out, tc); err != nil {
		t.Fatalf("playBanner returned error: %v", err)
	}
	got := out.String()
	if !strings.Contains(got, clearLine) || !strings.Contains(got, "H") {
		t.Fatalf("expected rewritten banner line, got %q", got)
	}
	if !strings.HasSuffix(got, "\n") {
		t.Error("expected trailing newline on exit")
	}
}

func TestPlayBannerRejectsEmptyPhrases(t *testing.T) {
	err := playBanner(context.Background(), &bytes.Buffer{}, typing.Config{TypeDelay: time.Millisecond, DeleteDelay: time.Millisecond})
	if err == nil {
		t.Fatal("expected invalid configuration error")
	}
}

func TestBannerCommandUsesEnvPhrases(t *testing.T) {
	t.Setenv("FOLIO_BANNER_PHRASES", "Yo|Hey")
	t.Setenv("FOLIO_TYPE_DELAY", "1")
	t.Setenv("FOLIO_DELETE_DELAY", "1")
	out, err := runRoot(t, "banner", "--duration", "30ms")
	if err != nil {
		t.Fatalf("banner returned error: %v", err)
	}
	if !strings.Contains(out, "Y") {
		t.Fatalf("expected banner output, got %q", out)
	}
}

func TestPostsCommand(t *testing.T) {
	out, err := runRoot(t, "posts", "--page", "1", "--tag", "")
	if err != nil {
		t.Fatalf("posts returned error: %v", err)
	}
	for _, want := range []string{"Page:   1 of 2", "Posts:  10", "2022-05-29  Automating Templated JSON Fuzzing / Unit Testing"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected output to contain %q, got:\n%s", want, out)
		}
	}
}

func TestPostsCommandTag(t *testing.T) {
	out, err := runRoot(t, "posts", "--page", "1", "--tag", "ctf")
	if err != nil {
		t.Fatalf("posts returned error: %v", err)
	}
	if !strings.Contains(out, "Posts:  2") || !strings.Contains(out, "2020-09-05-r2con2020") {
		t.Errorf("unexpected output:\n%s", out)
	}

	_, err = runRoot(t, "posts", "--page", "1", "--tag", "cooking")
	if err == nil || !strings.Contains(err.Error(), "no posts tagged") {
		t.Fatalf("expected unknown tag error, got %v", err)
	}
}

func TestVersionCommand(t *testing.T) {
	out, err := runRoot(t, "version")
	if err != nil {
		t.Fatalf("version returned error: %v", err)
	}
	if !strings.HasPrefix(out, "folio dev") {
		t.Errorf("unexpected version output %q", out)
	}
}

func TestInvalidConfigFailsFast(t *testing.T) {
	t.Setenv("FOLIO_TYPE_DELAY", "soon")
	if _, err := runRoot(t, "version"); err == nil {
		t.Fatal("expected config error")
	}
}
