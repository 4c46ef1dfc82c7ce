package typing

import (
	"reflect"
	"testing"
)

func TestPhraseQueueAtWraps(t *testing.T) {
	q := NewPhraseQueue([]string{"a", "b", "c"})
	tests := []struct {
		i    int
		want string
	}{
		{0, "a"}, {2, "c"}, {3, "a"}, {7, "b"}, {-1, "c"},
	}
	for _, tt := range tests {
		if got := q.At(tt.i); got != tt.want {
			t.Errorf("At(%d) = %q, want %q", tt.i, got, tt.want)
		}
	}
}

func TestPhraseQueueDropFirst(t *testing.T) {
	q := NewPhraseQueue([]string{"intro", "b"})
	if !q.DropFirst() {
		t.Fatal("expected removal from two-element queue")
	}
	if got := q.Strings(); !reflect.DeepEqual(got, []string{"b"}) {
		t.Fatalf("expected [b], got %q", got)
	}
	if q.DropFirst() {
		t.Fatal("expected single-element queue to refuse removal")
	}
	if q.Len() != 1 {
		t.Fatalf("expected len 1, got %d", q.Len())
	}
}

func TestPhraseQueueStringsIsCopy(t *testing.T) {
	q := NewPhraseQueue([]string{"a"})
	s := q.Strings()
	s[0] = "z"
	if q.At(0) != "a" {
		t.Fatal("expected Strings to return a copy")
	}
}

func TestPhrasePrefixClamps(t *testing.T) {
	p := splitPhrase("héllo")
	if got := p.prefix(2); got != "hé" {
		t.Errorf("prefix(2) = %q", got)
	}
	if got := p.prefix(99); got != "héllo" {
		t.Errorf("prefix(99) = %q", got)
	}
	if got := p.prefix(-1); got != "" {
		t.Errorf("prefix(-1) = %q", got)
	}
}
