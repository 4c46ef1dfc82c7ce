package typing

import (
	"strings"

	"github.com/rivo/uniseg"
)

// phrase is a phrase split into user-perceived characters.
type phrase []string

func splitPhrase(s string) phrase {
	var p phrase
	g := uniseg.NewGraphemes(s)
	for g.Next() {
		p = append(p, g.Str())
	}
	return p
}

// prefix returns the first n characters, clamped to [0, len(p)].
func (p phrase) prefix(n int) string {
	if n <= 0 {
		return ""
	}
	if n > len(p) {
		n = len(p)
	}
	return strings.Join(p[:n], "")
}

// PhraseQueue is an ordered, mutable list of phrases owned by one Animator.
type PhraseQueue struct {
	phrases []phrase
	raw     []string
}

// NewPhraseQueue copies phrases into a new queue. The caller's slice is
// never referenced again.
func NewPhraseQueue(phrases []string) *PhraseQueue {
	q := &PhraseQueue{
		phrases: make([]phrase, 0, len(phrases)),
		raw:     make([]string, 0, len(phrases)),
	}
	for _, s := range phrases {
		q.phrases = append(q.phrases, splitPhrase(s))
		q.raw = append(q.raw, s)
	}
	return q
}

// Len returns the current number of phrases.
func (q *PhraseQueue) Len() int {
	return len(q.phrases)
}

// At returns the phrase at i modulo the current length.
func (q *PhraseQueue) At(i int) string {
	return q.raw[q.index(i)]
}

func (q *PhraseQueue) at(i int) phrase {
	return q.phrases[q.index(i)]
}

func (q *PhraseQueue) index(i int) int {
	n := len(q.phrases)
	i %= n
	if i < 0 {
		i += n
	}
	return i
}

// DropFirst removes the first phrase. A single-element queue is left intact
// so the modulo view always has something to index. Reports whether a
// phrase was removed.
func (q *PhraseQueue) DropFirst() bool {
	if len(q.phrases) <= 1 {
		return false
	}
	q.phrases = q.phrases[1:]
	q.raw = q.raw[1:]
	return true
}

// Strings returns a copy of the phrases in order.
func (q *PhraseQueue) Strings() []string {
	out := make([]string, len(q.raw))
	copy(out, q.raw)
	return out
}
