// Package typing implements the typewriter banner: a phrase queue that is
// typed out and erased one character at a time, with the intro phrase
// dropped after the first full pass.
package typing

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidConfiguration is returned when an Animator cannot be built from
// the given Config.
var ErrInvalidConfiguration = errors.New("invalid typing configuration")

const (
	DefaultTypeDelay   = 200 * time.Millisecond
	DefaultDeleteDelay = 50 * time.Millisecond
)

// Direction is whether the active phrase is growing or shrinking.
type Direction int

const (
	Typing Direction = iota
	Deleting
)

func (d Direction) String() string {
	switch d {
	case Typing:
		return "typing"
	case Deleting:
		return "deleting"
	default:
		return fmt.Sprintf("direction(%d)", int(d))
	}
}

// Config holds the phrases and timing for an Animator.
type Config struct {
	Phrases     []string
	TypeDelay   time.Duration
	DeleteDelay time.Duration
}

// DefaultConfig returns a Config for phrases with the default delays.
func DefaultConfig(phrases []string) Config {
	return Config{
		Phrases:     phrases,
		TypeDelay:   DefaultTypeDelay,
		DeleteDelay: DefaultDeleteDelay,
	}
}

// Validate reports whether c can build an Animator.
func (c Config) Validate() error {
	if len(c.Phrases) == 0 {
		return fmt.Errorf("%w: phrase list is empty", ErrInvalidConfiguration)
	}
	if c.TypeDelay <= 0 {
		return fmt.Errorf("%w: type delay must be positive, got %s", ErrInvalidConfiguration, c.TypeDelay)
	}
	if c.DeleteDelay <= 0 {
		return fmt.Errorf("%w: delete delay must be positive, got %s", ErrInvalidConfiguration, c.DeleteDelay)
	}
	return nil
}

// Animator is the typing state machine. It is not safe for concurrent use;
// Runner and the TUI banner serialize calls to Tick.
type Animator struct {
	queue       *PhraseQueue
	typeDelay   time.Duration
	deleteDelay time.Duration

	phraseIndex int
	shown       int
	direction   Direction
	firstCycle  bool
	delay       time.Duration
}

// New builds an Animator in its initial state: nothing shown, typing the
// first phrase.
func New(cfg Config) (*Animator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Animator{
		queue:       NewPhraseQueue(cfg.Phrases),
		typeDelay:   cfg.TypeDelay,
		deleteDelay: cfg.DeleteDelay,
		direction:   Typing,
		firstCycle:  true,
		delay:       cfg.TypeDelay,
	}, nil
}

// Tick advances the machine by one character and returns how long to wait
// before the next tick. The returned delay is the one decided by the
// previous tick, so a direction change only changes pacing from the tick
// after next.
func (a *Animator) Tick() time.Duration {
	wait := a.delay
	active := a.queue.at(a.phraseIndex)

	switch a.direction {
	case Typing:
		if a.shown < len(active) {
			a.shown++
		}
	case Deleting:
		if a.shown > 0 {
			a.shown--
		}
	}

	switch {
	case a.direction == Typing && a.shown == len(active):
		a.direction = Deleting
	case a.direction == Deleting && a.shown == 0:
		// phraseIndex is not reset when the intro is dropped; it keeps
		// indexing the shrunken queue through the modulo view.
		if a.firstCycle && a.phraseIndex+1 == a.queue.Len() {
			a.queue.DropFirst()
			a.firstCycle = false
		} else {
			a.phraseIndex++
		}
		a.direction = Typing
	}

	if a.direction == Deleting {
		a.delay = a.deleteDelay
	} else {
		a.delay = a.typeDelay
	}
	return wait
}

// Text returns the currently displayed prefix of the active phrase.
func (a *Animator) Text() string {
	return a.queue.at(a.phraseIndex).prefix(a.shown)
}

// Active returns the phrase currently being typed or erased.
func (a *Animator) Active() string {
	return a.queue.At(a.phraseIndex)
}

func (a *Animator) Direction() Direction { return a.direction }

// PhraseIndex returns the raw, never-wrapped phrase counter.
func (a *Animator) PhraseIndex() int { return a.phraseIndex }

// FirstCycle reports whether the intro phrase is still in the queue.
func (a *Animator) FirstCycle() bool { return a.firstCycle }

// Delay returns the delay that the next Tick will return.
func (a *Animator) Delay() time.Duration { return a.delay }

// Phrases returns a copy of the current phrase queue.
func (a *Animator) Phrases() []string { return a.queue.Strings() }

// Frame is a snapshot of what the banner shows after a tick.
type Frame struct {
	Text        string    `json:"text"`
	Direction   Direction `json:"-"`
	State       string    `json:"direction"`
	PhraseIndex int       `json:"phrase_index"`
	Phrases     []string  `json:"phrases"`
}

// Frame snapshots the current state.
func (a *Animator) Frame() Frame {
	return Frame{
		Text:        a.Text(),
		Direction:   a.direction,
		State:       a.direction.String(),
		PhraseIndex: a.phraseIndex,
		Phrases:     a.queue.Strings(),
	}
}
