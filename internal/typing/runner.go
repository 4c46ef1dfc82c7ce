package typing

import (
	"sync"

	"github.com/benbjohnson/clock"
)

// Runner drives an Animator on a clock. Each tick schedules the next one,
// so at most one tick is ever pending.
type Runner struct {
	// deliver serializes ticks and their frame callbacks. It is taken
	// before mu so onFrame may call Stop.
	deliver sync.Mutex

	mu      sync.Mutex
	anim    *Animator
	clock   clock.Clock
	onFrame func(Frame)
	timer   *clock.Timer
	gen     uint64
	running bool
}

// NewRunner returns a stopped Runner. onFrame, if non-nil, is called after
// every tick with the new frame. It may call Stop but not Start.
func NewRunner(anim *Animator, clk clock.Clock, onFrame func(Frame)) *Runner {
	if clk == nil {
		clk = clock.New()
	}
	return &Runner{anim: anim, clock: clk, onFrame: onFrame}
}

// Start ticks once immediately and keeps ticking until Stop. Calling Start
// on a running Runner is a no-op.
func (r *Runner) Start() {
	r.deliver.Lock()
	defer r.deliver.Unlock()

	r.mu.Lock()
	if r.running {
		r.mu.Unlock()
		return
	}
	r.running = true
	r.gen++
	frame := r.stepLocked(r.gen)
	r.mu.Unlock()

	r.emit(frame)
}

// Stop cancels the pending tick. The animator state is kept, so a later
// Start resumes where it left off. Stop is idempotent.
func (r *Runner) Stop() {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.running {
		return
	}
	r.running = false
	r.gen++
	if r.timer != nil {
		r.timer.Stop()
		r.timer = nil
	}
}

// Running reports whether a tick chain is active.
func (r *Runner) Running() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.running
}

// Text returns the currently displayed text.
func (r *Runner) Text() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.anim.Text()
}

// Frame returns a snapshot of the animator.
func (r *Runner) Frame() Frame {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.anim.Frame()
}

func (r *Runner) fire(gen uint64) {
	r.deliver.Lock()
	defer r.deliver.Unlock()

	r.mu.Lock()
	if !r.running || gen != r.gen {
		// Stopped, or restarted, after this timer fired.
		r.mu.Unlock()
		return
	}
	frame := r.stepLocked(gen)
	r.mu.Unlock()

	r.emit(frame)
}

// stepLocked ticks the animator and schedules the next tick. r.mu must be
// held.
func (r *Runner) stepLocked(gen uint64) Frame {
	wait := r.anim.Tick()
	r.timer = r.clock.AfterFunc(wait, func() { r.fire(gen) })
	return r.anim.Frame()
}

func (r *Runner) emit(f Frame) {
	if r.onFrame != nil {
		r.onFrame(f)
	}
}
