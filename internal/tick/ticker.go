package tick

import (
	"context"
	"sync"
	"time"
)

const postQueue = 64

// Ticker runs its own loop at a fixed rate. Everything that touches the
// consumer's state from another goroutine must go through Post so it runs
// on the loop goroutine between frames.
type Ticker struct {
	interval time.Duration
	start    time.Time
	posted   chan func()

	mu sync.Mutex
	gate
}

func NewTicker(fps int) *Ticker {
	if fps <= 0 {
		fps = 60
	}
	return &Ticker{
		interval: time.Second / time.Duration(fps),
		start:    time.Now(),
		posted:   make(chan func(), postQueue),
	}
}

func (t *Ticker) Interval() time.Duration { return t.interval }

func (t *Ticker) Start(h Handler) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.gate.Start(h)
}

func (t *Ticker) Stop() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.gate.Stop()
}

func (t *Ticker) Pause() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.gate.Pause()
}

func (t *Ticker) Resume() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.gate.Resume()
}

// Post queues fn to run on the loop goroutine. It blocks while the queue is
// full and gives up when ctx is done.
func (t *Ticker) Post(ctx context.Context, fn func()) error {
	select {
	case t.posted <- fn:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Run delivers frames and posted functions until ctx is cancelled.
func (t *Ticker) Run(ctx context.Context) error {
	ticker := time.NewTicker(t.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case fn := <-t.posted:
			fn()
		case <-ticker.C:
			t.mu.Lock()
			h, ok := t.handler, t.gate.Running()
			t.mu.Unlock()
			if ok {
				h(time.Since(t.start))
			}
		}
	}
}

func (t *Ticker) Running() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.gate.Running()
}
