// Package tick drives the overlay's frame loop. A Source calls its handler
// once per frame with the time elapsed since the source was created; the
// simulation never talks to a host clock directly.
package tick

import "time"

// Handler is called once per frame on the loop goroutine.
type Handler func(now time.Duration)

// Source is a frame scheduler with start/stop/pause semantics.
type Source interface {
	// Start installs the handler and begins delivering frames.
	Start(h Handler)
	// Stop ends delivery; the handler is dropped.
	Stop()
	// Pause suspends delivery until Resume.
	Pause()
	Resume()
}

// gate holds the delivery state shared by every source.
type gate struct {
	handler Handler
	paused  bool
}

func (g *gate) Start(h Handler) { g.handler, g.paused = h, false }
func (g *gate) Stop()           { g.handler = nil }
func (g *gate) Pause()          { g.paused = true }
func (g *gate) Resume()         { g.paused = false }

// Running reports whether frames are currently delivered.
func (g *gate) Running() bool { return g.handler != nil && !g.paused }

func (g *gate) fire(now time.Duration) bool {
	if !g.Running() {
		return false
	}
	g.handler(now)
	return true
}

// Manual delivers frames only when Advance is called. Used by tests and
// headless tools.
type Manual struct {
	gate
	now time.Duration
}

func NewManual() *Manual {
	return &Manual{}
}

// Advance moves the clock by dt and delivers one frame. The clock moves even
// while paused, so a resumed consumer sees the gap.
func (m *Manual) Advance(dt time.Duration) bool {
	m.now += dt
	return m.fire(m.now)
}

// Now returns the manual clock.
func (m *Manual) Now() time.Duration { return m.now }

// Frames delivers one frame per Pulse. The ebiten window pulses it from
// Update, which ebiten calls at its fixed TPS.
type Frames struct {
	gate
	clock func() time.Duration
}

// NewFrames returns a Frames reading clock; a nil clock uses wall time since
// the call.
func NewFrames(clock func() time.Duration) *Frames {
	if clock == nil {
		start := time.Now()
		clock = func() time.Duration { return time.Since(start) }
	}
	return &Frames{clock: clock}
}

func (f *Frames) Pulse() bool {
	return f.fire(f.clock())
}

// Observed wraps a Source so After runs right after every frame the consumer
// receives, e.g. to draw it. Pause and Stop pass through.
type Observed struct {
	Source
	After Handler
}

func (o Observed) Start(h Handler) {
	o.Source.Start(func(now time.Duration) {
		h(now)
		if o.After != nil {
			o.After(now)
		}
	})
}
