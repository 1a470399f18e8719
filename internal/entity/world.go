package entity

import (
	"go-rain-overlay/internal/component"
)

// World owns the three particle populations of one overlay instance.
// Nothing outside the simulation loop reads or writes it.
type World struct {
	Time     float64 // время симуляции, с
	Streaks  []component.Streak
	Droplets []component.Droplet
	Ripples  []component.Ripple

	dropletCap int
	rippleCap  int
}

func NewWorld(dropletCap, rippleCap int) *World {
	return &World{
		Streaks:    make([]component.Streak, 0, 128),
		Droplets:   make([]component.Droplet, 0, dropletCap),
		Ripples:    make([]component.Ripple, 0, rippleCap),
		dropletCap: dropletCap,
		rippleCap:  rippleCap,
	}
}

// DropletCap returns the maximum number of live droplets.
func (w *World) DropletCap() int { return w.dropletCap }

// RippleCap returns the maximum number of live ripples.
func (w *World) RippleCap() int { return w.rippleCap }

func (w *World) AddStreak(s component.Streak) {
	w.Streaks = append(w.Streaks, s)
}

// TruncateStreaks drops streaks from the tail until at most n remain.
func (w *World) TruncateStreaks(n int) {
	if n < 0 {
		n = 0
	}
	if len(w.Streaks) > n {
		w.Streaks = w.Streaks[:n]
	}
}

// AddDroplet appends d, evicting the oldest droplets past the cap.
func (w *World) AddDroplet(d component.Droplet) {
	w.Droplets = append(w.Droplets, d)
	if excess := len(w.Droplets) - w.dropletCap; excess > 0 {
		w.Droplets = evict(w.Droplets, excess)
	}
}

// AddRipple appends r, evicting the oldest ripples past the cap.
func (w *World) AddRipple(r component.Ripple) {
	w.Ripples = append(w.Ripples, r)
	if excess := len(w.Ripples) - w.rippleCap; excess > 0 {
		w.Ripples = evict(w.Ripples, excess)
	}
}

// Reset empties every population but keeps the backing arrays.
func (w *World) Reset() {
	w.Time = 0
	w.Streaks = w.Streaks[:0]
	w.Droplets = w.Droplets[:0]
	w.Ripples = w.Ripples[:0]
}

// evict removes the first n entries, keeping order and capacity.
func evict[T any](s []T, n int) []T {
	kept := copy(s, s[n:])
	return s[:kept]
}
