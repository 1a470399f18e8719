package entity

import (
	"testing"

	"go-rain-overlay/internal/component"
)

func TestAddDropletEvictsOldest(t *testing.T) {
	w := NewWorld(3, 2)
	for i := 0; i < 5; i++ {
		w.AddDroplet(component.Droplet{X: float64(i), Life: 1})
	}
	if len(w.Droplets) != 3 {
		t.Fatalf("expected 3 droplets, got %d", len(w.Droplets))
	}
	for i, d := range w.Droplets {
		if want := float64(i + 2); d.X != want {
			t.Fatalf("droplet %d: X=%v, want %v (oldest first evicted)", i, d.X, want)
		}
	}
}

func TestAddRippleEvictsOldest(t *testing.T) {
	w := NewWorld(10, 2)
	for i := 0; i < 4; i++ {
		w.AddRipple(component.Ripple{X: float64(i)})
	}
	if len(w.Ripples) != 2 {
		t.Fatalf("expected 2 ripples, got %d", len(w.Ripples))
	}
	if w.Ripples[0].X != 2 || w.Ripples[1].X != 3 {
		t.Fatalf("unexpected ripples after eviction: %+v", w.Ripples)
	}
}

func TestTruncateStreaks(t *testing.T) {
	w := NewWorld(10, 10)
	for i := 0; i < 5; i++ {
		w.AddStreak(component.Streak{X: float64(i)})
	}
	w.TruncateStreaks(7)
	if len(w.Streaks) != 5 {
		t.Fatalf("truncate above length changed count: %d", len(w.Streaks))
	}
	w.TruncateStreaks(2)
	if len(w.Streaks) != 2 || w.Streaks[1].X != 1 {
		t.Fatalf("unexpected streaks: %+v", w.Streaks)
	}
	w.TruncateStreaks(-1)
	if len(w.Streaks) != 0 {
		t.Fatalf("negative truncate should empty, got %d", len(w.Streaks))
	}
}

func TestReset(t *testing.T) {
	w := NewWorld(4, 4)
	w.Time = 3
	w.AddStreak(component.Streak{})
	w.AddDroplet(component.Droplet{})
	w.AddRipple(component.Ripple{})
	w.Reset()
	if w.Time != 0 || len(w.Streaks)+len(w.Droplets)+len(w.Ripples) != 0 {
		t.Fatalf("reset left state behind: %+v", w)
	}
}
