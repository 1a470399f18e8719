package system

import (
	"testing"

	"pgregory.net/rapid"

	"go-rain-overlay/internal/component"
	"go-rain-overlay/internal/config"
)

func TestStreakInvariants(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		width := float64(rapid.IntRange(320, 2560).Draw(t, "width"))
		height := float64(rapid.IntRange(240, 1440).Draw(t, "height"))
		tuning := newTuning(width, height)
		r := newRig(rapid.Int64Range(1, 1<<40).Draw(t, "seed"), tuning)

		var colliders []component.Collider
		for i := rapid.IntRange(0, 5).Draw(t, "colliders"); i > 0; i-- {
			left := rapid.Float64Range(0, width).Draw(t, "left")
			top := rapid.Float64Range(0, height).Draw(t, "top")
			colliders = append(colliders, component.Collider{
				Left: left, Top: top,
				Right:  left + rapid.Float64Range(1, width).Draw(t, "w"),
				Bottom: top + rapid.Float64Range(1, height).Draw(t, "h"),
			})
		}
		r.collision.SetColliders(colliders)

		n := rapid.IntRange(1, 60).Draw(t, "streaks")
		for i := 0; i < n; i++ {
			y := rapid.Float64Range(-height, height).Draw(t, "y")
			r.rain.Spawn(&y)
		}

		steps := rapid.SliceOfN(rapid.Float64Range(0.001, config.MaxDeltaTime), 1, 120).Draw(t, "steps")
		for _, dt := range steps {
			before := append([]component.Streak(nil), r.world.Streaks...)
			r.world.Time += dt
			impacts := r.rain.Update(dt)

			if len(r.world.Streaks) != len(before) {
				t.Fatalf("population changed: %d -> %d", len(before), len(r.world.Streaks))
			}
			replaced := 0
			for i, d := range r.world.Streaks {
				if d.VY <= 0 {
					t.Fatalf("streak %d has vy %g", i, d.VY)
				}
				if d.Z != before[i].Z || d.WindPhase != before[i].WindPhase {
					// respawned in place
					replaced++
					continue
				}
				if d.PrevY != before[i].Y || d.Y < d.PrevY {
					t.Fatalf("streak %d moved up: %g -> %g", i, before[i].Y, d.Y)
				}
			}
			if replaced != impacts {
				t.Fatalf("%d streaks replaced for %d impacts", replaced, impacts)
			}
		}
	})
}
