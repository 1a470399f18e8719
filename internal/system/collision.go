package system

import (
	"go-rain-overlay/internal/component"
)

// Hit describes where a streak struck.
type Hit struct {
	X, Y  float64
	Floor bool
	Index int // индекс препятствия, -1 для пола
}

// CollisionSystem tests streaks against obstacle top edges and the floor.
type CollisionSystem struct {
	tuning    *Tuning
	colliders []component.Collider
}

func NewCollisionSystem(tuning *Tuning) *CollisionSystem {
	return &CollisionSystem{tuning: tuning}
}

// SetColliders replaces the obstacle list wholesale. The slice is owned by
// the system afterwards.
func (s *CollisionSystem) SetColliders(colliders []component.Collider) {
	s.colliders = colliders
}

func (s *CollisionSystem) Colliders() []component.Collider {
	return s.colliders
}

// Test reports the first obstacle whose padded top edge the streak crossed
// this frame (prevY < top <= y, x within the horizontal span), checking
// obstacles in order. The floor is only considered when no obstacle was hit.
func (s *CollisionSystem) Test(d *component.Streak) (Hit, bool) {
	pad := s.tuning.Opts.CollidePadding
	for i, r := range s.colliders {
		top := r.Top - pad
		if d.PrevY < top && d.Y >= top && r.SpansX(d.X) {
			return Hit{X: d.X, Y: top, Index: i}, true
		}
	}
	if floor := s.tuning.Floor(); d.Y > floor {
		return Hit{X: d.X, Y: floor, Floor: true, Index: -1}, true
	}
	return Hit{}, false
}
