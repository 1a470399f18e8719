// Package obstacle supplies the rectangles falling streaks collide with.
package obstacle

import "go-rain-overlay/internal/component"

// Provider returns the current obstacle rectangles in screen space. The order
// of the returned slice is the order collisions are tested in, so it must be
// stable between calls for the same layout.
type Provider interface {
	Colliders() []component.Collider
}

// Resizer is implemented by providers whose geometry depends on the viewport.
type Resizer interface {
	Resize(width, height int)
}

// Static is a fixed list of rectangles.
type Static []component.Collider

func (s Static) Colliders() []component.Collider {
	out := make([]component.Collider, 0, len(s))
	for _, c := range s {
		if c.Empty() {
			continue
		}
		out = append(out, c)
	}
	return out
}

// None is a provider with no obstacles; streaks only hit the floor.
var None Provider = Static(nil)
