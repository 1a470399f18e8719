// internal/system/tilt.go
package system

import (
	"go-rain-overlay/internal/component"
)

// Orientation is a device attitude reading in degrees.
type Orientation struct {
	Beta  float64 // наклон вперёд/назад
	Gamma float64 // наклон влево/вправо
}

// OrientationSource reports the current device attitude. ok is false when
// the host has no sensor or permission was denied.
type OrientationSource interface {
	Orientation() (o Orientation, ok bool)
}

// TiltSystem computes the parallax rotation of the showcase card. The cursor
// wins while it is over the card; otherwise the orientation source is used,
// and without one the card stays flat.
type TiltSystem struct {
	source OrientationSource
	target component.Collider

	cursorX, cursorY float64
	hovering         bool

	rx, ry float64
}

func NewTiltSystem(source OrientationSource) *TiltSystem {
	return &TiltSystem{source: source}
}

// SetTarget sets the card rectangle cursor positions are measured against.
func (s *TiltSystem) SetTarget(rect component.Collider) {
	s.target = rect
	if rect.Empty() {
		s.hovering = false
	}
}

// Cursor records the pointer position in screen space.
func (s *TiltSystem) Cursor(x, y float64) {
	s.cursorX, s.cursorY = x, y
	r := s.target
	s.hovering = !r.Empty() && r.SpansX(x) && y >= r.Top && y <= r.Bottom
}

// Leave marks the pointer as gone from the window.
func (s *TiltSystem) Leave() {
	s.hovering = false
}

func (s *TiltSystem) Update() {
	switch {
	case s.hovering:
		r := s.target
		x := (s.cursorX - r.Left) / r.Width()
		y := (s.cursorY - r.Top) / r.Height()
		s.ry = (x - 0.5) * 24
		s.rx = -(y - 0.5) * 20
	case s.source != nil:
		o, ok := s.source.Orientation()
		if !ok {
			s.rx, s.ry = 0, 0
			return
		}
		s.ry = o.Gamma / 30 * 12
		s.rx = -(o.Beta / 45) * 10
	default:
		s.rx, s.ry = 0, 0
	}
}

// Tilt returns the rotation about the x and y axes in degrees.
func (s *TiltSystem) Tilt() (rx, ry float64) {
	return s.rx, s.ry
}
