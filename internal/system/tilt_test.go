package system

import (
	"math"
	"testing"

	"go-rain-overlay/internal/component"
)

type fixedOrientation struct {
	o  Orientation
	ok bool
}

func (f fixedOrientation) Orientation() (Orientation, bool) { return f.o, f.ok }

func TestTiltFollowsCursorOverCard(t *testing.T) {
	s := NewTiltSystem(fixedOrientation{o: Orientation{Beta: 45, Gamma: 30}, ok: true})
	s.SetTarget(component.Collider{Left: 100, Top: 100, Right: 300, Bottom: 200})

	s.Cursor(300, 100) // top-right corner
	s.Update()
	rx, ry := s.Tilt()
	if rx != 10 || ry != 12 {
		t.Fatalf("corner tilt = (%g, %g), want (10, 12)", rx, ry)
	}

	s.Cursor(200, 150) // centre
	s.Update()
	if rx, ry = s.Tilt(); rx != 0 || ry != 0 {
		t.Fatalf("centre tilt = (%g, %g), want flat", rx, ry)
	}
}

func TestTiltFallsBackToOrientation(t *testing.T) {
	s := NewTiltSystem(fixedOrientation{o: Orientation{Beta: 45, Gamma: 30}, ok: true})
	s.SetTarget(component.Collider{Left: 100, Top: 100, Right: 300, Bottom: 200})
	s.Cursor(10, 10)
	s.Update()
	rx, ry := s.Tilt()
	if math.Abs(rx+10) > 1e-9 || math.Abs(ry-12) > 1e-9 {
		t.Fatalf("orientation tilt = (%g, %g), want (-10, 12)", rx, ry)
	}

	s.Cursor(150, 150)
	s.Leave()
	s.Update()
	if rx2, _ := s.Tilt(); rx2 != rx {
		t.Fatalf("leaving the window should return to the sensor")
	}
}

func TestTiltStaticWithoutSensor(t *testing.T) {
	for _, src := range []OrientationSource{nil, fixedOrientation{o: Orientation{Beta: 10}, ok: false}} {
		s := NewTiltSystem(src)
		s.Update()
		if rx, ry := s.Tilt(); rx != 0 || ry != 0 {
			t.Fatalf("expected flat card, got (%g, %g)", rx, ry)
		}
	}
}
