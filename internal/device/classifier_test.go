package device

import (
	"testing"

	"go-rain-overlay/internal/config"
)

func TestClassOfBoundaries(t *testing.T) {
	opts := config.Default()
	cases := []struct {
		width int
		want  Class
	}{
		{0, ClassMobile},
		{400, ClassMobile},
		{767, ClassMobile},
		{768, ClassDesktop},
		{1023, ClassDesktop},
		{1024, ClassLaptop},
		{1599, ClassLaptop},
		{1600, ClassDesktop},
		{1920, ClassDesktop},
	}
	for _, tc := range cases {
		if got := ClassOf(opts, tc.width); got != tc.want {
			t.Fatalf("ClassOf(%d) = %v, want %v", tc.width, got, tc.want)
		}
	}
}

func TestClassifyMobile(t *testing.T) {
	opts := config.Default()
	opts.Density = 80
	p := Classify(opts, 400, false)
	if p.Class != ClassMobile {
		t.Fatalf("expected mobile, got %v", p.Class)
	}
	if p.BaseDensity != 20 {
		t.Fatalf("expected density 80*0.25=20, got %d", p.BaseDensity)
	}
	if p.SizeFactor != 0.65 || p.SpeedFactor != 0.6 || p.WindFactor != 0.6 {
		t.Fatalf("mobile factors not applied: %+v", p)
	}
	if p.SplashCount != 3 { // round(5*0.55)
		t.Fatalf("expected splash count 3, got %d", p.SplashCount)
	}
	if p.RippleRadius != opts.RippleMaxRadius*opts.MobileRippleRadiusFactor || p.SplashEnergy != 0.75 {
		t.Fatalf("unexpected ripple/energy: %+v", p)
	}
}

func TestClassifyLaptopAndDesktop(t *testing.T) {
	opts := config.Default()
	opts.Density = 80
	laptop := Classify(opts, 1366, false)
	if laptop.Class != ClassLaptop || laptop.BaseDensity != 48 {
		t.Fatalf("unexpected laptop profile: %+v", laptop)
	}
	if laptop.SizeFactor != 1 || laptop.SpeedFactor != 1 {
		t.Fatalf("laptop should keep desktop kinematics: %+v", laptop)
	}
	desktop := Classify(opts, 1920, false)
	if desktop.Class != ClassDesktop || desktop.BaseDensity != 80 || desktop.SplashCount != 5 {
		t.Fatalf("unexpected desktop profile: %+v", desktop)
	}
}

func TestClassifyReducedMotionLowersBaseline(t *testing.T) {
	opts := config.Default()
	opts.Density = 80
	for _, width := range []int{400, 1366, 1920} {
		normal := Classify(opts, width, false)
		reduced := Classify(opts, width, true)
		if reduced.BaseDensity >= normal.BaseDensity {
			t.Fatalf("width %d: reduced density %d not below %d", width, reduced.BaseDensity, normal.BaseDensity)
		}
		if reduced.SpeedFactor >= normal.SpeedFactor {
			t.Fatalf("width %d: reduced speed %g not below %g", width, reduced.SpeedFactor, normal.SpeedFactor)
		}
		if !reduced.ReducedMotion {
			t.Fatalf("width %d: flag not recorded", width)
		}
	}
}

func TestClassifyMinimums(t *testing.T) {
	opts := config.Default()
	opts.Density = 1
	opts.SplashDroplets = 1
	p := Classify(opts, 300, true)
	if p.BaseDensity != 1 {
		t.Fatalf("density floor is 1, got %d", p.BaseDensity)
	}
	if p.SplashCount != config.MinSplashCount {
		t.Fatalf("splash count floor is %d, got %d", config.MinSplashCount, p.SplashCount)
	}
}

func TestClassifyIsIdempotent(t *testing.T) {
	opts := config.Default()
	for _, width := range []int{320, 768, 1024, 1600, 2560} {
		for _, rm := range []bool{false, true} {
			a := Classify(opts, width, rm)
			b := Classify(opts, width, rm)
			if a != b {
				t.Fatalf("Classify(%d, %v) not stable: %+v vs %+v", width, rm, a, b)
			}
		}
	}
}

func TestDetectReducedMotion(t *testing.T) {
	cases := map[string]bool{
		"":       false,
		"0":      false,
		"false":  false,
		"1":      true,
		"true":   true,
		"reduce": true,
		"Yes":    true,
	}
	for v, want := range cases {
		t.Setenv("PREFERS_REDUCED_MOTION", v)
		if got := DetectReducedMotion(); got != want {
			t.Fatalf("PREFERS_REDUCED_MOTION=%q: got %v, want %v", v, got, want)
		}
	}
}
