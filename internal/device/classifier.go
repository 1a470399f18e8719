// Package device maps viewport width and the reduced-motion preference to a
// tuning profile for the rain overlay.
package device

import (
	"math"
	"os"
	"strconv"
	"strings"

	"go-rain-overlay/internal/config"
)

// Class is the device band a viewport width falls into.
type Class int

const (
	ClassDesktop Class = iota
	ClassLaptop
	ClassMobile
)

func (c Class) String() string {
	switch c {
	case ClassMobile:
		return "mobile"
	case ClassLaptop:
		return "laptop"
	default:
		return "desktop"
	}
}

// Profile is the set of multipliers the simulator reads every frame.
type Profile struct {
	Class         Class
	ReducedMotion bool
	SizeFactor    float64
	SpeedFactor   float64
	WindFactor    float64
	SplashCount   int
	SplashEnergy  float64
	RippleRadius  float64
	BaseDensity   int // streaks at governor scale 1.0
}

// ClassOf returns the band for width. Bands are closed below and open above:
// mobile is [0, mobileBreakpoint), laptop is [laptopMin, laptopMax).
func ClassOf(opts config.Options, width int) Class {
	switch {
	case width < opts.MobileBreakpoint:
		return ClassMobile
	case width >= opts.LaptopMin && width < opts.LaptopMax:
		return ClassLaptop
	default:
		return ClassDesktop
	}
}

// Classify is a pure function of its arguments.
func Classify(opts config.Options, width int, reducedMotion bool) Profile {
	class := ClassOf(opts, width)
	mobile := class == ClassMobile

	p := Profile{
		Class:         class,
		ReducedMotion: reducedMotion,
		SizeFactor:    1,
		SpeedFactor:   1,
		WindFactor:    1,
		SplashEnergy:  opts.SplashEnergy,
		RippleRadius:  opts.RippleMaxRadius,
	}
	countFactor := 1.0
	if mobile {
		p.SizeFactor = opts.MobileSizeFactor
		p.SpeedFactor = opts.MobileSpeedFactor
		p.WindFactor = opts.MobileWindFactor
		p.SplashEnergy *= opts.MobileSplashEnergyFactor
		p.RippleRadius *= opts.MobileRippleRadiusFactor
		countFactor = opts.MobileSplashCountFactor
	}
	if reducedMotion {
		p.SpeedFactor *= opts.ReducedMotionSpeedFactor
	}
	p.SplashCount = max(config.MinSplashCount, int(math.Round(float64(opts.SplashDroplets)*countFactor)))

	base := float64(opts.Density)
	switch class {
	case ClassMobile:
		base *= opts.MobileDensityFactor
	case ClassLaptop:
		base *= opts.LaptopDensityFactor
	}
	if reducedMotion {
		base *= opts.ReducedMotionDensityFactor
	}
	p.BaseDensity = max(1, int(math.Round(base)))
	return p
}

// DetectReducedMotion reads PREFERS_REDUCED_MOTION; "1", "true", "reduce"
// and "yes" mean the user asked for less motion.
func DetectReducedMotion() bool {
	v := strings.ToLower(strings.TrimSpace(os.Getenv("PREFERS_REDUCED_MOTION")))
	if v == "reduce" || v == "yes" {
		return true
	}
	b, err := strconv.ParseBool(v)
	return err == nil && b
}
