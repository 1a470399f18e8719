package config

import (
	"errors"
	"fmt"
)

// ErrInvalidOptions is wrapped by every validation failure.
var ErrInvalidOptions = errors.New("invalid overlay options")

// Options holds every tunable of the rain overlay. Zero values are not
// meaningful; start from Default() and override.
type Options struct {
	// Base (desktop) controls
	Density          int      `yaml:"density"`
	Speed            float64  `yaml:"speed"`
	Color            string   `yaml:"color"`
	MinLength        float64  `yaml:"minLength"`
	MaxLength        float64  `yaml:"maxLength"`
	ZIndex           int      `yaml:"zIndex"`
	CollideSelectors []string `yaml:"collideSelectors"`
	CollidePadding   float64  `yaml:"collidePadding"`

	// Splash
	SplashDroplets  int     `yaml:"splashDroplets"`
	SplashSpreadDeg float64 `yaml:"splashSpreadDeg"`
	SplashEnergy    float64 `yaml:"splashEnergy"`
	SplashDrag      float64 `yaml:"splashDrag"`
	SplashGravity   float64 `yaml:"splashGravity"`
	Ripple          bool    `yaml:"ripple"`
	RippleMaxRadius float64 `yaml:"rippleMaxRadius"`
	RippleLineWidth float64 `yaml:"rippleLineWidth"`
	RippleFade      float64 `yaml:"rippleFade"`

	// Mobile
	MobileBreakpoint         int     `yaml:"mobileBreakpoint"`
	MobileDensityFactor      float64 `yaml:"mobileDensityFactor"`
	MobileSizeFactor         float64 `yaml:"mobileSizeFactor"`
	MobileSpeedFactor        float64 `yaml:"mobileSpeedFactor"`
	MobileWindFactor         float64 `yaml:"mobileWindFactor"`
	MobileSplashCountFactor  float64 `yaml:"mobileSplashCountFactor"`
	MobileSplashEnergyFactor float64 `yaml:"mobileSplashEnergyFactor"`
	MobileRippleRadiusFactor float64 `yaml:"mobileRippleRadiusFactor"`

	// Laptop
	LaptopMin           int     `yaml:"laptopMin"`
	LaptopMax           int     `yaml:"laptopMax"`
	LaptopDensityFactor float64 `yaml:"laptopDensityFactor"`

	// Reduced motion
	ReducedMotionDensityFactor float64 `yaml:"reducedMotionDensityFactor"`
	ReducedMotionSpeedFactor   float64 `yaml:"reducedMotionSpeedFactor"`

	// Governor
	Governor          bool    `yaml:"governor"`
	GovernorSample    int     `yaml:"governorSample"`
	GovernorTargetFPS float64 `yaml:"governorTargetFps"`
	GovernorMaxDrop   float64 `yaml:"governorMaxDrop"`
	GovernorMinDrop   float64 `yaml:"governorMinDrop"`
	GovernorEase      float64 `yaml:"governorEase"`
	GovernorDecay     float64 `yaml:"governorDecay"`
	GovernorGrowth    float64 `yaml:"governorGrowth"`

	// Population caps and layout polling
	DropletCap          int     `yaml:"dropletCap"`
	RippleCap           int     `yaml:"rippleCap"`
	LayoutCheckInterval float64 `yaml:"layoutCheckInterval"` // seconds
}

// Default returns the overlay's stock tuning.
func Default() Options {
	return Options{
		Density:          5,
		Speed:            0.3,
		Color:            "#3BA7FF",
		MinLength:        10,
		MaxLength:        22,
		ZIndex:           5,
		CollideSelectors: []string{"[data-splash]"},
		CollidePadding:   2,

		SplashDroplets:  5,
		SplashSpreadDeg: 70,
		SplashEnergy:    1,
		SplashDrag:      0.985,
		SplashGravity:   1000,
		Ripple:          true,
		RippleMaxRadius: 36,
		RippleLineWidth: 1.2,
		RippleFade:      0.9,

		MobileBreakpoint:         768,
		MobileDensityFactor:      0.25,
		MobileSizeFactor:         0.65,
		MobileSpeedFactor:        0.6,
		MobileWindFactor:         0.6,
		MobileSplashCountFactor:  0.55,
		MobileSplashEnergyFactor: 0.75,
		MobileRippleRadiusFactor: 0.7,

		LaptopMin:           1024,
		LaptopMax:           1600,
		LaptopDensityFactor: 0.6,

		ReducedMotionDensityFactor: 0.6,
		ReducedMotionSpeedFactor:   0.7,

		Governor:          true,
		GovernorSample:    24,
		GovernorTargetFPS: 50,
		GovernorMaxDrop:   1.0,
		GovernorMinDrop:   0.35,
		GovernorEase:      0.08,
		GovernorDecay:     0.9,
		GovernorGrowth:    1.03,

		DropletCap:          DefaultDropletCap,
		RippleCap:           DefaultRippleCap,
		LayoutCheckInterval: 1.0,
	}
}

// Validate reports the first option that would break the simulation.
func (o Options) Validate() error {
	switch {
	case o.Density < 0:
		return fmt.Errorf("%w: density %d < 0", ErrInvalidOptions, o.Density)
	case o.Speed <= 0:
		return fmt.Errorf("%w: speed must be positive, got %g", ErrInvalidOptions, o.Speed)
	case o.MinLength <= 0 || o.MinLength > o.MaxLength:
		return fmt.Errorf("%w: length range [%g, %g]", ErrInvalidOptions, o.MinLength, o.MaxLength)
	case o.SplashDroplets < 0:
		return fmt.Errorf("%w: splashDroplets %d < 0", ErrInvalidOptions, o.SplashDroplets)
	case o.SplashDrag <= 0 || o.SplashDrag > 1:
		return fmt.Errorf("%w: splashDrag must be in (0,1], got %g", ErrInvalidOptions, o.SplashDrag)
	case o.RippleFade <= 0 || o.RippleFade > 1:
		return fmt.Errorf("%w: rippleFade must be in (0,1], got %g", ErrInvalidOptions, o.RippleFade)
	case o.MobileSpeedFactor <= 0 || o.ReducedMotionSpeedFactor <= 0:
		return fmt.Errorf("%w: speed factors must be positive (mobile %g, reduced motion %g)",
			ErrInvalidOptions, o.MobileSpeedFactor, o.ReducedMotionSpeedFactor)
	case o.MobileSizeFactor <= 0:
		return fmt.Errorf("%w: mobileSizeFactor must be positive, got %g", ErrInvalidOptions, o.MobileSizeFactor)
	case o.MobileDensityFactor < 0 || o.MobileWindFactor < 0 || o.MobileSplashCountFactor < 0 ||
		o.MobileSplashEnergyFactor < 0 || o.MobileRippleRadiusFactor < 0:
		return fmt.Errorf("%w: mobile factors must not be negative", ErrInvalidOptions)
	case o.LaptopDensityFactor < 0 || o.ReducedMotionDensityFactor < 0:
		return fmt.Errorf("%w: density factors must not be negative (laptop %g, reduced motion %g)",
			ErrInvalidOptions, o.LaptopDensityFactor, o.ReducedMotionDensityFactor)
	case o.LaptopMin > o.LaptopMax:
		return fmt.Errorf("%w: laptop band [%d, %d)", ErrInvalidOptions, o.LaptopMin, o.LaptopMax)
	case o.GovernorSample <= 0:
		return fmt.Errorf("%w: governorSample must be positive, got %d", ErrInvalidOptions, o.GovernorSample)
	case o.GovernorMinDrop <= 0 || o.GovernorMinDrop > o.GovernorMaxDrop:
		return fmt.Errorf("%w: governor range [%g, %g]", ErrInvalidOptions, o.GovernorMinDrop, o.GovernorMaxDrop)
	case o.GovernorEase <= 0 || o.GovernorEase > 1:
		return fmt.Errorf("%w: governorEase must be in (0,1], got %g", ErrInvalidOptions, o.GovernorEase)
	case o.GovernorDecay <= 0 || o.GovernorDecay >= 1:
		return fmt.Errorf("%w: governorDecay must be in (0,1), got %g", ErrInvalidOptions, o.GovernorDecay)
	case o.GovernorGrowth <= 1:
		return fmt.Errorf("%w: governorGrowth must be > 1, got %g", ErrInvalidOptions, o.GovernorGrowth)
	case o.DropletCap <= 0 || o.RippleCap <= 0:
		return fmt.Errorf("%w: caps must be positive (%d, %d)", ErrInvalidOptions, o.DropletCap, o.RippleCap)
	}
	if _, err := ParseColor(o.Color); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidOptions, err)
	}
	return nil
}
