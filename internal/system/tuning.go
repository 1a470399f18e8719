package system

import (
	"go-rain-overlay/internal/config"
	"go-rain-overlay/internal/device"
)

// Tuning is the state every system reads each frame. The overlay owns it and
// rewrites it on resize; systems never modify it.
type Tuning struct {
	Opts    config.Options
	Profile device.Profile
	Width   float64
	Height  float64
}

// Floor is the y coordinate streaks splash on when nothing else is in the way.
func (t *Tuning) Floor() float64 {
	return t.Height - config.FloorInset
}
