// internal/system/governor.go
package system

import (
	"go-rain-overlay/internal/config"
	"go-rain-overlay/internal/utils"
)

// Governor scales the streak population to hold a target frame rate. It is a
// single smoothed factor kept inside [GovernorMinDrop, GovernorMaxDrop].
type Governor struct {
	enabled bool
	sample  int
	target  float64
	minDrop float64
	maxDrop float64
	ease    float64
	decay   float64
	growth  float64

	scale   float64
	frames  int
	timeAcc float64
	lastFPS float64
}

func NewGovernor(opts config.Options) *Governor {
	g := &Governor{scale: 1}
	g.Configure(opts)
	return g
}

// Configure applies new options and pulls the current scale into the new
// range. The sampling window is restarted.
func (g *Governor) Configure(opts config.Options) {
	g.enabled = opts.Governor
	g.sample = max(1, opts.GovernorSample)
	g.target = opts.GovernorTargetFPS
	g.minDrop = opts.GovernorMinDrop
	g.maxDrop = opts.GovernorMaxDrop
	g.ease = opts.GovernorEase
	g.decay = opts.GovernorDecay
	g.growth = opts.GovernorGrowth
	g.scale = utils.Clamp(g.scale, g.minDrop, g.maxDrop)
	g.Reset()
}

// Reset drops the partial sampling window, e.g. after the loop was suspended.
func (g *Governor) Reset() {
	g.frames = 0
	g.timeAcc = 0
}

func (g *Governor) Scale() float64 { return g.scale }

// LastFPS returns the frame rate measured by the most recent full window.
func (g *Governor) LastFPS() float64 { return g.lastFPS }

// Target returns the streak count the governor currently asks for.
func (g *Governor) Target(baseDensity int) int {
	return utils.Round(float64(baseDensity) * g.scale)
}

// Tick records one frame that took elapsed seconds. It reports true when a
// window closed and the scale was adjusted.
func (g *Governor) Tick(elapsed float64) bool {
	if !g.enabled {
		return false
	}
	g.frames++
	g.timeAcc += elapsed
	if g.frames < g.sample {
		return false
	}
	frames, acc := g.frames, g.timeAcc
	g.Reset()
	if acc <= 0 {
		// недостаточно данных, окно пропускаем
		return false
	}
	g.Observe(float64(frames) / acc)
	return true
}

// Observe feeds one measured frame rate into the controller.
func (g *Governor) Observe(fps float64) {
	g.lastFPS = fps
	var target float64
	if fps < g.target {
		target = max(g.minDrop, g.scale*g.decay)
	} else {
		target = min(g.maxDrop, g.scale*g.growth)
	}
	g.scale += (target - g.scale) * g.ease
	// eased value of two in-range points stays in range; clamp guards rounding
	g.scale = utils.Clamp(g.scale, g.minDrop, g.maxDrop)
}
