// internal/system/splash.go
package system

import (
	"math"

	"go-rain-overlay/internal/component"
	"go-rain-overlay/internal/config"
	"go-rain-overlay/internal/entity"
	"go-rain-overlay/internal/utils"
)

// NormalUp is the impact normal of a horizontal surface (screen y grows down).
const NormalUp = -math.Pi / 2

// SplashSystem owns droplet bursts and ripples.
type SplashSystem struct {
	world  *entity.World
	tuning *Tuning
	rng    utils.Random
}

func NewSplashSystem(world *entity.World, tuning *Tuning, rng utils.Random) *SplashSystem {
	return &SplashSystem{world: world, tuning: tuning, rng: rng}
}

// Spawn throws a fan of droplets around normal and, when ripples are on,
// exactly one ripple at (x, y).
func (s *SplashSystem) Spawn(x, y, normal float64) {
	opts := s.tuning.Opts
	p := s.tuning.Profile

	count := p.SplashCount
	spread := opts.SplashSpreadDeg * math.Pi / 180
	for i := 0; i < count; i++ {
		t := float64(i) / float64(max(1, count-1))
		angle := normal + (t-0.5)*spread + utils.Centered(s.rng, spread*0.075)
		speed := utils.Between(s.rng, config.SplashBaseSpeed, config.SplashSpeedSpread) * p.SplashEnergy

		s.world.AddDroplet(component.Droplet{
			X:     x,
			Y:     y,
			VX:    math.Cos(angle) * speed * (0.7 + s.rng.Float64()*0.6),
			VY:    math.Sin(angle) * speed * (0.7 + s.rng.Float64()*0.6),
			Life:  utils.Between(s.rng, config.SplashLifeMin, config.SplashLifeSpread),
			Alpha: 0.35 + s.rng.Float64()*0.25,
			Width: 0.8 * p.SizeFactor,
		})
	}

	if opts.Ripple {
		s.world.AddRipple(component.Ripple{X: x, Y: y, Radius: 1, Life: 1})
	}
}

// UpdateDroplets applies gravity and drag and removes expired droplets.
func (s *SplashSystem) UpdateDroplets(deltaTime float64) {
	opts := s.tuning.Opts
	drag := utils.PerFrame(opts.SplashDrag, deltaTime)

	live := s.world.Droplets[:0]
	for _, d := range s.world.Droplets {
		d.Life -= deltaTime
		if d.Life <= 0 {
			continue
		}
		d.VY += opts.SplashGravity * deltaTime
		d.VX *= drag
		d.X += d.VX * deltaTime
		d.Y += d.VY * deltaTime
		live = append(live, d)
	}
	s.world.Droplets = live
}

// UpdateRipples grows and fades ripples. A ripple that passes the radius
// ceiling or the life floor is removed in the same step.
func (s *SplashSystem) UpdateRipples(deltaTime float64) {
	opts := s.tuning.Opts
	if !opts.Ripple {
		s.world.Ripples = s.world.Ripples[:0]
		return
	}
	fade := utils.PerFrame(opts.RippleFade, deltaTime)
	maxRadius := s.tuning.Profile.RippleRadius

	live := s.world.Ripples[:0]
	for _, r := range s.world.Ripples {
		r.Radius += config.RippleGrowth * deltaTime * (0.8 + 0.4*s.rng.Float64())
		r.Life *= fade
		if r.Radius > maxRadius || r.Life < config.RippleLifeFloor {
			continue
		}
		live = append(live, r)
	}
	s.world.Ripples = live
}

// DropletAlpha is the drawn opacity of d: its base alpha faded over the
// last quarter second of life.
func DropletAlpha(d component.Droplet) float64 {
	return d.Alpha * utils.Clamp(d.Life*4, 0, 1)
}

// RippleAlpha is the drawn opacity of r.
func RippleAlpha(r component.Ripple) float64 {
	return config.RippleStartAlpha * r.Life
}
