// internal/system/rain.go
package system

import (
	"math"

	"go-rain-overlay/internal/component"
	"go-rain-overlay/internal/config"
	"go-rain-overlay/internal/entity"
	"go-rain-overlay/internal/utils"
)

// ImpactFunc receives every hit detected during a streak update.
type ImpactFunc func(hit Hit)

// RainSystem spawns and advances falling streaks.
type RainSystem struct {
	world     *entity.World
	tuning    *Tuning
	rng       utils.Random
	collision *CollisionSystem
	onImpact  ImpactFunc
}

func NewRainSystem(world *entity.World, tuning *Tuning, rng utils.Random, collision *CollisionSystem, onImpact ImpactFunc) *RainSystem {
	return &RainSystem{
		world:     world,
		tuning:    tuning,
		rng:       rng,
		collision: collision,
		onImpact:  onImpact,
	}
}

// NewStreak builds one streak with depth-weighted speed and size. Without
// yOverride the streak starts above the viewport at a random height, so
// replacements enter staggered.
func (s *RainSystem) NewStreak(yOverride *float64) component.Streak {
	opts := s.tuning.Opts
	p := s.tuning.Profile

	z := s.rng.Float64()
	vy := utils.Between(s.rng, config.StreakBaseSpeed, config.StreakSpeedSpread) * (0.65 + z*0.6)
	vy *= opts.Speed * p.SpeedFactor

	length := utils.Between(s.rng, opts.MinLength, opts.MaxLength-opts.MinLength) * (0.7 + z*0.5) * p.SizeFactor
	width := (0.8 + z*1.1) * p.SizeFactor

	x := s.rng.Float64() * s.tuning.Width
	var y float64
	if yOverride != nil {
		y = *yOverride
	} else {
		y = -s.rng.Float64() * s.tuning.Height * config.StreakSpawnBand
	}

	return component.Streak{
		X:         x,
		Y:         y,
		PrevY:     y,
		VX:        utils.Centered(s.rng, 5) * (0.4 + z*0.6),
		VY:        vy,
		Length:    length,
		Width:     width,
		Alpha:     0.45 + z*0.45,
		Z:         z,
		WindPhase: utils.Angle(s.rng),
	}
}

// Spawn appends a new streak to the world.
func (s *RainSystem) Spawn(yOverride *float64) {
	s.world.AddStreak(s.NewStreak(yOverride))
}

// SpawnVisible appends a streak somewhere inside the viewport. Used when the
// population grows so new rain does not arrive as a single sheet.
func (s *RainSystem) SpawnVisible() {
	y := s.rng.Float64() * s.tuning.Height
	s.Spawn(&y)
}

// Wind returns the global wind at time t, before per-streak depth weighting.
func (s *RainSystem) Wind(t float64) float64 {
	return (math.Sin(t*0.7)*35 + math.Sin(t*1.43)*18) * s.tuning.Profile.WindFactor
}

// Update integrates every streak and resolves collisions. A streak that hits
// an obstacle or the floor is replaced in place, so the population is the
// same before and after. It returns the number of impacts.
func (s *RainSystem) Update(deltaTime float64) int {
	t := s.world.Time
	windFactor := s.tuning.Profile.WindFactor
	global := s.Wind(t)
	left, right := -config.WrapMargin, s.tuning.Width+config.WrapMargin

	impacts := 0
	for i := range s.world.Streaks {
		d := &s.world.Streaks[i]
		d.PrevY = d.Y

		jitter := (math.Sin(t*27+d.WindPhase*1.7) + math.Cos(t*19+d.WindPhase)) * 0.6
		wind := global*(0.3+0.7*d.Z) + math.Sin(t*2+d.WindPhase)*8*d.Z*windFactor + jitter

		d.X += (d.VX + wind) * deltaTime
		d.Y += d.VY * deltaTime
		d.X = utils.Wrap(d.X, left, right)

		hit, ok := s.collision.Test(d)
		if !ok {
			continue
		}
		impacts++
		if s.onImpact != nil {
			s.onImpact(hit)
		}
		*d = s.NewStreak(nil)
	}
	return impacts
}
