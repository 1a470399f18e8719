// internal/app/overlay.go
package app

import (
	"fmt"
	"log/slog"
	"slices"
	"time"

	"go-rain-overlay/internal/component"
	"go-rain-overlay/internal/config"
	"go-rain-overlay/internal/device"
	"go-rain-overlay/internal/entity"
	"go-rain-overlay/internal/event"
	"go-rain-overlay/internal/obstacle"
	"go-rain-overlay/internal/system"
	"go-rain-overlay/internal/tick"
	"go-rain-overlay/internal/utils"
)

// Overlay is one mounted instance of the rain effect. All methods must be
// called from the goroutine that drives its tick source.
type Overlay struct {
	opts     config.Options
	provider obstacle.Provider
	events   *event.Dispatcher
	logger   *slog.Logger

	tuning    *system.Tuning
	world     *entity.World
	collision *system.CollisionSystem
	rain      *system.RainSystem
	splash    *system.SplashSystem
	governor  *system.Governor

	source        tick.Source
	last          time.Duration
	primed        bool
	sinceLayout   float64
	reducedMotion bool
	initialized   bool
	suspended     bool
	impacts       int
}

// New builds an overlay. provider may be nil (floor only), events may be nil
// and a nil logger falls back to slog.Default().
func New(opts config.Options, rng utils.Random, provider obstacle.Provider, events *event.Dispatcher, logger *slog.Logger) (*Overlay, error) {
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("new overlay: %w", err)
	}
	if rng == nil {
		rng = utils.NewPRNGService(0)
	}
	if provider == nil {
		provider = obstacle.None
	}
	if logger == nil {
		logger = slog.Default()
	}

	o := &Overlay{
		opts:     opts,
		provider: provider,
		events:   events,
		logger:   logger,
		tuning:   &system.Tuning{Opts: opts},
		world:    entity.NewWorld(opts.DropletCap, opts.RippleCap),
		governor: system.NewGovernor(opts),
	}
	o.collision = system.NewCollisionSystem(o.tuning)
	o.splash = system.NewSplashSystem(o.world, o.tuning, rng)
	o.rain = system.NewRainSystem(o.world, o.tuning, rng, o.collision, o.onImpact)
	return o, nil
}

// Init classifies the viewport, collects obstacles and fills the initial
// population. Calling Init on a live overlay starts it over.
func (o *Overlay) Init(width, height int, reducedMotion bool) {
	o.world.Reset()
	o.governor.Configure(o.opts)
	o.reducedMotion = reducedMotion
	o.primed = false
	o.impacts = 0
	o.initialized = true
	o.Resize(width, height)
	o.logger.Info("overlay started",
		"width", width,
		"height", height,
		"class", o.tuning.Profile.Class.String(),
		"reducedMotion", reducedMotion,
		"streaks", len(o.world.Streaks))
}

// Dispose detaches the tick source and drops every particle.
func (o *Overlay) Dispose() {
	if o.source != nil {
		o.source.Stop()
		o.source = nil
	}
	o.world.Reset()
	o.collision.SetColliders(nil)
	o.initialized = false
	o.logger.Info("overlay disposed", "impacts", o.impacts)
}

// Attach subscribes the overlay to source. Frames delivered before Init are
// ignored.
func (o *Overlay) Attach(source tick.Source) {
	if o.source != nil {
		o.source.Stop()
	}
	o.source = source
	o.primed = false
	source.Start(o.Frame)
}

// Frame is the tick handler. The first frame after Init, Attach or Resume
// only records the timing reference.
func (o *Overlay) Frame(now time.Duration) {
	if !o.initialized || o.suspended {
		return
	}
	if !o.primed {
		o.last, o.primed = now, true
		return
	}
	elapsed := max(0, (now - o.last).Seconds())
	if elapsed == 0 {
		return
	}
	o.last = now
	o.advance(min(elapsed, config.MaxDeltaTime), elapsed)
}

// Step advances the simulation by dt seconds, clamped to MaxDeltaTime. A
// non-positive dt is not a frame.
func (o *Overlay) Step(dt float64) {
	if !o.initialized || dt <= 0 {
		return
	}
	dt = min(dt, config.MaxDeltaTime)
	o.advance(dt, dt)
}

// advance runs one frame: streaks, droplets, ripples, governor, reconcile.
// elapsed is the unclamped interval the governor measures.
func (o *Overlay) advance(dt, elapsed float64) {
	o.world.Time += dt
	o.checkLayout(dt)

	o.rain.Update(dt)
	o.splash.UpdateDroplets(dt)
	o.splash.UpdateRipples(dt)

	if o.governor.Tick(elapsed) {
		target := o.governor.Target(o.tuning.Profile.BaseDensity)
		o.logger.Debug("density adjusted",
			"fps", o.governor.LastFPS(),
			"scale", o.governor.Scale(),
			"target", target)
		o.events.Dispatch(event.Event{Type: event.DensityAdjusted, Data: event.GovernorData{
			FPS:    o.governor.LastFPS(),
			Scale:  o.governor.Scale(),
			Target: target,
		}})
	}
	o.Reconcile()
}

func (o *Overlay) onImpact(h system.Hit) {
	o.impacts++
	o.splash.Spawn(h.X, h.Y, system.NormalUp)
	o.events.Dispatch(event.Event{Type: event.Impact, Data: event.ImpactData{X: h.X, Y: h.Y, Floor: h.Floor}})
}

// Reconcile spawns or truncates streaks to round(BaseDensity*scale) and
// returns that target. New streaks appear inside the viewport.
func (o *Overlay) Reconcile() int {
	target := o.governor.Target(o.tuning.Profile.BaseDensity)
	for len(o.world.Streaks) < target {
		o.rain.SpawnVisible()
	}
	o.world.TruncateStreaks(target)
	return target
}

// Resize reclassifies the device, reflows obstacles and reconciles the
// population for the new profile.
func (o *Overlay) Resize(width, height int) {
	o.tuning.Width, o.tuning.Height = float64(width), float64(height)
	prev := o.tuning.Profile
	o.tuning.Profile = device.Classify(o.opts, width, o.reducedMotion)

	if r, ok := o.provider.(obstacle.Resizer); ok {
		r.Resize(width, height)
	}
	o.refreshObstacles(true)
	target := o.Reconcile()

	if prev.Class != o.tuning.Profile.Class {
		o.logger.Debug("device class changed",
			"from", prev.Class.String(),
			"to", o.tuning.Profile.Class.String(),
			"target", target)
	}
	o.events.Dispatch(event.Event{Type: event.Resized, Data: o.tuning.Profile})
}

// SetReducedMotion switches the motion preference and reclassifies.
func (o *Overlay) SetReducedMotion(on bool) {
	if o.reducedMotion == on {
		return
	}
	o.reducedMotion = on
	o.Resize(int(o.tuning.Width), int(o.tuning.Height))
}

// SpawnStreak adds one streak outside reconciliation. The next frame trims
// the population back to target.
func (o *Overlay) SpawnStreak(yOverride *float64) {
	o.rain.Spawn(yOverride)
}

// SpawnImpact throws a splash burst at (x, y) around normal.
func (o *Overlay) SpawnImpact(x, y, normal float64) {
	o.splash.Spawn(x, y, normal)
}

// InvalidateObstacles re-reads the provider right away.
func (o *Overlay) InvalidateObstacles() {
	o.refreshObstacles(true)
}

func (o *Overlay) checkLayout(dt float64) {
	if o.opts.LayoutCheckInterval <= 0 {
		return
	}
	o.sinceLayout += dt
	if o.sinceLayout >= o.opts.LayoutCheckInterval {
		o.refreshObstacles(false)
	}
}

// refreshObstacles replaces the collider list. Unless forced, nothing is
// announced when the layout did not change.
func (o *Overlay) refreshObstacles(force bool) {
	o.sinceLayout = 0
	colliders := o.provider.Colliders()
	if !force && slices.Equal(colliders, o.collision.Colliders()) {
		return
	}
	o.collision.SetColliders(colliders)
	o.logger.Debug("obstacles refreshed", "count", len(colliders))
	o.events.Dispatch(event.Event{Type: event.ObstaclesRefreshed, Data: len(colliders)})
}

// Suspend pauses the tick source, e.g. while the window is hidden.
func (o *Overlay) Suspend() {
	if o.suspended {
		return
	}
	o.suspended = true
	o.governor.Reset()
	if o.source != nil {
		o.source.Pause()
	}
	o.logger.Debug("overlay suspended")
	o.events.Dispatch(event.Event{Type: event.VisibilityChanged, Data: false})
}

// Resume restarts delivery. The timing reference is primed again so the
// hidden interval never becomes a step.
func (o *Overlay) Resume() {
	if !o.suspended {
		return
	}
	o.suspended = false
	o.primed = false
	if o.source != nil {
		o.source.Resume()
	}
	o.logger.Debug("overlay resumed")
	o.events.Dispatch(event.Event{Type: event.VisibilityChanged, Data: true})
}

func (o *Overlay) Suspended() bool { return o.suspended }

func (o *Overlay) World() *entity.World { return o.world }

func (o *Overlay) Profile() device.Profile { return o.tuning.Profile }

func (o *Overlay) Options() config.Options { return o.opts }

func (o *Overlay) Scale() float64 { return o.governor.Scale() }

func (o *Overlay) Colliders() []component.Collider { return o.collision.Colliders() }

// Size returns the viewport in pixels.
func (o *Overlay) Size() (float64, float64) { return o.tuning.Width, o.tuning.Height }

// Stats is a snapshot for debug displays.
type Stats struct {
	Class     device.Class
	Streaks   int
	Droplets  int
	Ripples   int
	Colliders int
	Target    int
	Impacts   int
	Scale     float64
	FPS       float64
	Suspended bool
}

func (o *Overlay) Stats() Stats {
	return Stats{
		Class:     o.tuning.Profile.Class,
		Streaks:   len(o.world.Streaks),
		Droplets:  len(o.world.Droplets),
		Ripples:   len(o.world.Ripples),
		Colliders: len(o.collision.Colliders()),
		Target:    o.governor.Target(o.tuning.Profile.BaseDensity),
		Impacts:   o.impacts,
		Scale:     o.governor.Scale(),
		FPS:       o.governor.LastFPS(),
		Suspended: o.suspended,
	}
}

// Lines formats the snapshot for text displays.
func (s Stats) Lines() []string {
	state := "running"
	if s.Suspended {
		state = "suspended"
	}
	return []string{
		fmt.Sprintf("device   %s (%s)", s.Class, state),
		fmt.Sprintf("streaks  %d / %d", s.Streaks, s.Target),
		fmt.Sprintf("splash   %d drops, %d ripples", s.Droplets, s.Ripples),
		fmt.Sprintf("scale    %.3f @ %.1f fps", s.Scale, s.FPS),
		fmt.Sprintf("impacts  %d on %d obstacles", s.Impacts, s.Colliders),
	}
}
