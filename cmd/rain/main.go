// cmd/rain/main.go
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"go-rain-overlay/internal/app"
	"go-rain-overlay/internal/config"
	"go-rain-overlay/internal/defs"
	"go-rain-overlay/internal/device"
	"go-rain-overlay/internal/event"
	"go-rain-overlay/internal/obstacle"
	"go-rain-overlay/internal/profiling"
	"go-rain-overlay/internal/state"
	"go-rain-overlay/internal/system"
	"go-rain-overlay/internal/tick"
	"go-rain-overlay/internal/ui"
	"go-rain-overlay/internal/utils"
	"go-rain-overlay/pkg/render"
)

// tiltCardID is the layout element that follows the cursor.
const tiltCardID = "showcase"

type AppGame struct {
	stateMachine   *state.StateMachine
	scene          *state.Scene
	lastUpdateTime time.Time
}

func (a *AppGame) Update() error {
	now := time.Now()
	deltaTime := now.Sub(a.lastUpdateTime).Seconds()
	if deltaTime > config.MaxDeltaTime {
		deltaTime = config.MaxDeltaTime
	}
	a.lastUpdateTime = now
	a.stateMachine.Update(deltaTime)
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

// Layout follows the window size so the overlay reflows with it.
func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	a.scene.Resize(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}

func main() {
	presetID := flag.String("preset", "makers", "site preset: gateway, builders or makers")
	configPath := flag.String("config", "", "YAML file laid over the preset options")
	layoutPath := flag.String("layout", "", "YAML page layout replacing the preset's layout")
	seed := flag.Int64("seed", 0, "random seed, 0 for time-based")
	reduced := flag.Bool("reduced-motion", device.DetectReducedMotion(), "apply reduced-motion factors")
	hud := flag.Bool("hud", false, "show the stats panel (toggle with H)")
	width := flag.Int("width", config.ScreenWidth, "initial window width")
	height := flag.Int("height", config.ScreenHeight, "initial window height")
	verbose := flag.Bool("v", false, "debug logging")
	pprofAddr := flag.String("pprof", "", "serve net/http/pprof on this address, e.g. localhost:6060")
	flag.Parse()

	logger := utils.NewLogger(os.Stderr, *verbose)

	if *pprofAddr != "" {
		profiling.Serve(*pprofAddr, logger, nil)
	}

	g, err := setup(logger, options{
		preset:  *presetID,
		config:  *configPath,
		layout:  *layoutPath,
		seed:    *seed,
		reduced: *reduced,
		hud:     *hud,
		width:   *width,
		height:  *height,
	})
	if err != nil {
		logger.Error("startup failed", "err", err)
		os.Exit(1)
	}

	ebiten.SetWindowSize(*width, *height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowTitle("Rain overlay: " + *presetID)
	err = ebiten.RunGame(g)
	g.scene.Overlay.Dispose()
	if err != nil {
		logger.Error("window loop failed", "err", err)
		os.Exit(1)
	}
}

type options struct {
	preset, config, layout string
	seed                   int64
	reduced, hud           bool
	width, height          int
}

func setup(logger *slog.Logger, o options) (*AppGame, error) {
	if err := defs.LoadBuiltins(); err != nil {
		return nil, err
	}
	preset, err := defs.Preset(o.preset)
	if err != nil {
		return nil, err
	}
	opts, err := preset.Options(config.Default())
	if err != nil {
		return nil, err
	}
	if o.config != "" {
		if opts, err = config.LoadWith(o.config, opts); err != nil {
			return nil, err
		}
	}

	var doc *obstacle.Document
	if o.layout != "" {
		if doc, err = defs.LoadLayout(o.layout); err != nil {
			return nil, err
		}
		doc = doc.Clone()
	} else if doc, err = defs.Layout(preset.Layout); err != nil {
		return nil, fmt.Errorf("preset %q: %w", preset.ID, err)
	}

	provider := obstacle.NewDocumentProvider(doc, opts.CollideSelectors)
	if preset.AutoTag {
		at := obstacle.DefaultAutoTag()
		provider.AutoTag = &at
	}

	rng := utils.NewPRNGService(o.seed)
	events := event.NewDispatcher()
	overlay, err := app.New(opts, rng, provider, events, logger)
	if err != nil {
		return nil, err
	}
	logger.Info("overlay configured",
		"preset", preset.ID, "layout", doc.Name, "seed", rng.Seed(), "density", opts.Density)

	overlay.Init(o.width, o.height, o.reduced)
	frames := tick.NewFrames(nil)
	overlay.Attach(frames)

	tilt := system.NewTiltSystem(nil)
	stats := ui.NewStatsPanel(events)
	stats.Visible = o.hud

	sm := state.NewStateMachine()
	scene := &state.Scene{
		Overlay:   overlay,
		Frames:    frames,
		Doc:       doc,
		Tilt:      tilt,
		Renderer:  render.NewRainRenderer(opts),
		Cards:     ui.NewCardLayer(doc, tilt, tiltCardID),
		Stats:     stats,
		Indicator: ui.NewStateIndicator(float32(o.width-config.IndicatorOffsetX), config.IndicatorOffsetX, config.IndicatorRadius),
		Logger:    logger,
		Visible:   func() bool { return !ebiten.IsWindowMinimized() },
	}
	sm.OnChange = func(from, to state.State) {
		if from != nil {
			logger.Info("window state changed", "from", from.Name(), "to", to.Name())
		}
	}
	sm.SetState(state.NewRunningState(sm, scene))

	return &AppGame{
		stateMachine:   sm,
		scene:          scene,
		lastUpdateTime: time.Now(),
	}, nil
}
