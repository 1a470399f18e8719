// cmd/rainterm/main.go
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/sync/errgroup"

	"go-rain-overlay/internal/app"
	"go-rain-overlay/internal/config"
	"go-rain-overlay/internal/defs"
	"go-rain-overlay/internal/device"
	"go-rain-overlay/internal/obstacle"
	"go-rain-overlay/internal/system"
	"go-rain-overlay/internal/termview"
	"go-rain-overlay/internal/tick"
	"go-rain-overlay/internal/utils"
)

func main() {
	presetID := flag.String("preset", "makers", "site preset: gateway, builders or makers")
	configPath := flag.String("config", "", "YAML file laid over the preset options")
	fps := flag.Int("fps", 30, "frames per second")
	seed := flag.Int64("seed", 0, "random seed, 0 for time-based")
	hud := flag.Bool("hud", true, "show the stats lines (toggle with h)")
	logPath := flag.String("log", "", "write logs to this file; the terminal is taken by the preview")
	verbose := flag.Bool("v", false, "debug logging")
	flag.Parse()

	if err := run(*presetID, *configPath, *fps, *seed, *hud, *logPath, *verbose); err != nil {
		fmt.Fprintln(os.Stderr, "rainterm:", err)
		os.Exit(1)
	}
}

func run(presetID, configPath string, fps int, seed int64, hud bool, logPath string, verbose bool) error {
	var logOut io.Writer = io.Discard
	if logPath != "" {
		f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("failed to open log file: %w", err)
		}
		defer f.Close()
		logOut = f
	}
	logger := utils.NewLogger(logOut, verbose)

	if err := defs.LoadBuiltins(); err != nil {
		return err
	}
	preset, err := defs.Preset(presetID)
	if err != nil {
		return err
	}
	opts, err := preset.Options(config.Default())
	if err != nil {
		return err
	}
	if configPath != "" {
		if opts, err = config.LoadWith(configPath, opts); err != nil {
			return err
		}
	}
	doc, err := defs.Layout(preset.Layout)
	if err != nil {
		return err
	}
	provider := obstacle.NewDocumentProvider(doc, opts.CollideSelectors)
	if preset.AutoTag {
		at := obstacle.DefaultAutoTag()
		provider.AutoTag = &at
	}

	overlay, err := app.New(opts, utils.NewPRNGService(seed), provider, nil, logger)
	if err != nil {
		return err
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("failed to init screen: %w", err)
	}
	screen.HideCursor()

	view := termview.New(screen, opts)
	view.HUD = hud
	w, h := view.Viewport()
	overlay.Init(w, h, device.DetectReducedMotion())
	defer overlay.Dispose()

	ticker := tick.NewTicker(fps)
	overlay.Attach(tick.Observed{
		Source: ticker,
		After: func(time.Duration) {
			view.Draw(overlay.World(), overlay.Colliders(), overlay.Stats().Lines())
		},
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return ticker.Run(ctx)
	})
	g.Go(func() error {
		// Fini разблокирует PollEvent
		<-ctx.Done()
		screen.Fini()
		return nil
	})
	g.Go(func() error {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return nil
			}
			fn, quit := handle(ev, screen, view, overlay)
			if quit {
				cancel()
				return nil
			}
			if fn == nil {
				continue
			}
			if err := ticker.Post(ctx, fn); err != nil {
				return nil
			}
		}
	})
	return g.Wait()
}

// handle turns a terminal event into work for the loop goroutine.
func handle(ev tcell.Event, screen tcell.Screen, view *termview.View, overlay *app.Overlay) (func(), bool) {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		return func() {
			screen.Sync()
			overlay.Resize(view.Viewport())
		}, false
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return nil, true
		case tcell.KeyRune:
		default:
			return nil, false
		}
		switch ev.Rune() {
		case 'q':
			return nil, true
		case 'h':
			return func() { view.HUD = !view.HUD }, false
		case 'i':
			return overlay.InvalidateObstacles, false
		case 'm':
			return func() { overlay.SetReducedMotion(!overlay.Profile().ReducedMotion) }, false
		case 'p':
			return func() {
				if overlay.Suspended() {
					overlay.Resume()
				} else {
					overlay.Suspend()
				}
			}, false
		case ' ':
			return func() {
				w, _ := overlay.Size()
				overlay.SpawnImpact(w/2, termview.CellHeight, system.NormalUp)
			}, false
		}
	}
	return nil, false
}
