package render

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"go-rain-overlay/internal/config"
	"go-rain-overlay/internal/device"
	"go-rain-overlay/internal/entity"
	"go-rain-overlay/internal/system"
)

// RainRenderer strokes streaks, droplets and ripples onto a transparent layer.
type RainRenderer struct {
	palette   Palette
	rippleW   float64
	antialias bool
}

func NewRainRenderer(opts config.Options) *RainRenderer {
	return &RainRenderer{
		palette: Palette{
			Streak:    opts.StreakColor(),
			Highlight: config.HighlightColor,
		},
		rippleW:   opts.RippleLineWidth,
		antialias: true,
	}
}

// Draw renders the world. Nothing is cleared; callers draw the page first.
func (r *RainRenderer) Draw(screen *ebiten.Image, w *entity.World, p device.Profile) {
	for _, d := range w.Streaks {
		x, y := float32(d.X), float32(d.Y)
		vector.StrokeLine(screen,
			x, y-float32(d.Length),
			x+0.8*float32(d.Z), y,
			float32(d.Width), WithAlpha(r.palette.Streak, d.Alpha), r.antialias)

		// блик
		hw := max(0.5, d.Width*0.6)
		vector.StrokeLine(screen,
			x-0.2, y-float32(d.Length*0.6),
			x+0.4*float32(d.Z), y-float32(d.Length*0.1),
			float32(hw), WithAlpha(r.palette.Highlight, d.Alpha*0.5), r.antialias)
	}

	for _, d := range w.Droplets {
		x, y := float32(d.X), float32(d.Y)
		vector.StrokeLine(screen,
			x, y,
			x+float32(d.VX*0.02), y+float32(d.VY*0.02),
			float32(d.Width), WithAlpha(r.palette.Streak, system.DropletAlpha(d)), r.antialias)
	}

	lw := float32(r.rippleW * p.SizeFactor)
	for _, rp := range w.Ripples {
		vector.StrokeCircle(screen, float32(rp.X), float32(rp.Y), float32(rp.Radius), lw,
			WithAlpha(r.palette.Streak, system.RippleAlpha(rp)), r.antialias)
	}
}
