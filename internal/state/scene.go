// internal/state/scene.go
package state

import (
	"log/slog"

	"github.com/hajimehoshi/ebiten/v2"

	"go-rain-overlay/internal/app"
	"go-rain-overlay/internal/config"
	"go-rain-overlay/internal/obstacle"
	"go-rain-overlay/internal/system"
	"go-rain-overlay/internal/tick"
	"go-rain-overlay/internal/ui"
	"go-rain-overlay/pkg/render"
)

// Scene is everything both visibility states draw and drive.
type Scene struct {
	Overlay   *app.Overlay
	Frames    *tick.Frames
	Doc       *obstacle.Document
	Tilt      *system.TiltSystem
	Renderer  *render.RainRenderer
	Cards     *ui.CardLayer
	Stats     *ui.StatsPanel
	Indicator *ui.StateIndicator
	Logger    *slog.Logger

	// Visible reports whether the window is shown; the loop suspends when
	// it returns false.
	Visible func() bool

	width, height int
}

// Resize propagates a new window size to the overlay and the tilt target.
func (s *Scene) Resize(width, height int) {
	if width == s.width && height == s.height {
		return
	}
	s.width, s.height = width, height
	s.Overlay.Resize(width, height)
	s.Tilt.SetTarget(s.Cards.TiltTarget())
	s.Indicator.X = float32(width - config.IndicatorOffsetX)
}

func (s *Scene) draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	z := s.Overlay.Options().ZIndex
	s.Cards.Draw(screen, z, true)
	s.Renderer.Draw(screen, s.Overlay.World(), s.Overlay.Profile())
	s.Cards.Draw(screen, z, false)
	s.Stats.Draw(screen, s.Overlay.Stats())
}
