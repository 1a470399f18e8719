// internal/ui/stats_panel.go
package ui

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"

	"go-rain-overlay/internal/app"
	"go-rain-overlay/internal/config"
	"go-rain-overlay/internal/event"
)

const (
	panelPadding = 8
	panelWidth   = 230
	flashTime    = 0.25 // с, подсветка точки удара
)

var panelColor = color.RGBA{0, 0, 0, 160}

// StatsPanel is the debug overlay: counts, governor state and the last impact.
type StatsPanel struct {
	Visible bool

	events     *event.Dispatcher
	face       font.Face
	lastImpact event.ImpactData
	flash      float64
}

// NewStatsPanel subscribes the panel to the overlay's events.
func NewStatsPanel(d *event.Dispatcher) *StatsPanel {
	p := &StatsPanel{events: d, face: basicfont.Face7x13}
	d.Subscribe(event.Impact, p)
	return p
}

func (p *StatsPanel) OnEvent(e event.Event) {
	if data, ok := e.Data.(event.ImpactData); ok {
		p.lastImpact = data
		p.flash = flashTime
	}
}

func (p *StatsPanel) Update(deltaTime float64) {
	if p.flash > 0 {
		p.flash -= deltaTime
	}
}

func (p *StatsPanel) Draw(screen *ebiten.Image, stats app.Stats) {
	if !p.Visible {
		return
	}
	lines := stats.Lines()
	lines = append(lines,
		fmt.Sprintf("adjust   %d", p.events.Count(event.DensityAdjusted)),
		fmt.Sprintf("tps/fps  %.0f / %.0f", ebiten.ActualTPS(), ebiten.ActualFPS()),
	)

	h := float32(len(lines)*config.HUDLineHeight + panelPadding*2)
	vector.DrawFilledRect(screen, panelPadding, panelPadding, panelWidth, h, panelColor, false)
	for i, line := range lines {
		y := panelPadding*2 + (i+1)*config.HUDLineHeight - 4
		text.Draw(screen, line, p.face, panelPadding*2, y, config.TextLightColor)
	}

	if p.flash > 0 {
		a := uint8(255 * p.flash / flashTime)
		vector.StrokeCircle(screen, float32(p.lastImpact.X), float32(p.lastImpact.Y), 6, 1,
			color.RGBA{a, a, a, a}, true)
	}
}
