// Package termview draws an overlay world onto a tcell screen, one cell per
// CellWidth x CellHeight pixels of simulation space.
package termview

import (
	"image/color"
	"math"

	"github.com/gdamore/tcell/v2"

	"go-rain-overlay/internal/component"
	"go-rain-overlay/internal/config"
	"go-rain-overlay/internal/entity"
)

const (
	CellWidth  = 8.0
	CellHeight = 16.0

	slopeThreshold = 0.2 // |VX/VY| выше порога рисуем косой чертой
)

// View renders into a tcell.Screen. The caller owns Init/Fini of the screen.
type View struct {
	screen tcell.Screen

	background tcell.Style
	streak     tcell.Style
	head       tcell.Style
	droplet    tcell.Style
	ripple     tcell.Style
	obstacle   tcell.Style
	hud        tcell.Style

	HUD bool
}

func New(screen tcell.Screen, opts config.Options) *View {
	bg := rgb(config.BackgroundColor)
	base := tcell.StyleDefault.Background(bg)
	c := opts.StreakColor()
	return &View{
		screen:     screen,
		background: base,
		streak:     base.Foreground(rgb(c)),
		head:       base.Foreground(rgb(config.HighlightColor)),
		droplet:    base.Foreground(rgb(c)),
		ripple:     base.Foreground(rgb(c)).Dim(true),
		obstacle:   tcell.StyleDefault.Background(rgb(config.CardColor)).Foreground(rgb(config.CardStrokeColor)),
		hud:        base.Foreground(rgb(config.TextLightColor)),
	}
}

func rgb(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

// Viewport returns the simulation size in pixels that matches the screen.
func (v *View) Viewport() (int, int) {
	cols, rows := v.screen.Size()
	return int(float64(cols) * CellWidth), int(float64(rows) * CellHeight)
}

// Cell maps a simulation point to a screen cell.
func Cell(x, y float64) (int, int) {
	return int(math.Floor(x / CellWidth)), int(math.Floor(y / CellHeight))
}

// Draw clears the screen and paints obstacles, ripples, droplets, streaks and
// the optional HUD lines, then shows the frame.
func (v *View) Draw(w *entity.World, colliders []component.Collider, hud []string) {
	v.screen.SetStyle(v.background)
	v.screen.Clear()

	for _, c := range colliders {
		v.drawCollider(c)
	}
	for _, r := range w.Ripples {
		v.drawRipple(r)
	}
	for _, d := range w.Droplets {
		v.set(d.X, d.Y, '.', v.droplet)
	}
	for i := range w.Streaks {
		v.drawStreak(&w.Streaks[i])
	}
	if v.HUD {
		for i, line := range hud {
			v.text(0, i, line)
		}
	}
	v.screen.Show()
}

func (v *View) drawCollider(c component.Collider) {
	x0, y0 := Cell(c.Left, c.Top)
	x1, y1 := Cell(c.Right-0.001, c.Bottom-0.001)
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			ch := ' '
			if y == y0 {
				ch = '▔'
			}
			v.put(x, y, ch, v.obstacle)
		}
	}
}

func (v *View) drawRipple(r component.Ripple) {
	ch := '·'
	if r.Radius > CellWidth {
		ch = 'o'
	}
	x, y := Cell(r.X, r.Y)
	v.put(x, y, ch, v.ripple)
	if r.Radius > CellWidth {
		dx := int(r.Radius / CellWidth)
		v.put(x-dx, y, '(', v.ripple)
		v.put(x+dx, y, ')', v.ripple)
	}
}

func (v *View) drawStreak(s *component.Streak) {
	glyph := '|'
	if s.VY > 0 {
		switch slope := s.VX / s.VY; {
		case slope > slopeThreshold:
			glyph = '\\'
		case slope < -slopeThreshold:
			glyph = '/'
		}
	}

	// хвост тянется вверх против направления движения
	speed := math.Hypot(s.VX, s.VY)
	tx, ty := s.X, s.Y-s.Length
	if speed > 0 {
		tx = s.X - s.VX/speed*s.Length
		ty = s.Y - s.VY/speed*s.Length
	}
	hx, hy := Cell(s.X, s.Y)
	_, ty0 := Cell(tx, ty)
	for row := ty0; row < hy; row++ {
		// x хвоста на этой строке
		k := 0.0
		if hy != ty0 {
			k = float64(row-ty0) / float64(hy-ty0)
		}
		cx, _ := Cell(tx+(s.X-tx)*k, 0)
		v.put(cx, row, glyph, v.streak)
	}
	v.put(hx, hy, glyph, v.head)
}

func (v *View) text(x, y int, s string) {
	for _, r := range s {
		v.put(x, y, r, v.hud)
		x++
	}
}

func (v *View) set(x, y float64, ch rune, style tcell.Style) {
	cx, cy := Cell(x, y)
	v.put(cx, cy, ch, style)
}

func (v *View) put(x, y int, ch rune, style tcell.Style) {
	cols, rows := v.screen.Size()
	if x < 0 || y < 0 || x >= cols || y >= rows {
		return
	}
	v.screen.SetContent(x, y, ch, nil, style)
}
