// internal/ui/cards.go
package ui

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"

	"go-rain-overlay/internal/component"
	"go-rain-overlay/internal/config"
	"go-rain-overlay/internal/obstacle"
	"go-rain-overlay/internal/system"
	"go-rain-overlay/pkg/render"
)

// tiltShift is how many pixels one degree of tilt moves the showcase card.
const tiltShift = 0.8

// CardLayer draws the page layout the rain falls over.
type CardLayer struct {
	doc    *obstacle.Document
	tilt   *system.TiltSystem
	tiltID string
	face   font.Face
}

// NewCardLayer draws doc. The element with id tiltID follows tilt.
func NewCardLayer(doc *obstacle.Document, tilt *system.TiltSystem, tiltID string) *CardLayer {
	return &CardLayer{doc: doc, tilt: tilt, tiltID: tiltID, face: basicfont.Face7x13}
}

// TiltTarget returns the on-screen rectangle of the tilting card, or an
// empty rectangle when the layout has none.
func (l *CardLayer) TiltTarget() component.Collider {
	for _, e := range l.doc.Elements {
		if e.ID == l.tiltID && !e.Hidden {
			return l.doc.Rect(e)
		}
	}
	return component.Collider{}
}

// Draw renders the cards below the rain layer (below=true) or above it.
// Rain sits at zIndex: cards with a lower z go under it.
func (l *CardLayer) Draw(screen *ebiten.Image, zIndex int, below bool) {
	for _, e := range l.doc.Elements {
		if e.Hidden || (e.Z < zIndex) != below {
			continue
		}
		r := l.doc.Rect(e)
		if r.Empty() {
			continue
		}
		if e.ID == l.tiltID && l.tilt != nil {
			rx, ry := l.tilt.Tilt()
			r.Left += ry * tiltShift
			r.Right += ry * tiltShift
			r.Top -= rx * tiltShift
			r.Bottom -= rx * tiltShift
		}
		l.drawCard(screen, e, r)
	}
}

func (l *CardLayer) drawCard(screen *ebiten.Image, e obstacle.Element, r component.Collider) {
	x, y := float32(r.Left), float32(r.Top)
	w, h := float32(r.Width()), float32(r.Height())

	vector.DrawFilledRect(screen, x+3, y+4, w, h, render.DarkenColor(config.CardColor), false)
	vector.DrawFilledRect(screen, x, y, w, h, config.CardColor, false)

	stroke := config.CardStrokeColor
	if e.HasTag(obstacle.SplashTag) {
		stroke = render.Lighten(stroke, 0.4)
	}
	vector.StrokeRect(screen, x, y, w, h, 1, stroke, false)

	if h > 20 {
		text.Draw(screen, e.ID, l.face, int(x)+6, int(y)+16, config.TextLightColor)
	}
}
