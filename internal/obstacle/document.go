package obstacle

import (
	"slices"
	"strings"

	"go-rain-overlay/internal/component"
)

// SplashTag marks an element as a rain collider.
const SplashTag = "[data-splash]"

// Element is one block of a page layout. Geometry is given as fractions of
// the viewport so the page reflows on resize.
type Element struct {
	ID     string   `yaml:"id"`
	Kind   string   `yaml:"kind"`
	Class  string   `yaml:"class"`
	Tags   []string `yaml:"tags"`
	X      float64  `yaml:"x"`
	Y      float64  `yaml:"y"`
	W      float64  `yaml:"w"`
	H      float64  `yaml:"h"`
	Z      int      `yaml:"z"`
	Hidden bool     `yaml:"hidden"`
}

// Matches reports whether the element is selected by sel. Supported forms:
// attribute tags ("[data-splash]"), classes (".card") and kind names ("section").
func (e Element) Matches(sel string) bool {
	sel = strings.TrimSpace(sel)
	switch {
	case sel == "":
		return false
	case slices.Contains(e.Tags, sel):
		return true
	case strings.HasPrefix(sel, "."):
		return slices.Contains(strings.Fields(e.Class), sel[1:])
	default:
		return strings.EqualFold(e.Kind, sel)
	}
}

// HasTag reports whether tag is set on the element.
func (e Element) HasTag(tag string) bool {
	return slices.Contains(e.Tags, tag)
}

// Document is a page layout: the stand-in for a live DOM.
type Document struct {
	Name     string    `yaml:"name"`
	Elements []Element `yaml:"elements"`

	width, height float64
}

// Resize sets the viewport the fractional geometry is resolved against.
func (d *Document) Resize(width, height int) {
	d.width, d.height = float64(width), float64(height)
}

// Viewport returns the last size passed to Resize.
func (d *Document) Viewport() (float64, float64) {
	return d.width, d.height
}

// Rect resolves e to screen pixels.
func (d *Document) Rect(e Element) component.Collider {
	left := e.X * d.width
	top := e.Y * d.height
	return component.Collider{
		Left:   left,
		Top:    top,
		Right:  left + e.W*d.width,
		Bottom: top + e.H*d.height,
	}
}

// Query returns visible elements matched by any selector, in document order.
// An element matched by several selectors is returned once.
func (d *Document) Query(selectors []string) []Element {
	var out []Element
	for _, e := range d.Elements {
		if e.Hidden {
			continue
		}
		for _, sel := range selectors {
			if e.Matches(sel) {
				out = append(out, e)
				break
			}
		}
	}
	return out
}

// SetTag adds or removes tag on the element with the given id.
func (d *Document) SetTag(id, tag string, on bool) bool {
	for i := range d.Elements {
		if d.Elements[i].ID == id {
			d.setTagAt(i, tag, on)
			return true
		}
	}
	return false
}

func (d *Document) setTagAt(i int, tag string, on bool) {
	e := &d.Elements[i]
	has := e.HasTag(tag)
	switch {
	case on && !has:
		e.Tags = append(e.Tags, tag)
	case !on && has:
		e.Tags = slices.DeleteFunc(e.Tags, func(t string) bool { return t == tag })
	}
}

// DocumentProvider turns a Document into collider rectangles.
type DocumentProvider struct {
	Doc       *Document
	Selectors []string
	ScrollY   float64

	// AutoTag, when set, is re-applied after every resize.
	AutoTag *AutoTagOptions
}

func NewDocumentProvider(doc *Document, selectors []string) *DocumentProvider {
	return &DocumentProvider{Doc: doc, Selectors: selectors}
}

func (p *DocumentProvider) Resize(width, height int) {
	p.Doc.Resize(width, height)
	if p.AutoTag != nil {
		AutoTag(p.Doc, *p.AutoTag)
	}
}

// Colliders skips elements that resolve to zero size.
func (p *DocumentProvider) Colliders() []component.Collider {
	els := p.Doc.Query(p.Selectors)
	out := make([]component.Collider, 0, len(els))
	for _, e := range els {
		r := p.Doc.Rect(e)
		if r.Empty() {
			continue
		}
		r.Top -= p.ScrollY
		r.Bottom -= p.ScrollY
		out = append(out, r)
	}
	return out
}

// Clone returns a deep copy so callers can tag and resize independently.
func (d *Document) Clone() *Document {
	c := &Document{Name: d.Name, width: d.width, height: d.height}
	c.Elements = make([]Element, len(d.Elements))
	for i, e := range d.Elements {
		e.Tags = slices.Clone(e.Tags)
		c.Elements[i] = e
	}
	return c
}
