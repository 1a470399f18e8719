package obstacle

import (
	"slices"
	"strings"
)

// AutoTagOptions controls which containers AutoTag turns into colliders.
type AutoTagOptions struct {
	MinWidth        float64
	MinHeight       float64
	MaxColliders    int
	ClassHints      []string
	IncludeSemantic bool
	AllowSelectors  []string
	BlockSelectors  []string
}

func DefaultAutoTag() AutoTagOptions {
	return AutoTagOptions{
		MinWidth:        160,
		MinHeight:       80,
		MaxColliders:    300,
		ClassHints:      []string{"card", "panel", "container", "box", "section", "hero", "glass", "surface", "paper", "shadow", "widget"},
		IncludeSemantic: true,
		AllowSelectors:  []string{".card", ".panel", ".container", ".surface", ".widget"},
		BlockSelectors:  []string{"canvas", "video", "img", "[data-nosplash]"},
	}
}

var semanticKinds = []string{"section", "header", "footer", "main", "nav", "aside", "article"}

// AutoTag marks large container-like elements with SplashTag and strips the
// tag from elements that shrank below the minimum size. The document must be
// resized first. It returns the number of tagged elements afterwards.
func AutoTag(d *Document, opts AutoTagOptions) int {
	tagged := 0
	for i := range d.Elements {
		e := d.Elements[i]
		r := d.Rect(e)
		bigEnough := r.Width() >= opts.MinWidth && r.Height() >= opts.MinHeight

		if e.HasTag(SplashTag) {
			if !bigEnough {
				d.setTagAt(i, SplashTag, false)
				continue
			}
			tagged++
			continue
		}
		if opts.MaxColliders > 0 && tagged >= opts.MaxColliders {
			continue
		}
		if e.Hidden || !bigEnough || matchesAny(e, opts.BlockSelectors) {
			continue
		}
		if matchesAny(e, opts.AllowSelectors) || looksLikeCard(e, opts.ClassHints) ||
			(opts.IncludeSemantic && slices.Contains(semanticKinds, strings.ToLower(e.Kind))) {
			d.setTagAt(i, SplashTag, true)
			tagged++
		}
	}
	return tagged
}

func matchesAny(e Element, selectors []string) bool {
	for _, sel := range selectors {
		if e.Matches(sel) {
			return true
		}
	}
	return false
}

func looksLikeCard(e Element, hints []string) bool {
	class := strings.ToLower(e.Class)
	for _, h := range hints {
		if strings.Contains(class, h) {
			return true
		}
	}
	return false
}
