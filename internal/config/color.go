package config

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// ParseColor accepts CSS hex colours: #rgb, #rrggbb or #rrggbbaa.
func ParseColor(s string) (color.RGBA, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	switch len(hex) {
	case 3:
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]}) + "ff"
	case 6:
		hex += "ff"
	case 8:
	default:
		return color.RGBA{}, fmt.Errorf("unsupported colour %q", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("unsupported colour %q: %w", s, err)
	}
	return color.RGBA{
		R: uint8(v >> 24),
		G: uint8(v >> 16),
		B: uint8(v >> 8),
		A: uint8(v),
	}, nil
}

// StreakColor returns the parsed Color option, falling back to the default
// blue when it does not parse.
func (o Options) StreakColor() color.RGBA {
	c, err := ParseColor(o.Color)
	if err != nil {
		return DefaultStreakColor
	}
	return c
}
