package config

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// ParseHexColor parses "#rgb", "#rrggbb" or "#rrggbbaa" into an RGBA color.
// The leading '#' is optional.
func ParseHexColor(s string) (color.RGBA, error) {
	hex := "#" + strings.TrimPrefix(s, "#")
	switch len(hex) {
	case 4, 7:
		c, err := colorful.Hex(hex)
		if err != nil {
			return color.RGBA{}, fmt.Errorf("color %q: %w", s, err)
		}
		r, g, b := c.RGB255()
		return color.RGBA{R: r, G: g, B: b, A: 0xff}, nil
	case 9:
		rgb, err := ParseHexColor(hex[:7])
		if err != nil {
			return color.RGBA{}, err
		}
		// Alpha reuses the channel parser on a gray of the same byte
		a, err := colorful.Hex("#" + strings.Repeat(hex[7:], 3))
		if err != nil {
			return color.RGBA{}, fmt.Errorf("color %q: alpha: %w", s, err)
		}
		rgb.A, _, _ = a.RGB255()
		return rgb, nil
	default:
		return color.RGBA{}, fmt.Errorf("color %q: want #rgb, #rrggbb or #rrggbbaa", s)
	}
}

// Palette is the resolved color scheme
type Palette struct {
	Background color.RGBA
	Foreground color.RGBA
}

// Palette resolves the configured colors. Settings must have been validated.
func (s *Settings) Palette() Palette {
	bg, _ := ParseHexColor(s.Colors.Background)
	fg, _ := ParseHexColor(s.Colors.Foreground)
	return Palette{Background: bg, Foreground: fg}
}
