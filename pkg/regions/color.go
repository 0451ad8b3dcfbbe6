package regions

import (
	"fmt"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// DefaultColor is the color DS9 draws regions in when none is given
const DefaultColor = "green"

// ds9Colors are the named colors DS9 understands
var ds9Colors = map[string]string{
	"white":   "#ffffff",
	"black":   "#000000",
	"red":     "#ff0000",
	"green":   "#00ff00",
	"blue":    "#0000ff",
	"cyan":    "#00ffff",
	"magenta": "#ff00ff",
	"yellow":  "#ffff00",
}

// ParseColor converts a DS9 color name or a #rgb / #rrggbb hex string
func ParseColor(s string) (colorful.Color, error) {
	s = strings.TrimSpace(s)
	if hex, ok := ds9Colors[strings.ToLower(s)]; ok {
		s = hex
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return colorful.Color{}, fmt.Errorf("regions: invalid color %q", s)
	}
	return c, nil
}

// Color returns the region color from the "color" key, falling back to DS9's
// default green when unset.
func (m *Meta) Color() (colorful.Color, error) {
	name := DefaultColor
	if v, ok := m.Get("color"); ok && !v.IsBool() && v.String() != "" {
		name = v.String()
	}
	return ParseColor(name)
}

// SetColor stores c under "color", using the DS9 name when one matches
func (m *Meta) SetColor(c colorful.Color) {
	hex := c.Hex()
	for name, h := range ds9Colors {
		if h == hex {
			m.Set("color", StringValue(name))
			return
		}
	}
	m.Set("color", StringValue(hex))
}
