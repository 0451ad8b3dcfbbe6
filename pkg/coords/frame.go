package coords

import (
	"strings"
)

// Frame names a coordinate system in which region coordinates are given
type Frame string

const (
	Image    Frame = "image"
	Physical Frame = "physical"
	FK4      Frame = "fk4"
	FK5      Frame = "fk5"
	ICRS     Frame = "icrs"
	Galactic Frame = "galactic"
	Ecliptic Frame = "ecliptic"

	// Recognised by DS9 but without a sky or image mapping here
	Linear    Frame = "linear"
	Amplifier Frame = "amplifier"
	Detector  Frame = "detector"
)

var frameAliases = map[string]Frame{
	"image":     Image,
	"physical":  Physical,
	"fk4":       FK4,
	"b1950":     FK4,
	"fk5":       FK5,
	"j2000":     FK5,
	"wcs":       FK5,
	"icrs":      ICRS,
	"galactic":  Galactic,
	"ecliptic":  Ecliptic,
	"linear":    Linear,
	"amplifier": Amplifier,
	"detector":  Detector,
}

// ParseFrame normalises a frame name. Names are case-insensitive and the
// DS9 aliases j2000, b1950 and wcs are resolved. Alternate WCS names
// (wcsa..wcsz) are recognised but unsupported.
func ParseFrame(name string) (Frame, bool) {
	n := strings.ToLower(strings.TrimSpace(name))
	if f, ok := frameAliases[n]; ok {
		return f, true
	}
	if len(n) == 4 && strings.HasPrefix(n, "wcs") && n[3] >= 'a' && n[3] <= 'z' {
		return Frame(n), true
	}
	return "", false
}

// IsPixel reports whether coordinates in f are pixel positions
func (f Frame) IsPixel() bool {
	return f == Image || f == Physical
}

// IsSky reports whether f is a celestial frame
func (f Frame) IsSky() bool {
	switch f {
	case FK4, FK5, ICRS, Galactic, Ecliptic:
		return true
	}
	return false
}

// Supported reports whether shapes in f can be turned into regions
func (f Frame) Supported() bool {
	return f.IsPixel() || f.IsSky()
}

// LonIsHours reports whether colon separated longitudes in f are hours
// (right ascension) rather than degrees.
func (f Frame) LonIsHours() bool {
	switch f {
	case FK4, FK5, ICRS:
		return true
	}
	return false
}

// LonLatNames returns the conventional component names, e.g. ra/dec
func (f Frame) LonLatNames() (string, string) {
	switch f {
	case Galactic:
		return "l", "b"
	case Ecliptic:
		return "lon", "lat"
	case Image, Physical:
		return "x", "y"
	}
	return "ra", "dec"
}
