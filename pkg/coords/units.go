// Package coords provides the angle, unit and sky-frame primitives used by the
// region parsers: quantities with units, DS9 style angle parsing (unit
// suffixes and sexagesimal forms) and rotations between celestial frames.
package coords

import (
	"fmt"
	"math"
	"regexp"
	"strings"
)

// Unit identifies the unit a Quantity is expressed in
type Unit int

const (
	Degree Unit = iota
	Radian
	HourAngle
	Arcmin
	Arcsec
	Pixel
)

// Conversion constants
const (
	DegreesPerRadian = 180.0 / math.Pi
	DegreesPerHour   = 15.0
	ArcminPerDegree  = 60.0
	ArcsecPerDegree  = 3600.0
)

var unitNames = map[Unit]string{
	Degree:    "deg",
	Radian:    "rad",
	HourAngle: "hourangle",
	Arcmin:    "arcmin",
	Arcsec:    "arcsec",
	Pixel:     "pix",
}

// degreesPer is the size of one unit expressed in degrees
var degreesPer = map[Unit]float64{
	Degree:    1,
	Radian:    DegreesPerRadian,
	HourAngle: DegreesPerHour,
	Arcmin:    1 / ArcminPerDegree,
	Arcsec:    1 / ArcsecPerDegree,
}

func (u Unit) String() string {
	if name, ok := unitNames[u]; ok {
		return name
	}
	return fmt.Sprintf("Unit(%d)", int(u))
}

// IsAngular reports whether the unit measures an angle on the sky
func (u Unit) IsAngular() bool {
	_, ok := degreesPer[u]
	return ok
}

// ParseUnit converts a unit name such as "deg" or "arcsec" to a Unit
func ParseUnit(name string) (Unit, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "deg", "degree", "degrees":
		return Degree, nil
	case "rad", "radian", "radians":
		return Radian, nil
	case "hourangle", "hour", "h":
		return HourAngle, nil
	case "arcmin", "'":
		return Arcmin, nil
	case "arcsec", "\"":
		return Arcsec, nil
	case "pix", "pixel", "pixels", "image":
		return Pixel, nil
	}
	return Degree, fmt.Errorf("coords: unknown unit %q", name)
}

// Quantity is a value with a unit
type Quantity struct {
	Value float64
	Unit  Unit
}

// Q is shorthand for Quantity{Value: v, Unit: u}
func Q(v float64, u Unit) Quantity {
	return Quantity{Value: v, Unit: u}
}

// Degrees returns the quantity in degrees. Pixel quantities cannot be converted.
func (q Quantity) Degrees() (float64, error) {
	factor, ok := degreesPer[q.Unit]
	if !ok {
		return 0, fmt.Errorf("coords: %s is not an angle", q)
	}
	return q.Value * factor, nil
}

// To converts the quantity to another unit
func (q Quantity) To(u Unit) (Quantity, error) {
	if q.Unit == u {
		return q, nil
	}
	deg, err := q.Degrees()
	if err != nil {
		return Quantity{}, err
	}
	factor, ok := degreesPer[u]
	if !ok {
		return Quantity{}, fmt.Errorf("coords: cannot convert %s to %s", q, u)
	}
	return Quantity{Value: deg / factor, Unit: u}, nil
}

// Close reports whether two quantities agree within tol, compared in degrees
// for angles and directly for pixel values.
func (q Quantity) Close(other Quantity, tol float64) bool {
	if q.Unit == Pixel || other.Unit == Pixel {
		return q.Unit == other.Unit && math.Abs(q.Value-other.Value) <= tol
	}
	a, _ := q.Degrees()
	b, _ := other.Degrees()
	return math.Abs(a-b) <= tol
}

func (q Quantity) String() string {
	return fmt.Sprintf("%g %s", q.Value, q.Unit)
}

var formatSpecRegexp = regexp.MustCompile(`^[-+ #0]*[0-9]*(\.[0-9]+)?[eEfFgG]$`)

// ValidFormat reports whether spec is a printf style float verb without the
// leading percent sign, e.g. ".2f" or "10.4e".
func ValidFormat(spec string) bool {
	return formatSpecRegexp.MatchString(spec)
}

// FormatFloat renders v with a printf style spec such as ".4f"
func FormatFloat(v float64, spec string) string {
	if spec == "" {
		spec = "g"
	}
	// avoid "-0.0000" for values that round to zero
	s := fmt.Sprintf("%"+spec, v)
	if strings.HasPrefix(s, "-") && strings.Trim(s[1:], "0.") == "" {
		return s[1:]
	}
	return s
}
