package coords

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

var (
	// 1h20m30s, 2d3m7s, 12d, -0d30m
	unitSexagesimalRegexp = regexp.MustCompile(
		`^([-+]?)([0-9]+(?:\.[0-9]*)?)([hd])(?:([0-9]+(?:\.[0-9]*)?)m)?(?:([0-9]+(?:\.[0-9]*)?)s)?$`)
	// 1:20:30, +0:14:26.064, -10:30
	colonSexagesimalRegexp = regexp.MustCompile(
		`^([-+]?)([0-9]+):([0-9]+(?:\.[0-9]*)?)(?::([0-9]+(?:\.[0-9]*)?))?$`)
)

// suffixUnits maps a trailing unit character to the unit it selects
var suffixUnits = map[byte]Unit{
	'd':  Degree,
	'r':  Radian,
	'p':  Pixel,
	'i':  Pixel,
	'"':  Arcsec,
	'\'': Arcmin,
}

// IsSexagesimal reports whether tok is written as H:M:S, D:M:S or with h/d m s
// separators.
func IsSexagesimal(tok string) bool {
	tok = strings.TrimSpace(tok)
	if colonSexagesimalRegexp.MatchString(tok) {
		return true
	}
	m := unitSexagesimalRegexp.FindStringSubmatch(tok)
	return m != nil && (m[3] == "h" || m[4] != "" || m[5] != "")
}

// Suffix returns the explicit unit carried by tok, if any. Sexagesimal
// tokens report HourAngle or Degree according to their separator.
func Suffix(tok string) (Unit, bool) {
	tok = strings.TrimSpace(tok)
	if tok == "" {
		return Degree, false
	}
	if m := unitSexagesimalRegexp.FindStringSubmatch(tok); m != nil {
		if m[3] == "h" {
			return HourAngle, true
		}
		return Degree, true
	}
	u, ok := suffixUnits[tok[len(tok)-1]]
	return u, ok
}

// ParseQuantity parses a DS9 coordinate or length token. An explicit unit
// suffix always wins; otherwise colon separated values use colonUnit and bare
// numbers use defaultUnit.
func ParseQuantity(tok string, defaultUnit, colonUnit Unit) (Quantity, error) {
	tok = strings.TrimSpace(tok)
	if tok == "" {
		return Quantity{}, fmt.Errorf("coords: empty value")
	}

	if m := unitSexagesimalRegexp.FindStringSubmatch(tok); m != nil {
		unit := Degree
		if m[3] == "h" {
			unit = HourAngle
		}
		v, err := sexagesimal(m[1], m[2], m[4], m[5])
		if err != nil {
			return Quantity{}, fmt.Errorf("coords: invalid angle %q: %w", tok, err)
		}
		return Quantity{Value: v, Unit: unit}, nil
	}

	if m := colonSexagesimalRegexp.FindStringSubmatch(tok); m != nil {
		if !colonUnit.IsAngular() {
			return Quantity{}, fmt.Errorf("coords: sexagesimal value %q where %s expected", tok, colonUnit)
		}
		v, err := sexagesimal(m[1], m[2], m[3], m[4])
		if err != nil {
			return Quantity{}, fmt.Errorf("coords: invalid angle %q: %w", tok, err)
		}
		return Quantity{Value: v, Unit: colonUnit}, nil
	}

	unit := defaultUnit
	body := tok
	if u, ok := suffixUnits[tok[len(tok)-1]]; ok {
		unit = u
		body = tok[:len(tok)-1]
	}
	v, err := strconv.ParseFloat(body, 64)
	if err != nil {
		return Quantity{}, fmt.Errorf("coords: invalid number %q", tok)
	}
	return Quantity{Value: v, Unit: unit}, nil
}

// sexagesimal combines the components of a sexagesimal value. The sign
// applies to the whole value so "-0:30:00" is -0.5.
func sexagesimal(sign, whole, minutes, seconds string) (float64, error) {
	v, err := strconv.ParseFloat(whole, 64)
	if err != nil {
		return 0, err
	}
	if minutes != "" {
		m, err := strconv.ParseFloat(minutes, 64)
		if err != nil {
			return 0, err
		}
		if m >= 60 {
			return 0, fmt.Errorf("minutes out of range: %s", minutes)
		}
		v += m / 60
	}
	if seconds != "" {
		s, err := strconv.ParseFloat(seconds, 64)
		if err != nil {
			return 0, err
		}
		if s >= 60 {
			return 0, fmt.Errorf("seconds out of range: %s", seconds)
		}
		v += s / 3600
	}
	if sign == "-" {
		v = -v
	}
	return v, nil
}

// FormatSexagesimal renders an angle given in degrees as colon separated
// sexagesimal, in hours when hours is true. prec is the number of decimals
// on the seconds field.
func FormatSexagesimal(deg float64, hours bool, prec int) string {
	v := deg
	if hours {
		v = math.Mod(deg, 360)
		if v < 0 {
			v += 360
		}
		v /= DegreesPerHour
	}
	sign := ""
	if v < 0 {
		sign = "-"
		v = -v
	} else if !hours {
		sign = "+"
	}

	scale := math.Pow(10, float64(prec))
	total := math.Round(v*3600*scale) / scale
	whole := math.Floor(total / 3600)
	rest := total - whole*3600
	minutes := math.Floor(rest / 60)
	seconds := rest - minutes*60

	secWidth := 2
	if prec > 0 {
		secWidth = prec + 3
	}
	return fmt.Sprintf("%s%02.0f:%02.0f:%0*.*f", sign, whole, minutes, secWidth, prec, seconds)
}
