package ds9

import (
	"strconv"
	"strings"

	"github.com/conormcp/regions/pkg/coords"
)

// argRole is what a positional argument means for its region type
type argRole int

const (
	roleLon argRole = iota
	roleLat
	roleLength
	roleAngle
	roleText
)

// roles returns the role of every argument of a region type given the
// number of arguments supplied. Arity is checked separately.
func roles(t RegionType, n int) []argRole {
	out := make([]argRole, n)
	for i := range out {
		switch t {
		case TypePolygon, TypeLine:
			out[i] = roleLon + argRole(i%2)
		case TypeEllipse, TypeBox:
			switch {
			case i < 2:
				out[i] = roleLon + argRole(i)
			case i == n-1 && n%2 == 1:
				out[i] = roleAngle
			default:
				out[i] = roleLength
			}
		case TypeText:
			switch {
			case i < 2:
				out[i] = roleLon + argRole(i)
			default:
				out[i] = roleText
			}
		default:
			if i < 2 {
				out[i] = roleLon + argRole(i)
			} else {
				out[i] = roleLength
			}
		}
	}
	return out
}

// resolveArg turns one argument token into a quantity. An explicit suffix
// always wins; otherwise the frame decides: pixel frames read bare numbers
// as pixels, sky frames as degrees with colon forms in hours for the
// longitude of equatorial frames. Rotation angles are degrees everywhere.
func resolveArg(tok string, role argRole, frame coords.Frame) (coords.Quantity, error) {
	if role == roleAngle {
		return coords.ParseQuantity(tok, coords.Degree, coords.Degree)
	}
	if frame.IsPixel() {
		return coords.ParseQuantity(tok, coords.Pixel, coords.Pixel)
	}
	colon := coords.Degree
	if role == roleLon && frame.LonIsHours() {
		colon = coords.HourAngle
	}
	return coords.ParseQuantity(tok, coords.Degree, colon)
}

// skyLike reports whether a token can only be a sky value: sexagesimal, or
// carrying an angular unit suffix
func skyLike(tok string) bool {
	tok = strings.TrimSpace(tok)
	if strings.Contains(tok, ":") || coords.IsSexagesimal(tok) {
		return true
	}
	u, ok := coords.Suffix(tok)
	return ok && u != coords.Pixel
}

// numeric reports whether tok is a plain number
func numeric(tok string) bool {
	_, err := strconv.ParseFloat(tok, 64)
	return err == nil
}

// countForm reports whether the arguments use DS9's "n=" shorthand for
// evenly spaced annuli, e.g. annulus(100,100,20,40,n=4)
func countForm(args []string) bool {
	for _, a := range args {
		if strings.Contains(a, "=") {
			return true
		}
	}
	return false
}
