package coords

import (
	"fmt"
	"math"
)

// SkyCoord is a position on the celestial sphere. Lon and Lat are stored in
// degrees; Lon is normalised to [0, 360).
type SkyCoord struct {
	Lon   float64
	Lat   float64
	Frame Frame
}

// NewSkyCoord builds a SkyCoord from angular quantities
func NewSkyCoord(lon, lat Quantity, frame Frame) (SkyCoord, error) {
	if !frame.IsSky() {
		return SkyCoord{}, fmt.Errorf("coords: %q is not a sky frame", frame)
	}
	l, err := lon.Degrees()
	if err != nil {
		return SkyCoord{}, err
	}
	b, err := lat.Degrees()
	if err != nil {
		return SkyCoord{}, err
	}
	if b < -90-1e-9 || b > 90+1e-9 {
		return SkyCoord{}, fmt.Errorf("coords: latitude %g out of range", b)
	}
	return SkyCoord{Lon: wrap360(l), Lat: b, Frame: frame}, nil
}

// Sky is shorthand for a SkyCoord from degree values
func Sky(lon, lat float64, frame Frame) SkyCoord {
	return SkyCoord{Lon: wrap360(lon), Lat: lat, Frame: frame}
}

func (c SkyCoord) String() string {
	lonName, latName := c.Frame.LonLatNames()
	return fmt.Sprintf("<%s %s=%g %s=%g>", c.Frame, lonName, c.Lon, latName, c.Lat)
}

// Separation returns the great-circle distance to other in degrees. Both
// coordinates must be in the same frame.
func (c SkyCoord) Separation(other SkyCoord) float64 {
	a := toVector(c.Lon, c.Lat)
	b := toVector(other.Lon, other.Lat)
	cross := vec3{
		a[1]*b[2] - a[2]*b[1],
		a[2]*b[0] - a[0]*b[2],
		a[0]*b[1] - a[1]*b[0],
	}
	dot := a[0]*b[0] + a[1]*b[1] + a[2]*b[2]
	return math.Atan2(math.Sqrt(cross[0]*cross[0]+cross[1]*cross[1]+cross[2]*cross[2]), dot) * DegreesPerRadian
}

// Transform returns the coordinate expressed in the target frame
func (c SkyCoord) Transform(to Frame) (SkyCoord, error) {
	if c.Frame == to {
		return c, nil
	}
	if !to.IsSky() {
		return SkyCoord{}, fmt.Errorf("coords: cannot transform %s to non-sky frame %q", c.Frame, to)
	}
	v, err := toICRS(c.Frame, toVector(c.Lon, c.Lat))
	if err != nil {
		return SkyCoord{}, err
	}
	v, err = fromICRS(to, v)
	if err != nil {
		return SkyCoord{}, err
	}
	lon, lat := fromVector(v)
	return SkyCoord{Lon: lon, Lat: lat, Frame: to}, nil
}

type vec3 [3]float64

type mat3 [3][3]float64

func (m mat3) apply(v vec3) vec3 {
	var out vec3
	for i := 0; i < 3; i++ {
		out[i] = m[i][0]*v[0] + m[i][1]*v[1] + m[i][2]*v[2]
	}
	return out
}

func (m mat3) transpose() mat3 {
	var t mat3
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			t[i][j] = m[j][i]
		}
	}
	return t
}

// Frame rotations. Each matrix maps an ICRS (or FK5 for fk4/ecliptic)
// direction vector into the named frame.
var (
	// ICRS -> mean equator and equinox J2000 (IERS frame bias)
	icrsToFK5 = mat3{
		{0.9999999999999942, -0.0000000707827974, 0.0000000805621715},
		{0.0000000707827948, 0.9999999999999969, 0.0000000330604145},
		{-0.0000000805621738, -0.0000000330604088, 0.9999999999999962},
	}

	// ICRS -> galactic (Hipparcos definition)
	icrsToGalactic = mat3{
		{-0.0548755604162154, -0.8734370902348850, -0.4838350155487132},
		{0.4941094278755837, -0.4448296299600112, 0.7469822444972189},
		{-0.8676661490190047, -0.1980763734312015, 0.4559837761750669},
	}

	// FK4 B1950 -> FK5 J2000, position part only. E-terms of aberration are
	// not modelled, which leaves errors below one arcsecond.
	fk4ToFK5 = mat3{
		{0.9999256782, -0.0111820611, -0.0048579477},
		{0.0111820610, 0.9999374784, -0.0000271765},
		{0.0048579479, -0.0000271474, 0.9999881997},
	}

	// FK5 -> mean ecliptic and equinox J2000
	fk5ToEcliptic = rotationX(23.4392911 / DegreesPerRadian)
)

func rotationX(eps float64) mat3 {
	c, s := math.Cos(eps), math.Sin(eps)
	return mat3{
		{1, 0, 0},
		{0, c, s},
		{0, -s, c},
	}
}

func toICRS(f Frame, v vec3) (vec3, error) {
	switch f {
	case ICRS:
		return v, nil
	case FK5:
		return icrsToFK5.transpose().apply(v), nil
	case Galactic:
		return icrsToGalactic.transpose().apply(v), nil
	case FK4:
		return icrsToFK5.transpose().apply(fk4ToFK5.apply(v)), nil
	case Ecliptic:
		return icrsToFK5.transpose().apply(fk5ToEcliptic.transpose().apply(v)), nil
	}
	return vec3{}, fmt.Errorf("coords: no transform from frame %q", f)
}

func fromICRS(f Frame, v vec3) (vec3, error) {
	switch f {
	case ICRS:
		return v, nil
	case FK5:
		return icrsToFK5.apply(v), nil
	case Galactic:
		return icrsToGalactic.apply(v), nil
	case FK4:
		return fk4ToFK5.transpose().apply(icrsToFK5.apply(v)), nil
	case Ecliptic:
		return fk5ToEcliptic.apply(icrsToFK5.apply(v)), nil
	}
	return vec3{}, fmt.Errorf("coords: no transform to frame %q", f)
}

func toVector(lonDeg, latDeg float64) vec3 {
	lon := lonDeg / DegreesPerRadian
	lat := latDeg / DegreesPerRadian
	return vec3{
		math.Cos(lat) * math.Cos(lon),
		math.Cos(lat) * math.Sin(lon),
		math.Sin(lat),
	}
}

func fromVector(v vec3) (float64, float64) {
	lon := math.Atan2(v[1], v[0]) * DegreesPerRadian
	lat := math.Atan2(v[2], math.Hypot(v[0], v[1])) * DegreesPerRadian
	return wrap360(lon), lat
}

func wrap360(deg float64) float64 {
	deg = math.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}
	if deg >= 360 {
		deg -= 360
	}
	return deg
}
