package ds9

import (
	"fmt"

	"github.com/conormcp/regions/pkg/coords"
	"github.com/conormcp/regions/pkg/regions"
)

type constructor func(s *Shape) (regions.Region, error)

// skyConstructors builds sky regions for shapes in celestial frames
var skyConstructors = map[RegionType]constructor{
	TypeCircle: func(s *Shape) (regions.Region, error) {
		c, err := s.skyCoord(0)
		if err != nil {
			return nil, err
		}
		return &regions.CircleSky{Center: c, Radius: s.Coord[2]}, nil
	},
	TypeAnnulus: func(s *Shape) (regions.Region, error) {
		c, err := s.skyCoord(0)
		if err != nil {
			return nil, err
		}
		return &regions.CircleAnnulusSky{Center: c, Inner: s.Coord[2], Outer: s.Coord[3]}, nil
	},
	TypeEllipse: func(s *Shape) (regions.Region, error) {
		c, err := s.skyCoord(0)
		if err != nil {
			return nil, err
		}
		return &regions.EllipseSky{
			Center: c,
			Width:  double(s.Coord[2]),
			Height: double(s.Coord[3]),
			Angle:  s.rotation(),
		}, nil
	},
	TypeBox: func(s *Shape) (regions.Region, error) {
		c, err := s.skyCoord(0)
		if err != nil {
			return nil, err
		}
		return &regions.RectangleSky{
			Center: c,
			Width:  s.Coord[2],
			Height: s.Coord[3],
			Angle:  s.rotation(),
		}, nil
	},
	TypePolygon: func(s *Shape) (regions.Region, error) {
		vertices := make([]coords.SkyCoord, 0, len(s.Coord)/2)
		for i := 0; i+1 < len(s.Coord); i += 2 {
			c, err := s.skyCoord(i)
			if err != nil {
				return nil, err
			}
			vertices = append(vertices, c)
		}
		return &regions.PolygonSky{Vertices: vertices}, nil
	},
	TypeLine: func(s *Shape) (regions.Region, error) {
		start, err := s.skyCoord(0)
		if err != nil {
			return nil, err
		}
		end, err := s.skyCoord(2)
		if err != nil {
			return nil, err
		}
		return &regions.LineSky{Start: start, End: end}, nil
	},
	TypePoint: func(s *Shape) (regions.Region, error) {
		c, err := s.skyCoord(0)
		if err != nil {
			return nil, err
		}
		return &regions.PointSky{Center: c}, nil
	},
	TypeText: func(s *Shape) (regions.Region, error) {
		c, err := s.skyCoord(0)
		if err != nil {
			return nil, err
		}
		return &regions.TextSky{Center: c, Text: s.Meta.GetString("text")}, nil
	},
}

// pixelConstructors builds pixel regions for shapes in image or physical
// coordinates
var pixelConstructors = map[RegionType]constructor{
	TypeCircle: func(s *Shape) (regions.Region, error) {
		return &regions.CirclePixel{Center: s.pix(0), Radius: s.Coord[2].Value, CoordSys: s.CoordSys}, nil
	},
	TypeAnnulus: func(s *Shape) (regions.Region, error) {
		return &regions.CircleAnnulusPixel{
			Center:   s.pix(0),
			Inner:    s.Coord[2].Value,
			Outer:    s.Coord[3].Value,
			CoordSys: s.CoordSys,
		}, nil
	},
	TypeEllipse: func(s *Shape) (regions.Region, error) {
		return &regions.EllipsePixel{
			Center:   s.pix(0),
			Width:    2 * s.Coord[2].Value,
			Height:   2 * s.Coord[3].Value,
			Angle:    s.rotation(),
			CoordSys: s.CoordSys,
		}, nil
	},
	TypeBox: func(s *Shape) (regions.Region, error) {
		return &regions.RectanglePixel{
			Center:   s.pix(0),
			Width:    s.Coord[2].Value,
			Height:   s.Coord[3].Value,
			Angle:    s.rotation(),
			CoordSys: s.CoordSys,
		}, nil
	},
	TypePolygon: func(s *Shape) (regions.Region, error) {
		vertices := make([]regions.PixCoord, 0, len(s.Coord)/2)
		for i := 0; i+1 < len(s.Coord); i += 2 {
			vertices = append(vertices, s.pix(i))
		}
		return &regions.PolygonPixel{Vertices: vertices, CoordSys: s.CoordSys}, nil
	},
	TypeLine: func(s *Shape) (regions.Region, error) {
		return &regions.LinePixel{Start: s.pix(0), End: s.pix(2), CoordSys: s.CoordSys}, nil
	},
	TypePoint: func(s *Shape) (regions.Region, error) {
		return &regions.PointPixel{Center: s.pix(0), CoordSys: s.CoordSys}, nil
	},
	TypeText: func(s *Shape) (regions.Region, error) {
		return &regions.TextPixel{Center: s.pix(0), Text: s.Meta.GetString("text"), CoordSys: s.CoordSys}, nil
	},
}

// checkArity validates the argument count of a region type. composite is
// true for multi-annulus forms that have no single-region equivalent.
func checkArity(t RegionType, n int) (composite bool, err error) {
	ok := false
	switch t {
	case TypeCircle:
		ok = n == 3
	case TypeEllipse, TypeBox:
		if n > 5 {
			return true, nil
		}
		ok = n == 4 || n == 5
	case TypeAnnulus:
		if n > 4 {
			return true, nil
		}
		ok = n == 4
	case TypePolygon:
		ok = n >= 6 && n%2 == 0
	case TypeLine:
		ok = n == 4
	case TypePoint, TypeText:
		ok = n == 2
	}
	if !ok {
		return false, fmt.Errorf("%s takes %s, got %d", t, arityText(t), n)
	}
	return false, nil
}

func arityText(t RegionType) string {
	switch t {
	case TypeCircle:
		return "3 arguments (x, y, radius)"
	case TypeEllipse:
		return "4 or 5 arguments (x, y, r1, r2[, angle])"
	case TypeBox:
		return "4 or 5 arguments (x, y, width, height[, angle])"
	case TypeAnnulus:
		return "4 arguments (x, y, inner, outer)"
	case TypePolygon:
		return "an even number of at least 6 arguments"
	case TypeLine:
		return "4 arguments (x1, y1, x2, y2)"
	}
	return "2 arguments (x, y)"
}

// validateUnits checks that every resolved value suits its role in the
// shape's frame, e.g. no pixel radius on a sky circle
func (s *Shape) validateUnits() error {
	for i, role := range roles(s.Type, len(s.Coord)) {
		q := s.Coord[i]
		switch {
		case role == roleAngle:
			if !q.Unit.IsAngular() {
				return fmt.Errorf("argument %d: rotation angle must be angular, got %s", i+1, q.Unit)
			}
		case s.CoordSys.IsPixel():
			if q.Unit != coords.Pixel {
				return fmt.Errorf("argument %d: %s value in %s frame", i+1, q.Unit, s.CoordSys)
			}
		default:
			if !q.Unit.IsAngular() {
				return fmt.Errorf("argument %d: pixel value in %s frame", i+1, s.CoordSys)
			}
		}
	}
	return nil
}

// ToRegion converts the shape to a typed region. The shape's metadata is
// attached verbatim, with "text" mirrored to "label" and "include" set from
// the shape's inclusion flag.
func (s *Shape) ToRegion() (regions.Region, error) {
	composite, err := checkArity(s.Type, len(s.Coord))
	if err == nil && composite {
		err = fmt.Errorf("%s with %d arguments is a multi-annulus region", s.Type, len(s.Coord))
	}
	if err != nil {
		return nil, fmt.Errorf("ds9: line %d: %w", s.Line, err)
	}
	if err := s.validateUnits(); err != nil {
		return nil, fmt.Errorf("ds9: line %d: %s: %w", s.Line, s.Type, err)
	}

	var table map[RegionType]constructor
	switch {
	case s.CoordSys.IsPixel():
		table = pixelConstructors
	case s.CoordSys.IsSky():
		table = skyConstructors
	default:
		return nil, fmt.Errorf("ds9: line %d: coordinate system %q is not supported", s.Line, s.CoordSys)
	}

	reg, err := table[s.Type](s)
	if err != nil {
		return nil, fmt.Errorf("ds9: line %d: %s: %w", s.Line, s.Type, err)
	}
	*reg.Metadata() = s.regionMeta()
	return reg, nil
}

func (s *Shape) regionMeta() regions.Meta {
	m := s.Meta.Clone()
	if text, ok := m.Get("text"); ok {
		m.Set("label", text)
	}
	m.Set("include", regions.BoolValue(s.Include))
	if s.Comment != "" {
		m.Set("comment", regions.StringValue(s.Comment))
	}
	return m
}

func (s *Shape) skyCoord(i int) (coords.SkyCoord, error) {
	return coords.NewSkyCoord(s.Coord[i], s.Coord[i+1], s.CoordSys)
}

func (s *Shape) pix(i int) regions.PixCoord {
	return regions.PixCoord{X: s.Coord[i].Value, Y: s.Coord[i+1].Value}
}

// rotation returns the optional trailing angle of an ellipse or box
func (s *Shape) rotation() coords.Quantity {
	if len(s.Coord) == 5 {
		return s.Coord[4]
	}
	return coords.Q(0, coords.Degree)
}

func double(q coords.Quantity) coords.Quantity {
	return coords.Quantity{Value: 2 * q.Value, Unit: q.Unit}
}
