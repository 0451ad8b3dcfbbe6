package regions

import (
	"github.com/conormcp/regions/pkg/coords"
)

// Pixel regions record the pixel frame (image or physical) they were defined
// in as CoordSys. Rotation angles stay angular quantities.

// CirclePixel is a circle in pixel coordinates
type CirclePixel struct {
	Center   PixCoord
	Radius   float64
	CoordSys coords.Frame
	Meta     Meta
}

func (r *CirclePixel) Kind() Kind          { return KindCircle }
func (r *CirclePixel) Frame() coords.Frame { return pixelFrame(r.CoordSys) }
func (r *CirclePixel) Metadata() *Meta     { return &r.Meta }

func (r *CirclePixel) BoundingBox() BoundingBox {
	return centeredBox(r.Center, r.Radius, r.Radius)
}

// CircleAnnulusPixel is a ring in pixel coordinates
type CircleAnnulusPixel struct {
	Center   PixCoord
	Inner    float64
	Outer    float64
	CoordSys coords.Frame
	Meta     Meta
}

func (r *CircleAnnulusPixel) Kind() Kind          { return KindCircleAnnulus }
func (r *CircleAnnulusPixel) Frame() coords.Frame { return pixelFrame(r.CoordSys) }
func (r *CircleAnnulusPixel) Metadata() *Meta     { return &r.Meta }

func (r *CircleAnnulusPixel) BoundingBox() BoundingBox {
	return centeredBox(r.Center, r.Outer, r.Outer)
}

// EllipsePixel is an ellipse in pixel coordinates with full axes Width and
// Height
type EllipsePixel struct {
	Center   PixCoord
	Width    float64
	Height   float64
	Angle    coords.Quantity
	CoordSys coords.Frame
	Meta     Meta
}

func (r *EllipsePixel) Kind() Kind          { return KindEllipse }
func (r *EllipsePixel) Frame() coords.Frame { return pixelFrame(r.CoordSys) }
func (r *EllipsePixel) Metadata() *Meta     { return &r.Meta }

func (r *EllipsePixel) BoundingBox() BoundingBox {
	deg, _ := r.Angle.Degrees()
	dx, dy := ellipseExtent(r.Width, r.Height, deg)
	return centeredBox(r.Center, dx, dy)
}

// RectanglePixel is a rotated box in pixel coordinates
type RectanglePixel struct {
	Center   PixCoord
	Width    float64
	Height   float64
	Angle    coords.Quantity
	CoordSys coords.Frame
	Meta     Meta
}

func (r *RectanglePixel) Kind() Kind          { return KindRectangle }
func (r *RectanglePixel) Frame() coords.Frame { return pixelFrame(r.CoordSys) }
func (r *RectanglePixel) Metadata() *Meta     { return &r.Meta }

func (r *RectanglePixel) BoundingBox() BoundingBox {
	deg, _ := r.Angle.Degrees()
	dx, dy := rotatedExtent(r.Width, r.Height, deg)
	return centeredBox(r.Center, dx, dy)
}

// PolygonPixel is a closed polygon in pixel coordinates
type PolygonPixel struct {
	Vertices []PixCoord
	CoordSys coords.Frame
	Meta     Meta
}

func (r *PolygonPixel) Kind() Kind          { return KindPolygon }
func (r *PolygonPixel) Frame() coords.Frame { return pixelFrame(r.CoordSys) }
func (r *PolygonPixel) Metadata() *Meta     { return &r.Meta }

func (r *PolygonPixel) BoundingBox() BoundingBox {
	bb := NewBoundingBox()
	for _, v := range r.Vertices {
		bb.Expand(v)
	}
	return bb
}

// LinePixel is a segment in pixel coordinates
type LinePixel struct {
	Start    PixCoord
	End      PixCoord
	CoordSys coords.Frame
	Meta     Meta
}

func (r *LinePixel) Kind() Kind          { return KindLine }
func (r *LinePixel) Frame() coords.Frame { return pixelFrame(r.CoordSys) }
func (r *LinePixel) Metadata() *Meta     { return &r.Meta }

func (r *LinePixel) BoundingBox() BoundingBox {
	bb := NewBoundingBox()
	bb.Expand(r.Start)
	bb.Expand(r.End)
	return bb
}

// PointPixel is a single pixel position
type PointPixel struct {
	Center   PixCoord
	CoordSys coords.Frame
	Meta     Meta
}

func (r *PointPixel) Kind() Kind          { return KindPoint }
func (r *PointPixel) Frame() coords.Frame { return pixelFrame(r.CoordSys) }
func (r *PointPixel) Metadata() *Meta     { return &r.Meta }

func (r *PointPixel) BoundingBox() BoundingBox {
	return centeredBox(r.Center, 0, 0)
}

// TextPixel is a text label anchored at a pixel position
type TextPixel struct {
	Center   PixCoord
	Text     string
	CoordSys coords.Frame
	Meta     Meta
}

func (r *TextPixel) Kind() Kind          { return KindText }
func (r *TextPixel) Frame() coords.Frame { return pixelFrame(r.CoordSys) }
func (r *TextPixel) Metadata() *Meta     { return &r.Meta }

func (r *TextPixel) BoundingBox() BoundingBox {
	return centeredBox(r.Center, 0, 0)
}

func pixelFrame(f coords.Frame) coords.Frame {
	if f == "" {
		return coords.Image
	}
	return f
}

func centeredBox(c PixCoord, dx, dy float64) BoundingBox {
	return BoundingBox{
		Min: PixCoord{X: c.X - dx, Y: c.Y - dy},
		Max: PixCoord{X: c.X + dx, Y: c.Y + dy},
	}
}
