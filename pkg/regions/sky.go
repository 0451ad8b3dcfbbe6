package regions

import (
	"github.com/conormcp/regions/pkg/coords"
)

// CircleSky is a circle on the sky
type CircleSky struct {
	Center coords.SkyCoord
	Radius coords.Quantity
	Meta   Meta
}

func (r *CircleSky) Kind() Kind          { return KindCircle }
func (r *CircleSky) Frame() coords.Frame { return r.Center.Frame }
func (r *CircleSky) Metadata() *Meta     { return &r.Meta }

func (r *CircleSky) Transform(to coords.Frame) (SkyRegion, error) {
	c, err := r.Center.Transform(to)
	if err != nil {
		return nil, err
	}
	out := *r
	out.Center = c
	out.Meta = r.Meta.Clone()
	return &out, nil
}

// CircleAnnulusSky is the ring between two concentric circles on the sky
type CircleAnnulusSky struct {
	Center coords.SkyCoord
	Inner  coords.Quantity
	Outer  coords.Quantity
	Meta   Meta
}

func (r *CircleAnnulusSky) Kind() Kind          { return KindCircleAnnulus }
func (r *CircleAnnulusSky) Frame() coords.Frame { return r.Center.Frame }
func (r *CircleAnnulusSky) Metadata() *Meta     { return &r.Meta }

func (r *CircleAnnulusSky) Transform(to coords.Frame) (SkyRegion, error) {
	c, err := r.Center.Transform(to)
	if err != nil {
		return nil, err
	}
	out := *r
	out.Center = c
	out.Meta = r.Meta.Clone()
	return &out, nil
}

// EllipseSky is an ellipse on the sky. Width and Height are full axis
// lengths; Angle rotates the Width axis counter-clockwise from the
// longitude axis.
type EllipseSky struct {
	Center coords.SkyCoord
	Width  coords.Quantity
	Height coords.Quantity
	Angle  coords.Quantity
	Meta   Meta
}

func (r *EllipseSky) Kind() Kind          { return KindEllipse }
func (r *EllipseSky) Frame() coords.Frame { return r.Center.Frame }
func (r *EllipseSky) Metadata() *Meta     { return &r.Meta }

func (r *EllipseSky) Transform(to coords.Frame) (SkyRegion, error) {
	c, err := r.Center.Transform(to)
	if err != nil {
		return nil, err
	}
	out := *r
	out.Center = c
	out.Meta = r.Meta.Clone()
	return &out, nil
}

// RectangleSky is a rotated box on the sky
type RectangleSky struct {
	Center coords.SkyCoord
	Width  coords.Quantity
	Height coords.Quantity
	Angle  coords.Quantity
	Meta   Meta
}

func (r *RectangleSky) Kind() Kind          { return KindRectangle }
func (r *RectangleSky) Frame() coords.Frame { return r.Center.Frame }
func (r *RectangleSky) Metadata() *Meta     { return &r.Meta }

func (r *RectangleSky) Transform(to coords.Frame) (SkyRegion, error) {
	c, err := r.Center.Transform(to)
	if err != nil {
		return nil, err
	}
	out := *r
	out.Center = c
	out.Meta = r.Meta.Clone()
	return &out, nil
}

// PolygonSky is a closed polygon on the sky
type PolygonSky struct {
	Vertices []coords.SkyCoord
	Meta     Meta
}

func (r *PolygonSky) Kind() Kind      { return KindPolygon }
func (r *PolygonSky) Metadata() *Meta { return &r.Meta }

func (r *PolygonSky) Frame() coords.Frame {
	if len(r.Vertices) == 0 {
		return ""
	}
	return r.Vertices[0].Frame
}

func (r *PolygonSky) Transform(to coords.Frame) (SkyRegion, error) {
	vertices := make([]coords.SkyCoord, len(r.Vertices))
	for i, v := range r.Vertices {
		c, err := v.Transform(to)
		if err != nil {
			return nil, err
		}
		vertices[i] = c
	}
	return &PolygonSky{Vertices: vertices, Meta: r.Meta.Clone()}, nil
}

// LineSky is a segment between two sky positions
type LineSky struct {
	Start coords.SkyCoord
	End   coords.SkyCoord
	Meta  Meta
}

func (r *LineSky) Kind() Kind          { return KindLine }
func (r *LineSky) Frame() coords.Frame { return r.Start.Frame }
func (r *LineSky) Metadata() *Meta     { return &r.Meta }

func (r *LineSky) Transform(to coords.Frame) (SkyRegion, error) {
	start, err := r.Start.Transform(to)
	if err != nil {
		return nil, err
	}
	end, err := r.End.Transform(to)
	if err != nil {
		return nil, err
	}
	return &LineSky{Start: start, End: end, Meta: r.Meta.Clone()}, nil
}

// PointSky is a single sky position
type PointSky struct {
	Center coords.SkyCoord
	Meta   Meta
}

func (r *PointSky) Kind() Kind          { return KindPoint }
func (r *PointSky) Frame() coords.Frame { return r.Center.Frame }
func (r *PointSky) Metadata() *Meta     { return &r.Meta }

func (r *PointSky) Transform(to coords.Frame) (SkyRegion, error) {
	c, err := r.Center.Transform(to)
	if err != nil {
		return nil, err
	}
	return &PointSky{Center: c, Meta: r.Meta.Clone()}, nil
}

// TextSky is a text label anchored at a sky position
type TextSky struct {
	Center coords.SkyCoord
	Text   string
	Meta   Meta
}

func (r *TextSky) Kind() Kind          { return KindText }
func (r *TextSky) Frame() coords.Frame { return r.Center.Frame }
func (r *TextSky) Metadata() *Meta     { return &r.Meta }

func (r *TextSky) Transform(to coords.Frame) (SkyRegion, error) {
	c, err := r.Center.Transform(to)
	if err != nil {
		return nil, err
	}
	return &TextSky{Center: c, Text: r.Text, Meta: r.Meta.Clone()}, nil
}
