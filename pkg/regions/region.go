// Package regions holds the typed region model: sky regions positioned with
// celestial coordinates, pixel regions positioned in image coordinates, and
// the metadata attached to both.
package regions

import (
	"github.com/conormcp/regions/pkg/coords"
)

// Kind identifies the geometric shape of a region
type Kind int

const (
	KindCircle Kind = iota
	KindCircleAnnulus
	KindEllipse
	KindRectangle
	KindPolygon
	KindLine
	KindPoint
	KindText
)

var kindNames = [...]string{
	KindCircle:        "circle",
	KindCircleAnnulus: "circleannulus",
	KindEllipse:       "ellipse",
	KindRectangle:     "rectangle",
	KindPolygon:       "polygon",
	KindLine:          "line",
	KindPoint:         "point",
	KindText:          "text",
}

func (k Kind) String() string {
	if int(k) >= 0 && int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// Region is implemented by every sky and pixel region type
type Region interface {
	Kind() Kind
	Frame() coords.Frame
	Metadata() *Meta
}

// SkyRegion is a region positioned on the sky that can be re-expressed in
// another celestial frame. Lengths and rotation angles are carried over
// unchanged.
type SkyRegion interface {
	Region
	Transform(to coords.Frame) (SkyRegion, error)
}

// PixelRegion is a region positioned in image coordinates
type PixelRegion interface {
	Region
	BoundingBox() BoundingBox
}

// Include reports whether the region is an inclusion region. Regions without
// an "include" entry are included.
func Include(r Region) bool {
	if v, ok := r.Metadata().Get("include"); ok {
		if b, isBool := v.Bool(); isBool {
			return b
		}
		return v.String() != "0"
	}
	return true
}
