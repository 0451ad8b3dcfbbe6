package regions

import (
	"math"
)

// PixCoord is a position in image pixel coordinates
type PixCoord struct {
	X float64
	Y float64
}

// BoundingBox represents a rectangular boundary in pixel coordinates
type BoundingBox struct {
	Min PixCoord // Minimum (lower-left) corner
	Max PixCoord // Maximum (upper-right) corner
}

// NewBoundingBox creates an empty bounding box
func NewBoundingBox() BoundingBox {
	return BoundingBox{
		Min: PixCoord{X: math.Inf(1), Y: math.Inf(1)},
		Max: PixCoord{X: math.Inf(-1), Y: math.Inf(-1)},
	}
}

// IsEmpty checks if the bounding box is empty
func (bb BoundingBox) IsEmpty() bool {
	return bb.Min.X > bb.Max.X || bb.Min.Y > bb.Max.Y
}

// Expand expands the bounding box to include a position
func (bb *BoundingBox) Expand(p PixCoord) {
	bb.Min.X = math.Min(bb.Min.X, p.X)
	bb.Min.Y = math.Min(bb.Min.Y, p.Y)
	bb.Max.X = math.Max(bb.Max.X, p.X)
	bb.Max.Y = math.Max(bb.Max.Y, p.Y)
}

// ExpandBox expands to include another bounding box
func (bb *BoundingBox) ExpandBox(other BoundingBox) {
	if !other.IsEmpty() {
		bb.Expand(other.Min)
		bb.Expand(other.Max)
	}
}

// Contains checks if a position is within the bounding box
func (bb BoundingBox) Contains(p PixCoord) bool {
	return p.X >= bb.Min.X && p.X <= bb.Max.X &&
		p.Y >= bb.Min.Y && p.Y <= bb.Max.Y
}

// Width returns the width of the bounding box
func (bb BoundingBox) Width() float64 {
	return bb.Max.X - bb.Min.X
}

// Height returns the height of the bounding box
func (bb BoundingBox) Height() float64 {
	return bb.Max.Y - bb.Min.Y
}

// Center returns the center point of the bounding box
func (bb BoundingBox) Center() PixCoord {
	return PixCoord{
		X: (bb.Min.X + bb.Max.X) / 2.0,
		Y: (bb.Min.Y + bb.Max.Y) / 2.0,
	}
}

// rotatedExtent is the half-size of a w x h box rotated by angle degrees
func rotatedExtent(w, h, angleDeg float64) (float64, float64) {
	a := angleDeg * math.Pi / 180
	c, s := math.Abs(math.Cos(a)), math.Abs(math.Sin(a))
	return (w*c + h*s) / 2, (w*s + h*c) / 2
}

// ellipseExtent is the half-size of the tight box around a rotated ellipse
// with full axes w and h
func ellipseExtent(w, h, angleDeg float64) (float64, float64) {
	a := angleDeg * math.Pi / 180
	rx, ry := w/2, h/2
	c, s := math.Cos(a), math.Sin(a)
	return math.Hypot(rx*c, ry*s), math.Hypot(rx*s, ry*c)
}
