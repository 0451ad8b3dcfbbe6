package ds9

import (
	"strings"
)

// RegionType is a DS9 region keyword
type RegionType int

const (
	TypeCircle RegionType = iota
	TypeEllipse
	TypeBox
	TypePolygon
	TypeLine
	TypePoint
	TypeAnnulus
	TypeText

	// Known DS9 types with no single-shape equivalent
	TypePanda
	TypeEpanda
	TypeBpanda
	TypeVector
	TypeRuler
	TypeCompass
	TypeProjection
	TypeSegment
	TypeComposite
)

var regionTypeNames = map[string]RegionType{
	"circle":     TypeCircle,
	"ellipse":    TypeEllipse,
	"box":        TypeBox,
	"polygon":    TypePolygon,
	"line":       TypeLine,
	"point":      TypePoint,
	"annulus":    TypeAnnulus,
	"text":       TypeText,
	"panda":      TypePanda,
	"epanda":     TypeEpanda,
	"bpanda":     TypeBpanda,
	"vector":     TypeVector,
	"ruler":      TypeRuler,
	"compass":    TypeCompass,
	"projection": TypeProjection,
	"segment":    TypeSegment,
	"composite":  TypeComposite,
}

// LookupRegionType resolves a region keyword, case-insensitively
func LookupRegionType(name string) (RegionType, bool) {
	t, ok := regionTypeNames[strings.ToLower(name)]
	return t, ok
}

func (t RegionType) String() string {
	for name, rt := range regionTypeNames {
		if rt == t {
			return name
		}
	}
	return "unknown"
}

// Supported reports whether the type maps to a single region
func (t RegionType) Supported() bool {
	return t <= TypeText
}

// Composite reports whether the type encodes several nested shapes
func (t RegionType) Composite() bool {
	switch t {
	case TypePanda, TypeEpanda, TypeBpanda, TypeComposite:
		return true
	}
	return false
}
