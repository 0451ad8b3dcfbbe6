package ds9

import (
	"fmt"

	"github.com/conormcp/regions/pkg/coords"
	"github.com/conormcp/regions/pkg/regions"
)

// Shape is one parsed region statement before conversion to a typed region
type Shape struct {
	Type      RegionType
	Coord     []coords.Quantity
	CoordSys  coords.Frame
	Meta      regions.Meta // global snapshot overlaid with the statement's own keys
	Composite bool         // member of a DS9 composite ("||" continuation)
	Include   bool
	Comment   string
	Line      int
}

func (s *Shape) String() string {
	sign := ""
	if !s.Include {
		sign = "-"
	}
	return fmt.Sprintf("%s%s%v [%s]", sign, s.Type, s.Coord, s.CoordSys)
}

// ShapeList is the result of parsing a region file
type ShapeList struct {
	Shapes []*Shape

	// GlobalMeta is the global metadata in force at the end of the input.
	// Each Shape carries its own snapshot taken when it was parsed.
	GlobalMeta regions.Meta

	// Header is the "# Region file format:" comment, if present
	Header string

	// Warnings collects the problems skipped under the Warn policy
	Warnings []*ParseError
}

// Len returns the number of shapes
func (l *ShapeList) Len() int {
	return len(l.Shapes)
}

// ToRegions converts every shape to a typed region, in order
func (l *ShapeList) ToRegions() ([]regions.Region, error) {
	out := make([]regions.Region, 0, len(l.Shapes))
	for _, s := range l.Shapes {
		r, err := s.ToRegion()
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, nil
}

// ToList converts every shape and wraps the result in a regions.List
func (l *ShapeList) ToList() (*regions.List, error) {
	regs, err := l.ToRegions()
	if err != nil {
		return nil, err
	}
	return regions.NewList(regs...), nil
}
