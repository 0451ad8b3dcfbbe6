package regions

import (
	"math"
	"testing"

	"github.com/conormcp/regions/pkg/coords"
	"github.com/lucasb-eyer/go-colorful"
)

func TestMetaColor(t *testing.T) {
	tests := []struct {
		value string
		want  string
	}{
		{"", "#00ff00"},
		{"red", "#ff0000"},
		{"Cyan", "#00ffff"},
		{"#abc", "#aabbcc"},
		{"#123456", "#123456"},
	}
	for _, tt := range tests {
		var m Meta
		if tt.value != "" {
			m.Set("color", StringValue(tt.value))
		}
		c, err := m.Color()
		if err != nil {
			t.Fatalf("Color(%q): %v", tt.value, err)
		}
		if c.Hex() != tt.want {
			t.Errorf("Color(%q) = %s, want %s", tt.value, c.Hex(), tt.want)
		}
	}

	var m Meta
	m.Set("color", StringValue("chartreuse-ish"))
	if _, err := m.Color(); err == nil {
		t.Error("expected error for unknown color")
	}
}

func TestSetColorUsesNames(t *testing.T) {
	var m Meta
	m.SetColor(colorful.Color{R: 1, G: 0, B: 0})
	if got := m.GetString("color"); got != "red" {
		t.Errorf("color = %q, want red", got)
	}
	m.SetColor(colorful.Color{R: 0.5, G: 0.5, B: 0.5})
	if got := m.GetString("color"); got != "#808080" {
		t.Errorf("color = %q, want #808080", got)
	}
}

func TestInclude(t *testing.T) {
	r := &CircleSky{Center: coords.Sky(1, 2, coords.FK5), Radius: coords.Q(1, coords.Degree)}
	if !Include(r) {
		t.Error("regions default to included")
	}
	r.Meta.Set("include", BoolValue(false))
	if Include(r) {
		t.Error("include=false not honoured")
	}
}

func TestSkyTransformKeepsMeta(t *testing.T) {
	r := &EllipseSky{
		Center: coords.Sky(42, 43, coords.FK5),
		Width:  coords.Q(2, coords.Arcsec),
		Height: coords.Q(1, coords.Arcsec),
		Angle:  coords.Q(30, coords.Degree),
		Meta:   NewMeta("color", "red"),
	}
	out, err := r.Transform(coords.Galactic)
	if err != nil {
		t.Fatal(err)
	}
	e := out.(*EllipseSky)
	if e.Frame() != coords.Galactic {
		t.Errorf("frame = %s", e.Frame())
	}
	if e.Width != r.Width || e.Angle != r.Angle {
		t.Error("transform changed lengths or angle")
	}
	e.Meta.Set("color", StringValue("blue"))
	if r.Meta.GetString("color") != "red" {
		t.Error("transformed region shares metadata with the original")
	}
}

func TestPixelBoundingBoxes(t *testing.T) {
	c := &CirclePixel{Center: PixCoord{X: 10, Y: 20}, Radius: 5}
	bb := c.BoundingBox()
	if bb.Min != (PixCoord{X: 5, Y: 15}) || bb.Max != (PixCoord{X: 15, Y: 25}) {
		t.Errorf("circle box = %+v", bb)
	}
	if c.Frame() != coords.Image {
		t.Errorf("default pixel frame = %s", c.Frame())
	}

	r := &RectanglePixel{Center: PixCoord{}, Width: 4, Height: 2, Angle: coords.Q(90, coords.Degree)}
	bb = r.BoundingBox()
	if math.Abs(bb.Width()-2) > 1e-9 || math.Abs(bb.Height()-4) > 1e-9 {
		t.Errorf("rotated box = %vx%v, want 2x4", bb.Width(), bb.Height())
	}

	p := &PolygonPixel{Vertices: []PixCoord{{1, 1}, {4, 2}, {2, 5}}}
	bb = p.BoundingBox()
	if !bb.Contains(PixCoord{X: 2, Y: 2}) || bb.Contains(PixCoord{X: 5, Y: 5}) {
		t.Errorf("polygon box = %+v", bb)
	}

	total := NewBoundingBox()
	if !total.IsEmpty() {
		t.Error("new box should be empty")
	}
	total.ExpandBox(c.BoundingBox())
	total.ExpandBox(p.BoundingBox())
	if total.Min.X != 1 || total.Max.Y != 25 {
		t.Errorf("union = %+v", total)
	}
}

func TestList(t *testing.T) {
	a := &PointPixel{Center: PixCoord{X: 1}}
	b := &PointSky{Center: coords.Sky(1, 1, coords.ICRS)}
	c := &TextPixel{Center: PixCoord{X: 3}, Text: "c"}

	l := NewList(a, b)
	l.Append(c)
	l.Insert(0, c)
	if l.Len() != 4 || l.At(0) != Region(c) {
		t.Fatalf("unexpected list after insert: %d", l.Len())
	}
	if got := l.Pop(-1); got != Region(c) {
		t.Errorf("Pop(-1) = %v", got)
	}
	cp := l.Copy()
	cp.Reverse()
	if cp.At(0) != Region(b) || l.At(0) != Region(c) {
		t.Error("copy is not independent of the original")
	}
	if len(l.Sky()) != 1 || len(l.Pixel()) != 2 {
		t.Errorf("sky=%d pixel=%d", len(l.Sky()), len(l.Pixel()))
	}
	if s := l.Slice(1, 3); s.Len() != 2 || s.At(0) != Region(a) {
		t.Error("slice returned the wrong regions")
	}
}
