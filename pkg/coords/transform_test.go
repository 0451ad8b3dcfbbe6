package coords

import (
	"math"
	"testing"
)

func TestParseFrame(t *testing.T) {
	tests := []struct {
		in   string
		want Frame
		ok   bool
	}{
		{"fk5", FK5, true},
		{"FK5", FK5, true},
		{"GALACTIC", Galactic, true},
		{"J2000", FK5, true},
		{"b1950", FK4, true},
		{"Image", Image, true},
		{"wcsb", Frame("wcsb"), true},
		{"circle", "", false},
	}
	for _, tt := range tests {
		got, ok := ParseFrame(tt.in)
		if got != tt.want || ok != tt.ok {
			t.Errorf("ParseFrame(%q) = %q, %v; want %q, %v", tt.in, got, ok, tt.want, tt.ok)
		}
	}
	if Frame("wcsb").Supported() {
		t.Error("alternate WCS should not be supported")
	}
}

func TestGalacticCenter(t *testing.T) {
	// galactic origin
	c := Sky(266.4049882, -28.9361778, ICRS)
	g, err := c.Transform(Galactic)
	if err != nil {
		t.Fatal(err)
	}
	lon := g.Lon
	if lon > 180 {
		lon -= 360
	}
	if math.Abs(lon) > 0.01 || math.Abs(g.Lat) > 0.01 {
		t.Errorf("galactic centre = (%g, %g), want near (0, 0)", lon, g.Lat)
	}
}

func TestGalacticPole(t *testing.T) {
	c := Sky(192.85948, 27.12825, ICRS)
	g, err := c.Transform(Galactic)
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(g.Lat-90) > 1e-3 {
		t.Errorf("north galactic pole latitude = %g", g.Lat)
	}
}

func TestTransformRoundTrip(t *testing.T) {
	frames := []Frame{FK5, FK4, ICRS, Galactic, Ecliptic}
	start := Sky(42, 43, FK5)
	for _, f := range frames {
		out, err := start.Transform(f)
		if err != nil {
			t.Fatalf("to %s: %v", f, err)
		}
		back, err := out.Transform(FK5)
		if err != nil {
			t.Fatalf("from %s: %v", f, err)
		}
		if sep := start.Separation(back); sep > 1e-7 {
			t.Errorf("round trip through %s drifted %g deg", f, sep)
		}
	}
}

func TestEclipticOfEquinox(t *testing.T) {
	// the vernal equinox lies on both the equator and the ecliptic
	c, err := Sky(0, 0, FK5).Transform(Ecliptic)
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(c.Lat) > 1e-9 || (c.Lon > 1e-9 && c.Lon < 360-1e-9) {
		t.Errorf("equinox in ecliptic = %v", c)
	}
}

func TestTransformRejectsPixelFrames(t *testing.T) {
	if _, err := Sky(1, 2, FK5).Transform(Image); err == nil {
		t.Error("expected error transforming to image frame")
	}
	if _, err := NewSkyCoord(Q(1, Pixel), Q(2, Pixel), FK5); err == nil {
		t.Error("expected error building sky coordinate from pixels")
	}
	if _, err := NewSkyCoord(Q(1, Degree), Q(95, Degree), FK5); err == nil {
		t.Error("expected latitude range error")
	}
}
