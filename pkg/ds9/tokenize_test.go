package ds9

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestSplitLines(t *testing.T) {
	got := splitLines("fk5\r\ncircle(1,2,\\\n  3)\n\npoint(1,2)")
	want := []physicalLine{
		{num: 1, text: "fk5"},
		{num: 2, text: "circle(1,2,   3)"},
		{num: 4, text: ""},
		{num: 5, text: "point(1,2)"},
	}
	if diff := cmp.Diff(want, got, cmp.AllowUnexported(physicalLine{})); diff != "" {
		t.Errorf("lines mismatch (-want +got):\n%s", diff)
	}
}

func TestSplitStatements(t *testing.T) {
	tests := []struct {
		line string
		want []string
	}{
		{"galactic; circle(1,2,3)", []string{"galactic", " circle(1,2,3)"}},
		{"circle(1,2,3) # text={a;b}", []string{"circle(1,2,3) # text={a;b}"}},
		{`circle(1,2,3") # font="x;y"; box(1,2,3,4)`, []string{`circle(1,2,3") # font="x;y"`, " box(1,2,3,4)"}},
		{"fk5", []string{"fk5"}},
	}

	for _, tt := range tests {
		if diff := cmp.Diff(tt.want, splitStatements(tt.line)); diff != "" {
			t.Errorf("%q (-want +got):\n%s", tt.line, diff)
		}
	}
}

func TestSplitComment(t *testing.T) {
	tests := []struct {
		stmt    string
		head    string
		meta    string
		hasMeta bool
	}{
		{"circle(1,2,3) # color=red", "circle(1,2,3) ", " color=red", true},
		{"circle(1,2,3) # color=#ff0000", "circle(1,2,3) ", " color=#ff0000", true},
		{"text(1,2,{a#b})", "text(1,2,{a#b})", "", false},
		{"# Region file format", "", " Region file format", true},
	}

	for _, tt := range tests {
		head, meta, hasMeta := splitComment(tt.stmt)
		if head != tt.head || meta != tt.meta || hasMeta != tt.hasMeta {
			t.Errorf("%q: got (%q, %q, %v), want (%q, %q, %v)",
				tt.stmt, head, meta, hasMeta, tt.head, tt.meta, tt.hasMeta)
		}
	}
}

func TestSplitShapeTail(t *testing.T) {
	head, rest, ok := splitShapeTail("text(10,20) text={Hi (there)}")
	if !ok || head != "text(10,20)" || rest != "text={Hi (there)}" {
		t.Errorf("got (%q, %q, %v)", head, rest, ok)
	}
	if _, _, ok := splitShapeTail("text without args"); ok {
		t.Error("Expected no shape without an argument list")
	}
}

func TestStripComposite(t *testing.T) {
	head, composite := stripComposite("circle(1,2,3) || ")
	if !composite || head != "circle(1,2,3) " {
		t.Errorf("got (%q, %v)", head, composite)
	}
	if _, composite := stripComposite("circle(1,2,3)"); composite {
		t.Error("plain statement marked composite")
	}
}

func TestRegionTypeLookup(t *testing.T) {
	for _, name := range []string{"circle", "CIRCLE", "Box", "annulus", "text"} {
		typ, ok := LookupRegionType(name)
		if !ok || !typ.Supported() {
			t.Errorf("%s: expected a supported type", name)
		}
	}
	for _, name := range []string{"panda", "epanda", "bpanda"} {
		typ, ok := LookupRegionType(name)
		if !ok || typ.Supported() || !typ.Composite() {
			t.Errorf("%s: expected a known composite type", name)
		}
	}
	if _, ok := LookupRegionType("notaregiontype"); ok {
		t.Error("unknown keyword resolved")
	}
	if TypeBox.String() != "box" {
		t.Errorf("Expected 'box', got %q", TypeBox.String())
	}
}
