package ds9

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/conormcp/regions/pkg/coords"
	"github.com/conormcp/regions/pkg/regions"
)

// Header is the first line of every written region file
const Header = "# Region file format: DS9 astropy/regions"

// DefaultFormat is the numeric format used when Options.Format is empty
const DefaultFormat = ".6f"

// Options controls region serialization
type Options struct {
	// CoordSys is the frame to write in. Empty writes sky regions in fk5 and
	// pixel regions in their own frame.
	CoordSys coords.Frame

	// Format is a printf style float verb without '%', e.g. ".4f"
	Format string

	// RadUnit is the unit for sky lengths: Degree, Arcmin, Arcsec or Radian
	RadUnit coords.Unit

	// Sexagesimal writes sky positions as colon separated values, with the
	// longitude in hours for equatorial frames. The seconds field gets the
	// number of decimals in Format.
	Sexagesimal bool
}

// keys never written as key=value pairs
var implicitKeys = map[string]bool{
	"include": true,
	"label":   true,
	"comment": true,
}

// keys whose values are always braced
var bracedKeys = map[string]bool{
	"text": true,
	"tag":  true,
}

// String renders regions as DS9 text
func String(regs []regions.Region, opts Options) (string, error) {
	var buf bytes.Buffer
	if err := Write(&buf, regs, opts); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// WriteFile writes regions to a DS9 region file
func WriteFile(filename string, regs []regions.Region, opts Options) error {
	out, err := String(regs, opts)
	if err != nil {
		return err
	}
	if err := os.WriteFile(filename, []byte(out), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", filename, err)
	}
	return nil
}

// WriteShapes converts parsed shapes to regions and writes them
func WriteShapes(w io.Writer, shapes *ShapeList, opts Options) error {
	regs, err := shapes.ToRegions()
	if err != nil {
		return err
	}
	return Write(w, regs, opts)
}

// Write renders regions as DS9 text: the header, a frame line whenever the
// output frame changes, and one line per region.
func Write(w io.Writer, regs []regions.Region, opts Options) error {
	if opts.Format == "" {
		opts.Format = DefaultFormat
	}
	if !coords.ValidFormat(opts.Format) {
		return fmt.Errorf("ds9: invalid number format %q", opts.Format)
	}
	if opts.CoordSys != "" && !opts.CoordSys.Supported() {
		return fmt.Errorf("ds9: cannot write in coordinate system %q", opts.CoordSys)
	}
	if _, ok := radiusSuffix(opts.RadUnit); !ok {
		return fmt.Errorf("ds9: unsupported radius unit %s", opts.RadUnit)
	}

	var b strings.Builder
	b.WriteString(Header)
	b.WriteByte('\n')

	var current coords.Frame
	for i, r := range regs {
		frame, err := outputFrame(r, opts.CoordSys)
		if err != nil {
			return fmt.Errorf("ds9: region %d: %w", i, err)
		}
		line, err := formatRegion(r, frame, opts)
		if err != nil {
			return fmt.Errorf("ds9: region %d (%s): %w", i, r.Kind(), err)
		}
		if frame != current {
			b.WriteString(string(frame))
			b.WriteByte('\n')
			current = frame
		}
		b.WriteString(line)
		b.WriteByte('\n')
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// outputFrame picks the frame a region is written in
func outputFrame(r regions.Region, want coords.Frame) (coords.Frame, error) {
	native := r.Frame()
	switch {
	case want == "" && native.IsSky():
		return coords.FK5, nil
	case want == "":
		return native, nil
	case native.IsSky() && want.IsPixel():
		return "", fmt.Errorf("sky region cannot be written in pixel frame %s", want)
	case native.IsPixel() && want.IsSky():
		return "", fmt.Errorf("pixel region cannot be written in sky frame %s", want)
	}
	return want, nil
}

func radiusSuffix(u coords.Unit) (string, bool) {
	switch u {
	case coords.Degree:
		return "", true
	case coords.Arcsec:
		return `"`, true
	case coords.Arcmin:
		return "'", true
	case coords.Radian:
		return "r", true
	}
	return "", false
}

// formatter renders the numbers of one region
type formatter struct {
	opts  Options
	frame coords.Frame
	parts []string
	err   error
}

func (f *formatter) num(v float64) {
	f.parts = append(f.parts, coords.FormatFloat(v, f.opts.Format))
}

func (f *formatter) sky(c coords.SkyCoord) {
	if !f.opts.Sexagesimal {
		f.num(c.Lon)
		f.num(c.Lat)
		return
	}
	prec := decimals(f.opts.Format)
	f.parts = append(f.parts,
		coords.FormatSexagesimal(c.Lon, f.frame.LonIsHours(), prec),
		coords.FormatSexagesimal(c.Lat, false, prec))
}

// decimals returns the precision of a format such as ".4f", or 0
func decimals(format string) int {
	i := strings.IndexByte(format, '.')
	if i < 0 {
		return 0
	}
	n := 0
	for _, c := range format[i+1:] {
		if c < '0' || c > '9' {
			break
		}
		n = n*10 + int(c-'0')
	}
	return n
}

func (f *formatter) pix(c regions.PixCoord) {
	f.num(c.X)
	f.num(c.Y)
}

func (f *formatter) length(q coords.Quantity) {
	if f.err != nil {
		return
	}
	v, err := q.To(f.opts.RadUnit)
	if err != nil {
		f.err = err
		return
	}
	suffix, _ := radiusSuffix(f.opts.RadUnit)
	f.parts = append(f.parts, coords.FormatFloat(v.Value, f.opts.Format)+suffix)
}

func (f *formatter) angle(q coords.Quantity) {
	if f.err != nil {
		return
	}
	deg, err := q.Degrees()
	if err != nil {
		f.err = err
		return
	}
	f.num(deg)
}

func (f *formatter) half(q coords.Quantity) {
	f.length(coords.Quantity{Value: q.Value / 2, Unit: q.Unit})
}

// formatRegion renders one region line in frame
func formatRegion(r regions.Region, frame coords.Frame, opts Options) (string, error) {
	if sr, ok := r.(regions.SkyRegion); ok && sr.Frame() != frame {
		moved, err := sr.Transform(frame)
		if err != nil {
			return "", err
		}
		r = moved
	}

	f := &formatter{opts: opts, frame: frame}
	var name, text string
	switch reg := r.(type) {
	case *regions.CircleSky:
		name = "circle"
		f.sky(reg.Center)
		f.length(reg.Radius)
	case *regions.CirclePixel:
		name = "circle"
		f.pix(reg.Center)
		f.num(reg.Radius)
	case *regions.CircleAnnulusSky:
		name = "annulus"
		f.sky(reg.Center)
		f.length(reg.Inner)
		f.length(reg.Outer)
	case *regions.CircleAnnulusPixel:
		name = "annulus"
		f.pix(reg.Center)
		f.num(reg.Inner)
		f.num(reg.Outer)
	case *regions.EllipseSky:
		name = "ellipse"
		f.sky(reg.Center)
		f.half(reg.Width)
		f.half(reg.Height)
		f.angle(reg.Angle)
	case *regions.EllipsePixel:
		name = "ellipse"
		f.pix(reg.Center)
		f.num(reg.Width / 2)
		f.num(reg.Height / 2)
		f.angle(reg.Angle)
	case *regions.RectangleSky:
		name = "box"
		f.sky(reg.Center)
		f.length(reg.Width)
		f.length(reg.Height)
		f.angle(reg.Angle)
	case *regions.RectanglePixel:
		name = "box"
		f.pix(reg.Center)
		f.num(reg.Width)
		f.num(reg.Height)
		f.angle(reg.Angle)
	case *regions.PolygonSky:
		name = "polygon"
		for _, v := range reg.Vertices {
			f.sky(v)
		}
	case *regions.PolygonPixel:
		name = "polygon"
		for _, v := range reg.Vertices {
			f.pix(v)
		}
	case *regions.LineSky:
		name = "line"
		f.sky(reg.Start)
		f.sky(reg.End)
	case *regions.LinePixel:
		name = "line"
		f.pix(reg.Start)
		f.pix(reg.End)
	case *regions.PointSky:
		name = "point"
		f.sky(reg.Center)
	case *regions.PointPixel:
		name = "point"
		f.pix(reg.Center)
	case *regions.TextSky:
		name, text = "text", reg.Text
		f.sky(reg.Center)
	case *regions.TextPixel:
		name, text = "text", reg.Text
		f.pix(reg.Center)
	default:
		return "", fmt.Errorf("unsupported region type %T", r)
	}
	if f.err != nil {
		return "", f.err
	}

	var b strings.Builder
	if !regions.Include(r) {
		b.WriteByte('-')
	}
	fmt.Fprintf(&b, "%s(%s)", name, strings.Join(f.parts, ","))

	comment := r.Metadata().GetString("comment")
	meta := formatMeta(r.Metadata(), name == "text", text, comment)
	if meta != "" || comment != "" {
		b.WriteString(" #")
		if meta != "" {
			b.WriteString(" " + meta)
		}
		if comment != "" {
			b.WriteString(" " + comment)
		}
	}
	return b.String(), nil
}

// formatMeta renders key=value pairs in stored order. A text region writes
// its own string as the text key. The last value is quoted when the
// trailing comment would otherwise read back as part of it.
func formatMeta(m *regions.Meta, isText bool, text, comment string) string {
	var entries []regions.Entry
	if isText && text != "" {
		entries = append(entries, regions.Entry{Key: "text", Value: regions.StringValue(text)})
	}
	for _, e := range m.Entries() {
		if implicitKeys[e.Key] || (isText && e.Key == "text") {
			continue
		}
		entries = append(entries, e)
	}

	pairs := make([]string, len(entries))
	for i, e := range entries {
		v := formatValue(e.Key, e.Value)
		if i == len(entries)-1 && absorbs(v, comment) {
			v = quote(e.Value.String())
		}
		pairs[i] = e.Key + "=" + v
	}
	return strings.Join(pairs, " ")
}

func formatValue(key string, v regions.Value) string {
	s := v.String()
	switch {
	case v.IsBool():
		return s
	case bracedKeys[key]:
		return "{" + s + "}"
	case s == "", strings.ContainsAny(s, " \t"), strings.ContainsAny(s[:1], `"'{`):
		return quote(s)
	}
	return s
}

// quote wraps s in double quotes, or braces when it holds a double quote
func quote(s string) string {
	if strings.Contains(s, `"`) {
		return "{" + s + "}"
	}
	return `"` + s + `"`
}

// absorbs reports whether a bare value followed by comment would read back
// with the comment's leading number attached (color=red 5 stars)
func absorbs(value, comment string) bool {
	if strings.HasPrefix(value, `"`) || strings.HasPrefix(value, "{") {
		return false
	}
	fields := strings.Fields(comment)
	return len(fields) > 0 && numeric(fields[0])
}
