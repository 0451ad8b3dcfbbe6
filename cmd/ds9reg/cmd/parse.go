package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/conormcp/regions/pkg/coords"
	"github.com/conormcp/regions/pkg/ds9"
	"github.com/conormcp/regions/pkg/regions"
)

var (
	outputFormat string
	showBBox     bool
)

var parseCmd = &cobra.Command{
	Use:   "parse <region-file>",
	Short: "Parse and display the shapes in a DS9 region file",
	Long: `Parse a DS9 region file and display its shapes with their resolved
coordinates, coordinate system, inclusion flag and metadata.

Examples:
  ds9reg parse sources.reg
  ds9reg parse --errors warn mixed.reg
  ds9reg parse --output yaml --bbox image.reg`,
	Args: cobra.ExactArgs(1),
	RunE: runParse,
}

func init() {
	rootCmd.AddCommand(parseCmd)

	parseCmd.Flags().StringVar(&outputFormat, "output", "text",
		"output format: text or yaml")
	parseCmd.Flags().BoolVar(&showBBox, "bbox", false,
		"show the bounding box of all pixel regions")
}

func runParse(cmd *cobra.Command, args []string) error {
	filename := args[0]
	logger.Debug("parsing region file", "file", filename)

	parser, err := newParser()
	if err != nil {
		return err
	}

	shapes, err := parser.ParseFile(filename)
	if err != nil {
		return fmt.Errorf("failed to parse file: %w", err)
	}

	list, err := shapes.ToList()
	if err != nil {
		return fmt.Errorf("failed to build regions: %w", err)
	}
	logger.Debug("parsed region file",
		"file", filename,
		"shapes", shapes.Len(),
		"warnings", len(shapes.Warnings))

	out := cmd.OutOrStdout()
	switch strings.ToLower(outputFormat) {
	case "yaml":
		return printYAML(out, filename, shapes, list)
	case "text":
		printText(out, filename, shapes, list)
		return nil
	}
	return fmt.Errorf("unknown output format %q (want text or yaml)", outputFormat)
}

func printText(w io.Writer, filename string, shapes *ds9.ShapeList, list *regions.List) {
	fmt.Fprintf(w, "File:   %s\n", filename)
	if shapes.Header != "" {
		fmt.Fprintf(w, "Header: %s\n", shapes.Header)
	}
	fmt.Fprintf(w, "Shapes: %d\n", shapes.Len())
	if shapes.GlobalMeta.Len() > 0 {
		fmt.Fprintf(w, "Global: %s\n", formatEntries(shapes.GlobalMeta))
	}
	fmt.Fprintln(w)

	if shapes.Len() > 0 {
		fmt.Fprintf(w, "%5s  %-8s %-9s %-7s %-8s %s\n", "LINE", "TYPE", "FRAME", "INCLUDE", "COLOR", "COORDINATES")
		for _, s := range shapes.Shapes {
			include := "yes"
			if !s.Include {
				include = "no"
			}
			fmt.Fprintf(w, "%5d  %-8s %-9s %-7s %-8s %s\n",
				s.Line, s.Type, s.CoordSys, include, colorHex(s.Meta), formatCoords(s.Coord))
		}
	}

	if showBBox {
		bbox := regions.NewBoundingBox()
		for _, r := range list.Pixel() {
			bbox.ExpandBox(r.BoundingBox())
		}
		if bbox.IsEmpty() {
			fmt.Fprintf(w, "\nBounding box: no pixel regions\n")
		} else {
			fmt.Fprintf(w, "\nBounding box: [%g, %g] x [%g, %g] (%g x %g pixels)\n",
				bbox.Min.X, bbox.Max.X, bbox.Min.Y, bbox.Max.Y, bbox.Width(), bbox.Height())
		}
	}

	if len(shapes.Warnings) > 0 {
		fmt.Fprintf(w, "\nWarnings (%d):\n", len(shapes.Warnings))
		for _, warn := range shapes.Warnings {
			fmt.Fprintf(w, "  %v\n", warn)
		}
	}
}

// colorHex resolves the DS9 color of a shape, or "?" when it is not a color
func colorHex(m regions.Meta) string {
	c, err := m.Color()
	if err != nil {
		return "?"
	}
	return c.Hex()
}

func formatCoords(values []coords.Quantity) string {
	parts := make([]string, len(values))
	for i, q := range values {
		parts[i] = q.String()
	}
	return strings.Join(parts, ", ")
}

func formatEntries(m regions.Meta) string {
	entries := m.Entries()
	parts := make([]string, len(entries))
	for i, e := range entries {
		parts[i] = fmt.Sprintf("%s=%q", e.Key, e.Value.String())
	}
	return strings.Join(parts, " ")
}

type fileDoc struct {
	File     string       `yaml:"file"`
	Header   string       `yaml:"header,omitempty"`
	Global   regions.Meta `yaml:"global,omitempty"`
	Shapes   []shapeDoc   `yaml:"shapes"`
	BBox     *bboxDoc     `yaml:"bbox,omitempty"`
	Warnings []string     `yaml:"warnings,omitempty"`
}

type shapeDoc struct {
	Line      int          `yaml:"line"`
	Type      string       `yaml:"type"`
	Frame     string       `yaml:"frame"`
	Include   bool         `yaml:"include"`
	Composite bool         `yaml:"composite,omitempty"`
	Coord     []string     `yaml:"coord,flow"`
	Comment   string       `yaml:"comment,omitempty"`
	Meta      regions.Meta `yaml:"meta,omitempty"`
}

type bboxDoc struct {
	Min [2]float64 `yaml:"min,flow"`
	Max [2]float64 `yaml:"max,flow"`
}

func printYAML(w io.Writer, filename string, shapes *ds9.ShapeList, list *regions.List) error {
	doc := fileDoc{
		File:   filename,
		Header: shapes.Header,
		Global: shapes.GlobalMeta,
		Shapes: make([]shapeDoc, 0, shapes.Len()),
	}
	for _, s := range shapes.Shapes {
		coord := make([]string, len(s.Coord))
		for i, q := range s.Coord {
			coord[i] = q.String()
		}
		doc.Shapes = append(doc.Shapes, shapeDoc{
			Line:      s.Line,
			Type:      s.Type.String(),
			Frame:     string(s.CoordSys),
			Include:   s.Include,
			Composite: s.Composite,
			Coord:     coord,
			Comment:   s.Comment,
			Meta:      s.Meta,
		})
	}
	if showBBox {
		bbox := regions.NewBoundingBox()
		for _, r := range list.Pixel() {
			bbox.ExpandBox(r.BoundingBox())
		}
		if !bbox.IsEmpty() {
			doc.BBox = &bboxDoc{
				Min: [2]float64{bbox.Min.X, bbox.Min.Y},
				Max: [2]float64{bbox.Max.X, bbox.Max.Y},
			}
		}
	}
	for _, warn := range shapes.Warnings {
		doc.Warnings = append(doc.Warnings, warn.Error())
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("failed to encode yaml: %w", err)
	}
	return enc.Close()
}
