package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/conormcp/regions/pkg/ds9"
)

var (
	outputPath  string
	coordSys    string
	precision   int
	radUnit     string
	sexagesimal bool
)

var convertCmd = &cobra.Command{
	Use:   "convert <region-file>",
	Short: "Rewrite a DS9 region file in another frame, precision or radius unit",
	Long: `Parse a DS9 region file and write it back out. Sky regions are
transformed to the requested coordinate system. Without --coordsys sky regions
are written in fk5 and pixel regions keep their own frame.

Examples:
  ds9reg convert sources.reg                              # Normalise to fk5
  ds9reg convert sources.reg --coordsys galactic -o gal.reg
  ds9reg convert sources.reg --precision 2 --radunit arcsec
  ds9reg convert sources.reg --sexagesimal --precision 2`,
	Args: cobra.ExactArgs(1),
	RunE: runConvert,
}

func init() {
	rootCmd.AddCommand(convertCmd)

	convertCmd.Flags().StringVarP(&outputPath, "output", "o", "",
		"output file (default stdout)")
	convertCmd.Flags().StringVar(&coordSys, "coordsys", "",
		"coordinate system to write sky regions in (default fk5)")
	convertCmd.Flags().IntVar(&precision, "precision", 6,
		"number of decimals written")
	convertCmd.Flags().StringVar(&radUnit, "radunit", "deg",
		"unit for sky radii and sizes: deg, arcmin, arcsec or rad")
	convertCmd.Flags().BoolVar(&sexagesimal, "sexagesimal", false,
		"write sky positions as h:m:s / d:m:s")
}

// applyOutputFlags copies explicitly set output flags over the settings
func applyOutputFlags(cmd *cobra.Command) {
	flags := cmd.Flags()
	if flags.Changed("coordsys") {
		settings.CoordSys = coordSys
	}
	if flags.Changed("precision") {
		settings.Precision = precision
	}
	if flags.Changed("radunit") {
		settings.RadUnit = radUnit
	}
	if flags.Changed("sexagesimal") {
		settings.Sexagesimal = sexagesimal
	}
}

func runConvert(cmd *cobra.Command, args []string) error {
	filename := args[0]

	parser, err := newParser()
	if err != nil {
		return err
	}

	shapes, err := parser.ParseFile(filename)
	if err != nil {
		return fmt.Errorf("failed to parse file: %w", err)
	}

	opts := settings.WriteOptions()
	if outputPath == "" {
		if err := ds9.WriteShapes(cmd.OutOrStdout(), shapes, opts); err != nil {
			return fmt.Errorf("failed to convert %s: %w", filename, err)
		}
	} else {
		file, err := os.Create(outputPath)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer file.Close()

		if err := ds9.WriteShapes(file, shapes, opts); err != nil {
			return fmt.Errorf("failed to convert %s: %w", filename, err)
		}
		if err := file.Close(); err != nil {
			return fmt.Errorf("failed to close output file: %w", err)
		}
	}

	logger.Info("converted region file",
		"input", filename,
		"output", outputPath,
		"regions", shapes.Len(),
		"skipped", len(shapes.Warnings),
		"coordsys", opts.CoordSys,
		"format", opts.Format)
	return nil
}
