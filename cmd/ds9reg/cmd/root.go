package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/conormcp/regions/internal/config"
	"github.com/conormcp/regions/internal/logging"
	"github.com/conormcp/regions/pkg/ds9"
)

var (
	// Global flags
	configPath string
	errorsFlag string
	logLevel   string
	logFormat  string
	verbose    bool

	// Resolved before every command runs
	settings config.Config
	logger   *slog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "ds9reg",
	Short: "DS9 region file reader and converter",
	Long: `Read, inspect and convert SAOImage DS9 region files.

Examples:
  ds9reg parse sources.reg                          # List the shapes in a file
  ds9reg parse --errors warn --output yaml mixed.reg
  ds9reg convert sources.reg --coordsys galactic --radunit arcsec -o out.reg`,
	Version:           "0.3.0",
	SilenceUsage:      true,
	PersistentPreRunE: loadSettings,
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "",
		"HCL file with default settings")
	rootCmd.PersistentFlags().StringVar(&errorsFlag, "errors", "strict",
		"handling of unsupported or malformed shapes: strict, warn or ignore")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info",
		"log level: debug, info, warn or error")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "text",
		"log format: text or json")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false,
		"verbose output (same as --log-level debug)")
}

// loadSettings layers the config file under explicitly set flags
func loadSettings(cmd *cobra.Command, args []string) error {
	settings = config.Default()
	if configPath != "" {
		cfg, err := config.Load(configPath)
		if err != nil {
			return err
		}
		settings = cfg
	}

	flags := cmd.Flags()
	if flags.Changed("errors") {
		settings.Errors = errorsFlag
	}
	if flags.Changed("log-level") {
		settings.LogLevel = logLevel
	}
	if flags.Changed("log-format") {
		settings.LogFormat = logFormat
	}
	if verbose {
		settings.LogLevel = "debug"
	}
	applyOutputFlags(cmd)
	if err := settings.Validate(); err != nil {
		return err
	}

	logger = logging.New(settings.LogLevel, settings.LogFormat, cmd.ErrOrStderr())
	logger.Debug("settings resolved",
		"config", configPath,
		"errors", settings.Errors,
		"coordsys", settings.CoordSys,
		"precision", settings.Precision,
		"radunit", settings.RadUnit)
	return nil
}

// newParser creates a DS9 parser using the resolved settings
func newParser() (*ds9.Parser, error) {
	parser, err := ds9.NewParser(
		ds9.WithErrors(settings.Policy()),
		ds9.WithLogger(logger),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create parser: %w", err)
	}
	return parser, nil
}
