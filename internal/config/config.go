// Package config loads ds9reg defaults from an HCL file.
//
// Example ds9reg.hcl:
//
//	errors = "warn"
//
//	log {
//	  level  = "debug"
//	  format = "json"
//	}
//
//	output {
//	  coordsys    = "galactic"
//	  precision   = 4
//	  radunit     = "arcsec"
//	  sexagesimal = true
//	}
//
// Every attribute and block is optional; command-line flags override the
// file.
package config

import (
	"fmt"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/conormcp/regions/internal/logging"
	"github.com/conormcp/regions/pkg/coords"
	"github.com/conormcp/regions/pkg/ds9"
)

// DefaultPrecision is the number of decimals written when none is configured
const DefaultPrecision = 6

// hclFile is the top-level structure of a config file for decoding
type hclFile struct {
	Errors *string    `hcl:"errors,optional"`
	Log    *hclLog    `hcl:"log,block"`
	Output *hclOutput `hcl:"output,block"`
}

type hclLog struct {
	Level  *string `hcl:"level,optional"`
	Format *string `hcl:"format,optional"`
}

type hclOutput struct {
	CoordSys    *string `hcl:"coordsys,optional"`
	Precision   *int    `hcl:"precision,optional"`
	RadUnit     *string `hcl:"radunit,optional"`
	Sexagesimal *bool   `hcl:"sexagesimal,optional"`
}

// Config holds the resolved settings of one ds9reg run
type Config struct {
	Errors    string
	LogLevel  string
	LogFormat string
	CoordSys  string
	Precision int
	RadUnit   string

	// Sexagesimal writes sky positions as h:m:s / d:m:s
	Sexagesimal bool
}

// Default returns the built-in settings
func Default() Config {
	return Config{
		Errors:    "strict",
		LogLevel:  "info",
		LogFormat: "text",
		RadUnit:   "deg",
		Precision: DefaultPrecision,
	}
}

// Load reads an HCL config file and applies it over the defaults
func Load(path string) (Config, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return Config{}, fmt.Errorf("failed to parse config file %s: %w", path, diags)
	}

	var parsed hclFile
	diags = gohcl.DecodeBody(file.Body, nil, &parsed)
	if diags.HasErrors() {
		return Config{}, fmt.Errorf("failed to decode config file %s: %w", path, diags)
	}

	cfg := Default()
	parsed.apply(&cfg)
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config file %s: %w", path, err)
	}
	return cfg, nil
}

func (f *hclFile) apply(cfg *Config) {
	set(&cfg.Errors, f.Errors)
	if f.Log != nil {
		set(&cfg.LogLevel, f.Log.Level)
		set(&cfg.LogFormat, f.Log.Format)
	}
	if f.Output != nil {
		set(&cfg.CoordSys, f.Output.CoordSys)
		set(&cfg.RadUnit, f.Output.RadUnit)
		if f.Output.Precision != nil {
			cfg.Precision = *f.Output.Precision
		}
		if f.Output.Sexagesimal != nil {
			cfg.Sexagesimal = *f.Output.Sexagesimal
		}
	}
}

func set(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}

// Validate checks every setting
func (c Config) Validate() error {
	if _, err := ds9.ParseErrorPolicy(c.Errors); err != nil {
		return err
	}
	if !logging.ValidLevel(c.LogLevel) {
		return fmt.Errorf("unknown log level %q", c.LogLevel)
	}
	if !logging.ValidFormat(c.LogFormat) {
		return fmt.Errorf("unknown log format %q", c.LogFormat)
	}
	if c.CoordSys != "" {
		f, ok := coords.ParseFrame(c.CoordSys)
		if !ok || !f.Supported() {
			return fmt.Errorf("unsupported coordinate system %q", c.CoordSys)
		}
	}
	if c.Precision < 0 || c.Precision > 15 {
		return fmt.Errorf("precision %d out of range 0-15", c.Precision)
	}
	if _, err := c.radUnit(); err != nil {
		return err
	}
	return nil
}

// Policy returns the parse error policy
func (c Config) Policy() ds9.ErrorPolicy {
	p, _ := ds9.ParseErrorPolicy(c.Errors)
	return p
}

// WriteOptions returns the serializer options. Call Validate first.
func (c Config) WriteOptions() ds9.Options {
	opts := ds9.Options{Format: fmt.Sprintf(".%df", c.Precision), Sexagesimal: c.Sexagesimal}
	if c.CoordSys != "" {
		opts.CoordSys, _ = coords.ParseFrame(c.CoordSys)
	}
	opts.RadUnit, _ = c.radUnit()
	return opts
}

func (c Config) radUnit() (coords.Unit, error) {
	u, err := coords.ParseUnit(c.RadUnit)
	if err != nil {
		return u, err
	}
	switch u {
	case coords.Degree, coords.Arcmin, coords.Arcsec, coords.Radian:
		return u, nil
	}
	return u, fmt.Errorf("radius unit %q is not an angle", c.RadUnit)
}
