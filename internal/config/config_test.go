package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/conormcp/regions/pkg/coords"
	"github.com/conormcp/regions/pkg/ds9"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "ds9reg.hcl")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
errors = "warn"

log {
  level  = "debug"
  format = "json"
}

output {
  coordsys  = "Galactic"
  precision = 4
  radunit   = "arcsec"
  sexagesimal = true
}
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Failed to load: %v", err)
	}
	want := Config{
		Errors:    "warn",
		LogLevel:  "debug",
		LogFormat: "json",
		CoordSys:  "Galactic",
		Precision: 4,
		RadUnit:   "arcsec",

		Sexagesimal: true,
	}
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Errorf("config mismatch (-want +got):\n%s", diff)
	}

	if cfg.Policy() != ds9.Warn {
		t.Errorf("Expected warn policy, got %s", cfg.Policy())
	}
	wantOpts := ds9.Options{CoordSys: coords.Galactic, Format: ".4f", RadUnit: coords.Arcsec, Sexagesimal: true}
	if diff := cmp.Diff(wantOpts, cfg.WriteOptions()); diff != "" {
		t.Errorf("options mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadPartialKeepsDefaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, "output {\n  precision = 2\n}\n"))
	if err != nil {
		t.Fatalf("Failed to load: %v", err)
	}
	want := Default()
	want.Precision = 2
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Errorf("config mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"syntax", "errors = \n"},
		{"unknown attribute", "colour = \"red\"\n"},
		{"bad policy", "errors = \"loud\"\n"},
		{"bad frame", "output {\n  coordsys = \"wcsa\"\n}\n"},
		{"pixel radius", "output {\n  radunit = \"pixel\"\n}\n"},
		{"bad precision", "output {\n  precision = 40\n}\n"},
		{"bad log level", "log {\n  level = \"trace\"\n}\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Load(writeConfig(t, tt.content)); err == nil {
				t.Error("Expected an error")
			}
		})
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.hcl")); err == nil {
		t.Error("Expected an error for a missing file")
	}
}

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
	opts := cfg.WriteOptions()
	if opts.Format != ".6f" || opts.CoordSys != "" || opts.RadUnit != coords.Degree {
		t.Errorf("unexpected default options %+v", opts)
	}
}
