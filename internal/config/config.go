// Package config loads ringbar's YAML configuration.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/olivier-w/ringbar/internal/geometry"
	"github.com/olivier-w/ringbar/internal/widget"
)

// Config is the ringbar configuration file.
type Config struct {
	// Widget holds the ring's attributes.
	Widget widget.Attributes `yaml:"widget"`
	// Density converts dp to pixels. Terminal braille dots are small, so the
	// default shrinks everything.
	Density float64 `yaml:"density"`
	// Max is the largest value the progress field accepts.
	Max float64 `yaml:"max"`
	// Initial is the progress shown on start.
	Initial float64 `yaml:"initial"`
	// Step is how far the arrow keys move the progress.
	Step float64 `yaml:"step"`

	LogLevel string `yaml:"logLevel"`
	LogFile  string `yaml:"logFile"`
}

// Default returns the built-in configuration: a ring out of 100 with a wide
// orange dot.
func Default() Config {
	dot := 16.0
	return Config{
		Widget: widget.Attributes{
			DotWidth: &dot,
			DotColor: "#ff9800",
		},
		Density:  0.3,
		Max:      100,
		Step:     5,
		LogLevel: "info",
	}
}

// Load reads the file at path over the defaults. Unknown keys are errors.
func Load(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer f.Close()

	cfg, err := Decode(f)
	if err != nil {
		return Config{}, fmt.Errorf("load %s: %w", path, err)
	}
	return cfg, nil
}

// Decode reads YAML from r over the defaults.
func Decode(r io.Reader) (Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the screen settings. Widget attributes are checked when the
// widget is built.
func (c Config) Validate() error {
	switch {
	case !(c.Density > 0):
		return fmt.Errorf("density must be positive, got %v", c.Density)
	case !(c.Max > 0):
		return fmt.Errorf("max must be positive, got %v", c.Max)
	case !(c.Step > 0):
		return fmt.Errorf("step must be positive, got %v", c.Step)
	case c.Initial < 0 || c.Initial > c.Max:
		return fmt.Errorf("initial must be within [0, %v], got %v", c.Max, c.Initial)
	}
	return nil
}

// PixelDensity is Density as a geometry.Density.
func (c Config) PixelDensity() geometry.Density {
	return geometry.Density(c.Density)
}
