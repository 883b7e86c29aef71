package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/efield/internal/charges"
	"github.com/san-kum/efield/internal/colormap"
	"github.com/san-kum/efield/internal/integrators"
)

const (
	DefaultNQ        = 2
	DefaultNX        = 64
	DefaultNY        = 64
	DefaultExtent    = 3.0
	DefaultDensity   = 2.0
	DefaultArrowSize = 1.5
	DefaultLineWidth = 1.0
	DefaultWidth     = 800
	DefaultHeight    = 600
)

var ErrInvalidConfig = errors.New("config: invalid configuration")

type Config struct {
	NQ        int            `yaml:"nq"`
	Grid      GridConfig     `yaml:"grid"`
	Field     PipelineConfig `yaml:"field"`
	Potential PipelineConfig `yaml:"potential"`
	Stream    StreamConfig   `yaml:"stream"`
	Output    OutputConfig   `yaml:"output"`
	LogLevel  string         `yaml:"log_level"`
}

type GridConfig struct {
	NX  int     `yaml:"nx"`
	NY  int     `yaml:"ny"`
	Min float64 `yaml:"min"`
	Max float64 `yaml:"max"`
}

// PipelineConfig holds what differs between the two pipelines: where the
// charges go and which window is shown.
type PipelineConfig struct {
	Placement string  `yaml:"placement"`
	ViewMin   float64 `yaml:"view_min"`
	ViewMax   float64 `yaml:"view_max"`
	Title     string  `yaml:"title"`
}

type StreamConfig struct {
	Density    float64 `yaml:"density"`
	MinLength  float64 `yaml:"min_length"`
	MaxLength  float64 `yaml:"max_length"`
	Integrator string  `yaml:"integrator"`
	ArrowSize  float64 `yaml:"arrow_size"`
	LineWidth  float64 `yaml:"line_width"`
	Colormap   string  `yaml:"colormap"`
}

type OutputConfig struct {
	Dir     string `yaml:"dir"`
	Format  string `yaml:"format"`
	Display string `yaml:"display"`
	Width   int    `yaml:"width"`
	Height  int    `yaml:"height"`
}

// DefaultConfig reproduces the reference scene: a dipole on a 64x64 grid
// over [-3, 3], field view [-3, 3], potential view [-2, 2].
func DefaultConfig() *Config {
	return &Config{
		NQ: DefaultNQ,
		Grid: GridConfig{
			NX:  DefaultNX,
			NY:  DefaultNY,
			Min: -DefaultExtent,
			Max: DefaultExtent,
		},
		Field: PipelineConfig{
			Placement: charges.CosSin.String(),
			ViewMin:   -3,
			ViewMax:   3,
		},
		Potential: PipelineConfig{
			Placement: charges.SinCos.String(),
			ViewMin:   -2,
			ViewMax:   2,
			Title:     "E = -grad V",
		},
		Stream: StreamConfig{
			Density:    DefaultDensity,
			MinLength:  0.1,
			MaxLength:  4.0,
			Integrator: "rk4",
			ArrowSize:  DefaultArrowSize,
			LineWidth:  DefaultLineWidth,
			Colormap:   colormap.Inferno.Name,
		},
		Output: OutputConfig{
			Dir:     ".",
			Format:  "png",
			Display: "none",
			Width:   DefaultWidth,
			Height:  DefaultHeight,
		},
		LogLevel: "info",
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func (c *Config) Validate() error {
	if c.NQ < 0 {
		return fmt.Errorf("%w: nq must be non-negative, got %d", ErrInvalidConfig, c.NQ)
	}
	if c.Grid.NX < 2 || c.Grid.NY < 2 {
		return fmt.Errorf("%w: grid must be at least 2x2, got %dx%d", ErrInvalidConfig, c.Grid.NX, c.Grid.NY)
	}
	if !(c.Grid.Min < c.Grid.Max) {
		return fmt.Errorf("%w: grid range [%g, %g] is empty", ErrInvalidConfig, c.Grid.Min, c.Grid.Max)
	}
	pipelines := []struct {
		name string
		cfg  PipelineConfig
	}{
		{"field", c.Field},
		{"potential", c.Potential},
	}
	for _, p := range pipelines {
		if _, err := charges.ParsePlacement(p.cfg.Placement); err != nil {
			return fmt.Errorf("%w: %s: %w", ErrInvalidConfig, p.name, err)
		}
		if !(p.cfg.ViewMin < p.cfg.ViewMax) {
			return fmt.Errorf("%w: %s: view [%g, %g] is empty", ErrInvalidConfig, p.name, p.cfg.ViewMin, p.cfg.ViewMax)
		}
	}
	if c.Stream.Density <= 0 {
		return fmt.Errorf("%w: density must be positive, got %g", ErrInvalidConfig, c.Stream.Density)
	}
	if _, err := integrators.Get(c.Stream.Integrator); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if _, err := colormap.Get(c.Stream.Colormap); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	switch c.Output.Format {
	case "png", "svg":
	default:
		return fmt.Errorf("%w: unknown format %q", ErrInvalidConfig, c.Output.Format)
	}
	switch c.Output.Display {
	case "none", "term", "window":
	default:
		return fmt.Errorf("%w: unknown display %q", ErrInvalidConfig, c.Output.Display)
	}
	if c.Output.Width <= 0 || c.Output.Height <= 0 {
		return fmt.Errorf("%w: figure size must be positive, got %dx%d", ErrInvalidConfig, c.Output.Width, c.Output.Height)
	}
	return nil
}
