// Package config loads the TOML run file of the isofit command.
package config

import (
	"fmt"
	"math"
	"os"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/arloliu/isofit/compress"
	"github.com/arloliu/isofit/errs"
	"github.com/arloliu/isofit/scale"
	"github.com/arloliu/isofit/solver"
)

// Config is the root of the run file.
type Config struct {
	Data      DataConfig      `toml:"data"`
	Reference ReferenceConfig `toml:"reference"`
	Solver    SolverConfig    `toml:"solver"`
	Output    OutputConfig    `toml:"output"`
}

// DataConfig locates the input table and its columns.
type DataConfig struct {
	Path         string            `toml:"path"`
	Sheet        string            `toml:"sheet"`
	Temperature  string            `toml:"temperature"`
	FugacityUnit string            `toml:"fugacity_unit"`
	LoadingUnit  string            `toml:"loading_unit"`
	Components   []ComponentConfig `toml:"components"`
}

// ComponentConfig names one adsorbing component. Empty column names are
// derived from Name, e.g. "fugacity CO2 [Pa]" and "Q CO2 [mmol/g]".
type ComponentConfig struct {
	Name     string `toml:"name"`
	Fugacity string `toml:"fugacity"`
	Loading  string `toml:"loading"`
}

// ReferenceConfig overrides the reference scales. Zero keeps the data maximum.
type ReferenceConfig struct {
	Fugacity    float64 `toml:"fugacity"`
	Loading     float64 `toml:"loading"`
	Temperature float64 `toml:"temperature"`
}

// SolverConfig selects the minimizer and robust loss.
type SolverConfig struct {
	Method        string  `toml:"method"`
	Loss          string  `toml:"loss"`
	LossScale     float64 `toml:"loss_scale"`
	MaxIterations int     `toml:"max_iterations"`
}

// OutputConfig controls where results go.
type OutputConfig struct {
	Dir         string `toml:"dir"`
	Compression string `toml:"compression"`
	Plots       bool   `toml:"plots"`
	PlotFormat  string `toml:"plot_format"`
}

// Default returns the configuration used when no run file is given.
func Default() *Config {
	return &Config{
		Data: DataConfig{
			Temperature:  "T [K]",
			FugacityUnit: "Pa",
			LoadingUnit:  "mmol/g",
		},
		Solver: SolverConfig{
			Method:        solver.MethodBFGS.String(),
			Loss:          solver.DefaultLoss.String(),
			LossScale:     1,
			MaxIterations: solver.DefaultMaxIterations,
		},
		Output: OutputConfig{
			Dir:         ".",
			Compression: compress.CompressionNone.String(),
			Plots:       true,
			PlotFormat:  "png",
		},
	}
}

// Load reads the run file at path on top of Default and validates it.
func Load(path string) (*Config, error) {
	cfg, err := Read(path)
	if err != nil {
		return nil, err
	}

	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// Read decodes the run file at path on top of Default without validating
// it, so that command flags can complete it first.
func Read(path string) (*Config, error) {
	path = os.ExpandEnv(path)

	cfg := Default()
	meta, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("unknown config keys %v: %w", undecoded, errs.ErrInvalidValue)
	}

	return cfg, nil
}

// ApplyDefaults fills derived column names.
func (c *Config) ApplyDefaults() {
	for i := range c.Data.Components {
		comp := &c.Data.Components[i]
		if comp.Fugacity == "" {
			comp.Fugacity = fmt.Sprintf("fugacity %s [%s]", comp.Name, c.Data.FugacityUnit)
		}
		if comp.Loading == "" {
			comp.Loading = fmt.Sprintf("Q %s [%s]", comp.Name, c.Data.LoadingUnit)
		}
	}
}

// Validate checks that the configuration describes a runnable fit.
func (c *Config) Validate() error {
	if c.Data.Path == "" {
		return fmt.Errorf("data.path is required: %w", errs.ErrInvalidValue)
	}
	if n := len(c.Data.Components); n < 1 || n > 2 {
		return fmt.Errorf("need 1 or 2 components, got %d: %w", n, errs.ErrInputShape)
	}
	for i, comp := range c.Data.Components {
		if strings.TrimSpace(comp.Name) == "" {
			return fmt.Errorf("component %d has no name: %w", i, errs.ErrInvalidValue)
		}
	}
	for name, v := range map[string]float64{
		"fugacity":    c.Reference.Fugacity,
		"loading":     c.Reference.Loading,
		"temperature": c.Reference.Temperature,
	} {
		if v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("reference.%s %g: %w", name, v, errs.ErrDegenerateScale)
		}
	}
	if solver.MethodFromString(c.Solver.Method) < 0 {
		return fmt.Errorf("solver.method %q, supported: %s: %w",
			c.Solver.Method, strings.Join(solver.SupportedMethods(), ", "), errs.ErrInvalidValue)
	}
	if solver.LossFromString(c.Solver.Loss) < 0 {
		return fmt.Errorf("solver.loss %q: %w", c.Solver.Loss, errs.ErrInvalidValue)
	}
	if c.Solver.LossScale <= 0 {
		return fmt.Errorf("solver.loss_scale must be positive: %w", errs.ErrInvalidValue)
	}
	if c.Solver.MaxIterations <= 0 {
		return fmt.Errorf("solver.max_iterations must be positive: %w", errs.ErrInvalidValue)
	}
	if _, err := compress.ParseCompression(c.Output.Compression); err != nil {
		return err
	}

	return nil
}

// ReferenceOverride returns the reference section as a scale override.
func (c *Config) ReferenceOverride() scale.Reference {
	return scale.Reference{
		Fugacity:    c.Reference.Fugacity,
		Loading:     c.Reference.Loading,
		Temperature: c.Reference.Temperature,
	}
}

// Compression returns the parsed output compression.
func (c *Config) Compression() compress.CompressionType {
	ct, err := compress.ParseCompression(c.Output.Compression)
	if err != nil {
		return compress.CompressionNone
	}

	return ct
}
