// Package config provides configuration loading and access for the
// safety engine and its tools.
package config

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds all engine and tool configuration parameters.
type Config struct {
	Engine    EngineConfig    `yaml:"engine"`
	Sampling  SamplingConfig  `yaml:"sampling"`
	Scoring   ScoringConfig   `yaml:"scoring"`
	Contour   ContourConfig   `yaml:"contour"`
	Preview   PreviewConfig   `yaml:"preview"`
	Telemetry TelemetryConfig `yaml:"telemetry"`
}

// EngineConfig holds calculator query parameters.
type EngineConfig struct {
	DirectionSamples int     `yaml:"direction_samples"` // Unit vectors probed by FindSafestDirection
	DirectionProbe   float64 `yaml:"direction_probe"`   // Probe distance along each direction
	GridResolution   int     `yaml:"grid_resolution"`   // Per-axis cells of FindSafestPosition
}

// SamplingConfig holds Poisson-disk sampling parameters.
type SamplingConfig struct {
	Attempts        int     `yaml:"attempts"`          // Candidate budget per active sample
	MinSpacingFloor float64 `yaml:"min_spacing_floor"` // Lower bound on inter-point spacing
}

// ScoringConfig holds safe-position scoring weights.
type ScoringConfig struct {
	DangerWeight float64 `yaml:"danger_weight"` // Reward per unit of nearest-danger distance
	TargetWeight float64 `yaml:"target_weight"` // Penalty per unit of target distance
}

// ContourConfig holds iso-contour extraction defaults.
type ContourConfig struct {
	Step      float64 `yaml:"step"`      // Lattice spacing in world units
	Thickness float32 `yaml:"thickness"` // Overlay line thickness
}

// PreviewConfig holds display settings for the preview tool.
type PreviewConfig struct {
	Width     int `yaml:"width"`
	Height    int `yaml:"height"`
	TargetFPS int `yaml:"target_fps"`
}

// TelemetryConfig holds telemetry parameters.
type TelemetryConfig struct {
	WindowSize int `yaml:"window_size"` // Query records aggregated per stats window
}

// global holds the loaded configuration.
var global *Config

// Init loads configuration from the given path, or uses embedded
// defaults if path is empty. Must be called before Cfg().
func Init(path string) error {
	cfg, err := Load(path)
	if err != nil {
		return err
	}
	global = cfg
	return nil
}

// MustInit is like Init but panics on error.
func MustInit(path string) {
	if err := Init(path); err != nil {
		panic(fmt.Sprintf("config: failed to initialize: %v", err))
	}
}

// Cfg returns the global configuration. Panics if Init was not called.
func Cfg() *Config {
	if global == nil {
		panic("config: Cfg() called before Init()")
	}
	return global
}

// Load loads configuration from a YAML file, merging with embedded
// defaults. If path is empty, only embedded defaults are used.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		// Unmarshal into same struct - only overwrites fields present in file
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	return cfg, nil
}

// WriteYAML writes the configuration to a YAML file.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
