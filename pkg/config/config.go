package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v2"
)

// Config represents the render configuration read from YAML
type Config struct {
	Render  RenderConfig  `yaml:"render"`
	Output  OutputConfig  `yaml:"output"`
	Logging LoggingConfig `yaml:"logging"`
}

// RenderConfig contains sampling and scheduling settings
type RenderConfig struct {
	Samples  int     `yaml:"samples"`   // Anti-aliasing rays per pixel
	Height   float64 `yaml:"height"`    // Screen height in pixels, 0 uses the view plane height
	TileSize int     `yaml:"tile_size"` // Square tile size handed to workers
	Workers  int     `yaml:"workers"`   // 0 means one per CPU
	Seed     int64   `yaml:"seed"`      // Optional: 0 means random
}

// OutputConfig contains output settings
type OutputConfig struct {
	Path string `yaml:"path"` // .png, .jpg or .bmp
}

// LoggingConfig contains logging settings
type LoggingConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
}

// DefaultConfig creates a default configuration
func DefaultConfig() *Config {
	return &Config{
		Render: RenderConfig{
			Samples:  32,
			Height:   0,
			TileSize: 32,
			Workers:  0,
			Seed:     0, // Random seed
		},
		Output: OutputConfig{
			Path: "output/render.png",
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// LoadConfig loads the configuration from a file. Fields missing from the
// file keep their default values.
func LoadConfig(filePath string) (*Config, error) {
	// Create default config
	config := DefaultConfig()

	// Read file
	data, err := os.ReadFile(filePath)
	if err != nil {
		return config, fmt.Errorf("error reading config: %w", err)
	}

	// Parse YAML
	if err := yaml.UnmarshalStrict(data, config); err != nil {
		return config, fmt.Errorf("error parsing config %s: %w", filePath, err)
	}

	if err := config.Validate(); err != nil {
		return config, fmt.Errorf("invalid config %s: %w", filePath, err)
	}

	return config, nil
}

// SaveConfig saves the configuration to a file
func SaveConfig(config *Config, filePath string) error {
	// Convert to YAML
	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("error serializing config: %w", err)
	}

	// Write file
	if err := os.WriteFile(filePath, data, 0644); err != nil {
		return fmt.Errorf("error writing config file: %w", err)
	}

	return nil
}

// Validate rejects settings the renderer cannot use
func (c *Config) Validate() error {
	if c.Render.Samples < 1 {
		return fmt.Errorf("render.samples must be at least 1, got %d", c.Render.Samples)
	}
	if c.Render.Height < 0 {
		return fmt.Errorf("render.height must not be negative, got %g", c.Render.Height)
	}
	if c.Render.TileSize < 1 {
		return fmt.Errorf("render.tile_size must be at least 1, got %d", c.Render.TileSize)
	}
	if c.Render.Workers < 0 {
		return fmt.Errorf("render.workers must not be negative, got %d", c.Render.Workers)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level must be one of debug, info, warn, error, got %q", c.Logging.Level)
	}
	return nil
}
