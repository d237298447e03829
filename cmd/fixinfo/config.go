package main

import (
	_ "embed"
	"fmt"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/cwbudde/algo-fix32/fix32"
	"github.com/cwbudde/algo-fix32/measure/accuracy"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds the fixinfo settings.
type Config struct {
	Points     int       `yaml:"points"`
	Iterations int       `yaml:"iterations"`
	Scale      int       `yaml:"scale"`
	Radius     float64   `yaml:"radius"`
	Shift      uint      `yaml:"shift"`
	Harmonics  int       `yaml:"harmonics"`
	Rounding   string    `yaml:"rounding"`
	Ops        []string  `yaml:"ops"`
	Log        LogConfig `yaml:"log"`
}

// LogConfig selects the diagnostic log format.
type LogConfig struct {
	Level string `yaml:"level"`
	JSON  bool   `yaml:"json"`
}

// Load reads the embedded defaults and, if path is not empty, merges the
// YAML file at path over them.
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
		// Fields absent from the file keep their defaults.
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	return cfg, nil
}

// options converts the configuration into sweep options.
func (c *Config) options() ([]accuracy.Option, error) {
	mode, err := fix32.ParseRoundingMode(c.Rounding)
	if err != nil {
		return nil, err
	}

	return []accuracy.Option{
		accuracy.WithPoints(c.Points),
		accuracy.WithIterations(c.Iterations),
		accuracy.WithScale(c.Scale),
		accuracy.WithRadius(c.Radius),
		accuracy.WithShift(c.Shift),
		accuracy.WithHarmonics(c.Harmonics),
		accuracy.WithRounding(mode),
	}, nil
}

func (c *Config) logLevel() (slog.Level, error) {
	var level slog.Level
	if c.Log.Level == "" {
		return slog.LevelInfo, nil
	}

	if err := level.UnmarshalText([]byte(c.Log.Level)); err != nil {
		return 0, fmt.Errorf("log level: %w", err)
	}

	return level, nil
}

// WriteYAML writes the effective configuration.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}
