// Package config loads and validates the engine configuration file.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/dd0wney/cluso-lens/pkg/layout"
)

var validate = validator.New()

// LayoutConfig controls initial placement and the physics loop.
type LayoutConfig struct {
	Mode   string             `yaml:"mode" validate:"oneof=force radial hierarchical"`
	Seed   int64              `yaml:"seed"`
	Width  float64            `yaml:"width" validate:"gte=200"`
	Height float64            `yaml:"height" validate:"gte=200"`
	// TickMillis is the physics frame interval in milliseconds.
	TickMillis int                `yaml:"tick_ms" validate:"gte=1,lte=1000"`
	Force      layout.ForceParams `yaml:"force"`
}

// TickInterval returns the frame interval as a duration.
func (lc LayoutConfig) TickInterval() time.Duration {
	return time.Duration(lc.TickMillis) * time.Millisecond
}

// ClusterConfig controls the k-center cluster pass.
type ClusterConfig struct {
	Count int `yaml:"count" validate:"gte=0,lte=64"`
}

// CanvasConfig controls terminal rendering extras.
type CanvasConfig struct {
	Labels  bool `yaml:"labels"`
	MiniMap bool `yaml:"mini_map"`
}

// ExportConfig controls view export output.
type ExportConfig struct {
	Dir      string `yaml:"dir"`
	Compress bool   `yaml:"compress"`
}

// Config is the full engine configuration.
type Config struct {
	Layout   LayoutConfig  `yaml:"layout"`
	Clusters ClusterConfig `yaml:"clusters"`
	Canvas   CanvasConfig  `yaml:"canvas"`
	Export   ExportConfig  `yaml:"export"`
	LogLevel string        `yaml:"log_level" validate:"oneof=debug info warn error"`
}

// Default returns the stock configuration.
func Default() *Config {
	return &Config{
		Layout: LayoutConfig{
			Mode:       "force",
			Seed:       1,
			Width:      2000,
			Height:     1500,
			TickMillis: 33,
			Force:      layout.DefaultForceParams(),
		},
		Clusters: ClusterConfig{Count: 5},
		Canvas:   CanvasConfig{Labels: true, MiniMap: true},
		Export:   ExportConfig{Dir: ".", Compress: false},
		LogLevel: "info",
	}
}

// Load reads a YAML config file, layering it over the defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes YAML config bytes over the defaults and validates the
// result. Fields absent from the input keep their default values.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the configuration against its constraints.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		if errs, ok := err.(validator.ValidationErrors); ok && len(errs) > 0 {
			e := errs[0]
			return fmt.Errorf("config: field %s failed %s validation (value %v)",
				e.Namespace(), e.Tag(), e.Value())
		}
		return fmt.Errorf("config: %w", err)
	}
	return nil
}

// LayoutMode returns the parsed layout mode. Validate guarantees the
// string is one of the known modes.
func (c *Config) LayoutMode() layout.Mode {
	m, _ := layout.ParseMode(c.Layout.Mode)
	return m
}

// Bounds returns the configured layout bounds.
func (c *Config) Bounds() layout.Bounds {
	return layout.Bounds{Width: c.Layout.Width, Height: c.Layout.Height}
}
