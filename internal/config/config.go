// Package config loads the flexlayout CLI configuration from defaults, an
// optional config file, FLEXLAYOUT_* environment variables and flags.
package config

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/grindlemire/go-flex/internal/debug"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment variable, e.g.
// FLEXLAYOUT_OUTPUT_FORMAT.
const EnvPrefix = "FLEXLAYOUT"

// Output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// Config is the full CLI configuration.
type Config struct {
	Log    debug.Config `mapstructure:"log"`
	Output OutputConfig `mapstructure:"output"`
	Layout LayoutConfig `mapstructure:"layout"`
}

// OutputConfig controls how resolved trees are reported.
type OutputConfig struct {
	Format string `mapstructure:"format"`
}

// LayoutConfig controls how fixture trees are laid out.
type LayoutConfig struct {
	// Jobs is the number of files laid out in parallel.
	Jobs int `mapstructure:"jobs"`

	// Viewport is the "WxH" rectangle used for culling. Empty means the
	// terminal size, when there is a terminal.
	Viewport string `mapstructure:"viewport"`

	// Width and Height override the root basis when non-zero.
	Width  float64 `mapstructure:"width"`
	Height float64 `mapstructure:"height"`
}

// SetDefaults registers every key with its default value. Keys without a
// default are invisible to environment lookups during Unmarshal.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "warn")
	v.SetDefault("log.format", "console")
	v.SetDefault("log.file", "")
	v.SetDefault("log.max_size", 10)
	v.SetDefault("log.max_backups", 3)
	v.SetDefault("log.max_age", 7)
	v.SetDefault("log.compress", false)

	v.SetDefault("output.format", FormatText)

	v.SetDefault("layout.jobs", 4)
	v.SetDefault("layout.viewport", "")
	v.SetDefault("layout.width", 0.0)
	v.SetDefault("layout.height", 0.0)
}

// Load decodes and validates the configuration held by v.
func Load(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &cfg, nil
}

// Validate reports every invalid value at once.
func (c *Config) Validate() error {
	var errs []error
	switch c.Output.Format {
	case FormatText, FormatJSON:
	default:
		errs = append(errs, fmt.Errorf("output.format must be %q or %q, got %q", FormatText, FormatJSON, c.Output.Format))
	}
	if c.Layout.Jobs <= 0 {
		errs = append(errs, fmt.Errorf("layout.jobs must be positive, got %d", c.Layout.Jobs))
	}
	if c.Layout.Width < 0 || c.Layout.Height < 0 {
		errs = append(errs, errors.New("layout.width and layout.height must not be negative"))
	}
	if c.Layout.Viewport != "" {
		if _, _, err := ParseViewport(c.Layout.Viewport); err != nil {
			errs = append(errs, fmt.Errorf("layout.viewport: %w", err))
		}
	}
	return errors.Join(errs...)
}

// ParseViewport parses a "WxH" size such as "120x40".
func ParseViewport(s string) (width, height float64, err error) {
	ws, hs, ok := strings.Cut(strings.ToLower(strings.TrimSpace(s)), "x")
	if !ok {
		return 0, 0, fmt.Errorf("viewport %q is not WxH", s)
	}
	width, err = strconv.ParseFloat(ws, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("viewport %q: bad width: %w", s, err)
	}
	height, err = strconv.ParseFloat(hs, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("viewport %q: bad height: %w", s, err)
	}
	if width <= 0 || height <= 0 {
		return 0, 0, fmt.Errorf("viewport %q must be positive", s)
	}
	return width, height, nil
}
