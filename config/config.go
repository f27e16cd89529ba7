package config

import (
	"errors"
	"fmt"
	"image/color"
	"os"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Window       WindowConfig `yaml:"window"`
	TPS          int          `yaml:"tps"`
	Level        string       `yaml:"level"`
	Debug        bool         `yaml:"debug"`
	WatchPrefabs bool         `yaml:"watch_prefabs"`
	Log          LogConfig    `yaml:"log"`
}

type WindowConfig struct {
	Title      string `yaml:"title"`
	Width      int    `yaml:"width"`
	Height     int    `yaml:"height"`
	ClearColor Color  `yaml:"clear_color"`
}

type LogConfig struct {
	Level string `yaml:"level"`
	// File is rotated by size; empty logs to stderr only.
	File       string `yaml:"file"`
	MaxSizeMB  int    `yaml:"max_size_mb"`
	MaxBackups int    `yaml:"max_backups"`
	MaxAgeDays int    `yaml:"max_age_days"`
}

// Default is the configuration used when no file is given.
func Default() Config {
	return Config{
		Window: WindowConfig{
			Title:      "Alp & Run",
			Width:      1280,
			Height:     720,
			ClearColor: Color{colornames.Black},
		},
		TPS:   60,
		Level: "ortho-map",
		Log: LogConfig{
			Level:      "info",
			File:       "alprun.log",
			MaxSizeMB:  10,
			MaxBackups: 3,
			MaxAgeDays: 7,
		},
	}
}

// Load overlays the YAML file at path on Default. An empty path returns Default.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config: unmarshal %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

func (c Config) Validate() error {
	var errs []error
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		errs = append(errs, fmt.Errorf("window size %dx%d must be positive", c.Window.Width, c.Window.Height))
	}
	if c.TPS <= 0 {
		errs = append(errs, fmt.Errorf("tps %d must be positive", c.TPS))
	}
	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "error":
	default:
		errs = append(errs, fmt.Errorf("unknown log level %q", c.Log.Level))
	}
	return errors.Join(errs...)
}

// Color is a hex colour ("#rrggbb" or "#rrggbbaa") in YAML.
type Color struct {
	color.Color
}

func (c Color) RGBA() (r, g, b, a uint32) {
	if c.Color == nil {
		return 0, 0, 0, 0xffff
	}
	return c.Color.RGBA()
}

func (c *Color) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("color must be a string")
	}
	parsed, err := ParseColor(value.Value)
	if err != nil {
		return err
	}
	c.Color = parsed
	return nil
}

func ParseColor(text string) (color.Color, error) {
	if named, ok := colornames.Map[strings.ToLower(text)]; ok {
		return named, nil
	}

	s := strings.TrimPrefix(text, "#")
	if len(s) != 6 && len(s) != 8 {
		return nil, fmt.Errorf("invalid color format: %s", text)
	}

	parse := func(start int) (uint8, error) {
		v, err := strconv.ParseUint(s[start:start+2], 16, 8)
		return uint8(v), err
	}

	r, err := parse(0)
	if err != nil {
		return nil, err
	}
	g, err := parse(2)
	if err != nil {
		return nil, err
	}
	b, err := parse(4)
	if err != nil {
		return nil, err
	}

	a := uint8(255)
	if len(s) == 8 {
		a, err = parse(6)
		if err != nil {
			return nil, err
		}
	}

	return color.NRGBA{R: r, G: g, B: b, A: a}, nil
}
