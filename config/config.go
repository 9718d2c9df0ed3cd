// Package config loads runtime settings from an optional YAML file on top of compile-time defaults
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/abey79/rusteroid/engine"
	"github.com/abey79/rusteroid/generator"
	"github.com/abey79/rusteroid/parameter"
)

// ErrInvalidConfig wraps every validation failure
var ErrInvalidConfig = errors.New("invalid config")

// Config is the full runtime configuration
type Config struct {
	Seed     uint64         `yaml:"seed"`
	TickRate time.Duration  `yaml:"tick_rate"`
	Field    FieldConfig    `yaml:"field"`
	Asteroid AsteroidConfig `yaml:"asteroid"`
	Missile  MissileConfig  `yaml:"missile"`
	Log      LogConfig      `yaml:"log"`
	Audio    AudioConfig    `yaml:"audio"`
	Export   ExportConfig   `yaml:"export"`
}

type FieldConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

type AsteroidConfig struct {
	MaxCategory int      `yaml:"max_category"`
	Generators  []string `yaml:"generators"`
}

type MissileConfig struct {
	Speed            float64       `yaml:"speed"`
	TimeToLive       time.Duration `yaml:"time_to_live"`
	MomentumTransfer float64       `yaml:"momentum_transfer"`
}

// LogConfig controls the file logger
type LogConfig struct {
	Enabled bool   `yaml:"enabled"`
	Level   string `yaml:"level"`  // debug, info, warn, error
	Format  string `yaml:"format"` // console or json
	Dir     string `yaml:"dir"`
	MaxSize int64  `yaml:"max_size"` // Bytes before the previous file is rotated away
}

type AudioConfig struct {
	Enabled bool    `yaml:"enabled"`
	Volume  float64 `yaml:"volume"` // Gain in [0, 1]
}

type ExportConfig struct {
	Dir         string  `yaml:"dir"`
	StrokeWidth float64 `yaml:"stroke_width"`
}

// Default returns the configuration built from compile-time parameters
func Default() *Config {
	return &Config{
		TickRate: parameter.GameUpdateInterval,
		Field: FieldConfig{
			Width:  parameter.FieldWidth,
			Height: parameter.FieldHeight,
		},
		Asteroid: AsteroidConfig{
			MaxCategory: parameter.MaxCategory,
			Generators: []string{
				generator.NameJitteredCircle,
				generator.NameNestedRotation,
				generator.NameVoronoiFracture,
			},
		},
		Missile: MissileConfig{
			Speed:            parameter.MissileSpeed,
			TimeToLive:       parameter.MissileTimeToLive,
			MomentumTransfer: parameter.MissileMomentumTransfer,
		},
		Log: LogConfig{
			Level:   "info",
			Format:  "console",
			Dir:     parameter.LogDir,
			MaxSize: parameter.LogMaxSize,
		},
		Audio: AudioConfig{
			Enabled: true,
			Volume:  parameter.AudioVolume,
		},
		Export: ExportConfig{
			Dir:         parameter.ExportDir,
			StrokeWidth: parameter.ExportStrokeWidth,
		},
	}
}

// Load reads path over the defaults; an empty path returns the defaults
func Load(path string) (*Config, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	cfg, err := Parse(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes YAML from r over the defaults and validates the result
// Unknown keys are rejected
func Parse(r io.Reader) (*Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decode: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks ranges and generator names
func (c *Config) Validate() error {
	var errs []error
	if c.TickRate <= 0 {
		errs = append(errs, fmt.Errorf("tick_rate must be positive, got %s", c.TickRate))
	}
	if c.Field.Width <= 0 || c.Field.Height <= 0 {
		errs = append(errs, fmt.Errorf("field must have positive extents, got %vx%v", c.Field.Width, c.Field.Height))
	}
	if c.Asteroid.MaxCategory < 1 {
		errs = append(errs, fmt.Errorf("asteroid.max_category must be at least 1, got %d", c.Asteroid.MaxCategory))
	}
	if len(c.Asteroid.Generators) == 0 {
		errs = append(errs, errors.New("asteroid.generators must name at least one generator"))
	}
	for _, name := range c.Asteroid.Generators {
		if _, err := generator.ParseKind(name); err != nil {
			errs = append(errs, err)
		}
	}
	if c.Missile.Speed <= 0 {
		errs = append(errs, fmt.Errorf("missile.speed must be positive, got %v", c.Missile.Speed))
	}
	if c.Missile.TimeToLive <= 0 {
		errs = append(errs, fmt.Errorf("missile.time_to_live must be positive, got %s", c.Missile.TimeToLive))
	}
	if c.Missile.MomentumTransfer < 0 || c.Missile.MomentumTransfer > 1 {
		errs = append(errs, fmt.Errorf("missile.momentum_transfer must be in [0, 1], got %v", c.Missile.MomentumTransfer))
	}
	switch c.Log.Format {
	case "console", "json":
	default:
		errs = append(errs, fmt.Errorf("log.format must be console or json, got %q", c.Log.Format))
	}
	if c.Log.MaxSize <= 0 {
		errs = append(errs, fmt.Errorf("log.max_size must be positive, got %d", c.Log.MaxSize))
	}
	if c.Audio.Volume < 0 || c.Audio.Volume > 1 {
		errs = append(errs, fmt.Errorf("audio.volume must be in [0, 1], got %v", c.Audio.Volume))
	}
	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %w", ErrInvalidConfig, errors.Join(errs...))
}

// Resource converts the gameplay part of the configuration into the world resource
func (c *Config) Resource() *engine.ConfigResource {
	return &engine.ConfigResource{
		FieldWidth:              c.Field.Width,
		FieldHeight:             c.Field.Height,
		MaxCategory:             c.Asteroid.MaxCategory,
		MissileSpeed:            c.Missile.Speed,
		MissileTimeToLive:       c.Missile.TimeToLive,
		MissileMomentumTransfer: c.Missile.MomentumTransfer,
	}
}

// Registry builds the generator registry from the configured names
func (c *Config) Registry() (*generator.Registry, error) {
	return generator.FromNames(c.Asteroid.Generators)
}
