// Package config loads the YAML configuration file
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/orrery/vmath"
)

type Config struct {
	FPS           int               `yaml:"fps"`
	Seed          uint64            `yaml:"seed"`
	RandomPhase   bool              `yaml:"random_phase"`
	TrailCapacity int               `yaml:"trail_capacity"`
	AsteroidCount int               `yaml:"asteroid_count"`
	StarCount     int               `yaml:"star_count"`
	ColorMode     string            `yaml:"color_mode"`
	Camera        CameraConfig      `yaml:"camera"`
	Focus         FocusConfig       `yaml:"focus"`
	Audio         AudioConfig       `yaml:"audio"`
	Metrics       MetricsConfig     `yaml:"metrics"`
	Log           LogConfig         `yaml:"log"`
	Keys          map[string]string `yaml:"keys"` // key name → action name, "none" unbinds
}

type CameraConfig struct {
	FOVDeg      float64   `yaml:"fov_deg"`
	Start       []float64 `yaml:"start"`
	MinDistance float64   `yaml:"min_distance"`
	MaxDistance float64   `yaml:"max_distance"`
	Damping     float64   `yaml:"damping"`
}

type FocusConfig struct {
	Duration     time.Duration `yaml:"duration"`
	SunDistance  float64       `yaml:"sun_distance"`
	BodyDistance float64       `yaml:"body_distance"`
}

type AudioConfig struct {
	Enable bool `yaml:"enable"`
}

type MetricsConfig struct {
	Addr string `yaml:"addr"` // empty disables the listener
}

type LogConfig struct {
	Debug bool `yaml:"debug"`
}

// Default returns the reference setup
func Default() Config {
	return Config{
		FPS:           60,
		Seed:          1,
		RandomPhase:   true,
		TrailCapacity: 50,
		AsteroidCount: 200,
		StarCount:     5000,
		ColorMode:     "auto",
		Camera: CameraConfig{
			FOVDeg:      75,
			Start:       []float64{0, 50, 100},
			MinDistance: 10,
			MaxDistance: 200,
			Damping:     0.05,
		},
		Focus: FocusConfig{
			Duration:     2 * time.Second,
			SunDistance:  20,
			BodyDistance: 15,
		},
	}
}

// Load reads path over the defaults, fields absent from the file keep their default
func Load(path string) (Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}
	return Parse(b)
}

// Parse decodes YAML data over the defaults and validates the result
func Parse(data []byte) (Config, error) {
	cfg := Default()

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks ranges, returning the first violation
func (c Config) Validate() error {
	if c.FPS <= 0 {
		return fmt.Errorf("fps must be > 0")
	}
	if c.TrailCapacity <= 0 {
		return fmt.Errorf("trail_capacity must be > 0")
	}
	if c.AsteroidCount < 0 {
		return fmt.Errorf("asteroid_count must be >= 0")
	}
	if c.StarCount < 0 {
		return fmt.Errorf("star_count must be >= 0")
	}
	switch strings.ToLower(c.ColorMode) {
	case "", "auto", "256", "truecolor":
	default:
		return fmt.Errorf("color_mode must be one of auto, 256, truecolor")
	}

	if c.Camera.FOVDeg <= 0 || c.Camera.FOVDeg >= 180 {
		return fmt.Errorf("camera.fov_deg must be between 0 and 180")
	}
	if len(c.Camera.Start) != 3 {
		return fmt.Errorf("camera.start must have 3 elements")
	}
	if c.StartPosition() == (vmath.Vec3{}) {
		return fmt.Errorf("camera.start must not be the origin")
	}
	if c.Camera.MinDistance <= 0 {
		return fmt.Errorf("camera.min_distance must be > 0")
	}
	if c.Camera.MaxDistance < c.Camera.MinDistance {
		return fmt.Errorf("camera.max_distance must be >= camera.min_distance")
	}
	if c.Camera.Damping <= 0 || c.Camera.Damping > 1 {
		return fmt.Errorf("camera.damping must be in (0, 1]")
	}

	if c.Focus.Duration < 0 {
		return fmt.Errorf("focus.duration must be >= 0")
	}
	if c.Focus.SunDistance <= 0 {
		return fmt.Errorf("focus.sun_distance must be > 0")
	}
	if c.Focus.BodyDistance <= 0 {
		return fmt.Errorf("focus.body_distance must be > 0")
	}
	return nil
}

// StartPosition returns camera.start as a vector
func (c Config) StartPosition() vmath.Vec3 {
	if len(c.Camera.Start) != 3 {
		return vmath.Vec3{X: 0, Y: 50, Z: 100}
	}
	return vmath.Vec3{X: c.Camera.Start[0], Y: c.Camera.Start[1], Z: c.Camera.Start[2]}
}

// FrameInterval converts fps into a ticker period
func (c Config) FrameInterval() time.Duration {
	if c.FPS <= 0 {
		return time.Second / 60
	}
	return time.Second / time.Duration(c.FPS)
}
