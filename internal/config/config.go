// Package config loads the demo's settings from embedded defaults plus an optional YAML or TOML file.
package config

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds all application settings.
type Config struct {
	Window    WindowConfig    `yaml:"window" toml:"window"`
	Particles ParticlesConfig `yaml:"particles" toml:"particles"`
	Focal     FocalConfig     `yaml:"focal" toml:"focal"`
	Camera    CameraConfig    `yaml:"camera" toml:"camera"`
	Shaders   ShadersConfig   `yaml:"shaders" toml:"shaders"`
	Logging   LoggingConfig   `yaml:"logging" toml:"logging"`
	Telemetry TelemetryConfig `yaml:"telemetry" toml:"telemetry"`
}

// WindowConfig holds display settings.
type WindowConfig struct {
	Width    int    `yaml:"width" toml:"width"`
	Height   int    `yaml:"height" toml:"height"`
	Title    string `yaml:"title" toml:"title"`
	FPSLimit int    `yaml:"fps_limit" toml:"fps_limit"` // 0 = uncapped
	VSync    bool   `yaml:"vsync" toml:"vsync"`
}

// ParticlesConfig holds pool size and spark appearance.
type ParticlesConfig struct {
	Capacity            int       `yaml:"capacity" toml:"capacity"`
	SpawnPerFrame       int       `yaml:"spawn_per_frame" toml:"spawn_per_frame"`
	Seed                int64     `yaml:"seed" toml:"seed"`
	Life                float32   `yaml:"life" toml:"life"`
	AlphaDecay          float32   `yaml:"alpha_decay" toml:"alpha_decay"`
	VisibilityThreshold float32   `yaml:"visibility_threshold" toml:"visibility_threshold"`
	Scale               float32   `yaml:"scale" toml:"scale"`
	SpeedRange          float32   `yaml:"speed_range" toml:"speed_range"`
	Color               []float32 `yaml:"color" toml:"color"` // rgba
}

// FocalConfig describes the circle the emitter travels along.
// A zero radius keeps it fixed at the origin (plus height).
type FocalConfig struct {
	Radius       float32 `yaml:"radius" toml:"radius"`
	AngularSpeed float32 `yaml:"angular_speed" toml:"angular_speed"` // radians per second
	Height       float32 `yaml:"height" toml:"height"`
	ShowMarker   bool    `yaml:"show_marker" toml:"show_marker"`
	MarkerSize   float32 `yaml:"marker_size" toml:"marker_size"`
}

// CameraConfig holds the fixed viewpoint.
type CameraConfig struct {
	FOV  float32   `yaml:"fov" toml:"fov"` // degrees
	Near float32   `yaml:"near" toml:"near"`
	Far  float32   `yaml:"far" toml:"far"`
	Eye  []float32 `yaml:"eye" toml:"eye"`
}

// ShadersConfig locates GLSL sources on disk.
type ShadersConfig struct {
	Dir string `yaml:"dir" toml:"dir"`
}

// LoggingConfig selects zap's level and encoder.
type LoggingConfig struct {
	Level  string `yaml:"level" toml:"level"`
	Format string `yaml:"format" toml:"format"` // "json" or "console"
}

// TelemetryConfig controls CSV output. An empty Dir disables it.
type TelemetryConfig struct {
	Dir           string  `yaml:"dir" toml:"dir"`
	WindowSeconds float64 `yaml:"window_seconds" toml:"window_seconds"`
}

// Default returns the embedded defaults.
func Default() (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}
	return cfg, nil
}

// Load reads the embedded defaults and merges the file at path over them.
// Files ending in .toml are decoded as TOML, anything else as YAML.
// An empty path yields the defaults.
func Load(path string) (*Config, error) {
	cfg, err := Default()
	if err != nil {
		return nil, err
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
		if err := cfg.merge(path, data); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func (c *Config) merge(path string, data []byte) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return toml.Unmarshal(data, c)
	default:
		return yaml.Unmarshal(data, c)
	}
}

// Validate reports every setting the demo cannot run with.
func (c *Config) Validate() error {
	var errs []error
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		errs = append(errs, fmt.Errorf("window size must be positive, got %dx%d", c.Window.Width, c.Window.Height))
	}
	if c.Window.FPSLimit < 0 {
		errs = append(errs, fmt.Errorf("fps_limit must not be negative, got %d", c.Window.FPSLimit))
	}
	if c.Particles.Capacity <= 0 {
		errs = append(errs, fmt.Errorf("particles.capacity must be positive, got %d", c.Particles.Capacity))
	}
	if c.Particles.SpawnPerFrame < 0 {
		errs = append(errs, fmt.Errorf("particles.spawn_per_frame must not be negative, got %d", c.Particles.SpawnPerFrame))
	}
	if c.Particles.Life <= 0 {
		errs = append(errs, fmt.Errorf("particles.life must be positive, got %v", c.Particles.Life))
	}
	if c.Particles.AlphaDecay < 0 {
		errs = append(errs, fmt.Errorf("particles.alpha_decay must not be negative, got %v", c.Particles.AlphaDecay))
	}
	if c.Particles.VisibilityThreshold < 0 {
		errs = append(errs, fmt.Errorf("particles.visibility_threshold must not be negative, got %v", c.Particles.VisibilityThreshold))
	}
	if c.Particles.Scale <= 0 {
		errs = append(errs, fmt.Errorf("particles.scale must be positive, got %v", c.Particles.Scale))
	}
	if c.Particles.SpeedRange < 0 {
		errs = append(errs, fmt.Errorf("particles.speed_range must not be negative, got %v", c.Particles.SpeedRange))
	}
	if len(c.Particles.Color) != 4 {
		errs = append(errs, fmt.Errorf("particles.color needs 4 components, got %d", len(c.Particles.Color)))
	}
	if c.Focal.MarkerSize <= 0 {
		errs = append(errs, fmt.Errorf("focal.marker_size must be positive, got %v", c.Focal.MarkerSize))
	}
	if len(c.Camera.Eye) != 3 {
		errs = append(errs, fmt.Errorf("camera.eye needs 3 components, got %d", len(c.Camera.Eye)))
	}
	if c.Camera.Near <= 0 || c.Camera.Far <= c.Camera.Near {
		errs = append(errs, fmt.Errorf("camera planes must satisfy 0 < near < far, got %v..%v", c.Camera.Near, c.Camera.Far))
	}
	if c.Telemetry.Dir != "" && c.Telemetry.WindowSeconds <= 0 {
		errs = append(errs, fmt.Errorf("telemetry.window_seconds must be positive, got %v", c.Telemetry.WindowSeconds))
	}
	return errors.Join(errs...)
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
