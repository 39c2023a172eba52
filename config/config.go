// Package config loads the viewer's settings from a TOML file, a .env file and SOLAR_*
// environment variables, in increasing order of precedence.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/Carmen-Shannon/oxy-solar/common"
	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/pelletier/go-toml/v2"
)

// DefaultPath is the config file read when no path is given. It may be absent.
const DefaultPath = "solar.toml"

// EnvPrefix prefixes every environment override, e.g. SOLAR_WINDOW_WIDTH.
const EnvPrefix = "SOLAR_"

// Config is the complete viewer configuration.
type Config struct {
	Window   WindowConfig   `toml:"window" envPrefix:"WINDOW_"`
	Camera   CameraConfig   `toml:"camera" envPrefix:"CAMERA_"`
	Rig      RigConfig      `toml:"rig" envPrefix:"RIG_"`
	Renderer RendererConfig `toml:"renderer" envPrefix:"RENDERER_"`
	Textures TextureConfig  `toml:"textures" envPrefix:"TEXTURES_"`
	Content  ContentConfig  `toml:"content" envPrefix:"CONTENT_"`
	Overlay  OverlayConfig  `toml:"overlay" envPrefix:"OVERLAY_"`
	Log      LogConfig      `toml:"log" envPrefix:"LOG_"`
}

// WindowConfig sizes the native window.
type WindowConfig struct {
	Title  string `toml:"title" env:"TITLE"`
	Width  int    `toml:"width" env:"WIDTH"`
	Height int    `toml:"height" env:"HEIGHT"`
}

// CameraConfig sets the projection and the canonical pose distance.
type CameraConfig struct {
	Fov      float32 `toml:"fov" env:"FOV"` // vertical, degrees
	Near     float32 `toml:"near" env:"NEAR"`
	Far      float32 `toml:"far" env:"FAR"`
	Distance float32 `toml:"distance" env:"DISTANCE"`
}

// RigConfig tunes the camera rig.
type RigConfig struct {
	MovementStep  float32 `toml:"movement_step" env:"MOVEMENT_STEP"`
	RotationStep  float32 `toml:"rotation_step" env:"ROTATION_STEP"`
	FollowGain    float32 `toml:"follow_gain" env:"FOLLOW_GAIN"`
	FollowDamping float32 `toml:"follow_damping" env:"FOLLOW_DAMPING"`
	Limit         float32 `toml:"limit" env:"LIMIT"`
	ToggleKey     string  `toml:"toggle_key" env:"TOGGLE_KEY"`
	RecenterKey   string  `toml:"recenter_key" env:"RECENTER_KEY"`
}

// RendererConfig selects presentation settings.
type RendererConfig struct {
	VSync    bool `toml:"vsync" env:"VSYNC"`
	MSAA     int  `toml:"msaa" env:"MSAA"`
	Software bool `toml:"software" env:"SOFTWARE"`
}

// TextureConfig locates and decodes image assets.
type TextureConfig struct {
	AssetDir string `toml:"asset_dir" env:"ASSET_DIR"`
	Workers  int    `toml:"workers" env:"WORKERS"`
	Watch    bool   `toml:"watch" env:"WATCH"`
}

// ContentConfig lists the bodies installed into the scene, in order.
type ContentConfig struct {
	Bodies []string `toml:"bodies" env:"BODIES" envSeparator:","`
}

// OverlayConfig describes the info panels.
type OverlayConfig struct {
	Title  string        `toml:"title" env:"TITLE"`
	Panels []PanelConfig `toml:"panels"`
}

// PanelConfig is one info panel.
type PanelConfig struct {
	Selector string          `toml:"selector"`
	Title    string          `toml:"title"`
	Controls []ControlConfig `toml:"controls"`
}

// ControlConfig is one key entry in a panel.
type ControlConfig struct {
	Key   string `toml:"key"`
	Label string `toml:"label"`
}

// LogConfig sets logging and profiling.
type LogConfig struct {
	Level   string `toml:"level" env:"LEVEL"`
	Profile bool   `toml:"profile" env:"PROFILE"`
}

// Load reads the configuration. Defaults are overlaid with the TOML file at path, then with
// environment variables (after loading .env if present), then validated. A missing file is an
// error unless path is DefaultPath or empty.
//
// Parameters:
//   - path: the TOML file to read
//
// Returns:
//   - *Config: the merged configuration
//   - error: a read, decode, env or validation error
func Load(path string) (*Config, error) {
	cfg := Default()

	path = common.Coalesce(path, DefaultPath)
	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist) && path == DefaultPath:
	case err != nil:
		return nil, fmt.Errorf("read config: %w", err)
	default:
		if err := Decode(data, cfg); err != nil {
			return nil, err
		}
	}

	// .env is optional
	_ = godotenv.Load()

	if err := ParseEnv(cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Decode overlays TOML data onto cfg. Unknown keys are rejected.
//
// Parameters:
//   - data: TOML document
//   - cfg: the configuration to update
//
// Returns:
//   - error: a decode error
func Decode(data []byte, cfg *Config) error {
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(cfg); err != nil {
		return fmt.Errorf("decode config: %w", err)
	}
	return nil
}

// ParseEnv overlays SOLAR_* environment variables onto cfg. Unset variables leave fields unchanged.
//
// Parameters:
//   - cfg: the configuration to update
//
// Returns:
//   - error: a parse error
func ParseEnv(cfg *Config) error {
	if err := env.ParseWithOptions(cfg, env.Options{Prefix: EnvPrefix}); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}
