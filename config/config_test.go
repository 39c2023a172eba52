package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/Carmen-Shannon/oxy-solar/engine/overlay"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, data string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))
	return path
}

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())

	layout := cfg.Layout()
	movement, err := layout.Panel(MovementPanel)
	require.NoError(t, err)
	var keys []string
	for _, c := range movement.Controls {
		keys = append(keys, c.Key)
	}
	assert.Equal(t, []string{"w", "s", "a", "d", "z", "x"}, keys)

	rotation, err := layout.Panel(RotationPanel)
	require.NoError(t, err)
	assert.Len(t, rotation.Controls, 6)
	assert.Equal(t, "ArrowUp", rotation.Controls[2].Key)
}

func TestLoadMissingDefaultFile(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadMissingExplicitFile(t *testing.T) {
	t.Chdir(t.TempDir())

	_, err := Load("nope.toml")
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadFileAndEnv(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	path := writeFile(t, dir, "solar.toml", `
[window]
width = 800

[rig]
limit = 600

[content]
bodies = ["sun", "cube"]
`)
	writeFile(t, dir, ".env", "SOLAR_CAMERA_FOV=60\n")
	t.Cleanup(func() { os.Unsetenv("SOLAR_CAMERA_FOV") })
	t.Setenv("SOLAR_WINDOW_WIDTH", "1024")
	t.Setenv("SOLAR_LOG_LEVEL", "debug")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 1024, cfg.Window.Width, "env overrides the file")
	assert.Equal(t, 720, cfg.Window.Height, "unset keys keep defaults")
	assert.Equal(t, float32(600), cfg.Rig.Limit)
	assert.Equal(t, float32(60), cfg.Camera.Fov, ".env is loaded")
	assert.Equal(t, []string{"sun", "cube"}, cfg.Content.Bodies)
	assert.Len(t, cfg.Overlay.Panels, 2, "panels keep defaults")
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestDecodeRejectsUnknownKeys(t *testing.T) {
	err := Decode([]byte("[window]\ncolour = 3\n"), Default())
	assert.Error(t, err)
}

func TestParseEnvError(t *testing.T) {
	t.Setenv("SOLAR_WINDOW_WIDTH", "wide")
	err := ParseEnv(Default())
	assert.ErrorContains(t, err, "parse env")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero width", func(c *Config) { c.Window.Width = 0 }},
		{"fov", func(c *Config) { c.Camera.Fov = 180 }},
		{"clip range", func(c *Config) { c.Camera.Far = c.Camera.Near }},
		{"distance", func(c *Config) { c.Camera.Distance = 0 }},
		{"step", func(c *Config) { c.Rig.MovementStep = 0 }},
		{"damping zero", func(c *Config) { c.Rig.FollowDamping = 0 }},
		{"damping above one", func(c *Config) { c.Rig.FollowDamping = 1.5 }},
		{"limit", func(c *Config) { c.Rig.Limit = -1 }},
		{"same keys", func(c *Config) { c.Rig.RecenterKey = c.Rig.ToggleKey }},
		{"same keys any case", func(c *Config) { c.Rig.RecenterKey = "G" }},
		{"toggle is speed key", func(c *Config) { c.Rig.ToggleKey = "+" }},
		{"recenter is speed key", func(c *Config) { c.Rig.RecenterKey = "-" }},
		{"toggle is fly key", func(c *Config) { c.Rig.ToggleKey = "w" }},
		{"recenter is fly key", func(c *Config) { c.Rig.RecenterKey = "ArrowUp" }},
		{"distance outside limit", func(c *Config) {
			c.Camera.Distance = 1500
			c.Rig.Limit = 1000
		}},
		{"msaa", func(c *Config) { c.Renderer.MSAA = 2 }},
		{"unknown body", func(c *Config) { c.Content.Bodies = append(c.Content.Bodies, "pluto") }},
		{"missing panel", func(c *Config) { c.Overlay.Panels = c.Overlay.Panels[:1] }},
		{"unknown key", func(c *Config) { c.Overlay.Panels[0].Controls[0].Key = "F13" }},
		{"log level", func(c *Config) { c.Log.Level = "loud" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			assert.ErrorIs(t, cfg.Validate(), ErrInvalid)
		})
	}
}

func TestValidateMissingPanelWrapsOverlayError(t *testing.T) {
	cfg := Default()
	cfg.Overlay.Panels = nil
	err := cfg.Validate()
	assert.ErrorIs(t, err, ErrInvalid)
	assert.ErrorIs(t, err, overlay.ErrPanelNotFound)
}

func TestDistanceAtLimitIsValid(t *testing.T) {
	cfg := Default()
	cfg.Camera.Distance = cfg.Rig.Limit
	assert.NoError(t, cfg.Validate())
}

func TestDampingOneIsValid(t *testing.T) {
	cfg := Default()
	cfg.Rig.FollowDamping = 1
	assert.NoError(t, cfg.Validate())
}
