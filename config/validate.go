package config

import (
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"github.com/Carmen-Shannon/oxy-solar/common"
	"github.com/Carmen-Shannon/oxy-solar/content"
	"github.com/Carmen-Shannon/oxy-solar/engine/camera"
	"github.com/Carmen-Shannon/oxy-solar/engine/overlay"
)

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("config: invalid")

// Validate checks every setting and reports all problems at once.
//
// Returns:
//   - error: nil, or the joined failures, each wrapping ErrInvalid
func (c *Config) Validate() error {
	var errs []error
	fail := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalid}, args...)...))
	}

	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		fail("window size %dx%d", c.Window.Width, c.Window.Height)
	}

	if c.Camera.Fov <= 0 || c.Camera.Fov >= 180 {
		fail("camera fov %v", c.Camera.Fov)
	}
	if c.Camera.Near <= 0 || c.Camera.Far <= c.Camera.Near {
		fail("camera clip range %v..%v", c.Camera.Near, c.Camera.Far)
	}
	if c.Camera.Distance <= 0 {
		fail("camera distance %v", c.Camera.Distance)
	}

	if c.Rig.MovementStep <= 0 || c.Rig.RotationStep <= 0 {
		fail("rig steps %v/%v", c.Rig.MovementStep, c.Rig.RotationStep)
	}
	if c.Rig.FollowGain <= 0 {
		fail("rig follow gain %v", c.Rig.FollowGain)
	}
	if c.Rig.FollowDamping <= 0 || c.Rig.FollowDamping > 1 {
		fail("rig follow damping %v", c.Rig.FollowDamping)
	}
	if c.Rig.Limit <= 0 {
		fail("rig limit %v", c.Rig.Limit)
	}
	if c.Camera.Distance > c.Rig.Limit {
		fail("camera distance %v outside rig limit %v", c.Camera.Distance, c.Rig.Limit)
	}
	if c.Rig.ToggleKey == "" || c.Rig.RecenterKey == "" || strings.EqualFold(c.Rig.ToggleKey, c.Rig.RecenterKey) {
		fail("rig keys %q/%q", c.Rig.ToggleKey, c.Rig.RecenterKey)
	}
	for _, k := range []string{c.Rig.ToggleKey, c.Rig.RecenterKey} {
		if k != "" && reservedKey(k) {
			fail("rig key %q is already bound", k)
		}
	}

	if c.Renderer.MSAA != 1 && c.Renderer.MSAA != 4 {
		fail("renderer msaa %d", c.Renderer.MSAA)
	}
	if c.Textures.Workers < 0 {
		fail("texture workers %d", c.Textures.Workers)
	}

	known := content.Names()
	for _, b := range c.Content.Bodies {
		if !slices.Contains(known, b) {
			fail("unknown body %q", b)
		}
	}

	layout := c.Layout()
	for _, sel := range []string{MovementPanel, RotationPanel} {
		if _, err := layout.Panel(sel); err != nil {
			errs = append(errs, fmt.Errorf("%w: %w", ErrInvalid, err))
		}
	}
	for _, p := range c.Overlay.Panels {
		for _, ctl := range p.Controls {
			if _, ok := common.KeyByName(ctl.Key); !ok {
				fail("panel %s: unknown key %q", p.Selector, ctl.Key)
			}
		}
	}

	if _, err := c.LogLevel(); err != nil {
		errs = append(errs, fmt.Errorf("%w: %w", ErrInvalid, err))
	}

	return errors.Join(errs...)
}

// reservedKey reports whether key already drives the speed controls or a fly binding.
func reservedKey(key string) bool {
	if key == content.KeySpeedUp || key == content.KeySlowDown {
		return true
	}
	for _, b := range camera.DefaultBindings() {
		if strings.EqualFold(key, b.Key.Name()) {
			return true
		}
	}
	return false
}

// Layout converts the panel settings into an overlay layout.
//
// Returns:
//   - overlay.Layout: one definition per configured panel
func (c *Config) Layout() overlay.Layout {
	layout := make(overlay.Layout, 0, len(c.Overlay.Panels))
	for _, p := range c.Overlay.Panels {
		def := overlay.PanelDef{Selector: p.Selector, Title: p.Title}
		for _, ctl := range p.Controls {
			def.Controls = append(def.Controls, overlay.Control{Key: ctl.Key, Label: ctl.Label})
		}
		layout = append(layout, def)
	}
	return layout
}

// LogLevel parses the configured log level.
//
// Returns:
//   - slog.Level: the level
//   - error: an error if the name is not a slog level
func (c *Config) LogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.Log.Level)); err != nil {
		return 0, fmt.Errorf("log level: %w", err)
	}
	return level, nil
}
