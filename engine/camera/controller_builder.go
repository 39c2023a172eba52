package camera

import (
	"log/slog"

	"github.com/Carmen-Shannon/oxy-solar/common"
)

// ControllerBuilderOption is a functional option for configuring a Controller.
type ControllerBuilderOption func(*controllerImpl)

// WithMovementStep sets the distance a translation action covers per tick.
//
// Parameters:
//   - step: world units per tick
//
// Returns:
//   - ControllerBuilderOption: a function that sets the movement step
func WithMovementStep(step float32) ControllerBuilderOption {
	return func(c *controllerImpl) {
		c.movementStep = step
	}
}

// WithRotationStep sets the angle a rotation action covers per tick.
//
// Parameters:
//   - step: radians per tick
//
// Returns:
//   - ControllerBuilderOption: a function that sets the rotation step
func WithRotationStep(step float32) ControllerBuilderOption {
	return func(c *controllerImpl) {
		c.rotationStep = step
	}
}

// WithFollow sets the pointer-follow gain and damping factor.
//
// Parameters:
//   - gain: world units per unit of normalized pointer offset
//   - damping: fraction of the remaining distance covered per tick, in (0, 1]
//
// Returns:
//   - ControllerBuilderOption: a function that sets the follow parameters
func WithFollow(gain, damping float32) ControllerBuilderOption {
	return func(c *controllerImpl) {
		c.followGain = gain
		c.damping = damping
	}
}

// WithLimit sets the half-extent of the translation bound.
//
// Parameters:
//   - limit: maximum absolute value of any position component
//
// Returns:
//   - ControllerBuilderOption: a function that sets the bound
func WithLimit(limit float32) ControllerBuilderOption {
	return func(c *controllerImpl) {
		c.limit = limit
	}
}

// WithBindings replaces the key-to-action table.
//
// Parameters:
//   - bindings: the key table
//
// Returns:
//   - ControllerBuilderOption: a function that sets the bindings
func WithBindings(bindings []Binding) ControllerBuilderOption {
	return func(c *controllerImpl) {
		c.bindings = make(map[common.Key]Action, len(bindings))
		for _, b := range bindings {
			c.bindings[b.Key] = b.Action
		}
	}
}

// WithToggleKey sets the key-press character that switches modes.
func WithToggleKey(key string) ControllerBuilderOption {
	return func(c *controllerImpl) {
		c.toggleKey = key
	}
}

// WithRecenterKey sets the key-press character that faces the camera at the scene.
func WithRecenterKey(key string) ControllerBuilderOption {
	return func(c *controllerImpl) {
		c.recenterKey = key
	}
}

// WithControllerLogger sets the logger used for mode changes.
func WithControllerLogger(logger *slog.Logger) ControllerBuilderOption {
	return func(c *controllerImpl) {
		if logger != nil {
			c.logger = logger
		}
	}
}
