package game_object

import (
	"github.com/Carmen-Shannon/oxy-solar/common"
	"github.com/Carmen-Shannon/oxy-solar/engine/model"
	"github.com/Carmen-Shannon/oxy-solar/engine/texture"
)

// GameObjectBuilderOption is a functional option for configuring a GameObject during construction.
type GameObjectBuilderOption func(*gameObject)

// WithID sets the ID of the GameObject.
//
// Parameters:
//   - id: unique identifier for the GameObject
//
// Returns:
//   - GameObjectBuilderOption: functional option to set the ID
func WithID(id uint64) GameObjectBuilderOption {
	return func(obj *gameObject) {
		obj.id = id
	}
}

// WithName sets the display name of the GameObject.
func WithName(name string) GameObjectBuilderOption {
	return func(obj *gameObject) {
		obj.name = name
	}
}

// WithEnabled sets whether the GameObject is enabled for rendering.
//
// Parameters:
//   - enabled: true to render the object, false to skip it
//
// Returns:
//   - GameObjectBuilderOption: functional option to set the Enabled state
func WithEnabled(enabled bool) GameObjectBuilderOption {
	return func(obj *gameObject) {
		obj.enabled.Store(enabled)
	}
}

// WithModel sets the geometry rendered for the GameObject.
//
// Parameters:
//   - m: the model
//
// Returns:
//   - GameObjectBuilderOption: functional option to set the Model
func WithModel(m model.Model) GameObjectBuilderOption {
	return func(obj *gameObject) {
		obj.mdl = m
	}
}

// WithTexture sets the color texture sampled across the model's UVs.
//
// Parameters:
//   - tex: the texture
//
// Returns:
//   - GameObjectBuilderOption: functional option to set the Texture
func WithTexture(tex texture.Texture) GameObjectBuilderOption {
	return func(obj *gameObject) {
		obj.tex = tex
	}
}

// WithPosition sets the initial world-space position.
//
// Parameters:
//   - x, y, z: position components
//
// Returns:
//   - GameObjectBuilderOption: functional option to set the position
func WithPosition(x, y, z float32) GameObjectBuilderOption {
	return func(obj *gameObject) {
		obj.position = common.Vec3{x, y, z}
	}
}

// WithRotation sets the initial Euler angles in radians.
//
// Parameters:
//   - rx, ry, rz: rotation components
//
// Returns:
//   - GameObjectBuilderOption: functional option to set the rotation
func WithRotation(rx, ry, rz float32) GameObjectBuilderOption {
	return func(obj *gameObject) {
		obj.rotation = common.Vec3{rx, ry, rz}
	}
}

// WithScale sets the per-axis scale.
//
// Parameters:
//   - sx, sy, sz: scale components
//
// Returns:
//   - GameObjectBuilderOption: functional option to set the scale
func WithScale(sx, sy, sz float32) GameObjectBuilderOption {
	return func(obj *gameObject) {
		obj.scale = common.Vec3{sx, sy, sz}
	}
}

// WithColor sets the base color.
func WithColor(c common.Color) GameObjectBuilderOption {
	return func(obj *gameObject) {
		obj.color = c
	}
}

// WithOpacity sets the alpha multiplier. Values below 1 enable blending.
func WithOpacity(opacity float32) GameObjectBuilderOption {
	return func(obj *gameObject) {
		obj.opacity = common.Clamp(opacity, 0, 1)
	}
}

// WithTransparent forces alpha blending, for textures carrying their own alpha.
func WithTransparent(transparent bool) GameObjectBuilderOption {
	return func(obj *gameObject) {
		obj.transparent = transparent
	}
}

// WithCull sets the face culling mode.
func WithCull(mode CullMode) GameObjectBuilderOption {
	return func(obj *gameObject) {
		obj.cull = mode
	}
}

// WithUnlit makes the object ignore scene lighting.
func WithUnlit(unlit bool) GameObjectBuilderOption {
	return func(obj *gameObject) {
		obj.unlit = unlit
	}
}
