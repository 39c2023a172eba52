package game_object

import (
	"sync/atomic"

	"github.com/Carmen-Shannon/oxy-solar/common"
	"github.com/Carmen-Shannon/oxy-solar/engine/model"
	"github.com/Carmen-Shannon/oxy-solar/engine/texture"
)

// CullMode selects which triangle faces are discarded when drawing.
type CullMode int

const (
	// CullBack draws outward faces only.
	CullBack CullMode = iota

	// CullFront draws inward faces only, for shells viewed from inside such as a sky sphere.
	CullFront

	// CullNone draws both faces.
	CullNone
)

type gameObject struct {
	id      uint64
	name    string
	enabled atomic.Bool
	mdl     model.Model
	tex     texture.Texture

	position common.Vec3
	rotation common.Vec3
	scale    common.Vec3

	color   common.Color
	opacity float32
	cull    CullMode
	unlit   bool

	// transparent forces alpha blending for textures with an alpha channel
	transparent bool
}

// GameObject is a renderable scene entity: a Model placed in the world with its own material
// settings. Rotation is stored as Euler angles composed as Y * X * Z.
// Transform and material accessors are meant for the render thread.
type GameObject interface {
	// ID returns the object's unique identifier.
	//
	// Returns:
	//   - uint64: the object ID
	ID() uint64

	// SetID assigns the object's identifier. Scenes assign IDs to objects added without one.
	//
	// Parameters:
	//   - id: the new ID
	SetID(id uint64)

	// Name returns the object's display name.
	Name() string

	// Enabled returns whether this object is enabled for rendering.
	//
	// Returns:
	//   - bool: true if enabled
	Enabled() bool

	// SetEnabled toggles rendering of the object.
	SetEnabled(enabled bool)

	// Model returns the Model associated with this object, or nil if not set.
	//
	// Returns:
	//   - model.Model: the associated model or nil
	Model() model.Model

	// Texture returns the color texture, or nil for an untextured object.
	Texture() texture.Texture

	// Position returns the world-space position.
	Position() common.Vec3

	// SetPosition sets the world-space position.
	SetPosition(p common.Vec3)

	// Rotation returns the Euler angles in radians.
	Rotation() common.Vec3

	// SetRotation sets the Euler angles in radians.
	SetRotation(r common.Vec3)

	// Rotate adds to the Euler angles.
	//
	// Parameters:
	//   - dx, dy, dz: radians to add around X, Y and Z
	Rotate(dx, dy, dz float32)

	// Scale returns the per-axis scale factors.
	Scale() common.Vec3

	// Color returns the base color the texture is multiplied with.
	Color() common.Color

	// Opacity returns the object's alpha multiplier in [0, 1].
	Opacity() float32

	// Transparent reports whether the object needs alpha blending.
	Transparent() bool

	// Cull returns the face culling mode.
	Cull() CullMode

	// Unlit reports whether the object ignores scene lighting.
	Unlit() bool

	// ModelMatrix writes the object's 4x4 column-major world matrix into out.
	//
	// Parameters:
	//   - out: destination slice (at least 16 elements)
	ModelMatrix(out []float32)
}

var _ GameObject = &gameObject{}

// NewGameObject creates a new GameObject with identity transform, white color and full opacity.
//
// Parameters:
//   - options: functional options to configure the object
//
// Returns:
//   - GameObject: the newly created object
func NewGameObject(options ...GameObjectBuilderOption) GameObject {
	obj := &gameObject{
		scale:   common.Vec3{1, 1, 1},
		color:   common.Color{1, 1, 1},
		opacity: 1,
	}
	obj.enabled.Store(true)
	for _, opt := range options {
		opt(obj)
	}
	return obj
}

func (o *gameObject) ID() uint64 {
	return o.id
}

func (o *gameObject) SetID(id uint64) {
	o.id = id
}

func (o *gameObject) Name() string {
	return o.name
}

func (o *gameObject) Enabled() bool {
	return o.enabled.Load()
}

func (o *gameObject) SetEnabled(enabled bool) {
	o.enabled.Store(enabled)
}

func (o *gameObject) Model() model.Model {
	return o.mdl
}

func (o *gameObject) Texture() texture.Texture {
	return o.tex
}

func (o *gameObject) Position() common.Vec3 {
	return o.position
}

func (o *gameObject) SetPosition(p common.Vec3) {
	o.position = p
}

func (o *gameObject) Rotation() common.Vec3 {
	return o.rotation
}

func (o *gameObject) SetRotation(r common.Vec3) {
	o.rotation = r
}

func (o *gameObject) Rotate(dx, dy, dz float32) {
	o.rotation = o.rotation.Add(common.Vec3{dx, dy, dz})
}

func (o *gameObject) Scale() common.Vec3 {
	return o.scale
}

func (o *gameObject) Color() common.Color {
	return o.color
}

func (o *gameObject) Opacity() float32 {
	return o.opacity
}

func (o *gameObject) Transparent() bool {
	return o.transparent || o.opacity < 1
}

func (o *gameObject) Cull() CullMode {
	return o.cull
}

func (o *gameObject) Unlit() bool {
	return o.unlit
}

func (o *gameObject) ModelMatrix(out []float32) {
	common.BuildModelMatrix(out, o.position, o.rotation, o.scale)
}
