package light

import "github.com/Carmen-Shannon/oxy-solar/common"

// LightType identifies the kind of light source.
type LightType int

const (
	// LightTypeAmbient lights every fragment uniformly regardless of its normal.
	LightTypeAmbient LightType = iota

	// LightTypeDirectional represents a light with no position, only direction.
	// Used for large distant sources like the sun. Affects all fragments
	// uniformly with no distance attenuation.
	LightTypeDirectional
)

func (t LightType) String() string {
	switch t {
	case LightTypeAmbient:
		return "ambient"
	case LightTypeDirectional:
		return "directional"
	default:
		return "unknown"
	}
}

// lightImpl is the implementation of the Light interface.
type lightImpl struct {
	lightType LightType
	direction common.Vec3
	color     common.Color
	intensity float32
	enabled   bool
}

// Light defines the interface for a light source in the scene.
//
// Lights contribute to the final pixel color of every lit node. Ambient lights add a constant
// term; the first enabled directional light adds a Lambert term along its direction.
// Lights are packed into a single uniform each frame via the gpu_types helpers.
type Light interface {
	// Type returns the kind of light source.
	//
	// Returns:
	//   - LightType: the light type (ambient or directional)
	Type() LightType

	// Direction returns the normalized direction the light travels in.
	// Meaningless for ambient lights.
	//
	// Returns:
	//   - common.Vec3: normalized direction as (x, y, z)
	Direction() common.Vec3

	// Color returns the RGB color of the light.
	//
	// Returns:
	//   - common.Color: color as (r, g, b)
	Color() common.Color

	// Intensity returns the scalar intensity multiplier for the light.
	//
	// Returns:
	//   - float32: the intensity value
	Intensity() float32

	// Enabled returns whether this light is active for rendering.
	// Disabled lights are skipped during GPU packing.
	//
	// Returns:
	//   - bool: true if the light is enabled
	Enabled() bool

	// SetDirection sets the direction of the light and normalizes it.
	//
	// Parameters:
	//   - x, y, z: direction components (will be normalized)
	SetDirection(x, y, z float32)

	// SetColor sets the RGB color of the light.
	//
	// Parameters:
	//   - c: the color
	SetColor(c common.Color)

	// SetIntensity sets the scalar intensity multiplier.
	//
	// Parameters:
	//   - intensity: the intensity value
	SetIntensity(intensity float32)

	// SetEnabled enables or disables the light for rendering.
	//
	// Parameters:
	//   - enabled: true to enable
	SetEnabled(enabled bool)
}

var _ Light = &lightImpl{}

// NewLight creates a new Light of the specified type with sensible defaults and
// any provided options applied.
//
// Parameters:
//   - lightType: the kind of light to create
//   - opts: variadic list of LightBuilderOption functions to configure the light
//
// Returns:
//   - Light: a new Light instance
func NewLight(lightType LightType, opts ...LightBuilderOption) Light {
	l := &lightImpl{
		lightType: lightType,
		direction: common.Vec3{0, -1, 0},
		color:     common.Color{1, 1, 1},
		intensity: 1.0,
		enabled:   true,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

func (l *lightImpl) Type() LightType {
	return l.lightType
}

func (l *lightImpl) Direction() common.Vec3 {
	return l.direction
}

func (l *lightImpl) Color() common.Color {
	return l.color
}

func (l *lightImpl) Intensity() float32 {
	return l.intensity
}

func (l *lightImpl) Enabled() bool {
	return l.enabled
}

func (l *lightImpl) SetDirection(x, y, z float32) {
	l.direction = common.Vec3{x, y, z}.Normalize()
}

func (l *lightImpl) SetColor(c common.Color) {
	l.color = c
}

func (l *lightImpl) SetIntensity(intensity float32) {
	l.intensity = intensity
}

func (l *lightImpl) SetEnabled(enabled bool) {
	l.enabled = enabled
}
