package light

import "github.com/Carmen-Shannon/oxy-solar/common"

// LightBuilderOption is a function that configures a Light instance during construction.
type LightBuilderOption func(*lightImpl)

// WithDirection is an option builder that sets the direction the light travels in.
// The direction is normalized before storing.
//
// Parameters:
//   - x: the x direction component
//   - y: the y direction component
//   - z: the z direction component
//
// Returns:
//   - LightBuilderOption: a function that applies the direction option to a lightImpl
func WithDirection(x, y, z float32) LightBuilderOption {
	return func(l *lightImpl) {
		l.direction = common.Vec3{x, y, z}.Normalize()
	}
}

// WithSourcePosition points a directional light from the given position toward the origin.
//
// Parameters:
//   - x, y, z: where the light shines from
//
// Returns:
//   - LightBuilderOption: a function that applies the direction option to a lightImpl
func WithSourcePosition(x, y, z float32) LightBuilderOption {
	return WithDirection(-x, -y, -z)
}

// WithColor is an option builder that sets the RGB color of the light.
//
// Parameters:
//   - c: the color
//
// Returns:
//   - LightBuilderOption: a function that applies the color option to a lightImpl
func WithColor(c common.Color) LightBuilderOption {
	return func(l *lightImpl) {
		l.color = c
	}
}

// WithIntensity is an option builder that sets the scalar intensity multiplier.
//
// Parameters:
//   - intensity: the intensity value
//
// Returns:
//   - LightBuilderOption: a function that applies the intensity option to a lightImpl
func WithIntensity(intensity float32) LightBuilderOption {
	return func(l *lightImpl) {
		l.intensity = intensity
	}
}

// WithEnabled is an option builder that sets whether the light is active.
//
// Parameters:
//   - enabled: true to enable the light
//
// Returns:
//   - LightBuilderOption: a function that applies the enabled option to a lightImpl
func WithEnabled(enabled bool) LightBuilderOption {
	return func(l *lightImpl) {
		l.enabled = enabled
	}
}
