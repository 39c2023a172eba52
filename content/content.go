// Package content holds the bodies and lights a solar system scene is built from.
//
// Each body implements only the capabilities it has: Content for everything, MeshProvider for
// anything drawn, Animatable for anything that moves per tick, SpeedAdjustable for anything whose
// motion can be sped up or slowed down, and LightProvider for light sources.
package content

import (
	"errors"
	"fmt"

	"github.com/Carmen-Shannon/oxy-solar/common"
	"github.com/Carmen-Shannon/oxy-solar/engine/game_object"
	"github.com/Carmen-Shannon/oxy-solar/engine/light"
	"github.com/Carmen-Shannon/oxy-solar/engine/texture"
)

// Body names accepted by New.
const (
	BodyEarth  = "earth"
	BodySun    = "sun"
	BodyCube   = "cube"
	BodyStars  = "stars"
	BodyLights = "lights"
)

// Key-press names that change the speed of every SpeedAdjustable body.
const (
	KeySpeedUp  = "+"
	KeySlowDown = "-"
)

// ErrUnknownBody is returned by New for a name it does not recognize.
var ErrUnknownBody = errors.New("content: unknown body")

// Speed limits shared by every SpeedAdjustable body.
const (
	MinSpeed float32 = 0.125
	MaxSpeed float32 = 8
)

// Content is anything that can be installed into a scene.
type Content interface {
	// Name returns the content's identifier. Animations are registered under it.
	Name() string
}

// MeshProvider is content that contributes renderable objects.
type MeshProvider interface {
	Content

	// Objects returns the objects to add to the scene.
	Objects() []game_object.GameObject
}

// Animatable is content that updates itself once per tick.
type Animatable interface {
	Content

	// Animate advances the content by one frame.
	Animate()
}

// SpeedAdjustable is animated content whose rate can be changed at runtime.
type SpeedAdjustable interface {
	// SpeedUp doubles the animation rate, up to MaxSpeed.
	SpeedUp()

	// SlowDown halves the animation rate, down to MinSpeed.
	SlowDown()

	// Speed returns the current rate multiplier.
	Speed() float32
}

// LightProvider is content that contributes light sources.
type LightProvider interface {
	Content

	// Lights returns the lights to add to the scene.
	Lights() []light.Light
}

// Names lists every body New can build, in install order.
func Names() []string {
	return []string{BodyStars, BodyLights, BodySun, BodyEarth, BodyCube}
}

// New builds a body by name.
//
// Parameters:
//   - name: one of the Body* constants
//   - loader: texture loader for textured bodies, may be nil for untextured rendering
//
// Returns:
//   - Content: the body
//   - error: ErrUnknownBody if the name is not recognized
func New(name string, loader texture.Loader) (Content, error) {
	switch name {
	case BodyEarth:
		return NewEarth(loader), nil
	case BodySun:
		return NewSun(), nil
	case BodyCube:
		return NewCube(), nil
	case BodyStars:
		return NewStars(loader), nil
	case BodyLights:
		return NewLights(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBody, name)
	}
}

// rate is the SpeedAdjustable implementation shared by the animated bodies.
type rate struct {
	speed float32
}

func newRate() rate {
	return rate{speed: 1}
}

func (r *rate) SpeedUp() {
	r.speed = common.Clamp(r.speed*2, MinSpeed, MaxSpeed)
}

func (r *rate) SlowDown() {
	r.speed = common.Clamp(r.speed/2, MinSpeed, MaxSpeed)
}

func (r *rate) Speed() float32 {
	return r.speed
}

// load returns nil when no loader is configured so bodies fall back to flat color.
func load(loader texture.Loader, path string) texture.Texture {
	if loader == nil {
		return nil
	}
	return loader.Load(path)
}
