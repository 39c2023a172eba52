package scene

import (
	"github.com/Carmen-Shannon/oxy-solar/engine/game_object"
	"github.com/Carmen-Shannon/oxy-solar/engine/light"
)

// SceneBuilderOption is a functional option for configuring a Scene.
// Use the With* functions to create options.
type SceneBuilderOption func(s *scene)

// WithName sets the scene's identifier.
//
// Parameters:
//   - name: the scene name
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithName(name string) SceneBuilderOption {
	return func(s *scene) {
		s.name = name
	}
}

// WithObjects adds initial objects to the scene.
// Objects without IDs will be assigned new IDs.
//
// Parameters:
//   - objects: the objects to add
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithObjects(objects ...game_object.GameObject) SceneBuilderOption {
	return func(s *scene) {
		for _, obj := range objects {
			s.Add(obj)
		}
	}
}

// WithLights adds initial lights to the scene.
//
// Parameters:
//   - lights: the lights to add
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithLights(lights ...light.Light) SceneBuilderOption {
	return func(s *scene) {
		for _, l := range lights {
			s.AddLight(l)
		}
	}
}
