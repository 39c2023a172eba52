package scene

import (
	"slices"

	"github.com/Carmen-Shannon/oxy-solar/engine/game_object"
	"github.com/Carmen-Shannon/oxy-solar/engine/light"
)

// Scene is the retained set of renderable objects and lights drawn each frame.
// It is owned by the render thread and performs no locking.
type Scene interface {
	// Name returns the scene's identifier.
	Name() string

	// SetName sets the scene's identifier.
	SetName(name string)

	// Add inserts an object and returns its ID. Objects without an ID are assigned the next free one.
	// Adding an object that is already present is a no-op that returns its ID.
	//
	// Parameters:
	//   - obj: the GameObject to add
	//
	// Returns:
	//   - uint64: the object ID
	Add(obj game_object.GameObject) uint64

	// Get retrieves an object by its ID. Returns nil if not found.
	//
	// Parameters:
	//   - id: the object's unique ID
	//
	// Returns:
	//   - game_object.GameObject: the object or nil
	Get(id uint64) game_object.GameObject

	// Remove deletes an object by ID. Unknown IDs are ignored.
	//
	// Parameters:
	//   - id: the object's unique ID
	Remove(id uint64)

	// Count returns the number of objects in the scene.
	Count() int

	// Objects returns enabled objects in draw order: opaque objects first, then transparent ones,
	// each group in insertion order.
	//
	// Returns:
	//   - []game_object.GameObject: the objects to draw
	Objects() []game_object.GameObject

	// Clear removes all objects and lights.
	Clear()

	// AddLight adds a light source to the scene.
	//
	// Parameters:
	//   - l: the Light to add
	AddLight(l light.Light)

	// RemoveLight removes a light source from the scene by reference.
	//
	// Parameters:
	//   - l: the Light to remove
	RemoveLight(l light.Light)

	// Lights returns all lights currently registered in the scene.
	//
	// Returns:
	//   - []light.Light: the scene's light list
	Lights() []light.Light
}

type scene struct {
	name    string
	objects []game_object.GameObject
	lights  []light.Light
	nextID  uint64
}

var _ Scene = &scene{}

// NewScene creates an empty Scene.
//
// Parameters:
//   - options: functional options to configure the scene
//
// Returns:
//   - Scene: the newly created scene
func NewScene(options ...SceneBuilderOption) Scene {
	s := &scene{
		name:   "main",
		nextID: 1,
	}
	for _, opt := range options {
		opt(s)
	}
	return s
}

func (s *scene) Name() string {
	return s.name
}

func (s *scene) SetName(name string) {
	s.name = name
}

func (s *scene) Add(obj game_object.GameObject) uint64 {
	if slices.Contains(s.objects, obj) {
		return obj.ID()
	}
	if obj.ID() == 0 || s.Get(obj.ID()) != nil {
		obj.SetID(s.nextID)
	}
	s.nextID = max(s.nextID, obj.ID()+1)
	s.objects = append(s.objects, obj)
	return obj.ID()
}

func (s *scene) Get(id uint64) game_object.GameObject {
	if i := s.index(id); i != -1 {
		return s.objects[i]
	}
	return nil
}

func (s *scene) Remove(id uint64) {
	if i := s.index(id); i != -1 {
		s.objects = slices.Delete(s.objects, i, i+1)
	}
}

func (s *scene) Count() int {
	return len(s.objects)
}

func (s *scene) Objects() []game_object.GameObject {
	out := make([]game_object.GameObject, 0, len(s.objects))
	for _, transparent := range []bool{false, true} {
		for _, obj := range s.objects {
			if obj.Enabled() && obj.Transparent() == transparent {
				out = append(out, obj)
			}
		}
	}
	return out
}

func (s *scene) Clear() {
	s.objects = nil
	s.lights = nil
}

func (s *scene) AddLight(l light.Light) {
	if !slices.Contains(s.lights, l) {
		s.lights = append(s.lights, l)
	}
}

func (s *scene) RemoveLight(l light.Light) {
	if i := slices.Index(s.lights, l); i != -1 {
		s.lights = slices.Delete(s.lights, i, i+1)
	}
}

func (s *scene) Lights() []light.Light {
	return s.lights
}

func (s *scene) index(id uint64) int {
	return slices.IndexFunc(s.objects, func(o game_object.GameObject) bool {
		return o.ID() == id
	})
}
