package scene

import (
	"testing"

	"github.com/Carmen-Shannon/oxy-solar/engine/game_object"
	"github.com/Carmen-Shannon/oxy-solar/engine/light"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddAssignsIDs(t *testing.T) {
	s := NewScene()
	a := game_object.NewGameObject(game_object.WithName("a"))
	b := game_object.NewGameObject(game_object.WithName("b"), game_object.WithID(10))
	c := game_object.NewGameObject(game_object.WithName("c"))

	assert.Equal(t, uint64(1), s.Add(a))
	assert.Equal(t, uint64(10), s.Add(b))
	assert.Equal(t, uint64(11), s.Add(c))
	assert.Equal(t, uint64(1), s.Add(a), "re-adding returns the existing ID")
	assert.Equal(t, 3, s.Count())

	dup := game_object.NewGameObject(game_object.WithID(10))
	assert.Equal(t, uint64(12), s.Add(dup), "colliding IDs are reassigned")
	assert.Same(t, b, s.Get(10))
}

func TestRemove(t *testing.T) {
	a := game_object.NewGameObject()
	s := NewScene(WithObjects(a))
	s.Remove(99)
	require.Equal(t, 1, s.Count())

	s.Remove(a.ID())
	assert.Zero(t, s.Count())
	assert.Nil(t, s.Get(a.ID()))
}

func TestObjectsDrawOrder(t *testing.T) {
	glow := game_object.NewGameObject(game_object.WithName("glow"), game_object.WithOpacity(0.3))
	core := game_object.NewGameObject(game_object.WithName("core"))
	hidden := game_object.NewGameObject(game_object.WithName("hidden"), game_object.WithEnabled(false))
	cube := game_object.NewGameObject(game_object.WithName("cube"))
	s := NewScene(WithObjects(glow, core, hidden, cube))

	var names []string
	for _, obj := range s.Objects() {
		names = append(names, obj.Name())
	}
	assert.Equal(t, []string{"core", "cube", "glow"}, names)
}

func TestLights(t *testing.T) {
	ambient := light.NewLight(light.LightTypeAmbient)
	sun := light.NewLight(light.LightTypeDirectional)
	s := NewScene(WithName("solar"), WithLights(ambient, sun, ambient))

	assert.Equal(t, "solar", s.Name())
	assert.Len(t, s.Lights(), 2)

	s.RemoveLight(ambient)
	assert.Equal(t, []light.Light{sun}, s.Lights())

	s.Clear()
	assert.Empty(t, s.Lights())
	assert.Zero(t, s.Count())
}
