package content

import (
	"github.com/Carmen-Shannon/oxy-solar/common"
	"github.com/Carmen-Shannon/oxy-solar/engine/game_object"
	"github.com/Carmen-Shannon/oxy-solar/engine/model"
)

// Cube is a green 1x2x1 box tumbling on X and Y, useful as a minimal scene.
type Cube struct {
	rate
	box game_object.GameObject
}

var (
	_ MeshProvider    = &Cube{}
	_ Animatable      = &Cube{}
	_ SpeedAdjustable = &Cube{}
)

func NewCube() *Cube {
	return &Cube{
		rate: newRate(),
		box: game_object.NewGameObject(
			game_object.WithName("cube"),
			game_object.WithModel(model.NewBox(1, 2, 1)),
			game_object.WithColor(common.ColorFromHex(0x00ff00)),
		),
	}
}

func (c *Cube) Name() string {
	return BodyCube
}

func (c *Cube) Objects() []game_object.GameObject {
	return []game_object.GameObject{c.box}
}

func (c *Cube) Animate() {
	d := 0.01 * c.speed
	c.box.Rotate(d, d, 0)
}
