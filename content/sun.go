package content

import (
	"github.com/Carmen-Shannon/oxy-solar/common"
	"github.com/Carmen-Shannon/oxy-solar/engine/game_object"
	"github.com/Carmen-Shannon/oxy-solar/engine/model"
)

const sunRadius = 1121

// sunGlow describes one translucent shell around the sun's core.
type sunGlow struct {
	divisor float32
	opacity float32
	color   common.Color
}

var sunGlows = []sunGlow{
	{9.7, 0.3, common.ColorFromRGB(255, 214, 0)},
	{9.4, 0.2, common.ColorFromRGB(255, 190, 0)},
	{9.1, 0.1, common.ColorFromRGB(255, 164, 0)},
}

// Sun is an unlit yellow core wrapped in three fading glow shells. Only the core spins.
type Sun struct {
	rate
	core  game_object.GameObject
	glows []game_object.GameObject
}

var (
	_ MeshProvider    = &Sun{}
	_ Animatable      = &Sun{}
	_ SpeedAdjustable = &Sun{}
)

// NewSun builds the core and its glow shells, all centered on the origin.
func NewSun() *Sun {
	s := &Sun{
		rate: newRate(),
		core: game_object.NewGameObject(
			game_object.WithName("sun"),
			game_object.WithModel(model.NewSphere(sunRadius/10.0, 80, 80)),
			game_object.WithColor(common.ColorFromRGB(228, 224, 0)),
			game_object.WithUnlit(true),
		),
	}
	for _, g := range sunGlows {
		s.glows = append(s.glows, game_object.NewGameObject(
			game_object.WithName("sun-glow"),
			game_object.WithModel(model.NewSphere(sunRadius/g.divisor, 80, 80)),
			game_object.WithColor(g.color),
			game_object.WithOpacity(g.opacity),
			game_object.WithUnlit(true),
		))
	}
	return s
}

func (s *Sun) Name() string {
	return BodySun
}

func (s *Sun) Objects() []game_object.GameObject {
	return append([]game_object.GameObject{s.core}, s.glows...)
}

func (s *Sun) Animate() {
	d := 0.01 * s.speed
	s.core.Rotate(d, d, 0)
}
