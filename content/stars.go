package content

import (
	"github.com/Carmen-Shannon/oxy-solar/engine/game_object"
	"github.com/Carmen-Shannon/oxy-solar/engine/model"
	"github.com/Carmen-Shannon/oxy-solar/engine/texture"
)

// StarfieldMap is the sky texture path, relative to the loader's asset directory.
const StarfieldMap = "galaxy_starfield.jpg"

// Stars is the sky: a large unlit sphere seen from the inside.
type Stars struct {
	sky game_object.GameObject
}

var _ MeshProvider = &Stars{}

func NewStars(loader texture.Loader) *Stars {
	return &Stars{
		sky: game_object.NewGameObject(
			game_object.WithName("stars"),
			game_object.WithModel(model.NewSphere(2000, 32, 32)),
			game_object.WithTexture(load(loader, StarfieldMap)),
			game_object.WithCull(game_object.CullFront),
			game_object.WithUnlit(true),
		),
	}
}

func (s *Stars) Name() string {
	return BodyStars
}

func (s *Stars) Objects() []game_object.GameObject {
	return []game_object.GameObject{s.sky}
}
