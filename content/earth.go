package content

import (
	"github.com/Carmen-Shannon/oxy-solar/engine/game_object"
	"github.com/Carmen-Shannon/oxy-solar/engine/model"
	"github.com/Carmen-Shannon/oxy-solar/engine/texture"
)

// Earth texture paths, relative to the loader's asset directory.
const (
	EarthMap           = "earthmap2k.jpg"
	EarthCloudMap      = "earthcloudmap.jpg"
	EarthCloudMapTrans = "earthcloudmaptrans.jpg"
)

// Earth is a textured globe with a translucent cloud shell spinning slightly slower than the surface.
type Earth struct {
	rate
	surface game_object.GameObject
	clouds  game_object.GameObject
}

var (
	_ MeshProvider    = &Earth{}
	_ Animatable      = &Earth{}
	_ SpeedAdjustable = &Earth{}
)

// NewEarth builds the globe and its cloud layer. The cloud texture is composited from the cloud
// color map and its transparency map.
func NewEarth(loader texture.Loader) *Earth {
	var clouds texture.Texture
	if loader != nil {
		clouds = loader.LoadAlphaComposite(EarthCloudMap, EarthCloudMapTrans)
	}
	return &Earth{
		rate: newRate(),
		surface: game_object.NewGameObject(
			game_object.WithName("earth"),
			game_object.WithModel(model.NewSphere(150, 64, 64)),
			game_object.WithTexture(load(loader, EarthMap)),
		),
		clouds: game_object.NewGameObject(
			game_object.WithName("earth-clouds"),
			game_object.WithModel(model.NewSphere(155, 64, 64)),
			game_object.WithTexture(clouds),
			game_object.WithOpacity(0.8),
			game_object.WithTransparent(true),
			game_object.WithCull(game_object.CullNone),
		),
	}
}

func (e *Earth) Name() string {
	return BodyEarth
}

func (e *Earth) Objects() []game_object.GameObject {
	return []game_object.GameObject{e.surface, e.clouds}
}

func (e *Earth) Animate() {
	e.surface.Rotate(0, 0.005*e.speed, 0)
	e.clouds.Rotate(0, 0.0045*e.speed, 0)
}
