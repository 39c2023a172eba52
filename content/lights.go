package content

import (
	"github.com/Carmen-Shannon/oxy-solar/common"
	"github.com/Carmen-Shannon/oxy-solar/engine/light"
)

// Lights is the scene's lighting rig: a dim ambient fill and a grey key light from (5, 5, 5).
type Lights struct {
	ambient     light.Light
	directional light.Light
}

var _ LightProvider = &Lights{}

func NewLights() *Lights {
	return &Lights{
		ambient: light.NewLight(light.LightTypeAmbient,
			light.WithColor(common.ColorFromHex(0x222222)),
			light.WithIntensity(1),
		),
		directional: light.NewLight(light.LightTypeDirectional,
			light.WithColor(common.ColorFromHex(0xcccccc)),
			light.WithIntensity(0.8),
			light.WithSourcePosition(5, 5, 5),
		),
	}
}

func (l *Lights) Name() string {
	return BodyLights
}

func (l *Lights) Lights() []light.Light {
	return []light.Light{l.ambient, l.directional}
}
