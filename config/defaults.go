package config

// Panel selectors the rig highlights into.
const (
	MovementPanel = ".info-movement"
	RotationPanel = ".info-rotation"
)

// Default returns the built-in configuration: a 1280x720 window looking at the Earth from 500
// units against the starfield.
func Default() *Config {
	return &Config{
		Window: WindowConfig{
			Title:  "Solar System",
			Width:  1280,
			Height: 720,
		},
		Camera: CameraConfig{
			Fov:      50,
			Near:     0.1,
			Far:      4100,
			Distance: 500,
		},
		Rig: RigConfig{
			MovementStep:  5,
			RotationStep:  0.01,
			FollowGain:    1000,
			FollowDamping: 0.6,
			Limit:         1000,
			ToggleKey:     "g",
			RecenterKey:   "c",
		},
		Renderer: RendererConfig{
			VSync: true,
			MSAA:  4,
		},
		Textures: TextureConfig{
			AssetDir: "images",
		},
		Content: ContentConfig{
			Bodies: []string{"stars", "lights", "earth"},
		},
		Overlay: OverlayConfig{
			Title: "Solar System",
			Panels: []PanelConfig{
				{
					Selector: MovementPanel,
					Title:    "Movement",
					Controls: []ControlConfig{
						{Key: "w", Label: "forward"},
						{Key: "s", Label: "back"},
						{Key: "a", Label: "left"},
						{Key: "d", Label: "right"},
						{Key: "z", Label: "up"},
						{Key: "x", Label: "down"},
					},
				},
				{
					Selector: RotationPanel,
					Title:    "Rotation",
					Controls: []ControlConfig{
						{Key: "q", Label: "roll left"},
						{Key: "e", Label: "roll right"},
						{Key: "ArrowUp", Label: "pitch up"},
						{Key: "ArrowDown", Label: "pitch down"},
						{Key: "ArrowLeft", Label: "yaw left"},
						{Key: "ArrowRight", Label: "yaw right"},
					},
				},
			},
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}
