package camera

// Mode is the rig's input-handling strategy. Exactly one mode is active at a time.
type Mode int

const (
	// ModeMouseFollow eases the camera toward the pointer while facing the scene.
	ModeMouseFollow Mode = iota

	// ModeKeyFly moves and turns the camera while bound keys are held.
	ModeKeyFly
)

func (m Mode) String() string {
	switch m {
	case ModeMouseFollow:
		return "mouse-follow"
	case ModeKeyFly:
		return "key-fly"
	default:
		return "unknown"
	}
}

// Indicator mirrors the rig's state on screen. The overlay implements it.
type Indicator interface {
	Show()
	Hide()
	Highlight(key string)
	Trivialize(key string)
	TrivializeAll()
}

// Controller drives a Camera from input events in one of two modes.
//
// In ModeMouseFollow the pointer position is recorded and a per-tick animation eases the camera
// toward it. In ModeKeyFly every held bound key owns one per-tick animation, named after the key,
// that applies the key's Action. Translations are clamped to a cube around the origin: a step that
// would leave it is skipped.
type Controller interface {
	// Mode returns the active mode.
	Mode() Mode

	// Toggle switches to the other mode. The current mode's subscriptions and motion animations
	// are removed, the other mode is installed, the camera returns to its canonical pose, and the
	// indicator is shown for ModeKeyFly or hidden for ModeMouseFollow.
	Toggle()

	// Recenter turns the camera to face the scene target without moving it.
	Recenter()

	// Active returns the names of the keys currently driving a motion animation, in press order.
	Active() []string

	// Apply performs one step of action on the camera.
	//
	// Parameters:
	//   - action: the action to apply
	Apply(action Action)

	// Limit returns the half-extent of the cube translations are clamped to.
	Limit() float32

	// Camera returns the driven camera.
	Camera() Camera

	// Close removes every subscription and animation the controller installed.
	Close()
}
