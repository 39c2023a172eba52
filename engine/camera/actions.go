package camera

import "github.com/Carmen-Shannon/oxy-solar/common"

// Action is a camera motion bound to a held key.
type Action int

const (
	ActionNone Action = iota
	MoveForward
	MoveBack
	MoveLeft
	MoveRight
	MoveUp
	MoveDown
	RollLeft
	RollRight
	PitchUp
	PitchDown
	YawLeft
	YawRight
)

var actionNames = [...]string{
	ActionNone:  "none",
	MoveForward: "move forward",
	MoveBack:    "move back",
	MoveLeft:    "move left",
	MoveRight:   "move right",
	MoveUp:      "move up",
	MoveDown:    "move down",
	RollLeft:    "roll left",
	RollRight:   "roll right",
	PitchUp:     "pitch up",
	PitchDown:   "pitch down",
	YawLeft:     "yaw left",
	YawRight:    "yaw right",
}

func (a Action) String() string {
	if a < 0 || int(a) >= len(actionNames) {
		return "unknown"
	}
	return actionNames[a]
}

// IsTranslation reports whether the action moves the camera rather than turning it.
func (a Action) IsTranslation() bool {
	return a >= MoveForward && a <= MoveDown
}

// Binding pairs a key with the action it drives while held.
type Binding struct {
	Key    common.Key
	Action Action
}

// DefaultBindings returns the keyboard fly controls in display order.
//
// Returns:
//   - []Binding: a fresh copy of the default key table
func DefaultBindings() []Binding {
	return []Binding{
		{common.KeyW, MoveForward},
		{common.KeyS, MoveBack},
		{common.KeyA, MoveLeft},
		{common.KeyD, MoveRight},
		{common.KeyZ, MoveUp},
		{common.KeyX, MoveDown},
		{common.KeyQ, RollLeft},
		{common.KeyE, RollRight},
		{common.KeyUp, PitchUp},
		{common.KeyDown, PitchDown},
		{common.KeyLeft, YawLeft},
		{common.KeyRight, YawRight},
	}
}
