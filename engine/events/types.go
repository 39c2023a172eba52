package events

import "github.com/Carmen-Shannon/oxy-solar/common"

// Channel names a class of input event multiplexed by the Registry.
type Channel string

const (
	// ChannelPointerMove fires whenever the cursor moves inside the viewport.
	ChannelPointerMove Channel = "pointer-move"

	// ChannelKeyDown fires on key press, and again with Repeat set while the key is held.
	ChannelKeyDown Channel = "key-down"

	// ChannelKeyUp fires on key release.
	ChannelKeyUp Channel = "key-up"

	// ChannelKeyPress fires once per produced character (text input), e.g. "g" or "+".
	ChannelKeyPress Channel = "key-press"
)

// Event is a single input event as delivered to subscribers.
type Event struct {
	// Channel is the channel the event was fired on.
	Channel Channel

	// Key is the virtual key code for key-down/key-up events.
	Key common.Key

	// Name is the key name ("w", "ArrowUp") or the produced character for key-press events.
	Name string

	// Repeat reports an auto-repeated key-down.
	Repeat bool

	// X and Y are the cursor position in pixels for pointer-move events.
	X, Y float64

	// Width and Height are the viewport size in pixels when the event was fired.
	Width, Height int
}

// Callback receives events for one subscriber.
type Callback func(ev Event)

// Source is the system-level event provider the Registry attaches to.
// The Registry guarantees at most one attached handler per channel at any time.
type Source interface {
	// Attach installs the single system-level handler for the channel.
	//
	// Parameters:
	//   - ch: the channel to attach
	//   - handler: the function receiving every event fired on the channel
	Attach(ch Channel, handler Callback)

	// Detach removes the handler for the channel. Detaching an unattached channel does nothing.
	//
	// Parameters:
	//   - ch: the channel to detach
	Detach(ch Channel)
}
