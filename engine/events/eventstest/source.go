// Package eventstest provides an in-memory events.Source for tests.
package eventstest

import (
	"github.com/Carmen-Shannon/oxy-solar/common"
	"github.com/Carmen-Shannon/oxy-solar/engine/events"
)

// Source records attach/detach calls and lets tests fire events through attached handlers,
// the same way a window would.
type Source struct {
	handlers map[events.Channel]events.Callback

	// Attaches and Detaches count calls per channel.
	Attaches map[events.Channel]int
	Detaches map[events.Channel]int

	// Width and Height are stamped onto fired events.
	Width, Height int
}

var _ events.Source = &Source{}

// NewSource returns an empty Source with an 800x600 viewport.
func NewSource() *Source {
	return &Source{
		handlers: make(map[events.Channel]events.Callback),
		Attaches: make(map[events.Channel]int),
		Detaches: make(map[events.Channel]int),
		Width:    800,
		Height:   600,
	}
}

func (s *Source) Attach(ch events.Channel, handler events.Callback) {
	s.handlers[ch] = handler
	s.Attaches[ch]++
}

func (s *Source) Detach(ch events.Channel) {
	if _, ok := s.handlers[ch]; !ok {
		return
	}
	delete(s.handlers, ch)
	s.Detaches[ch]++
}

// Attached reports whether a handler is installed for the channel.
func (s *Source) Attached(ch events.Channel) bool {
	_, ok := s.handlers[ch]
	return ok
}

// Live returns the number of installed handlers.
func (s *Source) Live() int {
	return len(s.handlers)
}

// Fire delivers ev to the channel's handler, if any. It reports whether a handler ran.
func (s *Source) Fire(ev events.Event) bool {
	h, ok := s.handlers[ev.Channel]
	if !ok {
		return false
	}
	if ev.Width == 0 && ev.Height == 0 {
		ev.Width, ev.Height = s.Width, s.Height
	}
	h(ev)
	return true
}

// KeyDown fires a key-down event for k.
func (s *Source) KeyDown(k common.Key, repeat bool) bool {
	return s.Fire(events.Event{Channel: events.ChannelKeyDown, Key: k, Name: k.Name(), Repeat: repeat})
}

// KeyUp fires a key-up event for k.
func (s *Source) KeyUp(k common.Key) bool {
	return s.Fire(events.Event{Channel: events.ChannelKeyUp, Key: k, Name: k.Name()})
}

// KeyPress fires a key-press event carrying the produced character.
func (s *Source) KeyPress(char string) bool {
	return s.Fire(events.Event{Channel: events.ChannelKeyPress, Name: char})
}

// PointerMove fires a pointer-move event at (x, y).
func (s *Source) PointerMove(x, y float64) bool {
	return s.Fire(events.Event{Channel: events.ChannelPointerMove, X: x, Y: y})
}
