package window

import (
	"testing"

	"github.com/Carmen-Shannon/oxy-solar/common"
	"github.com/Carmen-Shannon/oxy-solar/engine/events"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeyEvent(t *testing.T) {
	tests := []struct {
		name   string
		key    glfw.Key
		action glfw.Action
		want   events.Event
	}{
		{"press", glfw.KeyW, glfw.Press, events.Event{Channel: events.ChannelKeyDown, Key: common.KeyW, Name: "w"}},
		{"repeat", glfw.KeyUp, glfw.Repeat, events.Event{Channel: events.ChannelKeyDown, Key: common.KeyUp, Name: "ArrowUp", Repeat: true}},
		{"release", glfw.KeyLeft, glfw.Release, events.Event{Channel: events.ChannelKeyUp, Key: common.KeyLeft, Name: "ArrowLeft"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ev, ok := keyEvent(tt.key, tt.action)
			require.True(t, ok)
			assert.Equal(t, tt.want, ev)
		})
	}
}

func TestCharEvent(t *testing.T) {
	ev := charEvent('g')
	assert.Equal(t, events.ChannelKeyPress, ev.Channel)
	assert.Equal(t, "g", ev.Name)
	assert.Equal(t, common.KeyG, ev.Key)

	assert.Equal(t, "+", charEvent('+').Name)
}

func TestAttachDetachWithoutPlatformWindow(t *testing.T) {
	w := newEngineWindow(WithWidth(640), WithHeight(480))
	var got []events.Event
	w.Attach(events.ChannelKeyPress, func(ev events.Event) { got = append(got, ev) })

	w.emit(charEvent('c'))
	require.Len(t, got, 1)
	assert.Equal(t, 640, got[0].Width)
	assert.Equal(t, 480, got[0].Height)

	w.Detach(events.ChannelKeyPress)
	w.Detach(events.ChannelKeyPress)
	w.emit(charEvent('c'))
	assert.Len(t, got, 1)
	assert.False(t, w.attached(events.ChannelKeyPress))
}

func TestRegistryOverWindow(t *testing.T) {
	w := newEngineWindow()
	reg := events.NewRegistry(w)
	calls := 0
	reg.Subscribe(events.ChannelPointerMove, "a", func(events.Event) { calls++ })

	w.emit(events.Event{Channel: events.ChannelPointerMove, X: 1, Y: 2, Width: 10, Height: 10})
	assert.Equal(t, 1, calls)

	reg.Unsubscribe(events.ChannelPointerMove, "a")
	assert.False(t, w.attached(events.ChannelPointerMove))
}
