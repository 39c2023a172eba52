package events_test

import (
	"math/rand"
	"testing"

	"github.com/Carmen-Shannon/oxy-solar/engine/events"
	"github.com/Carmen-Shannon/oxy-solar/engine/events/eventstest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubscribeAttachesOncePerChannel(t *testing.T) {
	src := eventstest.NewSource()
	r := events.NewRegistry(src)

	r.Subscribe(events.ChannelKeyDown, "a", func(events.Event) {})
	r.Subscribe(events.ChannelKeyDown, "b", func(events.Event) {})

	assert.Equal(t, 1, src.Attaches[events.ChannelKeyDown])
	assert.True(t, r.Attached(events.ChannelKeyDown))
	assert.Equal(t, []string{"a", "b"}, r.Subscribers(events.ChannelKeyDown))
}

func TestFanOutInSubscriptionOrder(t *testing.T) {
	src := eventstest.NewSource()
	r := events.NewRegistry(src)

	var calls []string
	r.Subscribe("tick", "A", func(events.Event) { calls = append(calls, "A") })
	r.Subscribe("tick", "B", func(events.Event) { calls = append(calls, "B") })

	require.True(t, src.Fire(events.Event{Channel: "tick"}))
	assert.Equal(t, []string{"A", "B"}, calls)
}

func TestDuplicateSubscribeInvokesOnce(t *testing.T) {
	src := eventstest.NewSource()
	r := events.NewRegistry(src)

	var first, second int
	r.Subscribe(events.ChannelKeyUp, "same", func(events.Event) { first++ })
	r.Subscribe(events.ChannelKeyUp, "same", func(events.Event) { second++ })

	src.Fire(events.Event{Channel: events.ChannelKeyUp})
	assert.Equal(t, 1, first)
	assert.Equal(t, 0, second)
	assert.Equal(t, 1, src.Attaches[events.ChannelKeyUp])
}

func TestUnsubscribeLastListenerDetaches(t *testing.T) {
	src := eventstest.NewSource()
	r := events.NewRegistry(src)

	r.Subscribe(events.ChannelPointerMove, "a", func(events.Event) {})
	r.Subscribe(events.ChannelPointerMove, "b", func(events.Event) {})

	r.Unsubscribe(events.ChannelPointerMove, "a")
	assert.True(t, src.Attached(events.ChannelPointerMove))

	r.Unsubscribe(events.ChannelPointerMove, "b")
	assert.False(t, src.Attached(events.ChannelPointerMove))
	assert.False(t, r.Attached(events.ChannelPointerMove))
	assert.Equal(t, 1, src.Detaches[events.ChannelPointerMove])
	assert.False(t, src.Fire(events.Event{Channel: events.ChannelPointerMove}))
}

func TestUnsubscribeMissIsSilent(t *testing.T) {
	src := eventstest.NewSource()
	r := events.NewRegistry(src)

	assert.NotPanics(t, func() {
		r.Unsubscribe(events.ChannelKeyPress, "ghost")
	})
	assert.Zero(t, src.Detaches[events.ChannelKeyPress])

	r.Subscribe(events.ChannelKeyPress, "real", func(events.Event) {})
	assert.NotPanics(t, func() {
		r.Unsubscribe(events.ChannelKeyPress, "ghost")
	})
	assert.True(t, r.Attached(events.ChannelKeyPress))
	assert.Equal(t, []string{"real"}, r.Subscribers(events.ChannelKeyPress))
}

func TestResubscribeAfterDetachReattaches(t *testing.T) {
	src := eventstest.NewSource()
	r := events.NewRegistry(src)

	r.Subscribe(events.ChannelKeyDown, "a", func(events.Event) {})
	r.Unsubscribe(events.ChannelKeyDown, "a")
	r.Subscribe(events.ChannelKeyDown, "a", func(events.Event) {})

	assert.Equal(t, 2, src.Attaches[events.ChannelKeyDown])
	assert.Equal(t, 1, src.Detaches[events.ChannelKeyDown])
	assert.True(t, src.Attached(events.ChannelKeyDown))
}

func TestCallbackMayUnsubscribeDuringDispatch(t *testing.T) {
	src := eventstest.NewSource()
	r := events.NewRegistry(src)

	var calls []string
	r.Subscribe(events.ChannelKeyDown, "self", func(events.Event) {
		calls = append(calls, "self")
		r.Unsubscribe(events.ChannelKeyDown, "self")
	})
	r.Subscribe(events.ChannelKeyDown, "other", func(events.Event) {
		calls = append(calls, "other")
	})

	src.Fire(events.Event{Channel: events.ChannelKeyDown})
	src.Fire(events.Event{Channel: events.ChannelKeyDown})

	assert.Equal(t, []string{"self", "other", "other"}, calls)
}

// Live source registrations must always match the channels holding listeners.
func TestRandomSequencesKeepRegistrationsInSync(t *testing.T) {
	channels := []events.Channel{
		events.ChannelPointerMove, events.ChannelKeyDown, events.ChannelKeyUp, events.ChannelKeyPress,
	}
	subscribers := []string{"camera", "overlay", "speed", "debug"}

	rng := rand.New(rand.NewSource(42))
	src := eventstest.NewSource()
	r := events.NewRegistry(src)

	for i := 0; i < 2000; i++ {
		ch := channels[rng.Intn(len(channels))]
		sub := subscribers[rng.Intn(len(subscribers))]
		if rng.Intn(2) == 0 {
			r.Subscribe(ch, sub, func(events.Event) {})
		} else {
			r.Unsubscribe(ch, sub)
		}

		nonEmpty := 0
		for _, c := range channels {
			if len(r.Subscribers(c)) > 0 {
				nonEmpty++
			}
			require.Equal(t, len(r.Subscribers(c)) > 0, src.Attached(c), "step %d channel %s", i, c)
		}
		require.Equal(t, nonEmpty, src.Live(), "step %d", i)
		require.Equal(t, nonEmpty, r.AttachedCount(), "step %d", i)
	}
}
