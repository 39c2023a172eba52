package events

import (
	"log/slog"
	"slices"
)

// subscription is one participant's hook into a channel.
type subscription struct {
	subscriber string
	callback   Callback
}

// channelEntry holds the listeners of a channel. An entry exists only while its channel is
// attached to the Source.
type channelEntry struct {
	listeners []subscription
}

type registry struct {
	source   Source
	channels map[Channel]*channelEntry
	logger   *slog.Logger
}

// Registry multiplexes the channels of one Source to many named subscribers.
// All methods must be called from the thread that delivers Source events (the window thread);
// the Registry performs no locking.
type Registry interface {
	// Subscribe registers callback under subscriber on the channel. The first call attaches the
	// channel to the Source. Subscribing an existing (channel, subscriber) pair is a no-op.
	//
	// Parameters:
	//   - ch: the channel to listen on
	//   - subscriber: stable identifier of the participant
	//   - callback: function invoked for every event on the channel
	Subscribe(ch Channel, subscriber string, callback Callback)

	// Unsubscribe removes the subscriber from the channel. When the channel has no listeners left
	// it is detached from the Source. Unknown channels or subscribers are ignored.
	//
	// Parameters:
	//   - ch: the channel
	//   - subscriber: the participant to remove
	Unsubscribe(ch Channel, subscriber string)

	// Attached reports whether the channel currently holds a Source registration.
	Attached(ch Channel) bool

	// AttachedCount returns the number of channels currently attached to the Source.
	AttachedCount() int

	// Subscribers returns the subscribers of a channel in registration order.
	Subscribers(ch Channel) []string

	// Dispatch fans an event out to the channel's listeners in registration order.
	// It is the handler the Registry installs on the Source, exposed for synthetic input.
	//
	// Parameters:
	//   - ev: the event; ev.Channel selects the listeners
	Dispatch(ev Event)
}

var _ Registry = &registry{}

// NewRegistry creates a Registry attached to the given Source.
//
// Parameters:
//   - source: the system-level event provider
//   - options: functional options
//
// Returns:
//   - Registry: the newly created registry
func NewRegistry(source Source, options ...RegistryOption) Registry {
	r := &registry{
		source:   source,
		channels: make(map[Channel]*channelEntry),
		logger:   slog.Default(),
	}
	for _, opt := range options {
		opt(r)
	}
	return r
}

func (r *registry) Subscribe(ch Channel, subscriber string, callback Callback) {
	entry, ok := r.channels[ch]
	if !ok {
		entry = &channelEntry{}
		r.channels[ch] = entry
		r.source.Attach(ch, r.Dispatch)
		r.logger.Debug("event channel attached", "channel", ch)
	}
	if entry.index(subscriber) != -1 {
		return
	}
	entry.listeners = append(entry.listeners, subscription{subscriber: subscriber, callback: callback})
}

func (r *registry) Unsubscribe(ch Channel, subscriber string) {
	entry, ok := r.channels[ch]
	if !ok {
		return
	}
	if i := entry.index(subscriber); i != -1 {
		entry.listeners = slices.Delete(entry.listeners, i, i+1)
	}
	if len(entry.listeners) == 0 {
		delete(r.channels, ch)
		r.source.Detach(ch)
		r.logger.Debug("event channel detached", "channel", ch)
	}
}

func (r *registry) Attached(ch Channel) bool {
	_, ok := r.channels[ch]
	return ok
}

func (r *registry) AttachedCount() int {
	return len(r.channels)
}

func (r *registry) Subscribers(ch Channel) []string {
	entry, ok := r.channels[ch]
	if !ok {
		return nil
	}
	out := make([]string, len(entry.listeners))
	for i, l := range entry.listeners {
		out[i] = l.subscriber
	}
	return out
}

func (r *registry) Dispatch(ev Event) {
	entry, ok := r.channels[ev.Channel]
	if !ok {
		return
	}
	// callbacks may (un)subscribe while we iterate
	snapshot := slices.Clone(entry.listeners)
	for _, l := range snapshot {
		l.callback(ev)
	}
}

func (e *channelEntry) index(subscriber string) int {
	return slices.IndexFunc(e.listeners, func(s subscription) bool {
		return s.subscriber == subscriber
	})
}
