// Package animation holds the per-frame callback scheduler that drives every time-varying value in
// the viewer: camera easing, held-key motion and content spin.
package animation

import (
	"slices"
)

// Func is a per-tick callback.
type Func func()

type entry struct {
	id         uint64
	subscriber string
	fn         Func
}

type scheduler struct {
	entries []entry
	nextID  uint64
}

// Scheduler runs registered callbacks once per tick in registration order.
// It is not safe for concurrent use; ticks, adds and deletes all happen on the render thread.
type Scheduler interface {
	// AddAnimation registers fn under subscriber. If the subscriber is already registered the call
	// is a no-op and the first registration stays in effect.
	//
	// Parameters:
	//   - subscriber: stable identifier of the animation
	//   - fn: the callback run every tick
	AddAnimation(subscriber string, fn Func)

	// DeleteAnimation removes the subscriber's callback. Unknown subscribers are ignored.
	//
	// Parameters:
	//   - subscriber: the animation to remove
	DeleteAnimation(subscriber string)

	// Has reports whether the subscriber has a registered callback.
	Has(subscriber string) bool

	// Len returns the number of registered callbacks.
	Len() int

	// Subscribers returns registered subscribers in registration order.
	Subscribers() []string

	// Run invokes every callback registered at the start of the tick exactly once, in registration
	// order. Callbacks may add or delete animations; changes take effect next tick, except that a
	// callback deleted earlier in the same tick is skipped.
	Run()
}

var _ Scheduler = &scheduler{}

// NewScheduler creates an empty Scheduler.
//
// Returns:
//   - Scheduler: the newly created scheduler
func NewScheduler() Scheduler {
	return &scheduler{}
}

func (s *scheduler) AddAnimation(subscriber string, fn Func) {
	if s.index(subscriber) != -1 {
		return
	}
	s.nextID++
	s.entries = append(s.entries, entry{id: s.nextID, subscriber: subscriber, fn: fn})
}

func (s *scheduler) DeleteAnimation(subscriber string) {
	if i := s.index(subscriber); i != -1 {
		s.entries = slices.Delete(s.entries, i, i+1)
	}
}

func (s *scheduler) Has(subscriber string) bool {
	return s.index(subscriber) != -1
}

func (s *scheduler) Len() int {
	return len(s.entries)
}

func (s *scheduler) Subscribers() []string {
	out := make([]string, len(s.entries))
	for i, e := range s.entries {
		out[i] = e.subscriber
	}
	return out
}

func (s *scheduler) Run() {
	snapshot := slices.Clone(s.entries)
	for _, e := range snapshot {
		if !s.live(e) {
			continue
		}
		e.fn()
	}
}

// live reports whether the snapshot entry is still registered. A delete followed by a re-add
// within the same tick yields a new entry id, so the stale snapshot entry is skipped.
func (s *scheduler) live(e entry) bool {
	i := s.index(e.subscriber)
	return i != -1 && s.entries[i].id == e.id
}

func (s *scheduler) index(subscriber string) int {
	return slices.IndexFunc(s.entries, func(e entry) bool {
		return e.subscriber == subscriber
	})
}
