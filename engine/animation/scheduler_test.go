package animation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRunInvokesInRegistrationOrder(t *testing.T) {
	s := NewScheduler()
	var calls []string
	s.AddAnimation("A", func() { calls = append(calls, "A") })
	s.AddAnimation("B", func() { calls = append(calls, "B") })
	s.AddAnimation("C", func() { calls = append(calls, "C") })

	s.Run()
	assert.Equal(t, []string{"A", "B", "C"}, calls)
}

func TestAddAnimationFirstRegistrationWins(t *testing.T) {
	s := NewScheduler()
	var first, second int
	s.AddAnimation("spin", func() { first++ })
	s.AddAnimation("spin", func() { second++ })

	s.Run()
	s.Run()
	assert.Equal(t, 2, first)
	assert.Equal(t, 0, second)
	assert.Equal(t, 1, s.Len())
}

func TestDeleteAnimation(t *testing.T) {
	tests := []struct {
		name   string
		add    []string
		delete string
		want   []string
	}{
		{"middle", []string{"a", "b", "c"}, "b", []string{"a", "c"}},
		{"missing is a no-op", []string{"a"}, "zzz", []string{"a"}},
		{"empty scheduler", nil, "a", []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewScheduler()
			for _, name := range tt.add {
				s.AddAnimation(name, func() {})
			}
			assert.NotPanics(t, func() { s.DeleteAnimation(tt.delete) })
			assert.Equal(t, tt.want, s.Subscribers())
			assert.False(t, s.Has(tt.delete))
		})
	}
}

func TestCallbackDeletingLaterAnimationSkipsIt(t *testing.T) {
	s := NewScheduler()
	var calls []string
	s.AddAnimation("killer", func() {
		calls = append(calls, "killer")
		s.DeleteAnimation("victim")
	})
	s.AddAnimation("victim", func() { calls = append(calls, "victim") })

	s.Run()
	assert.Equal(t, []string{"killer"}, calls)
	assert.False(t, s.Has("victim"))
}

func TestCallbackAddingAnimationRunsNextTick(t *testing.T) {
	s := NewScheduler()
	var calls []string
	s.AddAnimation("spawner", func() {
		calls = append(calls, "spawner")
		s.AddAnimation("child", func() { calls = append(calls, "child") })
	})

	s.Run()
	assert.Equal(t, []string{"spawner"}, calls)

	s.Run()
	assert.Equal(t, []string{"spawner", "spawner", "child"}, calls)
}

func TestCallbackMayDeleteItself(t *testing.T) {
	s := NewScheduler()
	n := 0
	s.AddAnimation("once", func() {
		n++
		s.DeleteAnimation("once")
	})
	s.Run()
	s.Run()
	assert.Equal(t, 1, n)
	assert.Zero(t, s.Len())
}

func TestReAddWithinTickSkipsStaleEntry(t *testing.T) {
	s := NewScheduler()
	var calls []string
	s.AddAnimation("swap", func() {
		calls = append(calls, "swap")
		s.DeleteAnimation("target")
		s.AddAnimation("target", func() { calls = append(calls, "new") })
	})
	s.AddAnimation("target", func() { calls = append(calls, "old") })

	s.Run()
	assert.Equal(t, []string{"swap"}, calls)

	s.Run()
	assert.Equal(t, []string{"swap", "swap", "new"}, calls)
}
