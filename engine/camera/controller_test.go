package camera

import (
	"math/rand"
	"slices"
	"testing"

	"github.com/Carmen-Shannon/oxy-solar/common"
	"github.com/Carmen-Shannon/oxy-solar/engine/animation"
	"github.com/Carmen-Shannon/oxy-solar/engine/events"
	"github.com/Carmen-Shannon/oxy-solar/engine/events/eventstest"
	"github.com/Carmen-Shannon/oxy-solar/engine/overlay"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type rig struct {
	source    *eventstest.Source
	registry  events.Registry
	scheduler animation.Scheduler
	overlay   overlay.Overlay
	ctrl      Controller
}

func newRig(t *testing.T, options ...ControllerBuilderOption) *rig {
	t.Helper()
	src := eventstest.NewSource()
	reg := events.NewRegistry(src)
	sched := animation.NewScheduler()
	panels := []overlay.Panel{
		overlay.NewPanel(".info-movement", "Movement", []overlay.Control{
			{Key: "w", Label: "W"}, {Key: "s", Label: "S"}, {Key: "a", Label: "A"},
			{Key: "d", Label: "D"}, {Key: "z", Label: "Z"}, {Key: "x", Label: "X"},
		}),
		overlay.NewPanel(".info-rotation", "Rotation", []overlay.Control{
			{Key: "q", Label: "Q"}, {Key: "e", Label: "E"},
			{Key: "ArrowUp", Label: "↑"}, {Key: "ArrowDown", Label: "↓"},
			{Key: "ArrowLeft", Label: "←"}, {Key: "ArrowRight", Label: "→"},
		}),
	}
	ov := overlay.NewOverlay(nil, panels)
	ctrl := NewController(reg, sched, NewCamera(), ov, options...)
	return &rig{source: src, registry: reg, scheduler: sched, overlay: ov, ctrl: ctrl}
}

func (r *rig) tick(n int) {
	for range n {
		r.scheduler.Run()
	}
}

func (r *rig) panelsVisible() []bool {
	var out []bool
	for _, p := range r.overlay.Panels() {
		out = append(out, p.Visible())
	}
	return out
}

func TestControllerStartsInMouseFollow(t *testing.T) {
	r := newRig(t)

	assert.Equal(t, ModeMouseFollow, r.ctrl.Mode())
	assert.True(t, r.source.Attached(events.ChannelPointerMove))
	assert.True(t, r.source.Attached(events.ChannelKeyPress))
	assert.False(t, r.source.Attached(events.ChannelKeyDown))
	assert.False(t, r.source.Attached(events.ChannelKeyUp))
	assert.True(t, r.scheduler.Has(FollowAnimation))
	assert.Equal(t, []bool{false, false}, r.panelsVisible())
}

func TestToggleToKeyFly(t *testing.T) {
	r := newRig(t)

	require.True(t, r.source.KeyPress("g"))

	assert.Equal(t, ModeKeyFly, r.ctrl.Mode())
	assert.False(t, r.source.Attached(events.ChannelPointerMove))
	assert.True(t, r.source.Attached(events.ChannelKeyDown))
	assert.True(t, r.source.Attached(events.ChannelKeyUp))
	assert.True(t, r.source.Attached(events.ChannelKeyPress))
	assert.False(t, r.scheduler.Has(FollowAnimation))
	assert.Equal(t, []bool{true, true}, r.panelsVisible())
}

func TestHoldForwardThreeTicks(t *testing.T) {
	r := newRig(t)
	r.ctrl.Toggle()
	cam := r.ctrl.Camera()

	r.source.KeyDown(common.KeyW, false)
	r.tick(3)
	assertVec(t, common.Vec3{0, 0, 485}, cam.Position())

	r.source.KeyUp(common.KeyW)
	r.tick(5)
	assertVec(t, common.Vec3{0, 0, 485}, cam.Position())
	assert.False(t, r.scheduler.Has("w"))
}

func TestKeyRepeatDoesNotDuplicate(t *testing.T) {
	r := newRig(t)
	r.ctrl.Toggle()

	r.source.KeyDown(common.KeyW, false)
	for range 5 {
		r.source.KeyDown(common.KeyW, true)
	}
	r.source.KeyDown(common.KeyW, false)

	assert.Equal(t, []string{"w"}, r.ctrl.Active())
	assert.Equal(t, []string{"w"}, r.scheduler.Subscribers())

	r.tick(1)
	assertVec(t, common.Vec3{0, 0, 495}, r.ctrl.Camera().Position())
}

func TestHeldKeysHighlightPanels(t *testing.T) {
	r := newRig(t)
	r.ctrl.Toggle()
	movement, rotation := r.overlay.Panels()[0], r.overlay.Panels()[1]

	r.source.KeyDown(common.KeyA, false)
	r.source.KeyDown(common.KeyLeft, false)
	assert.True(t, movement.Highlighted("a"))
	assert.True(t, rotation.Highlighted("ArrowLeft"))

	r.source.KeyUp(common.KeyA)
	assert.False(t, movement.Highlighted("a"))
	assert.True(t, rotation.Highlighted("ArrowLeft"))
}

func TestUnboundAndUnpressedKeysAreIgnored(t *testing.T) {
	r := newRig(t)
	r.ctrl.Toggle()

	r.source.KeyDown(common.KeyG, false)
	r.source.KeyUp(common.KeyS)
	assert.Empty(t, r.ctrl.Active())
	assert.Zero(t, r.scheduler.Len())
}

func TestActiveSetTracksHeldKeys(t *testing.T) {
	r := newRig(t)
	r.ctrl.Toggle()
	rng := rand.New(rand.NewSource(7))
	bindings := DefaultBindings()
	var held []string

	for step := range 1000 {
		b := bindings[rng.Intn(len(bindings))]
		name := b.Key.Name()
		switch rng.Intn(3) {
		case 0:
			r.source.KeyDown(b.Key, false)
			if !slices.Contains(held, name) {
				held = append(held, name)
			}
		case 1:
			r.source.KeyDown(b.Key, true)
		case 2:
			r.source.KeyUp(b.Key)
			if i := slices.Index(held, name); i != -1 {
				held = slices.Delete(held, i, i+1)
			}
		}
		r.tick(1)

		require.ElementsMatch(t, held, r.ctrl.Active(), "step %d", step)
		require.ElementsMatch(t, held, r.scheduler.Subscribers(), "step %d", step)
		for _, v := range r.ctrl.Camera().Position() {
			require.LessOrEqual(t, v, r.ctrl.Limit()+eps, "step %d", step)
			require.GreaterOrEqual(t, v, -r.ctrl.Limit()-eps, "step %d", step)
		}
	}
}

func TestClampSkipsStepsOutsideLimit(t *testing.T) {
	tests := []struct {
		name  string
		key   common.Key
		limit float32
		want  common.Vec3
	}{
		{"back stops at limit", common.KeyS, 510, common.Vec3{0, 0, 510}},
		{"right stops before limit", common.KeyD, 512, common.Vec3{510, 0, 500}},
		{"up stops before limit", common.KeyZ, 512, common.Vec3{0, 510, 500}},
		{"pose outside limit blocks every step", common.KeyD, 12, common.Vec3{0, 0, 500}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newRig(t, WithLimit(tt.limit))
			r.ctrl.Toggle()
			r.source.KeyDown(tt.key, false)
			r.tick(200)

			assertVec(t, tt.want, r.ctrl.Camera().Position())
		})
	}
}

func TestClampBoundsEveryComponent(t *testing.T) {
	r := newRig(t, WithLimit(520))
	r.ctrl.Toggle()

	r.source.KeyDown(common.KeyD, false)
	r.tick(200)
	assertVec(t, common.Vec3{520, 0, 500}, r.ctrl.Camera().Position())

	r.source.KeyDown(common.KeyS, false)
	r.tick(200)
	assertVec(t, common.Vec3{520, 0, 520}, r.ctrl.Camera().Position())
}

func TestEvenTogglesRestoreCanonicalPose(t *testing.T) {
	r := newRig(t)
	cam := r.ctrl.Camera()

	for round := range 3 {
		r.ctrl.Toggle()
		r.source.KeyDown(common.KeyW, false)
		r.source.KeyDown(common.KeyRight, false)
		r.source.KeyDown(common.KeyQ, false)
		r.tick(10 + round)

		r.ctrl.Toggle()
		assert.Equal(t, ModeMouseFollow, r.ctrl.Mode())
		assertVec(t, common.Vec3{0, 0, 500}, cam.Position())
		assertVec(t, common.Vec3{0, 0, -1}, cam.Forward())
	}
}

func TestToggleWhileKeysHeldTearsDownMotion(t *testing.T) {
	r := newRig(t)
	r.ctrl.Toggle()
	r.source.KeyDown(common.KeyW, false)
	r.source.KeyDown(common.KeyE, false)
	require.Len(t, r.ctrl.Active(), 2)

	r.source.KeyPress("g")

	assert.Empty(t, r.ctrl.Active())
	assert.Equal(t, []string{FollowAnimation}, r.scheduler.Subscribers())
	for _, p := range r.overlay.Panels() {
		assert.False(t, p.Highlighted("w"))
		assert.False(t, p.Highlighted("e"))
		assert.False(t, p.Visible())
	}
	assert.False(t, r.source.KeyDown(common.KeyW, false), "key-down must be detached in mouse-follow")
}

func TestMouseFollowEasesTowardPointer(t *testing.T) {
	r := newRig(t)
	cam := r.ctrl.Camera()

	r.source.PointerMove(800, 300) // right edge, vertical center of 800x600
	r.tick(1)
	assert.InDelta(t, 300, cam.Position()[0], eps)
	assert.InDelta(t, 0, cam.Position()[1], eps)

	r.tick(1)
	assert.InDelta(t, 420, cam.Position()[0], eps)

	fwd := cam.Forward()
	toOrigin := cam.Position().Scale(-1).Normalize()
	assertVec(t, toOrigin, fwd)
}

func TestRecenterKeepsPosition(t *testing.T) {
	r := newRig(t)
	r.ctrl.Toggle()
	cam := r.ctrl.Camera()

	r.source.KeyDown(common.KeyD, false)
	r.source.KeyDown(common.KeyLeft, false)
	r.tick(20)
	r.source.KeyUp(common.KeyD)
	r.source.KeyUp(common.KeyLeft)
	before := cam.Position()

	r.source.KeyPress("c")
	assertVec(t, before, cam.Position())
	assertVec(t, before.Scale(-1).Normalize(), cam.Forward())
}

func TestApplyDispatchesEveryAction(t *testing.T) {
	tests := []struct {
		action  Action
		wantPos common.Vec3
		turns   bool
	}{
		{MoveForward, common.Vec3{0, 0, 495}, false},
		{MoveBack, common.Vec3{0, 0, 505}, false},
		{MoveLeft, common.Vec3{-5, 0, 500}, false},
		{MoveRight, common.Vec3{5, 0, 500}, false},
		{MoveUp, common.Vec3{0, 5, 500}, false},
		{MoveDown, common.Vec3{0, -5, 500}, false},
		{RollLeft, common.Vec3{0, 0, 500}, true},
		{RollRight, common.Vec3{0, 0, 500}, true},
		{PitchUp, common.Vec3{0, 0, 500}, true},
		{PitchDown, common.Vec3{0, 0, 500}, true},
		{YawLeft, common.Vec3{0, 0, 500}, true},
		{YawRight, common.Vec3{0, 0, 500}, true},
	}
	for _, tt := range tests {
		t.Run(tt.action.String(), func(t *testing.T) {
			r := newRig(t)
			before := r.ctrl.Camera().Orientation()
			r.ctrl.Apply(tt.action)

			assertVec(t, tt.wantPos, r.ctrl.Camera().Position())
			assert.Equal(t, tt.turns, before != r.ctrl.Camera().Orientation())
			assert.Equal(t, !tt.turns, tt.action.IsTranslation())
		})
	}
}

func TestCloseRemovesEverything(t *testing.T) {
	r := newRig(t)
	r.ctrl.Toggle()
	r.source.KeyDown(common.KeyW, false)

	r.ctrl.Close()
	assert.Zero(t, r.source.Live())
	assert.Zero(t, r.registry.AttachedCount())
	assert.Zero(t, r.scheduler.Len())
}
