package camera

import (
	"log/slog"
	"slices"

	"github.com/Carmen-Shannon/oxy-solar/common"
	"github.com/Carmen-Shannon/oxy-solar/engine/animation"
	"github.com/Carmen-Shannon/oxy-solar/engine/events"
	"github.com/chewxy/math32"
)

const (
	// RigSubscriber is the name the controller subscribes to input channels under.
	RigSubscriber = "camera-rig"

	// FollowAnimation is the scheduler subscriber of the pointer-follow animation.
	FollowAnimation = "mousemove"
)

type controllerImpl struct {
	registry  events.Registry
	scheduler animation.Scheduler
	camera    Camera
	indicator Indicator
	logger    *slog.Logger

	mode     Mode
	bindings map[common.Key]Action
	held     []common.Key

	pointerX, pointerY float32

	movementStep float32
	rotationStep float32
	followGain   float32
	damping      float32
	limit        float32
	toggleKey    string
	recenterKey  string
}

var _ Controller = &controllerImpl{}

// NewController creates a Controller in ModeMouseFollow with the indicator hidden, and subscribes
// it to key-press for the toggle and recenter keys.
//
// Parameters:
//   - registry: the input event registry
//   - scheduler: the per-tick animation scheduler
//   - camera: the camera to drive
//   - indicator: the on-screen mirror of the rig state, may be nil
//   - options: functional options
//
// Returns:
//   - Controller: the newly created controller
func NewController(registry events.Registry, scheduler animation.Scheduler, camera Camera, indicator Indicator, options ...ControllerBuilderOption) Controller {
	c := &controllerImpl{
		registry:     registry,
		scheduler:    scheduler,
		camera:       camera,
		indicator:    indicator,
		logger:       slog.Default(),
		movementStep: 5,
		rotationStep: 0.01,
		followGain:   1000,
		damping:      0.6,
		limit:        1000,
		toggleKey:    "g",
		recenterKey:  "c",
	}
	WithBindings(DefaultBindings())(c)
	for _, opt := range options {
		opt(c)
	}
	if c.indicator == nil {
		c.indicator = nopIndicator{}
	}

	c.registry.Subscribe(events.ChannelKeyPress, RigSubscriber, c.onKeyPress)
	c.startFollow()
	c.indicator.Hide()
	return c
}

func (c *controllerImpl) Mode() Mode {
	return c.mode
}

func (c *controllerImpl) Toggle() {
	switch c.mode {
	case ModeMouseFollow:
		c.stopFollow()
		c.startKeyFly()
		c.indicator.Show()
	case ModeKeyFly:
		c.stopKeyFly()
		c.startFollow()
		c.indicator.Hide()
	}
	c.camera.Reset()
	c.logger.Info("camera mode changed", "mode", c.mode.String())
}

func (c *controllerImpl) Recenter() {
	c.camera.LookAtScene()
}

func (c *controllerImpl) Active() []string {
	names := make([]string, len(c.held))
	for i, k := range c.held {
		names[i] = k.Name()
	}
	return names
}

func (c *controllerImpl) Apply(action Action) {
	switch action {
	case MoveForward:
		c.translate(AxisZ, -c.movementStep)
	case MoveBack:
		c.translate(AxisZ, c.movementStep)
	case MoveLeft:
		c.translate(AxisX, -c.movementStep)
	case MoveRight:
		c.translate(AxisX, c.movementStep)
	case MoveUp:
		c.translate(AxisY, c.movementStep)
	case MoveDown:
		c.translate(AxisY, -c.movementStep)
	case RollLeft:
		c.camera.Rotate(AxisZ, c.rotationStep)
	case RollRight:
		c.camera.Rotate(AxisZ, -c.rotationStep)
	case PitchUp:
		c.camera.Rotate(AxisX, c.rotationStep)
	case PitchDown:
		c.camera.Rotate(AxisX, -c.rotationStep)
	case YawLeft:
		c.camera.Rotate(AxisY, c.rotationStep)
	case YawRight:
		c.camera.Rotate(AxisY, -c.rotationStep)
	}
}

func (c *controllerImpl) Limit() float32 {
	return c.limit
}

func (c *controllerImpl) Camera() Camera {
	return c.camera
}

func (c *controllerImpl) Close() {
	switch c.mode {
	case ModeMouseFollow:
		c.stopFollow()
	case ModeKeyFly:
		c.stopKeyFly()
	}
	c.registry.Unsubscribe(events.ChannelKeyPress, RigSubscriber)
}

// translate moves the camera along a local axis unless the move would leave the bound.
func (c *controllerImpl) translate(axis Axis, distance float32) {
	next := c.camera.Translated(axis, distance)
	for _, v := range next {
		if math32.Abs(v) > c.limit {
			return
		}
	}
	c.camera.SetPosition(next)
}

func (c *controllerImpl) startFollow() {
	c.mode = ModeMouseFollow
	c.pointerX, c.pointerY = 0, 0
	c.registry.Subscribe(events.ChannelPointerMove, RigSubscriber, c.onPointerMove)
	c.scheduler.AddAnimation(FollowAnimation, c.follow)
}

func (c *controllerImpl) stopFollow() {
	c.registry.Unsubscribe(events.ChannelPointerMove, RigSubscriber)
	c.scheduler.DeleteAnimation(FollowAnimation)
}

func (c *controllerImpl) startKeyFly() {
	c.mode = ModeKeyFly
	c.registry.Subscribe(events.ChannelKeyDown, RigSubscriber, c.onKeyDown)
	c.registry.Subscribe(events.ChannelKeyUp, RigSubscriber, c.onKeyUp)
}

func (c *controllerImpl) stopKeyFly() {
	c.registry.Unsubscribe(events.ChannelKeyDown, RigSubscriber)
	c.registry.Unsubscribe(events.ChannelKeyUp, RigSubscriber)
	for key := range c.bindings {
		c.scheduler.DeleteAnimation(key.Name())
	}
	c.held = c.held[:0]
	c.indicator.TrivializeAll()
}

func (c *controllerImpl) follow() {
	pos := c.camera.Position()
	pos[0] += (c.pointerX*c.followGain - pos[0]) * c.damping
	pos[1] += (c.pointerY*c.followGain - pos[1]) * c.damping
	c.camera.SetPosition(pos)
	c.camera.LookAtScene()
}

func (c *controllerImpl) onPointerMove(ev events.Event) {
	if ev.Width <= 0 || ev.Height <= 0 {
		return
	}
	c.pointerX = float32(ev.X/float64(ev.Width)) - 0.5
	c.pointerY = float32(ev.Y/float64(ev.Height)) - 0.5
}

func (c *controllerImpl) onKeyDown(ev events.Event) {
	if ev.Repeat {
		return
	}
	action, ok := c.bindings[ev.Key]
	if !ok || slices.Contains(c.held, ev.Key) {
		return
	}
	name := ev.Key.Name()
	c.held = append(c.held, ev.Key)
	c.indicator.Highlight(name)
	c.scheduler.AddAnimation(name, func() { c.Apply(action) })
}

func (c *controllerImpl) onKeyUp(ev events.Event) {
	i := slices.Index(c.held, ev.Key)
	if i == -1 {
		return
	}
	name := ev.Key.Name()
	c.held = slices.Delete(c.held, i, i+1)
	c.indicator.Trivialize(name)
	c.scheduler.DeleteAnimation(name)
}

func (c *controllerImpl) onKeyPress(ev events.Event) {
	switch ev.Name {
	case c.recenterKey:
		c.Recenter()
	case c.toggleKey:
		c.Toggle()
	}
}

type nopIndicator struct{}

func (nopIndicator) Show()             {}
func (nopIndicator) Hide()             {}
func (nopIndicator) Highlight(string)  {}
func (nopIndicator) Trivialize(string) {}
func (nopIndicator) TrivializeAll()    {}
