package engine

import (
	"fmt"
	"log/slog"

	"github.com/Carmen-Shannon/oxy-solar/config"
	"github.com/Carmen-Shannon/oxy-solar/content"
	"github.com/Carmen-Shannon/oxy-solar/engine/animation"
	"github.com/Carmen-Shannon/oxy-solar/engine/camera"
	"github.com/Carmen-Shannon/oxy-solar/engine/events"
	"github.com/Carmen-Shannon/oxy-solar/engine/overlay"
	"github.com/Carmen-Shannon/oxy-solar/engine/profiler"
	"github.com/Carmen-Shannon/oxy-solar/engine/renderer"
	"github.com/Carmen-Shannon/oxy-solar/engine/scene"
	"github.com/Carmen-Shannon/oxy-solar/engine/texture"
	"github.com/Carmen-Shannon/oxy-solar/engine/window"
	"github.com/chewxy/math32"
)

// SpeedSubscriber is the key-press subscriber that forwards the speed keys to content.
const SpeedSubscriber = "content-speed"

// Speed key names delivered on key-press.
const (
	KeySpeedUp  = content.KeySpeedUp
	KeySlowDown = content.KeySlowDown
)

// engine implements the Engine interface.
// Everything runs on the window's thread: input callbacks, ticks and rendering.
type engine struct {
	logger *slog.Logger

	window    window.Window
	registry  events.Registry
	scheduler animation.Scheduler
	camera    camera.Camera
	rig       camera.Controller
	overlay   overlay.Overlay
	scene     scene.Scene
	renderer  renderer.Renderer
	loader    texture.Loader

	profiler         *profiler.Profiler
	profilingEnabled bool

	contents []content.Content
	closed   bool
}

// Engine is the composition root of the viewer. It owns the window, the event registry, the
// animation scheduler, the camera and its rig, the info overlay, the scene and the renderer, and
// drives them once per frame.
type Engine interface {
	// Window returns the window the engine draws into and reads input from.
	Window() window.Window

	// Registry returns the shared input event registry.
	Registry() events.Registry

	// Scheduler returns the per-tick animation scheduler.
	Scheduler() animation.Scheduler

	// Camera returns the scene camera.
	Camera() camera.Camera

	// Rig returns the camera navigation controller.
	Rig() camera.Controller

	// Overlay returns the info overlay.
	Overlay() overlay.Overlay

	// Scene returns the scene being drawn.
	Scene() scene.Scene

	// AddContent installs content into the scene. Meshes and lights are added to the scene, and
	// Animatable content has its Animate registered with the scheduler under its name.
	//
	// Parameters:
	//   - c: the content to install
	AddContent(c content.Content)

	// Contents returns installed content in install order.
	Contents() []content.Content

	// EnableProfiler enables performance profiling output to the log.
	EnableProfiler()

	// DisableProfiler disables performance profiling output.
	DisableProfiler()

	// Tick runs one frame: animations, then the resize check, then the render, then the profiler.
	//
	// Returns:
	//   - error: a render error
	Tick() error

	// Run drives Tick from the window's message loop until the window closes, then releases
	// every resource.
	Run()

	// Close tears down input subscriptions, texture workers, the renderer and the window.
	Close()
}

// NewEngine creates the engine from a configuration. Subsystems are created in dependency order:
// window, registry, scheduler, camera, overlay, rig, renderer, then content.
//
// Parameters:
//   - cfg: the validated configuration
//   - options: functional options supplying prebuilt subsystems or tuning behavior
//
// Returns:
//   - Engine: the ready engine
//   - error: an error if the overlay layout lacks a required panel or content cannot be built
func NewEngine(cfg *config.Config, options ...EngineBuilderOption) (Engine, error) {
	e := &engine{
		profilingEnabled: cfg.Log.Profile,
		logger:           slog.Default(),
		scheduler:        animation.NewScheduler(),
		scene:            scene.NewScene(scene.WithName("solar-system")),
	}
	for _, opt := range options {
		opt(e)
	}
	if e.profiler == nil {
		e.profiler = profiler.NewProfiler(profiler.WithLogger(e.logger))
	}

	if e.window == nil {
		e.window = window.NewWindow(
			window.WithTitle(cfg.Window.Title),
			window.WithWidth(cfg.Window.Width),
			window.WithHeight(cfg.Window.Height),
		)
	}

	e.registry = events.NewRegistry(e.window, events.WithLogger(e.logger))

	cameraOpts := []camera.CameraBuilderOption{
		camera.WithFov(cfg.Camera.Fov * math32.Pi / 180),
		camera.WithNear(cfg.Camera.Near),
		camera.WithFar(cfg.Camera.Far),
		camera.WithHome(0, 0, cfg.Camera.Distance),
	}
	if a := aspect(e.window.FramebufferSize()); a > 0 {
		cameraOpts = append(cameraOpts, camera.WithAspect(a))
	}
	e.camera = camera.NewCamera(cameraOpts...)

	panels, err := cfg.Layout().Build(config.MovementPanel, config.RotationPanel)
	if err != nil {
		e.Close()
		return nil, fmt.Errorf("build overlay: %w", err)
	}
	e.overlay = overlay.NewOverlay(e.window, panels, overlay.WithTitle(cfg.Overlay.Title))

	e.rig = camera.NewController(e.registry, e.scheduler, e.camera, e.overlay,
		camera.WithMovementStep(cfg.Rig.MovementStep),
		camera.WithRotationStep(cfg.Rig.RotationStep),
		camera.WithFollow(cfg.Rig.FollowGain, cfg.Rig.FollowDamping),
		camera.WithLimit(cfg.Rig.Limit),
		camera.WithToggleKey(cfg.Rig.ToggleKey),
		camera.WithRecenterKey(cfg.Rig.RecenterKey),
		camera.WithControllerLogger(e.logger),
	)

	if e.renderer == nil {
		present := renderer.PresentModeUncapped
		if cfg.Renderer.VSync {
			present = renderer.PresentModeVSync
		}
		e.renderer = renderer.NewRenderer(e.window,
			renderer.WithPresentMode(present),
			renderer.WithMSAA(renderer.MSAASampleCount(cfg.Renderer.MSAA)),
			renderer.WithForceSoftwareRenderer(cfg.Renderer.Software),
			renderer.WithLogger(e.logger),
		)
	}

	if e.loader == nil {
		loaderOpts := []texture.LoaderOption{
			texture.WithAssetDir(cfg.Textures.AssetDir),
			texture.WithLogger(e.logger),
		}
		if cfg.Textures.Workers > 0 {
			loaderOpts = append(loaderOpts, texture.WithWorkers(cfg.Textures.Workers))
		}
		e.loader = texture.NewLoader(loaderOpts...)
	}
	if cfg.Textures.Watch {
		if err := e.loader.Watch(); err != nil {
			e.logger.Warn("texture reload disabled", "error", err)
		}
	}

	for _, name := range cfg.Content.Bodies {
		c, err := content.New(name, e.loader)
		if err != nil {
			e.Close()
			return nil, fmt.Errorf("build content: %w", err)
		}
		e.AddContent(c)
	}

	e.registry.Subscribe(events.ChannelKeyPress, SpeedSubscriber, e.onKeyPress)
	return e, nil
}

func (e *engine) Window() window.Window {
	return e.window
}

func (e *engine) Registry() events.Registry {
	return e.registry
}

func (e *engine) Scheduler() animation.Scheduler {
	return e.scheduler
}

func (e *engine) Camera() camera.Camera {
	return e.camera
}

func (e *engine) Rig() camera.Controller {
	return e.rig
}

func (e *engine) Overlay() overlay.Overlay {
	return e.overlay
}

func (e *engine) Scene() scene.Scene {
	return e.scene
}

func (e *engine) AddContent(c content.Content) {
	e.contents = append(e.contents, c)
	if m, ok := c.(content.MeshProvider); ok {
		for _, obj := range m.Objects() {
			e.scene.Add(obj)
		}
	}
	if l, ok := c.(content.LightProvider); ok {
		for _, light := range l.Lights() {
			e.scene.AddLight(light)
		}
	}
	if a, ok := c.(content.Animatable); ok {
		e.scheduler.AddAnimation(a.Name(), a.Animate)
	}
	e.logger.Debug("content installed", "name", c.Name(), "objects", e.scene.Count())
}

func (e *engine) Contents() []content.Content {
	return e.contents
}

func (e *engine) EnableProfiler() {
	e.profilingEnabled = true
}

func (e *engine) DisableProfiler() {
	e.profilingEnabled = false
}

func (e *engine) Tick() error {
	e.scheduler.Run()
	e.resizeIfNeeded()
	if err := e.renderer.Render(e.scene, e.camera); err != nil {
		return fmt.Errorf("render: %w", err)
	}
	if e.profilingEnabled {
		e.profiler.Tick()
	}
	return nil
}

func (e *engine) Run() {
	var last error
	e.window.SetUpdateCallback(func() {
		err := e.Tick()
		// a lost or outdated surface repeats every frame until the next resize
		if err != nil && (last == nil || err.Error() != last.Error()) {
			e.logger.Warn("frame failed", "error", err)
		}
		last = err
	})
	e.window.ProcessMessages()
	e.Close()
}

func (e *engine) Close() {
	if e.closed {
		return
	}
	e.closed = true
	if e.rig != nil {
		e.rig.Close()
	}
	if e.registry != nil {
		e.registry.Unsubscribe(events.ChannelKeyPress, SpeedSubscriber)
	}
	if e.loader != nil {
		e.loader.Close()
	}
	if e.renderer != nil {
		e.renderer.Release()
	}
	if err := e.window.Close(); err != nil {
		e.logger.Warn("window close failed", "error", err)
	}
}

// resizeIfNeeded polls the framebuffer and, when it changed, resizes the renderer and updates the
// camera's aspect ratio.
func (e *engine) resizeIfNeeded() {
	w, h := e.window.FramebufferSize()
	rw, rh := e.renderer.Size()
	if w == rw && h == rh {
		return
	}
	e.renderer.Resize(w, h)
	if a := aspect(w, h); a > 0 {
		e.camera.SetAspect(a)
	}
}

func (e *engine) onKeyPress(ev events.Event) {
	var apply func(content.SpeedAdjustable)
	switch ev.Name {
	case KeySpeedUp:
		apply = content.SpeedAdjustable.SpeedUp
	case KeySlowDown:
		apply = content.SpeedAdjustable.SlowDown
	default:
		return
	}
	for _, c := range e.contents {
		if s, ok := c.(content.SpeedAdjustable); ok {
			apply(s)
			e.logger.Debug("content speed changed", "name", c.Name(), "speed", s.Speed())
		}
	}
}

func aspect(width, height int) float32 {
	if width <= 0 || height <= 0 {
		return 0
	}
	return float32(width) / float32(height)
}
