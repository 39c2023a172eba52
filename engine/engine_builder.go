package engine

import (
	"log/slog"

	"github.com/Carmen-Shannon/oxy-solar/engine/profiler"
	"github.com/Carmen-Shannon/oxy-solar/engine/renderer"
	"github.com/Carmen-Shannon/oxy-solar/engine/scene"
	"github.com/Carmen-Shannon/oxy-solar/engine/texture"
	"github.com/Carmen-Shannon/oxy-solar/engine/window"
)

// EngineBuilderOption is a functional option for configuring an Engine.
// Use the With* functions to create options that are applied directly to the engine instance.
type EngineBuilderOption func(*engine)

// WithProfiling enables or disables performance profiling output.
//
// Parameters:
//   - enabled: if true, enables performance profiling
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithProfiling(enabled bool) EngineBuilderOption {
	return func(e *engine) {
		e.profilingEnabled = enabled
	}
}

// WithProfiler replaces the default once-per-second profiler.
func WithProfiler(p *profiler.Profiler) EngineBuilderOption {
	return func(e *engine) {
		e.profiler = p
	}
}

// WithWindow sets a custom configured window for the engine to use rather than allowing the engine
// to create and manage one internally.
//
// Parameters:
//   - w: a pre-configured Window instance
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithWindow(w window.Window) EngineBuilderOption {
	return func(e *engine) {
		e.window = w
	}
}

// WithRenderer sets the renderer instead of creating a GPU renderer over the window.
//
// Parameters:
//   - r: the renderer to draw with
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithRenderer(r renderer.Renderer) EngineBuilderOption {
	return func(e *engine) {
		e.renderer = r
	}
}

// WithScene sets the scene content is installed into.
func WithScene(s scene.Scene) EngineBuilderOption {
	return func(e *engine) {
		e.scene = s
	}
}

// WithLoader sets the texture loader handed to content. The engine closes it on shutdown.
func WithLoader(l texture.Loader) EngineBuilderOption {
	return func(e *engine) {
		e.loader = l
	}
}

// WithLogger sets the logger shared by the engine and every subsystem it creates.
func WithLogger(logger *slog.Logger) EngineBuilderOption {
	return func(e *engine) {
		if logger != nil {
			e.logger = logger
		}
	}
}
