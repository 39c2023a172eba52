package renderer

import (
	"log/slog"

	"github.com/Carmen-Shannon/oxy-solar/common"
	"github.com/cogentcore/webgpu/wgpu"
)

// RendererBuilderOption is a functional option applied to a renderer during construction via NewRenderer.
type RendererBuilderOption func(*renderer)

// WithBackend supplies a ready-made backend instead of creating a WebGPU one from the surface.
//
// Parameters:
//   - backend: the RendererBackend to draw with
//
// Returns:
//   - RendererBuilderOption: a function that applies the backend option to a renderer
func WithBackend(backend RendererBackend) RendererBuilderOption {
	return func(r *renderer) {
		r.backend = backend
	}
}

// WithPresentMode sets the surface present mode which controls how frames are delivered to the display.
//
// Parameters:
//   - mode: the PresentMode to use (VSync or Uncapped)
//
// Returns:
//   - RendererBuilderOption: a function that applies the present mode option to a renderer
func WithPresentMode(mode PresentMode) RendererBuilderOption {
	return func(r *renderer) {
		r.pendingPresentMode = &mode
	}
}

// WithMSAA sets the multisample anti-aliasing sample count for the renderer.
// When not specified, the default is MSAA4x. Use MSAAOff to disable MSAA entirely.
//
// Parameters:
//   - count: the MSAASampleCount to use
//
// Returns:
//   - RendererBuilderOption: a function that applies the MSAA option to a renderer
func WithMSAA(count MSAASampleCount) RendererBuilderOption {
	return func(r *renderer) {
		r.msaa = count
	}
}

// WithForceSoftwareRenderer forces WGPU to use a CPU/software fallback adapter instead of
// hardware GPU acceleration. This requires a software Vulkan ICD to be installed on the system
// (e.g. SwiftShader or lavapipe).
//
// Parameters:
//   - force: true to force the software fallback adapter, false to use hardware (default)
//
// Returns:
//   - RendererBuilderOption: a function that applies the force software renderer option to a renderer
func WithForceSoftwareRenderer(force bool) RendererBuilderOption {
	return func(r *renderer) {
		r.forceFallbackAdapter = force
	}
}

// WithClearColor sets the background color the frame is cleared to.
//
// Parameters:
//   - c: the clear color (opaque)
//
// Returns:
//   - RendererBuilderOption: a function that applies the clear color option to a renderer
func WithClearColor(c common.Color) RendererBuilderOption {
	return func(r *renderer) {
		r.clearColor = wgpu.Color{R: float64(c[0]), G: float64(c[1]), B: float64(c[2]), A: 1}
	}
}

// WithLogger sets the logger used for surface and resource events.
func WithLogger(logger *slog.Logger) RendererBuilderOption {
	return func(r *renderer) {
		if logger != nil {
			r.logger = logger
		}
	}
}
