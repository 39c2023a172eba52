package renderer

import (
	"fmt"
	"log/slog"

	"github.com/Carmen-Shannon/oxy-solar/engine/camera"
	"github.com/Carmen-Shannon/oxy-solar/engine/light"
	"github.com/Carmen-Shannon/oxy-solar/engine/scene"
	"github.com/cogentcore/webgpu/wgpu"
)

// renderer is the implementation of the Renderer interface.
type renderer struct {
	backendType RendererBackendType
	backend     RendererBackend
	logger      *slog.Logger

	width, height int

	// prepared tracks which object IDs have GPU resources
	prepared map[uint64]bool

	// Pre-creation config collected from builder options
	forceFallbackAdapter bool
	pendingPresentMode   *PresentMode
	msaa                 MSAASampleCount
	clearColor           wgpu.Color
}

// Surface is what the renderer needs from the window it draws into.
type Surface interface {
	// SurfaceDescriptor returns the platform-specific descriptor for WebGPU surface creation.
	SurfaceDescriptor() *wgpu.SurfaceDescriptor

	// FramebufferSize returns the drawable size in pixels.
	FramebufferSize() (int, int)
}

// Renderer draws a Scene from a Camera's point of view.
//
// Every enabled object in the scene is drawn with one lit, textured shader. Opaque objects are
// drawn first, then transparent ones with blending on and depth writes off. Textures flagged as
// needing an update are re-uploaded before the frame is encoded.
type Renderer interface {
	// Resize configures the backend for a new surface size. Zero sizes (a minimized window) are
	// recorded and rendering is skipped until a non-zero size arrives.
	//
	// Parameters:
	//   - width: the new width of the surface in pixels
	//   - height: the new height of the surface in pixels
	Resize(width, height int)

	// Size returns the surface size the renderer is configured for.
	//
	// Returns:
	//   - int: width in pixels
	//   - int: height in pixels
	Size() (int, int)

	// SetPresentMode sets the surface present mode and reconfigures the surface.
	//
	// Parameters:
	//   - mode: the PresentMode to use
	SetPresentMode(mode PresentMode)

	// Prepare creates GPU resources for objects new to the scene and frees those of objects that
	// have left it.
	//
	// Parameters:
	//   - s: the scene to synchronize with
	//
	// Returns:
	//   - error: an error if GPU resources could not be created
	Prepare(s scene.Scene) error

	// Render uploads pending textures and uniforms, then draws one frame.
	//
	// Parameters:
	//   - s: the scene to draw
	//   - cam: the camera to draw it from
	//
	// Returns:
	//   - error: an error if resources could not be prepared or the frame could not be acquired
	Render(s scene.Scene, cam camera.Camera) error

	// Release frees every GPU resource.
	Release()
}

var _ Renderer = &renderer{}

// NewRenderer creates a Renderer drawing into the given surface. The backend is created from the
// surface descriptor unless one is supplied with WithBackend. GPU initialization failures panic.
//
// Parameters:
//   - surface: the window surface to draw into
//   - options: variadic list of RendererBuilderOption functions to configure the Renderer
//
// Returns:
//   - Renderer: a new Renderer configured for the surface's current size
func NewRenderer(surface Surface, options ...RendererBuilderOption) Renderer {
	r := &renderer{
		backendType: BackendTypeWGPU,
		logger:      slog.Default(),
		prepared:    make(map[uint64]bool),
		msaa:        MSAA4x,
		clearColor:  wgpu.Color{R: 0, G: 0, B: 0, A: 1},
	}

	// Apply options first so config flags (e.g. forceFallbackAdapter) are
	// available before the backend requests a GPU adapter.
	for _, opt := range options {
		opt(r)
	}

	if r.backend == nil {
		switch r.backendType {
		case BackendTypeWGPU:
			fallthrough
		default:
			r.backend = newWGPURendererBackend(surface.SurfaceDescriptor(), r.forceFallbackAdapter, r.msaa, r.clearColor)
		}
	}

	if r.pendingPresentMode != nil {
		r.backend.SetPresentMode(*r.pendingPresentMode)
	}

	r.Resize(surface.FramebufferSize())
	return r
}

func (r *renderer) Resize(width, height int) {
	r.width, r.height = width, height
	if width <= 0 || height <= 0 {
		return
	}
	r.backend.ConfigureSurface(width, height)
	r.logger.Debug("surface configured", "width", width, "height", height)
}

func (r *renderer) Size() (int, int) {
	return r.width, r.height
}

func (r *renderer) SetPresentMode(mode PresentMode) {
	r.backend.SetPresentMode(mode)
	r.Resize(r.width, r.height)
}

func (r *renderer) Prepare(s scene.Scene) error {
	live := make(map[uint64]bool, s.Count())
	for _, obj := range s.Objects() {
		live[obj.ID()] = true
		if r.prepared[obj.ID()] {
			continue
		}
		m := obj.Model()
		if m == nil {
			continue
		}
		if err := r.backend.InitObject(obj.ID(), obj.Name(), m.VertexData(), m.IndexData(), m.IndexCount()); err != nil {
			return fmt.Errorf("prepare %q: %w", obj.Name(), err)
		}
		r.prepared[obj.ID()] = true
	}

	for id := range r.prepared {
		if !live[id] {
			r.backend.ReleaseObject(id)
			delete(r.prepared, id)
		}
	}
	return nil
}

func (r *renderer) Render(s scene.Scene, cam camera.Camera) error {
	if err := r.Prepare(s); err != nil {
		return err
	}
	if r.width <= 0 || r.height <= 0 {
		return nil
	}

	r.backend.WriteFrameUniform(marshalFrameUniform(cam.Uniform(), light.PackLights(s.Lights())))

	objects := s.Objects()
	for _, obj := range objects {
		if !r.prepared[obj.ID()] {
			continue
		}
		if tex := obj.Texture(); tex != nil {
			if data, ok := tex.ConsumeUpdate(); ok {
				if err := r.backend.UploadTexture(obj.ID(), data); err != nil {
					return fmt.Errorf("upload texture %q: %w", tex.Name(), err)
				}
			}
		}
		u := NewGPUObjectUniform(obj)
		r.backend.WriteObjectUniform(obj.ID(), u.Marshal())
	}

	if err := r.backend.BeginFrame(); err != nil {
		return err
	}
	for _, obj := range objects {
		if r.prepared[obj.ID()] {
			r.backend.Draw(obj.ID(), PipelineKey{Cull: obj.Cull(), Blend: obj.Transparent()})
		}
	}
	r.backend.EndFrame()
	r.backend.Present()
	return nil
}

func (r *renderer) Release() {
	r.backend.Release()
	clear(r.prepared)
}
