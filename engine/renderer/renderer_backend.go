package renderer

import (
	"github.com/Carmen-Shannon/oxy-solar/common"
	"github.com/Carmen-Shannon/oxy-solar/engine/game_object"
)

// RendererBackendType identifies the GPU backend implementation used by the Renderer.
type RendererBackendType int

const (
	// BackendTypeWGPU selects the WebGPU-based rendering backend.
	BackendTypeWGPU RendererBackendType = iota
)

// PresentMode controls how rendered frames are presented to the display surface.
type PresentMode int

const (
	// PresentModeVSync waits for the next vertical blank before presenting, capping frame rate
	// to the monitor's refresh rate. Eliminates tearing.
	PresentModeVSync PresentMode = iota

	// PresentModeUncapped presents frames immediately without waiting for vertical blank.
	// May cause screen tearing but provides the lowest latency.
	PresentModeUncapped
)

// MSAASampleCount controls the number of samples used for multisample anti-aliasing (MSAA).
// WebGPU guarantees support for 1 (off) and 4.
type MSAASampleCount uint32

const (
	// MSAAOff disables multisample anti-aliasing (sample count 1).
	MSAAOff MSAASampleCount = 1

	// MSAA4x enables 4x multisample anti-aliasing. This is the default.
	MSAA4x MSAASampleCount = 4
)

// PipelineKey selects one of the render pipeline variants. Every object is drawn with the same
// shader; only the face culling and the blend/depth-write state differ.
type PipelineKey struct {
	Cull  game_object.CullMode
	Blend bool
}

// PipelineKeys lists every variant the backend creates at startup.
func PipelineKeys() []PipelineKey {
	var keys []PipelineKey
	for _, blend := range []bool{false, true} {
		for _, cull := range []game_object.CullMode{game_object.CullBack, game_object.CullFront, game_object.CullNone} {
			keys = append(keys, PipelineKey{Cull: cull, Blend: blend})
		}
	}
	return keys
}

// RendererBackend is the GPU-facing half of the Renderer. Resources are keyed by object ID; the
// Renderer decides what to upload and in which order to draw.
type RendererBackend interface {
	// ConfigureSurface (re)creates the swapchain and depth attachments for a new surface size.
	//
	// Parameters:
	//   - width: the new width of the surface in pixels
	//   - height: the new height of the surface in pixels
	ConfigureSurface(width, height int)

	// SetPresentMode sets the surface present mode. It takes effect on the next ConfigureSurface.
	//
	// Parameters:
	//   - mode: the PresentMode to use
	SetPresentMode(mode PresentMode)

	// InitObject creates the mesh buffers, uniform buffer and a 1x1 white texture for an object.
	//
	// Parameters:
	//   - id: the object's ID
	//   - label: debug label for the GPU resources
	//   - vertexData: packed vertex bytes
	//   - indexData: packed uint32 index bytes
	//   - indexCount: number of indices to draw
	//
	// Returns:
	//   - error: an error if any GPU resource could not be created
	InitObject(id uint64, label string, vertexData, indexData []byte, indexCount int) error

	// UploadTexture replaces an object's texture with new pixel data, recreating the GPU texture
	// and bind group when the size changes.
	//
	// Parameters:
	//   - id: the object's ID
	//   - data: RGBA8 pixels and dimensions
	//
	// Returns:
	//   - error: an error if the texture could not be created
	UploadTexture(id uint64, data common.TextureStagingData) error

	// WriteObjectUniform writes an object's per-draw uniform.
	WriteObjectUniform(id uint64, data []byte)

	// WriteFrameUniform writes the camera and lighting uniform shared by every draw.
	WriteFrameUniform(data []byte)

	// ReleaseObject frees every GPU resource owned by an object. Unknown IDs are ignored.
	ReleaseObject(id uint64)

	// BeginFrame acquires the swapchain texture and begins the main render pass.
	//
	// Returns:
	//   - error: an error if the swapchain texture could not be acquired
	BeginFrame() error

	// Draw encodes one object's indexed draw with the given pipeline variant.
	Draw(id uint64, key PipelineKey)

	// EndFrame ends the render pass and submits the command buffer.
	EndFrame()

	// Present presents the surface to the display and releases the swapchain texture.
	Present()

	// Release frees every GPU resource held by the backend.
	Release()
}
