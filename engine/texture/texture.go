// Package texture holds CPU-side texture pixels and the asynchronous loader that fills them.
package texture

import (
	"sync"

	"github.com/Carmen-Shannon/oxy-solar/common"
)

type textureImpl struct {
	mu          sync.Mutex
	name        string
	data        common.TextureStagingData
	needsUpdate bool
	loaded      bool
}

// Texture is an RGBA8 image shared between a loader goroutine and the render thread.
// The loader replaces the pixels once decoding finishes and raises the needs-update flag;
// the renderer consumes the flag on its next frame and re-uploads the pixels.
type Texture interface {
	// Name returns the texture's identifier, typically its source path.
	Name() string

	// Size returns the current pixel dimensions.
	//
	// Returns:
	//   - uint32: width in pixels
	//   - uint32: height in pixels
	Size() (uint32, uint32)

	// Data returns the current pixels without touching the needs-update flag.
	//
	// Returns:
	//   - common.TextureStagingData: the pixel snapshot
	Data() common.TextureStagingData

	// SetData replaces the pixels and marks the texture as loaded and needing an upload.
	//
	// Parameters:
	//   - data: the new pixels
	SetData(data common.TextureStagingData)

	// NeedsUpdate reports whether pixels changed since the last ConsumeUpdate.
	NeedsUpdate() bool

	// ConsumeUpdate returns the pixels and clears the needs-update flag if it was set.
	//
	// Returns:
	//   - common.TextureStagingData: the pixels to upload
	//   - bool: false if there was nothing to upload
	ConsumeUpdate() (common.TextureStagingData, bool)

	// Loaded reports whether real pixels replaced the placeholder.
	Loaded() bool
}

var _ Texture = &textureImpl{}

// NewTexture creates a Texture holding data. The texture starts with its needs-update flag set so
// the renderer uploads the initial pixels.
//
// Parameters:
//   - name: the texture identifier
//   - data: the initial pixels
//
// Returns:
//   - Texture: the newly created texture
func NewTexture(name string, data common.TextureStagingData) Texture {
	return &textureImpl{name: name, data: data, needsUpdate: true}
}

// Solid returns 1x1 staging data of a single RGBA color.
//
// Parameters:
//   - r, g, b, a: the color channels
//
// Returns:
//   - common.TextureStagingData: the one-pixel image
func Solid(r, g, b, a uint8) common.TextureStagingData {
	return common.TextureStagingData{Pixels: []byte{r, g, b, a}, Width: 1, Height: 1}
}

func (t *textureImpl) Name() string {
	return t.name
}

func (t *textureImpl) Size() (uint32, uint32) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.data.Width, t.data.Height
}

func (t *textureImpl) Data() common.TextureStagingData {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.data
}

func (t *textureImpl) SetData(data common.TextureStagingData) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.data = data
	t.needsUpdate = true
	t.loaded = true
}

func (t *textureImpl) NeedsUpdate() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.needsUpdate
}

func (t *textureImpl) ConsumeUpdate() (common.TextureStagingData, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if !t.needsUpdate {
		return common.TextureStagingData{}, false
	}
	t.needsUpdate = false
	return t.data, true
}

func (t *textureImpl) Loaded() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.loaded
}
