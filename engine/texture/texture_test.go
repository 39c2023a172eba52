package texture

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func encodePNG(t *testing.T, img image.Image) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func filled(w, h int, c color.NRGBA) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := range h {
		for x := range w {
			img.SetNRGBA(x, y, c)
		}
	}
	return img
}

func TestAlphaComposite(t *testing.T) {
	colorMap := filled(2, 2, color.NRGBA{R: 10, G: 20, B: 30, A: 255})
	trans := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	trans.SetNRGBA(0, 0, color.NRGBA{R: 255, A: 255})
	trans.SetNRGBA(1, 0, color.NRGBA{R: 0, A: 255})
	trans.SetNRGBA(0, 1, color.NRGBA{R: 100, A: 255})
	trans.SetNRGBA(1, 1, color.NRGBA{R: 55, A: 255})

	out := AlphaComposite(colorMap, trans)

	tests := []struct {
		x, y  int
		alpha uint8
	}{
		{0, 0, 0},
		{1, 0, 255},
		{0, 1, 155},
		{1, 1, 200},
	}
	for _, tt := range tests {
		c := out.NRGBAAt(tt.x, tt.y)
		assert.Equal(t, tt.alpha, c.A, "pixel %d,%d", tt.x, tt.y)
		assert.Equal(t, uint8(10), c.R)
		assert.Equal(t, uint8(30), c.B)
	}
	assert.Equal(t, uint8(255), colorMap.NRGBAAt(0, 0).A, "input must not be modified")
}

func TestAlphaCompositeResamplesMask(t *testing.T) {
	colorMap := filled(8, 4, color.NRGBA{R: 1, G: 2, B: 3, A: 255})
	trans := filled(2, 1, color.NRGBA{R: 255, G: 255, B: 255, A: 255})

	out := AlphaComposite(colorMap, trans)
	require.Equal(t, colorMap.Bounds(), out.Bounds())
	for y := range 4 {
		for x := range 8 {
			assert.Zero(t, out.NRGBAAt(x, y).A)
		}
	}
}

func TestStagingFromNRGBA(t *testing.T) {
	img := filled(3, 2, color.NRGBA{R: 9, A: 255})
	sub := img.SubImage(image.Rect(1, 0, 3, 2)).(*image.NRGBA)

	s := StagingFromNRGBA(ToNRGBA(sub))
	assert.Equal(t, uint32(2), s.Width)
	assert.Equal(t, uint32(2), s.Height)
	assert.Len(t, s.Pixels, 2*2*4)
	assert.Equal(t, byte(9), s.Pixels[0])
}

func TestTextureConsumeUpdate(t *testing.T) {
	tex := NewTexture("t", Solid(1, 2, 3, 4))
	require.True(t, tex.NeedsUpdate())
	assert.False(t, tex.Loaded())

	data, ok := tex.ConsumeUpdate()
	require.True(t, ok)
	assert.Equal(t, []byte{1, 2, 3, 4}, data.Pixels)

	_, ok = tex.ConsumeUpdate()
	assert.False(t, ok)

	tex.SetData(Solid(5, 6, 7, 8))
	assert.True(t, tex.NeedsUpdate())
	assert.True(t, tex.Loaded())
}

func TestLoader(t *testing.T) {
	fsys := fstest.MapFS{
		"earth.png":   {Data: encodePNG(t, filled(4, 2, color.NRGBA{R: 200, G: 100, B: 50, A: 255}))},
		"clouds.png":  {Data: encodePNG(t, filled(4, 2, color.NRGBA{G: 255, B: 255, A: 255}))},
		"trans.png":   {Data: encodePNG(t, filled(2, 1, color.NRGBA{R: 255, G: 255, B: 255, A: 255}))},
		"garbage.png": {Data: []byte("not an image")},
	}
	l := NewLoader(WithFS(fsys), WithWorkers(2))
	defer l.Close()

	earth := l.Load("earth.png")
	clouds := l.LoadAlphaComposite("clouds.png", "trans.png")
	missing := l.Load("missing.png")
	broken := l.Load("garbage.png")

	l.Wait()

	w, h := earth.Size()
	assert.Equal(t, uint32(4), w)
	assert.Equal(t, uint32(2), h)
	assert.True(t, earth.NeedsUpdate())
	assert.Equal(t, byte(200), earth.Data().Pixels[0])

	cd := clouds.Data()
	require.Len(t, cd.Pixels, 4*2*4)
	assert.Equal(t, byte(255), cd.Pixels[1])
	assert.Equal(t, byte(0), cd.Pixels[3])

	for _, tex := range []Texture{missing, broken} {
		assert.False(t, tex.Loaded())
		assert.Equal(t, Solid(255, 255, 255, 255), tex.Data())
	}
}

func TestLoaderWatchRequiresDir(t *testing.T) {
	l := NewLoader(WithFS(fstest.MapFS{}))
	defer l.Close()
	assert.ErrorIs(t, l.Watch(), ErrNotWatchable)
}

func TestLoaderWatchReloads(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "earth.png")
	require.NoError(t, os.WriteFile(path, encodePNG(t, filled(2, 2, color.NRGBA{R: 255, A: 255})), 0o644))

	l := NewLoader(WithAssetDir(dir), WithWorkers(1))
	defer l.Close()
	tex := l.Load("earth.png")
	l.Wait()
	require.Equal(t, byte(255), tex.Data().Pixels[0])
	tex.ConsumeUpdate()

	require.NoError(t, l.Watch())
	require.NoError(t, l.Watch(), "second watch is a no-op")
	require.NoError(t, os.WriteFile(path, encodePNG(t, filled(2, 2, color.NRGBA{B: 255, A: 255})), 0o644))

	assert.Eventually(t, func() bool {
		d := tex.Data()
		return len(d.Pixels) == 16 && d.Pixels[0] == 0 && d.Pixels[2] == 255
	}, 5*time.Second, 20*time.Millisecond)
	assert.True(t, tex.NeedsUpdate())
}

func TestLoaderAfterClose(t *testing.T) {
	fsys := fstest.MapFS{
		"earth.png": {Data: encodePNG(t, filled(1, 1, color.NRGBA{R: 7, A: 255}))},
	}
	l := NewLoader(WithFS(fsys), WithWorkers(1))
	l.Close()

	tex := l.Load("earth.png")
	done := make(chan struct{})
	go func() {
		l.Wait()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Wait blocked after Close")
	}
	assert.False(t, tex.Loaded())
	assert.Equal(t, Solid(255, 255, 255, 255), tex.Data())
}

func TestLoaderCloseReleasesQueuedLoads(t *testing.T) {
	fsys := fstest.MapFS{
		"earth.png": {Data: encodePNG(t, filled(64, 64, color.NRGBA{G: 9, A: 255}))},
	}
	l := NewLoader(WithFS(fsys), WithWorkers(1))
	for range 100 {
		l.Load("earth.png")
	}
	l.Close()

	done := make(chan struct{})
	go func() {
		l.Wait()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("Wait blocked on loads abandoned by Close")
	}
}
