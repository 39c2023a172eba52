package texture

import (
	"image"

	"github.com/Carmen-Shannon/oxy-solar/common"
	"golang.org/x/image/draw"
)

// ToNRGBA converts any image to non-premultiplied RGBA with its origin at (0, 0).
//
// Parameters:
//   - src: the decoded image
//
// Returns:
//   - *image.NRGBA: the converted image
func ToNRGBA(src image.Image) *image.NRGBA {
	if n, ok := src.(*image.NRGBA); ok && n.Rect.Min == (image.Point{}) {
		return n
	}
	b := src.Bounds()
	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Bounds(), src, b.Min, draw.Src)
	return dst
}

// AlphaComposite merges a color map with a transparency map: the result keeps the color map's RGB
// and takes alpha from the inverted red channel of the transparency map, so white areas of the
// transparency map become fully transparent. If the sizes differ the transparency map is resampled
// to the color map's size.
//
// Parameters:
//   - color: the RGB source
//   - trans: the transparency source, read from its red channel
//
// Returns:
//   - *image.NRGBA: the composited image
func AlphaComposite(color, trans image.Image) *image.NRGBA {
	out := ToNRGBA(color)
	if out == color {
		// never write into the caller's image
		out = cloneNRGBA(out)
	}
	size := out.Bounds()

	mask := ToNRGBA(trans)
	if mask.Bounds().Size() != size.Size() {
		scaled := image.NewNRGBA(size)
		draw.ApproxBiLinear.Scale(scaled, size, mask, mask.Bounds(), draw.Src, nil)
		mask = scaled
	}

	for y := 0; y < size.Dy(); y++ {
		row := out.Pix[y*out.Stride:]
		mrow := mask.Pix[y*mask.Stride:]
		for x := 0; x < size.Dx(); x++ {
			row[x*4+3] = 255 - mrow[x*4]
		}
	}
	return out
}

// StagingFromNRGBA packs an image into tightly-packed staging data for GPU upload.
//
// Parameters:
//   - img: the image, origin at (0, 0)
//
// Returns:
//   - common.TextureStagingData: RGBA8 rows without padding
func StagingFromNRGBA(img *image.NRGBA) common.TextureStagingData {
	w, h := img.Bounds().Dx(), img.Bounds().Dy()
	pixels := make([]byte, w*h*4)
	for y := range h {
		copy(pixels[y*w*4:(y+1)*w*4], img.Pix[y*img.Stride:y*img.Stride+w*4])
	}
	return common.TextureStagingData{Pixels: pixels, Width: uint32(w), Height: uint32(h)}
}

func cloneNRGBA(src *image.NRGBA) *image.NRGBA {
	dst := image.NewNRGBA(src.Bounds())
	copy(dst.Pix, src.Pix)
	return dst
}
