// package common contains common types that are used throughout this engine. They are not interface-wrapped structs, just plain structs that express
// commonly used data-types.
package common

// TextureStagingData holds RGBA pixel data for a texture pending GPU upload.
type TextureStagingData struct {
	// Pixels is the pixel data in RGBA format, 4 bytes per pixel, row-major.
	Pixels []byte
	// Width is the width of the texture in pixels.
	Width uint32
	// Height is the height of the texture in pixels.
	Height uint32
}

// Color is a linear RGB color with components in [0, 1].
type Color [3]float32

// ColorFromHex converts a 0xRRGGBB value to a Color.
//
// Parameters:
//   - hex: the packed 24-bit color
//
// Returns:
//   - Color: the unpacked color
func ColorFromHex(hex uint32) Color {
	return Color{
		float32((hex>>16)&0xff) / 255,
		float32((hex>>8)&0xff) / 255,
		float32(hex&0xff) / 255,
	}
}

// ColorFromRGB converts 8-bit channel values to a Color.
func ColorFromRGB(r, g, b uint8) Color {
	return Color{float32(r) / 255, float32(g) / 255, float32(b) / 255}
}
