package light

import (
	"encoding/binary"
	"math"
	"unsafe"
)

// GPULightsSource is the canonical WGSL definition of the Lights struct.
// Matches GPULights layout exactly (48 bytes, uniform aligned).
const GPULightsSource = `struct Lights {
    ambient: vec3<f32>,
    ambient_intensity: f32,
    color: vec3<f32>,
    intensity: f32,
    direction: vec3<f32>,
    enabled: u32,
};
`

// GPULights is the GPU-aligned representation of the scene's lighting.
// Size: 48 bytes (WGSL aligned).
type GPULights struct {
	Ambient          [3]float32 // offset  0: summed ambient color
	AmbientIntensity float32    // offset 12: ambient scalar (colors are pre-multiplied, always 1)
	Color            [3]float32 // offset 16: directional RGB color
	Intensity        float32    // offset 28: directional scalar multiplier
	Direction        [3]float32 // offset 32: normalized direction the light travels in
	Enabled          uint32     // offset 44: 1 if a directional light is active
}

// Size returns the size of the GPULights struct in bytes.
//
// Returns:
//   - int: the struct size in bytes (48)
func (g *GPULights) Size() int {
	return int(unsafe.Sizeof(*g))
}

// Marshal serializes the GPULights struct into a byte buffer suitable for GPU upload.
//
// Returns:
//   - []byte: 48-byte buffer ready for GPU upload
func (g *GPULights) Marshal() []byte {
	buf := make([]byte, 48)
	putVec3(buf[0:], g.Ambient)
	binary.LittleEndian.PutUint32(buf[12:16], math.Float32bits(g.AmbientIntensity))
	putVec3(buf[16:], g.Color)
	binary.LittleEndian.PutUint32(buf[28:32], math.Float32bits(g.Intensity))
	putVec3(buf[32:], g.Direction)
	binary.LittleEndian.PutUint32(buf[44:48], g.Enabled)
	return buf
}

// PackLights folds a light list into a GPULights value. Enabled ambient lights are summed,
// scaled by their intensity; the first enabled directional light wins.
//
// Parameters:
//   - lights: the scene's lights
//
// Returns:
//   - GPULights: the packed uniform
func PackLights(lights []Light) GPULights {
	out := GPULights{AmbientIntensity: 1}
	for _, l := range lights {
		if !l.Enabled() {
			continue
		}
		switch l.Type() {
		case LightTypeAmbient:
			c := l.Color()
			for i := range 3 {
				out.Ambient[i] += c[i] * l.Intensity()
			}
		case LightTypeDirectional:
			if out.Enabled == 1 {
				continue
			}
			out.Color = l.Color()
			out.Intensity = l.Intensity()
			out.Direction = l.Direction()
			out.Enabled = 1
		}
	}
	return out
}

func putVec3(buf []byte, v [3]float32) {
	for i := range 3 {
		binary.LittleEndian.PutUint32(buf[i*4:], math.Float32bits(v[i]))
	}
}
