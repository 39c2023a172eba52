package renderer

import (
	"encoding/binary"
	"math"
	"unsafe"

	"github.com/Carmen-Shannon/oxy-solar/engine/camera"
	"github.com/Carmen-Shannon/oxy-solar/engine/game_object"
	"github.com/Carmen-Shannon/oxy-solar/engine/light"
	"github.com/Carmen-Shannon/oxy-solar/engine/model"
)

// GPUObjectUniformSource is the WGSL definition of the ObjectUniform struct.
// Matches GPUObjectUniform layout exactly (96 bytes).
const GPUObjectUniformSource = `struct ObjectUniform {
    model: mat4x4<f32>,
    color: vec4<f32>,
    unlit: u32,
    _pad0: u32,
    _pad1: u32,
    _pad2: u32,
};
`

// GPUObjectUniform is the per-object uniform: world matrix, base color with opacity in alpha,
// and the unlit flag.
type GPUObjectUniform struct {
	Model [16]float32 // offset  0
	Color [4]float32  // offset 64: rgb + opacity
	Unlit uint32      // offset 80
	_pad  [3]uint32   // offset 84: padding to 96 bytes
}

// NewGPUObjectUniform packs a GameObject's transform and material settings.
//
// Parameters:
//   - obj: the object to pack
//
// Returns:
//   - GPUObjectUniform: the packed uniform
func NewGPUObjectUniform(obj game_object.GameObject) GPUObjectUniform {
	var u GPUObjectUniform
	obj.ModelMatrix(u.Model[:])
	c := obj.Color()
	u.Color = [4]float32{c[0], c[1], c[2], obj.Opacity()}
	if obj.Unlit() {
		u.Unlit = 1
	}
	return u
}

// Size returns the size of the GPUObjectUniform struct in bytes.
//
// Returns:
//   - int: the struct size in bytes (96)
func (g *GPUObjectUniform) Size() int {
	return int(unsafe.Sizeof(*g))
}

// Marshal serializes the GPUObjectUniform struct into a byte buffer suitable for GPU upload.
//
// Returns:
//   - []byte: 96-byte buffer ready for GPU upload
func (g *GPUObjectUniform) Marshal() []byte {
	buf := make([]byte, g.Size())
	for i, f := range g.Model {
		binary.LittleEndian.PutUint32(buf[i*4:], math.Float32bits(f))
	}
	for i, f := range g.Color {
		binary.LittleEndian.PutUint32(buf[64+i*4:], math.Float32bits(f))
	}
	binary.LittleEndian.PutUint32(buf[80:], g.Unlit)
	return buf
}

// Frame uniform layout: the camera block, then the lights block.
const (
	cameraUniformOffset = 0
	lightsUniformOffset = 256
	frameUniformSize    = lightsUniformOffset + 48
)

// marshalFrameUniform lays the camera and lights uniforms out in one buffer. The lights block
// starts at the 256-byte offset alignment WebGPU requires for uniform bindings.
func marshalFrameUniform(cam camera.GPUCameraUniform, lights light.GPULights) []byte {
	buf := make([]byte, frameUniformSize)
	copy(buf[cameraUniformOffset:], cam.Marshal())
	copy(buf[lightsUniformOffset:], lights.Marshal())
	return buf
}

// shaderSource is the single lit/textured shader every pipeline variant is built from.
var shaderSource = camera.GPUCameraUniformSource + light.GPULightsSource + model.GPUVertexSource + GPUObjectUniformSource + `
@group(0) @binding(0) var<uniform> camera: CameraUniform;
@group(0) @binding(1) var<uniform> lights: Lights;
@group(1) @binding(0) var<uniform> object: ObjectUniform;
@group(1) @binding(1) var base_texture: texture_2d<f32>;
@group(1) @binding(2) var base_sampler: sampler;

struct VertexOutput {
    @builtin(position) clip: vec4<f32>,
    @location(0) normal: vec3<f32>,
    @location(1) uv: vec2<f32>,
};

@vertex
fn vs_main(in: VertexInput) -> VertexOutput {
    var out: VertexOutput;
    let world = object.model * vec4<f32>(in.position, 1.0);
    out.clip = camera.view_proj * world;
    out.normal = (object.model * vec4<f32>(in.normal, 0.0)).xyz;
    out.uv = in.uv;
    return out;
}

@fragment
fn fs_main(in: VertexOutput, @builtin(front_facing) front: bool) -> @location(0) vec4<f32> {
    let texel = textureSample(base_texture, base_sampler, in.uv);
    var rgb = texel.rgb * object.color.rgb;
    if object.unlit == 0u {
        var n = normalize(in.normal);
        if !front {
            n = -n;
        }
        var lit = lights.ambient * lights.ambient_intensity;
        if lights.enabled == 1u {
            lit += lights.color * lights.intensity * max(dot(n, -lights.direction), 0.0);
        }
        rgb = rgb * lit;
    }
    return vec4<f32>(rgb, texel.a * object.color.a);
}
`
