package model

import (
	"encoding/binary"
	"math"
	"unsafe"
)

// GPUVertexSource is the canonical WGSL definition of the VertexInput struct for mesh pipelines.
// Matches GPUVertex layout exactly (32 bytes).
const GPUVertexSource = `struct VertexInput {
    @location(0) position: vec3<f32>,
    @location(1) normal: vec3<f32>,
    @location(2) uv: vec2<f32>,
};
`

// GPUVertexSize is the stride of one GPUVertex in a vertex buffer.
const GPUVertexSize = 32

// GPUVertex is the GPU-aligned representation of a single mesh vertex.
// Matches the WGSL VertexInput struct layout exactly (see GPUVertexSource).
// Size: 32 bytes (no padding required).
type GPUVertex struct {
	Position [3]float32 // offset  0: vertex position in model space (12 bytes)
	Normal   [3]float32 // offset 12: vertex normal for lighting (12 bytes)
	TexCoord [2]float32 // offset 24: UV texture coordinate (8 bytes)
}

// Size returns the size of the GPUVertex struct in bytes.
//
// Returns:
//   - int: the size of the struct in bytes.
func (g *GPUVertex) Size() int {
	return int(unsafe.Sizeof(*g))
}

// Marshal serializes the GPUVertex struct into a byte buffer suitable for GPU upload.
//
// Returns:
//   - []byte: 32-byte buffer ready for GPU upload.
func (g *GPUVertex) Marshal() []byte {
	buf := make([]byte, 32)
	g.marshalInto(buf)
	return buf
}

func (g *GPUVertex) marshalInto(buf []byte) {
	binary.LittleEndian.PutUint32(buf[0:4], math.Float32bits(g.Position[0]))
	binary.LittleEndian.PutUint32(buf[4:8], math.Float32bits(g.Position[1]))
	binary.LittleEndian.PutUint32(buf[8:12], math.Float32bits(g.Position[2]))
	binary.LittleEndian.PutUint32(buf[12:16], math.Float32bits(g.Normal[0]))
	binary.LittleEndian.PutUint32(buf[16:20], math.Float32bits(g.Normal[1]))
	binary.LittleEndian.PutUint32(buf[20:24], math.Float32bits(g.Normal[2]))
	binary.LittleEndian.PutUint32(buf[24:28], math.Float32bits(g.TexCoord[0]))
	binary.LittleEndian.PutUint32(buf[28:32], math.Float32bits(g.TexCoord[1]))
}

// MarshalVertices serializes a vertex slice into one contiguous buffer.
//
// Parameters:
//   - vertices: the vertices to serialize
//
// Returns:
//   - []byte: len(vertices)*32 bytes ready for GPU upload
func MarshalVertices(vertices []GPUVertex) []byte {
	const stride = 32
	buf := make([]byte, len(vertices)*stride)
	for i := range vertices {
		vertices[i].marshalInto(buf[i*stride:])
	}
	return buf
}

// MarshalIndices serializes uint32 indices little-endian.
//
// Parameters:
//   - indices: the triangle indices
//
// Returns:
//   - []byte: len(indices)*4 bytes ready for GPU upload
func MarshalIndices(indices []uint32) []byte {
	buf := make([]byte, len(indices)*4)
	for i, idx := range indices {
		binary.LittleEndian.PutUint32(buf[i*4:], idx)
	}
	return buf
}
