package model

import (
	"fmt"

	"github.com/Carmen-Shannon/oxy-solar/common"
	"github.com/chewxy/math32"
)

// NewSphere builds a UV sphere centered on the origin. The texture's left edge maps to the -X
// meridian and U grows eastward; V runs from the north pole (0) to the south pole (1).
//
// Parameters:
//   - radius: sphere radius
//   - widthSegments: number of meridian slices (minimum 3)
//   - heightSegments: number of parallel rings (minimum 2)
//
// Returns:
//   - Model: the sphere model
func NewSphere(radius float32, widthSegments, heightSegments int) Model {
	widthSegments = max(widthSegments, 3)
	heightSegments = max(heightSegments, 2)

	vertices := make([]GPUVertex, 0, (widthSegments+1)*(heightSegments+1))
	grid := make([][]uint32, heightSegments+1)
	for iy := 0; iy <= heightSegments; iy++ {
		v := float32(iy) / float32(heightSegments)
		grid[iy] = make([]uint32, widthSegments+1)
		for ix := 0; ix <= widthSegments; ix++ {
			u := float32(ix) / float32(widthSegments)
			sinT, cosT := math32.Sincos(v * math32.Pi)
			sinP, cosP := math32.Sincos(u * 2 * math32.Pi)
			n := common.Vec3{-cosP * sinT, cosT, sinP * sinT}
			grid[iy][ix] = uint32(len(vertices))
			vertices = append(vertices, GPUVertex{
				Position: n.Scale(radius),
				Normal:   n,
				TexCoord: [2]float32{u, v},
			})
		}
	}

	var indices []uint32
	for iy := range heightSegments {
		for ix := range widthSegments {
			a := grid[iy][ix+1]
			b := grid[iy][ix]
			c := grid[iy+1][ix]
			d := grid[iy+1][ix+1]
			if iy != 0 {
				indices = append(indices, a, b, d)
			}
			if iy != heightSegments-1 {
				indices = append(indices, b, c, d)
			}
		}
	}

	return NewModel(
		WithName(fmt.Sprintf("sphere-%g-%dx%d", radius, widthSegments, heightSegments)),
		WithGeometry(vertices, indices),
	)
}

// boxFace describes one side of a box: its outward normal and the in-plane axes, with u × v = normal.
type boxFace struct {
	normal, u, v common.Vec3
}

var boxFaces = [6]boxFace{
	{common.Vec3{1, 0, 0}, common.Vec3{0, 0, -1}, common.Vec3{0, 1, 0}},
	{common.Vec3{-1, 0, 0}, common.Vec3{0, 0, 1}, common.Vec3{0, 1, 0}},
	{common.Vec3{0, 1, 0}, common.Vec3{1, 0, 0}, common.Vec3{0, 0, -1}},
	{common.Vec3{0, -1, 0}, common.Vec3{1, 0, 0}, common.Vec3{0, 0, 1}},
	{common.Vec3{0, 0, 1}, common.Vec3{1, 0, 0}, common.Vec3{0, 1, 0}},
	{common.Vec3{0, 0, -1}, common.Vec3{-1, 0, 0}, common.Vec3{0, 1, 0}},
}

// NewBox builds an axis-aligned box centered on the origin with one quad per face.
//
// Parameters:
//   - width, height, depth: extents along X, Y and Z
//
// Returns:
//   - Model: the box model
func NewBox(width, height, depth float32) Model {
	half := common.Vec3{width / 2, height / 2, depth / 2}
	corners := [4][2]float32{{-1, -1}, {1, -1}, {1, 1}, {-1, 1}}

	vertices := make([]GPUVertex, 0, 24)
	indices := make([]uint32, 0, 36)
	for _, f := range boxFaces {
		base := uint32(len(vertices))
		for _, c := range corners {
			p := f.normal.Add(f.u.Scale(c[0])).Add(f.v.Scale(c[1]))
			vertices = append(vertices, GPUVertex{
				Position: common.Vec3{p[0] * half[0], p[1] * half[1], p[2] * half[2]},
				Normal:   f.normal,
				TexCoord: [2]float32{(c[0] + 1) / 2, 1 - (c[1]+1)/2},
			})
		}
		indices = append(indices, base, base+1, base+2, base, base+2, base+3)
	}

	return NewModel(
		WithName(fmt.Sprintf("box-%gx%gx%g", width, height, depth)),
		WithGeometry(vertices, indices),
	)
}

func length(p [3]float32) float32 {
	return common.Vec3(p).Len()
}
