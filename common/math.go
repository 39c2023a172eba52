package common

import (
	"unsafe"

	"github.com/chewxy/math32"
)

// Vec3 is a float32 3-component vector.
type Vec3 [3]float32

// Add returns v + o.
func (v Vec3) Add(o Vec3) Vec3 { return Vec3{v[0] + o[0], v[1] + o[1], v[2] + o[2]} }

// Sub returns v - o.
func (v Vec3) Sub(o Vec3) Vec3 { return Vec3{v[0] - o[0], v[1] - o[1], v[2] - o[2]} }

// Scale returns v * s.
func (v Vec3) Scale(s float32) Vec3 { return Vec3{v[0] * s, v[1] * s, v[2] * s} }

// Dot returns the dot product of v and o.
func (v Vec3) Dot(o Vec3) float32 { return v[0]*o[0] + v[1]*o[1] + v[2]*o[2] }

// Cross returns the cross product v x o.
func (v Vec3) Cross(o Vec3) Vec3 {
	return Vec3{
		v[1]*o[2] - v[2]*o[1],
		v[2]*o[0] - v[0]*o[2],
		v[0]*o[1] - v[1]*o[0],
	}
}

// Len returns the Euclidean length of v.
func (v Vec3) Len() float32 { return math32.Sqrt(v.Dot(v)) }

// Normalize returns v scaled to unit length, or the zero vector if v has no length.
func (v Vec3) Normalize() Vec3 {
	l := v.Len()
	if l < 1e-8 {
		return Vec3{}
	}
	return v.Scale(1 / l)
}

// Quat is a rotation quaternion stored as (x, y, z, w).
type Quat [4]float32

// QuatIdentity returns the identity rotation.
func QuatIdentity() Quat { return Quat{0, 0, 0, 1} }

// QuatFromAxisAngle builds a rotation of angle radians around a unit axis.
//
// Parameters:
//   - axis: the unit rotation axis
//   - angle: the rotation angle in radians
//
// Returns:
//   - Quat: the rotation quaternion
func QuatFromAxisAngle(axis Vec3, angle float32) Quat {
	s := math32.Sin(angle / 2)
	return Quat{axis[0] * s, axis[1] * s, axis[2] * s, math32.Cos(angle / 2)}
}

// Mul returns the Hamilton product q * o, i.e. o applied first, then q.
func (q Quat) Mul(o Quat) Quat {
	return Quat{
		q[3]*o[0] + q[0]*o[3] + q[1]*o[2] - q[2]*o[1],
		q[3]*o[1] - q[0]*o[2] + q[1]*o[3] + q[2]*o[0],
		q[3]*o[2] + q[0]*o[1] - q[1]*o[0] + q[2]*o[3],
		q[3]*o[3] - q[0]*o[0] - q[1]*o[1] - q[2]*o[2],
	}
}

// Normalize returns q scaled to unit length. A degenerate quaternion becomes the identity.
func (q Quat) Normalize() Quat {
	l := math32.Sqrt(q[0]*q[0] + q[1]*q[1] + q[2]*q[2] + q[3]*q[3])
	if l < 1e-8 {
		return QuatIdentity()
	}
	return Quat{q[0] / l, q[1] / l, q[2] / l, q[3] / l}
}

// Rotate applies the rotation q to v.
func (q Quat) Rotate(v Vec3) Vec3 {
	u := Vec3{q[0], q[1], q[2]}
	t := u.Cross(v).Scale(2)
	return v.Add(t.Scale(q[3])).Add(u.Cross(t))
}

// QuatFromBasis converts an orthonormal basis (the columns of a rotation matrix) into a quaternion.
//
// Parameters:
//   - right, up, back: the rotated X, Y and Z axes
//
// Returns:
//   - Quat: the equivalent unit quaternion
func QuatFromBasis(right, up, back Vec3) Quat {
	m00, m01, m02 := right[0], up[0], back[0]
	m10, m11, m12 := right[1], up[1], back[1]
	m20, m21, m22 := right[2], up[2], back[2]

	trace := m00 + m11 + m22
	var q Quat
	switch {
	case trace > 0:
		s := 0.5 / math32.Sqrt(trace+1)
		q = Quat{(m21 - m12) * s, (m02 - m20) * s, (m10 - m01) * s, 0.25 / s}
	case m00 > m11 && m00 > m22:
		s := 2 * math32.Sqrt(1+m00-m11-m22)
		q = Quat{0.25 * s, (m01 + m10) / s, (m02 + m20) / s, (m21 - m12) / s}
	case m11 > m22:
		s := 2 * math32.Sqrt(1+m11-m00-m22)
		q = Quat{(m01 + m10) / s, 0.25 * s, (m12 + m21) / s, (m02 - m20) / s}
	default:
		s := 2 * math32.Sqrt(1+m22-m00-m11)
		q = Quat{(m02 + m20) / s, (m12 + m21) / s, 0.25 * s, (m10 - m01) / s}
	}
	return q.Normalize()
}

// QuatLookAt returns the orientation of an object at eye whose -Z axis faces target, keeping the
// object's +Y as close to up as possible. When eye and target coincide the identity is returned.
//
// Parameters:
//   - eye: the viewer position
//   - target: the point to face
//   - up: the reference up vector (typically 0,1,0)
//
// Returns:
//   - Quat: the facing orientation
func QuatLookAt(eye, target, up Vec3) Quat {
	back := eye.Sub(target)
	if back.Len() < 1e-8 {
		return QuatIdentity()
	}
	back = back.Normalize()

	right := up.Cross(back)
	if right.Len() < 1e-8 {
		// back is parallel to up; nudge it off the pole
		back[2] += 0.0001
		back = back.Normalize()
		right = up.Cross(back)
	}
	right = right.Normalize()
	newUp := back.Cross(right)
	return QuatFromBasis(right, newUp, back)
}

// Identity resets a 4x4 matrix (flat slice) to the identity matrix.
// The matrix is stored in column-major order.
//
// Parameters:
//   - m: destination slice (must be at least 16 elements)
func Identity(m []float32) {
	for i := range m {
		m[i] = 0
	}
	m[0], m[5], m[10], m[15] = 1, 1, 1, 1
}

// SliceToBytes converts any slice to a byte slice for GPU buffer uploads.
// WARNING: The returned slice shares memory with the input - do not modify.
//
// Parameters:
//   - data: source slice of any type
//
// Returns:
//   - []byte: byte slice view of the input data, or nil if input is empty
func SliceToBytes[T any](data []T) []byte {
	if len(data) == 0 {
		return nil
	}
	var zero T
	size := unsafe.Sizeof(zero)
	return unsafe.Slice((*byte)(unsafe.Pointer(&data[0])), int(size)*len(data))
}

// Mul4 multiplies two 4x4 column-major matrices: out = a * b.
//
// Parameters:
//   - out: destination slice (must be at least 16 elements)
//   - a: left-hand matrix (16 elements)
//   - b: right-hand matrix (16 elements)
func Mul4(out, a, b []float32) {
	var buf [16]float32
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			sum := float32(0)
			for k := 0; k < 4; k++ {
				sum += a[k*4+j] * b[i*4+k]
			}
			buf[i*4+j] = sum
		}
	}
	copy(out, buf[:])
}

// Perspective creates a perspective projection matrix for WebGPU clip space [0, 1].
//
// Parameters:
//   - out: destination slice (must be at least 16 elements)
//   - fovY: vertical field of view in radians
//   - aspect: viewport aspect ratio (width/height)
//   - near: near clipping plane distance (must be > 0)
//   - far: far clipping plane distance (must be > near)
func Perspective(out []float32, fovY, aspect, near, far float32) {
	f := 1.0 / math32.Tan(fovY/2)
	Identity(out)

	out[0] = f / aspect
	out[5] = f
	out[10] = far / (near - far)
	out[11] = -1.0
	out[14] = (near * far) / (near - far)
	out[15] = 0.0
}

// ViewFromPose builds a view matrix for a viewer at pos with orientation q.
// It is the inverse of the viewer's rigid transform, laid out like a LookAt matrix.
//
// Parameters:
//   - out: destination slice (must be at least 16 elements)
//   - pos: viewer world position
//   - q: viewer orientation
func ViewFromPose(out []float32, pos Vec3, q Quat) {
	x := q.Rotate(Vec3{1, 0, 0})
	y := q.Rotate(Vec3{0, 1, 0})
	z := q.Rotate(Vec3{0, 0, 1})

	out[0], out[4], out[8], out[12] = x[0], x[1], x[2], -x.Dot(pos)
	out[1], out[5], out[9], out[13] = y[0], y[1], y[2], -y.Dot(pos)
	out[2], out[6], out[10], out[14] = z[0], z[1], z[2], -z.Dot(pos)
	out[3], out[7], out[11], out[15] = 0, 0, 0, 1
}

// BuildModelMatrix constructs a 4x4 model matrix from position, Euler rotation, and scale.
// The rotation order is Y * X * Z (yaw-pitch-roll). All matrices are column-major.
//
// Parameters:
//   - out: destination slice (must be at least 16 elements)
//   - pos: translation in world space
//   - rot: rotation angles in radians around each axis
//   - scale: scale factors along each axis
func BuildModelMatrix(out []float32, pos, rot, scale Vec3) {
	cx, sx := math32.Cos(rot[0]), math32.Sin(rot[0])
	cy, sy := math32.Cos(rot[1]), math32.Sin(rot[1])
	cz, sz := math32.Cos(rot[2]), math32.Sin(rot[2])

	out[0] = (cy*cz + sy*sx*sz) * scale[0]
	out[1] = (cx * sz) * scale[0]
	out[2] = (-sy*cz + cy*sx*sz) * scale[0]
	out[3] = 0

	out[4] = (cy*-sz + sy*sx*cz) * scale[1]
	out[5] = (cx * cz) * scale[1]
	out[6] = (sy*sz + cy*sx*cz) * scale[1]
	out[7] = 0

	out[8] = (sy * cx) * scale[2]
	out[9] = (-sx) * scale[2]
	out[10] = (cy * cx) * scale[2]
	out[11] = 0

	out[12] = pos[0]
	out[13] = pos[1]
	out[14] = pos[2]
	out[15] = 1
}
