package common

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/stretchr/testify/assert"
)

const eps = 1e-4

func assertVec(t *testing.T, want, got Vec3) {
	t.Helper()
	for i := range want {
		assert.InDelta(t, want[i], got[i], eps, "component %d of %v", i, got)
	}
}

func TestQuatRotate(t *testing.T) {
	tests := []struct {
		name  string
		axis  Vec3
		angle float32
		in    Vec3
		want  Vec3
	}{
		{"identity", Vec3{0, 1, 0}, 0, Vec3{1, 2, 3}, Vec3{1, 2, 3}},
		{"yaw quarter turn", Vec3{0, 1, 0}, math32.Pi / 2, Vec3{1, 0, 0}, Vec3{0, 0, -1}},
		{"pitch quarter turn", Vec3{1, 0, 0}, math32.Pi / 2, Vec3{0, 1, 0}, Vec3{0, 0, 1}},
		{"roll half turn", Vec3{0, 0, 1}, math32.Pi, Vec3{1, 0, 0}, Vec3{-1, 0, 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := QuatFromAxisAngle(tt.axis, tt.angle)
			assertVec(t, tt.want, q.Rotate(tt.in))
		})
	}
}

func TestQuatMulComposesRotations(t *testing.T) {
	a := QuatFromAxisAngle(Vec3{0, 1, 0}, 0.3)
	b := QuatFromAxisAngle(Vec3{0, 1, 0}, 0.4)
	want := QuatFromAxisAngle(Vec3{0, 1, 0}, 0.7)
	got := a.Mul(b)
	for i := range want {
		assert.InDelta(t, want[i], got[i], eps)
	}
}

func TestQuatLookAtFacesTarget(t *testing.T) {
	tests := []struct {
		name   string
		eye    Vec3
		target Vec3
	}{
		{"on +z axis", Vec3{0, 0, 500}, Vec3{}},
		{"off axis", Vec3{120, -80, 300}, Vec3{}},
		{"above pole", Vec3{0, 400, 0}, Vec3{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := QuatLookAt(tt.eye, tt.target, Vec3{0, 1, 0})
			forward := q.Rotate(Vec3{0, 0, -1})
			assertVec(t, tt.target.Sub(tt.eye).Normalize(), forward)
		})
	}
}

func TestViewFromPoseMapsEyeToOrigin(t *testing.T) {
	eye := Vec3{10, 20, 300}
	q := QuatLookAt(eye, Vec3{}, Vec3{0, 1, 0})

	var view [16]float32
	ViewFromPose(view[:], eye, q)

	// the eye lands on the view-space origin and the target lies on -Z
	x := view[0]*eye[0] + view[4]*eye[1] + view[8]*eye[2] + view[12]
	y := view[1]*eye[0] + view[5]*eye[1] + view[9]*eye[2] + view[13]
	z := view[2]*eye[0] + view[6]*eye[1] + view[10]*eye[2] + view[14]
	assertVec(t, Vec3{}, Vec3{x, y, z})

	tz := view[14]
	assert.InDelta(t, -eye.Len(), tz, 1e-2)
}

func TestMul4Identity(t *testing.T) {
	var id, m, out [16]float32
	Identity(id[:])
	for i := range m {
		m[i] = float32(i)
	}
	Mul4(out[:], id[:], m[:])
	assert.Equal(t, m, out)
}

func TestColorFromHex(t *testing.T) {
	c := ColorFromHex(0xff8000)
	assert.InDelta(t, 1.0, c[0], eps)
	assert.InDelta(t, 128.0/255.0, c[1], eps)
	assert.InDelta(t, 0.0, c[2], eps)
}

func TestKeyNames(t *testing.T) {
	assert.Equal(t, "w", KeyW.Name())
	assert.Equal(t, "ArrowUp", KeyUp.String())
	assert.Equal(t, "Key(1)", Key(1).String())

	k, ok := KeyByName("ArrowLeft")
	assert.True(t, ok)
	assert.Equal(t, KeyLeft, k)

	k, ok = KeyByName("-")
	assert.True(t, ok)
	assert.Equal(t, KeyMinus, k)

	_, ok = KeyByName("nope")
	assert.False(t, ok)
}

func TestCoalesce(t *testing.T) {
	assert.Equal(t, "b", Coalesce("", "b", "c"))
	assert.Equal(t, 0, Coalesce(0, 0))
}

func TestClamp(t *testing.T) {
	assert.Equal(t, float32(1), Clamp(float32(3), 0, 1))
	assert.Equal(t, float32(0), Clamp(float32(-1), 0, 1))
	assert.Equal(t, 5, Clamp(5, 0, 10))
}
