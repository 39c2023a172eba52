package camera

import (
	"testing"

	"github.com/Carmen-Shannon/oxy-solar/common"
	"github.com/stretchr/testify/assert"
)

const eps = 1e-3

func assertVec(t *testing.T, want, got common.Vec3) {
	t.Helper()
	for i := range want {
		assert.InDelta(t, want[i], got[i], eps, "component %d of %v", i, got)
	}
}

func TestNewCameraCanonicalPose(t *testing.T) {
	c := NewCamera()

	assertVec(t, common.Vec3{0, 0, 500}, c.Position())
	assertVec(t, common.Vec3{0, 0, -1}, c.Forward())
	assert.InDelta(t, 0.1, c.Near(), 1e-6)
	assert.InDelta(t, 4100, c.Far(), 1e-6)
}

func TestCameraTranslateIsLocal(t *testing.T) {
	tests := []struct {
		name     string
		axis     Axis
		distance float32
		want     common.Vec3
	}{
		{"forward", AxisZ, -5, common.Vec3{0, 0, 495}},
		{"right", AxisX, 5, common.Vec3{5, 0, 500}},
		{"up", AxisY, 5, common.Vec3{0, 5, 500}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewCamera()
			assertVec(t, tt.want, c.Translated(tt.axis, tt.distance))
			assertVec(t, common.Vec3{0, 0, 500}, c.Position())

			c.Translate(tt.axis, tt.distance)
			assertVec(t, tt.want, c.Position())
		})
	}
}

func TestCameraRotateThenTranslateFollowsHeading(t *testing.T) {
	c := NewCamera()
	c.Rotate(AxisY, 1.5707964) // quarter turn left: forward becomes -X

	assertVec(t, common.Vec3{-1, 0, 0}, c.Forward())
	c.Translate(AxisZ, -10)
	assertVec(t, common.Vec3{-10, 0, 500}, c.Position())
}

func TestCameraLookAtAndReset(t *testing.T) {
	c := NewCamera(WithHome(0, 0, 300))
	c.SetPosition(common.Vec3{100, 0, 0})
	c.LookAtScene()
	assertVec(t, common.Vec3{-1, 0, 0}, c.Forward())

	c.Rotate(AxisZ, 0.4)
	c.Reset()
	assertVec(t, common.Vec3{0, 0, 300}, c.Position())
	assertVec(t, common.Vec3{0, 0, -1}, c.Forward())
}

func TestCameraSetAspectIgnoresNonPositive(t *testing.T) {
	c := NewCamera(WithAspect(2))
	before := c.ProjectionMatrix()

	c.SetAspect(0)
	c.SetAspect(-1)
	assert.Equal(t, float32(2), c.Aspect())
	assert.Equal(t, before, c.ProjectionMatrix())

	c.SetAspect(1.5)
	assert.NotEqual(t, before, c.ProjectionMatrix())
}

func TestCameraUniform(t *testing.T) {
	c := NewCamera()
	u := c.Uniform()

	assert.Equal(t, c.ViewProjectionMatrix(), u.ViewProj)
	assert.Equal(t, [3]float32{0, 0, 500}, u.CameraPosition)
	assert.Len(t, u.Marshal(), 80)
}
