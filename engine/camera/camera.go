package camera

import (
	"github.com/Carmen-Shannon/oxy-solar/common"
	"github.com/chewxy/math32"
)

// Axis selects one of the camera's local axes.
type Axis int

const (
	AxisX Axis = iota // local right
	AxisY             // local up
	AxisZ             // local back; the camera looks down -Z
)

type cameraImpl struct {
	position    common.Vec3
	orientation common.Quat

	home   common.Vec3
	target common.Vec3
	up     common.Vec3

	fov    float32
	aspect float32
	near   float32
	far    float32

	viewMatrix           [16]float32
	projectionMatrix     [16]float32
	viewProjectionMatrix [16]float32
}

// Camera is a perspective viewpoint with a free position and orientation.
// Translations and rotations are applied in the camera's local frame. Matrices are recomputed on
// every mutation, so readers always observe a consistent view-projection.
type Camera interface {
	// Position returns the camera's world-space position.
	Position() common.Vec3

	// SetPosition moves the camera without changing its orientation.
	//
	// Parameters:
	//   - p: world-space position
	SetPosition(p common.Vec3)

	// Orientation returns the camera's rotation.
	Orientation() common.Quat

	// SetOrientation replaces the camera's rotation. The quaternion is normalized.
	//
	// Parameters:
	//   - q: the new orientation
	SetOrientation(q common.Quat)

	// Translate moves the camera by distance along one of its local axes.
	//
	// Parameters:
	//   - axis: the local axis
	//   - distance: signed distance in world units
	Translate(axis Axis, distance float32)

	// Translated returns where Translate would move the camera, without moving it.
	//
	// Parameters:
	//   - axis: the local axis
	//   - distance: signed distance in world units
	//
	// Returns:
	//   - common.Vec3: the resulting position
	Translated(axis Axis, distance float32) common.Vec3

	// Rotate turns the camera by angle radians around one of its local axes.
	//
	// Parameters:
	//   - axis: the local axis
	//   - angle: signed angle in radians
	Rotate(axis Axis, angle float32)

	// LookAt orients the camera so that it faces the target point, keeping its position.
	//
	// Parameters:
	//   - target: world-space point to face
	LookAt(target common.Vec3)

	// LookAtScene orients the camera towards the scene target (the origin by default).
	LookAtScene()

	// Reset restores the canonical pose: home position, facing the scene target.
	Reset()

	// Home returns the canonical position.
	Home() common.Vec3

	// Forward returns the unit vector the camera is looking along.
	Forward() common.Vec3

	Fov() float32
	Aspect() float32
	Near() float32
	Far() float32

	// SetAspect sets the aspect ratio (width / height) and recomputes the projection.
	//
	// Parameters:
	//   - aspect: the aspect ratio
	SetAspect(aspect float32)

	// ViewMatrix returns the current 4x4 view matrix (column-major).
	ViewMatrix() [16]float32

	// ProjectionMatrix returns the current 4x4 projection matrix (column-major).
	ProjectionMatrix() [16]float32

	// ViewProjectionMatrix returns projection * view (column-major).
	ViewProjectionMatrix() [16]float32

	// Uniform returns the camera data in its GPU layout.
	Uniform() GPUCameraUniform
}

var _ Camera = &cameraImpl{}

// NewCamera creates a Camera in its canonical pose.
//
// Parameters:
//   - options: functional options to configure the camera
//
// Returns:
//   - Camera: the newly created camera
func NewCamera(options ...CameraBuilderOption) Camera {
	c := &cameraImpl{
		home:   common.Vec3{0, 0, 500},
		up:     common.Vec3{0, 1, 0},
		fov:    50 * math32.Pi / 180,
		aspect: 1,
		near:   0.1,
		far:    4100,
	}
	for _, option := range options {
		option(c)
	}
	c.Reset()
	return c
}

func (c *cameraImpl) Position() common.Vec3 {
	return c.position
}

func (c *cameraImpl) SetPosition(p common.Vec3) {
	c.position = p
	c.updateMatrices()
}

func (c *cameraImpl) Orientation() common.Quat {
	return c.orientation
}

func (c *cameraImpl) SetOrientation(q common.Quat) {
	c.orientation = q.Normalize()
	c.updateMatrices()
}

func (c *cameraImpl) Translate(axis Axis, distance float32) {
	c.position = c.Translated(axis, distance)
	c.updateMatrices()
}

func (c *cameraImpl) Translated(axis Axis, distance float32) common.Vec3 {
	return c.position.Add(c.orientation.Rotate(axisVector(axis)).Scale(distance))
}

func (c *cameraImpl) Rotate(axis Axis, angle float32) {
	c.orientation = c.orientation.Mul(common.QuatFromAxisAngle(axisVector(axis), angle)).Normalize()
	c.updateMatrices()
}

func (c *cameraImpl) LookAt(target common.Vec3) {
	c.orientation = common.QuatLookAt(c.position, target, c.up)
	c.updateMatrices()
}

func (c *cameraImpl) LookAtScene() {
	c.LookAt(c.target)
}

func (c *cameraImpl) Reset() {
	c.position = c.home
	c.LookAt(c.target)
}

func (c *cameraImpl) Home() common.Vec3 {
	return c.home
}

func (c *cameraImpl) Forward() common.Vec3 {
	return c.orientation.Rotate(common.Vec3{0, 0, -1})
}

func (c *cameraImpl) Fov() float32 {
	return c.fov
}

func (c *cameraImpl) Aspect() float32 {
	return c.aspect
}

func (c *cameraImpl) Near() float32 {
	return c.near
}

func (c *cameraImpl) Far() float32 {
	return c.far
}

func (c *cameraImpl) SetAspect(aspect float32) {
	if aspect <= 0 {
		return
	}
	c.aspect = aspect
	c.updateMatrices()
}

func (c *cameraImpl) ViewMatrix() [16]float32 {
	return c.viewMatrix
}

func (c *cameraImpl) ProjectionMatrix() [16]float32 {
	return c.projectionMatrix
}

func (c *cameraImpl) ViewProjectionMatrix() [16]float32 {
	return c.viewProjectionMatrix
}

func (c *cameraImpl) Uniform() GPUCameraUniform {
	return GPUCameraUniform{
		ViewProj:       c.viewProjectionMatrix,
		CameraPosition: c.position,
	}
}

// updateMatrices recalculates the view, projection and view-projection matrices from the pose.
func (c *cameraImpl) updateMatrices() {
	common.ViewFromPose(c.viewMatrix[:], c.position, c.orientation)
	common.Perspective(c.projectionMatrix[:], c.fov, c.aspect, c.near, c.far)
	common.Mul4(c.viewProjectionMatrix[:], c.projectionMatrix[:], c.viewMatrix[:])
}

func axisVector(axis Axis) common.Vec3 {
	switch axis {
	case AxisX:
		return common.Vec3{1, 0, 0}
	case AxisY:
		return common.Vec3{0, 1, 0}
	default:
		return common.Vec3{0, 0, 1}
	}
}
