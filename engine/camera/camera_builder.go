package camera

import "github.com/Carmen-Shannon/oxy-solar/common"

// CameraBuilderOption is a functional option for configuring a Camera.
type CameraBuilderOption func(*cameraImpl)

// WithUp sets the camera's reference up vector used by LookAt.
//
// Parameters:
//   - x, y, z: up vector components
//
// Returns:
//   - CameraBuilderOption: a function that sets the camera's up vector
func WithUp(x, y, z float32) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.up = common.Vec3{x, y, z}.Normalize()
	}
}

// WithFov sets the camera's vertical field of view in radians.
//
// Parameters:
//   - fov: field of view in radians
//
// Returns:
//   - CameraBuilderOption: a function that sets the camera's field of view
func WithFov(fov float32) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.fov = fov
	}
}

// WithAspect sets the camera's aspect ratio (width / height).
//
// Parameters:
//   - aspect: the aspect ratio to set
//
// Returns:
//   - CameraBuilderOption: a function that sets the camera's aspect ratio
func WithAspect(aspect float32) CameraBuilderOption {
	return func(c *cameraImpl) {
		if aspect > 0 {
			c.aspect = aspect
		}
	}
}

// WithNear sets the near clipping plane distance.
//
// Parameters:
//   - near: near plane distance
//
// Returns:
//   - CameraBuilderOption: a function that sets the near plane
func WithNear(near float32) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.near = near
	}
}

// WithFar sets the far clipping plane distance.
//
// Parameters:
//   - far: far plane distance
//
// Returns:
//   - CameraBuilderOption: functional option to set the far plane
func WithFar(far float32) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.far = far
	}
}

// WithHome sets the canonical position restored by Reset.
//
// Parameters:
//   - x, y, z: world-space home position
//
// Returns:
//   - CameraBuilderOption: functional option to set the home position
func WithHome(x, y, z float32) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.home = common.Vec3{x, y, z}
	}
}

// WithTarget sets the point the camera faces in its canonical pose and on LookAtScene.
//
// Parameters:
//   - x, y, z: world-space target
//
// Returns:
//   - CameraBuilderOption: functional option to set the scene target
func WithTarget(x, y, z float32) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.target = common.Vec3{x, y, z}
	}
}
