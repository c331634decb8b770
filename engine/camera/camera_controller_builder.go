package camera

import (
	"github.com/XJINE/scenecam/common"
	"github.com/XJINE/scenecam/engine/input"
	"github.com/go-gl/mathgl/mgl32"
)

// CameraControllerOption is a functional option for configuring a CameraController.
type CameraControllerOption func(*cameraControllerImpl)

// WithPosition sets the initial camera position.
//
// Parameters:
//   - position: world-space position
//
// Returns:
//   - CameraControllerOption: functional option to set the position
func WithPosition(position mgl32.Vec3) CameraControllerOption {
	return func(cc *cameraControllerImpl) {
		cc.state.position = position
	}
}

// WithRotation sets the initial camera orientation.
//
// Parameters:
//   - rotation: the orientation quaternion
//
// Returns:
//   - CameraControllerOption: functional option to set the rotation
func WithRotation(rotation mgl32.Quat) CameraControllerOption {
	return func(cc *cameraControllerImpl) {
		cc.state.rotation = rotation.Normalize()
	}
}

// WithEulerAngles sets the initial camera orientation from Euler angles in degrees.
//
// Parameters:
//   - degrees: rotation around X, Y and Z
//
// Returns:
//   - CameraControllerOption: functional option to set the rotation
func WithEulerAngles(degrees mgl32.Vec3) CameraControllerOption {
	return func(cc *cameraControllerImpl) {
		cc.state.rotation = common.EulerToQuat(degrees)
	}
}

// WithConfig replaces the whole configuration.
//
// Parameters:
//   - cfg: the configuration
//
// Returns:
//   - CameraControllerOption: functional option to set the configuration
func WithConfig(cfg Config) CameraControllerOption {
	return func(cc *cameraControllerImpl) {
		cc.cfg = cfg
	}
}

// WithDolly sets the dolly channel configuration.
//
// Parameters:
//   - c: the dolly configuration
//
// Returns:
//   - CameraControllerOption: functional option to set the dolly channel
func WithDolly(c ChannelConfig) CameraControllerOption {
	return func(cc *cameraControllerImpl) {
		cc.cfg.Dolly = c
	}
}

// WithOrbit sets the orbit channel configuration.
//
// Parameters:
//   - c: the orbit configuration
//
// Returns:
//   - CameraControllerOption: functional option to set the orbit channel
func WithOrbit(c ChannelConfig) CameraControllerOption {
	return func(cc *cameraControllerImpl) {
		cc.cfg.Orbit = c
	}
}

// WithPan sets the pan channel configuration.
//
// Parameters:
//   - c: the pan configuration
//
// Returns:
//   - CameraControllerOption: functional option to set the pan channel
func WithPan(c ChannelConfig) CameraControllerOption {
	return func(cc *cameraControllerImpl) {
		cc.cfg.Pan = c
	}
}

// WithResetPose sets the pose Reset restores. It does not move the camera.
//
// Parameters:
//   - pose: the reset pose
//
// Returns:
//   - CameraControllerOption: functional option to set the reset pose
func WithResetPose(pose ResetPose) CameraControllerOption {
	return func(cc *cameraControllerImpl) {
		cc.cfg.Reset = pose
	}
}

// WithInput attaches the sampler Update reads each frame.
//
// Parameters:
//   - sampler: the input sampler
//
// Returns:
//   - CameraControllerOption: functional option to set the input sampler
func WithInput(sampler input.Sampler) CameraControllerOption {
	return func(cc *cameraControllerImpl) {
		cc.sampler = sampler
	}
}
