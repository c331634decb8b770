package camera

import (
	"github.com/XJINE/scenecam/common"
	"github.com/XJINE/scenecam/engine/input"
	"github.com/go-gl/mathgl/mgl32"
)

// CameraController defines the union interface for the free-roam camera rig.
// The controller owns the camera pose plus the move and rotate targets its channels drive.
// Camera reads the pose and computes view/projection matrices. Embeds motionController,
// poseController and channelController so one instance exposes the frame step, the pose and
// the live tuning surface.
type CameraController interface {
	motionController
	poseController
	channelController
}

// motionController defines the per-frame entry points.
type motionController interface {
	// Start synchronizes the move and rotate targets to the current pose, so the first
	// frame after it produces no motion on its own.
	Start()

	// Update samples the attached input and advances every channel by dt seconds.
	// With no input attached the frame is idle: smoothing still eases toward the targets.
	//
	// Parameters:
	//   - dt: seconds elapsed since the previous frame
	Update(dt float32)

	// Step advances every channel by dt seconds using an explicit input frame.
	// Channels run in the order dolly, orbit, pan and each commits before the next.
	//
	// Parameters:
	//   - frame: the input for this frame
	//   - dt: seconds elapsed since the previous frame
	Step(frame input.Frame, dt float32)

	// Reset moves the camera to the configured reset pose and resynchronizes both targets.
	Reset()

	// Input returns the attached input sampler, or nil.
	//
	// Returns:
	//   - input.Sampler: the sampler read by Update
	Input() input.Sampler

	// SetInput attaches the sampler read by Update.
	//
	// Parameters:
	//   - sampler: the sampler to attach, or nil to detach
	SetInput(sampler input.Sampler)
}

// poseController defines access to the camera pose and the channel targets.
type poseController interface {
	// Position returns the camera's world-space position.
	//
	// Returns:
	//   - mgl32.Vec3: world-space camera position
	Position() mgl32.Vec3

	// SetPosition sets the camera's world-space position directly.
	// The targets are left untouched; call Start to resynchronize them.
	//
	// Parameters:
	//   - position: world-space coordinates
	SetPosition(position mgl32.Vec3)

	// Rotation returns the camera's orientation.
	//
	// Returns:
	//   - mgl32.Quat: unit rotation quaternion
	Rotation() mgl32.Quat

	// SetRotation sets the camera's orientation directly.
	// The targets are left untouched; call Start to resynchronize them.
	//
	// Parameters:
	//   - rotation: the new orientation
	SetRotation(rotation mgl32.Quat)

	// Pose returns the position and rotation together.
	//
	// Returns:
	//   - common.Pose: the current pose
	Pose() common.Pose

	// Forward returns the camera's world-space forward axis.
	Forward() mgl32.Vec3

	// Right returns the camera's world-space right axis.
	Right() mgl32.Vec3

	// Up returns the camera's world-space up axis.
	Up() mgl32.Vec3

	// MoveTarget returns the position the dolly and pan channels drive toward.
	//
	// Returns:
	//   - mgl32.Vec3: the shared move target
	MoveTarget() mgl32.Vec3

	// RotateTarget returns the direction the orbit channel drives the forward axis toward.
	// It is not normalized.
	//
	// Returns:
	//   - mgl32.Vec3: the rotate target
	RotateTarget() mgl32.Vec3
}

// channelController defines the live tuning surface. Changes apply from the next frame.
type channelController interface {
	// Config returns a copy of the current configuration.
	//
	// Returns:
	//   - Config: the configuration
	Config() Config

	// SetConfig replaces the whole configuration.
	//
	// Parameters:
	//   - cfg: the new configuration
	SetConfig(cfg Config)

	// SetDolly replaces the dolly channel configuration.
	//
	// Parameters:
	//   - c: the new dolly configuration
	SetDolly(c ChannelConfig)

	// SetOrbit replaces the orbit channel configuration.
	//
	// Parameters:
	//   - c: the new orbit configuration
	SetOrbit(c ChannelConfig)

	// SetPan replaces the pan channel configuration.
	//
	// Parameters:
	//   - c: the new pan configuration
	SetPan(c ChannelConfig)

	// SetResetPose replaces the pose Reset restores.
	//
	// Parameters:
	//   - pose: the new reset pose
	SetResetPose(pose ResetPose)
}
