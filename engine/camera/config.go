package camera

import (
	"github.com/XJINE/scenecam/common"
	"github.com/go-gl/mathgl/mgl32"
)

// ChannelConfig holds the tuning of a single motion channel.
// The same shape serves dolly, orbit and pan; fields a channel does not read are ignored
// (TriggerAxis only drives dolly, TriggerButton only orbit and pan, LockZ only dolly).
type ChannelConfig struct {
	// Enabled turns the channel on. A disabled channel neither updates its target nor
	// commits to the camera.
	Enabled bool

	// TriggerAxis is the axis whose value drives the dolly channel.
	TriggerAxis common.MouseAxis

	// TriggerButton is the button that must be held for orbit or pan to read input.
	TriggerButton common.MouseButton

	// Invert flips the channel's direction.
	Invert bool

	// Speed scales input into world units (dolly, pan) or degrees (orbit).
	Speed float32

	// LockX, LockY and LockZ freeze motion along an axis. Dolly locks world axes; orbit
	// and pan read LockX as the horizontal input and LockY as the vertical input.
	LockX bool
	LockY bool
	LockZ bool

	// Smooth eases the camera toward the target instead of snapping to it.
	Smooth bool

	// SmoothRate is the easing rate; each frame closes SmoothRate*dt of the remaining gap.
	SmoothRate float32
}

// ResetPose is the pose Reset restores.
type ResetPose struct {
	Position mgl32.Vec3

	// EulerAngles are degrees around X, Y and Z.
	EulerAngles mgl32.Vec3
}

// Rotation converts the reset Euler angles into a rotation.
//
// Returns:
//   - mgl32.Quat: the reset orientation
func (r ResetPose) Rotation() mgl32.Quat {
	return common.EulerToQuat(r.EulerAngles)
}

// Pose returns the reset pose as a position and rotation.
//
// Returns:
//   - common.Pose: the reset pose
func (r ResetPose) Pose() common.Pose {
	return common.Pose{Position: r.Position, Rotation: r.Rotation()}
}

// Config is the full controller configuration: one ChannelConfig per channel and the
// reset pose. It is a plain value; the controller copies it and reads the copy each frame.
type Config struct {
	Dolly ChannelConfig
	Orbit ChannelConfig
	Pan   ChannelConfig
	Reset ResetPose
}

// DefaultDollyConfig returns the default dolly tuning: scroll wheel, 6 units per notch,
// smoothed at rate 10.
func DefaultDollyConfig() ChannelConfig {
	return ChannelConfig{
		Enabled:     true,
		TriggerAxis: common.MouseAxisScrollWheel,
		Speed:       6,
		Smooth:      true,
		SmoothRate:  10,
	}
}

// DefaultOrbitConfig returns the default orbit tuning: right button, 3 degrees per unit,
// smoothed at rate 10.
func DefaultOrbitConfig() ChannelConfig {
	return ChannelConfig{
		Enabled:       true,
		TriggerButton: common.MouseButtonRight,
		Speed:         3,
		Smooth:        true,
		SmoothRate:    10,
	}
}

// DefaultPanConfig returns the default pan tuning: middle button, 3 units per unit,
// smoothed at rate 10.
func DefaultPanConfig() ChannelConfig {
	return ChannelConfig{
		Enabled:       true,
		TriggerButton: common.MouseButtonMiddle,
		Speed:         3,
		Smooth:        true,
		SmoothRate:    10,
	}
}

// DefaultConfig returns the default configuration with every channel enabled and a
// reset pose at the origin looking down +Z.
//
// Returns:
//   - Config: the default configuration
func DefaultConfig() Config {
	return Config{
		Dolly: DefaultDollyConfig(),
		Orbit: DefaultOrbitConfig(),
		Pan:   DefaultPanConfig(),
	}
}
