package camera

import (
	"github.com/XJINE/scenecam/common"
	"github.com/XJINE/scenecam/engine/input"
	"github.com/go-gl/mathgl/mgl32"
)

// stepOrbit turns the look direction while the orbit button is held.
// Yaw rotates around WorldUp. Pitch rotates around the axis perpendicular to the current
// forward and WorldUp, and is bounded so the target never reaches the vertical.
func stepOrbit(s *motionState, cfg *Config, frame input.Frame, dt float32) {
	c := cfg.Orbit
	if !c.Enabled {
		return
	}

	direction := common.Sign(c.Invert)
	mx := frame.Axis(common.MouseAxisX) * direction
	my := frame.Axis(common.MouseAxisY) * direction

	if frame.ButtonHeld(c.TriggerButton) {
		if !c.LockX {
			s.rotateTarget = common.AxisAngle(mx*c.Speed, common.WorldUp).Rotate(s.rotateTarget)
		}
		if !c.LockY {
			s.rotateTarget = pitchTarget(s.rotateTarget, s.rotation, my*c.Speed)
		}
	}

	// A vertical or zero target has no look rotation; hold the current orientation.
	look, ok := common.LookRotation(s.rotateTarget, common.WorldUp)
	if !ok {
		return
	}
	s.rotation = commitRotation(s.rotation, look, c, dt)
}

// pitchTarget tilts target by degrees around the camera's pitch axis.
// The pitch axis comes from the current rotation, not the target.
func pitchTarget(target mgl32.Vec3, rotation mgl32.Quat, degrees float32) mgl32.Vec3 {
	if degrees == 0 {
		return target
	}

	axis := common.ForwardAxis(rotation).Cross(common.WorldUp)
	if axis.Len() < common.Epsilon {
		// Looking straight up or down; cross(forward, up) equals -right elsewhere.
		axis = common.RightAxis(rotation).Mul(-1)
	}

	next := common.AxisAngle(degrees, axis).Rotate(target)
	return common.ClampPitch(target, next, common.MaxElevation)
}
