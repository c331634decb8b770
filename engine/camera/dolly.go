package camera

import (
	"github.com/XJINE/scenecam/common"
	"github.com/XJINE/scenecam/engine/input"
	"github.com/go-gl/mathgl/mgl32"
)

// stepDolly moves the camera along its forward axis by the trigger axis value.
// An idle axis leaves the target alone, so smoothing keeps easing toward the last target.
func stepDolly(s *motionState, cfg *Config, frame input.Frame, dt float32) {
	c := cfg.Dolly
	if !c.Enabled {
		return
	}

	amount := frame.Axis(c.TriggerAxis)
	if amount != 0 {
		forward := common.ForwardAxis(s.rotation)
		target := s.position.Add(forward.Mul(c.Speed * amount * common.Sign(c.Invert)))
		s.moveTarget = lockAxes(target, s.position, c)
	}

	s.position = commitPosition(s.position, s.moveTarget, c, dt)
}

// lockAxes replaces each locked component of target with the matching component of
// position.
func lockAxes(target, position mgl32.Vec3, c ChannelConfig) mgl32.Vec3 {
	if c.LockX {
		target[0] = position[0]
	}
	if c.LockY {
		target[1] = position[1]
	}
	if c.LockZ {
		target[2] = position[2]
	}
	return target
}
