package camera

import (
	"github.com/XJINE/scenecam/common"
	"github.com/XJINE/scenecam/engine/input"
)

// stepPan drags the camera across its right axis and WorldUp while the pan button is held.
// Pan's sign is the reverse of dolly and orbit: with Invert unset, dragging right moves the
// camera left, so the scene follows the pointer.
func stepPan(s *motionState, cfg *Config, frame input.Frame, dt float32) {
	c := cfg.Pan
	if !c.Enabled {
		return
	}

	direction := common.Sign(!c.Invert)
	mx := frame.Axis(common.MouseAxisX) * direction
	my := frame.Axis(common.MouseAxisY) * direction

	if frame.ButtonHeld(c.TriggerButton) {
		target := s.position
		if !c.LockX {
			target = target.Add(common.RightAxis(s.rotation).Mul(mx * c.Speed))
		}
		if !c.LockY {
			target = target.Add(common.WorldUp.Mul(my * c.Speed))
		}
		s.moveTarget = target
	}

	s.position = commitPosition(s.position, s.moveTarget, c, dt)
}
