package camera

import (
	"github.com/XJINE/scenecam/common"
	"github.com/XJINE/scenecam/engine/input"
	"github.com/go-gl/mathgl/mgl32"
)

// motionState is the state shared by every channel within a frame.
// Dolly and pan both drive moveTarget; orbit drives rotateTarget.
type motionState struct {
	position     mgl32.Vec3
	rotation     mgl32.Quat
	moveTarget   mgl32.Vec3
	rotateTarget mgl32.Vec3
}

// channelStep advances one channel by a frame and commits its result to s.
type channelStep func(s *motionState, cfg *Config, frame input.Frame, dt float32)

// pipeline lists the channels in execution order. Each step commits before the next one
// runs, so pan starts from the position dolly produced this frame. The order is observable
// and must stay dolly, orbit, pan.
var pipeline = [...]channelStep{
	stepDolly,
	stepOrbit,
	stepPan,
}

// runPipeline advances every channel once.
func runPipeline(s *motionState, cfg *Config, frame input.Frame, dt float32) {
	for _, step := range pipeline {
		step(s, cfg, frame, dt)
	}
}

// commitPosition moves current toward target, snapping when smoothing is off.
func commitPosition(current, target mgl32.Vec3, c ChannelConfig, dt float32) mgl32.Vec3 {
	if !c.Smooth {
		return target
	}
	return common.Lerp(current, target, c.SmoothRate*dt)
}

// commitRotation turns current toward target, snapping when smoothing is off.
func commitRotation(current, target mgl32.Quat, c ChannelConfig, dt float32) mgl32.Quat {
	if !c.Smooth {
		return target
	}
	return common.Slerp(current, target, c.SmoothRate*dt)
}
