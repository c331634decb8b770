package camera

import (
	"sync"

	"github.com/XJINE/scenecam/common"
	"github.com/XJINE/scenecam/engine/input"
	"github.com/go-gl/mathgl/mgl32"
)

// cameraControllerImpl is the single implementation of CameraController.
// All channels run inside one Step call under the mutex, so the engine tick and config
// reloads from other goroutines never observe a half-applied frame.
type cameraControllerImpl struct {
	mu *sync.Mutex

	state motionState
	cfg   Config

	sampler input.Sampler
}

// Compile-time interface compliance check
var _ CameraController = &cameraControllerImpl{}

// NewCameraController creates a new camera controller.
// The camera starts at the origin looking down +Z with DefaultConfig. After the options are
// applied the controller is started, so the targets match the configured pose.
//
// Parameters:
//   - options: functional options to configure the controller
//
// Returns:
//   - CameraController: the newly created controller
func NewCameraController(options ...CameraControllerOption) CameraController {
	cc := &cameraControllerImpl{
		mu: &sync.Mutex{},
		state: motionState{
			rotation: mgl32.QuatIdent(),
		},
		cfg: DefaultConfig(),
	}

	for _, option := range options {
		option(cc)
	}

	cc.start()
	return cc
}

// --- internal helpers ---

// start resynchronizes both targets to the pose. Caller must hold the mutex.
func (cc *cameraControllerImpl) start() {
	cc.state.moveTarget = cc.state.position
	cc.state.rotateTarget = common.ForwardAxis(cc.state.rotation)
}

// --- motionController implementation ---

func (cc *cameraControllerImpl) Start() {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	cc.start()
}

func (cc *cameraControllerImpl) Update(dt float32) {
	cc.mu.Lock()
	sampler := cc.sampler
	cc.mu.Unlock()

	// Sample outside the lock; the sampler has its own synchronization.
	cc.Step(input.Sample(sampler), dt)
}

func (cc *cameraControllerImpl) Step(frame input.Frame, dt float32) {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	runPipeline(&cc.state, &cc.cfg, frame, dt)
}

func (cc *cameraControllerImpl) Reset() {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	cc.state.position = cc.cfg.Reset.Position
	cc.state.rotation = cc.cfg.Reset.Rotation()
	cc.start()
}

func (cc *cameraControllerImpl) Input() input.Sampler {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	return cc.sampler
}

func (cc *cameraControllerImpl) SetInput(sampler input.Sampler) {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	cc.sampler = sampler
}

// --- poseController implementation ---

func (cc *cameraControllerImpl) Position() mgl32.Vec3 {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	return cc.state.position
}

func (cc *cameraControllerImpl) SetPosition(position mgl32.Vec3) {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	cc.state.position = position
}

func (cc *cameraControllerImpl) Rotation() mgl32.Quat {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	return cc.state.rotation
}

func (cc *cameraControllerImpl) SetRotation(rotation mgl32.Quat) {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	cc.state.rotation = rotation.Normalize()
}

func (cc *cameraControllerImpl) Pose() common.Pose {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	return common.Pose{Position: cc.state.position, Rotation: cc.state.rotation}
}

func (cc *cameraControllerImpl) Forward() mgl32.Vec3 {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	return common.ForwardAxis(cc.state.rotation)
}

func (cc *cameraControllerImpl) Right() mgl32.Vec3 {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	return common.RightAxis(cc.state.rotation)
}

func (cc *cameraControllerImpl) Up() mgl32.Vec3 {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	return common.UpAxis(cc.state.rotation)
}

func (cc *cameraControllerImpl) MoveTarget() mgl32.Vec3 {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	return cc.state.moveTarget
}

func (cc *cameraControllerImpl) RotateTarget() mgl32.Vec3 {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	return cc.state.rotateTarget
}

// --- channelController implementation ---

func (cc *cameraControllerImpl) Config() Config {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	return cc.cfg
}

func (cc *cameraControllerImpl) SetConfig(cfg Config) {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	cc.cfg = cfg
}

func (cc *cameraControllerImpl) SetDolly(c ChannelConfig) {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	cc.cfg.Dolly = c
}

func (cc *cameraControllerImpl) SetOrbit(c ChannelConfig) {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	cc.cfg.Orbit = c
}

func (cc *cameraControllerImpl) SetPan(c ChannelConfig) {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	cc.cfg.Pan = c
}

func (cc *cameraControllerImpl) SetResetPose(pose ResetPose) {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	cc.cfg.Reset = pose
}
