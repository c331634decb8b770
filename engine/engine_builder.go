package engine

import (
	"github.com/XJINE/scenecam/engine/camera"
	"github.com/XJINE/scenecam/engine/input"
	"github.com/XJINE/scenecam/engine/profiler"
	"github.com/XJINE/scenecam/engine/renderer"
	"github.com/XJINE/scenecam/engine/window"
)

// EngineBuilderOption is a functional option for configuring an Engine.
// Use the With* functions to create options that are applied directly to the engine instance.
type EngineBuilderOption func(*engine)

// WithProfiling enables or disables performance profiling output.
//
// Parameters:
//   - enabled: if true, enables performance profiling
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithProfiling(enabled bool) EngineBuilderOption {
	return func(e *engine) {
		e.profilingEnabled.Store(enabled)
	}
}

// WithProfiler replaces the default profiler, which logs once per second with the camera pose.
//
// Parameters:
//   - p: the profiler to tick from the render loop
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithProfiler(p *profiler.Profiler) EngineBuilderOption {
	return func(e *engine) {
		e.profiler = p
	}
}

// WithTickRate sets the rate at which the camera is stepped.
// Values <= 0 will be treated as the default (60Hz).
//
// Parameters:
//   - fps: target ticks per second (default 60)
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithTickRate(fps float64) EngineBuilderOption {
	return func(e *engine) {
		e.engineTickRate.Store(int64(tickInterval(fps)))
	}
}

// WithWindow sets the window whose input drives the camera. Without a window the engine only
// ticks and Run returns immediately.
//
// Parameters:
//   - w: a spawned Window instance
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithWindow(w window.Window) EngineBuilderOption {
	return func(e *engine) {
		e.window = w
	}
}

// WithRenderer sets the renderer drawn through the camera each render frame.
//
// Parameters:
//   - r: a renderer created against the engine's window
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithRenderer(r renderer.Renderer) EngineBuilderOption {
	return func(e *engine) {
		e.renderer = r
	}
}

// WithSampler sets the mouse sampler fed by the window.
// A controller without an input source is attached to it.
//
// Parameters:
//   - s: the sampler
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithSampler(s input.MouseSampler) EngineBuilderOption {
	return func(e *engine) {
		e.sampler = s
	}
}

// WithController sets the camera controller stepped each tick.
//
// Parameters:
//   - c: the controller
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithController(c camera.CameraController) EngineBuilderOption {
	return func(e *engine) {
		e.controller = c
	}
}

// WithCamera sets the camera whose matrices are refreshed each tick.
// A camera without a controller is attached to the engine's controller.
//
// Parameters:
//   - c: the camera
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithCamera(c camera.Camera) EngineBuilderOption {
	return func(e *engine) {
		e.camera = c
	}
}

// WithKeyBinding binds key to action, overriding the default reset and profiler keys if they collide.
//
// Parameters:
//   - key: the virtual key code
//   - action: the function to run on key press
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithKeyBinding(key uint32, action func()) EngineBuilderOption {
	return func(e *engine) {
		e.keyBindings[key] = action
	}
}

// WithRenderFrameLimit sets an optional render frame rate cap in frames per second.
// Pass 0 to uncap the render loop (default).
//
// Parameters:
//   - fps: maximum render frames per second (0 = uncapped)
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithRenderFrameLimit(fps float64) EngineBuilderOption {
	return func(e *engine) {
		e.renderFrameLimit = frameLimit(fps)
	}
}
