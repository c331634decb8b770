package engine

import (
	"log"
	"sync"
	"sync/atomic"
	"time"

	"github.com/XJINE/scenecam/common"
	"github.com/XJINE/scenecam/engine/camera"
	"github.com/XJINE/scenecam/engine/input"
	"github.com/XJINE/scenecam/engine/profiler"
	"github.com/XJINE/scenecam/engine/renderer"
	"github.com/XJINE/scenecam/engine/window"
)

// engine implements the Engine interface.
// Coordinates the tick, render and window threads around one camera rig.
type engine struct {
	tickRateChannel chan time.Duration // Channel for dynamic tick rate updates

	running atomic.Bool
	wg      sync.WaitGroup

	quitChannel chan struct{}
	quitOnce    sync.Once // Ensures quitChannel is only closed once

	window   window.Window
	renderer renderer.Renderer

	sampler    input.MouseSampler
	controller camera.CameraController
	camera     camera.Camera

	profiler         *profiler.Profiler
	profilingEnabled atomic.Bool

	keyMu       *sync.Mutex
	keyBindings map[uint32]func()

	engineTickRate atomic.Int64 // time.Duration
	tickCallback   func(deltaTime float32)
	renderCallback func(deltaTime float32)

	renderFrameLimit time.Duration // minimum frame duration; 0 = uncapped
}

// Engine is the main entry point for the camera preview.
// It samples the mouse, steps the camera controller at a fixed rate and renders through the camera.
type Engine interface {
	// Window returns the underlying window, or nil when running headless.
	//
	// Returns:
	//   - window.Window: the window instance
	Window() window.Window

	// Sampler returns the mouse sampler fed by the window.
	//
	// Returns:
	//   - input.MouseSampler: the sampler
	Sampler() input.MouseSampler

	// Controller returns the camera controller stepped each tick.
	//
	// Returns:
	//   - camera.CameraController: the controller
	Controller() camera.CameraController

	// Camera returns the camera whose matrices are recomputed each tick.
	//
	// Returns:
	//   - camera.Camera: the camera
	Camera() camera.Camera

	// EnableProfiler enables performance profiling output to the log.
	EnableProfiler()

	// DisableProfiler disables performance profiling output.
	DisableProfiler()

	// ToggleProfiler flips profiling output on or off.
	ToggleProfiler()

	// SetTickRate sets the engine tick rate in frames per second.
	//
	// Parameters:
	//   - fps: target frames per second (defaults to 60 if <= 0)
	SetTickRate(fps float64)

	// SetTickCallback registers the function called after the camera has been stepped each tick.
	//
	// Parameters:
	//   - callback: function to call at the configured tick rate, receiving the delta time in seconds
	SetTickCallback(callback func(deltaTime float32))

	// SetRenderCallback registers the function called each render frame.
	//
	// Parameters:
	//   - callback: function to call each render frame, receiving the delta time in seconds
	SetRenderCallback(callback func(deltaTime float32))

	// SetRenderFrameLimit sets an optional render frame rate cap in frames per second.
	// Pass 0 to uncap the render loop (default).
	//
	// Parameters:
	//   - fps: maximum render frames per second (0 = uncapped)
	SetRenderFrameLimit(fps float64)

	// BindKey runs action whenever key is pressed. Replaces any existing binding for key.
	// The engine binds common.KeyR to a camera reset and common.KeyP to the profiler toggle.
	//
	// Parameters:
	//   - key: the virtual key code
	//   - action: the function to run, or nil to remove the binding
	BindKey(key uint32, action func())

	// Run starts the tick and render loops and blocks in the window message loop until it closes.
	Run()

	// Quit signals all engine goroutines to stop and waits for them to exit.
	// Must not be called from a tick or render callback.
	// Safe to call multiple times; subsequent calls are no-ops.
	Quit()
}

// NewEngine creates a new Engine instance with the provided options.
// Missing pieces of the rig are created with their defaults: a mouse sampler, a controller
// reading it, and a camera following the controller. Window callbacks are wired to the sampler.
//
// Parameters:
//   - options: functional options for engine configuration
//
// Returns:
//   - Engine: the newly created engine
func NewEngine(options ...EngineBuilderOption) Engine {
	e := &engine{
		tickRateChannel: make(chan time.Duration, 1),
		quitChannel:     make(chan struct{}),
		keyMu:           &sync.Mutex{},
		keyBindings:     make(map[uint32]func()),
	}
	e.engineTickRate.Store(int64(time.Second / 60))

	for _, opt := range options {
		opt(e)
	}

	if e.sampler == nil {
		e.sampler = input.NewMouseSampler()
	}
	if e.controller == nil {
		e.controller = camera.NewCameraController(camera.WithInput(e.sampler))
	} else if e.controller.Input() == nil {
		e.controller.SetInput(e.sampler)
	}
	if e.camera == nil {
		e.camera = camera.NewCamera(camera.WithController(e.controller))
	} else if e.camera.Controller() == nil {
		e.camera.SetController(e.controller)
	}
	if e.profiler == nil {
		e.profiler = profiler.NewProfiler(profiler.WithPoseSource(e.camera.Pose))
	}

	e.bindDefaultKeys()
	e.wireWindow()

	return e
}

// bindDefaultKeys installs the reset and profiler bindings unless an option already claimed the key.
func (e *engine) bindDefaultKeys() {
	e.keyMu.Lock()
	defer e.keyMu.Unlock()
	if _, ok := e.keyBindings[common.KeyR]; !ok {
		e.keyBindings[common.KeyR] = func() {
			e.controller.Reset()
			e.sampler.Reset()
			log.Printf("[Engine] camera reset")
		}
	}
	if _, ok := e.keyBindings[common.KeyP]; !ok {
		e.keyBindings[common.KeyP] = e.ToggleProfiler
	}
}

// wireWindow routes window input into the sampler and key bindings, and resizes into the camera and renderer.
func (e *engine) wireWindow() {
	if e.window == nil {
		return
	}
	e.window.SetCursorCallback(e.sampler.HandleCursor)
	e.window.SetScrollCallback(e.sampler.HandleScroll)
	e.window.SetMouseButtonCallback(e.sampler.HandleButton)
	e.window.SetKeyDownCallback(e.handleKey)
	e.window.SetResizeCallback(e.resize)

	if w, h := e.window.Width(), e.window.Height(); w > 0 && h > 0 {
		e.camera.SetAspect(float32(w) / float32(h))
	}
}

func (e *engine) handleKey(keyCode uint32) {
	e.keyMu.Lock()
	action := e.keyBindings[keyCode]
	e.keyMu.Unlock()
	if action != nil {
		action()
	}
}

func (e *engine) resize(width, height int) {
	if e.renderer != nil {
		e.renderer.Resize(width, height)
	}
	if width > 0 && height > 0 {
		e.camera.SetAspect(float32(width) / float32(height))
	}
}

func (e *engine) Window() window.Window {
	return e.window
}

func (e *engine) Sampler() input.MouseSampler {
	return e.sampler
}

func (e *engine) Controller() camera.CameraController {
	return e.controller
}

func (e *engine) Camera() camera.Camera {
	return e.camera
}

func (e *engine) BindKey(key uint32, action func()) {
	e.keyMu.Lock()
	defer e.keyMu.Unlock()
	if action == nil {
		delete(e.keyBindings, key)
		return
	}
	e.keyBindings[key] = action
}

// Run starts the engine goroutines and blocks in the window message loop.
// Once the window closes it stops the goroutines, releases the renderer and destroys the window.
func (e *engine) Run() {
	e.handle()
	if e.window != nil {
		e.window.ProcessMessages()
		e.Quit()
		if err := e.window.Close(); err != nil {
			log.Printf("[Engine] close window: %v", err)
		}
	}
}

// Quit signals all engine goroutines to stop and waits for them.
func (e *engine) Quit() {
	e.signalQuit()
	e.wg.Wait()
	if e.renderer != nil {
		e.renderer.Release()
	}
}

// signalQuit closes the quit channel to signal all goroutines to exit.
// Uses sync.Once to ensure the channel is only closed once.
func (e *engine) signalQuit() {
	e.quitOnce.Do(func() {
		e.running.Store(false)
		close(e.quitChannel)
	})
}

// handle launches the engine, render, and quit goroutines.
// Each goroutine is tracked by the engine's WaitGroup.
func (e *engine) handle() {
	e.running.Store(true)
	e.wg.Add(3)
	go e.handleEngine()
	go e.handleRender()
	go e.handleQuit()
}

// tick advances the rig by one frame: latch input, step the controller, refresh the camera matrices.
func (e *engine) tick(dt float32) {
	e.sampler.Latch()
	e.controller.Update(dt)
	e.camera.Update()

	if e.tickCallback != nil {
		e.tickCallback(dt)
	}
}

// handleEngine runs the fixed-rate tick loop in its own goroutine.
// Listens for dynamic rate changes via tickRateChannel. Exits when the quit channel is closed.
func (e *engine) handleEngine() {
	defer e.wg.Done()

	ticker := time.NewTicker(time.Duration(e.engineTickRate.Load()))
	defer ticker.Stop()

	lastTick := time.Now()

	for {
		select {
		case <-e.quitChannel:
			return
		case <-ticker.C:
			now := time.Now()
			dt := float32(now.Sub(lastTick).Seconds())
			lastTick = now
			e.tick(dt)
		case newRate := <-e.tickRateChannel:
			ticker.Reset(newRate)
			e.engineTickRate.Store(int64(newRate))
		}
	}
}

// handleRender runs the uncapped (or frame-limited) render loop in its own goroutine.
// Recovers from panics to avoid crashing the process and signals quit on recovery.
func (e *engine) handleRender() {
	defer e.wg.Done()
	defer func() {
		if r := recover(); r != nil {
			log.Printf("[Engine] render goroutine recovered from panic: %v", r)
			e.signalQuit()
		}
	}()

	lastRender := time.Now()

	for {
		select {
		case <-e.quitChannel:
			return
		default:
			now := time.Now()
			dt := float32(now.Sub(lastRender).Seconds())
			lastRender = now

			if e.renderer != nil {
				if err := e.renderer.Render(e.camera.Uniform()); err != nil {
					log.Printf("[Engine] render: %v", err)
				}
			}

			if e.renderCallback != nil {
				e.renderCallback(dt)
			}

			if e.profilingEnabled.Load() {
				e.profiler.Tick()
			}

			if e.renderFrameLimit > 0 {
				elapsed := time.Since(lastRender)
				if remaining := e.renderFrameLimit - elapsed; remaining > 0 {
					time.Sleep(remaining)
				}
			} else if e.renderer == nil {
				// Nothing blocks on a present without a renderer.
				time.Sleep(time.Millisecond)
			}
		}
	}
}

// handleQuit blocks until the quit channel is closed, then decrements the WaitGroup.
func (e *engine) handleQuit() {
	defer e.wg.Done()
	<-e.quitChannel
}

func (e *engine) EnableProfiler() {
	e.profilingEnabled.Store(true)
}

func (e *engine) DisableProfiler() {
	e.profilingEnabled.Store(false)
}

func (e *engine) ToggleProfiler() {
	enabled := !e.profilingEnabled.Load()
	e.profilingEnabled.Store(enabled)
	log.Printf("[Engine] profiler enabled: %t", enabled)
}

// SetTickRate sets the engine tick rate in frames per second.
// If the engine is running, the change takes effect immediately.
func (e *engine) SetTickRate(fps float64) {
	newRate := tickInterval(fps)

	if e.running.Load() {
		// Non-blocking send; a pending update is replaced.
		select {
		case e.tickRateChannel <- newRate:
		default:
			select {
			case <-e.tickRateChannel:
			default:
			}
			e.tickRateChannel <- newRate
		}
	} else {
		e.engineTickRate.Store(int64(newRate))
	}
}

func (e *engine) SetTickCallback(callback func(deltaTime float32)) {
	e.tickCallback = callback
}

func (e *engine) SetRenderCallback(callback func(deltaTime float32)) {
	e.renderCallback = callback
}

func (e *engine) SetRenderFrameLimit(fps float64) {
	e.renderFrameLimit = frameLimit(fps)
}

// tickInterval converts a rate to a period, treating rates <= 0 as 60Hz.
func tickInterval(fps float64) time.Duration {
	if fps <= 0 {
		fps = 60
	}
	return time.Duration(float64(time.Second) / fps)
}

// frameLimit converts a cap to a minimum frame duration, 0 meaning uncapped.
func frameLimit(fps float64) time.Duration {
	if fps <= 0 {
		return 0
	}
	return time.Duration(float64(time.Second) / fps)
}
