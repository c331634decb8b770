package input

import (
	"sync"

	"github.com/XJINE/scenecam/common"
)

// mouseSamplerImpl is the implementation of the MouseSampler interface.
// Window callbacks feed it events from the platform thread; the engine tick latches the
// accumulated deltas once per frame.
type mouseSamplerImpl struct {
	mu *sync.Mutex

	// sensitivity scales pointer movement in pixels into axis units.
	sensitivity float32

	// scrollScale scales scroll wheel notches into axis units.
	scrollScale float32

	// invertY flips the vertical axis so that it is positive when the pointer moves down.
	invertY bool

	lastX, lastY float64
	hasCursor    bool

	pending [common.MouseAxisCount]float32
	held    [common.MouseButtonCount]bool

	frame Frame
}

// MouseSampler is a Sampler backed by pointer events.
// Event handlers accumulate motion between frames; Latch publishes the accumulated motion
// as the current frame and starts a new accumulation window.
type MouseSampler interface {
	Sampler

	// HandleCursor records an absolute cursor position in window pixels.
	// The first position after construction or Reset only establishes the origin.
	//
	// Parameters:
	//   - x, y: cursor position, y increasing downward
	HandleCursor(x, y float64)

	// HandleScroll records a vertical scroll offset in wheel notches.
	//
	// Parameters:
	//   - delta: positive when scrolling away from the user
	HandleScroll(delta float32)

	// HandleButton records a button press or release.
	//
	// Parameters:
	//   - button: the button that changed
	//   - down: true for press, false for release
	HandleButton(button common.MouseButton, down bool)

	// Latch publishes the motion accumulated since the previous Latch as the current frame.
	//
	// Returns:
	//   - Frame: the newly published frame
	Latch() Frame

	// Reset clears accumulated motion, held buttons and the cursor origin.
	Reset()
}

var _ MouseSampler = &mouseSamplerImpl{}

// NewMouseSampler creates a MouseSampler with the given options.
// Defaults: sensitivity 0.1 axis units per pixel and 0.1 per scroll notch.
//
// Parameters:
//   - options: functional options to configure the sampler
//
// Returns:
//   - MouseSampler: the newly created sampler
func NewMouseSampler(options ...MouseSamplerOption) MouseSampler {
	m := &mouseSamplerImpl{
		mu:          &sync.Mutex{},
		sensitivity: 0.1,
		scrollScale: 0.1,
	}
	for _, option := range options {
		option(m)
	}
	return m
}

func (m *mouseSamplerImpl) HandleCursor(x, y float64) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.hasCursor {
		dx := float32(x-m.lastX) * m.sensitivity
		dy := float32(m.lastY-y) * m.sensitivity
		if m.invertY {
			dy = -dy
		}
		m.pending[common.MouseAxisX] += dx
		m.pending[common.MouseAxisY] += dy
	}
	m.lastX, m.lastY = x, y
	m.hasCursor = true
}

func (m *mouseSamplerImpl) HandleScroll(delta float32) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.pending[common.MouseAxisScrollWheel] += delta * m.scrollScale
}

func (m *mouseSamplerImpl) HandleButton(button common.MouseButton, down bool) {
	if !button.Valid() {
		return
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.held[button] = down
}

func (m *mouseSamplerImpl) Latch() Frame {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.frame = Frame{Axes: m.pending, Buttons: m.held}
	m.pending = [common.MouseAxisCount]float32{}
	return m.frame
}

func (m *mouseSamplerImpl) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.pending = [common.MouseAxisCount]float32{}
	m.held = [common.MouseButtonCount]bool{}
	m.frame = Frame{}
	m.hasCursor = false
}

func (m *mouseSamplerImpl) Axis(axis common.MouseAxis) float32 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.frame.Axis(axis)
}

func (m *mouseSamplerImpl) ButtonHeld(button common.MouseButton) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.frame.ButtonHeld(button)
}
