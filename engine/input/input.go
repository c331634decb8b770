// Package input adapts raw pointer devices into the per-frame samples the camera rig consumes.
package input

import "github.com/XJINE/scenecam/common"

// Sampler provides the raw per-frame input signals: three axes and three held buttons.
// Any backend able to answer these queries can drive the camera rig.
type Sampler interface {
	// Axis returns the current frame's value for the given axis.
	//
	// Parameters:
	//   - axis: the axis to query
	//
	// Returns:
	//   - float32: the axis delta for this frame, 0 when idle
	Axis(axis common.MouseAxis) float32

	// ButtonHeld reports whether the given button is held this frame.
	//
	// Parameters:
	//   - button: the button to query
	//
	// Returns:
	//   - bool: true while the button is down
	ButtonHeld(button common.MouseButton) bool
}

// Frame is an immutable snapshot of every input signal for a single frame.
// The zero Frame is an idle frame: no motion and no buttons held.
type Frame struct {
	Axes    [common.MouseAxisCount]float32
	Buttons [common.MouseButtonCount]bool
}

var _ Sampler = Frame{}

// Axis returns the frame's value for axis, or 0 for an unknown axis.
func (f Frame) Axis(axis common.MouseAxis) float32 {
	if !axis.Valid() {
		return 0
	}
	return f.Axes[axis]
}

// ButtonHeld reports whether button was held in this frame. Unknown buttons are never held.
func (f Frame) ButtonHeld(button common.MouseButton) bool {
	if !button.Valid() {
		return false
	}
	return f.Buttons[button]
}

// Sample snapshots every signal of s into a Frame. A nil sampler yields an idle frame.
//
// Parameters:
//   - s: the sampler to read
//
// Returns:
//   - Frame: the snapshot
func Sample(s Sampler) Frame {
	var f Frame
	if s == nil {
		return f
	}
	for i := range common.MouseAxisCount {
		f.Axes[i] = s.Axis(common.MouseAxis(i))
	}
	for i := range common.MouseButtonCount {
		f.Buttons[i] = s.ButtonHeld(common.MouseButton(i))
	}
	return f
}

// NewFrame builds a frame from pointer deltas, a scroll delta and the held buttons.
//
// Parameters:
//   - mouseX: horizontal pointer delta
//   - mouseY: vertical pointer delta
//   - scroll: scroll delta
//   - held: buttons held during the frame
//
// Returns:
//   - Frame: the assembled frame
func NewFrame(mouseX, mouseY, scroll float32, held ...common.MouseButton) Frame {
	f := Frame{}
	f.Axes[common.MouseAxisX] = mouseX
	f.Axes[common.MouseAxisY] = mouseY
	f.Axes[common.MouseAxisScrollWheel] = scroll
	for _, b := range held {
		if b.Valid() {
			f.Buttons[b] = true
		}
	}
	return f
}
