package common

// MouseButton identifies a pointer button. Values match GLFW mouse button codes.
// Reference: https://pkg.go.dev/github.com/go-gl/glfw/v3.3/glfw#MouseButton
type MouseButton int

const (
	MouseButtonLeft   MouseButton = 0
	MouseButtonRight  MouseButton = 1
	MouseButtonMiddle MouseButton = 2

	// MouseButtonCount is the number of tracked mouse buttons.
	MouseButtonCount = 3
)

// MouseAxis identifies one of the raw per-frame input axes.
type MouseAxis int

const (
	// MouseAxisX is the horizontal pointer delta, positive to the right.
	MouseAxisX MouseAxis = 0
	// MouseAxisY is the vertical pointer delta, positive upward.
	MouseAxisY MouseAxis = 1
	// MouseAxisScrollWheel is the scroll delta, positive when scrolling away from the user.
	MouseAxisScrollWheel MouseAxis = 2

	// MouseAxisCount is the number of tracked axes.
	MouseAxisCount = 3
)

var mouseButtonNames = [MouseButtonCount]string{"left", "right", "middle"}

var mouseAxisNames = [MouseAxisCount]string{"mouse_x", "mouse_y", "scroll_wheel"}

// String returns the lowercase name of the button.
func (b MouseButton) String() string {
	if b < 0 || int(b) >= MouseButtonCount {
		return "unknown"
	}
	return mouseButtonNames[b]
}

// Valid reports whether b is one of the tracked buttons.
func (b MouseButton) Valid() bool {
	return b >= 0 && int(b) < MouseButtonCount
}

// String returns the snake_case name of the axis.
func (a MouseAxis) String() string {
	if a < 0 || int(a) >= MouseAxisCount {
		return "unknown"
	}
	return mouseAxisNames[a]
}

// Valid reports whether a is one of the tracked axes.
func (a MouseAxis) Valid() bool {
	return a >= 0 && int(a) < MouseAxisCount
}

// ParseMouseButton resolves a button name as produced by MouseButton.String.
//
// Parameters:
//   - name: the button name
//
// Returns:
//   - MouseButton: the matching button
//   - bool: false if the name is unknown
func ParseMouseButton(name string) (MouseButton, bool) {
	for i, n := range mouseButtonNames {
		if n == name {
			return MouseButton(i), true
		}
	}
	return 0, false
}

// ParseMouseAxis resolves an axis name as produced by MouseAxis.String.
//
// Parameters:
//   - name: the axis name
//
// Returns:
//   - MouseAxis: the matching axis
//   - bool: false if the name is unknown
func ParseMouseAxis(name string) (MouseAxis, bool) {
	for i, n := range mouseAxisNames {
		if n == name {
			return MouseAxis(i), true
		}
	}
	return 0, false
}

// Virtual key codes for cross-platform input handling.
// These values match GLFW key codes which use ASCII values for printable keys.
// Reference: https://pkg.go.dev/github.com/go-gl/glfw/v3.3/glfw#Key
const (
	KeyR     = 82  // R key (ASCII), bound to camera reset
	KeyP     = 80  // P key (ASCII), toggles the profiler
	KeySpace = 32  // Spacebar (ASCII)
	KeyEsc   = 256 // Escape key (GLFW)
)
