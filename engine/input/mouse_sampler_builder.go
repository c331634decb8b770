package input

// MouseSamplerOption is a functional option for configuring a MouseSampler.
type MouseSamplerOption func(*mouseSamplerImpl)

// WithSensitivity sets how many axis units one pixel of pointer movement produces.
//
// Parameters:
//   - sensitivity: axis units per pixel
//
// Returns:
//   - MouseSamplerOption: functional option to set the sensitivity
func WithSensitivity(sensitivity float32) MouseSamplerOption {
	return func(m *mouseSamplerImpl) {
		m.sensitivity = sensitivity
	}
}

// WithScrollScale sets how many axis units one scroll wheel notch produces.
//
// Parameters:
//   - scale: axis units per notch
//
// Returns:
//   - MouseSamplerOption: functional option to set the scroll scale
func WithScrollScale(scale float32) MouseSamplerOption {
	return func(m *mouseSamplerImpl) {
		m.scrollScale = scale
	}
}

// WithInvertY makes the vertical axis positive when the pointer moves down.
//
// Parameters:
//   - invert: true to flip the vertical axis
//
// Returns:
//   - MouseSamplerOption: functional option to set vertical inversion
func WithInvertY(invert bool) MouseSamplerOption {
	return func(m *mouseSamplerImpl) {
		m.invertY = invert
	}
}
