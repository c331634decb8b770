// Package replay drives a camera controller headlessly from recorded input traces.
package replay

import (
	"errors"
	"fmt"
	"os"

	"github.com/XJINE/scenecam/common"
	"github.com/XJINE/scenecam/engine/config"
	"github.com/XJINE/scenecam/engine/input"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// ErrUnknownButton is returned when a trace frame holds a button name that does not exist.
var ErrUnknownButton = errors.New("unknown button")

// ErrNoTrace is returned when a run is given a nil trace.
var ErrNoTrace = errors.New("no trace")

// DefaultFrameTime is the frame length used when neither the trace nor a frame sets one.
const DefaultFrameTime float32 = 1.0 / 60.0

// Trace is a recorded input session.
type Trace struct {
	Name string `yaml:"name" toml:"name"`

	// DT is the default frame length in seconds.
	DT float32 `yaml:"dt" toml:"dt"`

	// SampleEvery records a sample every n frames. 0 and 1 record every frame.
	SampleEvery int `yaml:"sample_every" toml:"sample_every"`

	// Start overrides the controller's starting pose.
	Start *config.ResetSpec `yaml:"start" toml:"start"`

	Frames []Frame `yaml:"frames" toml:"frames"`
}

// Frame is one input sample, optionally repeated.
type Frame struct {
	// DT overrides the trace frame length when non-zero.
	DT float32 `yaml:"dt" toml:"dt"`

	MouseX float32 `yaml:"mouse_x" toml:"mouse_x"`
	MouseY float32 `yaml:"mouse_y" toml:"mouse_y"`
	Scroll float32 `yaml:"scroll" toml:"scroll"`

	// Buttons lists the held buttons by name (left, right, middle).
	Buttons []string `yaml:"buttons" toml:"buttons"`

	// Repeat plays the frame this many times. 0 plays it once.
	Repeat int `yaml:"repeat" toml:"repeat"`

	// Reset invokes the controller's Reset before the frame plays.
	Reset bool `yaml:"reset" toml:"reset"`
}

// LoadTrace reads a YAML or TOML trace, chosen by file extension.
//
// Parameters:
//   - path: the trace file
//
// Returns:
//   - *Trace: the validated trace
//   - error: read, decode or validation failure
func LoadTrace(path string) (*Trace, error) {
	format, err := config.FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("replay: load %s: %w", path, err)
	}
	t, err := DecodeTrace(data, format)
	if err != nil {
		return nil, fmt.Errorf("replay: %s: %w", path, err)
	}
	return t, nil
}

// DecodeTrace parses and validates trace data.
//
// Parameters:
//   - data: the raw trace
//   - format: the encoding of data
//
// Returns:
//   - *Trace: the validated trace
//   - error: decode or validation failure
func DecodeTrace(data []byte, format config.Format) (*Trace, error) {
	var t Trace
	switch format {
	case config.FormatYAML:
		if err := yaml.Unmarshal(data, &t); err != nil {
			return nil, fmt.Errorf("unmarshal yaml: %w", err)
		}
	case config.FormatTOML:
		if err := toml.Unmarshal(data, &t); err != nil {
			return nil, fmt.Errorf("unmarshal toml: %w", err)
		}
	default:
		return nil, fmt.Errorf("format %d: %w", format, config.ErrUnsupportedFormat)
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return &t, nil
}

// Validate checks every button name and repeat count.
//
// Returns:
//   - error: the first invalid frame, wrapping ErrUnknownButton for bad button names
func (t *Trace) Validate() error {
	for i, f := range t.Frames {
		if f.Repeat < 0 {
			return fmt.Errorf("frame %d: negative repeat %d", i, f.Repeat)
		}
		if _, err := f.input(); err != nil {
			return fmt.Errorf("frame %d: %w", i, err)
		}
	}
	return nil
}

// FrameCount returns the number of frames the trace plays, repeats included.
func (t *Trace) FrameCount() int {
	n := 0
	for _, f := range t.Frames {
		n += f.count()
	}
	return n
}

func (f Frame) count() int {
	return max(f.Repeat, 1)
}

func (f Frame) dt(fallback float32) float32 {
	return common.Coalesce(f.DT, fallback, DefaultFrameTime)
}

// input converts the frame into the controller's input form.
func (f Frame) input() (input.Frame, error) {
	held := make([]common.MouseButton, 0, len(f.Buttons))
	for _, name := range f.Buttons {
		b, ok := common.ParseMouseButton(name)
		if !ok {
			return input.Frame{}, fmt.Errorf("button %q: %w", name, ErrUnknownButton)
		}
		held = append(held, b)
	}
	return input.NewFrame(f.MouseX, f.MouseY, f.Scroll, held...), nil
}
