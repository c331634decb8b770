// Package config loads camera rig tuning from YAML or TOML files and keeps it live while
// the file changes on disk.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/XJINE/scenecam/common"
	"github.com/XJINE/scenecam/engine/camera"
	"github.com/XJINE/scenecam/engine/input"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

var (
	// ErrUnknownTrigger is returned when a channel trigger names no known axis or button.
	ErrUnknownTrigger = errors.New("unknown trigger")

	// ErrUnknownAxis is returned when a lock list names an axis the channel does not have.
	ErrUnknownAxis = errors.New("unknown lock axis")

	// ErrUnsupportedFormat is returned for file extensions other than yaml, yml and toml.
	ErrUnsupportedFormat = errors.New("unsupported config format")
)

// Format is a config file encoding.
type Format int

const (
	FormatYAML Format = iota
	FormatTOML
)

func (f Format) String() string {
	switch f {
	case FormatYAML:
		return "yaml"
	case FormatTOML:
		return "toml"
	default:
		return "unknown"
	}
}

// FormatFromPath picks the encoding from a file extension.
//
// Parameters:
//   - path: the config file path
//
// Returns:
//   - Format: the encoding
//   - error: ErrUnsupportedFormat for unknown extensions
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	default:
		return 0, fmt.Errorf("config: %s: %w", path, ErrUnsupportedFormat)
	}
}

// File mirrors a config file. Every field is optional; absent fields keep the value of the
// configuration the file is applied to.
type File struct {
	Input *InputSpec   `yaml:"input,omitempty" toml:"input,omitempty"`
	Dolly *ChannelSpec `yaml:"dolly,omitempty" toml:"dolly,omitempty"`
	Orbit *ChannelSpec `yaml:"orbit,omitempty" toml:"orbit,omitempty"`
	Pan   *ChannelSpec `yaml:"pan,omitempty" toml:"pan,omitempty"`
	Reset *ResetSpec   `yaml:"reset,omitempty" toml:"reset,omitempty"`
}

// ChannelSpec is the file form of camera.ChannelConfig.
// Trigger is an axis name for dolly (mouse_x, mouse_y, scroll_wheel) and a button name for
// orbit and pan (left, right, middle). Lock lists the frozen axes; an empty list clears
// every lock and an absent key keeps the base locks. Lock is always encoded, so a dump
// written by FromConfig reproduces its locks against any base.
type ChannelSpec struct {
	Enabled    *bool    `yaml:"enabled,omitempty" toml:"enabled,omitempty"`
	Trigger    *string  `yaml:"trigger,omitempty" toml:"trigger,omitempty"`
	Invert     *bool    `yaml:"invert,omitempty" toml:"invert,omitempty"`
	Speed      *float32 `yaml:"speed,omitempty" toml:"speed,omitempty"`
	Lock       []string `yaml:"lock" toml:"lock"`
	Smooth     *bool    `yaml:"smooth,omitempty" toml:"smooth,omitempty"`
	SmoothRate *float32 `yaml:"smooth_rate,omitempty" toml:"smooth_rate,omitempty"`
}

// ResetSpec is the file form of camera.ResetPose. Rotation holds Euler angles in degrees.
type ResetSpec struct {
	Position *[3]float32 `yaml:"position,omitempty" toml:"position,omitempty"`
	Rotation *[3]float32 `yaml:"rotation,omitempty" toml:"rotation,omitempty"`
}

// InputSpec tunes the mouse sampler.
type InputSpec struct {
	Sensitivity *float32 `yaml:"sensitivity,omitempty" toml:"sensitivity,omitempty"`
	ScrollScale *float32 `yaml:"scroll_scale,omitempty" toml:"scroll_scale,omitempty"`
	InvertY     *bool    `yaml:"invert_y,omitempty" toml:"invert_y,omitempty"`
}

// Load reads and decodes a config file. The encoding follows the file extension.
//
// Parameters:
//   - path: the config file path
//
// Returns:
//   - *File: the decoded file
//   - error: read, format or decode failure
func Load(path string) (*File, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: load %s: %w", path, err)
	}
	f, err := Decode(data, format)
	if err != nil {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}
	return f, nil
}

// Decode parses config data in the given encoding.
//
// Parameters:
//   - data: the raw file contents
//   - format: the encoding of data
//
// Returns:
//   - *File: the decoded file
//   - error: decode failure
func Decode(data []byte, format Format) (*File, error) {
	var f File
	switch format {
	case FormatYAML:
		if err := yaml.Unmarshal(data, &f); err != nil {
			return nil, fmt.Errorf("unmarshal yaml: %w", err)
		}
	case FormatTOML:
		if err := toml.Unmarshal(data, &f); err != nil {
			return nil, fmt.Errorf("unmarshal toml: %w", err)
		}
	default:
		return nil, fmt.Errorf("format %d: %w", format, ErrUnsupportedFormat)
	}
	return &f, nil
}

// Encode serializes the file in the given encoding.
//
// Parameters:
//   - format: the target encoding
//
// Returns:
//   - []byte: the encoded file
//   - error: encode failure
func (f *File) Encode(format Format) ([]byte, error) {
	switch format {
	case FormatYAML:
		return yaml.Marshal(f)
	case FormatTOML:
		return toml.Marshal(f)
	default:
		return nil, fmt.Errorf("format %d: %w", format, ErrUnsupportedFormat)
	}
}

// Apply overlays the file onto base and returns the result. base is not modified.
//
// Parameters:
//   - base: the configuration to start from
//
// Returns:
//   - camera.Config: base with every present field replaced
//   - error: ErrUnknownTrigger or ErrUnknownAxis, wrapped with the channel name
func (f *File) Apply(base camera.Config) (camera.Config, error) {
	cfg := base
	var err error
	if cfg.Dolly, err = f.Dolly.apply(cfg.Dolly, "dolly", true); err != nil {
		return base, err
	}
	if cfg.Orbit, err = f.Orbit.apply(cfg.Orbit, "orbit", false); err != nil {
		return base, err
	}
	if cfg.Pan, err = f.Pan.apply(cfg.Pan, "pan", false); err != nil {
		return base, err
	}
	if f.Reset != nil {
		if f.Reset.Position != nil {
			cfg.Reset.Position = mgl32.Vec3(*f.Reset.Position)
		}
		if f.Reset.Rotation != nil {
			cfg.Reset.EulerAngles = mgl32.Vec3(*f.Reset.Rotation)
		}
	}
	return cfg, nil
}

// SamplerOptions converts the input section into mouse sampler options.
//
// Returns:
//   - []input.MouseSamplerOption: options for the fields present in the file
func (f *File) SamplerOptions() []input.MouseSamplerOption {
	if f.Input == nil {
		return nil
	}
	var opts []input.MouseSamplerOption
	if f.Input.Sensitivity != nil {
		opts = append(opts, input.WithSensitivity(*f.Input.Sensitivity))
	}
	if f.Input.ScrollScale != nil {
		opts = append(opts, input.WithScrollScale(*f.Input.ScrollScale))
	}
	if f.Input.InvertY != nil {
		opts = append(opts, input.WithInvertY(*f.Input.InvertY))
	}
	return opts
}

// FromConfig builds a fully populated File from a configuration, suitable for writing a
// starting config to disk.
//
// Parameters:
//   - cfg: the configuration to describe
//
// Returns:
//   - *File: the file form of cfg
func FromConfig(cfg camera.Config) *File {
	position := [3]float32(cfg.Reset.Position)
	rotation := [3]float32(cfg.Reset.EulerAngles)
	return &File{
		Dolly: specFrom(cfg.Dolly, cfg.Dolly.TriggerAxis.String(), true),
		Orbit: specFrom(cfg.Orbit, cfg.Orbit.TriggerButton.String(), false),
		Pan:   specFrom(cfg.Pan, cfg.Pan.TriggerButton.String(), false),
		Reset: &ResetSpec{Position: &position, Rotation: &rotation},
	}
}

func specFrom(c camera.ChannelConfig, trigger string, hasZ bool) *ChannelSpec {
	lock := []string{}
	if c.LockX {
		lock = append(lock, "x")
	}
	if c.LockY {
		lock = append(lock, "y")
	}
	if hasZ && c.LockZ {
		lock = append(lock, "z")
	}
	return &ChannelSpec{
		Enabled:    &c.Enabled,
		Trigger:    &trigger,
		Invert:     &c.Invert,
		Speed:      &c.Speed,
		Lock:       lock,
		Smooth:     &c.Smooth,
		SmoothRate: &c.SmoothRate,
	}
}

// apply overlays s onto c. Dolly triggers name axes and may lock z; orbit and pan triggers
// name buttons and lock only x and y.
func (s *ChannelSpec) apply(c camera.ChannelConfig, name string, dolly bool) (camera.ChannelConfig, error) {
	if s == nil {
		return c, nil
	}
	if s.Enabled != nil {
		c.Enabled = *s.Enabled
	}
	if s.Trigger != nil {
		if dolly {
			axis, ok := common.ParseMouseAxis(*s.Trigger)
			if !ok {
				return c, fmt.Errorf("config: %s trigger %q: %w", name, *s.Trigger, ErrUnknownTrigger)
			}
			c.TriggerAxis = axis
		} else {
			button, ok := common.ParseMouseButton(*s.Trigger)
			if !ok {
				return c, fmt.Errorf("config: %s trigger %q: %w", name, *s.Trigger, ErrUnknownTrigger)
			}
			c.TriggerButton = button
		}
	}
	if s.Invert != nil {
		c.Invert = *s.Invert
	}
	if s.Speed != nil {
		c.Speed = *s.Speed
	}
	if s.Lock != nil {
		c.LockX, c.LockY, c.LockZ = false, false, false
		for _, axis := range s.Lock {
			switch strings.ToLower(axis) {
			case "x":
				c.LockX = true
			case "y":
				c.LockY = true
			case "z":
				if !dolly {
					return c, fmt.Errorf("config: %s lock %q: %w", name, axis, ErrUnknownAxis)
				}
				c.LockZ = true
			default:
				return c, fmt.Errorf("config: %s lock %q: %w", name, axis, ErrUnknownAxis)
			}
		}
	}
	if s.Smooth != nil {
		c.Smooth = *s.Smooth
	}
	if s.SmoothRate != nil {
		c.SmoothRate = *s.SmoothRate
	}
	return c, nil
}
