package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/XJINE/scenecam/common"
	"github.com/XJINE/scenecam/engine/camera"
	"github.com/XJINE/scenecam/engine/input"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleYAML = `
input:
  sensitivity: 0.5
  invert_y: true
dolly:
  trigger: mouse_y
  speed: 2.5
  lock: [x, z]
  smooth: false
orbit:
  trigger: left
  invert: true
  lock: [y]
pan:
  enabled: false
reset:
  position: [1, 2, 3]
  rotation: [0, 90, 0]
`

const sampleTOML = `
[dolly]
trigger = "mouse_y"
speed = 2.5
lock = ["x", "z"]
smooth = false

[orbit]
trigger = "left"
invert = true
lock = ["y"]

[pan]
enabled = false

[reset]
position = [1.0, 2.0, 3.0]
rotation = [0.0, 90.0, 0.0]
`

func assertSample(t *testing.T, cfg camera.Config) {
	t.Helper()
	defaults := camera.DefaultConfig()

	assert.Equal(t, common.MouseAxisY, cfg.Dolly.TriggerAxis)
	assert.Equal(t, float32(2.5), cfg.Dolly.Speed)
	assert.True(t, cfg.Dolly.LockX)
	assert.False(t, cfg.Dolly.LockY)
	assert.True(t, cfg.Dolly.LockZ)
	assert.False(t, cfg.Dolly.Smooth)
	assert.Equal(t, defaults.Dolly.SmoothRate, cfg.Dolly.SmoothRate)

	assert.Equal(t, common.MouseButtonLeft, cfg.Orbit.TriggerButton)
	assert.True(t, cfg.Orbit.Invert)
	assert.True(t, cfg.Orbit.LockY)
	assert.Equal(t, defaults.Orbit.Speed, cfg.Orbit.Speed)

	assert.False(t, cfg.Pan.Enabled)
	assert.Equal(t, defaults.Pan.TriggerButton, cfg.Pan.TriggerButton)

	assert.Equal(t, mgl32.Vec3{1, 2, 3}, cfg.Reset.Position)
	assert.Equal(t, mgl32.Vec3{0, 90, 0}, cfg.Reset.EulerAngles)
}

func TestDecodeAndApply(t *testing.T) {
	cases := []struct {
		name   string
		data   string
		format Format
	}{
		{"yaml", sampleYAML, FormatYAML},
		{"toml", sampleTOML, FormatTOML},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f, err := Decode([]byte(tc.data), tc.format)
			require.NoError(t, err)

			cfg, err := f.Apply(camera.DefaultConfig())
			require.NoError(t, err)
			assertSample(t, cfg)
		})
	}
}

func TestApplyEmptyKeepsBase(t *testing.T) {
	f, err := Decode([]byte("{}"), FormatYAML)
	require.NoError(t, err)

	base := camera.DefaultConfig()
	base.Orbit.Speed = 7
	cfg, err := f.Apply(base)
	require.NoError(t, err)
	assert.Equal(t, base, cfg)
	assert.Empty(t, f.SamplerOptions())
}

func TestApplyErrors(t *testing.T) {
	cases := []struct {
		name string
		data string
		want error
	}{
		{"dolly button trigger", "dolly:\n  trigger: right\n", ErrUnknownTrigger},
		{"orbit axis trigger", "orbit:\n  trigger: scroll_wheel\n", ErrUnknownTrigger},
		{"pan z lock", "pan:\n  lock: [z]\n", ErrUnknownAxis},
		{"bad lock", "dolly:\n  lock: [w]\n", ErrUnknownAxis},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f, err := Decode([]byte(tc.data), FormatYAML)
			require.NoError(t, err)

			base := camera.DefaultConfig()
			cfg, err := f.Apply(base)
			assert.ErrorIs(t, err, tc.want)
			assert.Equal(t, base, cfg)
		})
	}
}

func TestDecodeMalformed(t *testing.T) {
	_, err := Decode([]byte("dolly: [unclosed"), FormatYAML)
	assert.Error(t, err)

	_, err = Decode([]byte("[dolly\nspeed = "), FormatTOML)
	assert.Error(t, err)

	_, err = Decode(nil, Format(9))
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestFormatFromPath(t *testing.T) {
	f, err := FormatFromPath("rig.YML")
	require.NoError(t, err)
	assert.Equal(t, FormatYAML, f)

	f, err = FormatFromPath("/etc/rig.toml")
	require.NoError(t, err)
	assert.Equal(t, FormatTOML, f)

	_, err = FormatFromPath("rig.json")
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "rig.toml")
	require.NoError(t, os.WriteFile(path, []byte(sampleTOML), 0o644))

	f, err := Load(path)
	require.NoError(t, err)
	cfg, err := f.Apply(camera.DefaultConfig())
	require.NoError(t, err)
	assertSample(t, cfg)

	_, err = Load(filepath.Join(dir, "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestEncodeRoundTrip(t *testing.T) {
	want := camera.DefaultConfig()
	want.Dolly.LockZ = true
	want.Pan.Invert = true
	want.Reset = camera.ResetPose{Position: mgl32.Vec3{4, 5, 6}, EulerAngles: mgl32.Vec3{10, 0, 0}}

	for _, format := range []Format{FormatYAML, FormatTOML} {
		t.Run(format.String(), func(t *testing.T) {
			data, err := FromConfig(want).Encode(format)
			require.NoError(t, err)

			f, err := Decode(data, format)
			require.NoError(t, err)
			got, err := f.Apply(camera.Config{})
			require.NoError(t, err)
			assert.Equal(t, want, got)
		})
	}
}

func TestEncodeClearsBaseLocks(t *testing.T) {
	base := camera.DefaultConfig()
	base.Dolly.LockY = true
	base.Orbit.LockX = true
	base.Pan.LockX, base.Pan.LockY = true, true
	want := camera.DefaultConfig()

	for _, format := range []Format{FormatYAML, FormatTOML} {
		t.Run(format.String(), func(t *testing.T) {
			data, err := FromConfig(want).Encode(format)
			require.NoError(t, err)

			f, err := Decode(data, format)
			require.NoError(t, err)
			require.NotNil(t, f.Orbit)
			assert.NotNil(t, f.Orbit.Lock)

			got, err := f.Apply(base)
			require.NoError(t, err)
			assert.Equal(t, want, got)
		})
	}
}

func TestSamplerOptions(t *testing.T) {
	f, err := Decode([]byte(sampleYAML), FormatYAML)
	require.NoError(t, err)

	opts := f.SamplerOptions()
	require.Len(t, opts, 2)

	m := input.NewMouseSampler(opts...)
	m.HandleCursor(0, 0)
	m.HandleCursor(4, 10)
	frame := m.Latch()
	assert.InDelta(t, 2, frame.Axis(common.MouseAxisX), 1e-6)
	assert.InDelta(t, 5, frame.Axis(common.MouseAxisY), 1e-6)
}

func TestWatcherReportsChanges(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "rig.yaml")
	require.NoError(t, os.WriteFile(path, []byte("dolly:\n  speed: 1\n"), 0o644))

	w, err := NewWatcher(path, WithDebounce(20*time.Millisecond))
	require.NoError(t, err)
	defer w.Close()

	// Changes to neighbouring files are ignored.
	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.yaml"), []byte("x: 1"), 0o644))
	require.NoError(t, os.WriteFile(path, []byte("dolly:\n  speed: 2\n"), 0o644))

	select {
	case got := <-w.Events:
		assert.Equal(t, w.Path(), got)
	case <-time.After(5 * time.Second):
		t.Fatal("no change reported")
	}

	require.NoError(t, w.Close())
	require.NoError(t, w.Close())
	for range w.Events {
	}
}

func TestWatchAppliesReloads(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "rig.yaml")
	require.NoError(t, os.WriteFile(path, []byte("dolly:\n  speed: 1\n"), 0o644))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	applied := make(chan camera.Config, 4)
	done := make(chan error, 1)
	go func() {
		done <- Watch(ctx, path, camera.DefaultConfig(), func(cfg camera.Config) {
			applied <- cfg
		}, WithDebounce(20*time.Millisecond))
	}()

	// Give the watcher time to register before touching the file.
	time.Sleep(100 * time.Millisecond)

	// A broken file is skipped; the next good one is applied.
	require.NoError(t, os.WriteFile(path, []byte("dolly:\n  trigger: nope\n"), 0o644))
	time.Sleep(200 * time.Millisecond)
	require.NoError(t, os.WriteFile(path, []byte("dolly:\n  speed: 9\n"), 0o644))

	// An editor may expose a truncated file first; wait for the final contents.
	timeout := time.After(5 * time.Second)
	for reloaded := false; !reloaded; {
		select {
		case cfg := <-applied:
			reloaded = cfg.Dolly.Speed == 9
		case <-timeout:
			t.Fatal("reload not applied")
		}
	}

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("watch did not stop")
	}
}
