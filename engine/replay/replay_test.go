package replay

import (
	"path/filepath"
	"testing"

	"github.com/XJINE/scenecam/common"
	"github.com/XJINE/scenecam/engine/camera"
	"github.com/XJINE/scenecam/engine/config"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func snapConfig() camera.Config {
	cfg := camera.DefaultConfig()
	cfg.Dolly.Smooth = false
	cfg.Orbit.Smooth = false
	cfg.Pan.Smooth = false
	return cfg
}

func TestLoadTraceFormatsAgree(t *testing.T) {
	fromYAML, err := LoadTrace(filepath.Join("testdata", "sweep.yaml"))
	require.NoError(t, err)
	fromTOML, err := LoadTrace(filepath.Join("testdata", "sweep.toml"))
	require.NoError(t, err)

	assert.Equal(t, "sweep", fromYAML.Name)
	assert.Equal(t, 256, fromYAML.FrameCount())
	assert.Equal(t, fromYAML, fromTOML)
}

func TestRunSweep(t *testing.T) {
	trace, err := LoadTrace(filepath.Join("testdata", "sweep.yaml"))
	require.NoError(t, err)

	res, err := Run(trace, camera.DefaultConfig())
	require.NoError(t, err)

	assert.Equal(t, 256, res.Frames)
	assert.InDelta(t, 256*0.0166667, res.Duration, 1e-3)
	require.Len(t, res.Samples, 9)
	assert.Equal(t, 30, res.Samples[0].Frame)
	assert.Equal(t, 256, res.Samples[8].Frame)

	// The wheel pushes the camera along its starting forward axis.
	assert.Greater(t, res.Samples[1].Position.Z(), float32(-10))

	// The trace ends with a reset to the default pose.
	assert.Equal(t, mgl32.Vec3{}, res.Final.Position)
	assert.InDelta(t, 1, common.ForwardAxis(res.Final.Rotation).Z(), 1e-4)
}

func TestRunRepeatAndSampling(t *testing.T) {
	trace := &Trace{
		SampleEvery: 2,
		Frames: []Frame{
			{Scroll: 1, Repeat: 3},
		},
	}
	res, err := Run(trace, snapConfig())
	require.NoError(t, err)

	require.Len(t, res.Samples, 2)
	assert.Equal(t, 2, res.Samples[0].Frame)
	assert.InDelta(t, 12, res.Samples[0].Position.Z(), 1e-4)
	assert.Equal(t, 3, res.Samples[1].Frame)
	assert.InDelta(t, 18, res.Samples[1].Position.Z(), 1e-4)
	assert.InDelta(t, 3*DefaultFrameTime, res.Duration, 1e-6)
}

func TestRunStartAndReset(t *testing.T) {
	cfg := snapConfig()
	cfg.Reset = camera.ResetPose{Position: mgl32.Vec3{1, 2, 3}, EulerAngles: mgl32.Vec3{0, 90, 0}}

	position := [3]float32{5, 5, 5}
	rotation := [3]float32{}
	trace := &Trace{
		Start: &config.ResetSpec{Position: &position, Rotation: &rotation},
		Frames: []Frame{
			{MouseX: 1, Buttons: []string{"middle"}},
			{Reset: true},
		},
	}
	res, err := Run(trace, cfg)
	require.NoError(t, err)

	require.Len(t, res.Samples, 2)
	assert.InDelta(t, 2, res.Samples[0].Position.X(), 1e-4, "pan drags against the pointer")
	assert.Equal(t, mgl32.Vec3{1, 2, 3}, res.Final.Position)
	assert.InDelta(t, 1, common.ForwardAxis(res.Final.Rotation).X(), 1e-4)
}

func TestTraceValidation(t *testing.T) {
	_, err := DecodeTrace([]byte("frames:\n  - buttons: [thumb]\n"), config.FormatYAML)
	assert.ErrorIs(t, err, ErrUnknownButton)

	_, err = DecodeTrace([]byte("frames:\n  - repeat: -2\n"), config.FormatYAML)
	assert.Error(t, err)

	_, err = Run(&Trace{Frames: []Frame{{Buttons: []string{"thumb"}}}}, camera.DefaultConfig())
	assert.ErrorIs(t, err, ErrUnknownButton)

	_, err = Run(nil, camera.DefaultConfig())
	assert.ErrorIs(t, err, ErrNoTrace)

	_, err = LoadTrace("trace.json")
	assert.ErrorIs(t, err, config.ErrUnsupportedFormat)
}

func TestRunBatchMatchesSequential(t *testing.T) {
	trace, err := LoadTrace(filepath.Join("testdata", "sweep.yaml"))
	require.NoError(t, err)

	var jobs []Job
	for i := range 8 {
		cfg := camera.DefaultConfig()
		cfg.Orbit.Speed = float32(i + 1)
		cfg.Dolly.Smooth = i%2 == 0
		jobs = append(jobs, Job{Trace: trace, Config: cfg})
	}
	jobs = append(jobs, Job{Trace: &Trace{Frames: []Frame{{Buttons: []string{"thumb"}}}}})
	jobs = append(jobs, Job{Config: camera.DefaultConfig()})

	results := RunBatch(jobs, 3)
	require.Len(t, results, len(jobs))

	for i, job := range jobs[:8] {
		require.NoError(t, results[i].Err)
		assert.Equal(t, i, results[i].Index)

		want, err := Run(job.Trace, job.Config)
		require.NoError(t, err)
		assert.Equal(t, want, results[i].Result)
	}
	assert.ErrorIs(t, results[8].Err, ErrUnknownButton)
	assert.ErrorIs(t, results[9].Err, ErrNoTrace)
	assert.Equal(t, 9, results[9].Index)
	assert.Nil(t, results[9].Result)
	assert.Empty(t, RunBatch(nil, 4))
}
