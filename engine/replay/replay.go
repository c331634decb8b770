package replay

import (
	"fmt"
	"sync"
	"time"

	"github.com/Carmen-Shannon/automation/tools/worker"
	"github.com/XJINE/scenecam/common"
	"github.com/XJINE/scenecam/engine/camera"
	"github.com/go-gl/mathgl/mgl32"
)

// Sample is the controller state after a frame.
type Sample struct {
	Frame      int        `yaml:"frame"`
	Time       float32    `yaml:"time"`
	Position   mgl32.Vec3 `yaml:"position"`
	Forward    mgl32.Vec3 `yaml:"forward"`
	MoveTarget mgl32.Vec3 `yaml:"move_target"`
}

// Result is the outcome of playing one trace.
type Result struct {
	Name     string      `yaml:"name"`
	Frames   int         `yaml:"frames"`
	Duration float32     `yaml:"duration"`
	Final    common.Pose `yaml:"-"`
	Samples  []Sample    `yaml:"samples"`
}

// Run plays a trace through a new controller built from cfg.
// The controller starts at the trace's start pose when given, otherwise at the reset pose.
//
// Parameters:
//   - trace: the trace to play
//   - cfg: the controller configuration
//
// Returns:
//   - *Result: the sampled trajectory
//   - error: a nil trace or an invalid trace frame
func Run(trace *Trace, cfg camera.Config) (*Result, error) {
	if trace == nil {
		return nil, fmt.Errorf("replay: %w", ErrNoTrace)
	}
	if err := trace.Validate(); err != nil {
		return nil, fmt.Errorf("replay: %s: %w", trace.Name, err)
	}

	start := cfg.Reset
	if trace.Start != nil {
		if trace.Start.Position != nil {
			start.Position = mgl32.Vec3(*trace.Start.Position)
		}
		if trace.Start.Rotation != nil {
			start.EulerAngles = mgl32.Vec3(*trace.Start.Rotation)
		}
	}
	cc := camera.NewCameraController(
		camera.WithConfig(cfg),
		camera.WithPosition(start.Position),
		camera.WithEulerAngles(start.EulerAngles),
	)

	every := max(trace.SampleEvery, 1)
	res := &Result{Name: trace.Name}
	record := func() {
		res.Samples = append(res.Samples, Sample{
			Frame:      res.Frames,
			Time:       res.Duration,
			Position:   cc.Position(),
			Forward:    cc.Forward(),
			MoveTarget: cc.MoveTarget(),
		})
	}

	for _, f := range trace.Frames {
		frame, _ := f.input()
		dt := f.dt(trace.DT)
		if f.Reset {
			cc.Reset()
		}
		for range f.count() {
			cc.Step(frame, dt)
			res.Frames++
			res.Duration += dt
			if res.Frames%every == 0 {
				record()
			}
		}
	}
	if res.Frames%every != 0 {
		record()
	}
	res.Final = cc.Pose()
	return res, nil
}

// Job is one trace and the configuration to play it with.
type Job struct {
	Trace  *Trace
	Config camera.Config
}

// BatchResult pairs a job's result with its error. Index is the job's position in the batch.
type BatchResult struct {
	Index  int
	Result *Result
	Err    error
}

// RunBatch plays every job on a pool of workers. Results are returned in job order.
//
// Parameters:
//   - jobs: the traces to play
//   - workers: the maximum number of traces played concurrently
//
// Returns:
//   - []BatchResult: one entry per job
func RunBatch(jobs []Job, workers int) []BatchResult {
	results := make([]BatchResult, len(jobs))
	if len(jobs) == 0 {
		return results
	}

	pool := worker.NewDynamicWorkerPool(max(workers, 1), len(jobs), 1*time.Second)

	// Each task writes only its own slot; the WaitGroup is the barrier.
	var wg sync.WaitGroup
	for i, job := range jobs {
		if job.Trace == nil {
			results[i] = BatchResult{Index: i, Err: fmt.Errorf("replay: job %d: %w", i, ErrNoTrace)}
			continue
		}
		wg.Add(1)
		pool.SubmitTask(worker.Task{
			ID: i,
			Do: func() (any, error) {
				defer wg.Done()
				res, err := Run(job.Trace, job.Config)
				results[i] = BatchResult{Index: i, Result: res, Err: err}
				return res, nil
			},
		})
	}
	wg.Wait()
	return results
}
