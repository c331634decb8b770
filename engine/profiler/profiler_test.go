package profiler

import (
	"bytes"
	"log"
	"testing"
	"time"

	"github.com/XJINE/scenecam/common"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

func captureLog(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	flags, out := log.Flags(), log.Writer()
	log.SetOutput(&buf)
	log.SetFlags(0)
	t.Cleanup(func() {
		log.SetOutput(out)
		log.SetFlags(flags)
	})
	return &buf
}

func TestTickWaitsForInterval(t *testing.T) {
	buf := captureLog(t)
	p := NewProfiler(WithInterval(time.Hour))

	for range 10 {
		assert.False(t, p.Tick())
	}
	assert.Empty(t, buf.String())
}

func TestTickLogsStats(t *testing.T) {
	buf := captureLog(t)
	p := NewProfiler(WithInterval(0))

	assert.True(t, p.Tick())
	assert.Contains(t, buf.String(), "[Profiler] FPS:")
	assert.NotContains(t, buf.String(), "Pos:")
}

func TestTickLogsPose(t *testing.T) {
	buf := captureLog(t)
	calls := 0
	p := NewProfiler(WithInterval(0), WithPoseSource(func() common.Pose {
		calls++
		return common.Pose{Position: mgl32.Vec3{1, 2, 3}, Rotation: mgl32.QuatIdent()}
	}))

	assert.True(t, p.Tick())
	assert.Equal(t, 1, calls)
	assert.Contains(t, buf.String(), "Pos: (1.00, 2.00, 3.00) Fwd: (0.00, 0.00, 1.00)")
}
