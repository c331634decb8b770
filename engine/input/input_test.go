package input

import (
	"sync"
	"testing"

	"github.com/XJINE/scenecam/common"
	"github.com/stretchr/testify/assert"
)

func TestFrameAccessors(t *testing.T) {
	f := NewFrame(1.5, -2, 0.3, common.MouseButtonRight, common.MouseButton(9))

	assert.Equal(t, float32(1.5), f.Axis(common.MouseAxisX))
	assert.Equal(t, float32(-2), f.Axis(common.MouseAxisY))
	assert.Equal(t, float32(0.3), f.Axis(common.MouseAxisScrollWheel))
	assert.Equal(t, float32(0), f.Axis(common.MouseAxis(-1)))

	assert.True(t, f.ButtonHeld(common.MouseButtonRight))
	assert.False(t, f.ButtonHeld(common.MouseButtonLeft))
	assert.False(t, f.ButtonHeld(common.MouseButton(9)))
}

func TestSample(t *testing.T) {
	assert.Equal(t, Frame{}, Sample(nil))

	f := NewFrame(1, 2, 3, common.MouseButtonLeft, common.MouseButtonMiddle)
	assert.Equal(t, f, Sample(f))
}

func TestMouseSamplerLatchesDeltas(t *testing.T) {
	m := NewMouseSampler(WithSensitivity(0.5), WithScrollScale(2))

	m.HandleCursor(100, 100) // origin only
	m.HandleCursor(110, 96)
	m.HandleCursor(114, 90)
	m.HandleScroll(1)
	m.HandleScroll(0.5)
	m.HandleButton(common.MouseButtonMiddle, true)

	// Nothing is visible until the frame is latched.
	assert.Equal(t, float32(0), m.Axis(common.MouseAxisX))
	assert.False(t, m.ButtonHeld(common.MouseButtonMiddle))

	f := m.Latch()
	assert.InDelta(t, 7, f.Axis(common.MouseAxisX), 1e-6)
	assert.InDelta(t, 5, f.Axis(common.MouseAxisY), 1e-6, "moving up is positive")
	assert.InDelta(t, 3, f.Axis(common.MouseAxisScrollWheel), 1e-6)
	assert.True(t, f.ButtonHeld(common.MouseButtonMiddle))
	assert.Equal(t, f, Sample(m))

	// The next frame starts from zero motion but keeps held buttons.
	f = m.Latch()
	assert.Equal(t, float32(0), f.Axis(common.MouseAxisX))
	assert.Equal(t, float32(0), f.Axis(common.MouseAxisScrollWheel))
	assert.True(t, f.ButtonHeld(common.MouseButtonMiddle))

	m.HandleButton(common.MouseButtonMiddle, false)
	assert.False(t, m.Latch().ButtonHeld(common.MouseButtonMiddle))
}

func TestMouseSamplerInvertY(t *testing.T) {
	m := NewMouseSampler(WithSensitivity(1), WithInvertY(true))
	m.HandleCursor(0, 0)
	m.HandleCursor(0, 10)
	assert.InDelta(t, 10, m.Latch().Axis(common.MouseAxisY), 1e-6)
}

func TestMouseSamplerReset(t *testing.T) {
	m := NewMouseSampler(WithSensitivity(1))
	m.HandleCursor(0, 0)
	m.HandleCursor(5, 0)
	m.HandleButton(common.MouseButtonLeft, true)
	m.Reset()

	// After a reset the next cursor event re-establishes the origin.
	m.HandleCursor(50, 50)
	f := m.Latch()
	assert.Equal(t, Frame{}, f)
}

func TestMouseSamplerConcurrentEvents(t *testing.T) {
	m := NewMouseSampler(WithSensitivity(1), WithScrollScale(1))

	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 100 {
				m.HandleScroll(1)
			}
		}()
	}
	wg.Wait()

	assert.InDelta(t, 800, m.Latch().Axis(common.MouseAxisScrollWheel), 1e-3)
}
