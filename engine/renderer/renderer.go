package renderer

import (
	"fmt"
	"sync"

	"github.com/XJINE/scenecam/common"
	"github.com/XJINE/scenecam/engine/camera"
	"github.com/XJINE/scenecam/engine/window"
	"github.com/cogentcore/webgpu/wgpu"
)

// renderer is the implementation of the Renderer interface.
type renderer struct {
	mu *sync.Mutex

	backendType RendererBackendType
	backend     RendererBackend

	gridExtent  int
	gridSpacing float32

	// Pre-creation config collected from builder options
	forceFallbackAdapter bool
	clearColor           wgpu.Color
	sampleCount          MSAASampleCount
	pendingPresentMode   *PresentMode

	released bool
}

// Renderer draws a reference grid through the camera so its motion can be judged visually.
type Renderer interface {
	// Resize configures the underlying backend for a new surface size.
	// A zero width or height pauses rendering until the next non-zero size.
	//
	// Parameters:
	//   - width: the new width of the surface in pixels
	//   - height: the new height of the surface in pixels
	Resize(width, height int)

	// Render uploads the camera uniform and draws one frame.
	//
	// Parameters:
	//   - uniform: the camera uniform for this frame
	//
	// Returns:
	//   - error: an error if the frame could not be drawn
	Render(uniform camera.GPUCameraUniform) error

	// SetPresentMode sets the surface present mode.
	// A call to Resize is required after changing this for the new mode to take effect.
	//
	// Parameters:
	//   - mode: the PresentMode to use (VSync or Uncapped)
	SetPresentMode(mode PresentMode)

	// Release frees every GPU resource. Render is a no-op afterwards.
	Release()
}

var _ Renderer = &renderer{}

// NewRenderer creates a grid renderer drawing into the given window's surface.
// Panics if no GPU adapter or device is available.
//
// Parameters:
//   - backendType: the type of rendering backend to use (e.g., WGPU)
//   - win: the window providing the surface descriptor and initial size
//   - options: variadic list of RendererBuilderOption functions to configure the Renderer
//
// Returns:
//   - Renderer: the ready-to-use renderer
func NewRenderer(backendType RendererBackendType, win window.Window, options ...RendererBuilderOption) Renderer {
	r := &renderer{
		mu:          &sync.Mutex{},
		backendType: backendType,
		gridExtent:  20,
		gridSpacing: 1,
		clearColor:  wgpu.Color{R: 0.1, G: 0.1, B: 0.1, A: 1.0},
		sampleCount: MSAA4x,
	}

	// Options go first so the adapter request sees forceFallbackAdapter.
	for _, opt := range options {
		opt(r)
	}

	switch backendType {
	case BackendTypeWGPU:
		fallthrough
	default:
		r.backend = newWGPURendererBackend(win.SurfaceDescriptor(), r.forceFallbackAdapter, r.sampleCount, r.clearColor)
	}

	if r.pendingPresentMode != nil {
		r.backend.SetPresentMode(*r.pendingPresentMode)
	}
	r.backend.ConfigureSurface(win.Width(), win.Height())

	verts := gridVertices(r.gridExtent, r.gridSpacing)
	var uniform camera.GPUCameraUniform
	if err := r.backend.InitGrid(gridShaderSource, uint64(uniform.Size()), common.SliceToBytes(verts), uint32(len(verts))); err != nil {
		panic(fmt.Sprintf("failed to create grid pipeline: %v", err))
	}
	return r
}

func (r *renderer) Resize(width, height int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.released {
		return
	}
	r.backend.ConfigureSurface(width, height)
}

func (r *renderer) SetPresentMode(mode PresentMode) {
	r.backend.SetPresentMode(mode)
}

func (r *renderer) Render(uniform camera.GPUCameraUniform) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.released {
		return nil
	}
	return r.backend.DrawFrame(uniform.Marshal())
}

func (r *renderer) Release() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.released {
		return
	}
	r.released = true
	r.backend.Release()
}
