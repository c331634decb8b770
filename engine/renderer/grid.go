package renderer

import (
	_ "embed"

	"github.com/XJINE/scenecam/engine/camera"
	"github.com/go-gl/mathgl/mgl32"
)

//go:embed assets/grid.wgsl
var gridShaderBody string

// gridShaderSource is the complete grid shader with the camera uniform declaration prepended.
var gridShaderSource = camera.GPUCameraUniformSource + "\n" + gridShaderBody

// gridVertexStride is the byte size of one gridVertex: vec3 position + vec4 color.
const gridVertexStride = 7 * 4

var (
	gridLineColor = mgl32.Vec4{0.45, 0.45, 0.45, 0.6}
	gridXAxis     = mgl32.Vec4{0.9, 0.25, 0.25, 1}
	gridYAxis     = mgl32.Vec4{0.25, 0.9, 0.25, 1}
	gridZAxis     = mgl32.Vec4{0.25, 0.45, 0.95, 1}
)

// gridVertex is one end of a grid line. Its memory layout is the vertex buffer layout.
type gridVertex struct {
	Position mgl32.Vec3
	Color    mgl32.Vec4
}

// gridVertices builds a line list for a square grid on the XZ plane centred on the origin, plus a
// short vertical Y axis. Lines through the origin carry the axis colors.
//
// Parameters:
//   - extent: the number of cells from the origin to each edge
//   - spacing: the distance between neighbouring lines in world units
//
// Returns:
//   - []gridVertex: pairs of vertices, one pair per line
func gridVertices(extent int, spacing float32) []gridVertex {
	if extent <= 0 || spacing <= 0 {
		return nil
	}
	half := float32(extent) * spacing
	verts := make([]gridVertex, 0, (4*extent+2)*2+2)

	for i := -extent; i <= extent; i++ {
		at := float32(i) * spacing
		xColor, zColor := gridLineColor, gridLineColor
		if i == 0 {
			xColor, zColor = gridXAxis, gridZAxis
		}
		// Line parallel to X at z = at.
		verts = append(verts,
			gridVertex{mgl32.Vec3{-half, 0, at}, xColor},
			gridVertex{mgl32.Vec3{half, 0, at}, xColor},
		)
		// Line parallel to Z at x = at.
		verts = append(verts,
			gridVertex{mgl32.Vec3{at, 0, -half}, zColor},
			gridVertex{mgl32.Vec3{at, 0, half}, zColor},
		)
	}

	verts = append(verts,
		gridVertex{mgl32.Vec3{0, 0, 0}, gridYAxis},
		gridVertex{mgl32.Vec3{0, spacing, 0}, gridYAxis},
	)
	return verts
}
