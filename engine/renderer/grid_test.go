package renderer

import (
	"encoding/binary"
	"math"
	"strings"
	"testing"

	"github.com/XJINE/scenecam/common"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGridVerticesLayout(t *testing.T) {
	verts := gridVertices(2, 0.5)

	// Five lines along each horizontal axis plus the vertical marker.
	require.Len(t, verts, (5*2+1)*2)

	for _, v := range verts[:len(verts)-2] {
		assert.Zero(t, v.Position.Y())
		assert.LessOrEqual(t, math.Abs(float64(v.Position.X())), 1.0)
		assert.LessOrEqual(t, math.Abs(float64(v.Position.Z())), 1.0)
	}

	up := verts[len(verts)-2:]
	assert.Equal(t, mgl32.Vec3{0, 0, 0}, up[0].Position)
	assert.Equal(t, mgl32.Vec3{0, 0.5, 0}, up[1].Position)
	assert.Equal(t, gridYAxis, up[0].Color)
}

func TestGridVerticesAxisColors(t *testing.T) {
	verts := gridVertices(1, 1)

	// Index 4 and 5 hold the line along X through the origin, 6 and 7 the line along Z.
	assert.Equal(t, mgl32.Vec3{-1, 0, 0}, verts[4].Position)
	assert.Equal(t, mgl32.Vec3{1, 0, 0}, verts[5].Position)
	assert.Equal(t, gridXAxis, verts[4].Color)
	assert.Equal(t, mgl32.Vec3{0, 0, -1}, verts[6].Position)
	assert.Equal(t, gridZAxis, verts[6].Color)
	assert.Equal(t, gridLineColor, verts[0].Color)
}

func TestGridVerticesDegenerate(t *testing.T) {
	assert.Empty(t, gridVertices(0, 1))
	assert.Empty(t, gridVertices(4, 0))
	assert.Empty(t, gridVertices(-1, 1))
}

func TestGridVertexBufferLayout(t *testing.T) {
	verts := []gridVertex{
		{Position: mgl32.Vec3{1, 2, 3}, Color: mgl32.Vec4{0.1, 0.2, 0.3, 0.4}},
		{Position: mgl32.Vec3{-1, 0, 5}, Color: mgl32.Vec4{1, 1, 1, 1}},
	}
	buf := common.SliceToBytes(verts)
	require.Len(t, buf, 2*gridVertexStride)

	read := func(off int) float32 {
		return math.Float32frombits(binary.NativeEndian.Uint32(buf[off:]))
	}
	assert.Equal(t, float32(3), read(8))
	assert.Equal(t, float32(0.4), read(24))
	assert.Equal(t, float32(-1), read(gridVertexStride))
	assert.Equal(t, float32(5), read(gridVertexStride+8))
}

func TestGridShaderSourceDeclaresCamera(t *testing.T) {
	assert.True(t, strings.HasPrefix(gridShaderSource, "struct CameraUniform"))
	assert.Contains(t, gridShaderSource, "fn vs_main")
	assert.Contains(t, gridShaderSource, "fn fs_main")
}
