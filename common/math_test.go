package common

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tol = 1e-5

func assertVec3InDelta(t *testing.T, expected, actual mgl32.Vec3, delta float64) {
	t.Helper()
	for i := range 3 {
		assert.InDelta(t, expected[i], actual[i], delta, "component %d of %v vs %v", i, expected, actual)
	}
}

func TestAxesOfIdentity(t *testing.T) {
	q := mgl32.QuatIdent()
	assertVec3InDelta(t, mgl32.Vec3{0, 0, 1}, ForwardAxis(q), tol)
	assertVec3InDelta(t, mgl32.Vec3{1, 0, 0}, RightAxis(q), tol)
	assertVec3InDelta(t, mgl32.Vec3{0, 1, 0}, UpAxis(q), tol)
}

func TestEulerToQuat(t *testing.T) {
	yaw := EulerToQuat(mgl32.Vec3{0, 90, 0})
	assertVec3InDelta(t, mgl32.Vec3{1, 0, 0}, ForwardAxis(yaw), tol)
	assertVec3InDelta(t, mgl32.Vec3{0, 0, -1}, RightAxis(yaw), tol)

	pitch := EulerToQuat(mgl32.Vec3{90, 0, 0})
	assertVec3InDelta(t, mgl32.Vec3{0, -1, 0}, ForwardAxis(pitch), tol)

	roll := EulerToQuat(mgl32.Vec3{0, 0, 90})
	assertVec3InDelta(t, mgl32.Vec3{0, 0, 1}, ForwardAxis(roll), tol)
	assertVec3InDelta(t, mgl32.Vec3{0, 1, 0}, RightAxis(roll), tol)

	// Pitch is applied before yaw: the forward axis dips, then swings toward +X.
	combined := EulerToQuat(mgl32.Vec3{30, 90, 0})
	f := ForwardAxis(combined)
	assert.InDelta(t, -0.5, f.Y(), tol)
	assert.InDelta(t, 0, f.Z(), tol)
	assert.Greater(t, f.X(), float32(0))
}

func TestLookRotation(t *testing.T) {
	cases := []mgl32.Vec3{
		{0, 0, 1},
		{1, 0, 0},
		{0, 0, -1},
		{1, 1, 1},
		{-3, -2, 0.5},
	}
	for _, dir := range cases {
		q, ok := LookRotation(dir, WorldUp)
		require.True(t, ok, "direction %v", dir)
		assertVec3InDelta(t, dir.Normalize(), ForwardAxis(q), tol)
		assert.InDelta(t, 0, RightAxis(q).Y(), tol, "right axis should stay level for %v", dir)
		assert.Greater(t, UpAxis(q).Y(), float32(0))
		assert.InDelta(t, 1, q.Len(), tol)
	}
}

func TestLookRotationDegenerate(t *testing.T) {
	_, ok := LookRotation(mgl32.Vec3{}, WorldUp)
	assert.False(t, ok)

	_, ok = LookRotation(mgl32.Vec3{0, 2, 0}, WorldUp)
	assert.False(t, ok)

	_, ok = LookRotation(mgl32.Vec3{0, -1, 0}, WorldUp)
	assert.False(t, ok)
}

func TestLerpClampsFactor(t *testing.T) {
	a := mgl32.Vec3{0, 0, 0}
	b := mgl32.Vec3{10, 0, 0}

	assertVec3InDelta(t, mgl32.Vec3{5, 0, 0}, Lerp(a, b, 0.5), tol)
	assertVec3InDelta(t, b, Lerp(a, b, 4), tol)
	assertVec3InDelta(t, a, Lerp(a, b, -1), tol)
}

func TestSlerpShortestArc(t *testing.T) {
	a := mgl32.QuatIdent()
	b := AxisAngle(90, WorldUp)

	half := Slerp(a, b, 0.5)
	assert.InDelta(t, 45, mgl32.RadToDeg(Heading(ForwardAxis(half))), 1e-3)

	// The negated quaternion encodes the same rotation; slerp must not take the long way.
	halfNeg := Slerp(a, b.Scale(-1), 0.5)
	assert.InDelta(t, 45, mgl32.RadToDeg(Heading(ForwardAxis(halfNeg))), 1e-3)

	full := Slerp(a, b, 10)
	assertVec3InDelta(t, ForwardAxis(b), ForwardAxis(full), tol)
}

func TestAxisAngleZeroAxis(t *testing.T) {
	q := AxisAngle(45, mgl32.Vec3{})
	assert.Equal(t, mgl32.QuatIdent(), q)
}

func TestClampPitch(t *testing.T) {
	prev := mgl32.Vec3{0, 0, 2}

	t.Run("within range is untouched", func(t *testing.T) {
		next := AxisAngle(-30, mgl32.Vec3{1, 0, 0}).Rotate(prev)
		assert.Equal(t, next, ClampPitch(prev, next, MaxElevation))
	})

	t.Run("near the pole is clamped", func(t *testing.T) {
		next := mgl32.Vec3{0, 2, 1e-4}
		got := ClampPitch(prev, next, MaxElevation)
		assert.InDelta(t, mgl32.RadToDeg(MaxElevation), mgl32.RadToDeg(Elevation(got)), 1e-3)
		assert.InDelta(t, next.Len(), got.Len(), 1e-4)
		assert.Greater(t, got.Z(), float32(0))
	})

	t.Run("crossing the pole keeps the previous heading", func(t *testing.T) {
		next := AxisAngle(-120, mgl32.Vec3{1, 0, 0}).Rotate(prev)
		require.Less(t, next.Z(), float32(0))
		got := ClampPitch(prev, next, MaxElevation)
		assert.InDelta(t, mgl32.RadToDeg(MaxElevation), mgl32.RadToDeg(Elevation(got)), 1e-3)
		assert.Greater(t, got.Z(), float32(0))
	})

	t.Run("crossing downward clamps below the horizon", func(t *testing.T) {
		next := AxisAngle(120, mgl32.Vec3{1, 0, 0}).Rotate(prev)
		got := ClampPitch(prev, next, MaxElevation)
		assert.InDelta(t, -mgl32.RadToDeg(MaxElevation), mgl32.RadToDeg(Elevation(got)), 1e-3)
	})

	t.Run("exactly vertical is pulled off the pole", func(t *testing.T) {
		got := ClampPitch(prev, mgl32.Vec3{0, 2, 0}, MaxElevation)
		_, ok := LookRotation(got, WorldUp)
		assert.True(t, ok)
	})

	t.Run("zero length keeps previous", func(t *testing.T) {
		assert.Equal(t, prev, ClampPitch(prev, mgl32.Vec3{}, MaxElevation))
	})
}

func TestViewMatrix(t *testing.T) {
	view := ViewMatrix(mgl32.Vec3{}, mgl32.QuatIdent())
	assert.True(t, view.ApproxEqualThreshold(mgl32.Ident4(), tol))

	pos := mgl32.Vec3{1, 2, 3}
	rot := EulerToQuat(mgl32.Vec3{0, 90, 0})
	view = ViewMatrix(pos, rot)

	// A point one unit ahead of the camera lands on the view-space +Z axis.
	ahead := pos.Add(ForwardAxis(rot))
	got := view.Mul4x1(ahead.Vec4(1))
	assertVec3InDelta(t, mgl32.Vec3{0, 0, 1}, got.Vec3(), tol)

	right := pos.Add(RightAxis(rot))
	got = view.Mul4x1(right.Vec4(1))
	assertVec3InDelta(t, mgl32.Vec3{1, 0, 0}, got.Vec3(), tol)
}

func TestPerspectiveDepthRange(t *testing.T) {
	near, far := float32(0.1), float32(100)
	proj := Perspective(mgl32.DegToRad(60), 16.0/9.0, near, far)

	atNear := proj.Mul4x1(mgl32.Vec4{0, 0, near, 1})
	assert.InDelta(t, 0, atNear.Z()/atNear.W(), tol)

	atFar := proj.Mul4x1(mgl32.Vec4{0, 0, far, 1})
	assert.InDelta(t, 1, atFar.Z()/atFar.W(), tol)
}

func TestHeadingAndElevation(t *testing.T) {
	assert.InDelta(t, 90, mgl32.RadToDeg(Heading(mgl32.Vec3{1, 0, 0})), tol)
	assert.InDelta(t, 0, mgl32.RadToDeg(Heading(mgl32.Vec3{0, 0, 1})), tol)
	assert.InDelta(t, 45, mgl32.RadToDeg(Elevation(mgl32.Vec3{0, 1, 1})), 1e-4)
}

func TestSignAndCoalesce(t *testing.T) {
	assert.Equal(t, float32(-1), Sign(true))
	assert.Equal(t, float32(1), Sign(false))
	assert.Equal(t, 3, Coalesce(0, 0, 3, 4))
	assert.Equal(t, "", Coalesce[string]())
}

func TestMouseCodes(t *testing.T) {
	b, ok := ParseMouseButton("middle")
	require.True(t, ok)
	assert.Equal(t, MouseButtonMiddle, b)
	assert.Equal(t, "right", MouseButtonRight.String())

	a, ok := ParseMouseAxis("scroll_wheel")
	require.True(t, ok)
	assert.Equal(t, MouseAxisScrollWheel, a)

	_, ok = ParseMouseAxis("wheel")
	assert.False(t, ok)
	assert.False(t, MouseButton(7).Valid())
}
