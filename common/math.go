package common

import (
	"unsafe"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// The camera rig uses a left-handed, Y-up convention: an identity rotation looks down +Z,
// with +X to the right. All helpers in this file follow that convention.

// Epsilon is the length below which a vector is treated as zero.
const Epsilon float32 = 1e-6

var (
	// WorldUp is the fixed world-space up reference.
	WorldUp = mgl32.Vec3{0, 1, 0}

	// LocalForward, LocalRight and LocalUp are the camera-space basis axes.
	LocalForward = mgl32.Vec3{0, 0, 1}
	LocalRight   = mgl32.Vec3{1, 0, 0}
	LocalUp      = mgl32.Vec3{0, 1, 0}

	// MaxElevation is the largest angle in radians a look direction may rise above or sink
	// below the horizontal plane. Keeping it short of 90 degrees keeps LookRotation defined.
	MaxElevation = mgl32.DegToRad(89)
)

// SliceToBytes converts any slice to a byte slice for GPU buffer uploads.
// Uses unsafe pointer operations to create a view into the original data.
// WARNING: The returned slice shares memory with the input - do not modify.
//
// Parameters:
//   - data: source slice of any type
//
// Returns:
//   - []byte: byte slice view of the input data, or nil if input is empty
func SliceToBytes[T any](data []T) []byte {
	if len(data) == 0 {
		return nil
	}
	var zero T
	size := unsafe.Sizeof(zero)
	totalBytes := int(size) * len(data)
	return unsafe.Slice((*byte)(unsafe.Pointer(&data[0])), totalBytes)
}

// ForwardAxis returns the world-space forward direction of a rotation.
//
// Parameters:
//   - q: a unit rotation quaternion
//
// Returns:
//   - mgl32.Vec3: the rotated local +Z axis
func ForwardAxis(q mgl32.Quat) mgl32.Vec3 {
	return q.Rotate(LocalForward)
}

// RightAxis returns the world-space right direction of a rotation.
//
// Parameters:
//   - q: a unit rotation quaternion
//
// Returns:
//   - mgl32.Vec3: the rotated local +X axis
func RightAxis(q mgl32.Quat) mgl32.Vec3 {
	return q.Rotate(LocalRight)
}

// UpAxis returns the world-space up direction of a rotation.
//
// Parameters:
//   - q: a unit rotation quaternion
//
// Returns:
//   - mgl32.Vec3: the rotated local +Y axis
func UpAxis(q mgl32.Quat) mgl32.Vec3 {
	return q.Rotate(LocalUp)
}

// AxisAngle builds a rotation of angleDegrees around axis. The axis does not need to be
// normalized. A zero-length axis yields the identity rotation.
//
// Parameters:
//   - angleDegrees: rotation angle in degrees
//   - axis: rotation axis
//
// Returns:
//   - mgl32.Quat: the rotation
func AxisAngle(angleDegrees float32, axis mgl32.Vec3) mgl32.Quat {
	if axis.Len() < Epsilon {
		return mgl32.QuatIdent()
	}
	return mgl32.QuatRotate(mgl32.DegToRad(angleDegrees), axis.Normalize())
}

// EulerToQuat converts Euler angles in degrees into a rotation. The rotation is applied
// around Z first, then X, then Y, so (0, yaw, 0) turns the forward axis toward +X for a
// positive yaw and (pitch, 0, 0) tilts it downward for a positive pitch.
//
// Parameters:
//   - degrees: rotation around the X, Y and Z axes in degrees
//
// Returns:
//   - mgl32.Quat: the composed unit rotation
func EulerToQuat(degrees mgl32.Vec3) mgl32.Quat {
	qx := mgl32.QuatRotate(mgl32.DegToRad(degrees[0]), LocalRight)
	qy := mgl32.QuatRotate(mgl32.DegToRad(degrees[1]), LocalUp)
	qz := mgl32.QuatRotate(mgl32.DegToRad(degrees[2]), LocalForward)
	return qy.Mul(qx).Mul(qz).Normalize()
}

// LookRotation builds the rotation whose forward axis points along forward and whose up
// axis lies in the plane of forward and up.
// The second return value is false when forward is zero-length or parallel to up, in which
// case the look rotation is undefined and the identity is returned.
//
// Parameters:
//   - forward: the desired forward direction (need not be normalized)
//   - up: the reference up direction
//
// Returns:
//   - mgl32.Quat: the look rotation
//   - bool: false if the rotation is undefined
func LookRotation(forward, up mgl32.Vec3) (mgl32.Quat, bool) {
	if forward.Len() < Epsilon {
		return mgl32.QuatIdent(), false
	}
	f := forward.Normalize()
	r := up.Cross(f)
	if r.Len() < Epsilon {
		return mgl32.QuatIdent(), false
	}
	r = r.Normalize()
	u := f.Cross(r)

	basis := mgl32.Mat3FromCols(r, u, f)
	return mgl32.Mat4ToQuat(basis.Mat4()).Normalize(), true
}

// Lerp linearly interpolates from a to b. The factor is clamped to [0, 1] so large
// smoothing steps land on b instead of overshooting.
//
// Parameters:
//   - a: start value
//   - b: end value
//   - t: interpolation factor
//
// Returns:
//   - mgl32.Vec3: the interpolated vector
func Lerp(a, b mgl32.Vec3, t float32) mgl32.Vec3 {
	t = mgl32.Clamp(t, 0, 1)
	return a.Add(b.Sub(a).Mul(t))
}

// Slerp spherically interpolates from a to b along the shorter arc. The factor is clamped
// to [0, 1].
//
// Parameters:
//   - a: start rotation
//   - b: end rotation
//   - t: interpolation factor
//
// Returns:
//   - mgl32.Quat: the interpolated unit rotation
func Slerp(a, b mgl32.Quat, t float32) mgl32.Quat {
	t = mgl32.Clamp(t, 0, 1)
	if a.Dot(b) < 0 {
		b = b.Scale(-1)
	}
	return mgl32.QuatSlerp(a, b, t).Normalize()
}

// Horizontal projects v onto the plane perpendicular to WorldUp.
//
// Parameters:
//   - v: the vector to project
//
// Returns:
//   - mgl32.Vec3: v with its Y component removed
func Horizontal(v mgl32.Vec3) mgl32.Vec3 {
	return mgl32.Vec3{v[0], 0, v[2]}
}

// Elevation returns the signed angle in radians between v and the horizontal plane.
//
// Parameters:
//   - v: the direction to measure
//
// Returns:
//   - float32: elevation in radians, positive above the horizon
func Elevation(v mgl32.Vec3) float32 {
	return math32.Atan2(v[1], Horizontal(v).Len())
}

// Heading returns the signed angle in radians of v around WorldUp, measured from +Z
// toward +X.
//
// Parameters:
//   - v: the direction to measure
//
// Returns:
//   - float32: heading in radians
func Heading(v mgl32.Vec3) float32 {
	return math32.Atan2(v[0], v[2])
}

// ClampPitch bounds the elevation of next, a pitched copy of prev, to maxElevation. If the
// pitch carried next across the pole its heading is taken from prev, so the result keeps
// facing the way prev did. The length of next is preserved.
//
// Parameters:
//   - prev: the direction before the pitch rotation
//   - next: the direction after the pitch rotation
//   - maxElevation: the largest allowed elevation in radians
//
// Returns:
//   - mgl32.Vec3: next, or its clamped replacement
func ClampPitch(prev, next mgl32.Vec3, maxElevation float32) mgl32.Vec3 {
	length := next.Len()
	if length < Epsilon {
		return prev
	}

	prevHorizontal := Horizontal(prev)
	nextHorizontal := Horizontal(next)
	crossed := prevHorizontal.Len() >= Epsilon && nextHorizontal.Len() >= Epsilon &&
		nextHorizontal.Dot(prevHorizontal) < 0

	heading := nextHorizontal
	if crossed || heading.Len() < Epsilon {
		heading = prevHorizontal
	}
	if heading.Len() < Epsilon {
		return prev
	}

	elevation := Elevation(next)
	if crossed {
		elevation = math32.Copysign(mgl32.DegToRad(90), next[1])
	}
	if math32.Abs(elevation) <= maxElevation {
		return next
	}

	clamped := math32.Copysign(maxElevation, elevation)
	heading = heading.Normalize()
	return heading.Mul(length * math32.Cos(clamped)).Add(WorldUp.Mul(length * math32.Sin(clamped)))
}

// ViewMatrix builds the left-handed world-to-view matrix for a camera pose.
//
// Parameters:
//   - position: camera position in world space
//   - rotation: camera orientation
//
// Returns:
//   - mgl32.Mat4: the column-major view matrix
func ViewMatrix(position mgl32.Vec3, rotation mgl32.Quat) mgl32.Mat4 {
	r := RightAxis(rotation)
	u := UpAxis(rotation)
	f := ForwardAxis(rotation)
	return mgl32.Mat4{
		r[0], u[0], f[0], 0,
		r[1], u[1], f[1], 0,
		r[2], u[2], f[2], 0,
		-r.Dot(position), -u.Dot(position), -f.Dot(position), 1,
	}
}

// Perspective creates a left-handed perspective projection matrix mapping view depth
// [near, far] to the WebGPU clip range [0, 1].
//
// Parameters:
//   - fovY: vertical field of view in radians
//   - aspect: viewport aspect ratio (width/height)
//   - near: near clipping plane distance (must be > 0)
//   - far: far clipping plane distance (must be > near)
//
// Returns:
//   - mgl32.Mat4: the column-major projection matrix
func Perspective(fovY, aspect, near, far float32) mgl32.Mat4 {
	f := 1.0 / math32.Tan(fovY/2.0)

	var out mgl32.Mat4
	out[0] = f / aspect
	out[5] = f
	out[10] = far / (far - near)
	out[11] = 1.0
	out[14] = -(near * far) / (far - near)
	return out
}
