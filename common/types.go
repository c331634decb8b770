// package common contains common types that are used throughout this module. They are not interface-wrapped structs, just plain structs that express
// commonly used data-types.
package common

import "github.com/go-gl/mathgl/mgl32"

// Pose is a snapshot of a camera transform.
type Pose struct {
	// Position is the world-space camera position.
	Position mgl32.Vec3

	// Rotation is the camera orientation as a unit quaternion.
	Rotation mgl32.Quat
}

// IdentityPose returns a pose at the origin looking down +Z.
//
// Returns:
//   - Pose: the identity pose
func IdentityPose() Pose {
	return Pose{Rotation: mgl32.QuatIdent()}
}

// Forward returns the pose's world-space forward direction.
//
// Returns:
//   - mgl32.Vec3: the forward axis
func (p Pose) Forward() mgl32.Vec3 {
	return ForwardAxis(p.Rotation)
}
