// Package fov computes what an agent can see: a fan-triangulated polygon of the
// visible region inside a view cone, and the subset of tagged targets that are
// inside the cone with a clear line of sight.
//
// The package never touches scene geometry directly. Ray intersection and
// candidate discovery are injected through ObstacleQuery and TargetDiscovery.
package fov

import (
	"github.com/google/uuid"

	"chosenoffset.com/sightcone/internal/core/geom"
)

// Pose is the agent's position and facing angle in degrees
type Pose struct {
	Position geom.Vec3
	Facing   float64
}

// Forward returns the unit facing direction
func (p Pose) Forward() geom.Vec3 {
	return geom.DirFromAngle(p.Facing)
}

// ToLocal transforms a world point into the pose's frame
func (p Pose) ToLocal(world geom.Vec3) geom.Vec3 {
	return geom.ToLocal(p.Position, p.Facing, world)
}

// PoseSource supplies the current agent pose each tick
type PoseSource interface {
	Pose() Pose
}

// PoseFunc adapts a plain function to PoseSource
type PoseFunc func() Pose

// Pose implements PoseSource.
func (f PoseFunc) Pose() Pose { return f() }

// StaticPose is a PoseSource that never moves
type StaticPose Pose

// Pose implements PoseSource.
func (s StaticPose) Pose() Pose { return Pose(s) }

// LayerMask selects which obstacle layers a ray query considers
type LayerMask uint32

// AllLayers matches every obstacle
const AllLayers = ^LayerMask(0)

// Hit is the nearest blocking surface reported by an ObstacleQuery
type Hit struct {
	Point    geom.Vec3
	Distance float64
}

// ObstacleQuery casts a ray against the opaque obstacles in the scene.
// It reports the nearest hit within maxDistance, or false when the ray is clear.
// Results must be deterministic for the same inputs and geometry.
type ObstacleQuery interface {
	Raycast(origin, dir geom.Vec3, maxDistance float64, mask LayerMask) (Hit, bool)
}

// RaycastFunc adapts a plain function to ObstacleQuery
type RaycastFunc func(origin, dir geom.Vec3, maxDistance float64, mask LayerMask) (Hit, bool)

// Raycast implements ObstacleQuery.
func (f RaycastFunc) Raycast(origin, dir geom.Vec3, maxDistance float64, mask LayerMask) (Hit, bool) {
	return f(origin, dir, maxDistance, mask)
}

// Target is something the agent may be able to see
type Target struct {
	ID       uuid.UUID
	Name     string
	Position geom.Vec3
	Tag      string
}

// TargetDiscovery returns every target carrying tag within radius of center.
// It does no angle or occlusion filtering.
type TargetDiscovery interface {
	QueryRange(center geom.Vec3, radius float64, tag string) []Target
}

// ViewCast is the result of a single ray cast at a global angle
type ViewCast struct {
	Hit      bool
	Point    geom.Vec3
	Distance float64
	Angle    float64
}

// EdgePoints are the refined points either side of a silhouette edge.
// Either point may be missing when refinement never moved that side.
type EdgePoints struct {
	A, B       geom.Vec3
	HasA, HasB bool
}

// Points returns the present points in order
func (e EdgePoints) Points() []geom.Vec3 {
	pts := make([]geom.Vec3, 0, 2)
	if e.HasA {
		pts = append(pts, e.A)
	}
	if e.HasB {
		pts = append(pts, e.B)
	}
	return pts
}
