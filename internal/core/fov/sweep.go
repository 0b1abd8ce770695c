package fov

import (
	"math"

	"chosenoffset.com/sightcone/internal/core/geom"
)

// Sweep casts RayCount+1 rays evenly across the cone and returns the boundary
// of the visible region in increasing angle order. Wherever two adjacent rays
// disagree, the silhouette edge between them is refined and its points are
// inserted ahead of the later ray's point.
func (e *Engine) Sweep(pose Pose) []geom.Vec3 {
	rayCount := e.params.RayCount()
	step := e.params.Step()
	start := pose.Facing - e.params.HalfAngle

	points := make([]geom.Vec3, 0, rayCount+1)
	var prev ViewCast

	for i := 0; i <= rayCount; i++ {
		curr := e.Cast(pose.Position, start+step*float64(i))

		if i > 0 && e.isEdge(prev, curr) {
			points = append(points, e.FindEdge(pose.Position, prev, curr).Points()...)
		}

		points = append(points, curr.Point)
		prev = curr
	}

	return points
}

// isEdge reports whether a silhouette edge lies between two adjacent casts
func (e *Engine) isEdge(prev, curr ViewCast) bool {
	if prev.Hit != curr.Hit {
		return true
	}
	return prev.Hit && curr.Hit && math.Abs(prev.Distance-curr.Distance) > e.params.EdgeDistanceThreshold
}

// FindEdge binary-searches the angle between two disagreeing casts. Midpoints
// that look like min move the min side up and become A; anything else moves
// the max side down and becomes B.
func (e *Engine) FindEdge(origin geom.Vec3, minCast, maxCast ViewCast) EdgePoints {
	minAngle := minCast.Angle
	maxAngle := maxCast.Angle

	var edge EdgePoints
	for i := 0; i < e.params.EdgeResolveIterations; i++ {
		angle := (minAngle + maxAngle) / 2
		mid := e.Cast(origin, angle)

		thresholdExceeded := math.Abs(minCast.Distance-mid.Distance) > e.params.EdgeDistanceThreshold
		if mid.Hit == minCast.Hit && !thresholdExceeded {
			minAngle = angle
			edge.A, edge.HasA = mid.Point, true
		} else {
			maxAngle = angle
			edge.B, edge.HasB = mid.Point, true
		}
	}

	return edge
}
