package obstacles

import (
	"math"

	"seehuhn.de/go/geom/vec"

	"chosenoffset.com/sightcone/internal/core/geom"
)

// cross is the z component of the 2D cross product u × v
func cross(u, v vec.Vec2) float64 {
	return u.X*v.Y - u.Y*v.X
}

// raySegmentIntersection returns the distance along dir to segment AB.
// dir must be unit length.
//
// Ray: P = origin + t*r for t >= 0
// Segment: Q = a + u*s for 0 <= u <= 1
func raySegmentIntersection(origin, dir, a, b geom.Vec3) (float64, bool) {
	r := dir.Planar()
	s := b.Sub(a).Planar()

	denominator := cross(r, s)
	if math.Abs(denominator) < 1e-10 {
		// parallel
		return 0, false
	}

	d := a.Sub(origin).Planar()
	t := cross(d, s) / denominator
	u := cross(d, r) / denominator

	if u >= 0 && u <= 1 && t >= 0 {
		return t, true
	}
	return 0, false
}

// rayCircleIntersection returns the distance along dir to the circle's near
// side. A ray starting inside the circle does not hit it.
func rayCircleIntersection(origin, dir, center geom.Vec3, radius float64) (float64, bool) {
	oc := origin.Sub(center).Planar()
	c := oc.Dot(oc) - radius*radius
	if c < 0 {
		return 0, false
	}

	b := oc.Dot(dir.Planar())
	disc := b*b - c
	if disc < 0 {
		return 0, false
	}

	t := -b - math.Sqrt(disc)
	if t < 0 {
		return 0, false
	}
	return t, true
}
