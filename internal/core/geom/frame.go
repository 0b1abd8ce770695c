package geom

import (
	"math"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/vec"
)

// WorldMatrix maps the frame anchored at origin and facing degrees (local +Z
// along the facing) onto the ground plane. Matrices use the [a b c d e f]
// layout: x' = a*x + c*y + e, y' = b*x + d*y + f.
func WorldMatrix(origin Vec3, facing float64) matrix.Matrix {
	s, c := math.Sincos(facing * Deg2Rad)
	return matrix.Matrix{c, -s, s, c, origin.X, origin.Z}
}

// LocalMatrix is the inverse of WorldMatrix
func LocalMatrix(origin Vec3, facing float64) matrix.Matrix {
	s, c := math.Sincos(facing * Deg2Rad)
	return matrix.Matrix{
		c, s, -s, c,
		-(c*origin.X - s*origin.Z),
		-(s*origin.X + c*origin.Z),
	}
}

// Apply transforms a ground plane point by m
func Apply(m matrix.Matrix, p vec.Vec2) vec.Vec2 {
	return vec.Vec2{
		X: m[0]*p.X + m[2]*p.Y + m[4],
		Y: m[1]*p.X + m[3]*p.Y + m[5],
	}
}

// ToLocal transforms a world point into the frame anchored at origin and rotated
// by facing degrees, so that the facing direction becomes local +Z
func ToLocal(origin Vec3, facing float64, p Vec3) Vec3 {
	return FromPlanar(Apply(LocalMatrix(origin, facing), p.Planar()), p.Y-origin.Y)
}

// ToWorld is the inverse of ToLocal
func ToWorld(origin Vec3, facing float64, local Vec3) Vec3 {
	return FromPlanar(Apply(WorldMatrix(origin, facing), local.Planar()), origin.Y+local.Y)
}
