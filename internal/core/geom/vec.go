// Package geom holds the small amount of vector math the visibility engine needs.
// The ground plane is X/Z; Y is the vertical axis and is carried through but never
// used for angle math. Planar arithmetic runs on vec.Vec2 with world Z as its Y.
package geom

import (
	"math"

	"seehuhn.de/go/geom/vec"
)

// Vec3 represents a point or direction in world space
type Vec3 struct {
	X, Y, Z float64
}

// Zero is the origin
var Zero = Vec3{}

// V returns a vector on the ground plane
func V(x, z float64) Vec3 {
	return Vec3{X: x, Z: z}
}

// Planar projects a onto the ground plane
func (a Vec3) Planar() vec.Vec2 {
	return vec.Vec2{X: a.X, Y: a.Z}
}

// FromPlanar lifts a ground plane vector back to world space at height y
func FromPlanar(p vec.Vec2, y float64) Vec3 {
	return Vec3{X: p.X, Y: y, Z: p.Y}
}

// Add returns a + b
func (a Vec3) Add(b Vec3) Vec3 {
	return FromPlanar(a.Planar().Add(b.Planar()), a.Y+b.Y)
}

// Sub returns a - b
func (a Vec3) Sub(b Vec3) Vec3 {
	return FromPlanar(a.Planar().Sub(b.Planar()), a.Y-b.Y)
}

// Scale returns a * s
func (a Vec3) Scale(s float64) Vec3 {
	return FromPlanar(a.Planar().Mul(s), a.Y*s)
}

// Dot is the planar dot product (Y ignored)
func (a Vec3) Dot(b Vec3) float64 {
	return a.Planar().Dot(b.Planar())
}

// Cross is the planar cross product (Y ignored). Positive when b is clockwise
// from a when looking down the Y axis, i.e. when b has a larger facing angle.
func (a Vec3) Cross(b Vec3) float64 {
	return a.Z*b.X - a.X*b.Z
}

// Len returns the planar length
func (a Vec3) Len() float64 {
	return a.Planar().Length()
}

// Flat drops the vertical component
func (a Vec3) Flat() Vec3 {
	return Vec3{X: a.X, Z: a.Z}
}

// Normalize returns the planar unit vector in the direction of a.
// The zero vector normalizes to itself.
func (a Vec3) Normalize() Vec3 {
	l := a.Len()
	if l == 0 {
		return Zero
	}
	return FromPlanar(a.Planar().Mul(1/l), 0)
}

// ApproxEqual compares two vectors component-wise within eps
func (a Vec3) ApproxEqual(b Vec3, eps float64) bool {
	return math.Abs(a.X-b.X) <= eps && math.Abs(a.Y-b.Y) <= eps && math.Abs(a.Z-b.Z) <= eps
}

// Distance calculates the planar Euclidean distance between two points
func Distance(a, b Vec3) float64 {
	return b.Sub(a).Len()
}
