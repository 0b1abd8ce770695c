package geom

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"seehuhn.de/go/geom/vec"
)

const eps = 1e-9

func TestDirFromAngle(t *testing.T) {
	assert.True(t, DirFromAngle(0).ApproxEqual(V(0, 1), eps))
	assert.True(t, DirFromAngle(90).ApproxEqual(V(1, 0), eps))
	assert.True(t, DirFromAngle(180).ApproxEqual(V(0, -1), eps))
	assert.True(t, DirFromAngle(-90).ApproxEqual(V(-1, 0), eps))
	assert.InDelta(t, 1.0, DirFromAngle(37).Len(), eps)
}

func TestAngleOfRoundTrip(t *testing.T) {
	for _, deg := range []float64{-170, -45, 0, 12.5, 90, 179} {
		assert.InDelta(t, deg, AngleOf(DirFromAngle(deg)), 1e-9, "angle %v", deg)
	}
}

func TestAngleBetween(t *testing.T) {
	assert.InDelta(t, 45.0, AngleBetween(V(0, 1), V(1, 1)), eps)
	assert.InDelta(t, 180.0, AngleBetween(V(0, 1), V(0, -1)), eps)
	assert.InDelta(t, 0.0, AngleBetween(V(0, 1), V(0, 5)), eps)
	assert.Equal(t, 0.0, AngleBetween(Zero, V(1, 0)))

	// vertical component is ignored
	assert.InDelta(t, 45.0, AngleBetween(V(0, 1), Vec3{X: 1, Y: 40, Z: 1}), eps)
}

func TestDeltaAngle(t *testing.T) {
	assert.InDelta(t, 20.0, DeltaAngle(350, 10), eps)
	assert.InDelta(t, -20.0, DeltaAngle(10, 350), eps)
	assert.InDelta(t, 180.0, DeltaAngle(0, 180), eps)
	assert.InDelta(t, 180.0, DeltaAngle(0, -180), eps)
}

func TestFromPolar(t *testing.T) {
	p := FromPolar(Vec3{X: 1, Y: 2, Z: 3}, 90, 10)
	assert.True(t, p.ApproxEqual(Vec3{X: 11, Y: 2, Z: 3}, eps))
}

func TestLocalFrameRoundTrip(t *testing.T) {
	origin := Vec3{X: 3, Y: 1, Z: -2}
	for _, facing := range []float64{0, 30, 90, -135, 270} {
		p := Vec3{X: -4, Y: 5, Z: 7}
		local := ToLocal(origin, facing, p)
		assert.True(t, ToWorld(origin, facing, local).ApproxEqual(p, 1e-9), "facing %v", facing)
	}

	// the facing direction maps onto local +Z
	local := ToLocal(Zero, 90, V(5, 0))
	assert.True(t, local.ApproxEqual(V(0, 5), eps))
	// facing 0 keeps world axes
	local = ToLocal(Zero, 0, V(2, 3))
	assert.True(t, local.ApproxEqual(V(2, 3), eps))
}

func TestCrossSign(t *testing.T) {
	assert.Greater(t, DirFromAngle(0).Cross(DirFromAngle(10)), 0.0)
	assert.Less(t, DirFromAngle(0).Cross(DirFromAngle(-10)), 0.0)
	assert.InDelta(t, math.Sqrt2, Distance(Zero, V(1, 1)), eps)
}

func TestFrameMatchesBasisVectors(t *testing.T) {
	origin := V(2, -1)
	p := V(-3, 4)
	for _, facing := range []float64{0, 25, 90, 200, -60} {
		d := p.Sub(origin)
		right := DirFromAngle(facing + 90)
		forward := DirFromAngle(facing)

		local := ToLocal(origin, facing, p)
		assert.InDelta(t, d.Dot(right), local.X, eps, "facing %v", facing)
		assert.InDelta(t, d.Dot(forward), local.Z, eps, "facing %v", facing)
	}
}

func TestLocalMatrixInvertsWorldMatrix(t *testing.T) {
	origin := V(7, 3)
	w := WorldMatrix(origin, 33)
	l := LocalMatrix(origin, 33)

	pt := vec.Vec2{X: -1.5, Y: 2.25}
	back := Apply(l, Apply(w, pt))
	assert.InDelta(t, pt.X, back.X, eps)
	assert.InDelta(t, pt.Y, back.Y, eps)

	// the local origin lands on the anchor
	o := Apply(w, vec.Vec2{})
	assert.InDelta(t, 7.0, o.X, eps)
	assert.InDelta(t, 3.0, o.Y, eps)
}

func TestPlanarKeepsHeight(t *testing.T) {
	a := Vec3{X: 1, Y: 2, Z: 3}
	assert.Equal(t, vec.Vec2{X: 1, Y: 3}, a.Planar())
	assert.Equal(t, a, FromPlanar(a.Planar(), 2))
	assert.Equal(t, Vec3{X: 2, Y: 4, Z: 6}, a.Add(a))
}
