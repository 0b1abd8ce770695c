package fov_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chosenoffset.com/sightcone/internal/core/fov"
	"chosenoffset.com/sightcone/internal/core/geom"
	"chosenoffset.com/sightcone/internal/world/obstacles"
)

const (
	wallDepth     = 5.0
	leftEdgeDeg   = -20.3
	rightEdgeDeg  = 17.7
	testThreshold = 0.5
)

func testParams() fov.Params {
	return fov.Params{
		Radius:                10,
		HalfAngle:             45,
		MeshResolution:        1,
		EdgeResolveIterations: 6,
		EdgeDistanceThreshold: testThreshold,
	}
}

// wallWorld has one wall across the cone at z=5 whose ends sit at known angles
func wallWorld() *obstacles.World {
	w := obstacles.NewWorld()
	w.AddSegment(
		geom.V(wallDepth*math.Tan(leftEdgeDeg*geom.Deg2Rad), wallDepth),
		geom.V(wallDepth*math.Tan(rightEdgeDeg*geom.Deg2Rad), wallDepth),
	)
	return w
}

// wallDistance is the analytic visible distance at a global angle for wallWorld
func wallDistance(deg, radius float64) float64 {
	if deg < leftEdgeDeg || deg > rightEdgeDeg {
		return radius
	}
	return wallDepth / math.Cos(deg*geom.Deg2Rad)
}

func newEngine(t *testing.T, p fov.Params, q fov.ObstacleQuery) *fov.Engine {
	t.Helper()
	e, err := fov.NewEngine(p, q, fov.AllLayers)
	require.NoError(t, err)
	return e
}

func TestNewEngineRequiresQuery(t *testing.T) {
	_, err := fov.NewEngine(testParams(), nil, fov.AllLayers)
	assert.ErrorIs(t, err, fov.ErrNoObstacleQuery)

	bad := testParams()
	bad.Radius = -3
	_, err = fov.NewEngine(bad, obstacles.NewWorld(), fov.AllLayers)
	assert.ErrorIs(t, err, fov.ErrInvalidRadius)

	assert.Panics(t, func() { fov.MustEngine(bad, obstacles.NewWorld(), fov.AllLayers) })
}

func TestCastMissReportsFullRange(t *testing.T) {
	e := newEngine(t, testParams(), obstacles.NewWorld())
	origin := geom.Vec3{X: 1, Y: 2, Z: 3}

	vc := e.Cast(origin, 90)
	assert.False(t, vc.Hit)
	assert.Equal(t, 10.0, vc.Distance)
	assert.Equal(t, 90.0, vc.Angle)
	assert.True(t, vc.Point.ApproxEqual(geom.Vec3{X: 11, Y: 2, Z: 3}, 1e-9))
}

func TestCastHit(t *testing.T) {
	e := newEngine(t, testParams(), wallWorld())

	vc := e.Cast(geom.Zero, 0)
	assert.True(t, vc.Hit)
	assert.InDelta(t, 5.0, vc.Distance, 1e-9)
	assert.True(t, vc.Point.ApproxEqual(geom.V(0, 5), 1e-9))
}

func TestSweepEmptyWorldIsSector(t *testing.T) {
	for _, facing := range []float64{0, 37, -120, 200} {
		p := testParams()
		e := newEngine(t, p, obstacles.NewWorld())
		pose := fov.Pose{Position: geom.Vec3{X: 4, Y: 1, Z: -7}, Facing: facing}

		points := e.Sweep(pose)
		require.Len(t, points, p.RayCount()+1)

		for i, pt := range points {
			local := pose.ToLocal(pt)
			assert.InDelta(t, p.Radius, local.Len(), 1e-9)
			assert.InDelta(t, -p.HalfAngle+p.Step()*float64(i), geom.AngleOf(local), 1e-9)
		}
	}
}

func TestFindEdgeLocatesAnalyticEdges(t *testing.T) {
	p := testParams()
	e := newEngine(t, p, wallWorld())
	maxErr := p.MaxEdgeError()

	for _, tc := range []struct {
		name     string
		from, to float64
		edge     float64
	}{
		{"left", -21, -20, leftEdgeDeg},
		{"right", 17, 18, rightEdgeDeg},
	} {
		t.Run(tc.name, func(t *testing.T) {
			minCast := e.Cast(geom.Zero, tc.from)
			maxCast := e.Cast(geom.Zero, tc.to)
			require.NotEqual(t, minCast.Hit, maxCast.Hit)

			edge := e.FindEdge(geom.Zero, minCast, maxCast)
			require.True(t, edge.HasA)
			require.True(t, edge.HasB)

			angleA := geom.AngleOf(edge.A)
			angleB := geom.AngleOf(edge.B)
			assert.InDelta(t, tc.edge, angleA, maxErr+1e-9)
			assert.InDelta(t, tc.edge, angleB, maxErr+1e-9)
			assert.Less(t, angleA, angleB)

			// A looks like the min side, B like the max side
			assert.InDelta(t, wallDistance(angleA, p.Radius), edge.A.Len(), 1e-9)
			assert.InDelta(t, wallDistance(angleB, p.Radius), edge.B.Len(), 1e-9)
		})
	}
}

func TestSweepInsertsRefinedEdges(t *testing.T) {
	p := testParams()
	e := newEngine(t, p, wallWorld())
	pose := fov.Pose{}

	points := e.Sweep(pose)
	assert.Len(t, points, p.RayCount()+1+4, "two points per silhouette edge")

	left := e.FindEdge(geom.Zero, e.Cast(geom.Zero, -21), e.Cast(geom.Zero, -20))
	right := e.FindEdge(geom.Zero, e.Cast(geom.Zero, 17), e.Cast(geom.Zero, 18))
	for _, pt := range append(left.Points(), right.Points()...) {
		assert.Contains(t, points, pt)
	}

	// angular order is preserved
	for i := 1; i < len(points); i++ {
		assert.LessOrEqual(t, geom.AngleOf(points[i-1]), geom.AngleOf(points[i]), "index %d", i)
	}
}

func TestSweepDistanceJumpIsAnEdge(t *testing.T) {
	w := obstacles.NewWorld()
	// near wall on the left half, far wall everywhere
	w.AddSegment(geom.V(-10, 3), geom.V(0.3, 3))
	w.AddSegment(geom.V(-10, 8), geom.V(10, 8))

	p := testParams()
	p.HalfAngle = 30
	e := newEngine(t, p, w)

	points := e.Sweep(fov.Pose{})
	assert.Greater(t, len(points), p.RayCount()+1)

	for _, pt := range points {
		assert.Less(t, pt.Len(), p.Radius, "every ray hits a wall")
	}
}

func TestSweepShapeStableAcrossResolutions(t *testing.T) {
	lastRays := 0
	for _, res := range []float64{0.5, 1, 2, 4} {
		p := testParams()
		p.MeshResolution = res
		e := newEngine(t, p, wallWorld())

		assert.GreaterOrEqual(t, p.RayCount(), lastRays)
		lastRays = p.RayCount()

		for _, pt := range e.Sweep(fov.Pose{}) {
			expected := wallDistance(geom.AngleOf(pt), p.Radius)
			assert.InDelta(t, expected, pt.Len(), p.EdgeDistanceThreshold, "resolution %v", res)
		}
	}
}

func TestSweepIsDeterministic(t *testing.T) {
	e := newEngine(t, testParams(), wallWorld())
	pose := fov.Pose{Position: geom.V(0.5, -1), Facing: 12}

	first := e.BuildPolygon(pose)
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, e.BuildPolygon(pose))
	}
}

// thresholdAt returns a query that hits only at global angles above edge
func thresholdAt(edge float64) fov.RaycastFunc {
	return func(origin, dir geom.Vec3, maxDistance float64, _ fov.LayerMask) (fov.Hit, bool) {
		if geom.AngleOf(dir) <= edge {
			return fov.Hit{}, false
		}
		return fov.Hit{Point: origin.Add(dir.Scale(2)), Distance: 2}, true
	}
}

func TestFindEdgeSinglePoint(t *testing.T) {
	p := testParams()
	p.EdgeResolveIterations = 4

	t.Run("edge hugs max side", func(t *testing.T) {
		e := newEngine(t, p, thresholdAt(9.99))
		edge := e.FindEdge(geom.Zero, e.Cast(geom.Zero, 0), e.Cast(geom.Zero, 10))
		assert.True(t, edge.HasA)
		assert.False(t, edge.HasB)
		assert.Len(t, edge.Points(), 1)
		assert.InDelta(t, 9.375, geom.AngleOf(edge.A), 1e-9)
	})

	t.Run("edge hugs min side", func(t *testing.T) {
		e := newEngine(t, p, thresholdAt(0.01))
		edge := e.FindEdge(geom.Zero, e.Cast(geom.Zero, 0), e.Cast(geom.Zero, 10))
		assert.False(t, edge.HasA)
		assert.True(t, edge.HasB)
		assert.Equal(t, []geom.Vec3{edge.B}, edge.Points())
	})

	t.Run("sweep keeps a lone edge point", func(t *testing.T) {
		p := p
		p.HalfAngle = 10
		e := newEngine(t, p, thresholdAt(9.99))
		// rays at -10..10 step 1; the edge lies between 9 and 10
		points := e.Sweep(fov.Pose{})
		assert.Len(t, points, p.RayCount()+2)
	})

	t.Run("no iterations adds nothing", func(t *testing.T) {
		p := p
		p.EdgeResolveIterations = 0
		e := newEngine(t, p, thresholdAt(0.5))
		assert.Empty(t, e.FindEdge(geom.Zero, e.Cast(geom.Zero, 0), e.Cast(geom.Zero, 1)).Points())
		assert.Len(t, e.Sweep(fov.Pose{}), p.RayCount()+1)
	})
}
