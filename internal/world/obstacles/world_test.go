package obstacles

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chosenoffset.com/sightcone/internal/core/fov"
	"chosenoffset.com/sightcone/internal/core/geom"
	"chosenoffset.com/sightcone/internal/world/grid"
)

func TestRaycastSegment(t *testing.T) {
	w := NewWorld()
	w.AddSegment(geom.V(5, -10), geom.V(5, 10))

	hit, ok := w.Raycast(geom.Zero, geom.V(1, 0), 10, fov.AllLayers)
	require.True(t, ok)
	assert.InDelta(t, 5.0, hit.Distance, 1e-9)
	assert.True(t, hit.Point.ApproxEqual(geom.V(5, 0), 1e-9))

	// too short
	_, ok = w.Raycast(geom.Zero, geom.V(1, 0), 4.9, fov.AllLayers)
	assert.False(t, ok)

	// pointing away
	_, ok = w.Raycast(geom.Zero, geom.V(-1, 0), 10, fov.AllLayers)
	assert.False(t, ok)

	// parallel
	_, ok = w.Raycast(geom.Zero, geom.V(0, 1), 100, fov.AllLayers)
	assert.False(t, ok)

	// unnormalized directions are accepted
	hit, ok = w.Raycast(geom.Zero, geom.V(3, 3), 20, fov.AllLayers)
	require.True(t, ok)
	assert.InDelta(t, 5*1.4142135623730951, hit.Distance, 1e-9)
}

func TestRaycastPicksNearest(t *testing.T) {
	w := NewWorld()
	w.AddSegment(geom.V(8, -1), geom.V(8, 1))
	w.AddSegment(geom.V(3, -1), geom.V(3, 1))
	w.AddCircle(geom.V(6, 0), 1)

	hit, ok := w.Raycast(geom.Zero, geom.V(1, 0), 10, fov.AllLayers)
	require.True(t, ok)
	assert.InDelta(t, 3.0, hit.Distance, 1e-9)
}

func TestRaycastCircle(t *testing.T) {
	w := NewWorld()
	w.AddCircle(geom.V(0, 6), 2)

	hit, ok := w.Raycast(geom.Zero, geom.V(0, 1), 10, fov.AllLayers)
	require.True(t, ok)
	assert.InDelta(t, 4.0, hit.Distance, 1e-9)

	// grazing miss
	_, ok = w.Raycast(geom.V(2.01, 0), geom.V(0, 1), 10, fov.AllLayers)
	assert.False(t, ok)

	// starting inside is not a hit
	_, ok = w.Raycast(geom.V(0, 6), geom.V(0, 1), 10, fov.AllLayers)
	assert.False(t, ok)
}

func TestRaycastLayerMask(t *testing.T) {
	w := NewWorld()
	w.AddSegmentOn(geom.V(5, -1), geom.V(5, 1), 1<<3)

	_, ok := w.Raycast(geom.Zero, geom.V(1, 0), 10, DefaultLayer)
	assert.False(t, ok)

	_, ok = w.Raycast(geom.Zero, geom.V(1, 0), 10, 1<<3)
	assert.True(t, ok)
}

func TestAddBoxAndGrid(t *testing.T) {
	w := NewWorld()
	w.AddBox(geom.V(-1, -1), geom.V(1, 1))
	assert.Len(t, w.Segments(), 4)

	hit, ok := w.Raycast(geom.V(-5, 0), geom.V(1, 0), 10, fov.AllLayers)
	require.True(t, ok)
	assert.InDelta(t, 4.0, hit.Distance, 1e-9)

	g, err := grid.Parse([]string{"##"}, 1)
	require.NoError(t, err)
	assert.Equal(t, 4, w.AddGrid(g))
	assert.Len(t, w.Segments(), 8)
}

func TestQueryRange(t *testing.T) {
	w := NewWorld()
	near := w.AddTarget("near", geom.V(3, 4), "target")
	edge := w.AddTarget("edge", geom.V(10, 0), "target")
	w.AddTarget("far", geom.V(10.5, 0), "target")
	w.AddTarget("crate", geom.V(1, 0), "prop")

	got := w.QueryRange(geom.Zero, 10, "target")
	require.Len(t, got, 2)
	assert.Equal(t, near.ID, got[0].ID)
	assert.Equal(t, edge.ID, got[1].ID)

	assert.Len(t, w.QueryRange(geom.Zero, 10, ""), 3)
	assert.NotEqual(t, near.ID, edge.ID)
}

func TestMoveTarget(t *testing.T) {
	w := NewWorld()
	tgt := w.AddTarget("t", geom.V(20, 0), "target")
	assert.Empty(t, w.QueryRange(geom.Zero, 10, "target"))

	assert.True(t, w.MoveTarget(tgt.ID, geom.V(2, 0)))
	assert.Len(t, w.QueryRange(geom.Zero, 10, "target"), 1)

	var unknown fov.Target
	assert.False(t, w.MoveTarget(unknown.ID, geom.Zero))
}
