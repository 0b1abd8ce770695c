package viewmesh

import (
	"image/color"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chosenoffset.com/sightcone/internal/core/fov"
	"chosenoffset.com/sightcone/internal/core/geom"
	"chosenoffset.com/sightcone/internal/render"
)

var testCam = render.Camera{PixelsPerUnit: 10, ScreenWidth: 200, ScreenHeight: 100}

func TestMeshUpdate(t *testing.T) {
	pose := fov.Pose{Position: geom.V(1, 0), Facing: 0}
	poly := fov.BuildPolygon(pose, []geom.Vec3{geom.V(0, 2), geom.V(1, 2), geom.V(2, 2)})

	m := New(color.NRGBA{255, 0, 0, 128})
	m.Update(poly, pose, testCam)

	verts := m.Vertices()
	require.Len(t, verts, 4)
	assert.Equal(t, []uint16{0, 1, 2, 0, 2, 3}, m.Indices())

	// origin vertex sits at the agent
	assert.InDelta(t, 110, verts[0].DstX, 1e-4)
	assert.InDelta(t, 50, verts[0].DstY, 1e-4)
	// world +Z is screen up
	assert.InDelta(t, 100, verts[1].DstX, 1e-4)
	assert.InDelta(t, 30, verts[1].DstY, 1e-4)

	assert.InDelta(t, 1, verts[2].ColorR, 1e-6)
	assert.InDelta(t, 128.0/255, verts[2].ColorA, 1e-6)
}

func TestMeshReusesBuffers(t *testing.T) {
	pose := fov.Pose{}
	m := New(color.NRGBA{A: 255})

	m.Update(fov.BuildPolygon(pose, []geom.Vec3{geom.V(0, 1), geom.V(1, 1), geom.V(2, 1)}), pose, testCam)
	assert.Len(t, m.Indices(), 6)

	m.Update(fov.BuildPolygon(pose, []geom.Vec3{geom.V(0, 1)}), pose, testCam)
	assert.Len(t, m.Vertices(), 2)
	assert.Empty(t, m.Indices())
}

func TestHighlighter(t *testing.T) {
	normal := color.NRGBA{100, 100, 100, 255}
	seen := color.NRGBA{255, 0, 0, 255}
	h := NewHighlighter(normal, seen, 0.3)

	a := fov.Target{ID: uuid.New(), Name: "a"}
	b := fov.Target{ID: uuid.New(), Name: "b"}

	assert.Equal(t, normal, h.ColorFor(a))

	h.OnScan(fov.NewVisibleSet([]fov.Target{a}))
	assert.Equal(t, seen, h.ColorFor(a))
	assert.Equal(t, normal, h.ColorFor(b))

	h.OnScan(fov.NewVisibleSet(nil))
	assert.Equal(t, normal, h.ColorFor(a))
}

func TestCameraRoundTrip(t *testing.T) {
	cam := render.Camera{Center: geom.V(3, -2), PixelsPerUnit: 16, ScreenWidth: 640, ScreenHeight: 480}
	p := cam.ScreenToWorld(400, 100)
	x, y := cam.WorldToScreen(p)
	assert.InDelta(t, 400, x, 1e-3)
	assert.InDelta(t, 100, y, 1e-3)
}
