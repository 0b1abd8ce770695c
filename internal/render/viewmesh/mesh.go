// Package viewmesh is the render sink for the field of view: it turns the
// local-space polygon into screen triangles and tracks which targets to
// highlight.
package viewmesh

import (
	"image/color"
	"math"

	"chosenoffset.com/sightcone/internal/core/fov"
	"chosenoffset.com/sightcone/internal/render"
)

// Mesh is the screen-space triangle fan for one view. Buffers are reused
// between frames.
type Mesh struct {
	Color    color.NRGBA
	vertices []render.Vertex
	indices  []uint16
}

// New creates an empty mesh drawn in col
func New(col color.NRGBA) *Mesh {
	return &Mesh{Color: col}
}

// Update replaces the mesh with poly, anchored at pose and projected by cam.
// Triangles referencing vertices beyond the uint16 index range are dropped.
func (m *Mesh) Update(poly fov.Polygon, pose fov.Pose, cam render.Camera) {
	world := poly.World(pose)

	count := len(world)
	if count > math.MaxUint16+1 {
		count = math.MaxUint16 + 1
	}

	r := float32(m.Color.R) / 255
	g := float32(m.Color.G) / 255
	b := float32(m.Color.B) / 255
	a := float32(m.Color.A) / 255

	m.vertices = m.vertices[:0]
	for _, p := range world[:count] {
		x, y := cam.WorldToScreen(p)
		m.vertices = append(m.vertices, render.Vertex{
			DstX: x, DstY: y,
			SrcX: 1, SrcY: 1,
			ColorR: r, ColorG: g, ColorB: b, ColorA: a,
		})
	}

	m.indices = m.indices[:0]
	for i := 0; i+2 < len(poly.Triangles); i += 3 {
		i0, i1, i2 := poly.Triangles[i], poly.Triangles[i+1], poly.Triangles[i+2]
		if i0 >= count || i1 >= count || i2 >= count {
			break
		}
		m.indices = append(m.indices, uint16(i0), uint16(i1), uint16(i2))
	}
}

// Vertices returns the current screen vertices
func (m *Mesh) Vertices() []render.Vertex {
	return m.vertices
}

// Indices returns the current triangle indices
func (m *Mesh) Indices() []uint16 {
	return m.indices
}

// Draw renders the mesh onto dst using src (typically a white pixel) as texture
func (m *Mesh) Draw(dst, src render.Image) {
	if len(m.indices) == 0 {
		return
	}
	dst.DrawTriangles(m.vertices, m.indices, src, &render.DrawTrianglesOptions{AntiAlias: true})
}
