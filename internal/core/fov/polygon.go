package fov

import "chosenoffset.com/sightcone/internal/core/geom"

// Polygon is a triangle fan in the agent's local frame. Vertex 0 is the
// origin and every triangle shares it.
type Polygon struct {
	Vertices  []geom.Vec3
	Triangles []int
}

// BuildPolygon converts boundary points, already in angular order, into a
// local-space triangle fan: triangle k is (0, k+1, k+2).
func BuildPolygon(pose Pose, boundary []geom.Vec3) Polygon {
	vertexCount := len(boundary) + 1
	triangleCount := vertexCount - 2
	if triangleCount < 0 {
		triangleCount = 0
	}

	poly := Polygon{
		Vertices:  make([]geom.Vec3, vertexCount),
		Triangles: make([]int, 0, triangleCount*3),
	}

	poly.Vertices[0] = geom.Zero
	for i, p := range boundary {
		poly.Vertices[i+1] = pose.ToLocal(p)
	}
	for k := 0; k < triangleCount; k++ {
		poly.Triangles = append(poly.Triangles, 0, k+1, k+2)
	}

	return poly
}

// TriangleCount returns the number of triangles in the fan
func (p Polygon) TriangleCount() int {
	return len(p.Triangles) / 3
}

// Boundary returns the vertices after the origin
func (p Polygon) Boundary() []geom.Vec3 {
	if len(p.Vertices) == 0 {
		return nil
	}
	return p.Vertices[1:]
}

// World maps the local vertices back into world space for the given pose
func (p Polygon) World(pose Pose) []geom.Vec3 {
	out := make([]geom.Vec3, len(p.Vertices))
	for i, v := range p.Vertices {
		out[i] = geom.ToWorld(pose.Position, pose.Facing, v)
	}
	return out
}

// BuildPolygon sweeps the cone from pose and triangulates the result
func (e *Engine) BuildPolygon(pose Pose) Polygon {
	return BuildPolygon(pose, e.Sweep(pose))
}
