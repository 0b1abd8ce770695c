// Package obstacles is an in-memory scene that answers the ray and range
// queries the field of view depends on.
package obstacles

import (
	"github.com/google/uuid"

	"chosenoffset.com/sightcone/internal/core/fov"
	"chosenoffset.com/sightcone/internal/core/geom"
	"chosenoffset.com/sightcone/internal/world/grid"
)

// DefaultLayer is the layer obstacles land on unless told otherwise
const DefaultLayer fov.LayerMask = 1

// Segment is an opaque wall between two points on the ground plane
type Segment struct {
	A, B  geom.Vec3
	Layer fov.LayerMask
}

// Circle is an opaque round pillar
type Circle struct {
	Center geom.Vec3
	Radius float64
	Layer  fov.LayerMask
}

// World holds static obstacles and targets. It is not safe for concurrent
// mutation; the field of view only reads it.
type World struct {
	segments []Segment
	circles  []Circle
	targets  []fov.Target
}

// NewWorld creates an empty scene
func NewWorld() *World {
	return &World{}
}

// AddSegment adds a wall on DefaultLayer
func (w *World) AddSegment(a, b geom.Vec3) {
	w.segments = append(w.segments, Segment{A: a, B: b, Layer: DefaultLayer})
}

// AddSegmentOn adds a wall on the given layers
func (w *World) AddSegmentOn(a, b geom.Vec3, layer fov.LayerMask) {
	w.segments = append(w.segments, Segment{A: a, B: b, Layer: layer})
}

// AddCircle adds a round obstacle on DefaultLayer
func (w *World) AddCircle(center geom.Vec3, radius float64) {
	w.circles = append(w.circles, Circle{Center: center, Radius: radius, Layer: DefaultLayer})
}

// AddBox adds the four walls of an axis-aligned rectangle
func (w *World) AddBox(min, max geom.Vec3) {
	a := geom.V(min.X, min.Z)
	b := geom.V(max.X, min.Z)
	c := geom.V(max.X, max.Z)
	d := geom.V(min.X, max.Z)
	w.AddSegment(a, b)
	w.AddSegment(b, c)
	w.AddSegment(c, d)
	w.AddSegment(d, a)
}

// AddGrid adds every merged wall edge of a tile grid and returns how many were added
func (w *World) AddGrid(g *grid.Grid) int {
	segs := g.Segments()
	for _, s := range segs {
		w.AddSegment(s.A, s.B)
	}
	return len(segs)
}

// AddTarget registers a target and returns it with a fresh ID
func (w *World) AddTarget(name string, pos geom.Vec3, tag string) fov.Target {
	t := fov.Target{ID: uuid.New(), Name: name, Position: pos, Tag: tag}
	w.targets = append(w.targets, t)
	return t
}

// MoveTarget updates a target's position. It reports false for unknown IDs.
func (w *World) MoveTarget(id uuid.UUID, pos geom.Vec3) bool {
	for i := range w.targets {
		if w.targets[i].ID == id {
			w.targets[i].Position = pos
			return true
		}
	}
	return false
}

// Segments returns the walls
func (w *World) Segments() []Segment {
	return w.segments
}

// Circles returns the round obstacles
func (w *World) Circles() []Circle {
	return w.circles
}

// Targets returns every target in insertion order
func (w *World) Targets() []fov.Target {
	return w.targets
}

// Raycast returns the nearest obstacle on mask hit within maxDistance.
// Obstacles that contain the origin are ignored.
func (w *World) Raycast(origin, dir geom.Vec3, maxDistance float64, mask fov.LayerMask) (fov.Hit, bool) {
	dir = dir.Normalize()
	if dir == geom.Zero {
		return fov.Hit{}, false
	}

	closest := maxDistance
	found := false

	for _, seg := range w.segments {
		if seg.Layer&mask == 0 {
			continue
		}
		if dist, ok := raySegmentIntersection(origin, dir, seg.A, seg.B); ok && dist <= closest {
			closest = dist
			found = true
		}
	}
	for _, c := range w.circles {
		if c.Layer&mask == 0 {
			continue
		}
		if dist, ok := rayCircleIntersection(origin, dir, c.Center, c.Radius); ok && dist <= closest {
			closest = dist
			found = true
		}
	}

	if !found {
		return fov.Hit{}, false
	}
	return fov.Hit{Point: origin.Add(dir.Scale(closest)), Distance: closest}, true
}

// QueryRange returns targets carrying tag within radius of center, inclusive.
// An empty tag matches every target.
func (w *World) QueryRange(center geom.Vec3, radius float64, tag string) []fov.Target {
	var out []fov.Target
	for _, t := range w.targets {
		if tag != "" && t.Tag != tag {
			continue
		}
		if geom.Distance(center, t.Position) <= radius {
			out = append(out, t)
		}
	}
	return out
}
