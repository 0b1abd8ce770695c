package grid

import (
	"math"

	"chosenoffset.com/sightcone/internal/core/geom"
)

const mergeEpsilon = 0.001

// Segments extracts the perimeter of every contiguous sight-blocking region
// and merges adjacent colinear edges into longer walls
func (g *Grid) Segments() []Segment {
	var all []Segment
	for _, region := range g.contiguousRegions() {
		all = append(all, g.perimeterSegments(region)...)
	}
	return mergeColinearSegments(all)
}

// contiguousRegions identifies all connected regions of sight-blocking tiles
func (g *Grid) contiguousRegions() [][]Coord {
	visited := make(map[Coord]bool)
	var regions [][]Coord

	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			coord := Coord{X: x, Y: y}
			if visited[coord] || !g.BlocksSight(x, y) {
				continue
			}
			regions = append(regions, g.floodFill(coord, visited))
		}
	}

	return regions
}

// floodFill does a 4-connected BFS from start
func (g *Grid) floodFill(start Coord, visited map[Coord]bool) []Coord {
	var region []Coord
	queue := []Coord{start}
	visited[start] = true

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		region = append(region, current)

		neighbors := [4]Coord{
			{X: current.X, Y: current.Y - 1},
			{X: current.X + 1, Y: current.Y},
			{X: current.X, Y: current.Y + 1},
			{X: current.X - 1, Y: current.Y},
		}
		for _, n := range neighbors {
			if visited[n] || !g.BlocksSight(n.X, n.Y) {
				continue
			}
			visited[n] = true
			queue = append(queue, n)
		}
	}

	return region
}

// perimeterSegments emits one segment per tile side that borders open space
func (g *Grid) perimeterSegments(region []Coord) []Segment {
	inRegion := make(map[Coord]bool, len(region))
	for _, c := range region {
		inRegion[c] = true
	}

	var segments []Segment
	for _, c := range region {
		left := float64(c.X) * g.TileSize
		right := left + g.TileSize
		top := float64(c.Y) * g.TileSize
		bottom := top + g.TileSize

		edge := func(ax, az, bx, bz float64, kind EdgeType) Segment {
			return Segment{
				A:            g.Origin.Add(geom.V(ax, az)),
				B:            g.Origin.Add(geom.V(bx, bz)),
				EdgeType:     kind,
				TilesCovered: []Coord{c},
			}
		}

		if !inRegion[Coord{X: c.X, Y: c.Y - 1}] {
			segments = append(segments, edge(left, top, right, top, EdgeTop))
		}
		if !inRegion[Coord{X: c.X + 1, Y: c.Y}] {
			segments = append(segments, edge(right, top, right, bottom, EdgeRight))
		}
		if !inRegion[Coord{X: c.X, Y: c.Y + 1}] {
			segments = append(segments, edge(right, bottom, left, bottom, EdgeBottom))
		}
		if !inRegion[Coord{X: c.X - 1, Y: c.Y}] {
			segments = append(segments, edge(left, bottom, left, top, EdgeLeft))
		}
	}

	return segments
}

// mergeColinearSegments repeatedly folds adjacent same-side edges together
func mergeColinearSegments(segments []Segment) []Segment {
	if len(segments) == 0 {
		return segments
	}

	merged := make([]bool, len(segments))
	var result []Segment

	for i := range segments {
		if merged[i] {
			continue
		}
		current := segments[i]
		merged[i] = true

		for extended := true; extended; {
			extended = false
			for j := range segments {
				if merged[j] || !canMergeSegments(current, segments[j]) {
					continue
				}
				current = mergeSegments(current, segments[j])
				merged[j] = true
				extended = true
				break
			}
		}

		result = append(result, current)
	}

	return result
}

// canMergeSegments checks if two segments are on the same line and touch
func canMergeSegments(a, b Segment) bool {
	if a.EdgeType != b.EdgeType {
		return false
	}

	switch a.EdgeType {
	case EdgeTop, EdgeBottom:
		if math.Abs(a.A.Z-b.A.Z) > mergeEpsilon {
			return false
		}
		return touches(a.A.X, a.B.X, b.A.X, b.B.X)
	case EdgeLeft, EdgeRight:
		if math.Abs(a.A.X-b.A.X) > mergeEpsilon {
			return false
		}
		return touches(a.A.Z, a.B.Z, b.A.Z, b.B.Z)
	}
	return false
}

// touches reports whether two 1D intervals share an endpoint
func touches(a0, a1, b0, b1 float64) bool {
	return math.Abs(a1-b0) < mergeEpsilon || math.Abs(a0-b1) < mergeEpsilon ||
		math.Abs(a0-b0) < mergeEpsilon || math.Abs(a1-b1) < mergeEpsilon
}

// mergeSegments spans both segments, keeping the winding of a
func mergeSegments(a, b Segment) Segment {
	result := a
	result.TilesCovered = append(append([]Coord(nil), a.TilesCovered...), b.TilesCovered...)

	switch a.EdgeType {
	case EdgeTop, EdgeBottom:
		lo := min(a.A.X, a.B.X, b.A.X, b.B.X)
		hi := max(a.A.X, a.B.X, b.A.X, b.B.X)
		if a.A.X <= a.B.X {
			result.A.X, result.B.X = lo, hi
		} else {
			result.A.X, result.B.X = hi, lo
		}
	case EdgeLeft, EdgeRight:
		lo := min(a.A.Z, a.B.Z, b.A.Z, b.B.Z)
		hi := max(a.A.Z, a.B.Z, b.A.Z, b.B.Z)
		if a.A.Z <= a.B.Z {
			result.A.Z, result.B.Z = lo, hi
		} else {
			result.A.Z, result.B.Z = hi, lo
		}
	}

	return result
}
