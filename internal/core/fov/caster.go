package fov

import (
	"errors"
	"fmt"

	"chosenoffset.com/sightcone/internal/core/geom"
)

// ErrNoObstacleQuery is returned when an Engine is built without a ray query
var ErrNoObstacleQuery = errors.New("fov: obstacle query is required")

// Engine runs the stateless parts of the visibility pipeline: view casts,
// the cone sweep with edge refinement, and target filtering.
type Engine struct {
	params Params
	query  ObstacleQuery
	mask   LayerMask
}

// NewEngine validates params and binds them to an obstacle query
func NewEngine(params Params, query ObstacleQuery, mask LayerMask) (*Engine, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	if query == nil {
		return nil, ErrNoObstacleQuery
	}
	return &Engine{params: params, query: query, mask: mask}, nil
}

// MustEngine is NewEngine for fixed, known-good configurations
func MustEngine(params Params, query ObstacleQuery, mask LayerMask) *Engine {
	e, err := NewEngine(params, query, mask)
	if err != nil {
		panic(fmt.Sprintf("fov.MustEngine: %v", err))
	}
	return e
}

// Params returns the engine's configuration
func (e *Engine) Params() Params {
	return e.params
}

// Cast fires one ray from origin at a global angle in degrees.
// A miss reports the ray's end point at full radius.
func (e *Engine) Cast(origin geom.Vec3, globalAngle float64) ViewCast {
	dir := geom.DirFromAngle(globalAngle)

	if hit, ok := e.query.Raycast(origin, dir, e.params.Radius, e.mask); ok && hit.Distance <= e.params.Radius {
		return ViewCast{Hit: true, Point: hit.Point, Distance: hit.Distance, Angle: globalAngle}
	}

	return ViewCast{
		Hit:      false,
		Point:    origin.Add(dir.Scale(e.params.Radius)),
		Distance: e.params.Radius,
		Angle:    globalAngle,
	}
}
