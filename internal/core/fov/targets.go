package fov

import (
	"github.com/google/uuid"

	"chosenoffset.com/sightcone/internal/core/geom"
)

// boundaryEpsilon keeps targets sitting exactly on the cone edge or at the
// sight radius inside, despite rounding in the angle and distance math
const boundaryEpsilon = 1e-9

// InCone reports whether a world point lies within the cone angle and radius
func (e *Engine) InCone(pose Pose, point geom.Vec3) bool {
	toTarget := point.Sub(pose.Position)
	dist := toTarget.Len()
	if dist > e.params.Radius+boundaryEpsilon {
		return false
	}
	if dist == 0 {
		return true
	}
	return geom.AngleBetween(pose.Forward(), toTarget) <= e.params.HalfAngle+boundaryEpsilon
}

// CanSee reports whether point is inside the cone and no obstacle sits strictly
// between the agent and the point
func (e *Engine) CanSee(pose Pose, point geom.Vec3) bool {
	if !e.InCone(pose, point) {
		return false
	}

	toTarget := point.Sub(pose.Position)
	dist := toTarget.Len()
	if dist == 0 {
		return true
	}

	hit, blocked := e.query.Raycast(pose.Position, toTarget.Normalize(), dist, e.mask)
	return !blocked || hit.Distance >= dist
}

// FilterTargets keeps the candidates the agent can see, preserving their order
func (e *Engine) FilterTargets(pose Pose, candidates []Target) []Target {
	visible := make([]Target, 0, len(candidates))
	for _, t := range candidates {
		if e.CanSee(pose, t.Position) {
			visible = append(visible, t)
		}
	}
	return visible
}

// VisibleSet is an immutable snapshot of the targets seen by one scan
type VisibleSet struct {
	targets []Target
	index   map[uuid.UUID]struct{}
}

// NewVisibleSet copies targets into a snapshot
func NewVisibleSet(targets []Target) VisibleSet {
	s := VisibleSet{
		targets: make([]Target, len(targets)),
		index:   make(map[uuid.UUID]struct{}, len(targets)),
	}
	copy(s.targets, targets)
	for _, t := range targets {
		s.index[t.ID] = struct{}{}
	}
	return s
}

// Len returns the number of visible targets
func (s VisibleSet) Len() int {
	return len(s.targets)
}

// Targets returns a copy of the visible targets in discovery order
func (s VisibleSet) Targets() []Target {
	out := make([]Target, len(s.targets))
	copy(out, s.targets)
	return out
}

// Contains reports whether the target with id was visible
func (s VisibleSet) Contains(id uuid.UUID) bool {
	_, ok := s.index[id]
	return ok
}

// Equal reports whether both snapshots hold the same targets, ignoring order
func (s VisibleSet) Equal(other VisibleSet) bool {
	if s.Len() != other.Len() {
		return false
	}
	for _, t := range s.targets {
		if !other.Contains(t.ID) {
			return false
		}
	}
	return true
}
