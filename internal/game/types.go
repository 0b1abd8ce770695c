package game

import (
	"chosenoffset.com/sightcone/internal/core/fov"
	"chosenoffset.com/sightcone/internal/core/geom"
)

// Agent is the controllable viewer. It is the pose source for its view.
type Agent struct {
	Position geom.Vec3
	Facing   float64 // Degrees, 0 is +Z
	Speed    float64 // World units per second
}

// Pose implements fov.PoseSource
func (a *Agent) Pose() fov.Pose {
	return fov.Pose{Position: a.Position, Facing: a.Facing}
}

// Message represents an on-screen message that fades over time.
type Message struct {
	Text     string
	TimeLeft float64 // Seconds remaining
	MaxTime  float64 // Initial duration
}
