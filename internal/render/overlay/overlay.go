// Package overlay draws debug gizmos for a field of view: the range circle,
// the two cone boundary rays and a line to each visible target.
package overlay

import (
	"fmt"
	"image/color"

	"chosenoffset.com/sightcone/internal/core/fov"
	"chosenoffset.com/sightcone/internal/core/geom"
	"chosenoffset.com/sightcone/internal/render"
)

var (
	rangeColor  = color.NRGBA{255, 255, 255, 160}
	coneColor   = color.NRGBA{255, 255, 255, 220}
	targetColor = color.NRGBA{255, 60, 60, 255}
)

const (
	strokeWidth = 1.5
	margin      = 8
)

// Overlay is toggled by the host; it draws nothing while disabled
type Overlay struct {
	Enabled bool
}

// New returns an overlay in the given state
func New(enabled bool) *Overlay {
	return &Overlay{Enabled: enabled}
}

// Toggle flips the overlay on or off
func (o *Overlay) Toggle() {
	o.Enabled = !o.Enabled
}

// ConeEdges returns the world endpoints of the two boundary rays
func ConeEdges(v *fov.View) (left, right geom.Vec3) {
	origin := v.Pose().Position
	left = origin.Add(v.DirFromAngle(-v.HalfAngle(), false).Scale(v.Radius()))
	right = origin.Add(v.DirFromAngle(v.HalfAngle(), false).Scale(v.Radius()))
	return left, right
}

// Draw renders the gizmos for v
func (o *Overlay) Draw(r render.Renderer, dst render.Image, cam render.Camera, v *fov.View) {
	if !o.Enabled {
		return
	}

	origin := v.Pose().Position
	ox, oy := cam.WorldToScreen(origin)
	r.StrokeCircle(dst, ox, oy, cam.Scale(v.Radius()), strokeWidth, rangeColor)

	left, right := ConeEdges(v)
	for _, p := range []geom.Vec3{left, right} {
		x, y := cam.WorldToScreen(p)
		r.StrokeLine(dst, ox, oy, x, y, strokeWidth, coneColor)
	}

	visible := v.VisibleTargets()
	for _, t := range visible.Targets() {
		x, y := cam.WorldToScreen(t.Position)
		r.StrokeLine(dst, ox, oy, x, y, strokeWidth, targetColor)
	}

	status := fmt.Sprintf("facing %.1f  view %.0f  visible %d  triangles %d",
		v.Pose().Facing, v.ViewAngle(), visible.Len(), v.Polygon().TriangleCount())
	_, textHeight := r.MeasureText(status, 1)
	_, screenHeight := dst.Size()
	r.DrawText(dst, status, margin, screenHeight-textHeight-margin, color.White, 1)
}
