package viewmesh

import (
	"image/color"

	"chosenoffset.com/sightcone/internal/core/fov"
	"chosenoffset.com/sightcone/internal/render"
)

// Highlighter swaps target colors depending on the latest scan
type Highlighter struct {
	Normal  color.NRGBA
	Visible color.NRGBA
	Radius  float64 // World units

	current fov.VisibleSet
}

// NewHighlighter creates a highlighter with the given colors
func NewHighlighter(normal, visible color.NRGBA, radius float64) *Highlighter {
	return &Highlighter{Normal: normal, Visible: visible, Radius: radius}
}

// OnScan receives each new visible set; register it with View.SetScanListener
func (h *Highlighter) OnScan(set fov.VisibleSet) {
	h.current = set
}

// ColorFor returns the color a target should be drawn in
func (h *Highlighter) ColorFor(t fov.Target) color.NRGBA {
	if h.current.Contains(t.ID) {
		return h.Visible
	}
	return h.Normal
}

// Draw paints every target, highlighting the visible ones
func (h *Highlighter) Draw(r render.Renderer, dst render.Image, cam render.Camera, targets []fov.Target) {
	radius := cam.Scale(h.Radius)
	for _, t := range targets {
		x, y := cam.WorldToScreen(t.Position)
		r.FillCircle(dst, x, y, radius, h.ColorFor(t))
	}
}
