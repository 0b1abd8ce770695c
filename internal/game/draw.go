package game

import (
	"image/color"

	"chosenoffset.com/sightcone/internal/render"
)

var (
	backgroundColor = color.RGBA{18, 20, 28, 255}
	wallColor       = color.RGBA{200, 200, 210, 255}
	agentColor      = color.RGBA{80, 220, 120, 255}
)

const wallWidth = 3

// Draw renders the scene, the view mesh and the overlay.
func (g *Game) Draw(screen render.Image) {
	screen.Fill(backgroundColor)

	if g.WhiteImg != nil {
		g.Mesh.Draw(screen, g.WhiteImg)
	}
	g.drawWalls(screen)
	g.Highlight.Draw(g.Renderer, screen, g.Camera, g.World.Targets())
	g.drawAgent(screen)
	g.Overlay.Draw(g.Renderer, screen, g.Camera, g.View)
	g.drawUI(screen)
}

func (g *Game) drawWalls(screen render.Image) {
	for _, s := range g.World.Segments() {
		x0, y0 := g.Camera.WorldToScreen(s.A)
		x1, y1 := g.Camera.WorldToScreen(s.B)
		g.Renderer.StrokeLine(screen, x0, y0, x1, y1, wallWidth, wallColor)
	}
	for _, c := range g.World.Circles() {
		x, y := g.Camera.WorldToScreen(c.Center)
		g.Renderer.FillCircle(screen, x, y, g.Camera.Scale(c.Radius), wallColor)
	}
}

func (g *Game) drawAgent(screen render.Image) {
	x, y := g.Camera.WorldToScreen(g.Agent.Position)
	g.Renderer.FillCircle(screen, x, y, g.Camera.Scale(0.35), agentColor)

	nose := g.Agent.Position.Add(g.Agent.Pose().Forward().Scale(0.6))
	nx, ny := g.Camera.WorldToScreen(nose)
	g.Renderer.StrokeLine(screen, x, y, nx, ny, 2, agentColor)
}

func (g *Game) drawUI(screen render.Image) {
	// Draw on-screen messages
	y := 50.0
	for _, msg := range g.Messages {
		alpha := uint8(255 * (msg.TimeLeft / msg.MaxTime))
		g.Renderer.DrawText(screen, msg.Text, 20, int(y), color.RGBA{255, 255, 255, alpha}, 1.0)
		y += 20
	}
}
