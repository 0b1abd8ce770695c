// Package game hosts the interactive demo: one agent walking through an
// obstacle scene with its field of view drawn live.
package game

import (
	"image/color"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"chosenoffset.com/sightcone/internal/core/fov"
	"chosenoffset.com/sightcone/internal/core/geom"
	"chosenoffset.com/sightcone/internal/logger"
	"chosenoffset.com/sightcone/internal/render"
	"chosenoffset.com/sightcone/internal/render/overlay"
	"chosenoffset.com/sightcone/internal/render/viewmesh"
	"chosenoffset.com/sightcone/internal/simulation"
	"chosenoffset.com/sightcone/internal/world/obstacles"
)

const messageDuration = 3.0

var (
	meshColor      = color.NRGBA{255, 230, 120, 90}
	targetColor    = color.NRGBA{120, 160, 255, 255}
	spottedColor   = color.NRGBA{255, 70, 70, 255}
	targetRadius   = 0.3
	minAimDistance = 1e-3
)

// Game holds all demo state and logic.
type Game struct {
	ScreenWidth  int
	ScreenHeight int
	TPS          int

	World     *obstacles.World
	View      *fov.View
	Agent     *Agent
	Camera    render.Camera
	Mesh      *viewmesh.Mesh
	Highlight *viewmesh.Highlighter
	Overlay   *overlay.Overlay
	WhiteImg  render.Image
	Renderer  render.Renderer
	InputMgr  render.InputManager

	// UI state
	Messages []Message

	seen map[uuid.UUID]bool
	log  *logrus.Entry
}

// NewGame builds the scene, the agent and its view from cfg. The view's
// periodic scan is started; call Close when done.
func NewGame(cfg *simulation.Config, r render.Renderer, input render.InputManager, debug bool) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	world, err := cfg.BuildWorld()
	if err != nil {
		return nil, err
	}

	start := cfg.StartPose()
	agent := &Agent{Position: start.Position, Facing: start.Facing, Speed: cfg.Movement.Speed}

	g := &Game{
		ScreenWidth:  cfg.Window.Width,
		ScreenHeight: cfg.Window.Height,
		TPS:          cfg.Window.TicksPerSecond,
		World:        world,
		Agent:        agent,
		Camera: render.Camera{
			Center:        agent.Position,
			PixelsPerUnit: cfg.Window.PixelsPerUnit,
			ScreenWidth:   cfg.Window.Width,
			ScreenHeight:  cfg.Window.Height,
		},
		Mesh:      viewmesh.New(meshColor),
		Highlight: viewmesh.NewHighlighter(targetColor, spottedColor, targetRadius),
		Overlay:   overlay.New(debug),
		Renderer:  r,
		InputMgr:  input,
		seen:      make(map[uuid.UUID]bool),
		log:       logger.Component("game"),
	}

	g.View, err = fov.NewView(fov.ViewConfig{
		Params:       cfg.Params(),
		Poses:        agent,
		Obstacles:    world,
		Targets:      world,
		ObstacleMask: cfg.ObstacleMask(),
		TargetTag:    cfg.Perception.TargetTag,
		ScanInterval: cfg.Perception.ScanInterval,
		Logger:       logger.Component("fov"),
	})
	if err != nil {
		return nil, err
	}
	g.View.SetScanListener(g.onScan)

	g.WhiteImg = r.NewImage(3, 3)
	if g.WhiteImg != nil {
		g.WhiteImg.Fill(color.White)
	}

	g.View.Start()
	g.View.Rebuild()

	g.log.WithFields(logrus.Fields{
		"walls":   len(world.Segments()),
		"pillars": len(world.Circles()),
		"targets": len(world.Targets()),
	}).Info("scene loaded")

	return g, nil
}

// Update handles demo logic updates.
func (g *Game) Update() error {
	if g.InputMgr.IsKeyJustPressed(render.KeyEscape) {
		g.Close()
		return render.ErrQuit
	}
	if g.InputMgr.IsKeyJustPressed(render.KeyF1) {
		g.Overlay.Toggle()
	}

	dt := 1.0 / float64(g.TPS)

	g.updateMessages(dt)
	g.moveAgent(dt)
	g.aimAgent()
	g.Camera.Center = g.Agent.Position

	g.View.Tick(dt)
	poly := g.View.Rebuild()
	g.Mesh.Update(poly, g.View.Pose(), g.Camera)

	return nil
}

// Layout returns the game's logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.ScreenWidth, g.ScreenHeight
}

// Close stops the view's periodic scan and frees the mesh texture
func (g *Game) Close() {
	if g.View.Running() {
		g.View.Stop()
		g.log.Debug("view stopped")
	}
	if g.WhiteImg != nil {
		g.WhiteImg.Dispose()
		g.WhiteImg = nil
	}
}

func (g *Game) moveAgent(dt float64) {
	var move geom.Vec3
	if g.InputMgr.IsKeyPressed(render.KeyW) || g.InputMgr.IsKeyPressed(render.KeyUp) {
		move.Z++
	}
	if g.InputMgr.IsKeyPressed(render.KeyS) || g.InputMgr.IsKeyPressed(render.KeyDown) {
		move.Z--
	}
	if g.InputMgr.IsKeyPressed(render.KeyD) || g.InputMgr.IsKeyPressed(render.KeyRight) {
		move.X++
	}
	if g.InputMgr.IsKeyPressed(render.KeyA) || g.InputMgr.IsKeyPressed(render.KeyLeft) {
		move.X--
	}
	if move.Len() == 0 {
		return
	}
	g.Agent.Position = g.Agent.Position.Add(move.Normalize().Scale(g.Agent.Speed * dt))
}

// aimAgent turns the agent toward the cursor
func (g *Game) aimAgent() {
	cx, cy := g.InputMgr.GetCursorPosition()
	aim := g.Camera.ScreenToWorld(cx, cy).Sub(g.Agent.Position)
	if aim.Len() < minAimDistance {
		return
	}
	g.Agent.Facing = geom.AngleOf(aim)
}

// onScan receives each visible set from the view
func (g *Game) onScan(set fov.VisibleSet) {
	g.Highlight.OnScan(set)

	next := make(map[uuid.UUID]bool, set.Len())
	for _, t := range set.Targets() {
		next[t.ID] = true
		if !g.seen[t.ID] {
			g.ShowMessage("Spotted " + t.Name)
		}
	}
	g.seen = next
}

func (g *Game) updateMessages(dt float64) {
	var active []Message
	for _, msg := range g.Messages {
		msg.TimeLeft -= dt
		if msg.TimeLeft > 0 {
			active = append(active, msg)
		}
	}
	g.Messages = active
}

// ShowMessage adds a new message to be displayed on screen.
func (g *Game) ShowMessage(text string) {
	g.Messages = append(g.Messages, Message{
		Text:     text,
		TimeLeft: messageDuration,
		MaxTime:  messageDuration,
	})
	g.log.WithField("text", text).Info("message")
}
