// Package render is the backend-neutral drawing surface of the demo. Scene
// code draws through these interfaces; internal/render/ebiten implements them.
package render

import (
	"errors"
	"image/color"
)

// Renderer draws shapes and text onto images
type Renderer interface {
	NewImage(width, height int) Image

	FillCircle(dst Image, x, y, radius float32, clr color.Color)
	StrokeCircle(dst Image, x, y, radius, width float32, clr color.Color)
	StrokeLine(dst Image, x0, y0, x1, y1, width float32, clr color.Color)

	DrawText(dst Image, text string, x, y int, clr color.Color, scale float64)
	MeasureText(text string, scale float64) (width, height int)
}

// Image is a surface that can be drawn to or used as a triangle texture
type Image interface {
	Size() (width, height int)
	Fill(clr color.Color)
	DrawTriangles(vertices []Vertex, indices []uint16, src Image, opts *DrawTrianglesOptions)
	Dispose()
}

// DrawTrianglesOptions controls DrawTriangles
type DrawTrianglesOptions struct {
	AntiAlias bool
}

// Vertex is one corner of a textured, vertex-colored triangle. Dst is in
// screen pixels, Src in texture pixels, colors in [0, 1].
type Vertex struct {
	DstX, DstY                     float32
	SrcX, SrcY                     float32
	ColorR, ColorG, ColorB, ColorA float32
}

// InputManager reports keyboard and cursor state for the current tick
type InputManager interface {
	IsKeyPressed(key Key) bool
	IsKeyJustPressed(key Key) bool
	GetCursorPosition() (x, y int)
}

// Key is a backend-neutral keyboard key
type Key int

// Keys the demo reads
const (
	KeyW Key = iota
	KeyA
	KeyS
	KeyD
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyF1 // overlay toggle
	KeyEscape
)

// Game is driven by an Engine: Update once per tick, Draw once per frame
type Game interface {
	Update() error
	Draw(screen Image)
	Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int)
}

// Engine owns the window and the main loop
type Engine interface {
	SetWindowSize(width, height int)
	SetWindowTitle(title string)
	SetWindowResizable(resizable bool)
	SetTPS(tps int)

	// RunGame blocks until the game returns ErrQuit or fails
	RunGame(game Game) error
}

// ErrQuit is returned from Game.Update to end the loop cleanly.
var ErrQuit = errors.New("render: quit")
