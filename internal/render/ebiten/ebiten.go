// Package ebiten is the ebiten backend for the render interfaces.
package ebiten

import (
	"errors"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"chosenoffset.com/sightcone/internal/render"
)

// debug font cell size in pixels
const (
	glyphWidth  = 6
	glyphHeight = 16
)

// Renderer draws vector shapes and debug text onto ebiten images
type Renderer struct{}

// NewRenderer returns the ebiten renderer
func NewRenderer() render.Renderer {
	return Renderer{}
}

func target(dst render.Image) *ebiten.Image {
	return dst.(*Image).img
}

// NewImage allocates an offscreen image
func (Renderer) NewImage(width, height int) render.Image {
	return &Image{img: ebiten.NewImage(width, height)}
}

// FillCircle draws an anti-aliased disc
func (Renderer) FillCircle(dst render.Image, x, y, radius float32, clr color.Color) {
	vector.DrawFilledCircle(target(dst), x, y, radius, clr, true)
}

// StrokeCircle draws an anti-aliased ring
func (Renderer) StrokeCircle(dst render.Image, x, y, radius, width float32, clr color.Color) {
	vector.StrokeCircle(target(dst), x, y, radius, width, clr, true)
}

// StrokeLine draws an anti-aliased segment
func (Renderer) StrokeLine(dst render.Image, x0, y0, x1, y1, width float32, clr color.Color) {
	vector.StrokeLine(target(dst), x0, y0, x1, y1, width, clr, true)
}

// DrawText prints with ebiten's debug font, which has a fixed color and size
func (Renderer) DrawText(dst render.Image, str string, x, y int, _ color.Color, _ float64) {
	ebitenutil.DebugPrintAt(target(dst), str, x, y)
}

// MeasureText returns the debug font's extent for a single line
func (Renderer) MeasureText(str string, scale float64) (width, height int) {
	return int(float64(len(str)*glyphWidth) * scale), int(glyphHeight * scale)
}

// Image wraps an *ebiten.Image
type Image struct {
	img *ebiten.Image
}

// Size returns the image dimensions in pixels
func (i *Image) Size() (width, height int) {
	b := i.img.Bounds()
	return b.Dx(), b.Dy()
}

// Fill paints the whole image
func (i *Image) Fill(clr color.Color) {
	i.img.Fill(clr)
}

// Dispose frees the GPU texture. The image must not be used afterwards.
func (i *Image) Dispose() {
	if i.img != nil {
		i.img.Dispose()
		i.img = nil
	}
}

// DrawTriangles draws indexed triangles textured from src
func (i *Image) DrawTriangles(vertices []render.Vertex, indices []uint16, src render.Image, opts *render.DrawTrianglesOptions) {
	vs := make([]ebiten.Vertex, len(vertices))
	for j, v := range vertices {
		vs[j] = ebiten.Vertex{
			DstX: v.DstX, DstY: v.DstY,
			SrcX: v.SrcX, SrcY: v.SrcY,
			ColorR: v.ColorR, ColorG: v.ColorG, ColorB: v.ColorB, ColorA: v.ColorA,
		}
	}

	var eo *ebiten.DrawTrianglesOptions
	if opts != nil {
		eo = &ebiten.DrawTrianglesOptions{AntiAlias: opts.AntiAlias}
	}
	i.img.DrawTriangles(vs, indices, target(src), eo)
}

var keys = map[render.Key]ebiten.Key{
	render.KeyW:      ebiten.KeyW,
	render.KeyA:      ebiten.KeyA,
	render.KeyS:      ebiten.KeyS,
	render.KeyD:      ebiten.KeyD,
	render.KeyUp:     ebiten.KeyArrowUp,
	render.KeyDown:   ebiten.KeyArrowDown,
	render.KeyLeft:   ebiten.KeyArrowLeft,
	render.KeyRight:  ebiten.KeyArrowRight,
	render.KeyF1:     ebiten.KeyF1,
	render.KeyEscape: ebiten.KeyEscape,
}

// Input reads ebiten's keyboard and cursor state
type Input struct{}

// NewInputManager returns the ebiten input source
func NewInputManager() render.InputManager {
	return Input{}
}

// IsKeyPressed reports whether key is held. Unmapped keys are never pressed.
func (Input) IsKeyPressed(key render.Key) bool {
	k, ok := keys[key]
	return ok && ebiten.IsKeyPressed(k)
}

// IsKeyJustPressed reports whether key went down this tick
func (Input) IsKeyJustPressed(key render.Key) bool {
	k, ok := keys[key]
	return ok && inpututil.IsKeyJustPressed(k)
}

// GetCursorPosition returns the cursor in screen pixels
func (Input) GetCursorPosition() (x, y int) {
	return ebiten.CursorPosition()
}

// Engine owns the ebiten window and loop
type Engine struct{}

// NewEngine returns the ebiten engine
func NewEngine() render.Engine {
	return Engine{}
}

// SetWindowSize sets the window size in pixels
func (Engine) SetWindowSize(width, height int) {
	ebiten.SetWindowSize(width, height)
}

// SetWindowTitle sets the window title
func (Engine) SetWindowTitle(title string) {
	ebiten.SetWindowTitle(title)
}

// SetWindowResizable toggles window resizing
func (Engine) SetWindowResizable(resizable bool) {
	mode := ebiten.WindowResizingModeDisabled
	if resizable {
		mode = ebiten.WindowResizingModeEnabled
	}
	ebiten.SetWindowResizingMode(mode)
}

// SetTPS sets the number of Update calls per second
func (Engine) SetTPS(tps int) {
	ebiten.SetTPS(tps)
}

// RunGame blocks until the game quits or fails
func (Engine) RunGame(game render.Game) error {
	return ebiten.RunGame(adapter{game: game})
}

// adapter exposes a render.Game as an ebiten.Game
type adapter struct {
	game render.Game
}

func (a adapter) Update() error {
	err := a.game.Update()
	if errors.Is(err, render.ErrQuit) {
		return ebiten.Termination
	}
	return err
}

func (a adapter) Draw(screen *ebiten.Image) {
	a.game.Draw(&Image{img: screen})
}

func (a adapter) Layout(outsideWidth, outsideHeight int) (int, int) {
	return a.game.Layout(outsideWidth, outsideHeight)
}
