// Package rendertest provides headless implementations of the render
// interfaces that record what was drawn.
package rendertest

import (
	"fmt"
	"image"
	"image/color"
	"io/fs"

	"chosenoffset.com/gallery/internal/render"
)

func init() {
	if render.NewGeoM == nil {
		render.NewGeoM = func() render.GeoM { return &GeoM{} }
	}
}

// GeoM records transformation calls.
type GeoM struct {
	Ops []string
}

func (g *GeoM) Translate(tx, ty float64) { g.Ops = append(g.Ops, "translate") }
func (g *GeoM) Scale(sx, sy float64) { g.Ops = append(g.Ops, "scale") }

// Image is an in-memory surface that counts draw calls.
type Image struct {
	W, H int

	Fills          []color.Color
	DrawImages     int
	Triangles      int
	LastColorScale *render.ColorScale
	Disposed       bool
}

// NewImage creates a fake image of the given size.
func NewImage(w, h int) *Image {
	return &Image{W: w, H: h}
}

func (i *Image) Size() (int, int) { return i.W, i.H }
func (i *Image) Fill(clr color.Color) { i.Fills = append(i.Fills, clr) }
func (i *Image) Dispose() { i.Disposed = true }

func (i *Image) DrawImage(src render.Image, opts *render.DrawImageOptions) {
	i.DrawImages++
	if opts != nil {
		i.LastColorScale = opts.ColorScale
	}
}

func (i *Image) DrawTriangles(vertices []render.Vertex, indices []uint16, img render.Image, opts *render.DrawTrianglesOptions) {
	i.Triangles += len(indices) / 3
}

// Renderer creates fake images and records text output.
type Renderer struct {
	Texts   []string
	Shapes  int
	Created int
}

func (r *Renderer) NewImageFromImage(src image.Image) render.Image {
	r.Created++
	b := src.Bounds()
	return NewImage(b.Dx(), b.Dy())
}

func (r *Renderer) FillRect(dst render.Image, x, y, w, h float32, clr color.Color) { r.Shapes++ }
func (r *Renderer) FillCircle(dst render.Image, x, y, radius float32, clr color.Color) {
	r.Shapes++
}
func (r *Renderer) StrokeLine(dst render.Image, x0, y0, x1, y1, strokeWidth float32, clr color.Color) {
	r.Shapes++
}

func (r *Renderer) DrawText(dst render.Image, text string, x, y int, clr color.Color, scale float64) {
	r.Texts = append(r.Texts, text)
}

func (r *Renderer) MeasureText(text string, scale float64) (int, int) {
	return int(float64(len(text)*7) * scale), int(13 * scale)
}

// Input is a scriptable InputManager. Set fields before each Update.
type Input struct {
	Pressed     map[render.Key]bool
	JustPressed map[render.Key]bool
	CursorX     int
	CursorY     int
	Clicked     bool
	Unfocused   bool
	Captured    bool
}

// NewInput creates an idle input with focus.
func NewInput() *Input {
	return &Input{
		Pressed:     make(map[render.Key]bool),
		JustPressed: make(map[render.Key]bool),
	}
}

// EndFrame clears edge-triggered state, as a real backend would.
func (in *Input) EndFrame() {
	clear(in.JustPressed)
	in.Clicked = false
}

func (in *Input) IsKeyPressed(key render.Key) bool { return in.Pressed[key] }
func (in *Input) IsKeyJustPressed(key render.Key) bool { return in.JustPressed[key] }
func (in *Input) GetCursorPosition() (int, int) { return in.CursorX, in.CursorY }
func (in *Input) IsMouseButtonJustPressed(b render.MouseButton) bool {
	return b == render.MouseButtonLeft && in.Clicked
}
func (in *Input) SetCursorCaptured(captured bool) { in.Captured = captured }
func (in *Input) IsFocused() bool { return !in.Unfocused }

// Loader serves images by path. Unknown paths fail with fs.ErrNotExist.
type Loader struct {
	Images    map[string]*Image
	Requested []string
}

func (l *Loader) LoadImage(path string) (render.Image, error) {
	l.Requested = append(l.Requested, path)
	img, ok := l.Images[path]
	if !ok {
		return nil, fmt.Errorf("open %s: %w", path, fs.ErrNotExist)
	}
	return img, nil
}
