// Package ebiten implements the render interfaces on Ebiten.
package ebiten

import (
	"image"
	"image/color"
	_ "image/png" // decoder for LoadImage

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"chosenoffset.com/gallery/internal/render"
)

func init() {
	render.NewGeoM = func() render.GeoM {
		return &EbitenGeoM{}
	}
}

// EbitenRenderer draws overlay shapes with the vector package and text with
// the 7×13 basic font.
type EbitenRenderer struct {
	face *text.GoXFace
}

// NewRenderer creates a new Ebiten-based renderer.
func NewRenderer() render.Renderer {
	return &EbitenRenderer{face: text.NewGoXFace(basicfont.Face7x13)}
}

// NewImageFromImage uploads a raster as a new image.
func (r *EbitenRenderer) NewImageFromImage(src image.Image) render.Image {
	return &EbitenImage{img: ebiten.NewImageFromImage(src)}
}

func (r *EbitenRenderer) FillRect(dst render.Image, x, y, width, height float32, clr color.Color) {
	vector.DrawFilledRect(unwrap(dst), x, y, width, height, clr, false)
}

func (r *EbitenRenderer) FillCircle(dst render.Image, cx, cy, radius float32, clr color.Color) {
	vector.DrawFilledCircle(unwrap(dst), cx, cy, radius, clr, true)
}

func (r *EbitenRenderer) StrokeLine(dst render.Image, x0, y0, x1, y1 float32, strokeWidth float32, clr color.Color) {
	vector.StrokeLine(unwrap(dst), x0, y0, x1, y1, strokeWidth, clr, true)
}

// DrawText draws text with its top-left corner at (x, y).
func (r *EbitenRenderer) DrawText(dst render.Image, str string, x, y int, clr color.Color, scale float64) {
	if scale <= 0 {
		scale = 1
	}
	op := &text.DrawOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(float64(x), float64(y))
	op.ColorScale.ScaleWithColor(clr)
	op.LineSpacing = r.lineHeight()
	text.Draw(unwrap(dst), str, r.face, op)
}

// MeasureText returns the size DrawText would cover at the given scale.
func (r *EbitenRenderer) MeasureText(str string, scale float64) (width, height int) {
	if scale <= 0 {
		scale = 1
	}
	w, h := text.Measure(str, r.face, r.lineHeight())
	return int(w * scale), int(h * scale)
}

func (r *EbitenRenderer) lineHeight() float64 {
	m := r.face.Metrics()
	return m.HAscent + m.HDescent
}

func unwrap(img render.Image) *ebiten.Image {
	return img.(*EbitenImage).img
}

// EbitenImage adapts *ebiten.Image to render.Image.
type EbitenImage struct {
	img *ebiten.Image
}

func (i *EbitenImage) Size() (width, height int) {
	b := i.img.Bounds()
	return b.Dx(), b.Dy()
}

func (i *EbitenImage) Fill(clr color.Color) {
	i.img.Fill(clr)
}

func (i *EbitenImage) Dispose() {
	if i.img != nil {
		i.img.Dispose()
	}
}

// DrawImage draws src with the given transform, tint and filter.
func (i *EbitenImage) DrawImage(src render.Image, opts *render.DrawImageOptions) {
	if opts == nil {
		i.img.DrawImage(unwrap(src), nil)
		return
	}

	op := &ebiten.DrawImageOptions{Filter: filterToEbiten(opts.Filter)}
	if g, ok := opts.GeoM.(*EbitenGeoM); ok {
		op.GeoM = g.geoM
	}
	if cs := opts.ColorScale; cs != nil {
		op.ColorScale.Scale(cs.R, cs.G, cs.B, cs.A)
	}
	i.img.DrawImage(unwrap(src), op)
}

// DrawTriangles draws a textured, vertex-tinted mesh.
func (i *EbitenImage) DrawTriangles(vertices []render.Vertex, indices []uint16, src render.Image, opts *render.DrawTrianglesOptions) {
	vs := make([]ebiten.Vertex, len(vertices))
	for j, v := range vertices {
		vs[j] = ebiten.Vertex{
			DstX:   v.DstX,
			DstY:   v.DstY,
			SrcX:   v.SrcX,
			SrcY:   v.SrcY,
			ColorR: v.ColorR,
			ColorG: v.ColorG,
			ColorB: v.ColorB,
			ColorA: v.ColorA,
		}
	}

	var op *ebiten.DrawTrianglesOptions
	if opts != nil {
		op = &ebiten.DrawTrianglesOptions{Filter: filterToEbiten(opts.Filter)}
		if opts.Address == render.AddressRepeat {
			op.Address = ebiten.AddressRepeat
		}
	}
	i.img.DrawTriangles(vs, indices, unwrap(src), op)
}

func filterToEbiten(f render.Filter) ebiten.Filter {
	if f == render.FilterLinear {
		return ebiten.FilterLinear
	}
	return ebiten.FilterNearest
}

// EbitenGeoM adapts ebiten.GeoM to render.GeoM.
type EbitenGeoM struct {
	geoM ebiten.GeoM
}

func (g *EbitenGeoM) Translate(tx, ty float64) {
	g.geoM.Translate(tx, ty)
}

func (g *EbitenGeoM) Scale(sx, sy float64) {
	g.geoM.Scale(sx, sy)
}

// EbitenResourceLoader implements the ResourceLoader interface using Ebiten.
type EbitenResourceLoader struct{}

// NewResourceLoader creates a new Ebiten-based resource loader.
func NewResourceLoader() render.ResourceLoader {
	return &EbitenResourceLoader{}
}

// LoadImage decodes an image file and uploads it. A missing file yields an
// error matching fs.ErrNotExist.
func (l *EbitenResourceLoader) LoadImage(path string) (render.Image, error) {
	img, _, err := ebitenutil.NewImageFromFile(path)
	if err != nil {
		return nil, err
	}
	return &EbitenImage{img: img}, nil
}

// EbitenInputManager implements the InputManager interface using Ebiten.
type EbitenInputManager struct{}

// NewInputManager creates a new Ebiten-based input manager.
func NewInputManager() render.InputManager {
	return &EbitenInputManager{}
}

func (m *EbitenInputManager) IsKeyPressed(key render.Key) bool {
	return ebiten.IsKeyPressed(keyToEbitenKey(key))
}

func (m *EbitenInputManager) IsKeyJustPressed(key render.Key) bool {
	return inpututil.IsKeyJustPressed(keyToEbitenKey(key))
}

// GetCursorPosition returns the cursor position. While captured it keeps
// accumulating relative movement past the window edges.
func (m *EbitenInputManager) GetCursorPosition() (x, y int) {
	return ebiten.CursorPosition()
}

func (m *EbitenInputManager) IsMouseButtonJustPressed(button render.MouseButton) bool {
	if button != render.MouseButtonLeft {
		return false
	}
	return inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
}

// SetCursorCaptured switches between captured and visible cursor modes.
func (m *EbitenInputManager) SetCursorCaptured(captured bool) {
	if captured {
		ebiten.SetCursorMode(ebiten.CursorModeCaptured)
	} else {
		ebiten.SetCursorMode(ebiten.CursorModeVisible)
	}
}

func (m *EbitenInputManager) IsFocused() bool {
	return ebiten.IsFocused()
}

func keyToEbitenKey(key render.Key) ebiten.Key {
	switch key {
	case render.KeyW:
		return ebiten.KeyW
	case render.KeyA:
		return ebiten.KeyA
	case render.KeyS:
		return ebiten.KeyS
	case render.KeyD:
		return ebiten.KeyD
	default:
		return ebiten.KeyEscape
	}
}

// EbitenEngine implements the Engine interface using Ebiten.
type EbitenEngine struct{}

// NewEngine creates a new Ebiten-based game engine.
func NewEngine() render.Engine {
	return &EbitenEngine{}
}

func (e *EbitenEngine) SetWindowSize(width, height int) {
	ebiten.SetWindowSize(width, height)
}

func (e *EbitenEngine) SetWindowTitle(title string) {
	ebiten.SetWindowTitle(title)
}

func (e *EbitenEngine) SetWindowResizable(resizable bool) {
	mode := ebiten.WindowResizingModeDisabled
	if resizable {
		mode = ebiten.WindowResizingModeEnabled
	}
	ebiten.SetWindowResizingMode(mode)
}

// RunGame runs the game loop with the provided game.
func (e *EbitenEngine) RunGame(game render.Game) error {
	return ebiten.RunGame(&gameAdapter{game: game})
}

// gameAdapter adapts a render.Game to ebiten.Game.
type gameAdapter struct {
	game render.Game
}

func (a *gameAdapter) Update() error {
	return a.game.Update()
}

func (a *gameAdapter) Draw(screen *ebiten.Image) {
	a.game.Draw(&EbitenImage{img: screen})
}

func (a *gameAdapter) Layout(outsideWidth, outsideHeight int) (int, int) {
	return a.game.Layout(outsideWidth, outsideHeight)
}
