// Package render defines the drawing, input and loop interfaces the game
// is written against. internal/render/ebiten implements them on Ebiten and
// internal/render/rendertest fakes them for tests.
package render

import (
	"image"
	"image/color"
)

// Renderer creates images and draws 2D overlay primitives.
type Renderer interface {
	NewImageFromImage(src image.Image) Image

	// Shapes, in screen pixels
	FillRect(dst Image, x, y, width, height float32, clr color.Color)
	FillCircle(dst Image, cx, cy, radius float32, clr color.Color)
	StrokeLine(dst Image, x0, y0, x1, y1 float32, strokeWidth float32, clr color.Color)

	// Text is drawn with a bitmap face enlarged by scale; (x, y) is the top-left.
	DrawText(dst Image, text string, x, y int, clr color.Color, scale float64)
	MeasureText(text string, scale float64) (width, height int)
}

// Image is a GPU surface that can be drawn to or sampled from.
type Image interface {
	Size() (width, height int)
	Fill(clr color.Color)
	DrawImage(src Image, opts *DrawImageOptions)
	DrawTriangles(vertices []Vertex, indices []uint16, src Image, opts *DrawTrianglesOptions)
	Dispose()
}

// ResourceLoader loads images from disk.
type ResourceLoader interface {
	LoadImage(path string) (Image, error)
}

// ColorScale multiplies the color of drawn pixels.
type ColorScale struct {
	R, G, B, A float32
}

// Filter selects texture sampling.
type Filter int

const (
	FilterNearest Filter = iota
	FilterLinear
)

// DrawImageOptions positions and tints a sprite.
type DrawImageOptions struct {
	GeoM       GeoM
	ColorScale *ColorScale
	Filter     Filter
}

// GeoM is an affine transform applied to a drawn image.
type GeoM interface {
	Translate(tx, ty float64)
	Scale(sx, sy float64)
}

// NewGeoM returns an identity transform. The backend sets it in init.
var NewGeoM func() GeoM

// Address selects how source coordinates outside the texture are sampled.
type Address int

const (
	AddressUnsafe Address = iota
	AddressRepeat // tile the texture
)

// DrawTrianglesOptions controls textured mesh drawing.
type DrawTrianglesOptions struct {
	Address Address
	Filter  Filter
}

// Vertex is one corner of a textured triangle. Src is in texture pixels and
// the color multiplies the sampled texel.
type Vertex struct {
	DstX, DstY float32
	SrcX, SrcY float32

	ColorR, ColorG, ColorB, ColorA float32
}

// InputManager reports the keyboard, mouse and window focus state.
type InputManager interface {
	IsKeyPressed(key Key) bool
	IsKeyJustPressed(key Key) bool
	GetCursorPosition() (x, y int)
	IsMouseButtonJustPressed(button MouseButton) bool

	// SetCursorCaptured hides the cursor and keeps reporting unbounded
	// movement through GetCursorPosition while captured.
	SetCursorCaptured(captured bool)
	IsFocused() bool
}

// Key is a keyboard key the game reacts to.
type Key int

const (
	KeyW Key = iota
	KeyA
	KeyS
	KeyD
	KeyEscape
)

// MouseButton is a mouse button.
type MouseButton int

const (
	MouseButtonLeft MouseButton = iota
)

// Game is driven by an Engine: Update once per tick, Draw once per frame.
type Game interface {
	Update() error
	Draw(screen Image)

	// Layout maps the outside (window) size to the logical screen size.
	Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int)
}

// Engine owns the window and runs the loop.
type Engine interface {
	SetWindowSize(width, height int)
	SetWindowTitle(title string)
	SetWindowResizable(resizable bool)

	// RunGame blocks until the window closes or Update returns an error.
	RunGame(game Game) error
}
