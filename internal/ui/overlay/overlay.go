// Package overlay draws the blocking instructions panel shown while input is
// not captured, including the result of the last round.
package overlay

import (
	"fmt"
	"image/color"

	"chosenoffset.com/gallery/internal/render"
)

var (
	dimColor    = color.RGBA{0, 0, 0, 128}
	titleColor  = color.RGBA{255, 255, 255, 255}
	textColor   = color.RGBA{200, 200, 200, 255}
	resultColor = color.RGBA{255, 90, 90, 255}
)

// Blocker is the full-screen panel shown while the game is paused.
// Clicking anywhere on it starts capture.
type Blocker struct {
	renderer render.Renderer
	visible  bool

	screenWidth  int
	screenHeight int

	result string // set after a loss, cleared on the next lock
}

// NewBlocker creates a visible blocker.
func NewBlocker(r render.Renderer, width, height int) *Blocker {
	return &Blocker{
		renderer:     r,
		visible:      true,
		screenWidth:  width,
		screenHeight: height,
	}
}

// Show displays the panel.
func (b *Blocker) Show() {
	b.visible = true
}

// Hide removes the panel and forgets the last result.
func (b *Blocker) Hide() {
	b.visible = false
	b.result = ""
}

// Visible reports whether the panel is displayed.
func (b *Blocker) Visible() bool {
	return b.visible
}

// GameOver records the final score of a lost round for display.
func (b *Blocker) GameOver(score int) {
	b.result = fmt.Sprintf("Game over! Score: %d", score)
}

// Result returns the game over message, or "" if none is pending.
func (b *Blocker) Result() string {
	return b.result
}

// SetScreenSize updates the screen dimensions.
func (b *Blocker) SetScreenSize(width, height int) {
	b.screenWidth = width
	b.screenHeight = height
}

// Draw renders the panel if visible.
func (b *Blocker) Draw(screen render.Image) {
	if !b.visible {
		return
	}

	b.renderer.FillRect(screen, 0, 0, float32(b.screenWidth), float32(b.screenHeight), dimColor)

	cy := b.screenHeight / 2
	if b.result != "" {
		b.drawCentered(screen, b.result, cy-80, resultColor, 3)
	}
	b.drawCentered(screen, "Click to play", cy-20, titleColor, 3)
	b.drawCentered(screen, "Move: WASD   Look: mouse   Shoot: click   Pause: Esc", cy+30, textColor, 1.5)
}

func (b *Blocker) drawCentered(screen render.Image, text string, y int, clr color.Color, scale float64) {
	w, _ := b.renderer.MeasureText(text, scale)
	b.renderer.DrawText(screen, text, (b.screenWidth-w)/2, y, clr, scale)
}
