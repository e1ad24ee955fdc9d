// Package hud draws the in-game score readout and crosshair.
package hud

import (
	"image/color"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"chosenoffset.com/gallery/internal/render"
)

// HUDConfig defines what to display in the HUD
type HUDConfig struct {
	ShowCrosshair bool
	Language      language.Tag // Locale used to format numbers
	TextScale     float64
	Margin        int
}

// DefaultConfig returns a sensible default HUD configuration
func DefaultConfig() *HUDConfig {
	return &HUDConfig{
		ShowCrosshair: true,
		Language:      language.English,
		TextScale:     2,
		Margin:        12,
	}
}

// HUD manages the heads-up display
type HUD struct {
	config   *HUDConfig
	renderer render.Renderer
	printer  *message.Printer

	screenWidth  int
	screenHeight int

	score     int
	scoreText string
}

// New creates a new HUD with the given configuration
func New(config *HUDConfig, r render.Renderer, screenWidth, screenHeight int) *HUD {
	if config == nil {
		config = DefaultConfig()
	}
	h := &HUD{
		config:       config,
		renderer:     r,
		printer:      message.NewPrinter(config.Language),
		screenWidth:  screenWidth,
		screenHeight: screenHeight,
	}
	h.SetScore(0)
	return h
}

// SetScore updates the displayed score
func (h *HUD) SetScore(score int) {
	h.score = score
	h.scoreText = h.printer.Sprintf("Score: %d", score)
}

// ScoreText returns the current score readout
func (h *HUD) ScoreText() string {
	return h.scoreText
}

// SetScreenSize updates the screen dimensions
func (h *HUD) SetScreenSize(width, height int) {
	h.screenWidth = width
	h.screenHeight = height
}

// Draw renders the HUD to the screen. The crosshair is only shown while
// input is captured.
func (h *HUD) Draw(screen render.Image, locked bool) {
	m := h.config.Margin
	h.renderer.DrawText(screen, h.scoreText, m, m, color.RGBA{255, 255, 255, 255}, h.config.TextScale)

	if locked && h.config.ShowCrosshair {
		h.drawCrosshair(screen)
	}
}

func (h *HUD) drawCrosshair(screen render.Image) {
	cx := float32(h.screenWidth) / 2
	cy := float32(h.screenHeight) / 2
	clr := color.RGBA{255, 255, 255, 200}
	const arm, gap = 8, 3

	h.renderer.StrokeLine(screen, cx-arm-gap, cy, cx-gap, cy, 2, clr)
	h.renderer.StrokeLine(screen, cx+gap, cy, cx+arm+gap, cy, 2, clr)
	h.renderer.StrokeLine(screen, cx, cy-arm-gap, cx, cy-gap, 2, clr)
	h.renderer.StrokeLine(screen, cx, cy+gap, cx, cy+arm+gap, 2, clr)
	h.renderer.FillCircle(screen, cx, cy, 1.5, clr)
}
