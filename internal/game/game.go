package game

import (
	"github.com/rs/zerolog"

	"chosenoffset.com/gallery/internal/input"
	"chosenoffset.com/gallery/internal/render"
	"chosenoffset.com/gallery/internal/render/scene"
	"chosenoffset.com/gallery/internal/sound"
	"chosenoffset.com/gallery/internal/ui/hud"
	"chosenoffset.com/gallery/internal/ui/overlay"
)

// Game drives a Session from the engine's frame loop.
type Game struct {
	Session  *Session
	Queue    *input.Queue
	Poller   *input.Poller
	Renderer render.Renderer
	InputMgr render.InputManager
	Scene    *scene.Scene
	GameHUD  *hud.HUD
	Blocker  *overlay.Blocker
	Sound    SoundPlayer

	log zerolog.Logger

	// Debug
	FrameCount int
}

// Update samples input, applies the queued commands in arrival order and
// then advances the enemies by one step.
func (g *Game) Update() error {
	g.Poller.Poll(g.Queue, g.Session.Locked())
	g.Queue.Drain(g.Session.Apply)
	g.Session.Step()

	g.FrameCount++
	return nil
}

// Layout tracks the outside size so the projection always matches the window.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if w, h := g.Session.Viewport(); w != outsideWidth || h != outsideHeight {
		g.Queue.Push(input.Resize(outsideWidth, outsideHeight))
	}
	return outsideWidth, outsideHeight
}

// OnLockChange captures or releases the cursor and toggles the blocker.
func (g *Game) OnLockChange(locked bool) {
	g.InputMgr.SetCursorCaptured(locked)
	if locked {
		g.Blocker.Hide()
	} else {
		g.Blocker.Show()
	}
}

// OnScore refreshes the HUD readout.
func (g *Game) OnScore(score int) {
	g.GameHUD.SetScore(score)
}

// OnShot plays the shot sound, and the hit sound when something was destroyed.
func (g *Game) OnShot(hit bool) {
	g.Sound.Play(sound.Shot)
	if hit {
		g.Sound.Play(sound.Hit)
	}
}

// OnGameOver shows the final score on the blocker.
func (g *Game) OnGameOver(finalScore int) {
	g.Blocker.GameOver(finalScore)
	g.Sound.Play(sound.GameOver)
}

// Close releases the textures held by the scene.
func (g *Game) Close() {
	if g.Scene != nil {
		g.Scene.Dispose()
	}
	g.log.Info().Int("frames", g.FrameCount).Int("score", g.Session.Score()).Msg("game closed")
}
