package game

import (
	"chosenoffset.com/gallery/internal/render"
)

// Draw renders the game to the screen.
func (g *Game) Draw(screen render.Image) {
	w, h := screen.Size()
	g.GameHUD.SetScreenSize(w, h)
	g.Blocker.SetScreenSize(w, h)

	// Step 1: floor and enemies, seen from the player's camera
	g.Scene.Draw(screen, g.Session.Camera(), g.Session.Store().Enemies())

	// Step 2: score and crosshair
	g.GameHUD.Draw(screen, g.Session.Locked())

	// Step 3: instructions panel while paused
	g.Blocker.Draw(screen)
}
