// Package sound names the game's sound effects. It has no dependencies so
// that game logic can request effects without linking an audio backend.
package sound

// Effect identifies a sound effect.
type Effect int

const (
	Shot Effect = iota
	Hit
	GameOver
)
