// Package gamestate holds the per-session score and capture state.
// A GameState is owned by exactly one session and mutated only from the frame loop.
package gamestate

// GameState holds the mutable state of a play session.
type GameState struct {
	score     int
	locked    bool
	lastScore int
	losses    int
}

// New creates a GameState with score 0 in the unlocked state.
func New() *GameState {
	return &GameState{}
}

// --- Score operations ---

// Score returns the current score.
func (gs *GameState) Score() int {
	return gs.score
}

// AddPoint increments the score by one and returns the new value.
func (gs *GameState) AddPoint() int {
	gs.score++
	return gs.score
}

// ResetScore records the current score as the final score of the round,
// sets the score back to zero and returns the final score.
func (gs *GameState) ResetScore() int {
	final := gs.score
	gs.lastScore = final
	gs.losses++
	gs.score = 0
	return final
}

// LastScore returns the final score of the most recently lost round.
func (gs *GameState) LastScore() int {
	return gs.lastScore
}

// Losses returns how many rounds have ended in this session.
func (gs *GameState) Losses() int {
	return gs.losses
}

// --- Lock operations ---

// Locked reports whether input is captured (the simulation is running).
func (gs *GameState) Locked() bool {
	return gs.locked
}

// SetLocked mirrors the control adapter's capture state.
func (gs *GameState) SetLocked(locked bool) {
	gs.locked = locked
}
