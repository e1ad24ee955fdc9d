// Package entity provides the live enemy set and the ring spawner that keeps it populated.
package entity

import (
	"github.com/google/uuid"

	"chosenoffset.com/gallery/internal/core/geom"
)

// Enemy is a billboard sprite that chases the player.
// Only Pos is mutated after creation.
type Enemy struct {
	ID  uuid.UUID
	Pos geom.Vec3
}

// NewEnemy creates an enemy with a fresh identity at pos.
func NewEnemy(pos geom.Vec3) *Enemy {
	return &Enemy{
		ID:  uuid.New(),
		Pos: pos,
	}
}

// Advance moves the enemy toward target by step units and returns
// the distance remaining after the move.
func (e *Enemy) Advance(target geom.Vec3, step float64) float64 {
	dir := target.Sub(e.Pos).Normalize()
	e.Pos = e.Pos.Add(dir.Scale(step))
	return e.Pos.DistanceTo(target)
}
