package entity

import (
	"slices"

	"github.com/google/uuid"
)

// Store is the ordered set of live enemies.
// It is the only mutator of the set; callers keep the population at the
// configured size by pairing every Remove with a spawn.
type Store struct {
	enemies []*Enemy
}

// NewStore creates an empty store with room for capacity enemies.
func NewStore(capacity int) *Store {
	return &Store{enemies: make([]*Enemy, 0, capacity)}
}

// Add appends e to the end of the set.
func (s *Store) Add(e *Enemy) {
	if e == nil {
		return
	}
	s.enemies = append(s.enemies, e)
}

// Remove deletes e by identity, preserving the order of the others.
// It returns false if e was not in the store.
func (s *Store) Remove(e *Enemy) bool {
	if e == nil {
		return false
	}
	idx := slices.IndexFunc(s.enemies, func(o *Enemy) bool { return o.ID == e.ID })
	if idx < 0 {
		return false
	}
	s.enemies = slices.Delete(s.enemies, idx, idx+1)
	return true
}

// ResetAll removes every enemy. The caller is expected to respawn.
func (s *Store) ResetAll() {
	clear(s.enemies)
	s.enemies = s.enemies[:0]
}

// Len returns the number of live enemies.
func (s *Store) Len() int {
	return len(s.enemies)
}

// Contains reports whether an enemy with the given ID is live.
func (s *Store) Contains(id uuid.UUID) bool {
	return slices.ContainsFunc(s.enemies, func(e *Enemy) bool { return e.ID == id })
}

// At returns the enemy at position i in iteration order.
func (s *Store) At(i int) *Enemy {
	return s.enemies[i]
}

// Enemies returns the live slice for iteration. It must not be retained
// across calls that mutate the store.
func (s *Store) Enemies() []*Enemy {
	return s.enemies
}

// All returns a snapshot copy of the live enemies in order.
func (s *Store) All() []*Enemy {
	return slices.Clone(s.enemies)
}
