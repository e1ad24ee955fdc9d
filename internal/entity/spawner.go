package entity

import (
	"math"
	"math/rand"

	"chosenoffset.com/gallery/internal/core/geom"
)

// SpawnConfig describes the ring enemies appear on.
type SpawnConfig struct {
	MinRadius  float64 // inclusive
	MaxRadius  float64 // exclusive
	Height     float64
	MaxEnemies int
}

// Spawner creates enemies at random points on a ring around the origin
// and registers them with a Store.
type Spawner struct {
	cfg   SpawnConfig
	rng   *rand.Rand
	store *Store

	// OnSpawn is called after each enemy is registered.
	OnSpawn func(e *Enemy)
}

// NewSpawner creates a spawner feeding store.
func NewSpawner(cfg SpawnConfig, rng *rand.Rand, store *Store) *Spawner {
	return &Spawner{
		cfg:   cfg,
		rng:   rng,
		store: store,
	}
}

// Spawn creates one enemy with angle uniform in [0, 2π) and radius uniform
// in [MinRadius, MaxRadius), adds it to the store and returns it.
func (s *Spawner) Spawn() *Enemy {
	angle := s.rng.Float64() * 2 * math.Pi
	radius := s.cfg.MinRadius + s.rng.Float64()*(s.cfg.MaxRadius-s.cfg.MinRadius)

	e := NewEnemy(geom.V(
		math.Cos(angle)*radius,
		s.cfg.Height,
		math.Sin(angle)*radius,
	))
	s.store.Add(e)
	if s.OnSpawn != nil {
		s.OnSpawn(e)
	}
	return e
}

// Fill spawns until the store holds MaxEnemies and returns how many were created.
func (s *Spawner) Fill() int {
	n := 0
	for s.store.Len() < s.cfg.MaxEnemies {
		s.Spawn()
		n++
	}
	return n
}
