package game

import (
	"math"
	"math/rand"
	"testing"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chosenoffset.com/gallery/internal/config"
	"chosenoffset.com/gallery/internal/core/geom"
	"chosenoffset.com/gallery/internal/entity"
	"chosenoffset.com/gallery/internal/input"
)

type recorder struct {
	locks    []bool
	scores   []int
	shots    []bool
	gameOver []int
}

func (r *recorder) OnLockChange(locked bool) { r.locks = append(r.locks, locked) }
func (r *recorder) OnScore(score int)        { r.scores = append(r.scores, score) }
func (r *recorder) OnShot(hit bool)          { r.shots = append(r.shots, hit) }
func (r *recorder) OnGameOver(score int)     { r.gameOver = append(r.gameOver, score) }

func newTestSession(t *testing.T) (*Session, *recorder) {
	t.Helper()
	s := NewSession(config.DefaultConfig(), rand.New(rand.NewSource(1)), zerolog.Nop())
	rec := &recorder{}
	s.SetListener(rec)
	return s, rec
}

// parkEnemies moves every enemy well behind and to the side of a camera
// looking down -Z, so that only explicitly placed enemies can be hit.
func parkEnemies(s *Session) {
	for i, e := range s.Store().Enemies() {
		e.Pos = geom.V(200+float64(i)*5, 10, 200)
	}
}

func ids(enemies []*entity.Enemy) map[uuid.UUID]bool {
	m := make(map[uuid.UUID]bool, len(enemies))
	for _, e := range enemies {
		m[e.ID] = true
	}
	return m
}

func TestNewSessionStartsPausedAndFull(t *testing.T) {
	s, _ := newTestSession(t)
	assert.False(t, s.Locked())
	assert.Equal(t, 0, s.Score())
	assert.Equal(t, 20, s.Store().Len())
	assert.Equal(t, geom.V(0, 10, 0), s.Camera().Position)
}

func TestHitLossScenario(t *testing.T) {
	s, rec := newTestSession(t)
	parkEnemies(s)

	third := s.Store().At(2)
	fifth := s.Store().At(4)
	third.Pos = geom.V(0, 10, -150)

	s.Apply(input.Lock())
	require.True(t, s.Locked())
	assert.Equal(t, []bool{true}, rec.locks)

	assert.True(t, s.Shoot())
	assert.Equal(t, 1, s.Score())
	assert.Equal(t, 20, s.Store().Len())
	assert.False(t, s.Store().Contains(third.ID))
	assert.Equal(t, []int{1}, rec.scores)
	assert.Equal(t, []bool{true}, rec.shots)

	before := ids(s.Store().Enemies())
	fifth.Pos = geom.V(0, 10, -10.3)

	res := s.Step()
	assert.True(t, res.Lost)
	assert.Equal(t, 1, res.FinalScore)
	assert.Equal(t, []int{1}, rec.gameOver)
	assert.Equal(t, []int{1, 0}, rec.scores)
	assert.Equal(t, 0, s.Score())
	assert.False(t, s.Locked())
	assert.Equal(t, []bool{true, false}, rec.locks)

	assert.Equal(t, 20, s.Store().Len())
	for _, e := range s.Store().Enemies() {
		assert.False(t, before[e.ID], "enemy survived the reset")
	}
}

func TestShootWhileUnlockedDoesNothing(t *testing.T) {
	s, rec := newTestSession(t)
	parkEnemies(s)
	s.Store().At(0).Pos = geom.V(0, 10, -150)
	before := s.Store().All()

	assert.False(t, s.Shoot())
	assert.Equal(t, 0, s.Score())
	assert.Equal(t, before, s.Store().All())
	assert.Empty(t, rec.shots)
}

func TestMissChangesNothing(t *testing.T) {
	s, rec := newTestSession(t)
	parkEnemies(s)
	s.Apply(input.Lock())
	before := s.Store().All()

	assert.False(t, s.Shoot())
	assert.Equal(t, 0, s.Score())
	assert.Equal(t, before, s.Store().All())
	assert.Equal(t, []bool{false}, rec.shots)
	assert.Empty(t, rec.scores)
}

func TestShootPicksNearestEnemy(t *testing.T) {
	s, _ := newTestSession(t)
	parkEnemies(s)
	far := s.Store().At(0)
	near := s.Store().At(1)
	far.Pos = geom.V(0, 10, -300)
	near.Pos = geom.V(2, 10, -120)

	s.Apply(input.Lock())
	require.True(t, s.Shoot())
	assert.False(t, s.Store().Contains(near.ID))
	assert.True(t, s.Store().Contains(far.ID))
}

func TestStepWhilePausedDoesNotMove(t *testing.T) {
	s, _ := newTestSession(t)
	before := make([]geom.Vec3, 0, s.Store().Len())
	for _, e := range s.Store().Enemies() {
		before = append(before, e.Pos)
	}

	res := s.Step()
	assert.Equal(t, StepResult{}, res)
	for i, e := range s.Store().Enemies() {
		assert.Equal(t, before[i], e.Pos)
	}
}

func TestStepMovesEveryEnemyTowardPlayer(t *testing.T) {
	s, _ := newTestSession(t)
	s.Apply(input.Lock())
	player := s.Controls().Position()

	dist := make([]float64, 0, s.Store().Len())
	for _, e := range s.Store().Enemies() {
		dist = append(dist, e.Pos.DistanceTo(player))
	}

	res := s.Step()
	require.False(t, res.Lost)
	assert.Equal(t, 20, res.Moved)
	for i, e := range s.Store().Enemies() {
		assert.InDelta(t, dist[i]-0.5, e.Pos.DistanceTo(player), 1e-9)
	}
}

func TestFirstEnemyToArriveEndsFrame(t *testing.T) {
	s, rec := newTestSession(t)
	parkEnemies(s)
	s.Store().At(3).Pos = geom.V(0, 10, -10.2)
	s.Store().At(7).Pos = geom.V(10.2, 10, 0)
	s.Apply(input.Lock())

	res := s.Step()
	assert.True(t, res.Lost)
	assert.Equal(t, 4, res.Moved)
	assert.Len(t, rec.gameOver, 1)
}

func TestPopulationIsConstantAcrossFrames(t *testing.T) {
	s, _ := newTestSession(t)
	s.Apply(input.Lock())

	for frame := 0; frame < 400; frame++ {
		if frame%7 == 0 {
			s.Apply(input.Look(float64(frame%50), 0))
			s.Shoot()
		}
		if !s.Locked() {
			s.Apply(input.Lock())
		}
		s.Step()
		require.Equal(t, 20, s.Store().Len(), "frame %d", frame)
	}
}

func TestResizeIsIdempotent(t *testing.T) {
	s, _ := newTestSession(t)

	assert.True(t, s.Resize(800, 600))
	aspect := s.Camera().Aspect
	assert.InDelta(t, 800.0/600.0, aspect, 1e-12)

	assert.False(t, s.Resize(800, 600))
	assert.Equal(t, aspect, s.Camera().Aspect)

	assert.False(t, s.Resize(0, 600))
	assert.False(t, s.Resize(800, -1))
	w, h := s.Viewport()
	assert.Equal(t, 800, w)
	assert.Equal(t, 600, h)
}

func TestUnlockedSessionMovesButDoesNotLook(t *testing.T) {
	s, _ := newTestSession(t)
	s.Apply(input.Look(100, 100))
	assert.Zero(t, s.Camera().Yaw)
	assert.Zero(t, s.Camera().Pitch)

	s.Apply(input.MoveForward(5))
	assert.InDelta(t, -5, s.Camera().Position.Z, 1e-9)
	assert.InDelta(t, 0, math.Abs(s.Camera().Position.X), 1e-9)
	assert.Equal(t, 10.0, s.Camera().Position.Y)

	s.Apply(input.Lock())
	s.Apply(input.MoveRight(2))
	assert.InDelta(t, 2, s.Camera().Position.X, 1e-9)
}
