package game

import (
	"math/rand"

	"github.com/rs/zerolog"

	"chosenoffset.com/gallery/internal/camera"
	"chosenoffset.com/gallery/internal/config"
	"chosenoffset.com/gallery/internal/controls"
	"chosenoffset.com/gallery/internal/core/gamestate"
	"chosenoffset.com/gallery/internal/core/geom"
	"chosenoffset.com/gallery/internal/entity"
	"chosenoffset.com/gallery/internal/input"
	"chosenoffset.com/gallery/internal/raycast"
)

// Listener receives session events that the presentation layer reflects.
type Listener interface {
	OnLockChange(locked bool)
	OnScore(score int)
	OnShot(hit bool)
	OnGameOver(finalScore int)
}

type nopListener struct{}

func (nopListener) OnLockChange(bool) {}
func (nopListener) OnScore(int)       {}
func (nopListener) OnShot(bool)       {}
func (nopListener) OnGameOver(int)    {}

// StepResult describes what one simulation step did.
type StepResult struct {
	Moved      int  // enemies advanced this frame
	Lost       bool // an enemy reached the player
	FinalScore int  // score of the round that just ended, if Lost
}

// Session is one play session: the enemy set, the score and the player's
// camera and controls. All methods must be called from the frame loop.
type Session struct {
	rules config.GameConfig

	state    *gamestate.GameState
	store    *entity.Store
	spawner  *entity.Spawner
	camera   *camera.Camera
	controls *controls.PointerLock

	viewportW, viewportH int

	listener Listener
	log      zerolog.Logger
}

// NewSession creates a session with a full enemy population, score 0 and
// input unlocked.
func NewSession(cfg *config.Config, rng *rand.Rand, logger zerolog.Logger) *Session {
	w, h := cfg.Window.Width, cfg.Window.Height

	cam := camera.New(cfg.Camera.FOV, float64(w)/float64(h), cfg.Camera.Near, cfg.Camera.Far)
	cam.Position = geom.V(0, cfg.Camera.EyeHeight, 0)

	ctl := controls.NewPointerLock(cam)
	ctl.Sensitivity = cfg.Camera.MouseSensitivity

	store := entity.NewStore(cfg.Game.MaxEnemies)
	spawner := entity.NewSpawner(entity.SpawnConfig{
		MinRadius:  cfg.Game.SpawnMinRadius,
		MaxRadius:  cfg.Game.SpawnMaxRadius,
		Height:     cfg.Game.EnemyHeight,
		MaxEnemies: cfg.Game.MaxEnemies,
	}, rng, store)

	s := &Session{
		rules:     cfg.Game,
		state:     gamestate.New(),
		store:     store,
		spawner:   spawner,
		camera:    cam,
		controls:  ctl,
		viewportW: w,
		viewportH: h,
		listener:  nopListener{},
		log:       logger,
	}

	ctl.OnLock(func() { s.setLocked(true) })
	ctl.OnUnlock(func() { s.setLocked(false) })
	spawner.OnSpawn = func(e *entity.Enemy) {
		s.log.Trace().Str("enemy", e.ID.String()).Float64("x", e.Pos.X).Float64("z", e.Pos.Z).Msg("enemy spawned")
	}

	spawner.Fill()
	s.log.Info().Int("enemies", store.Len()).Msg("session started")
	return s
}

// SetListener routes session events to l. A nil listener discards them.
func (s *Session) SetListener(l Listener) {
	if l == nil {
		l = nopListener{}
	}
	s.listener = l
}

func (s *Session) setLocked(locked bool) {
	s.state.SetLocked(locked)
	s.log.Debug().Bool("locked", locked).Msg("capture changed")
	s.listener.OnLockChange(locked)
}

// Apply executes one input command.
func (s *Session) Apply(cmd input.Command) {
	switch cmd.Kind {
	case input.KindLock:
		s.controls.Lock()
	case input.KindUnlock:
		s.controls.Unlock()
	case input.KindMoveForward:
		s.controls.MoveForward(cmd.Amount)
	case input.KindMoveRight:
		s.controls.MoveRight(cmd.Amount)
	case input.KindLook:
		s.controls.Look(cmd.DX, cmd.DY)
	case input.KindShoot:
		s.Shoot()
	case input.KindResize:
		s.Resize(cmd.W, cmd.H)
	}
}

// Shoot casts a ray through the center of the view and destroys the
// nearest enemy it hits, scoring a point and spawning a replacement.
// It does nothing unless input is captured. It reports whether an enemy was hit.
func (s *Session) Shoot() bool {
	if !s.state.Locked() {
		return false
	}

	hit, ok := raycast.Nearest(s.camera.CenterRay(), s.camera, s.store.Enemies(), s.rules.EnemyScale)
	if !ok {
		s.listener.OnShot(false)
		return false
	}

	s.store.Remove(hit.Enemy)
	score := s.state.AddPoint()
	s.spawner.Spawn()

	s.log.Debug().
		Str("enemy", hit.Enemy.ID.String()).
		Float64("distance", hit.Distance).
		Int("score", score).
		Msg("enemy hit")

	s.listener.OnShot(true)
	s.listener.OnScore(score)
	return true
}

// Step advances the simulation by one frame. While input is captured each
// enemy moves toward the player in store order; the first one to come
// within the loss distance ends the round and the rest of the frame is
// discarded. While paused nothing moves.
func (s *Session) Step() StepResult {
	if !s.state.Locked() {
		return StepResult{}
	}

	player := s.controls.Position()
	for i, e := range s.store.Enemies() {
		if e.Advance(player, s.rules.EnemySpeed) < s.rules.LossDistance {
			final := s.lose()
			return StepResult{Moved: i + 1, Lost: true, FinalScore: final}
		}
	}
	return StepResult{Moved: s.store.Len()}
}

// lose ends the round: capture is released, the final score is reported,
// the score resets and a fresh population replaces every enemy.
func (s *Session) lose() int {
	s.controls.Unlock()

	final := s.state.ResetScore()
	s.log.Info().Int("score", final).Int("round", s.state.Losses()).Msg("round lost")
	s.listener.OnGameOver(final)
	s.listener.OnScore(0)

	s.store.ResetAll()
	s.spawner.Fill()
	return final
}

// Resize updates the camera aspect and viewport. Non-positive sizes are
// ignored. It reports whether anything changed.
func (s *Session) Resize(w, h int) bool {
	if w <= 0 || h <= 0 {
		return false
	}
	if w == s.viewportW && h == s.viewportH {
		return false
	}
	s.viewportW, s.viewportH = w, h
	s.camera.SetAspect(float64(w) / float64(h))
	s.log.Debug().Int("width", w).Int("height", h).Msg("viewport resized")
	return true
}

// Viewport returns the renderer size.
func (s *Session) Viewport() (w, h int) {
	return s.viewportW, s.viewportH
}

// Locked reports whether input is captured.
func (s *Session) Locked() bool {
	return s.state.Locked()
}

// Score returns the current score.
func (s *Session) Score() int {
	return s.state.Score()
}

// State returns the session's score and capture state.
func (s *Session) State() *gamestate.GameState {
	return s.state
}

// Store returns the live enemy set.
func (s *Session) Store() *entity.Store {
	return s.store
}

// Camera returns the player's camera.
func (s *Session) Camera() *camera.Camera {
	return s.camera
}

// Controls returns the player's pointer-lock controls.
func (s *Session) Controls() *controls.PointerLock {
	return s.controls
}
