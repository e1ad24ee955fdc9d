package game

import (
	"errors"
	"image"
	"image/color"
	"io/fs"
	"math/rand"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"

	"chosenoffset.com/gallery/internal/config"
	"chosenoffset.com/gallery/internal/input"
	"chosenoffset.com/gallery/internal/render"
	"chosenoffset.com/gallery/internal/render/scene"
	"chosenoffset.com/gallery/internal/texture"
	"chosenoffset.com/gallery/internal/ui/hud"
	"chosenoffset.com/gallery/internal/ui/overlay"
)

// Options carries the collaborators a Game needs besides its config.
type Options struct {
	Renderer render.Renderer
	InputMgr render.InputManager
	Sound    SoundPlayer // nil plays nothing
	Logger   zerolog.Logger

	// Loader reads floor.png and enemy.png from TextureDir. Missing files
	// and a nil Loader select the procedural textures.
	Loader     render.ResourceLoader
	TextureDir string
}

// NewGame builds a paused game: full enemy population, score 0 and the
// blocker shown.
func NewGame(cfg *config.Config, opts Options) *Game {
	seed := cfg.Game.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	logger := opts.Logger.With().Str("component", "game").Logger()
	logger.Info().Int64("seed", seed).Msg("loading game")

	floor := loadTexture(opts, logger, "floor.png", func() image.Image {
		return texture.Checkerboard(texture.FloorSize, texture.FloorTiles)
	})
	enemy := loadTexture(opts, logger, "enemy.png", func() image.Image {
		return texture.EnemyDot(texture.EnemySize)
	})

	sound := opts.Sound
	if sound == nil {
		sound = silence{}
	}

	w, h := cfg.Window.Width, cfg.Window.Height
	session := NewSession(cfg, rand.New(rand.NewSource(seed)), logger)

	g := &Game{
		Session:  session,
		Queue:    input.NewQueue(),
		Poller:   input.NewPoller(opts.InputMgr, cfg.Game.MoveSpeed, input.NewRepeat(cfg.Game.KeyRepeatDelay, cfg.Game.KeyRepeatInterval)),
		Renderer: opts.Renderer,
		InputMgr: opts.InputMgr,
		Scene: scene.New(scene.Config{
			FloorSize:     cfg.Scene.FloorSize,
			FloorSegments: cfg.Scene.FloorSegments,
			TextureRepeat: cfg.Scene.TextureRepeat,
			FogDensity:    cfg.Scene.FogDensity,
			Background:    color.RGBA{0, 0, 0, 255},
			EnemyScale:    cfg.Game.EnemyScale,
		}, floor, enemy),
		GameHUD: hud.New(nil, opts.Renderer, w, h),
		Blocker: overlay.NewBlocker(opts.Renderer, w, h),
		Sound:   sound,
		log:     logger,
	}
	session.SetListener(g)
	return g
}

// loadTexture reads name from the texture directory, falling back to the
// generated raster when the loader is absent or the file cannot be used.
func loadTexture(opts Options, logger zerolog.Logger, name string, fallback func() image.Image) render.Image {
	if opts.Loader != nil {
		path := filepath.Join(opts.TextureDir, name)
		img, err := opts.Loader.LoadImage(path)
		if err == nil {
			logger.Debug().Str("path", path).Msg("loaded texture")
			return img
		}
		if !errors.Is(err, fs.ErrNotExist) {
			logger.Warn().Err(err).Str("path", path).Msg("failed to load texture, using generated one")
		}
	}
	return opts.Renderer.NewImageFromImage(fallback())
}
