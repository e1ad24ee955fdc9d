package main

import (
	"flag"
	"os"

	"github.com/rs/zerolog"

	"chosenoffset.com/gallery/internal/audio"
	"chosenoffset.com/gallery/internal/config"
	"chosenoffset.com/gallery/internal/game"
	ebitenrender "chosenoffset.com/gallery/internal/render/ebiten"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to the YAML config file")
	width := flag.Int("width", 0, "window width (overrides config)")
	height := flag.Int("height", 0, "window height (overrides config)")
	seed := flag.Int64("seed", 0, "spawn seed (overrides config, 0 keeps it)")
	textureDir := flag.String("textures", "assets", "directory holding floor.png and enemy.png")
	flag.Parse()

	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	if err := config.LoadDotEnv(".env"); err != nil {
		log.Warn().Err(err).Msg("Failed to load .env")
	}

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load config")
	}
	if err := cfg.ApplyEnv(); err != nil {
		log.Warn().Err(err).Msg("Ignoring invalid environment overrides")
	}
	if *width > 0 {
		cfg.Window.Width = *width
	}
	if *height > 0 {
		cfg.Window.Height = *height
	}
	if *seed != 0 {
		cfg.Game.Seed = *seed
	}
	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("Invalid config")
	}

	level, err := zerolog.ParseLevel(cfg.Log.Level)
	if err != nil {
		log.Warn().Str("level", cfg.Log.Level).Msg("Unknown log level, using info")
		level = zerolog.InfoLevel
	}
	log = log.Level(level)

	// Initialize the renderer backend (ebiten)
	renderer := ebitenrender.NewRenderer()
	inputMgr := ebitenrender.NewInputManager()
	engine := ebitenrender.NewEngine()

	opts := game.Options{
		Renderer:   renderer,
		InputMgr:   inputMgr,
		Logger:     log,
		Loader:     ebitenrender.NewResourceLoader(),
		TextureDir: *textureDir,
	}

	if cfg.Audio.Enabled {
		sounds := audio.NewSoundManager(cfg.Audio.MasterVolume)
		if err := sounds.Initialize(); err != nil {
			log.Warn().Err(err).Msg("Audio unavailable, continuing without sound")
		} else {
			defer sounds.Cleanup()
			opts.Sound = sounds
		}
	}

	g := game.NewGame(cfg, opts)
	defer g.Close()

	// Set up the window
	engine.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	engine.SetWindowTitle(cfg.Window.Title)
	engine.SetWindowResizable(true)

	log.Info().Msg("Starting game")
	if err := engine.RunGame(g); err != nil {
		log.Fatal().Err(err).Msg("Game exited with error")
	}
}

