package main

import (
	"gridsnake/config"
	"gridsnake/game"
	"gridsnake/game/manager"
	"gridsnake/ui"
	"os"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})

	cfg, err := config.Load(os.Args[1:], ".env")
	if err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}
	if lvl, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	board, err := game.NewBoard(
		game.WithGridSize(cfg.GridSize),
		game.WithInitSnakeCoords(cfg.Spawn()),
		game.WithSeed(seed),
	)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create board")
	}
	sm := manager.NewStateManager(board, log.Logger)
	log.Info().
		Str("session", sm.ID()).
		Uint("grid", board.GetGridSize()).
		Uint64("seed", seed).
		Dur("tick", cfg.TickInterval).
		Msg("starting snake")

	rl.SetTraceLogLevel(rl.LogWarning)
	rl.InitWindow(int32(cfg.WindowWidth), int32(cfg.WindowHeight), "snek")
	defer rl.CloseWindow()
	rl.SetExitKey(rl.KeyNull)
	rl.SetTargetFPS(60)

	input := ui.NewInput(ui.DefaultKeyMap())
	renderer := ui.NewRenderer(ui.DefaultTheme(int32(cfg.FontSize)), int32(cfg.Padding))
	lastUpdate := time.Now()

	for !rl.WindowShouldClose() && !sm.Quit() {
		for _, sig := range input.Poll() {
			sm.Handle(sig)
		}

		// Update game state at fixed interval
		if time.Since(lastUpdate) >= cfg.TickInterval {
			sm.Tick()
			lastUpdate = time.Now()
		}

		renderer.Draw(board, sm)
	}

	log.Info().
		Int("games", sm.GamesPlayed()).
		Int("high_score", sm.GetHighScore()).
		Msg("bye")
}
