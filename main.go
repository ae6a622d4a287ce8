package main

import (
	"flag"
	"log/slog"
	"os"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/snake/config"
	"github.com/pthm-cable/snake/game"
	"github.com/pthm-cable/snake/telemetry"
	"github.com/pthm-cable/snake/ui"
)

func main() {
	// CLI flags
	configPath := flag.String("config", "", "Path to config.yaml (empty = use defaults)")
	headless := flag.Bool("headless", false, "Run without graphics, steered by the autopilot")
	seed := flag.Int64("seed", 0, "RNG seed (0 = time-based)")
	outputDir := flag.String("output-dir", "", "Output directory for rounds.csv and config snapshot")
	maxTicks := flag.Int("max-ticks", 100000, "Headless: stop after N ticks (0 = unlimited)")
	rounds := flag.Int("rounds", 1, "Headless: stop after N finished rounds (0 = unlimited)")
	verbose := flag.Bool("v", false, "Enable debug logging")

	flag.Parse()

	// Set up slog (JSON to stdout for structured logging)
	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	if err := config.Init(*configPath); err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	cfg := config.Cfg()

	rngSeed := *seed
	if rngSeed == 0 {
		rngSeed = time.Now().UnixNano()
	}

	output, err := telemetry.NewOutputManager(*outputDir)
	if err != nil {
		slog.Error("failed to create output directory", "error", err)
		os.Exit(1)
	}
	defer output.Close()
	if err := output.WriteConfig(cfg); err != nil {
		slog.Error("failed to write config snapshot", "error", err)
	}

	g := game.NewGame(game.Options{
		Seed:   rngSeed,
		Config: cfg,
		Logger: logger,
		Output: output,
	})

	if *headless {
		slog.Info("starting headless run",
			"seed", rngSeed,
			"session", g.Collector().Session(),
			"max_ticks", *maxTicks,
			"rounds", *rounds,
		)
		runHeadless(g, *maxTicks, *rounds)
	} else {
		runWindow(g, cfg)
	}

	slog.Info("session finished", "summary", g.Collector().Summary(), "perf", g.Perf())
}

// runHeadless drives the loop without wall time, restarting after each game over.
func runHeadless(g *game.Game, maxTicks, maxRounds int) {
	pilot := game.Autopilot{}
	ticks := 0

	g.HandleKey(game.KeyOther)
	for {
		if g.RestartVisible() {
			if maxRounds > 0 && len(g.Collector().Rounds()) >= maxRounds {
				return
			}
			g.HandleKey(game.KeyRestart)
		}

		g.HandleKey(pilot.NextKey(g.State()))
		if g.Step() {
			ticks++
		}

		if maxTicks > 0 && ticks >= maxTicks {
			slog.Info("max ticks reached", "ticks", ticks)
			return
		}
	}
}

// runWindow opens the raylib window and runs the frame loop until it is closed.
func runWindow(g *game.Game, cfg *config.Config) {
	rl.InitWindow(int32(cfg.Derived.ScreenWidth), int32(cfg.Derived.ScreenHeight), cfg.Screen.Title)
	defer rl.CloseWindow()

	rl.SetTargetFPS(int32(cfg.Screen.TargetFPS))

	board := ui.NewBoard(cfg.Grid.AreaSize, cfg.Grid.CellSize)
	hud := ui.NewHUD()
	theme := ui.DefaultTheme()

	for !rl.WindowShouldClose() {
		g.HandleKeys(ui.PollKeys())

		dt := time.Duration(float64(rl.GetFrameTime()) * float64(time.Second))
		g.Update(dt)

		rl.BeginDrawing()
		rl.ClearBackground(theme.Background)
		board.Draw(g.Display())
		restart := hud.Draw(ui.HUDData{
			Score:          g.Score(),
			Round:          g.Round(),
			NotStarted:     g.Phase() == game.PhaseNotStarted,
			RestartVisible: g.RestartVisible(),
			BoardSize:      int32(cfg.Grid.AreaSize),
			Height:         int32(cfg.Screen.HUDHeight),
		})
		rl.EndDrawing()

		if restart {
			g.Reset()
		}
	}
}
