package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"gridsnake/game"
	"gridsnake/game/types"
	"gridsnake/logger"
	"gridsnake/ui"
)

func main() {
	defaults := types.DefaultConfig()
	width := flag.Int("width", defaults.GridWidth, "Grid width in cells")
	height := flag.Int("height", defaults.GridHeight, "Grid height in cells")
	cellSize := flag.Int("cell", defaults.CellPixelSize, "Cell size in pixels")
	tps := flag.Int("tps", defaults.TicksPerSecond, "Simulation ticks per second")
	seed := flag.Uint64("seed", 0, "Food placement seed (0 = random)")
	flag.Parse()

	log := logger.NewLogger()

	cfg := types.Config{
		GridWidth:      *width,
		GridHeight:     *height,
		CellPixelSize:  *cellSize,
		TicksPerSecond: *tps,
		Seed:           *seed,
	}

	g, err := game.NewGame(cfg, log)
	if err != nil {
		log.Errorf("%v", err)
		os.Exit(1)
	}

	if err := ui.OpenWindow(cfg, "Snake"); err != nil {
		log.Errorf("display unavailable: %v", err)
		os.Exit(1)
	}
	defer ui.CloseWindow()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := g.Run(ctx, ui.NewKeyboard(), ui.NewRenderer(cfg)); err != nil {
		log.Errorf("game loop: %v", err)
	}

	stats := g.Stats()
	log.Infof("session over: %d rounds, best score %d", stats.RoundsPlayed, stats.BestScore)
}
