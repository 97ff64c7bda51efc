package game

import (
	"context"
	"time"
)

// Run drives the game at Config.TicksPerSecond until the player quits, the
// display asks to close, or ctx is cancelled. Each tick drains input,
// applies it, steps once and draws; waiting for the next tick is the only
// place the loop blocks.
func (g *Game) Run(ctx context.Context, in Input, out Display) error {
	ticker := time.NewTicker(g.Config.TickInterval())
	defer ticker.Stop()

	g.log.Infof("game loop started: %dx%d grid at %d ticks/s",
		g.Grid.Width, g.Grid.Height, g.Config.TicksPerSecond)

	for {
		g.HandleInput(in.Poll())
		if g.quit || out.ShouldClose() {
			g.log.Info("quit requested")
			return nil
		}

		g.Tick()
		out.Draw(g.Snapshot())

		select {
		case <-ctx.Done():
			g.log.Info("game loop stopped")
			return nil
		case <-ticker.C:
		}
	}
}
