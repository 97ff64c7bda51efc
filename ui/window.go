package ui

import (
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/pkg/errors"

	"gridsnake/game/types"
)

// OpenWindow creates the game window sized to the grid.
func OpenWindow(cfg types.Config, title string) error {
	rl.SetTraceLogLevel(rl.LogWarning)
	rl.InitWindow(int32(cfg.ScreenWidth()), int32(cfg.ScreenHeight()), title)
	if !rl.IsWindowReady() {
		return errors.Errorf("could not open %dx%d window", cfg.ScreenWidth(), cfg.ScreenHeight())
	}
	rl.SetExitKey(rl.KeyEscape)
	return nil
}

func CloseWindow() {
	rl.CloseWindow()
}
