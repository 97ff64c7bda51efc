package ui

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"gridsnake/game"
	"gridsnake/ui/keys"
)

var keymap = map[int32]game.Command{
	rl.KeyUp:    game.CmdUp,
	rl.KeyW:     game.CmdUp,
	rl.KeyDown:  game.CmdDown,
	rl.KeyS:     game.CmdDown,
	rl.KeyLeft:  game.CmdLeft,
	rl.KeyA:     game.CmdLeft,
	rl.KeyRight: game.CmdRight,
	rl.KeyD:     game.CmdRight,
	rl.KeySpace: game.CmdRestart,
	rl.KeyQ:     game.CmdQuit,
}

// Keyboard reads commands from raylib's key-pressed queue.
type Keyboard struct{}

func NewKeyboard() *Keyboard {
	return &Keyboard{}
}

// Poll returns every key pressed since the last call, oldest first.
// raylib only fills its key queue while polling window events, which
// EndDrawing does after the tick has run. Poll therefore pumps events itself
// so keys pressed during the tick wait apply to this tick, not the next.
func (k *Keyboard) Poll() []game.Command {
	return keys.Drain(rl.GetKeyPressed, rl.PollInputEvents, keymap)
}
