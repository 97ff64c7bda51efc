// Package keys turns a raw key-code queue into game commands.
package keys

import "gridsnake/game"

// Drain empties the queue, pumps the window events once, then empties it
// again. Keys already queued come from the previous frame's event poll and
// are returned first; the second pass picks up keys pressed while the loop
// was waiting for the tick. next must return 0 once the queue is empty.
func Drain(next func() int32, pump func(), keymap map[int32]game.Command) []game.Command {
	var cmds []game.Command
	cmds = collect(cmds, next, keymap)
	pump()
	return collect(cmds, next, keymap)
}

func collect(cmds []game.Command, next func() int32, keymap map[int32]game.Command) []game.Command {
	for key := next(); key != 0; key = next() {
		if cmd, ok := keymap[key]; ok {
			cmds = append(cmds, cmd)
		}
	}
	return cmds
}
