package game

import "gridsnake/game/types"

// Command is a player intent decoded from the keyboard.
type Command int

const (
	CmdNone Command = iota
	CmdUp
	CmdDown
	CmdLeft
	CmdRight
	CmdRestart
	CmdQuit
)

// Direction maps a movement command to a heading.
func (c Command) Direction() (types.Direction, bool) {
	switch c {
	case CmdUp:
		return types.Up, true
	case CmdDown:
		return types.Down, true
	case CmdLeft:
		return types.Left, true
	case CmdRight:
		return types.Right, true
	}
	return 0, false
}

// Input yields every command received since the previous call.
type Input interface {
	Poll() []Command
}

// Display draws one frame per tick.
type Display interface {
	Draw(Snapshot)
	ShouldClose() bool
}
