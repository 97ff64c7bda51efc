package manager

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"gridsnake/logger"
)

// State is the round lifecycle.
type State int

const (
	Running State = iota
	GameOver
)

func (s State) String() string {
	if s == GameOver {
		return "game_over"
	}
	return "running"
}

// Reasons a round ends.
const (
	EndSelfCollision = "self_collision"
	EndBoardFull     = "board_full"
)

// SessionStats are kept in memory for the life of the process only.
type SessionStats struct {
	RoundsPlayed int
	BestScore    int
	LastScore    int
}

type StateManager struct {
	state      State
	roundID    string
	roundStart time.Time
	stats      SessionStats
	log        *logger.Logger
	now        func() time.Time
}

// NewStateManager creates a manager with the first round already running.
func NewStateManager(log *logger.Logger) *StateManager {
	sm := &StateManager{
		log: log,
		now: time.Now,
	}
	sm.StartRound()
	return sm
}

// StartRound begins a new round under a fresh id.
func (sm *StateManager) StartRound() {
	sm.state = Running
	sm.roundID = uuid.New().String()
	sm.roundStart = sm.now()
	sm.log.Event("round_start", sm.roundID, "")
}

// EndRound moves a running round to GameOver and records its score. It
// returns false if the round had already ended.
func (sm *StateManager) EndRound(score int, reason string) bool {
	if sm.state != Running {
		return false
	}
	sm.state = GameOver

	sm.stats.RoundsPlayed++
	sm.stats.LastScore = score
	if score > sm.stats.BestScore {
		sm.stats.BestScore = score
	}

	duration := sm.now().Sub(sm.roundStart).Round(time.Millisecond)
	sm.log.Event("round_end", sm.roundID,
		fmt.Sprintf("reason=%s score=%d duration=%s best=%d", reason, score, duration, sm.stats.BestScore))
	return true
}

func (sm *StateManager) State() State {
	return sm.state
}

func (sm *StateManager) IsRunning() bool {
	return sm.state == Running
}

func (sm *StateManager) RoundID() string {
	return sm.roundID
}

func (sm *StateManager) Stats() SessionStats {
	return sm.stats
}
