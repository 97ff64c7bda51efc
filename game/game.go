package game

import (
	"image/color"

	"github.com/pkg/errors"

	"gridsnake/game/entity"
	"gridsnake/game/manager"
	"gridsnake/game/types"
	"gridsnake/logger"
)

// Game owns the snake, the food and the round state. All mutation happens
// on the goroutine driving Tick.
type Game struct {
	Config types.Config
	Grid   types.Grid

	snake        *entity.Snake
	collisionMgr *manager.CollisionManager
	foodMgr      *manager.FoodManager
	stateMgr     *manager.StateManager
	log          *logger.Logger
	quit         bool
	ticks        int
}

// Snapshot is a read-only copy of everything a frame needs.
type Snapshot struct {
	Grid       types.Grid
	Body       []types.Point
	SnakeColor color.RGBA
	Direction  types.Direction
	Food       entity.Food
	Score      int
	BestScore  int
	State      manager.State
	RoundID    string
	Tick       int
}

func (s Snapshot) GameOver() bool {
	return s.State == manager.GameOver
}

func NewGame(cfg types.Config, log *logger.Logger) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	grid := cfg.Grid()
	collisionMgr := manager.NewCollisionManager(grid)
	g := &Game{
		Config:       cfg,
		Grid:         grid,
		snake:        entity.NewSnake(grid),
		collisionMgr: collisionMgr,
		foodMgr:      manager.NewFoodManager(grid, collisionMgr, cfg.Seed),
		stateMgr:     manager.NewStateManager(log),
		log:          log,
	}
	g.foodMgr.Relocate(g.snake)
	return g, nil
}

// HandleInput applies the commands drained for this tick in arrival order.
// Later direction commands overwrite earlier ones, each one checked against
// the heading at the time it is applied.
func (g *Game) HandleInput(cmds []Command) {
	for _, cmd := range cmds {
		switch cmd {
		case CmdQuit:
			g.quit = true
		case CmdRestart:
			if !g.stateMgr.IsRunning() {
				g.Restart()
			}
		default:
			if d, ok := cmd.Direction(); ok && g.stateMgr.IsRunning() {
				g.snake.SetDirection(d)
			}
		}
	}
}

// Tick advances the simulation by one step. It does nothing after the
// round is over.
func (g *Game) Tick() {
	if !g.stateMgr.IsRunning() {
		return
	}
	g.ticks++

	if !g.snake.Step() {
		g.stateMgr.EndRound(g.snake.Score, manager.EndSelfCollision)
		return
	}

	if g.collisionMgr.IsFoodCollision(g.snake.Head(), g.foodMgr.Food()) {
		g.snake.Grow()
		if !g.foodMgr.Relocate(g.snake) {
			g.log.Warn("no free cell left for food")
			g.stateMgr.EndRound(g.snake.Score, manager.EndBoardFull)
		}
	}
}

// Restart resets the snake and food and starts a new round.
func (g *Game) Restart() {
	g.snake.Reset()
	g.foodMgr.Relocate(g.snake)
	g.ticks = 0
	g.stateMgr.StartRound()
}

func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Grid:       g.Grid,
		Body:       g.snake.Cells(),
		SnakeColor: g.snake.Color,
		Direction:  g.snake.Direction,
		Food:       *g.foodMgr.Food(),
		Score:      g.snake.Score,
		BestScore:  g.stateMgr.Stats().BestScore,
		State:      g.stateMgr.State(),
		RoundID:    g.stateMgr.RoundID(),
		Tick:       g.ticks,
	}
}

func (g *Game) State() manager.State {
	return g.stateMgr.State()
}

func (g *Game) Snake() *entity.Snake {
	return g.snake
}

func (g *Game) Food() *entity.Food {
	return g.foodMgr.Food()
}

func (g *Game) Stats() manager.SessionStats {
	return g.stateMgr.Stats()
}

// QuitRequested reports whether a quit command has been handled.
func (g *Game) QuitRequested() bool {
	return g.quit
}
