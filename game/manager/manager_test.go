package manager

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"gridsnake/game/entity"
	"gridsnake/game/types"
	"gridsnake/logger"
)

func TestCollisionManager(t *testing.T) {
	grid := types.Grid{Width: 10, Height: 10}
	cm := NewCollisionManager(grid)
	snake := entity.NewSnake(grid)
	snake.Body = []types.Point{{X: 5, Y: 5}, {X: 4, Y: 5}, {X: 3, Y: 5}}
	snake.Length = 3

	if cm.ValidateSpawnPosition(types.Point{X: 4, Y: 5}, snake) {
		t.Error("body cell accepted as spawn")
	}
	if cm.ValidateSpawnPosition(types.Point{X: 10, Y: 0}, snake) {
		t.Error("out of bounds cell accepted as spawn")
	}
	if !cm.ValidateSpawnPosition(types.Point{X: 0, Y: 0}, snake) {
		t.Error("free cell rejected")
	}

	food := entity.NewFood(types.FoodColor)
	food.MoveTo(types.Point{X: 5, Y: 5})
	if !cm.IsFoodCollision(snake.Head(), food) {
		t.Error("head on food not detected")
	}
}

func TestRelocateAvoidsBody(t *testing.T) {
	grid := types.Grid{Width: 4, Height: 4}
	cm := NewCollisionManager(grid)
	fm := NewFoodManager(grid, cm, 42)

	snake := entity.NewSnake(grid)
	// Cover every cell but (3,3).
	snake.Body = nil
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			if x == 3 && y == 3 {
				continue
			}
			snake.Body = append(snake.Body, types.Point{X: x, Y: y})
		}
	}
	snake.Length = len(snake.Body)

	for i := 0; i < 20; i++ {
		if !fm.Relocate(snake) {
			t.Fatal("Relocate reported a full board")
		}
		if fm.Position() != (types.Point{X: 3, Y: 3}) {
			t.Fatalf("food placed on %v", fm.Position())
		}
	}
}

func TestRelocateNeverOnSnake(t *testing.T) {
	grid := types.Grid{Width: 30, Height: 30}
	cm := NewCollisionManager(grid)
	fm := NewFoodManager(grid, cm, 7)
	snake := entity.NewSnake(grid)
	for i := 0; i < 25; i++ {
		snake.Grow()
		snake.Step()
	}

	for i := 0; i < 500; i++ {
		fm.Relocate(snake)
		if snake.Occupies(fm.Position()) {
			t.Fatalf("food on body at %v", fm.Position())
		}
		if !grid.Contains(fm.Position()) {
			t.Fatalf("food out of bounds at %v", fm.Position())
		}
	}
}

func TestRelocateFullBoard(t *testing.T) {
	grid := types.Grid{Width: 2, Height: 1}
	cm := NewCollisionManager(grid)
	fm := NewFoodManager(grid, cm, 1)
	snake := entity.NewSnake(grid)
	snake.Body = []types.Point{{X: 0, Y: 0}, {X: 1, Y: 0}}
	snake.Length = 2
	fm.Food().MoveTo(types.Point{X: 1, Y: 0})

	if fm.Relocate(snake) {
		t.Error("Relocate succeeded on a full board")
	}
	if fm.Position() != (types.Point{X: 1, Y: 0}) {
		t.Errorf("food moved to %v", fm.Position())
	}
}

func TestSeededPlacementIsDeterministic(t *testing.T) {
	grid := types.Grid{Width: 30, Height: 30}
	a := NewFoodManager(grid, NewCollisionManager(grid), 99)
	b := NewFoodManager(grid, NewCollisionManager(grid), 99)
	snake := entity.NewSnake(grid)

	for i := 0; i < 10; i++ {
		a.Relocate(snake)
		b.Relocate(snake)
		if a.Position() != b.Position() {
			t.Fatalf("draw %d differs: %v vs %v", i, a.Position(), b.Position())
		}
	}
}

func TestStateManagerLifecycle(t *testing.T) {
	var out bytes.Buffer
	sm := NewStateManager(logger.New(&out, &out))
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	sm.now = func() time.Time { return start }
	sm.StartRound()

	if !sm.IsRunning() || sm.State() != Running {
		t.Fatalf("State() = %v", sm.State())
	}
	first := sm.RoundID()
	if first == "" {
		t.Fatal("empty round id")
	}

	sm.now = func() time.Time { return start.Add(3 * time.Second) }
	if !sm.EndRound(4, EndSelfCollision) {
		t.Fatal("EndRound refused a running round")
	}
	if sm.State() != GameOver {
		t.Errorf("State() = %v, want game_over", sm.State())
	}
	if sm.EndRound(9, EndSelfCollision) {
		t.Error("EndRound accepted an ended round")
	}

	stats := sm.Stats()
	if stats.RoundsPlayed != 1 || stats.BestScore != 4 || stats.LastScore != 4 {
		t.Errorf("stats = %+v", stats)
	}
	if !strings.Contains(out.String(), "reason=self_collision score=4 duration=3s best=4") {
		t.Errorf("round end not logged: %q", out.String())
	}

	sm.StartRound()
	if !sm.IsRunning() {
		t.Error("StartRound did not resume")
	}
	if sm.RoundID() == first {
		t.Error("round id reused")
	}

	sm.EndRound(2, EndBoardFull)
	if s := sm.Stats(); s.BestScore != 4 || s.LastScore != 2 || s.RoundsPlayed != 2 {
		t.Errorf("stats = %+v", s)
	}
}

func TestStateString(t *testing.T) {
	if Running.String() != "running" || GameOver.String() != "game_over" {
		t.Error("unexpected state names")
	}
}
