package manager

import (
	"time"

	"golang.org/x/exp/rand"

	"gridsnake/game/entity"
	"gridsnake/game/types"
)

type FoodManager struct {
	grid         types.Grid
	food         *entity.Food
	rng          *rand.Rand
	collisionMgr *CollisionManager
}

// NewFoodManager creates the food item. A zero seed uses the clock.
func NewFoodManager(grid types.Grid, collisionMgr *CollisionManager, seed uint64) *FoodManager {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return &FoodManager{
		grid:         grid,
		food:         entity.NewFood(types.FoodColor),
		rng:          rand.New(rand.NewSource(seed)),
		collisionMgr: collisionMgr,
	}
}

// Relocate moves the food to a uniformly random cell not covered by the
// snake. Draws are retried until one lands on a free cell, which terminates
// almost surely while any cell is free. When the body covers the whole grid
// there is nothing to draw, so the food stays put and Relocate returns false.
func (fm *FoodManager) Relocate(snake *entity.Snake) bool {
	if fm.collisionMgr.IsBoardFull(snake) {
		return false
	}
	fm.food.MoveTo(fm.GenerateFood(snake))
	return true
}

// GenerateFood draws a free cell. Callers must make sure one exists.
func (fm *FoodManager) GenerateFood(snake *entity.Snake) types.Point {
	for {
		food := types.Point{
			X: fm.rng.Intn(fm.grid.Width),
			Y: fm.rng.Intn(fm.grid.Height),
		}

		if fm.collisionMgr.ValidateSpawnPosition(food, snake) {
			return food
		}
	}
}

func (fm *FoodManager) Food() *entity.Food {
	return fm.food
}

func (fm *FoodManager) Position() types.Point {
	return fm.food.Position
}
