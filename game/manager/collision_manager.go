package manager

import (
	"gridsnake/game/entity"
	"gridsnake/game/types"
)

type CollisionManager struct {
	grid types.Grid
}

func NewCollisionManager(grid types.Grid) *CollisionManager {
	return &CollisionManager{
		grid: grid,
	}
}

// ValidateSpawnPosition checks if a position is free for food.
func (cm *CollisionManager) ValidateSpawnPosition(pos types.Point, snake *entity.Snake) bool {
	if !cm.grid.Contains(pos) {
		return false
	}
	return !snake.Occupies(pos)
}

// IsFoodCollision checks if a position collides with food
func (cm *CollisionManager) IsFoodCollision(pos types.Point, food *entity.Food) bool {
	return pos == food.Position
}

// IsBoardFull reports whether the snake covers every cell, leaving no room
// for food.
func (cm *CollisionManager) IsBoardFull(snake *entity.Snake) bool {
	return len(snake.Body) >= cm.grid.Cells()
}
