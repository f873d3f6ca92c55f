package manager

import (
	"gridsnake/game/entity"
	"gridsnake/game/types"
)

type CollisionManager struct {
	gridSize uint
}

func NewCollisionManager(gridSize uint) *CollisionManager {
	return &CollisionManager{
		gridSize: gridSize,
	}
}

// WillCollide reports whether pos is outside the grid or already occupied by
// the snake. The current body is checked as is, so the cell the tail is about
// to vacate still counts as occupied.
func (cm *CollisionManager) WillCollide(pos types.GridCoord, snake *entity.Snake) bool {
	return cm.isWallCollision(pos) || snake.HasSnake(pos)
}

// isWallCollision only checks the upper bound; a coordinate that stepped
// below zero has wrapped around and fails the same test.
func (cm *CollisionManager) isWallCollision(pos types.GridCoord) bool {
	return pos.X >= cm.gridSize || pos.Y >= cm.gridSize
}

// ValidateSpawnPosition checks if pos is a free cell inside the grid.
func (cm *CollisionManager) ValidateSpawnPosition(pos types.GridCoord, snake *entity.Snake) bool {
	return !cm.WillCollide(pos, snake)
}

// FreeCells is the number of grid cells not covered by the snake.
func (cm *CollisionManager) FreeCells(snake *entity.Snake) int {
	return int(cm.gridSize*cm.gridSize) - snake.Len()
}
