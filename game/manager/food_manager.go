package manager

import (
	"gridsnake/game/entity"
	"gridsnake/game/types"

	"github.com/pkg/errors"
	"golang.org/x/exp/rand"
)

// ErrBoardFull is returned when the snake covers every cell and there is
// nowhere left to put food.
var ErrBoardFull = errors.New("no free cell left for food")

type FoodManager struct {
	gridSize     uint
	rng          *rand.Rand
	collisionMgr *CollisionManager
}

func NewFoodManager(gridSize uint, rng *rand.Rand, collisionMgr *CollisionManager) *FoodManager {
	return &FoodManager{
		gridSize:     gridSize,
		rng:          rng,
		collisionMgr: collisionMgr,
	}
}

// GenerateFood samples uniform cells until one is free. The expected number
// of draws is gridSize² / free cells.
func (fm *FoodManager) GenerateFood(snake *entity.Snake) (types.GridCoord, error) {
	if fm.collisionMgr.FreeCells(snake) <= 0 {
		return types.GridCoord{}, ErrBoardFull
	}

	for {
		food := types.GridCoord{
			X: uint(fm.rng.Intn(int(fm.gridSize))),
			Y: uint(fm.rng.Intn(int(fm.gridSize))),
		}

		if fm.collisionMgr.ValidateSpawnPosition(food, snake) {
			return food, nil
		}
	}
}
