package game

import (
	"gridsnake/game/entity"
	"gridsnake/game/manager"
	"gridsnake/game/types"
	"time"

	"github.com/pkg/errors"
	"golang.org/x/exp/rand"
)

var (
	ErrInvalidGridSize  = errors.New("invalid grid size")
	ErrSpawnOutOfBounds = errors.New("snake spawn outside the grid")
)

// Board owns the grid, the food and the snake, and enforces every game rule.
// It is driven by a single loop and is not safe for concurrent use.
type Board struct {
	gridSize        uint
	foodLoc         types.GridCoord
	initSnakeCoords types.GridCoord
	snake           *entity.Snake

	collisionMgr *manager.CollisionManager
	foodMgr      *manager.FoodManager
}

type Option func(*boardOptions)

type boardOptions struct {
	gridSize   uint
	initCoords types.GridCoord
	rng        *rand.Rand
}

func WithGridSize(size uint) Option {
	return func(o *boardOptions) { o.gridSize = size }
}

func WithInitSnakeCoords(c types.GridCoord) Option {
	return func(o *boardOptions) { o.initCoords = c }
}

// WithRand sets the source used for food placement. Pass a seeded source to
// get a reproducible game.
func WithRand(rng *rand.Rand) Option {
	return func(o *boardOptions) { o.rng = rng }
}

func WithSeed(seed uint64) Option {
	return WithRand(rand.New(rand.NewSource(seed)))
}

// NewBoard builds a board with a single-cell snake at the spawn cell and
// places the first food.
func NewBoard(opts ...Option) (*Board, error) {
	o := boardOptions{
		gridSize:   types.DefaultGridSize,
		initCoords: types.DefaultSnakePos,
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.rng == nil {
		o.rng = rand.New(rand.NewSource(uint64(time.Now().UnixNano())))
	}

	// a 1x1 grid has no room for food next to the snake
	if o.gridSize < 2 {
		return nil, errors.Wrapf(ErrInvalidGridSize, "grid size %d", o.gridSize)
	}
	if o.initCoords.X >= o.gridSize || o.initCoords.Y >= o.gridSize {
		return nil, errors.Wrapf(ErrSpawnOutOfBounds, "spawn (%d,%d) on a %dx%d grid",
			o.initCoords.X, o.initCoords.Y, o.gridSize, o.gridSize)
	}

	collisionMgr := manager.NewCollisionManager(o.gridSize)
	b := &Board{
		gridSize:        o.gridSize,
		initSnakeCoords: o.initCoords,
		snake:           entity.NewSnake(o.initCoords),
		collisionMgr:    collisionMgr,
		foodMgr:         manager.NewFoodManager(o.gridSize, o.rng, collisionMgr),
	}
	if err := b.spawnNewFood(); err != nil {
		return nil, err
	}
	return b, nil
}

func (b *Board) GetGridSize() uint {
	return b.gridSize
}

func (b *Board) GetSnake() *entity.Snake {
	return b.snake
}

func (b *Board) GetFoodLoc() types.GridCoord {
	return b.foodLoc
}

// Score is the number of food cells eaten since the last reset.
func (b *Board) Score() int {
	return b.snake.Len() - 1
}

// WillCollide reports a wall or self collision at next.
func (b *Board) WillCollide(next types.GridCoord) bool {
	return b.collisionMgr.WillCollide(next, b.snake)
}

func (b *Board) spawnNewFood() error {
	food, err := b.foodMgr.GenerateFood(b.snake)
	if err != nil {
		return err
	}
	b.foodLoc = food
	return nil
}

// UpdateSnakeDir commits dir unless it reverses the snake. A single-cell
// snake may take any direction. Opposite ordinals are 2 apart, which is the
// only distance that stays above 1 after mod 3.
func (b *Board) UpdateSnakeDir(dir types.Direction) {
	if b.snake.Len() > 1 {
		diff := int(dir) - int(b.snake.GetDirection())
		if diff < 0 {
			diff = -diff
		}
		if diff%3 > 1 {
			return
		}
	}
	b.snake.SetDirection(dir)
}

// Update runs one tick. It returns false, leaving the board untouched, when
// the next move would hit a wall or the snake, or when eating would fill the
// last free cell.
func (b *Board) Update() bool {
	next := b.snake.NextHeadLocation()
	if b.WillCollide(next) {
		return false
	}

	hasEatenFood := next == b.foodLoc
	if hasEatenFood && b.collisionMgr.FreeCells(b.snake) <= 1 {
		return false
	}

	b.snake.Move(hasEatenFood)

	if hasEatenFood {
		// a free cell was checked above
		if err := b.spawnNewFood(); err != nil {
			panic(err)
		}
	}
	return true
}

// Reset replaces the snake with a fresh one at the spawn cell and places new
// food. It always succeeds.
func (b *Board) Reset() bool {
	b.snake = entity.NewSnake(b.initSnakeCoords)
	if err := b.spawnNewFood(); err != nil {
		return false
	}
	return true
}
