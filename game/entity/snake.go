package entity

import (
	"gridsnake/game/types"
)

// Snake is the body geometry of the player. It knows nothing about walls,
// food or the board; callers validate a move before committing it.
type Snake struct {
	head      types.GridCoord
	body      []types.GridCoord // tail first, head last
	direction types.Direction
}

func NewSnake(startPos types.GridCoord) *Snake {
	return &Snake{
		head:      startPos,
		body:      []types.GridCoord{startPos},
		direction: types.NoDirection,
	}
}

func (s *Snake) GetHead() types.GridCoord {
	return s.head
}

// GetBody returns a copy of the occupied cells, tail first.
func (s *Snake) GetBody() []types.GridCoord {
	body := make([]types.GridCoord, len(s.body))
	copy(body, s.body)
	return body
}

func (s *Snake) Len() int {
	return len(s.body)
}

func (s *Snake) GetDirection() types.Direction {
	return s.direction
}

func (s *Snake) SetDirection(dir types.Direction) {
	s.direction = dir
}

// NextHeadLocation is where the head lands on the next move. No bounds
// checking is done here.
func (s *Snake) NextHeadLocation() types.GridCoord {
	return s.direction.Step(s.head)
}

// Move advances the snake one cell as a queue: the new head is pushed at the
// end and the tail is dropped unless the snake has eaten.
func (s *Snake) Move(hasEatenFood bool) {
	s.head = s.NextHeadLocation()

	if hasEatenFood {
		s.body = append(s.body, s.head)
		return
	}

	for i := 1; i < len(s.body); i++ {
		s.body[i-1] = s.body[i]
	}
	s.body[len(s.body)-1] = s.head
}

// HasSnake reports whether any body cell equals here.
func (s *Snake) HasSnake(here types.GridCoord) bool {
	for _, part := range s.body {
		if part == here {
			return true
		}
	}
	return false
}

// Clone returns an independent copy of the snake.
func (s *Snake) Clone() *Snake {
	return &Snake{
		head:      s.head,
		body:      s.GetBody(),
		direction: s.direction,
	}
}
