package entity

import (
	"gridsnake/game/types"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pt(x, y uint) types.GridCoord {
	return types.GridCoord{X: x, Y: y}
}

func TestNewSnake(t *testing.T) {
	s := NewSnake(pt(3, 4))
	assert.Equal(t, pt(3, 4), s.GetHead())
	assert.Equal(t, []types.GridCoord{pt(3, 4)}, s.GetBody())
	assert.Equal(t, types.NoDirection, s.GetDirection())
	assert.Equal(t, 1, s.Len())
}

func TestSnake_NextHeadLocation(t *testing.T) {
	tests := []struct {
		dir  types.Direction
		want types.GridCoord
	}{
		{types.North, pt(5, 4)},
		{types.East, pt(6, 5)},
		{types.South, pt(5, 6)},
		{types.West, pt(4, 5)},
	}
	for _, tt := range tests {
		t.Run(tt.dir.String(), func(t *testing.T) {
			s := NewSnake(pt(5, 5))
			s.SetDirection(tt.dir)
			assert.Equal(t, tt.want, s.NextHeadLocation())
			// pure: nothing moved
			assert.Equal(t, pt(5, 5), s.GetHead())
		})
	}
}

func TestSnake_MoveWithoutFoodDropsTail(t *testing.T) {
	s := &Snake{
		head:      pt(3, 1),
		body:      []types.GridCoord{pt(1, 1), pt(2, 1), pt(3, 1)},
		direction: types.East,
	}
	s.Move(false)

	assert.Equal(t, pt(4, 1), s.GetHead())
	assert.Equal(t, []types.GridCoord{pt(2, 1), pt(3, 1), pt(4, 1)}, s.GetBody())
}

func TestSnake_MoveWithFoodGrows(t *testing.T) {
	s := &Snake{
		head:      pt(3, 1),
		body:      []types.GridCoord{pt(1, 1), pt(2, 1), pt(3, 1)},
		direction: types.South,
	}
	s.Move(true)

	assert.Equal(t, pt(3, 2), s.GetHead())
	assert.Equal(t, []types.GridCoord{pt(1, 1), pt(2, 1), pt(3, 1), pt(3, 2)}, s.GetBody())
}

func TestSnake_SingleCellGrowth(t *testing.T) {
	s := NewSnake(pt(9, 9))
	s.SetDirection(types.East)
	s.Move(true)
	require.Equal(t, 2, s.Len())
	assert.Equal(t, []types.GridCoord{pt(9, 9), pt(10, 9)}, s.GetBody())

	s.Move(false)
	assert.Equal(t, []types.GridCoord{pt(10, 9), pt(11, 9)}, s.GetBody())
}

func TestSnake_HeadIsLastBodyCell(t *testing.T) {
	s := NewSnake(pt(2, 2))
	moves := []struct {
		dir types.Direction
		eat bool
	}{
		{types.East, true}, {types.East, false}, {types.South, true},
		{types.South, false}, {types.West, true}, {types.North, false},
	}
	for _, m := range moves {
		s.SetDirection(m.dir)
		before := s.Len()
		s.Move(m.eat)
		body := s.GetBody()
		assert.Equal(t, s.GetHead(), body[len(body)-1])
		if m.eat {
			assert.Equal(t, before+1, s.Len())
		} else {
			assert.Equal(t, before, s.Len())
		}
	}
}

func TestSnake_HasSnake(t *testing.T) {
	s := &Snake{
		head: pt(2, 2),
		body: []types.GridCoord{pt(1, 1), pt(1, 2), pt(2, 2)},
	}
	assert.True(t, s.HasSnake(pt(1, 1)))
	assert.True(t, s.HasSnake(pt(1, 2)))
	assert.True(t, s.HasSnake(pt(2, 2)))
	assert.False(t, s.HasSnake(pt(2, 1)))
}

func TestSnake_GetBodyIsACopy(t *testing.T) {
	s := NewSnake(pt(0, 0))
	body := s.GetBody()
	body[0] = pt(7, 7)
	assert.Equal(t, pt(0, 0), s.GetBody()[0])
}

func TestSnake_Clone(t *testing.T) {
	s := NewSnake(pt(4, 4))
	s.SetDirection(types.North)
	c := s.Clone()
	require.Equal(t, s, c)

	c.Move(true)
	assert.Equal(t, 1, s.Len())
	assert.Equal(t, pt(4, 4), s.GetHead())
}
