package entity

import (
	"image/color"

	"gridsnake/game/types"
)

// Snake is an ordered run of cells, head first.
type Snake struct {
	Body      []types.Point
	Direction types.Direction
	Length    int // target length; Body catches up one cell per step
	Score     int
	Color     color.RGBA

	grid types.Grid
}

func NewSnake(grid types.Grid) *Snake {
	s := &Snake{grid: grid, Color: types.SnakeColor}
	s.Reset()
	return s
}

// Reset puts the snake back at the grid center, one cell long, heading right.
func (s *Snake) Reset() {
	s.Body = []types.Point{s.grid.Center()}
	s.Direction = types.Right
	s.Length = 1
	s.Score = 0
}

func (s *Snake) Head() types.Point {
	return s.Body[0]
}

// SetDirection changes the heading unless d would reverse the snake onto
// itself. It reports whether the heading was accepted.
func (s *Snake) SetDirection(d types.Direction) bool {
	if d == s.Direction.Opposite() {
		return false
	}
	s.Direction = d
	return true
}

// Step advances the snake one cell. It returns false without moving when the
// new head would land on the body. The tail cell counts as body even though
// it would be vacated on this step.
func (s *Snake) Step() bool {
	newHead := s.grid.Move(s.Head(), s.Direction)

	for _, part := range s.Body[1:] {
		if part == newHead {
			return false
		}
	}

	s.Body = append(s.Body, types.Point{})
	copy(s.Body[1:], s.Body)
	s.Body[0] = newHead
	if len(s.Body) > s.Length {
		s.Body = s.Body[:s.Length]
	}
	return true
}

// Grow lengthens the snake by one on the next step and scores a point.
func (s *Snake) Grow() {
	s.Length++
	s.Score++
}

func (s *Snake) Occupies(p types.Point) bool {
	for _, part := range s.Body {
		if part == p {
			return true
		}
	}
	return false
}

// Cells returns a copy of the body.
func (s *Snake) Cells() []types.Point {
	body := make([]types.Point, len(s.Body))
	copy(body, s.Body)
	return body
}
