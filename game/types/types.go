package types

import (
	"image/color"
	"time"

	"github.com/pkg/errors"
)

// Point is a cell on the grid.
type Point struct {
	X, Y int
}

// Add returns the component-wise sum without wrapping.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Grid represents the game grid dimensions. The grid is a torus: leaving one
// edge re-enters on the opposite edge.
type Grid struct {
	Width  int
	Height int
}

// Wrap maps any point into [0, Width) x [0, Height).
func (g Grid) Wrap(p Point) Point {
	return Point{X: wrap(p.X, g.Width), Y: wrap(p.Y, g.Height)}
}

// Move returns the cell one step from p in direction d.
func (g Grid) Move(p Point, d Direction) Point {
	return g.Wrap(p.Add(d.Delta()))
}

// Center is the spawn cell, (Width/2, Height/2).
func (g Grid) Center() Point {
	return Point{X: g.Width / 2, Y: g.Height / 2}
}

// Cells is the number of cells on the board.
func (g Grid) Cells() int {
	return g.Width * g.Height
}

// Contains reports whether p lies on the board without wrapping.
func (g Grid) Contains(p Point) bool {
	return p.X >= 0 && p.X < g.Width && p.Y >= 0 && p.Y < g.Height
}

func wrap(v, n int) int {
	v %= n
	if v < 0 {
		v += n
	}
	return v
}

// Direction is one of the four cardinal headings.
type Direction int

const (
	Up Direction = iota
	Down
	Left
	Right
)

var deltas = [...]Point{
	Up:    {X: 0, Y: -1},
	Down:  {X: 0, Y: 1},
	Left:  {X: -1, Y: 0},
	Right: {X: 1, Y: 0},
}

// Delta converts a Direction into a unit displacement. Y grows downwards.
func (d Direction) Delta() Point {
	return deltas[d]
}

// Opposite returns the 180 degree reversal of d.
func (d Direction) Opposite() Direction {
	switch d {
	case Up:
		return Down
	case Down:
		return Up
	case Left:
		return Right
	default:
		return Left
	}
}

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	}
	return "unknown"
}

// Entity colors.
var (
	SnakeColor = color.RGBA{R: 0, G: 255, B: 0, A: 255}
	FoodColor  = color.RGBA{R: 255, G: 0, B: 0, A: 255}
)

// Config is built once at startup and passed down to every component.
type Config struct {
	GridWidth      int
	GridHeight     int
	CellPixelSize  int
	TicksPerSecond int
	Seed           uint64 // 0 picks a time-based seed
}

// Defaults: 600x600 window, 20px cells, 10 ticks per second.
const (
	DefaultGridWidth      = 30
	DefaultGridHeight     = 30
	DefaultCellPixelSize  = 20
	DefaultTicksPerSecond = 10

	// MinGridCells is one cell for the snake plus one for food.
	MinGridCells = 2
)

func DefaultConfig() Config {
	return Config{
		GridWidth:      DefaultGridWidth,
		GridHeight:     DefaultGridHeight,
		CellPixelSize:  DefaultCellPixelSize,
		TicksPerSecond: DefaultTicksPerSecond,
	}
}

// Validate reports the first invalid field.
func (c Config) Validate() error {
	if c.GridWidth <= 0 || c.GridHeight <= 0 {
		return errors.Errorf("grid must be at least 1x1, got %dx%d", c.GridWidth, c.GridHeight)
	}
	if c.GridWidth*c.GridHeight < MinGridCells {
		return errors.Errorf("grid needs room for the snake and its food, got %dx%d", c.GridWidth, c.GridHeight)
	}
	if c.CellPixelSize <= 0 {
		return errors.Errorf("cell size must be positive, got %d", c.CellPixelSize)
	}
	if c.TicksPerSecond <= 0 {
		return errors.Errorf("tick rate must be positive, got %d", c.TicksPerSecond)
	}
	return nil
}

func (c Config) Grid() Grid {
	return Grid{Width: c.GridWidth, Height: c.GridHeight}
}

func (c Config) ScreenWidth() int {
	return c.GridWidth * c.CellPixelSize
}

func (c Config) ScreenHeight() int {
	return c.GridHeight * c.CellPixelSize
}

// TickInterval is the fixed time between two simulation steps.
func (c Config) TickInterval() time.Duration {
	return time.Second / time.Duration(c.TicksPerSecond)
}
