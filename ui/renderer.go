package ui

import (
	"fmt"
	"image/color"

	rl "github.com/gen2brain/raylib-go/raylib"

	"gridsnake/game"
	"gridsnake/game/types"
)

const (
	fontSize        = 20
	scorePadding    = 5
	gameOverMessage = "Game Over, press SPACE to restart"
)

var gridColor = rl.Color{R: 40, G: 40, B: 40, A: 255}

// Renderer draws snapshots into the raylib window.
type Renderer struct {
	cellSize     int32
	screenWidth  int32
	screenHeight int32
}

func NewRenderer(cfg types.Config) *Renderer {
	return &Renderer{
		cellSize:     int32(cfg.CellPixelSize),
		screenWidth:  int32(cfg.ScreenWidth()),
		screenHeight: int32(cfg.ScreenHeight()),
	}
}

func (r *Renderer) Draw(s game.Snapshot) {
	rl.BeginDrawing()
	rl.ClearBackground(rl.Black)

	r.drawGrid()

	for _, p := range s.Body {
		r.drawCell(p, s.SnakeColor)
	}
	r.drawCell(s.Food.Position, s.Food.Color)

	rl.DrawText(fmt.Sprintf("Score: %d", s.Score), scorePadding, scorePadding, fontSize, rl.White)

	if s.GameOver() {
		textWidth := rl.MeasureText(gameOverMessage, fontSize)
		rl.DrawText(gameOverMessage,
			(r.screenWidth-textWidth)/2,
			(r.screenHeight-fontSize)/2,
			fontSize, rl.White)
	}

	rl.EndDrawing()
}

// ShouldClose reports a window close request (close button or ESC).
func (r *Renderer) ShouldClose() bool {
	return rl.WindowShouldClose()
}

func (r *Renderer) drawGrid() {
	for x := int32(0); x < r.screenWidth; x += r.cellSize {
		rl.DrawLine(x, 0, x, r.screenHeight, gridColor)
	}
	for y := int32(0); y < r.screenHeight; y += r.cellSize {
		rl.DrawLine(0, y, r.screenWidth, y, gridColor)
	}
}

// drawCell fills a cell and outlines it with a 1px black border.
func (r *Renderer) drawCell(p types.Point, c color.RGBA) {
	x := int32(p.X) * r.cellSize
	y := int32(p.Y) * r.cellSize
	rl.DrawRectangle(x, y, r.cellSize, r.cellSize, rl.Color(c))
	rl.DrawRectangleLines(x, y, r.cellSize, r.cellSize, rl.Black)
}
