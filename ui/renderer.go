package ui

import (
	"fmt"
	"gridsnake/game"
	"gridsnake/game/manager"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Theme is passed to the renderer instead of living in package state.
type Theme struct {
	FontSize   int32
	Background rl.Color
	GridLine   rl.Color
	Snake      rl.Color
	SnakeHead  rl.Color
	Food       rl.Color
	Text       rl.Color
}

func DefaultTheme(fontSize int32) Theme {
	return Theme{
		FontSize:   fontSize,
		Background: rl.Black,
		GridLine:   rl.Gray,
		Snake:      rl.Red,
		SnakeHead:  rl.Maroon,
		Food:       rl.Green,
		Text:       rl.White,
	}
}

const cellInset = 4

type Renderer struct {
	theme   Theme
	padding int32
	layout  Layout
}

func NewRenderer(theme Theme, padding int32) *Renderer {
	return &Renderer{theme: theme, padding: padding}
}

func (r *Renderer) Draw(b *game.Board, sm *manager.StateManager) {
	r.layout = ComputeLayout(int32(rl.GetScreenWidth()), int32(rl.GetScreenHeight()), r.padding, b.GetGridSize())

	rl.BeginDrawing()
	rl.ClearBackground(r.theme.Background)

	r.drawGrid(b.GetGridSize())
	r.drawSnake(b)
	food := b.GetFoodLoc()
	r.fillCell(food.X, food.Y, r.theme.Food)
	r.drawStatus(b, sm)

	rl.EndDrawing()
}

func (r *Renderer) drawGrid(gridSize uint) {
	l := r.layout
	for i := uint(0); i <= gridSize; i++ {
		off := float32(i) * l.CellSize
		rl.DrawLineV(
			rl.Vector2{X: l.OffsetX + off, Y: l.OffsetY},
			rl.Vector2{X: l.OffsetX + off, Y: l.OffsetY + l.GridLength},
			r.theme.GridLine)
		rl.DrawLineV(
			rl.Vector2{X: l.OffsetX, Y: l.OffsetY + off},
			rl.Vector2{X: l.OffsetX + l.GridLength, Y: l.OffsetY + off},
			r.theme.GridLine)
	}
}

func (r *Renderer) drawSnake(b *game.Board) {
	body := b.GetSnake().GetBody()
	for i, p := range body {
		color := r.theme.Snake
		if i == len(body)-1 {
			color = r.theme.SnakeHead
		}
		r.fillCell(p.X, p.Y, color)
	}
}

func (r *Renderer) fillCell(x, y uint, color rl.Color) {
	cx, cy := r.layout.CellOrigin(x, y)
	size := r.layout.CellSize - 2*cellInset
	if size < 1 {
		size = 1
	}
	rl.DrawRectangleRec(rl.Rectangle{X: cx + cellInset, Y: cy + cellInset, Width: size, Height: size}, color)
}

func (r *Renderer) drawStatus(b *game.Board, sm *manager.StateManager) {
	fontSize := r.theme.FontSize
	score := fmt.Sprintf("Score: %d  Best: %d", b.Score(), sm.GetHighScore())
	rl.DrawText(score, int32(r.layout.OffsetX), int32(r.layout.OffsetY)-fontSize-5, fontSize, r.theme.Text)

	var msg string
	switch sm.Screen() {
	case manager.ScreenTitle:
		msg = "W A S D to start"
	case manager.ScreenPaused:
		msg = "Paused"
	case manager.ScreenOver:
		msg = fmt.Sprintf("Game Over! Score %d - R to restart", sm.LastScore())
	default:
		return
	}
	textWidth := rl.MeasureText(msg, fontSize)
	rl.DrawText(msg,
		int32(r.layout.OffsetX+r.layout.GridLength/2)-textWidth/2,
		int32(r.layout.OffsetY+r.layout.GridLength/2)-fontSize/2,
		fontSize, r.theme.Text)
}
