package ui

import (
	"fmt"
	"sync"

	"snake-arena/game/entity"
	"snake-arena/game/types"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	borderPadding = 10
	windowWidth   = 1024
	windowHeight  = 768
)

// Renderer draws the arena in a raylib window. Draw and the report calls
// only store snapshots, so they are safe from the tick goroutine; Loop does
// the actual drawing and must run on the main goroutine.
type Renderer struct {
	mu        sync.Mutex
	board     *entity.Board
	standings standings
	title     string

	cellSize     int32
	screenWidth  int32
	screenHeight int32
	statsPanel   int32
	offsetX      int32
	offsetY      int32
}

func NewRenderer(title string) *Renderer {
	return &Renderer{title: title}
}

func (r *Renderer) Draw(b *entity.Board) {
	snapshot := b.Clone()
	r.mu.Lock()
	r.board = snapshot
	r.mu.Unlock()
}

func (r *Renderer) UpdateApples(p types.Player, count int) {
	r.mu.Lock()
	r.standings[p].apples = count
	r.mu.Unlock()
}

func (r *Renderer) UpdateLost(p types.Player, lost bool) {
	r.mu.Lock()
	r.standings[p].lost = lost
	r.mu.Unlock()
}

// Loop opens the window and renders the latest snapshot every frame until
// the window is closed or Q is pressed. The last board stays on screen after
// done is closed.
func (r *Renderer) Loop(done <-chan struct{}) {
	rl.InitWindow(windowWidth, windowHeight, r.title)
	rl.SetWindowState(rl.FlagWindowResizable)
	defer rl.CloseWindow()
	rl.SetTargetFPS(60)

	for !rl.WindowShouldClose() {
		if rl.IsKeyPressed(rl.KeyQ) {
			return
		}
		finished := false
		select {
		case <-done:
			finished = true
		default:
		}

		r.mu.Lock()
		board := r.board
		st := r.standings
		r.mu.Unlock()

		rl.BeginDrawing()
		rl.ClearBackground(rl.Black)
		if board != nil {
			r.updateDimensions(board.Size())
			r.drawBoard(board)
		}
		r.drawStatsPanel(&st, finished)
		rl.EndDrawing()
	}
}

func (r *Renderer) updateDimensions(size int) {
	r.screenWidth = int32(rl.GetScreenWidth())
	r.screenHeight = int32(rl.GetScreenHeight())
	r.statsPanel = r.screenWidth / 4

	availableWidth := r.screenWidth - r.statsPanel - borderPadding*2
	availableHeight := r.screenHeight - borderPadding*2
	r.cellSize = min(availableWidth, availableHeight) / int32(size)
	if r.cellSize < 1 {
		r.cellSize = 1
	}
	r.offsetX = borderPadding
	r.offsetY = (r.screenHeight - r.cellSize*int32(size)) / 2
}

func toColor(c rgb) rl.Color {
	return rl.Color{R: c.R, G: c.G, B: c.B, A: 255}
}

func (r *Renderer) drawBoard(b *entity.Board) {
	size := b.Size()
	total := r.cellSize * int32(size)
	rl.DrawRectangle(r.offsetX-1, r.offsetY-1, total+2, total+2, rl.DarkGray)

	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			px := r.offsetX + int32(x)*r.cellSize
			py := r.offsetY + int32(y)*r.cellSize
			cell := b.At(types.Point{X: x, Y: y})
			switch {
			case cell == types.Apple:
				rl.DrawRectangle(px, py, r.cellSize, r.cellSize, toColor(appleColor))
			case cell.IsOccupied():
				owner, _ := cell.Owner()
				rl.DrawRectangle(px, py, r.cellSize, r.cellSize, toColor(playerColors[owner]))
			}
			rl.DrawRectangleLines(px, py, r.cellSize, r.cellSize, rl.Gray)
		}
	}
}

func (r *Renderer) drawStatsPanel(st *standings, finished bool) {
	fontSize := max(r.screenHeight/40, 10)
	lineHeight := fontSize + fontSize/2
	statsX := r.screenWidth - r.statsPanel + 5
	statsY := int32(borderPadding)

	rl.DrawRectangle(statsX-5, 0, r.statsPanel, r.screenHeight, rl.DarkGray)
	rl.DrawText("Apples:", statsX, statsY, fontSize, rl.White)
	statsY += lineHeight
	for _, p := range types.Players {
		color := toColor(playerColors[p])
		rl.DrawText(fmt.Sprintf("Agent %v: %d", p, st[p].apples), statsX+5, statsY, fontSize, color)
		statsY += lineHeight
		if st[p].lost {
			rl.DrawText("  lost", statsX+5, statsY, fontSize, rl.LightGray)
			statsY += lineHeight
		}
	}
	if finished {
		rl.DrawText("Game over", statsX, r.screenHeight-2*lineHeight, fontSize, rl.White)
	}
}
