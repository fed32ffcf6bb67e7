package ui

import (
	"fmt"
	"sync"

	"snake-arena/game/entity"
	"snake-arena/game/types"

	"github.com/gdamore/tcell/v2"
)

// TerminalRenderer draws the arena into a tcell screen, two columns per cell.
type TerminalRenderer struct {
	mu        sync.Mutex
	screen    tcell.Screen
	standings standings
	boardRows int
	title     string
}

// OpenTerminal takes over the controlling terminal.
func OpenTerminal(title string) (*TerminalRenderer, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("open terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("init terminal: %w", err)
	}
	return NewTerminalRenderer(screen, title), nil
}

// NewTerminalRenderer wraps an initialised screen.
func NewTerminalRenderer(screen tcell.Screen, title string) *TerminalRenderer {
	return &TerminalRenderer{screen: screen, title: title}
}

func styleFor(c types.Cell) (rune, tcell.Style) {
	style := tcell.StyleDefault
	switch {
	case c == types.Apple:
		return '@', style.Foreground(tcellColor(appleColor)).Bold(true)
	case c.IsOccupied():
		owner, _ := c.Owner()
		return rune(c.Symbol()), style.Foreground(tcell.ColorBlack).Background(tcellColor(playerColors[owner]))
	default:
		return '.', style.Foreground(tcell.ColorGray)
	}
}

func tcellColor(c rgb) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

func (t *TerminalRenderer) Draw(b *entity.Board) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.screen.Clear()
	t.putString(0, 0, t.title, tcell.StyleDefault.Bold(true))
	size := b.Size()
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			r, style := styleFor(b.At(types.Point{X: x, Y: y}))
			t.screen.SetContent(2*x, y+1, r, nil, style)
			t.screen.SetContent(2*x+1, y+1, ' ', nil, style)
		}
	}
	t.boardRows = size + 1
	t.drawStandings()
	t.screen.Show()
}

func (t *TerminalRenderer) UpdateApples(p types.Player, count int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.standings[p].apples = count
	t.drawStanding(p)
	t.screen.Show()
}

func (t *TerminalRenderer) UpdateLost(p types.Player, lost bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.standings[p].lost = lost
	t.drawStanding(p)
	t.screen.Show()
}

func (t *TerminalRenderer) drawStandings() {
	for _, p := range types.Players {
		t.drawStanding(p)
	}
}

func (t *TerminalRenderer) drawStanding(p types.Player) {
	y := t.boardRows + 1 + int(p)
	width, _ := t.screen.Size()
	for x := 0; x < width; x++ {
		t.screen.SetContent(x, y, ' ', nil, tcell.StyleDefault)
	}
	t.putString(0, y, t.standings.line(p), tcell.StyleDefault.Foreground(tcellColor(playerColors[p])))
}

func (t *TerminalRenderer) putString(x, y int, s string, style tcell.Style) {
	for i, r := range []rune(s) {
		t.screen.SetContent(x+i, y, r, nil, style)
	}
}

// PollQuit blocks reading terminal events and calls quit on q, Esc or
// Ctrl-C. It returns when quit was called or the screen is closed.
func (t *TerminalRenderer) PollQuit(quit func()) {
	for {
		ev := t.screen.PollEvent()
		switch ev := ev.(type) {
		case nil:
			return
		case *tcell.EventKey:
			if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC || ev.Rune() == 'q' {
				quit()
				return
			}
		case *tcell.EventResize:
			t.mu.Lock()
			t.screen.Sync()
			t.mu.Unlock()
		}
	}
}

// Close restores the terminal.
func (t *TerminalRenderer) Close() {
	t.screen.Fini()
}
