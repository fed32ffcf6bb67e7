package ui

import (
	"fmt"
	"io"
	"sync"

	"snake-arena/game/entity"
	"snake-arena/game/types"
)

// TextRenderer prints every frame as rows of cell symbols followed by a
// standings line once the last player has been reported.
type TextRenderer struct {
	mu        sync.Mutex
	w         io.Writer
	frame     int
	standings standings
}

func NewTextRenderer(w io.Writer) *TextRenderer {
	return &TextRenderer{w: w}
}

func (t *TextRenderer) Draw(b *entity.Board) {
	t.mu.Lock()
	defer t.mu.Unlock()
	fmt.Fprintf(t.w, "frame %d\n%s\n", t.frame, b)
	t.frame++
}

func (t *TextRenderer) UpdateLost(p types.Player, lost bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.standings[p].lost = lost
}

// UpdateApples records the count; reports arrive in turn order, so the last
// player's report closes the frame.
func (t *TextRenderer) UpdateApples(p types.Player, count int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.standings[p].apples = count
	if p == types.Players[types.NumPlayers-1] {
		fmt.Fprintln(t.w, t.standings.summary())
	}
}
