package ui

import (
	"strings"
	"testing"
	"time"

	"snake-arena/game/entity"
	"snake-arena/game/types"

	"github.com/gdamore/tcell/v2"
)

func newSimScreen(t *testing.T) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("init simulation screen: %v", err)
	}
	screen.SetSize(40, 20)
	return screen
}

func screenRow(screen tcell.Screen, y, width int) string {
	var sb strings.Builder
	for x := 0; x < width; x++ {
		r, _, _, _ := screen.GetContent(x, y)
		sb.WriteRune(r)
	}
	return sb.String()
}

func TestTerminalRendererDrawsBoard(t *testing.T) {
	screen := newSimScreen(t)
	defer screen.Fini()
	b, err := entity.ParseBoard([]string{"A.@", ".B.", "C.D"})
	if err != nil {
		t.Fatal(err)
	}
	tr := NewTerminalRenderer(screen, "arena")
	tr.Draw(b)

	if got := screenRow(screen, 0, 5); got != "arena" {
		t.Fatalf("title row = %q", got)
	}
	want := []string{"A . @ ", ". B . ", "C . D "}
	for y, w := range want {
		if got := screenRow(screen, y+1, len(w)); got != w {
			t.Fatalf("board row %d = %q, want %q", y, got, w)
		}
	}
}

func TestTerminalRendererStandings(t *testing.T) {
	screen := newSimScreen(t)
	defer screen.Fini()
	b, _ := entity.NewBoard(2)
	tr := NewTerminalRenderer(screen, "arena")
	tr.Draw(b)
	tr.UpdateLost(types.PlayerC, true)
	tr.UpdateApples(types.PlayerC, 4)

	// title + 2 board rows + blank line, then A, B, C.
	line := screenRow(screen, 4+int(types.PlayerC), 40)
	if !strings.HasPrefix(line, "Agent C: 4 apples (lost)") {
		t.Fatalf("standing line = %q", line)
	}
}

func TestTerminalRendererPollQuit(t *testing.T) {
	screen := newSimScreen(t)
	defer screen.Fini()
	tr := NewTerminalRenderer(screen, "arena")

	quit := make(chan struct{})
	go tr.PollQuit(func() { close(quit) })
	screen.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)

	select {
	case <-quit:
	case <-time.After(2 * time.Second):
		t.Fatal("q did not trigger quit")
	}
}
