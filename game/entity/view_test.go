package entity

import (
	"testing"

	"snake-arena/game/types"
)

func patternedBoard(t *testing.T, size int) *Board {
	t.Helper()
	b, err := NewBoard(size)
	if err != nil {
		t.Fatal(err)
	}
	// Deterministic non-empty pattern so mirrored cells can be told apart.
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			switch (x + 2*y) % 3 {
			case 1:
				b.Set(types.Point{X: x, Y: y}, types.Apple)
			case 2:
				b.Set(types.Point{X: x, Y: y}, types.Occupied(types.Player((x+y)%types.NumPlayers)))
			}
		}
	}
	return b
}

func TestScreenPartCenterMatchesBoard(t *testing.T) {
	b := patternedBoard(t, 7)
	for y := 0; y < 7; y++ {
		for x := 0; x < 7; x++ {
			p := types.Point{X: x, Y: y}
			if got := GetScreenPart(b, p).Center(); got != b.At(p) {
				t.Fatalf("center at %v = %v, want %v", p, got, b.At(p))
			}
		}
	}
}

func TestScreenPartInteriorHasNoOutside(t *testing.T) {
	b := patternedBoard(t, 9)
	for y := 2; y < 7; y++ {
		for x := 2; x < 7; x++ {
			part := GetScreenPart(b, types.Point{X: x, Y: y})
			for j := range part {
				for i := range part[j] {
					if part[j][i] == types.Outside {
						t.Fatalf("view at (%d,%d) has outside at [%d][%d]", x, y, j, i)
					}
				}
			}
		}
	}
}

func TestScreenPartMirrorsBoardOrOutside(t *testing.T) {
	const size = 6
	b := patternedBoard(t, size)
	positions := []types.Point{
		{X: 0, Y: 0}, {X: size - 1, Y: 0}, {X: 0, Y: size - 1}, {X: size - 1, Y: size - 1},
		{X: 1, Y: 0}, {X: 0, Y: 1}, {X: size - 2, Y: size - 1}, {X: 3, Y: 2},
	}
	for _, pos := range positions {
		part := GetScreenPart(b, pos)
		for j := 0; j < types.ViewSize; j++ {
			for i := 0; i < types.ViewSize; i++ {
				row := pos.Y + j - types.ViewRadius
				col := pos.X + i - types.ViewRadius
				off := row < 0 || col < 0 || row >= size || col >= size
				got := part[j][i]
				if off && got != types.Outside {
					t.Fatalf("pos %v [%d][%d]: got %v, want outside", pos, j, i, got)
				}
				if !off && got != b.At(types.Point{X: col, Y: row}) {
					t.Fatalf("pos %v [%d][%d]: got %v, want %v", pos, j, i, got, b.At(types.Point{X: col, Y: row}))
				}
			}
		}
	}
}

func TestScreenPartAtOriginCorner(t *testing.T) {
	b, _ := NewBoard(5)
	part := GetScreenPart(b, types.Point{X: 0, Y: 0})
	outside := 0
	for j := range part {
		for i := range part[j] {
			wantOutside := j < 2 || i < 2
			if (part[j][i] == types.Outside) != wantOutside {
				t.Fatalf("[%d][%d] = %v, outside expected %v", j, i, part[j][i], wantOutside)
			}
			if part[j][i] == types.Outside {
				outside++
			}
		}
	}
	if outside != 16 {
		t.Fatalf("outside cells = %d, want 16", outside)
	}
}

func TestScreenPartOnSingleCellBoard(t *testing.T) {
	b, _ := NewBoard(1)
	b.Set(types.Point{}, types.Occupied(types.PlayerD))
	part := GetScreenPart(b, types.Point{})
	for j := range part {
		for i := range part[j] {
			if j == types.ViewRadius && i == types.ViewRadius {
				continue
			}
			if part[j][i] != types.Outside {
				t.Fatalf("[%d][%d] = %v, want outside", j, i, part[j][i])
			}
		}
	}
	if part.Center() != types.Occupied(types.PlayerD) {
		t.Fatalf("center = %v, want D", part.Center())
	}
}

func TestScreenPartIsSnapshot(t *testing.T) {
	b, _ := NewBoard(5)
	part := GetScreenPart(b, types.Point{X: 2, Y: 2})
	b.Set(types.Point{X: 3, Y: 2}, types.Apple)
	if part[2][3] != types.Empty {
		t.Fatal("view changed after a later board write")
	}
}
