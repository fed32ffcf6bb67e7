package entity

import (
	"errors"
	"testing"

	"snake-arena/game/types"
)

func TestNewBoardRejectsNonPositiveSize(t *testing.T) {
	for _, size := range []int{0, -3} {
		if _, err := NewBoard(size); !errors.Is(err, ErrInvalidBoard) {
			t.Fatalf("NewBoard(%d) err = %v, want ErrInvalidBoard", size, err)
		}
	}
}

func TestNewBoardStartsEmpty(t *testing.T) {
	b, err := NewBoard(4)
	if err != nil {
		t.Fatal(err)
	}
	if got := b.Count(types.Empty); got != 16 {
		t.Fatalf("empty cells = %d, want 16", got)
	}
}

func TestParseBoardRoundTripsRows(t *testing.T) {
	rows := []string{
		"A.@",
		".B.",
		"@.D",
	}
	b, err := ParseBoard(rows)
	if err != nil {
		t.Fatal(err)
	}
	if b.Size() != 3 {
		t.Fatalf("size = %d, want 3", b.Size())
	}
	if got := b.At(types.Point{X: 2, Y: 0}); got != types.Apple {
		t.Fatalf("At(2,0) = %v, want apple", got)
	}
	if got := b.At(types.Point{X: 1, Y: 1}); got != types.Occupied(types.PlayerB) {
		t.Fatalf("At(1,1) = %v, want B", got)
	}
	got := b.Rows()
	for i := range rows {
		if got[i] != rows[i] {
			t.Fatalf("row %d = %q, want %q", i, got[i], rows[i])
		}
	}
}

func TestParseBoardErrors(t *testing.T) {
	cases := map[string][]string{
		"empty":   nil,
		"ragged":  {"..", "."},
		"wide":    {"...", "...", "....."},
		"symbol":  {"..", ".x"},
		"outside": {"#.", ".."},
	}
	for name, rows := range cases {
		t.Run(name, func(t *testing.T) {
			if _, err := ParseBoard(rows); !errors.Is(err, ErrInvalidBoard) {
				t.Fatalf("err = %v, want ErrInvalidBoard", err)
			}
		})
	}
}

func TestBoardAtOffBoardIsOutside(t *testing.T) {
	b, _ := NewBoard(3)
	for _, p := range []types.Point{{X: -1, Y: 0}, {X: 0, Y: -1}, {X: 3, Y: 0}, {X: 0, Y: 3}} {
		if got := b.At(p); got != types.Outside {
			t.Fatalf("At(%v) = %v, want outside", p, got)
		}
	}
}

func TestBoardSetIgnoresOffBoardAndOutside(t *testing.T) {
	b, _ := NewBoard(2)
	b.Set(types.Point{X: 5, Y: 5}, types.Apple)
	b.Set(types.Point{X: 0, Y: 0}, types.Outside)
	if got := b.Count(types.Empty); got != 4 {
		t.Fatalf("empty cells = %d, want 4", got)
	}
}

func TestCloneIsIndependent(t *testing.T) {
	b, _ := NewBoard(2)
	c := b.Clone()
	c.Set(types.Point{X: 1, Y: 1}, types.Apple)
	if b.At(types.Point{X: 1, Y: 1}) != types.Empty {
		t.Fatal("writing the clone changed the original")
	}
}

func TestStartPositionsAreCorners(t *testing.T) {
	got := StartPositions(5)
	want := [types.NumPlayers]types.Point{{X: 0, Y: 0}, {X: 4, Y: 0}, {X: 0, Y: 4}, {X: 4, Y: 4}}
	if got != want {
		t.Fatalf("StartPositions(5) = %v, want %v", got, want)
	}
}

func TestEliminateFreezesFirstCause(t *testing.T) {
	s := NewSnake(types.PlayerC, types.Point{})
	s.Eliminate(types.WallCollision, 3)
	s.Eliminate(types.TrailCollision, 9)
	if !s.Lost || s.LastCollisionType != types.WallCollision || s.LostAt != 3 {
		t.Fatalf("snake = %+v, want lost by wall at tick 3", s)
	}
}
