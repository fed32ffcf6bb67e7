package manager

import (
	"testing"

	"snake-arena/game/entity"
	"snake-arena/game/types"
)

// scriptedSource replays fixed values, cycling when exhausted.
type scriptedSource struct {
	values []int
	next   int
}

func (s *scriptedSource) Intn(n int) int {
	v := s.values[s.next%len(s.values)] % n
	s.next++
	return v
}

func TestFoodManagerFullBoardPlacesNothing(t *testing.T) {
	b := mustBoard(t, "AB", "CD")
	fm := NewFoodManager(50, NewSeededSource(7))
	if placed := fm.Update(b); placed != 0 {
		t.Fatalf("placed = %d, want 0", placed)
	}
	if b.Count(types.Apple) != 0 {
		t.Fatal("apple written onto a full board")
	}
}

func TestFoodManagerNeverOverwrites(t *testing.T) {
	b := mustBoard(t, "A@", "..")
	// attempts: (0,0) occupied, (1,0) apple, (0,1) empty, (0,1) again
	src := &scriptedSource{values: []int{0, 0, 1, 0, 0, 1, 0, 1}}
	fm := NewFoodManager(4, src)
	if placed := fm.Update(b); placed != 1 {
		t.Fatalf("placed = %d, want 1", placed)
	}
	if got := b.Rows(); got[0] != "A@" || got[1] != "@." {
		t.Fatalf("board = %v", got)
	}
}

func TestFoodManagerSoftTarget(t *testing.T) {
	b, _ := entity.NewBoard(10)
	fm := NewFoodManager(30, NewSeededSource(42))
	placed := fm.Update(b)
	if placed < 1 || placed > 30 {
		t.Fatalf("placed = %d, want between 1 and 30", placed)
	}
	if got := b.Count(types.Apple); got != placed {
		t.Fatalf("apples on board = %d, reported %d", got, placed)
	}
}

func TestFoodManagerNegativeCount(t *testing.T) {
	b, _ := entity.NewBoard(3)
	if placed := NewFoodManager(-5, NewSeededSource(1)).Update(b); placed != 0 {
		t.Fatalf("placed = %d, want 0", placed)
	}
}

func TestFoodManagerSeededIsReproducible(t *testing.T) {
	b1, _ := entity.NewBoard(8)
	b2, _ := entity.NewBoard(8)
	NewFoodManager(12, NewSeededSource(99)).Update(b1)
	NewFoodManager(12, NewSeededSource(99)).Update(b2)
	if b1.String() != b2.String() {
		t.Fatalf("same seed gave different boards:\n%s\n\n%s", b1, b2)
	}
}
