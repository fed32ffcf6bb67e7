package manager

import (
	"time"

	"snake-arena/game/entity"
	"snake-arena/game/types"

	"golang.org/x/exp/rand"
)

// Source is the random integer source the food manager draws coordinates
// from. *rand.Rand satisfies it.
type Source interface {
	Intn(n int) int
}

type FoodManager struct {
	newApplesEachStep int
	rng               Source
}

// NewFoodManager builds an apple generator. A nil rng falls back to a
// time-seeded generator.
func NewFoodManager(newApplesEachStep int, rng Source) *FoodManager {
	if rng == nil {
		rng = rand.New(rand.NewSource(uint64(time.Now().UnixNano())))
	}
	return &FoodManager{
		newApplesEachStep: newApplesEachStep,
		rng:               rng,
	}
}

// NewSeededSource returns a reproducible source for seed.
func NewSeededSource(seed uint64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// Update makes newApplesEachStep placement attempts. Each attempt picks a
// uniformly random cell and turns it into an apple only if it is empty;
// attempts on non-empty cells are wasted. It returns how many apples landed.
func (fm *FoodManager) Update(board *entity.Board) int {
	size := board.Size()
	placed := 0
	for i := 0; i < fm.newApplesEachStep; i++ {
		pos := types.Point{
			X: fm.rng.Intn(size),
			Y: fm.rng.Intn(size),
		}
		if board.At(pos) == types.Empty {
			board.Set(pos, types.Apple)
			placed++
		}
	}
	return placed
}

func (fm *FoodManager) NewApplesEachStep() int {
	return fm.newApplesEachStep
}
