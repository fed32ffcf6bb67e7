package ai

import (
	"time"

	"snake-arena/game/types"
)

// Behavior decides the next motion of one agent from its local view. Each
// player gets its own instance; implementations may keep private state
// between calls.
type Behavior interface {
	AgentMove(view types.ScreenPart) types.Motion
}

// RightAgent always moves right.
type RightAgent struct{}

func (RightAgent) AgentMove(types.ScreenPart) types.Motion {
	return types.Right
}

// Clock supplies the current time to calendar-dependent agents.
type Clock func() time.Time

// TuesdayAgent moves up on Tuesdays and down on every other day, judged by
// the local calendar date of its clock.
type TuesdayAgent struct {
	Now Clock
}

func NewTuesdayAgent(now Clock) *TuesdayAgent {
	if now == nil {
		now = time.Now
	}
	return &TuesdayAgent{Now: now}
}

func (a *TuesdayAgent) AgentMove(types.ScreenPart) types.Motion {
	now := time.Now
	if a.Now != nil {
		now = a.Now
	}
	if now().Weekday() == time.Tuesday {
		return types.Up
	}
	return types.Down
}

// DefaultCycle is the sequence CycleAgent repeats when none is given.
var DefaultCycle = []types.Motion{types.Up, types.Up, types.Right, types.Down, types.Right}

// CycleAgent walks a fixed sequence of motions and wraps around.
type CycleAgent struct {
	cycle []types.Motion
	index int
}

func NewCycleAgent(cycle ...types.Motion) *CycleAgent {
	if len(cycle) == 0 {
		cycle = DefaultCycle
	}
	return &CycleAgent{cycle: append([]types.Motion(nil), cycle...)}
}

func (a *CycleAgent) AgentMove(types.ScreenPart) types.Motion {
	m := a.cycle[a.index]
	a.index = (a.index + 1) % len(a.cycle)
	return m
}

// StairAgent moves left once, up once, left twice, up twice, and so on. Each
// run is one longer than the previous run in the same direction.
type StairAgent struct {
	movesLeft   int
	movesUp     int
	direction   types.Motion
	moveCounter int
}

func NewStairAgent() *StairAgent {
	return &StairAgent{movesLeft: 1, movesUp: 1, direction: types.Left}
}

func (a *StairAgent) AgentMove(types.ScreenPart) types.Motion {
	if a.movesLeft == 0 {
		// zero value behaves like a fresh agent
		*a = *NewStairAgent()
	}
	a.moveCounter++
	if a.direction == types.Left {
		if a.moveCounter == a.movesLeft {
			a.moveCounter = 0
			a.movesLeft++
			a.direction = types.Up
		}
		return types.Left
	}
	if a.moveCounter == a.movesUp {
		a.moveCounter = 0
		a.movesUp++
		a.direction = types.Left
	}
	return types.Up
}
