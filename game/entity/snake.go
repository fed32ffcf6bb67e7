package entity

import (
	"snake-arena/game/types"
)

// Snake is the per-agent record owned by the orchestrator. Once Lost is set
// the position is frozen and the snake never touches the board again.
type Snake struct {
	Player   types.Player
	Position types.Point
	Apples   int
	Lost     bool

	// LastCollisionType and LostAt describe the elimination; zero while alive.
	LastCollisionType types.CollisionType
	LostAt            int
}

func NewSnake(player types.Player, startPos types.Point) *Snake {
	return &Snake{
		Player:            player,
		Position:          startPos,
		LastCollisionType: types.NoCollision,
	}
}

// Move places the head on newHead. The vacated cell keeps the trail.
func (s *Snake) Move(newHead types.Point) {
	s.Position = newHead
}

// Eliminate marks the snake lost at the given tick.
func (s *Snake) Eliminate(cause types.CollisionType, tick int) {
	if s.Lost {
		return
	}
	s.Lost = true
	s.LastCollisionType = cause
	s.LostAt = tick
}

// Mark is the cell value this snake writes into its trail.
func (s *Snake) Mark() types.Cell {
	return types.Occupied(s.Player)
}

// StartPositions returns the corner each player starts on, in turn order:
// A top-left, B top-right, C bottom-left, D bottom-right.
func StartPositions(size int) [types.NumPlayers]types.Point {
	last := size - 1
	return [types.NumPlayers]types.Point{
		{X: 0, Y: 0},
		{X: last, Y: 0},
		{X: 0, Y: last},
		{X: last, Y: last},
	}
}
