package manager

import (
	"sync"

	"snake-arena/game/types"
)

// PlayerStats is the reported standing of one player.
type PlayerStats struct {
	Player    types.Player        `json:"player"`
	Apples    int                 `json:"apples"`
	Lost      bool                `json:"lost"`
	LostAt    int                 `json:"lostAt,omitempty"`
	Collision types.CollisionType `json:"collision,omitempty"`
}

// StateManager keeps the latest reported stats of every player. It
// satisfies the game's reporter contract and is safe to read from another
// goroutine while a run is in progress.
type StateManager struct {
	mu      sync.RWMutex
	players [types.NumPlayers]PlayerStats
	ticks   int
}

func NewStateManager() *StateManager {
	sm := &StateManager{}
	for _, p := range types.Players {
		sm.players[p].Player = p
	}
	return sm
}

func (sm *StateManager) UpdateApples(player types.Player, count int) {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.players[player].Apples = count
}

func (sm *StateManager) UpdateLost(player types.Player, lost bool) {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.players[player].Lost = lost
}

// RecordElimination stores when and how a player was eliminated.
func (sm *StateManager) RecordElimination(player types.Player, collision types.CollisionType, tick int) {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.players[player].Lost = true
	sm.players[player].LostAt = tick
	sm.players[player].Collision = collision
}

// SetTicks records how many ticks have completed.
func (sm *StateManager) SetTicks(ticks int) {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.ticks = ticks
}

func (sm *StateManager) Ticks() int {
	sm.mu.RLock()
	defer sm.mu.RUnlock()
	return sm.ticks
}

// Get returns the stats of one player.
func (sm *StateManager) Get(player types.Player) PlayerStats {
	sm.mu.RLock()
	defer sm.mu.RUnlock()
	return sm.players[player]
}

// Summary returns every player's stats in turn order.
func (sm *StateManager) Summary() []PlayerStats {
	sm.mu.RLock()
	defer sm.mu.RUnlock()
	out := make([]PlayerStats, len(sm.players))
	copy(out, sm.players[:])
	return out
}

// Alive counts the players not yet lost.
func (sm *StateManager) Alive() int {
	sm.mu.RLock()
	defer sm.mu.RUnlock()
	n := 0
	for _, p := range sm.players {
		if !p.Lost {
			n++
		}
	}
	return n
}

// Leaders returns the players holding the most apples, in turn order.
func (sm *StateManager) Leaders() []types.Player {
	sm.mu.RLock()
	defer sm.mu.RUnlock()
	best := -1
	var leaders []types.Player
	for _, p := range sm.players {
		switch {
		case p.Apples > best:
			best = p.Apples
			leaders = []types.Player{p.Player}
		case p.Apples == best:
			leaders = append(leaders, p.Player)
		}
	}
	return leaders
}
