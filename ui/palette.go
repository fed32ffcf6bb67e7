package ui

import (
	"fmt"
	"strings"

	"snake-arena/game/types"
)

// rgb is a renderer-neutral color.
type rgb struct {
	R, G, B uint8
}

var (
	playerColors = [types.NumPlayers]rgb{
		{R: 0, G: 228, B: 48},    // A
		{R: 0, G: 121, B: 241},   // B
		{R: 255, G: 161, B: 0},   // C
		{R: 200, G: 122, B: 255}, // D
	}
	appleColor = rgb{R: 230, G: 41, B: 55}
)

// standings is the last reported state of every player.
type standings [types.NumPlayers]struct {
	apples int
	lost   bool
}

func (s *standings) line(p types.Player) string {
	status := "alive"
	if s[p].lost {
		status = "lost"
	}
	return fmt.Sprintf("Agent %v: %d apples (%s)", p, s[p].apples, status)
}

func (s *standings) summary() string {
	parts := make([]string, 0, types.NumPlayers)
	for _, p := range types.Players {
		parts = append(parts, s.line(p))
	}
	return strings.Join(parts, " | ")
}
