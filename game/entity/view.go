package entity

import (
	"snake-arena/game/types"
)

// GetScreenPart copies the ViewSize x ViewSize window centered on pos out of
// the board. Off-board coordinates read as types.Outside. The result is a
// value, so later board writes never show through.
func GetScreenPart(b *Board, pos types.Point) types.ScreenPart {
	var part types.ScreenPart
	for j := 0; j < types.ViewSize; j++ {
		for i := 0; i < types.ViewSize; i++ {
			part[j][i] = b.At(types.Point{
				X: pos.X + i - types.ViewRadius,
				Y: pos.Y + j - types.ViewRadius,
			})
		}
	}
	return part
}
