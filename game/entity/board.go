package entity

import (
	"errors"
	"fmt"
	"strings"

	"snake-arena/game/types"
)

var ErrInvalidBoard = errors.New("invalid board")

// Board is the square arena. Every cell holds exactly one types.Cell; the
// side length is fixed once the board is built.
type Board struct {
	size  int
	cells [][]types.Cell
}

func NewBoard(size int) (*Board, error) {
	if size < 1 {
		return nil, fmt.Errorf("%w: size %d", ErrInvalidBoard, size)
	}
	cells := make([][]types.Cell, size)
	for y := range cells {
		cells[y] = make([]types.Cell, size)
	}
	return &Board{size: size, cells: cells}, nil
}

// ParseBoard builds a board from row strings using the symbols of
// types.Cell.Symbol ('.' empty, '@' apple, 'A'-'D' trail).
func ParseBoard(rows []string) (*Board, error) {
	b, err := NewBoard(len(rows))
	if err != nil {
		return nil, err
	}
	for y, row := range rows {
		if len(row) != b.size {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrInvalidBoard, y, len(row), b.size)
		}
		for x := 0; x < len(row); x++ {
			c, err := types.CellFromSymbol(row[x])
			if err != nil {
				return nil, fmt.Errorf("%w: row %d col %d: %v", ErrInvalidBoard, y, x, err)
			}
			b.cells[y][x] = c
		}
	}
	return b, nil
}

func (b *Board) Size() int {
	return b.size
}

// InBounds checks both axes against both edges.
func (b *Board) InBounds(p types.Point) bool {
	return p.X >= 0 && p.Y >= 0 && p.X < b.size && p.Y < b.size
}

// At returns the cell at p, or types.Outside when p is off the board.
func (b *Board) At(p types.Point) types.Cell {
	if !b.InBounds(p) {
		return types.Outside
	}
	return b.cells[p.Y][p.X]
}

// Set writes c at p. Off-board writes are ignored.
func (b *Board) Set(p types.Point, c types.Cell) {
	if !b.InBounds(p) || c == types.Outside {
		return
	}
	b.cells[p.Y][p.X] = c
}

// Count returns the number of cells equal to c.
func (b *Board) Count(c types.Cell) int {
	n := 0
	for _, row := range b.cells {
		for _, cell := range row {
			if cell == c {
				n++
			}
		}
	}
	return n
}

// Clone returns a deep copy that shares nothing with b.
func (b *Board) Clone() *Board {
	cells := make([][]types.Cell, b.size)
	for y, row := range b.cells {
		cells[y] = append([]types.Cell(nil), row...)
	}
	return &Board{size: b.size, cells: cells}
}

// Rows renders the board in the ParseBoard format.
func (b *Board) Rows() []string {
	rows := make([]string, b.size)
	buf := make([]byte, b.size)
	for y, row := range b.cells {
		for x, cell := range row {
			buf[x] = cell.Symbol()
		}
		rows[y] = string(buf)
	}
	return rows
}

func (b *Board) String() string {
	return strings.Join(b.Rows(), "\n")
}
