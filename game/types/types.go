package types

import "fmt"

// View dimensions: a ScreenPart is ViewSize x ViewSize cells centered on the agent.
const (
	ViewRadius = 2
	ViewSize   = 2*ViewRadius + 1
	NumPlayers = 4
)

// Point is a board coordinate. X is the column, Y is the row.
type Point struct {
	X, Y int
}

// Add returns p shifted by d.
func (p Point) Add(d Point) Point {
	return Point{X: p.X + d.X, Y: p.Y + d.Y}
}

// Player identifies one of the four agents. The numeric order is the turn order.
type Player uint8

const (
	PlayerA Player = iota
	PlayerB
	PlayerC
	PlayerD
)

// Players lists every player in turn order.
var Players = [NumPlayers]Player{PlayerA, PlayerB, PlayerC, PlayerD}

func (p Player) String() string {
	return string(rune('A' + p))
}

// ParsePlayer maps "A".."D" to a Player.
func ParsePlayer(s string) (Player, error) {
	if len(s) == 1 && s[0] >= 'A' && s[0] < 'A'+NumPlayers {
		return Player(s[0] - 'A'), nil
	}
	return 0, fmt.Errorf("unknown player %q", s)
}

// Cell is the state of one board cell. Outside never appears on a board; it
// only marks off-board positions inside a ScreenPart.
type Cell uint8

const (
	Empty Cell = iota
	Apple
	Outside
	occupiedBase
)

// Occupied returns the trail cell owned by p.
func Occupied(p Player) Cell {
	return occupiedBase + Cell(p)
}

// Owner reports the player whose trail the cell holds.
func (c Cell) Owner() (Player, bool) {
	if c < occupiedBase || c >= occupiedBase+NumPlayers {
		return 0, false
	}
	return Player(c - occupiedBase), true
}

// IsOccupied reports whether the cell holds any player's trail.
func (c Cell) IsOccupied() bool {
	_, ok := c.Owner()
	return ok
}

// Symbol is the one-character rendering used by text layouts.
func (c Cell) Symbol() byte {
	switch c {
	case Empty:
		return '.'
	case Apple:
		return '@'
	case Outside:
		return '#'
	}
	if p, ok := c.Owner(); ok {
		return byte('A' + p)
	}
	return '?'
}

func (c Cell) String() string {
	switch c {
	case Empty:
		return "empty"
	case Apple:
		return "apple"
	case Outside:
		return "outside"
	}
	if p, ok := c.Owner(); ok {
		return p.String()
	}
	return fmt.Sprintf("Cell(%d)", uint8(c))
}

// CellFromSymbol is the inverse of Symbol for board cells. Outside is rejected.
func CellFromSymbol(b byte) (Cell, error) {
	switch {
	case b == '.':
		return Empty, nil
	case b == '@':
		return Apple, nil
	case b >= 'A' && b < 'A'+NumPlayers:
		return Occupied(Player(b - 'A')), nil
	}
	return Empty, fmt.Errorf("unknown cell symbol %q", b)
}

// ScreenPart is the local view of an agent, indexed [row][column]. The agent
// itself sits at [ViewRadius][ViewRadius].
type ScreenPart [ViewSize][ViewSize]Cell

// Center returns the cell under the agent.
func (s ScreenPart) Center() Cell {
	return s[ViewRadius][ViewRadius]
}

// Motion is a single-cell move request.
type Motion uint8

const (
	Up Motion = iota
	Down
	Left
	Right
)

// Motions lists every motion.
var Motions = [...]Motion{Up, Down, Left, Right}

// Delta converts a motion into a displacement. Up decrements the row.
func (m Motion) Delta() Point {
	switch m {
	case Up:
		return Point{X: 0, Y: -1}
	case Down:
		return Point{X: 0, Y: 1}
	case Left:
		return Point{X: -1, Y: 0}
	case Right:
		return Point{X: 1, Y: 0}
	default:
		return Point{}
	}
}

func (m Motion) String() string {
	switch m {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return fmt.Sprintf("Motion(%d)", uint8(m))
	}
}

// ParseMotion maps "up", "down", "left" or "right" to a Motion.
func ParseMotion(s string) (Motion, error) {
	for _, m := range Motions {
		if m.String() == s {
			return m, nil
		}
	}
	return 0, fmt.Errorf("unknown motion %q", s)
}

// CollisionType records why an agent was eliminated.
type CollisionType int

const (
	NoCollision CollisionType = iota
	WallCollision
	SelfCollision
	TrailCollision // another player's trail
)

func (c CollisionType) String() string {
	switch c {
	case NoCollision:
		return "none"
	case WallCollision:
		return "wall"
	case SelfCollision:
		return "self"
	case TrailCollision:
		return "trail"
	default:
		return fmt.Sprintf("CollisionType(%d)", int(c))
	}
}
