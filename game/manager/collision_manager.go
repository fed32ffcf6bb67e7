package manager

import (
	"snake-arena/game/entity"
	"snake-arena/game/types"
)

// MoveResult is what happened to a snake after one resolved motion.
type MoveResult struct {
	Target    types.Point
	Moved     bool
	AteApple  bool
	Collision types.CollisionType
}

type CollisionManager struct {
	board *entity.Board
}

func NewCollisionManager(board *entity.Board) *CollisionManager {
	return &CollisionManager{
		board: board,
	}
}

// LocationAfterMotion offsets pos by one cell in the motion's direction.
func LocationAfterMotion(motion types.Motion, pos types.Point) types.Point {
	return pos.Add(motion.Delta())
}

// IsEdgeOfScreen reports whether pos lies off the board on either axis.
func (cm *CollisionManager) IsEdgeOfScreen(pos types.Point) bool {
	return !cm.board.InBounds(pos)
}

// CheckCollision classifies what snake would hit at pos.
func (cm *CollisionManager) CheckCollision(pos types.Point, snake *entity.Snake) types.CollisionType {
	if cm.IsEdgeOfScreen(pos) {
		return types.WallCollision
	}
	owner, ok := cm.board.At(pos).Owner()
	if !ok {
		return types.NoCollision
	}
	if owner == snake.Player {
		return types.SelfCollision
	}
	return types.TrailCollision
}

// HandleMovement resolves motion for snake at the given tick. Empty and
// apple cells are claimed with the snake's mark and the old cell keeps its
// trail. Any collision eliminates the snake and leaves the board untouched.
// Lost snakes are ignored.
func (cm *CollisionManager) HandleMovement(snake *entity.Snake, motion types.Motion, tick int) MoveResult {
	target := LocationAfterMotion(motion, snake.Position)
	result := MoveResult{Target: target}
	if snake.Lost {
		result.Collision = snake.LastCollisionType
		return result
	}

	if collision := cm.CheckCollision(target, snake); collision != types.NoCollision {
		snake.Eliminate(collision, tick)
		result.Collision = collision
		return result
	}

	result.AteApple = cm.board.At(target) == types.Apple
	cm.board.Set(target, snake.Mark())
	snake.Move(target)
	if result.AteApple {
		snake.Apples++
	}
	result.Moved = true
	return result
}
