package manager

import (
	"gridsnake/game/entity"
	"gridsnake/game/types"
)

// CollisionManager owns the one rule that decides whether a step is fatal:
// leaving the grid, or entering a cell the body still covers after the move.
type CollisionManager struct {
	grid types.Grid
}

func NewCollisionManager(grid types.Grid) *CollisionManager {
	return &CollisionManager{
		grid: grid,
	}
}

func (cm *CollisionManager) Grid() types.Grid {
	return cm.grid
}

// CheckCollision classifies a step of snake's head into pos
func (cm *CollisionManager) CheckCollision(pos types.Point, snake *entity.Snake) types.CollisionType {
	if cm.isWallCollision(pos) {
		return types.WallCollision
	}
	if snake.Blocks(pos) {
		return types.SelfCollision
	}
	return types.NoCollision
}

// CheckMove classifies the snake's next step with its current heading
func (cm *CollisionManager) CheckMove(snake *entity.Snake) types.CollisionType {
	if snake.CheckBoundaryCollision(cm.grid.Width, cm.grid.Height) {
		return types.WallCollision
	}
	if snake.CheckSelfCollision() {
		return types.SelfCollision
	}
	return types.NoCollision
}

// IsDanger reports whether stepping into pos would end the run
func (cm *CollisionManager) IsDanger(pos types.Point, snake *entity.Snake) bool {
	return cm.CheckCollision(pos, snake) != types.NoCollision
}

// isWallCollision checks if a position collides with walls
func (cm *CollisionManager) isWallCollision(pos types.Point) bool {
	return !cm.grid.Contains(pos)
}

// ValidateSpawnPosition checks that a snake spawned at start fits on the grid
// with room for its first step
func (cm *CollisionManager) ValidateSpawnPosition(start types.Point) bool {
	probe := entity.NewSnake(start)
	for _, p := range probe.Body() {
		if cm.isWallCollision(p) {
			return false
		}
	}
	return cm.CheckMove(probe) == types.NoCollision
}

// IsFoodCollision checks if a position collides with food
func (cm *CollisionManager) IsFoodCollision(pos types.Point, food *entity.Food) bool {
	return pos == food.Position()
}
