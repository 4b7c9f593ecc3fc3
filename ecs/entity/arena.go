package entity

import (
	"fmt"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/bossfight/ecs"
	"github.com/milk9111/bossfight/ecs/component"
	"github.com/milk9111/bossfight/ecs/system"
	"github.com/milk9111/bossfight/prefabs"
)

// BuildArena creates the level entity, the static geometry and the obstacle
// entities the navigator plans around.
func BuildArena(w *ecs.World, physics *system.PhysicsSystem, spec *prefabs.ArenaSpec) (ecs.Entity, error) {
	if spec == nil {
		return 0, fmt.Errorf("arena: spec is nil")
	}
	if spec.Width <= 0 || spec.Height <= 0 {
		return 0, fmt.Errorf("arena: invalid bounds %vx%v", spec.Width, spec.Height)
	}

	level := ecs.CreateEntity(w)
	if err := ecs.Add(w, level, component.LevelComponent.Kind(), &component.Level{Name: spec.Name, Index: spec.Level}); err != nil {
		return 0, fmt.Errorf("arena: add level: %w", err)
	}
	if err := ecs.Add(w, level, component.LevelBoundsComponent.Kind(), &component.LevelBounds{Width: spec.Width, Height: spec.Height}); err != nil {
		return 0, fmt.Errorf("arena: add bounds: %w", err)
	}

	groundY := spec.GroundY
	if groundY <= 0 {
		groundY = spec.Height
	}
	physics.AddGround(0, spec.Width, groundY)
	physics.AddSegment(cp.Vector{X: 0, Y: 0}, cp.Vector{X: 0, Y: groundY})
	physics.AddSegment(cp.Vector{X: spec.Width, Y: 0}, cp.Vector{X: spec.Width, Y: groundY})

	for i, o := range spec.Obstacles {
		if _, err := NewObstacle(w, physics, o); err != nil {
			return 0, fmt.Errorf("arena: obstacle %d: %w", i, err)
		}
	}
	return level, nil
}

func NewObstacle(w *ecs.World, physics *system.PhysicsSystem, spec prefabs.ObstacleSpec) (ecs.Entity, error) {
	if spec.Width <= 0 || spec.Height <= 0 {
		return 0, fmt.Errorf("obstacle: invalid size %vx%v", spec.Width, spec.Height)
	}
	e := ecs.CreateEntity(w)
	if _, err := physics.AddBox(w, e, spec.X, spec.Y, component.PhysicsBody{
		Width:    spec.Width,
		Height:   spec.Height,
		Friction: 1,
		Static:   true,
	}); err != nil {
		return 0, fmt.Errorf("obstacle: add physics body: %w", err)
	}
	if err := ecs.Add(w, e, component.ObstacleComponent.Kind(), &component.Obstacle{}); err != nil {
		return 0, fmt.Errorf("obstacle: add tag: %w", err)
	}
	return e, nil
}
