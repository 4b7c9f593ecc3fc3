package entity

import (
	"fmt"

	"github.com/milk9111/bossfight/ecs"
	"github.com/milk9111/bossfight/ecs/component"
	"github.com/milk9111/bossfight/ecs/system"
	"github.com/milk9111/bossfight/prefabs"
)

// NewPlayer creates the robot's target. withPatrol adds the scripted walk
// used when nobody is at the keyboard.
func NewPlayer(w *ecs.World, physics *system.PhysicsSystem, spec prefabs.PlayerSpec, withPatrol bool) (ecs.Entity, error) {
	e := ecs.CreateEntity(w)

	if err := ecs.Add(w, e, component.PlayerTagComponent.Kind(), &component.PlayerTag{}); err != nil {
		return 0, fmt.Errorf("player: add player tag: %w", err)
	}

	width, height := spec.Collider.Width, spec.Collider.Height
	if width <= 0 {
		width = 1
	}
	if height <= 0 {
		height = 2
	}
	if _, err := physics.AddBox(w, e, spec.X, spec.Y, component.PhysicsBody{
		Width:    width,
		Height:   height,
		Mass:     spec.Collider.Mass,
		Friction: spec.Collider.Friction,
	}); err != nil {
		return 0, fmt.Errorf("player: add physics body: %w", err)
	}

	hp := spec.Health
	if hp <= 0 {
		hp = 10
	}
	if err := ecs.Add(w, e, component.HealthComponent.Kind(), &component.Health{Max: hp, Current: hp}); err != nil {
		return 0, fmt.Errorf("player: add health: %w", err)
	}

	if withPatrol && spec.Patrol != nil {
		if err := ecs.Add(w, e, component.PatrolComponent.Kind(), &component.Patrol{
			MinX:  spec.Patrol.MinX,
			MaxX:  spec.Patrol.MaxX,
			Speed: spec.Patrol.Speed,
		}); err != nil {
			return 0, fmt.Errorf("player: add patrol: %w", err)
		}
	}

	return e, nil
}
