package system

import (
	"github.com/milk9111/bossfight/ecs"
	"github.com/milk9111/bossfight/ecs/component"
)

// PatrolSystem walks patrolling bodies between their bounds. It drives the
// player in headless runs.
type PatrolSystem struct{}

func NewPatrolSystem() *PatrolSystem {
	return &PatrolSystem{}
}

func (s *PatrolSystem) Update(w *ecs.World, _ float64) {
	if w == nil {
		return
	}

	ecs.ForEach2(w, component.PatrolComponent.Kind(), component.PhysicsBodyComponent.Kind(), func(_ ecs.Entity, p *component.Patrol, pb *component.PhysicsBody) {
		if pb.Body == nil {
			return
		}
		if p.Dir == 0 {
			p.Dir = 1
		}
		pos := pb.Body.Position()
		switch {
		case pos.X <= p.MinX:
			p.Dir = 1
		case pos.X >= p.MaxX:
			p.Dir = -1
		}
		v := pb.Body.Velocity()
		v.X = p.Dir * p.Speed
		pb.Body.SetVelocityVector(v)
	})
}
