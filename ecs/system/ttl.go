package system

import (
	"github.com/milk9111/bossfight/ecs"
	"github.com/milk9111/bossfight/ecs/component"
)

// TTLSystem counts down TTL components and marks expired entities for
// destruction. PhysicsSystem removes them on its next update.
type TTLSystem struct{}

func NewTTLSystem() *TTLSystem {
	return &TTLSystem{}
}

func (s *TTLSystem) Update(w *ecs.World, dt float64) {
	if w == nil {
		return
	}

	ecs.ForEach(w, component.TTLComponent.Kind(), func(e ecs.Entity, ttl *component.TTL) {
		ttl.Seconds -= dt
		if ttl.Seconds > 0 {
			return
		}
		ecs.Remove(w, e, component.TTLComponent.Kind())
		_ = ecs.Add(w, e, component.PendingDestroyComponent.Kind(), &component.PendingDestroy{})
	})
}
