package system

import (
	"github.com/milk9111/bossfight/ecs"
	"github.com/milk9111/bossfight/ecs/component"
)

// CombatTriggerSystem is the melee-range sensor. It writes the agent's
// in-range flag every frame, before the agent ticks.
type CombatTriggerSystem struct{}

func NewCombatTriggerSystem() *CombatTriggerSystem {
	return &CombatTriggerSystem{}
}

func (s *CombatTriggerSystem) Update(w *ecs.World, _ float64) {
	if w == nil {
		return
	}

	player, found := playerPosition(w)

	ecs.ForEach2(w, component.CombatTriggerComponent.Kind(), component.AgentComponent.Kind(), func(e ecs.Entity, trigger *component.CombatTrigger, a *component.Agent) {
		inRange := false
		if found {
			if pos, ok := entityPosition(w, e); ok {
				inRange = pos.Distance(player) <= trigger.Radius
			}
		}
		trigger.InRange = inRange
		if a.Controller != nil {
			a.Controller.SetInMeleeRange(inRange)
		}
	})
}
