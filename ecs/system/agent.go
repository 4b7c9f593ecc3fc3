package system

import (
	"github.com/charmbracelet/log"
	"github.com/milk9111/bossfight/ecs"
	"github.com/milk9111/bossfight/ecs/component"
)

// AgentSystem delivers death requests and runs one logic tick per agent.
// It runs before PhysicsSystem so the velocity written this frame is the
// one integrated.
type AgentSystem struct {
	log *log.Logger
}

func NewAgentSystem(logger *log.Logger) *AgentSystem {
	if logger == nil {
		logger = log.Default()
	}
	return &AgentSystem{log: logger}
}

func (s *AgentSystem) Update(w *ecs.World, dt float64) {
	if w == nil {
		return
	}

	ecs.ForEach(w, component.AgentComponent.Kind(), func(e ecs.Entity, a *component.Agent) {
		if a.Controller == nil {
			return
		}

		if req, ok := ecs.Get(w, e, component.DeathRequestComponent.Kind()); ok {
			s.log.Debug("death requested", "agent", a.Name, "reason", req.Reason)
			ecs.Remove(w, e, component.DeathRequestComponent.Kind())
			a.Controller.Death()
		}
		if ecs.Has(w, e, component.PendingDestroyComponent.Kind()) {
			a.Controller.Deactivate()
			return
		}

		a.Controller.Tick(dt)
	})
}
