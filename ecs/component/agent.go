package component

import "github.com/milk9111/bossfight/ai"

// Agent attaches a behavior controller to an entity.
type Agent struct {
	Name       string
	Controller *ai.Controller
}

var AgentComponent = NewComponent[Agent]()

// DeathRequest is a one-shot death signal. AgentSystem consumes it on its
// next update.
type DeathRequest struct {
	Reason string
}

var DeathRequestComponent = NewComponent[DeathRequest]()
