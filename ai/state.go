package ai

// State is the controller's behavior state. Exactly one is active.
type State int

const (
	StateIdle State = iota
	StatePursue
	StateMelee
	StateRanged
	StateDead
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StatePursue:
		return "pursue"
	case StateMelee:
		return "melee"
	case StateRanged:
		return "ranged"
	case StateDead:
		return "dead"
	default:
		return "unknown"
	}
}

// Valid reports whether s is one of the enumerated states.
func (s State) Valid() bool {
	return s >= StateIdle && s <= StateDead
}
