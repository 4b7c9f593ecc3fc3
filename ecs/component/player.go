package component

type PlayerTag struct{}

var PlayerTagComponent = NewComponent[PlayerTag]()

// Patrol walks an entity back and forth between MinX and MaxX.
type Patrol struct {
	MinX  float64
	MaxX  float64
	Speed float64
	Dir   float64
}

var PatrolComponent = NewComponent[Patrol]()
