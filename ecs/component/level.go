package component

// LevelBounds is the playable area, used to size the navigation grid.
type LevelBounds struct {
	Width  float64
	Height float64
}

var LevelBoundsComponent = NewComponent[LevelBounds]()

type Level struct {
	Name  string
	Index int
}

var LevelComponent = NewComponent[Level]()

// LevelChangeRequest is a one-shot request consumed by LevelSystem.
type LevelChangeRequest struct {
	From int
	To   int
}

var LevelChangeRequestComponent = NewComponent[LevelChangeRequest]()

// Obstacle marks static geometry that blocks navigation.
type Obstacle struct{}

var ObstacleComponent = NewComponent[Obstacle]()
