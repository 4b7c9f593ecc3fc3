package component

// Transform mirrors a physics body's pose for rendering and queries.
type Transform struct {
	X        float64
	Y        float64
	Rotation float64
}

var TransformComponent = NewComponent[Transform]()
