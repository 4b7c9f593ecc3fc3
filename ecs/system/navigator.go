package system

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/bossfight/ai"
	"github.com/milk9111/bossfight/ecs"
	"github.com/milk9111/bossfight/ecs/component"
)

const defaultNavCellSize = 1.0

// GridNavigator plans waypoint paths over an occupancy grid built from the
// level bounds and every Obstacle entity. It implements ai.Navigator.
type GridNavigator struct {
	world    *ecs.World
	from     ai.Target
	cellSize float64

	waypoints []cp.Vector
	disabled  bool
}

// NewGridNavigator plans from the position reported by from, usually the
// agent's own body.
func NewGridNavigator(w *ecs.World, from ai.Target, cellSize float64) *GridNavigator {
	if cellSize <= 0 {
		cellSize = defaultNavCellSize
	}
	return &GridNavigator{world: w, from: from, cellSize: cellSize}
}

// RequestPathTo replaces the current waypoints. On failure the previous
// waypoints are kept.
func (n *GridNavigator) RequestPathTo(pos cp.Vector) bool {
	if n == nil || n.disabled || n.from == nil {
		return false
	}
	grid := n.buildGrid()
	if grid == nil {
		return false
	}

	start := n.from.Position()
	cells := grid.path(grid.cellAt(start.X, start.Y), grid.cellAt(pos.X, pos.Y))
	if len(cells) == 0 {
		return false
	}

	waypoints := make([]cp.Vector, 0, len(cells))
	for _, c := range cells {
		x, y := grid.center(c)
		waypoints = append(waypoints, cp.Vector{X: x, Y: y})
	}
	n.waypoints = waypoints
	return true
}

func (n *GridNavigator) Waypoints() []cp.Vector {
	if n == nil {
		return nil
	}
	return n.waypoints
}

func (n *GridNavigator) Disable() {
	if n == nil {
		return
	}
	n.disabled = true
	n.waypoints = nil
}

func (n *GridNavigator) Disabled() bool {
	return n != nil && n.disabled
}

func (n *GridNavigator) buildGrid() *navGrid {
	bounds, ok := levelBounds(n.world)
	if !ok {
		return nil
	}
	grid := newNavGrid(bounds.Width, bounds.Height, n.cellSize)
	if grid == nil {
		return nil
	}

	ecs.ForEach3(n.world, component.ObstacleComponent.Kind(), component.PhysicsBodyComponent.Kind(), component.TransformComponent.Kind(), func(_ ecs.Entity, _ *component.Obstacle, pb *component.PhysicsBody, t *component.Transform) {
		hw, hh := pb.Width/2, pb.Height/2
		grid.block(t.X-hw, t.Y-hh, t.X+hw, t.Y+hh)
	})
	return grid
}

func levelBounds(w *ecs.World) (component.LevelBounds, bool) {
	e, ok := ecs.First(w, component.LevelBoundsComponent.Kind())
	if !ok {
		return component.LevelBounds{}, false
	}
	bounds, ok := ecs.Get(w, e, component.LevelBoundsComponent.Kind())
	if !ok {
		return component.LevelBounds{}, false
	}
	return *bounds, true
}

// playerPosition returns the player's transform position.
func playerPosition(w *ecs.World) (cp.Vector, bool) {
	player, ok := ecs.First(w, component.PlayerTagComponent.Kind())
	if !ok {
		return cp.Vector{}, false
	}
	return entityPosition(w, player)
}

func entityPosition(w *ecs.World, e ecs.Entity) (cp.Vector, bool) {
	if pb, ok := ecs.Get(w, e, component.PhysicsBodyComponent.Kind()); ok && pb.Body != nil {
		return pb.Body.Position(), true
	}
	if t, ok := ecs.Get(w, e, component.TransformComponent.Kind()); ok {
		return cp.Vector{X: t.X, Y: t.Y}, true
	}
	return cp.Vector{}, false
}
