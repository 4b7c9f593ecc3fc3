package system

import (
	"math"
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/bossfight/ecs"
	"github.com/milk9111/bossfight/ecs/component"
)

func TestPhysicsSystemGravityAndSync(t *testing.T) {
	w := ecs.NewWorld()
	ps := NewPhysicsSystem(20)

	e := ecs.CreateEntity(w)
	pb, err := ps.AddBox(w, e, 5, 2, component.PhysicsBody{Width: 1, Height: 2, Mass: 1})
	if err != nil {
		t.Fatalf("add box: %v", err)
	}
	if pb.Body == nil || pb.Shape == nil {
		t.Fatalf("expected body and shape")
	}

	for i := 0; i < 10; i++ {
		ps.Update(w, 0.0625)
	}

	tr, ok := ecs.Get(w, e, component.TransformComponent.Kind())
	if !ok {
		t.Fatalf("expected transform")
	}
	if tr.Y <= 2 {
		t.Fatalf("expected body to fall, y=%v", tr.Y)
	}
	if tr.Y != pb.Body.Position().Y || tr.X != pb.Body.Position().X {
		t.Fatalf("expected transform synced to body")
	}
}

func TestPhysicsSystemNoGravity(t *testing.T) {
	w := ecs.NewWorld()
	ps := NewPhysicsSystem(20)

	e := ecs.CreateEntity(w)
	pb, err := ps.AddCircle(w, e, 0, 0, component.PhysicsBody{Radius: 0.25, Mass: 1, Sensor: true, NoGravity: true})
	if err != nil {
		t.Fatalf("add circle: %v", err)
	}
	pb.Body.SetVelocityVector(cp.Vector{X: 4})

	for i := 0; i < 8; i++ {
		ps.Update(w, 0.125)
	}

	v := pb.Body.Velocity()
	if v.Y != 0 {
		t.Fatalf("expected no vertical velocity, got %v", v.Y)
	}
	if math.Abs(v.X-4) > 1e-9 {
		t.Fatalf("expected horizontal velocity kept, got %v", v.X)
	}
}

func TestPhysicsSystemGroundStopsFall(t *testing.T) {
	w := ecs.NewWorld()
	ps := NewPhysicsSystem(20)
	ps.AddGround(-10, 10, 5)

	e := ecs.CreateEntity(w)
	if _, err := ps.AddBox(w, e, 0, 3, component.PhysicsBody{Width: 1, Height: 2, Mass: 1, Friction: 1}); err != nil {
		t.Fatalf("add box: %v", err)
	}
	for i := 0; i < 120; i++ {
		ps.Update(w, 1.0/60.0)
	}

	tr, _ := ecs.Get(w, e, component.TransformComponent.Kind())
	if tr.Y > 4.1 {
		t.Fatalf("expected box resting on ground near y=4, got %v", tr.Y)
	}
}

func TestPhysicsSystemRemovesPendingDestroy(t *testing.T) {
	w := ecs.NewWorld()
	ps := NewPhysicsSystem(20)

	e := ecs.CreateEntity(w)
	pb, err := ps.AddCircle(w, e, 0, 0, component.PhysicsBody{Radius: 0.25, Mass: 1})
	if err != nil {
		t.Fatalf("add circle: %v", err)
	}
	body := pb.Body
	_ = ecs.Add(w, e, component.PendingDestroyComponent.Kind(), &component.PendingDestroy{})

	ps.Update(w, 0.0625)

	if ecs.IsAlive(w, e) {
		t.Fatalf("expected entity destroyed")
	}
	if ps.Space().ContainsBody(body) {
		t.Fatalf("expected body removed from space")
	}
}

func TestPhysicsSystemAppliesAgentVelocity(t *testing.T) {
	w := ecs.NewWorld()
	ps := NewPhysicsSystem(0)
	addBounds(t, w, 40, 10)

	e := ecs.CreateEntity(w)
	pb, err := ps.AddBox(w, e, 2.5, 8.5, component.PhysicsBody{Width: 1, Height: 1, Mass: 1})
	if err != nil {
		t.Fatalf("add box: %v", err)
	}
	c := newTestController(t, w, pb.Body, point{X: 30.5, Y: 8.5})
	_ = ecs.Add(w, e, component.AgentComponent.Kind(), &component.Agent{Name: "robot", Controller: c})

	// Idle delay, then one pursue tick to set a heading.
	for i := 0; i < 10; i++ {
		c.Tick(0.125)
	}
	if c.TargetVelocity().X <= 0 {
		t.Fatalf("expected positive target velocity after pursue tick, got %v", c.TargetVelocity())
	}

	ps.Update(w, 0.0625)
	if got := pb.Body.Velocity(); got.X != c.TargetVelocity().X {
		t.Fatalf("expected body velocity %v, got %v", c.TargetVelocity(), got)
	}
}

func TestPhysicsSystemProjectileImpact(t *testing.T) {
	w := ecs.NewWorld()
	ps := NewPhysicsSystem(0)
	ps.AddSegment(cp.Vector{X: 3, Y: -5}, cp.Vector{X: 3, Y: 5})

	e := ecs.CreateEntity(w)
	pb, err := ps.AddCircle(w, e, 0, 0, component.PhysicsBody{Radius: 0.25, Mass: 1, Sensor: true, NoGravity: true})
	if err != nil {
		t.Fatalf("add circle: %v", err)
	}
	pb.Body.SetVelocityVector(cp.Vector{X: 8})

	for i := 0; i < 4 && !ecs.Has(w, e, component.PendingDestroyComponent.Kind()); i++ {
		ps.Update(w, 0.125)
	}
	if !ecs.Has(w, e, component.PendingDestroyComponent.Kind()) {
		t.Fatalf("expected projectile marked on wall impact")
	}

	ps.Update(w, 0.125)
	if ecs.IsAlive(w, e) {
		t.Fatalf("expected projectile removed")
	}
}
