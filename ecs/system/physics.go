package system

import (
	"math"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/bossfight/ecs"
	"github.com/milk9111/bossfight/ecs/component"
)

const (
	collisionTypeSolid cp.CollisionType = iota + 1
	collisionTypeDynamic
	collisionTypeProjectile
)

// PhysicsSystem owns the Chipmunk space. Each update it writes agent target
// velocities into their bodies, steps the space and mirrors body poses into
// transforms.
type PhysicsSystem struct {
	space *cp.Space

	// projectiles that touched level geometry during the last step
	impacts []ecs.Entity
}

func NewPhysicsSystem(gravity float64) *PhysicsSystem {
	space := cp.NewSpace()
	space.Iterations = 20
	space.SetGravity(cp.Vector{X: 0, Y: gravity})

	ps := &PhysicsSystem{space: space}
	handler := space.NewCollisionHandler(collisionTypeProjectile, collisionTypeSolid)
	handler.BeginFunc = func(arb *cp.Arbiter, _ *cp.Space, _ interface{}) bool {
		a, _ := arb.Shapes()
		if e, ok := a.UserData.(ecs.Entity); ok {
			ps.impacts = append(ps.impacts, e)
		}
		return false
	}
	return ps
}

func (ps *PhysicsSystem) Space() *cp.Space {
	if ps == nil {
		return nil
	}
	return ps.space
}

// AddBox creates a box body centered at (x, y) and attaches it to e along
// with a Transform.
func (ps *PhysicsSystem) AddBox(w *ecs.World, e ecs.Entity, x, y float64, pb component.PhysicsBody) (*component.PhysicsBody, error) {
	var body *cp.Body
	if pb.Static {
		body = cp.NewStaticBody()
	} else {
		mass := pb.Mass
		if mass <= 0 {
			mass = 1
		}
		// Upright walkers never rotate.
		body = cp.NewBody(mass, math.Inf(1))
	}
	body.SetPosition(cp.Vector{X: x, Y: y})

	shape := cp.NewBox(body, pb.Width, pb.Height, 0)
	ps.finishBody(e, body, shape, &pb)
	return ps.attach(w, e, x, y, pb)
}

// AddCircle creates a circular body, used for projectiles.
func (ps *PhysicsSystem) AddCircle(w *ecs.World, e ecs.Entity, x, y float64, pb component.PhysicsBody) (*component.PhysicsBody, error) {
	mass := pb.Mass
	if mass <= 0 {
		mass = 1
	}
	body := cp.NewBody(mass, cp.MomentForCircle(mass, 0, pb.Radius, cp.Vector{}))
	body.SetPosition(cp.Vector{X: x, Y: y})

	shape := cp.NewCircle(body, pb.Radius, cp.Vector{})
	ps.finishBody(e, body, shape, &pb)
	return ps.attach(w, e, x, y, pb)
}

// AddGround adds a static floor segment at height y.
func (ps *PhysicsSystem) AddGround(x0, x1, y float64) {
	ps.AddSegment(cp.Vector{X: x0, Y: y}, cp.Vector{X: x1, Y: y})
}

// AddSegment adds static level geometry such as walls.
func (ps *PhysicsSystem) AddSegment(a, b cp.Vector) {
	shape := cp.NewSegment(ps.space.StaticBody, a, b, 0)
	shape.SetFriction(1)
	shape.SetCollisionType(collisionTypeSolid)
	ps.space.AddShape(shape)
}

func (ps *PhysicsSystem) finishBody(e ecs.Entity, body *cp.Body, shape *cp.Shape, pb *component.PhysicsBody) {
	if pb.NoGravity {
		body.SetVelocityUpdateFunc(func(body *cp.Body, gravity cp.Vector, damping float64, dt float64) {
			cp.BodyUpdateVelocity(body, cp.Vector{}, damping, dt)
		})
	}
	shape.UserData = e
	shape.SetFriction(pb.Friction)
	shape.SetSensor(pb.Sensor)
	switch {
	case pb.Static:
		shape.SetCollisionType(collisionTypeSolid)
	case pb.Sensor:
		shape.SetCollisionType(collisionTypeProjectile)
	default:
		shape.SetCollisionType(collisionTypeDynamic)
	}

	ps.space.AddBody(body)
	ps.space.AddShape(shape)
	pb.Body = body
	pb.Shape = shape
}

func (ps *PhysicsSystem) attach(w *ecs.World, e ecs.Entity, x, y float64, pb component.PhysicsBody) (*component.PhysicsBody, error) {
	stored := &pb
	if err := ecs.Add(w, e, component.PhysicsBodyComponent.Kind(), stored); err != nil {
		ps.detach(stored)
		return nil, err
	}
	if err := ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{X: x, Y: y}); err != nil {
		return nil, err
	}
	return stored, nil
}

func (ps *PhysicsSystem) detach(pb *component.PhysicsBody) {
	if pb == nil {
		return
	}
	if pb.Shape != nil {
		ps.space.RemoveShape(pb.Shape)
		pb.Shape = nil
	}
	if pb.Body != nil {
		ps.space.RemoveBody(pb.Body)
		pb.Body = nil
	}
}

func (ps *PhysicsSystem) Update(w *ecs.World, dt float64) {
	if ps == nil || w == nil || dt <= 0 {
		return
	}

	ps.removePending(w)

	ecs.ForEach(w, component.AgentComponent.Kind(), func(_ ecs.Entity, a *component.Agent) {
		if a.Controller != nil {
			a.Controller.ApplyVelocity()
		}
	})

	ps.impacts = ps.impacts[:0]
	ps.space.Step(dt)
	for _, e := range ps.impacts {
		if ecs.IsAlive(w, e) {
			_ = ecs.Add(w, e, component.PendingDestroyComponent.Kind(), &component.PendingDestroy{})
		}
	}

	ecs.ForEach2(w, component.PhysicsBodyComponent.Kind(), component.TransformComponent.Kind(), func(_ ecs.Entity, pb *component.PhysicsBody, t *component.Transform) {
		if pb.Body == nil || pb.Static {
			return
		}
		pos := pb.Body.Position()
		t.X = pos.X
		t.Y = pos.Y
		t.Rotation = pb.Body.Angle()
	})
}

// removePending detaches bodies of entities marked for destruction and
// destroys them.
func (ps *PhysicsSystem) removePending(w *ecs.World) {
	ecs.ForEach(w, component.PendingDestroyComponent.Kind(), func(e ecs.Entity, _ *component.PendingDestroy) {
		if pb, ok := ecs.Get(w, e, component.PhysicsBodyComponent.Kind()); ok {
			ps.detach(pb)
		}
		if a, ok := ecs.Get(w, e, component.AgentComponent.Kind()); ok && a.Controller != nil {
			a.Controller.Deactivate()
		}
		ecs.DestroyEntity(w, e)
	})
}
