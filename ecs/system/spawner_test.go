package system

import (
	"math"
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/bossfight/ai"
	"github.com/milk9111/bossfight/ecs"
	"github.com/milk9111/bossfight/ecs/component"
)

func TestRocketSpawnerSpawn(t *testing.T) {
	w := ecs.NewWorld()
	ps := NewPhysicsSystem(20)
	audio := &recordingAudio{}
	cfg := RocketConfig{Speed: 12, Damage: 2, Radius: 0.3, Mass: 0.5, Lifetime: 2, FireClip: "rocket_fire"}
	s := NewRocketSpawner(w, ps, cfg, audio, quietLogger())

	s.Spawn(ai.Transform{Position: cp.Vector{X: 4, Y: 3}, Forward: cp.Vector{X: -1}})

	rocket, ok := ecs.First(w, component.RocketComponent.Kind())
	if !ok {
		t.Fatalf("expected rocket entity")
	}
	if s.Spawned() != 1 {
		t.Fatalf("expected spawn count 1, got %d", s.Spawned())
	}
	pb, ok := ecs.Get(w, rocket, component.PhysicsBodyComponent.Kind())
	if !ok || pb.Body == nil {
		t.Fatalf("expected rocket body")
	}
	if !pb.Sensor || !pb.NoGravity {
		t.Fatalf("expected sensor body without gravity")
	}
	if v := pb.Body.Velocity(); math.Abs(v.X+12) > 1e-9 || v.Y != 0 {
		t.Fatalf("expected velocity (-12, 0), got %v", v)
	}
	ttl, ok := ecs.Get(w, rocket, component.TTLComponent.Kind())
	if !ok || ttl.Seconds != 2 {
		t.Fatalf("expected 2s ttl, got %+v", ttl)
	}
	if len(audio.played) != 1 || audio.played[0] != "rocket_fire" {
		t.Fatalf("expected fire clip, got %v", audio.played)
	}
	if !audio.interrupts[0] {
		t.Fatalf("expected fire clip to interrupt the bank")
	}

	for i := 0; i < 4; i++ {
		ps.Update(w, 0.125)
	}
	tr, _ := ecs.Get(w, rocket, component.TransformComponent.Kind())
	if math.Abs(tr.X-(4-12*0.5)) > 1e-6 || math.Abs(tr.Y-3) > 1e-9 {
		t.Fatalf("expected straight flight to (-2, 3), got (%v, %v)", tr.X, tr.Y)
	}
}

func TestRocketSpawnerExpires(t *testing.T) {
	w := ecs.NewWorld()
	ps := NewPhysicsSystem(0)
	ttl := NewTTLSystem()
	s := NewRocketSpawner(w, ps, RocketConfig{Speed: 1, Radius: 0.25, Mass: 1, Lifetime: 0.5}, nil, quietLogger())

	s.Spawn(ai.Transform{Forward: cp.Vector{X: 1}})
	rocket, _ := ecs.First(w, component.RocketComponent.Kind())

	for i := 0; i < 6; i++ {
		ps.Update(w, 0.125)
		ttl.Update(w, 0.125)
	}
	if ecs.IsAlive(w, rocket) {
		t.Fatalf("expected rocket removed after its lifetime")
	}
}
