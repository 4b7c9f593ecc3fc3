package system

import (
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/bossfight/ecs"
	"github.com/milk9111/bossfight/ecs/component"
)

func TestCombatSystemMeleeLandsOncePerSwing(t *testing.T) {
	w := ecs.NewWorld()
	player := addPlayerAt(t, w, 1, 0)

	robot := ecs.CreateEntity(w)
	_ = ecs.Add(w, robot, component.TransformComponent.Kind(), &component.Transform{})
	_ = ecs.Add(w, robot, component.MeleeWeaponComponent.Kind(), &component.MeleeWeapon{Reach: 2, Damage: 3})

	weapon := NewMeleeWeaponAdapter(w, robot)
	s := NewCombatSystem(quietLogger())
	health, _ := ecs.Get(w, player, component.HealthComponent.Kind())

	s.Update(w, 0.125)
	if health.Current != 10 {
		t.Fatalf("expected no damage before a swing, got %d", health.Current)
	}

	weapon.SetActive(true)
	weapon.Swing()
	s.Update(w, 0.125)
	s.Update(w, 0.125)
	if health.Current != 7 {
		t.Fatalf("expected one hit, got health %d", health.Current)
	}

	weapon.SetActive(false)
	weapon.Swing()
	s.Update(w, 0.125)
	if health.Current != 7 {
		t.Fatalf("expected inactive weapon to miss, got health %d", health.Current)
	}
}

func TestCombatSystemRocketHit(t *testing.T) {
	tests := []struct {
		name       string
		rocketX    float64
		wantHealth int
		wantHit    bool
	}{
		{name: "contact", rocketX: 0.5, wantHealth: 6, wantHit: true},
		{name: "miss", rocketX: 5, wantHealth: 10, wantHit: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := ecs.NewWorld()
			player := addPlayerAt(t, w, 0, 0)

			rocket := ecs.CreateEntity(w)
			_ = ecs.Add(w, rocket, component.TransformComponent.Kind(), &component.Transform{X: tt.rocketX})
			_ = ecs.Add(w, rocket, component.RocketComponent.Kind(), &component.Rocket{Damage: 4, Radius: 1})

			NewCombatSystem(quietLogger()).Update(w, 0.125)
			NewCombatSystem(quietLogger()).Update(w, 0.125)

			health, _ := ecs.Get(w, player, component.HealthComponent.Kind())
			if health.Current != tt.wantHealth {
				t.Fatalf("expected health %d, got %d", tt.wantHealth, health.Current)
			}
			if got := ecs.Has(w, rocket, component.PendingDestroyComponent.Kind()); got != tt.wantHit {
				t.Fatalf("expected pending destroy %v, got %v", tt.wantHit, got)
			}
		})
	}
}

func TestCombatSystemHealthFloor(t *testing.T) {
	w := ecs.NewWorld()
	player := addPlayerAt(t, w, 0, 0)
	for i := 0; i < 4; i++ {
		r := ecs.CreateEntity(w)
		_ = ecs.Add(w, r, component.TransformComponent.Kind(), &component.Transform{})
		_ = ecs.Add(w, r, component.RocketComponent.Kind(), &component.Rocket{Damage: 4, Radius: 1})
	}

	NewCombatSystem(quietLogger()).Update(w, 0.125)

	health, _ := ecs.Get(w, player, component.HealthComponent.Kind())
	if health.Current != 0 {
		t.Fatalf("expected health clamped at 0, got %d", health.Current)
	}
}

func TestCircleHitsBox(t *testing.T) {
	tests := []struct {
		name   string
		p      cp.Vector
		radius float64
		want   bool
	}{
		{name: "inside", p: cp.Vector{X: 0.2, Y: -0.6}, radius: 0.3, want: true},
		{name: "overlapping side", p: cp.Vector{X: 0.75, Y: 0}, radius: 0.3, want: true},
		{name: "past side", p: cp.Vector{X: 0.9, Y: 0}, radius: 0.3, want: false},
		{name: "past corner", p: cp.Vector{X: 0.75, Y: 1.25}, radius: 0.3, want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := circleHitsBox(tt.p, tt.radius, cp.Vector{}, 0.5, 1); got != tt.want {
				t.Fatalf("expected %v, got %v", tt.want, got)
			}
		})
	}
}
