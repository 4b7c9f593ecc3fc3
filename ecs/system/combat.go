package system

import (
	"math"

	"github.com/charmbracelet/log"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/bossfight/ecs"
	"github.com/milk9111/bossfight/ecs/component"
)

// MeleeWeaponAdapter implements ai.MeleeWeapon on an entity's MeleeWeapon
// component.
type MeleeWeaponAdapter struct {
	world  *ecs.World
	entity ecs.Entity
}

func NewMeleeWeaponAdapter(w *ecs.World, e ecs.Entity) *MeleeWeaponAdapter {
	return &MeleeWeaponAdapter{world: w, entity: e}
}

func (m *MeleeWeaponAdapter) SetActive(active bool) {
	if weapon, ok := ecs.Get(m.world, m.entity, component.MeleeWeaponComponent.Kind()); ok {
		weapon.Active = active
	}
}

func (m *MeleeWeaponAdapter) Swing() {
	if weapon, ok := ecs.Get(m.world, m.entity, component.MeleeWeaponComponent.Kind()); ok {
		weapon.Swings++
	}
}

// CombatSystem applies melee and rocket hits to the player's Health. A
// swing lands at most once and a rocket is consumed by its hit.
type CombatSystem struct {
	log *log.Logger
}

func NewCombatSystem(logger *log.Logger) *CombatSystem {
	if logger == nil {
		logger = log.Default()
	}
	return &CombatSystem{log: logger}
}

func (s *CombatSystem) Update(w *ecs.World, _ float64) {
	if w == nil {
		return
	}
	player, ok := ecs.First(w, component.PlayerTagComponent.Kind())
	if !ok {
		return
	}
	health, ok := ecs.Get(w, player, component.HealthComponent.Kind())
	if !ok || health.Current <= 0 {
		return
	}
	target, ok := entityPosition(w, player)
	if !ok {
		return
	}
	var halfW, halfH float64
	if pb, ok := ecs.Get(w, player, component.PhysicsBodyComponent.Kind()); ok {
		halfW, halfH = pb.Width/2, pb.Height/2
	}

	ecs.ForEach(w, component.MeleeWeaponComponent.Kind(), func(e ecs.Entity, weapon *component.MeleeWeapon) {
		if !weapon.Active || weapon.HitSwing == weapon.Swings {
			return
		}
		pos, ok := entityPosition(w, e)
		if !ok || pos.Distance(target) > weapon.Reach {
			return
		}
		weapon.HitSwing = weapon.Swings
		s.damage(health, weapon.Damage, "melee")
	})

	ecs.ForEach(w, component.RocketComponent.Kind(), func(e ecs.Entity, rocket *component.Rocket) {
		if ecs.Has(w, e, component.PendingDestroyComponent.Kind()) {
			return
		}
		pos, ok := entityPosition(w, e)
		if !ok || !circleHitsBox(pos, rocket.Radius, target, halfW, halfH) {
			return
		}
		_ = ecs.Add(w, e, component.PendingDestroyComponent.Kind(), &component.PendingDestroy{})
		s.damage(health, rocket.Damage, "rocket")
	})
}

func (s *CombatSystem) damage(health *component.Health, amount int, source string) {
	if health.Current <= 0 || amount <= 0 {
		return
	}
	health.Current = max(health.Current-amount, 0)
	s.log.Info("player hit", "source", source, "damage", amount, "health", health.Current)
	if health.Current == 0 {
		s.log.Warn("player down")
	}
}

// circleHitsBox reports whether a circle overlaps the axis-aligned box
// centered at c. A zero-size box degrades to a point.
func circleHitsBox(p cp.Vector, radius float64, c cp.Vector, halfW, halfH float64) bool {
	dx := math.Max(math.Abs(p.X-c.X)-halfW, 0)
	dy := math.Max(math.Abs(p.Y-c.Y)-halfH, 0)
	return dx*dx+dy*dy <= radius*radius
}
