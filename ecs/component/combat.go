package component

// CombatTrigger is the proximity sensor that feeds an agent's melee-range
// flag.
type CombatTrigger struct {
	Radius  float64
	InRange bool
}

var CombatTriggerComponent = NewComponent[CombatTrigger]()

// MeleeWeapon is toggled by the agent's swing routine. Swings counts
// animation triggers; HitSwing records the last swing that landed.
type MeleeWeapon struct {
	Active   bool
	Swings   int
	HitSwing int
	Reach    float64
	Damage   int
}

var MeleeWeaponComponent = NewComponent[MeleeWeapon]()

type Health struct {
	Max     int
	Current int
}

var HealthComponent = NewComponent[Health]()

// Rocket is a ranged projectile. It damages the player once on contact.
type Rocket struct {
	Speed  float64
	Damage int
	Radius float64
}

var RocketComponent = NewComponent[Rocket]()
