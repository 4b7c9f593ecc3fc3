package ai

import "github.com/jakecoffman/cp"

// Body is the physics body the controller steers. *cp.Body satisfies it.
type Body interface {
	Position() cp.Vector
	Velocity() cp.Vector
	SetVelocityVector(v cp.Vector)
}

// Target is anything with a world position the agent hunts.
type Target interface {
	Position() cp.Vector
}

// Navigator computes waypoint sequences toward a position.
// Waypoints is only meaningful after a successful RequestPathTo.
type Navigator interface {
	RequestPathTo(pos cp.Vector) bool
	Waypoints() []cp.Vector
	Disable()
}

// Transform is an origin handed to a ProjectileSpawner.
type Transform struct {
	Position cp.Vector
	Forward  cp.Vector
}

type ProjectileSpawner interface {
	Spawn(origin Transform)
}

type AudioService interface {
	Play(clip string, interrupt bool)
	PlayRandom(clips []string, interrupt bool)
}

type LevelProgression interface {
	Advance()
}

// MeleeWeapon is the swung weapon attached to the agent.
type MeleeWeapon interface {
	SetActive(active bool)
	Swing()
}

type nopSpawner struct{}

func (nopSpawner) Spawn(Transform) {}

type nopAudio struct{}

func (nopAudio) Play(string, bool)         {}
func (nopAudio) PlayRandom([]string, bool) {}

type nopLevel struct{}

func (nopLevel) Advance() {}

type nopWeapon struct{}

func (nopWeapon) SetActive(bool) {}
func (nopWeapon) Swing()         {}
