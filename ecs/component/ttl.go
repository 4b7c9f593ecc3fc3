package component

// TTL destroys its entity after Seconds of simulated time.
type TTL struct {
	Seconds float64
}

var TTLComponent = NewComponent[TTL]()

// PendingDestroy marks an entity for removal. PhysicsSystem detaches its
// body from the space before the entity is destroyed.
type PendingDestroy struct{}

var PendingDestroyComponent = NewComponent[PendingDestroy]()
