package system

import (
	"github.com/charmbracelet/log"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/bossfight/ai"
	"github.com/milk9111/bossfight/ecs"
	"github.com/milk9111/bossfight/ecs/component"
)

// RocketConfig describes the projectile a RocketSpawner launches.
type RocketConfig struct {
	Speed    float64
	Damage   int
	Radius   float64
	Mass     float64
	Lifetime float64
	FireClip string
}

// RocketSpawner implements ai.ProjectileSpawner. Rockets fly straight along
// the origin's forward axis, ignore gravity and expire after Lifetime.
type RocketSpawner struct {
	world   *ecs.World
	physics *PhysicsSystem
	cfg     RocketConfig
	audio   ai.AudioService
	log     *log.Logger

	spawned int
}

func NewRocketSpawner(w *ecs.World, physics *PhysicsSystem, cfg RocketConfig, audio ai.AudioService, logger *log.Logger) *RocketSpawner {
	if logger == nil {
		logger = log.Default()
	}
	return &RocketSpawner{world: w, physics: physics, cfg: cfg, audio: audio, log: logger}
}

func (s *RocketSpawner) Spawn(origin ai.Transform) {
	e := ecs.CreateEntity(s.world)
	pb, err := s.physics.AddCircle(s.world, e, origin.Position.X, origin.Position.Y, component.PhysicsBody{
		Radius:    s.cfg.Radius,
		Mass:      s.cfg.Mass,
		Sensor:    true,
		NoGravity: true,
	})
	if err != nil {
		s.log.Error("rocket spawn failed", "err", err)
		ecs.DestroyEntity(s.world, e)
		return
	}

	impulse := origin.Forward.Mult(s.cfg.Speed * pb.Body.Mass())
	pb.Body.ApplyImpulseAtLocalPoint(impulse, cp.Vector{})

	_ = ecs.Add(s.world, e, component.RocketComponent.Kind(), &component.Rocket{
		Speed:  s.cfg.Speed,
		Damage: s.cfg.Damage,
		Radius: s.cfg.Radius,
	})
	if s.cfg.Lifetime > 0 {
		_ = ecs.Add(s.world, e, component.TTLComponent.Kind(), &component.TTL{Seconds: s.cfg.Lifetime})
	}
	if s.audio != nil && s.cfg.FireClip != "" {
		s.audio.Play(s.cfg.FireClip, true)
	}

	s.spawned++
	s.log.Debug("rocket spawned", "x", origin.Position.X, "y", origin.Position.Y, "dir", origin.Forward.X)
}

// Spawned reports how many rockets have been launched.
func (s *RocketSpawner) Spawned() int {
	return s.spawned
}
