// Package arena assembles the robot soldier fight: level geometry, the
// player, the soldier and the frame-ordered system schedule.
package arena

import (
	"fmt"
	"math/rand"

	"github.com/charmbracelet/log"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/bossfight/ai"
	"github.com/milk9111/bossfight/ecs"
	"github.com/milk9111/bossfight/ecs/component"
	"github.com/milk9111/bossfight/ecs/entity"
	"github.com/milk9111/bossfight/ecs/system"
	"github.com/milk9111/bossfight/prefabs"
)

type Options struct {
	ArenaFile string

	// Patrol makes the player walk on its own, for runs without input.
	Patrol bool

	Logger        *log.Logger
	Rand          *rand.Rand
	LoadClip      entity.ClipLoader
	OnTransition  func(from, to ai.State)
	OnLevelChange func(from, to int)
}

// Sim is one loaded arena. It is driven by Step from a single goroutine.
type Sim struct {
	World     *ecs.World
	Physics   *system.PhysicsSystem
	Scheduler *ecs.Scheduler

	Spec   *prefabs.ArenaSpec
	Level  ecs.Entity
	Player ecs.Entity
	Robot  *entity.Robot

	opts   Options
	log    *log.Logger
	time   float64
	paused bool
}

func New(opts Options) (*Sim, error) {
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}
	s := &Sim{opts: opts, log: opts.Logger}
	if err := s.load(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Sim) load() error {
	arenaSpec, err := prefabs.LoadArenaSpec(s.opts.ArenaFile)
	if err != nil {
		return fmt.Errorf("arena: %w", err)
	}
	robotSpec, err := prefabs.LoadRobotSoldierSpec()
	if err != nil {
		return fmt.Errorf("arena: %w", err)
	}
	rocketSpec, err := prefabs.LoadRocketSpec()
	if err != nil {
		return fmt.Errorf("arena: %w", err)
	}

	w := ecs.NewWorld()
	physics := system.NewPhysicsSystem(arenaSpec.Gravity)

	level, err := entity.BuildArena(w, physics, arenaSpec)
	if err != nil {
		return err
	}
	player, err := entity.NewPlayer(w, physics, arenaSpec.Player, s.opts.Patrol)
	if err != nil {
		return err
	}
	playerBody, _ := ecs.Get(w, player, component.PhysicsBodyComponent.Kind())

	robot, err := entity.NewRobotSoldier(w, physics, arenaSpec.Robot.X, arenaSpec.Robot.Y, playerBody.Body, robotSpec, rocketSpec, entity.RobotOptions{
		Logger:       s.log,
		Rand:         s.opts.Rand,
		LoadClip:     s.opts.LoadClip,
		OnTransition: s.opts.OnTransition,
	})
	if err != nil {
		return err
	}

	s.World = w
	s.Physics = physics
	s.Spec = arenaSpec
	s.Level = level
	s.Player = player
	s.Robot = robot
	s.Scheduler = ecs.NewScheduler(
		system.NewPatrolSystem(),
		system.NewCombatTriggerSystem(),
		system.NewAgentSystem(s.log),
		physics,
		system.NewCombatSystem(s.log),
		system.NewTTLSystem(),
		system.NewAudioSystem(),
		system.NewLevelSystem(s.log, s.opts.OnLevelChange),
	)
	s.time = 0

	s.log.Info("arena loaded", "arena", arenaSpec.Name, "level", arenaSpec.Level, "robot", robot.Controller.ID())
	return nil
}

// Reload rebuilds the arena from the current prefab files. On error the
// running arena is left untouched.
func (s *Sim) Reload() error {
	prev := *s
	if err := s.load(); err != nil {
		*s = prev
		return err
	}
	if prev.Robot != nil {
		prev.Robot.Controller.Deactivate()
	}
	return nil
}

// Step advances the arena by dt seconds. The logic tick always runs before
// the physics step.
func (s *Sim) Step(dt float64) {
	if dt <= 0 || s.paused {
		return
	}
	s.time += dt
	s.Scheduler.Update(s.World, dt)
}

// Kill queues a death signal for the robot.
func (s *Sim) Kill(reason string) {
	if s.Robot == nil || !ecs.IsAlive(s.World, s.Robot.Entity) {
		return
	}
	_ = ecs.Add(s.World, s.Robot.Entity, component.DeathRequestComponent.Kind(), &component.DeathRequest{Reason: reason})
}

// MovePlayer sets the player's horizontal velocity, keeping its fall speed.
func (s *Sim) MovePlayer(dir float64) {
	pb, ok := ecs.Get(s.World, s.Player, component.PhysicsBodyComponent.Kind())
	if !ok || pb.Body == nil {
		return
	}
	v := pb.Body.Velocity()
	v.X = dir * s.Spec.Player.Speed
	pb.Body.SetVelocityVector(v)
}

// Pause freezes the arena. Steps are dropped until Resume.
func (s *Sim) Pause()       { s.paused = true }
func (s *Sim) Resume()      { s.paused = false }
func (s *Sim) Paused() bool { return s.paused }

func (s *Sim) Time() float64 {
	return s.time
}

func (s *Sim) PlayerPosition() cp.Vector {
	if pb, ok := ecs.Get(s.World, s.Player, component.PhysicsBodyComponent.Kind()); ok && pb.Body != nil {
		return pb.Body.Position()
	}
	return cp.Vector{}
}

func (s *Sim) PlayerHealth() (current, maxHP int) {
	if h, ok := ecs.Get(s.World, s.Player, component.HealthComponent.Kind()); ok {
		return h.Current, h.Max
	}
	return 0, 0
}

func (s *Sim) LevelIndex() int {
	if l, ok := ecs.Get(s.World, s.Level, component.LevelComponent.Kind()); ok {
		return l.Index
	}
	return 0
}
