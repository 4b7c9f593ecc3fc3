package entity

import (
	"fmt"
	"math/rand"

	"github.com/charmbracelet/log"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/bossfight/ai"
	"github.com/milk9111/bossfight/ecs"
	"github.com/milk9111/bossfight/ecs/component"
	"github.com/milk9111/bossfight/ecs/system"
	"github.com/milk9111/bossfight/prefabs"
)

type RobotOptions struct {
	Logger       *log.Logger
	Rand         *rand.Rand
	LoadClip     ClipLoader
	OnTransition func(from, to ai.State)
}

// Robot bundles the soldier entity with the collaborators wired into its
// controller.
type Robot struct {
	Entity     ecs.Entity
	Controller *ai.Controller
	Navigator  *system.GridNavigator
	Spawner    *system.RocketSpawner
}

// RobotConfig maps the prefab onto controller tuning.
func RobotConfig(spec *prefabs.RobotSoldierSpec) ai.Config {
	return ai.Config{
		Speed:                 spec.Speed,
		IdleDelay:             spec.IdleDelay,
		ReplanInterval:        spec.ReplanInterval,
		MeleeDuration:         spec.MeleeDuration,
		RangedRecover:         spec.RangedRecover,
		WaypointReachDistance: spec.WaypointReachDistance,
		RangedDistance:        spec.RangedDistance,
		SwingDuration:         spec.SwingDuration,
		RangedStartDelay:      spec.RangedStartDelay,
		RangedInterval:        spec.RangedInterval,
		VoiceLineInterval:     spec.VoiceLineInterval,
		MuzzleOffset:          cp.Vector{X: spec.MuzzleOffset.X, Y: spec.MuzzleOffset.Y},
		SwingClip:             spec.SwingClip,
		SpawnClip:             spec.SpawnClip,
		VoiceLines:            append([]string(nil), spec.VoiceLines...),
	}
}

func RocketConfig(spec *prefabs.RocketSpec) system.RocketConfig {
	return system.RocketConfig{
		Speed:    spec.Speed,
		Damage:   spec.Damage,
		Radius:   spec.Radius,
		Mass:     spec.Mass,
		Lifetime: spec.Lifetime,
		FireClip: spec.FireClip,
	}
}

// NewRobotSoldier spawns the soldier at (x, y) hunting target.
func NewRobotSoldier(w *ecs.World, physics *system.PhysicsSystem, x, y float64, target ai.Target, robotSpec *prefabs.RobotSoldierSpec, rocketSpec *prefabs.RocketSpec, opts RobotOptions) (*Robot, error) {
	if robotSpec == nil || rocketSpec == nil {
		return nil, fmt.Errorf("robot: missing spec")
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}

	entity := ecs.CreateEntity(w)

	pb, err := physics.AddBox(w, entity, x, y, component.PhysicsBody{
		Width:    robotSpec.Collider.Width,
		Height:   robotSpec.Collider.Height,
		Mass:     robotSpec.Collider.Mass,
		Friction: robotSpec.Collider.Friction,
	})
	if err != nil {
		return nil, fmt.Errorf("robot: add physics body: %w", err)
	}

	clips := append(append([]prefabs.AudioSpec(nil), robotSpec.Audio...), rocketSpec.Audio...)
	audioComp, err := buildAudioComponent(clips, opts.LoadClip)
	if err != nil {
		return nil, fmt.Errorf("robot: build audio component: %w", err)
	}
	if audioComp != nil {
		if err := ecs.Add(w, entity, component.AudioComponent.Kind(), audioComp); err != nil {
			return nil, fmt.Errorf("robot: add audio: %w", err)
		}
	}

	if err := ecs.Add(w, entity, component.MeleeWeaponComponent.Kind(), &component.MeleeWeapon{
		Reach:  robotSpec.Melee.Reach,
		Damage: robotSpec.Melee.Damage,
	}); err != nil {
		return nil, fmt.Errorf("robot: add melee weapon: %w", err)
	}

	if err := ecs.Add(w, entity, component.CombatTriggerComponent.Kind(), &component.CombatTrigger{Radius: robotSpec.TriggerRadius}); err != nil {
		return nil, fmt.Errorf("robot: add combat trigger: %w", err)
	}

	audio := system.NewAudioClips(w, entity, opts.Rand, logger)
	nav := system.NewGridNavigator(w, pb.Body, robotSpec.NavCellSize)
	spawner := system.NewRocketSpawner(w, physics, RocketConfig(rocketSpec), audio, logger)

	controller, err := ai.New(RobotConfig(robotSpec), pb.Body, target, nav, ai.Options{
		Spawner:      spawner,
		Audio:        audio,
		Level:        system.NewLevelAdvancer(w),
		Weapon:       system.NewMeleeWeaponAdapter(w, entity),
		Logger:       logger,
		OnTransition: opts.OnTransition,
	})
	if err != nil {
		return nil, fmt.Errorf("robot: new controller: %w", err)
	}

	if err := ecs.Add(w, entity, component.AgentComponent.Kind(), &component.Agent{
		Name:       robotSpec.Name,
		Controller: controller,
	}); err != nil {
		return nil, fmt.Errorf("robot: add agent: %w", err)
	}

	return &Robot{
		Entity:     entity,
		Controller: controller,
		Navigator:  nav,
		Spawner:    spawner,
	}, nil
}
