package arena

import (
	"io"
	"math"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/milk9111/bossfight/ai"
	"github.com/milk9111/bossfight/ecs"
	"github.com/milk9111/bossfight/ecs/component"
)

const step = 1.0 / 60.0

type recorder struct {
	states []ai.State
	levels [][2]int
}

func newSim(t *testing.T, patrol bool) (*Sim, *recorder) {
	t.Helper()
	rec := &recorder{}
	s, err := New(Options{
		Patrol:        patrol,
		Logger:        log.New(io.Discard),
		OnTransition:  func(_, to ai.State) { rec.states = append(rec.states, to) },
		OnLevelChange: func(from, to int) { rec.levels = append(rec.levels, [2]int{from, to}) },
	})
	if err != nil {
		t.Fatalf("new sim: %v", err)
	}
	return s, rec
}

func run(s *Sim, seconds float64) {
	for n := int(seconds / step); n > 0; n-- {
		s.Step(step)
	}
}

func (r *recorder) saw(state ai.State) bool {
	for _, s := range r.states {
		if s == state {
			return true
		}
	}
	return false
}

func TestSimEngagesFromRange(t *testing.T) {
	s, rec := newSim(t, false)
	c := s.Robot.Controller

	run(s, 0.5)
	if c.State() != ai.StateIdle {
		t.Fatalf("expected idle during the spawn delay, got %s", c.State())
	}

	run(s, 1)
	if c.State() != ai.StatePursue {
		t.Fatalf("expected pursue after the idle delay, got %s", c.State())
	}
	if c.TargetVelocity().X <= 0 {
		t.Fatalf("expected robot heading toward the player, got %v", c.TargetVelocity())
	}

	run(s, 4)
	if !rec.saw(ai.StateRanged) {
		t.Fatalf("expected a ranged engagement, saw %v", rec.states)
	}
	if s.Robot.Spawner.Spawned() == 0 {
		t.Fatalf("expected rockets fired")
	}

	run(s, 4)
	if hp, maxHP := s.PlayerHealth(); hp >= maxHP {
		t.Fatalf("expected rockets to hit the player, health %d/%d", hp, maxHP)
	}
}

func TestSimReachesMelee(t *testing.T) {
	s, rec := newSim(t, true)
	run(s, 60)
	if !rec.saw(ai.StateMelee) {
		t.Fatalf("expected melee engagement within a minute, saw %v", rec.states)
	}
	weapon, _ := ecs.Get(s.World, s.Robot.Entity, component.MeleeWeaponComponent.Kind())
	if weapon.Swings == 0 {
		t.Fatalf("expected at least one swing")
	}
}

func TestSimKillAdvancesLevelOnce(t *testing.T) {
	s, rec := newSim(t, false)
	start := s.LevelIndex()
	run(s, 2)

	s.Kill("test")
	s.Step(step)
	s.Kill("again")
	run(s, 1)

	c := s.Robot.Controller
	if c.State() != ai.StateDead || c.Active() {
		t.Fatalf("expected dead and inactive robot, got %s active=%v", c.State(), c.Active())
	}
	if s.LevelIndex() != start+1 {
		t.Fatalf("expected level %d, got %d", start+1, s.LevelIndex())
	}
	if len(rec.levels) != 1 {
		t.Fatalf("expected exactly one level change, got %v", rec.levels)
	}
	if !s.Robot.Navigator.Disabled() {
		t.Fatalf("expected navigator disabled")
	}

	pb, _ := ecs.Get(s.World, s.Robot.Entity, component.PhysicsBodyComponent.Kind())
	if v := pb.Body.Velocity(); math.Abs(v.X) > 1e-9 {
		t.Fatalf("expected dead robot to stand still, got %v", v)
	}

	before := c.Snapshot()
	run(s, 5)
	if c.Snapshot() != before {
		t.Fatalf("expected dead controller unchanged")
	}
}

func TestSimReload(t *testing.T) {
	s, _ := newSim(t, false)
	old := s.Robot.Controller
	oldWorld := s.World
	run(s, 2)

	if err := s.Reload(); err != nil {
		t.Fatalf("reload: %v", err)
	}
	if s.World == oldWorld || s.Robot.Controller == old {
		t.Fatalf("expected a fresh world and robot")
	}
	if old.Active() {
		t.Fatalf("expected previous controller deactivated")
	}
	if s.Time() != 0 || s.Robot.Controller.State() != ai.StateIdle {
		t.Fatalf("expected reset clock and idle robot")
	}
}

func TestSimReloadKeepsArenaOnError(t *testing.T) {
	s, _ := newSim(t, false)
	world := s.World
	s.opts.ArenaFile = "missing.yaml"

	if err := s.Reload(); err == nil {
		t.Fatalf("expected reload error")
	}
	if s.World != world || !s.Robot.Controller.Active() {
		t.Fatalf("expected running arena kept")
	}
}

func TestSimMovePlayer(t *testing.T) {
	s, _ := newSim(t, false)
	start := s.PlayerPosition()
	for i := 0; i < 30; i++ {
		s.MovePlayer(1)
		s.Step(step)
	}
	if s.PlayerPosition().X <= start.X {
		t.Fatalf("expected player to move right from %v, now %v", start, s.PlayerPosition())
	}
}

func TestSimPauseFreezesArena(t *testing.T) {
	s, rec := newSim(t, false)
	c := s.Robot.Controller

	s.Pause()
	run(s, 3)
	if s.Time() != 0 || c.StateElapsed() != 0 || len(rec.states) != 0 {
		t.Fatalf("expected frozen arena, got t=%v elapsed=%v transitions=%v", s.Time(), c.StateElapsed(), rec.states)
	}

	s.Resume()
	run(s, 1.5)
	if s.Paused() || c.State() != ai.StatePursue {
		t.Fatalf("expected pursue after resume, got %s", c.State())
	}
}
