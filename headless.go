package main

import (
	"fmt"

	"github.com/milk9111/bossfight/ai"
	"github.com/milk9111/bossfight/arena"
)

// runHeadless steps the arena at a fixed rate and logs every robot
// transition with its simulated time.
func runHeadless(opts arena.Options, seconds float64, tps int, killAfter float64) error {
	if seconds <= 0 {
		return fmt.Errorf("seconds must be positive, got %v", seconds)
	}

	var sim *arena.Sim
	counts := make(map[ai.State]int)
	opts.OnTransition = func(from, to ai.State) {
		counts[to]++
		t := 0.0
		if sim != nil {
			t = sim.Time()
		}
		opts.Logger.Info("transition", "t", fmt.Sprintf("%.2f", t), "from", from, "to", to)
	}

	sim, err := arena.New(opts)
	if err != nil {
		return err
	}

	dt := 1.0 / float64(tps)
	steps := int(seconds * float64(tps))
	killed := false
	for i := 0; i < steps; i++ {
		if killAfter > 0 && !killed && sim.Time() >= killAfter {
			sim.Kill("kill-after")
			killed = true
		}
		sim.Step(dt)
	}

	hp, maxHP := sim.PlayerHealth()
	c := sim.Robot.Controller
	opts.Logger.Info("run finished",
		"seconds", seconds,
		"state", c.State(),
		"pursue", counts[ai.StatePursue],
		"melee", counts[ai.StateMelee],
		"ranged", counts[ai.StateRanged],
		"rockets", sim.Robot.Spawner.Spawned(),
		"player_hp", fmt.Sprintf("%d/%d", hp, maxHP),
		"level", sim.LevelIndex(),
	)
	return nil
}
