package ai

import (
	"fmt"

	"github.com/jakecoffman/cp"
)

// Config holds the controller's tuning. Durations are in seconds and
// distances in world units.
type Config struct {
	Speed float64

	IdleDelay      float64 // idle time before engaging
	ReplanInterval float64 // pursue time before a periodic replan
	MeleeDuration  float64 // melee time before returning to idle
	RangedRecover  float64 // ranged time before returning to idle once close

	WaypointReachDistance float64
	RangedDistance        float64

	SwingDuration     float64
	RangedStartDelay  float64
	RangedInterval    float64
	VoiceLineInterval float64

	// MuzzleOffset is local to the agent: X along forward, Y along the
	// vertical axis.
	MuzzleOffset cp.Vector

	SwingClip  string
	SpawnClip  string
	VoiceLines []string
}

func DefaultConfig() Config {
	return Config{
		Speed:                 6,
		IdleDelay:             1.0,
		ReplanInterval:        1.0,
		MeleeDuration:         1.5,
		RangedRecover:         1.0,
		WaypointReachDistance: 3,
		RangedDistance:        10,
		SwingDuration:         0.25,
		RangedStartDelay:      3,
		RangedInterval:        1.5,
		VoiceLineInterval:     10,
	}
}

func (c Config) Validate() error {
	if c.Speed < 0 {
		return fmt.Errorf("%w: negative speed %v", ErrInvalidConfig, c.Speed)
	}
	durations := []struct {
		name string
		v    float64
	}{
		{"idle_delay", c.IdleDelay},
		{"replan_interval", c.ReplanInterval},
		{"melee_duration", c.MeleeDuration},
		{"ranged_recover", c.RangedRecover},
		{"swing_duration", c.SwingDuration},
		{"ranged_start_delay", c.RangedStartDelay},
	}
	for _, d := range durations {
		if d.v < 0 {
			return fmt.Errorf("%w: negative %s %v", ErrInvalidConfig, d.name, d.v)
		}
	}
	// Zero would fire on every tick.
	if c.RangedInterval <= 0 {
		return fmt.Errorf("%w: ranged_interval must be positive", ErrInvalidConfig)
	}
	if c.VoiceLineInterval <= 0 {
		return fmt.Errorf("%w: voice_line_interval must be positive", ErrInvalidConfig)
	}
	if c.WaypointReachDistance <= 0 {
		return fmt.Errorf("%w: waypoint_reach_distance must be positive", ErrInvalidConfig)
	}
	if c.RangedDistance <= 0 {
		return fmt.Errorf("%w: ranged_distance must be positive", ErrInvalidConfig)
	}
	return nil
}
