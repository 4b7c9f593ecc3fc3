package prefabs

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

const (
	RobotSoldierFile = "robot_soldier.yaml"
	RocketFile       = "rocket.yaml"
	ArenaFile        = "arena.yaml"
)

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

type RobotSoldierSpec struct {
	Name  string  `yaml:"name"`
	Speed float64 `yaml:"speed"`

	IdleDelay      float64 `yaml:"idle_delay"`
	ReplanInterval float64 `yaml:"replan_interval"`
	MeleeDuration  float64 `yaml:"melee_duration"`
	RangedRecover  float64 `yaml:"ranged_recover"`

	WaypointReachDistance float64 `yaml:"waypoint_reach_distance"`
	RangedDistance        float64 `yaml:"ranged_distance"`

	SwingDuration     float64 `yaml:"swing_duration"`
	RangedStartDelay  float64 `yaml:"ranged_start_delay"`
	RangedInterval    float64 `yaml:"ranged_interval"`
	VoiceLineInterval float64 `yaml:"voice_line_interval"`

	MuzzleOffset VectorSpec `yaml:"muzzle_offset"`
	SwingClip    string     `yaml:"swing_clip"`
	SpawnClip    string     `yaml:"spawn_clip"`
	VoiceLines   []string   `yaml:"voice_lines"`

	NavCellSize   float64      `yaml:"nav_cell_size"`
	TriggerRadius float64      `yaml:"trigger_radius"`
	Collider      ColliderSpec `yaml:"collider"`
	Melee         MeleeSpec    `yaml:"melee"`
	Audio         []AudioSpec  `yaml:"audio"`
}

func LoadRobotSoldierSpec() (*RobotSoldierSpec, error) {
	spec, err := LoadSpec[RobotSoldierSpec](RobotSoldierFile)
	if err != nil {
		return nil, err
	}
	return &spec, nil
}

type RocketSpec struct {
	Name     string      `yaml:"name"`
	Speed    float64     `yaml:"speed"`
	Damage   int         `yaml:"damage"`
	Radius   float64     `yaml:"radius"`
	Mass     float64     `yaml:"mass"`
	Lifetime float64     `yaml:"lifetime"`
	FireClip string      `yaml:"fire_clip"`
	Audio    []AudioSpec `yaml:"audio"`
}

func LoadRocketSpec() (*RocketSpec, error) {
	spec, err := LoadSpec[RocketSpec](RocketFile)
	if err != nil {
		return nil, err
	}
	return &spec, nil
}

type ArenaSpec struct {
	Name      string         `yaml:"name"`
	Level     int            `yaml:"level"`
	Width     float64        `yaml:"width"`
	Height    float64        `yaml:"height"`
	Gravity   float64        `yaml:"gravity"`
	GroundY   float64        `yaml:"ground_y"`
	Player    PlayerSpec     `yaml:"player"`
	Robot     VectorSpec     `yaml:"robot"`
	Obstacles []ObstacleSpec `yaml:"obstacles"`
}

func LoadArenaSpec(filename string) (*ArenaSpec, error) {
	if filename == "" {
		filename = ArenaFile
	}
	spec, err := LoadSpec[ArenaSpec](filename)
	if err != nil {
		return nil, err
	}
	return &spec, nil
}

type PlayerSpec struct {
	Name     string       `yaml:"name"`
	X        float64      `yaml:"x"`
	Y        float64      `yaml:"y"`
	Speed    float64      `yaml:"speed"`
	Health   int          `yaml:"health"`
	Collider ColliderSpec `yaml:"collider"`
	Patrol   *PatrolSpec  `yaml:"patrol"`
}

type PatrolSpec struct {
	MinX  float64 `yaml:"min_x"`
	MaxX  float64 `yaml:"max_x"`
	Speed float64 `yaml:"speed"`
}

type ObstacleSpec struct {
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

type VectorSpec struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

type ColliderSpec struct {
	Width    float64 `yaml:"width"`
	Height   float64 `yaml:"height"`
	Mass     float64 `yaml:"mass"`
	Friction float64 `yaml:"friction"`
}

type MeleeSpec struct {
	Reach  float64 `yaml:"reach"`
	Damage int     `yaml:"damage"`
}

type AudioSpec struct {
	Name   string  `yaml:"name"`
	File   string  `yaml:"file"`
	Volume float64 `yaml:"volume"`
}
