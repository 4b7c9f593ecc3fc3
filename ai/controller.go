package ai

import (
	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/jakecoffman/cp"
)

// Options carries the optional collaborators. Nil fields fall back to
// no-op implementations.
type Options struct {
	Spawner ProjectileSpawner
	Audio   AudioService
	Level   LevelProgression
	Weapon  MeleeWeapon
	Logger  *log.Logger

	// OnTransition is called after every state change, self-transitions
	// included.
	OnTransition func(from, to State)
}

// Controller is the robot soldier's behavior core. It is driven by Tick
// (logic) and ApplyVelocity (physics), always from a single goroutine.
type Controller struct {
	id  uuid.UUID
	cfg Config
	log *log.Logger

	body    Body
	target  Target
	nav     Navigator
	spawner ProjectileSpawner
	audio   AudioService
	level   LevelProgression
	weapon  MeleeWeapon

	onTransition func(from, to State)

	state          State
	stateElapsed   float64
	now            float64
	forward        cp.Vector
	targetVelocity cp.Vector
	pathNodeIndex  int
	inMeleeRange   bool
	distance       float64
	active         bool

	swing  meleeSwing
	ranged rangedLoop
	voice  voiceLines
}

// New binds a controller to its body, target and navigator and plays the
// spawn voice line.
func New(cfg Config, body Body, target Target, nav Navigator, opts Options) (*Controller, error) {
	if body == nil {
		return nil, ErrNoBody
	}
	if target == nil {
		return nil, ErrNoTarget
	}
	if nav == nil {
		return nil, ErrNoNavigator
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	c := &Controller{
		id:           uuid.New(),
		cfg:          cfg,
		body:         body,
		target:       target,
		nav:          nav,
		spawner:      opts.Spawner,
		audio:        opts.Audio,
		level:        opts.Level,
		weapon:       opts.Weapon,
		onTransition: opts.OnTransition,
		state:        StateIdle,
		forward:      cp.Vector{X: 1},
		active:       true,
	}
	if c.spawner == nil {
		c.spawner = nopSpawner{}
	}
	if c.audio == nil {
		c.audio = nopAudio{}
	}
	if c.level == nil {
		c.level = nopLevel{}
	}
	if c.weapon == nil {
		c.weapon = nopWeapon{}
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}
	c.log = logger.With("agent", c.id.String()[:8])

	c.distance = body.Position().Distance(target.Position())
	c.startVoiceLines()
	return c, nil
}

// Tick advances the controller by dt seconds: one FSM evaluation followed by
// the resume points of any waiting routines. Dead or deactivated
// controllers ignore ticks.
func (c *Controller) Tick(dt float64) {
	if c.terminal() {
		return
	}
	if dt < 0 {
		dt = 0
	}
	c.now += dt
	c.stateElapsed += dt
	c.distance = c.body.Position().Distance(c.target.Position())

	switch c.state {
	case StateIdle:
		c.updateIdle()
	case StatePursue:
		c.updatePursue()
	case StateMelee:
		c.updateMelee()
	case StateRanged:
		c.updateRanged()
	case StateDead:
	default:
		c.log.Error("invalid state, resetting to idle", "state", int(c.state))
		c.setState(StateIdle)
	}

	c.resumeSwing()
	c.resumeRanged()
	c.resumeVoiceLines()
}

// ApplyVelocity writes the target velocity into the body. Called once per
// physics step, after Tick.
func (c *Controller) ApplyVelocity() {
	c.body.SetVelocityVector(c.targetVelocity)
}

// SetInMeleeRange is the combat trigger input. The last write before a tick
// wins.
func (c *Controller) SetInMeleeRange(inRange bool) {
	if c.terminal() {
		return
	}
	c.inMeleeRange = inRange
}

// Death moves the agent to its terminal state. Repeated calls are no-ops.
func (c *Controller) Death() {
	if c.state == StateDead {
		return
	}
	c.nav.Disable()
	c.targetVelocity = cp.Vector{}
	c.level.Advance()
	c.setState(StateDead)
	c.cancelRoutines()
	c.active = false
	c.log.Info("agent died", "elapsed", c.now)
}

// Deactivate stops every routine without dying, e.g. when the owning entity
// is removed from the world.
func (c *Controller) Deactivate() {
	c.cancelRoutines()
	c.active = false
}

func (c *Controller) updateIdle() {
	if !after(c.stateElapsed, c.cfg.IdleDelay) {
		return
	}
	if c.inMeleeRange {
		c.enterMelee()
		return
	}
	c.beginPursue()
}

func (c *Controller) beginPursue() bool {
	if !c.requestPath() {
		return false
	}
	if c.distance >= c.cfg.RangedDistance {
		c.scheduleRanged()
	}
	c.pathNodeIndex = 0
	c.setState(StatePursue)
	return true
}

func (c *Controller) enterMelee() {
	c.faceTarget()
	c.targetVelocity = cp.Vector{}
	c.setState(StateMelee)
	c.startSwing()
}

func (c *Controller) updateMelee() {
	if reached(c.stateElapsed, c.cfg.MeleeDuration) {
		c.setState(StateIdle)
	}
}

func (c *Controller) updateRanged() {
	if c.distance < c.cfg.RangedDistance && reached(c.stateElapsed, c.cfg.RangedRecover) {
		c.setState(StateIdle)
	}
}

func (c *Controller) requestPath() bool {
	if c.nav.RequestPathTo(c.target.Position()) {
		return true
	}
	c.log.Warn("path request failed", "state", c.state, "distance", c.distance)
	return false
}

func (c *Controller) setState(next State) {
	prev := c.state
	c.state = next
	c.stateElapsed = 0
	c.log.Debug("transition", "from", prev, "to", next, "t", c.now)
	if c.onTransition != nil {
		c.onTransition(prev, next)
	}
}

// faceTarget turns the agent toward the target on the horizontal axis. A
// zero direction keeps the previous heading.
func (c *Controller) faceTarget() {
	c.faceTowards(c.target.Position())
}

func (c *Controller) faceTowards(p cp.Vector) {
	dir := horizontal(p.Sub(c.body.Position()))
	if dir.LengthSq() == 0 {
		return
	}
	c.forward = dir.Normalize()
}

func (c *Controller) terminal() bool {
	return c.state == StateDead || !c.active
}

// timeEpsilon absorbs rounding in summed frame steps, keeping each gate on
// its nominal frame at 60 TPS.
const timeEpsilon = 1e-6

// reached reports t >= gate.
func reached(t, gate float64) bool { return t >= gate-timeEpsilon }

// after reports t > gate.
func after(t, gate float64) bool { return t > gate+timeEpsilon }

func horizontal(v cp.Vector) cp.Vector {
	v.Y = 0
	return v
}

func (c *Controller) ID() uuid.UUID             { return c.id }
func (c *Controller) State() State              { return c.state }
func (c *Controller) StateElapsed() float64     { return c.stateElapsed }
func (c *Controller) Forward() cp.Vector        { return c.forward }
func (c *Controller) TargetVelocity() cp.Vector { return c.targetVelocity }
func (c *Controller) PathNodeIndex() int        { return c.pathNodeIndex }
func (c *Controller) InMeleeRange() bool        { return c.inMeleeRange }
func (c *Controller) Distance() float64         { return c.distance }
func (c *Controller) Active() bool              { return c.active }
func (c *Controller) Config() Config            { return c.cfg }

// Snapshot is a comparable copy of the controller's observable fields.
type Snapshot struct {
	State           State
	StateElapsed    float64
	Forward         cp.Vector
	TargetVelocity  cp.Vector
	PathNodeIndex   int
	InMeleeRange    bool
	Distance        float64
	Active          bool
	SwingActive     bool
	RangedScheduled bool
	VoiceLines      bool
}

func (c *Controller) Snapshot() Snapshot {
	return Snapshot{
		State:           c.state,
		StateElapsed:    c.stateElapsed,
		Forward:         c.forward,
		TargetVelocity:  c.targetVelocity,
		PathNodeIndex:   c.pathNodeIndex,
		InMeleeRange:    c.inMeleeRange,
		Distance:        c.distance,
		Active:          c.active,
		SwingActive:     c.swing.active,
		RangedScheduled: c.ranged.scheduled,
		VoiceLines:      c.voice.active,
	}
}
