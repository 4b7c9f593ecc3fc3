package ai

import (
	"io"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/jakecoffman/cp"
)

type fakeBody struct {
	pos cp.Vector
	vel cp.Vector
}

func (b *fakeBody) Position() cp.Vector           { return b.pos }
func (b *fakeBody) Velocity() cp.Vector           { return b.vel }
func (b *fakeBody) SetVelocityVector(v cp.Vector) { b.vel = v }

type fakeTarget struct {
	pos cp.Vector
}

func (t *fakeTarget) Position() cp.Vector { return t.pos }

type fakeNav struct {
	ok       bool
	nodes    []cp.Vector
	requests int
	disabled bool
}

func (n *fakeNav) RequestPathTo(cp.Vector) bool {
	n.requests++
	return n.ok
}

func (n *fakeNav) Waypoints() []cp.Vector { return n.nodes }
func (n *fakeNav) Disable()               { n.disabled = true }

type fakeSpawner struct {
	spawns []Transform
}

func (s *fakeSpawner) Spawn(origin Transform) { s.spawns = append(s.spawns, origin) }

type fakeAudio struct {
	played  []string
	randoms int
}

func (a *fakeAudio) Play(clip string, _ bool)      { a.played = append(a.played, clip) }
func (a *fakeAudio) PlayRandom(_ []string, _ bool) { a.randoms++ }

type fakeLevel struct {
	advances int
}

func (l *fakeLevel) Advance() { l.advances++ }

type fakeWeapon struct {
	active  bool
	history []bool
	swings  int
}

func (w *fakeWeapon) SetActive(active bool) {
	w.active = active
	w.history = append(w.history, active)
}

func (w *fakeWeapon) Swing() { w.swings++ }

type rig struct {
	c       *Controller
	body    *fakeBody
	target  *fakeTarget
	nav     *fakeNav
	spawner *fakeSpawner
	audio   *fakeAudio
	level   *fakeLevel
	weapon  *fakeWeapon
	changes [][2]State
}

// newRig builds a controller at the origin with its target at targetX.
func newRig(t *testing.T, targetX float64, nodes ...cp.Vector) *rig {
	t.Helper()
	r := &rig{
		body:    &fakeBody{},
		target:  &fakeTarget{pos: cp.Vector{X: targetX}},
		nav:     &fakeNav{ok: true, nodes: nodes},
		spawner: &fakeSpawner{},
		audio:   &fakeAudio{},
		level:   &fakeLevel{},
		weapon:  &fakeWeapon{},
	}
	cfg := DefaultConfig()
	cfg.SwingClip = "shovel_swing"
	cfg.SpawnClip = "spawn"
	cfg.VoiceLines = []string{"a", "b", "c"}
	c, err := New(cfg, r.body, r.target, r.nav, Options{
		Spawner: r.spawner,
		Audio:   r.audio,
		Level:   r.level,
		Weapon:  r.weapon,
		Logger:  log.New(io.Discard),
		OnTransition: func(from, to State) {
			r.changes = append(r.changes, [2]State{from, to})
		},
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	r.c = c
	return r
}

// tickN ticks n times by dt.
func (r *rig) tickN(n int, dt float64) {
	for i := 0; i < n; i++ {
		r.c.Tick(dt)
	}
}
