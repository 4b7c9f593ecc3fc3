package system

import (
	"io"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/bossfight/ai"
	"github.com/milk9111/bossfight/ecs"
	"github.com/milk9111/bossfight/ecs/component"
)

func quietLogger() *log.Logger {
	return log.New(io.Discard)
}

func addBounds(t *testing.T, w *ecs.World, width, height float64) {
	t.Helper()
	e := ecs.CreateEntity(w)
	if err := ecs.Add(w, e, component.LevelBoundsComponent.Kind(), &component.LevelBounds{Width: width, Height: height}); err != nil {
		t.Fatalf("add bounds: %v", err)
	}
}

func addPlayerAt(t *testing.T, w *ecs.World, x, y float64) ecs.Entity {
	t.Helper()
	e := ecs.CreateEntity(w)
	if err := ecs.Add(w, e, component.PlayerTagComponent.Kind(), &component.PlayerTag{}); err != nil {
		t.Fatalf("add player tag: %v", err)
	}
	if err := ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{X: x, Y: y}); err != nil {
		t.Fatalf("add player transform: %v", err)
	}
	if err := ecs.Add(w, e, component.HealthComponent.Kind(), &component.Health{Max: 10, Current: 10}); err != nil {
		t.Fatalf("add player health: %v", err)
	}
	return e
}

func addObstacle(t *testing.T, w *ecs.World, x, y, width, height float64) {
	t.Helper()
	e := ecs.CreateEntity(w)
	_ = ecs.Add(w, e, component.ObstacleComponent.Kind(), &component.Obstacle{})
	_ = ecs.Add(w, e, component.PhysicsBodyComponent.Kind(), &component.PhysicsBody{Width: width, Height: height, Static: true})
	if err := ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{X: x, Y: y}); err != nil {
		t.Fatalf("add obstacle: %v", err)
	}
}

// point is a fixed ai.Target.
type point cp.Vector

func (p point) Position() cp.Vector { return cp.Vector(p) }

type fakeClip struct {
	playing bool
	plays   int
	pauses  int
	rewinds int
	volume  float64
}

func (f *fakeClip) IsPlaying() bool { return f.playing }
func (f *fakeClip) Rewind() error   { f.rewinds++; return nil }
func (f *fakeClip) Play()           { f.playing = true; f.plays++ }
func (f *fakeClip) Pause()          { f.playing = false; f.pauses++ }
func (f *fakeClip) SetVolume(v float64) {
	f.volume = v
}

type recordingAudio struct {
	played     []string
	interrupts []bool
}

func (r *recordingAudio) Play(clip string, interrupt bool) {
	r.played = append(r.played, clip)
	r.interrupts = append(r.interrupts, interrupt)
}
func (r *recordingAudio) PlayRandom(clips []string, interrupt bool) {
	if len(clips) > 0 {
		r.Play(clips[0], interrupt)
	}
}

func newTestController(t *testing.T, w *ecs.World, body *cp.Body, target ai.Target) *ai.Controller {
	t.Helper()
	c, err := ai.New(ai.DefaultConfig(), body, target, NewGridNavigator(w, body, 1), ai.Options{Logger: quietLogger()})
	if err != nil {
		t.Fatalf("new controller: %v", err)
	}
	return c
}
