package main

import (
	"fmt"
	"image/color"

	"github.com/charmbracelet/log"
	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/bossfight/ai"
	"github.com/milk9111/bossfight/arena"
	"github.com/milk9111/bossfight/ecs"
	"github.com/milk9111/bossfight/ecs/component"
	"github.com/milk9111/bossfight/prefabs"
	"golang.org/x/image/colornames"
)

const (
	baseWidth  = 1024
	baseHeight = 400

	unit    = 16.0
	originX = 32.0
	originY = 48.0
)

type Game struct {
	sim     *arena.Sim
	watcher *prefabs.Watcher
	pauseUI *ebitenui.UI
	log     *log.Logger
	debug   bool
	quit    bool
}

func NewGame(opts arena.Options, watch, debug bool) (*Game, error) {
	sim, err := arena.New(opts)
	if err != nil {
		return nil, err
	}
	g := &Game{sim: sim, log: opts.Logger, debug: debug}
	g.pauseUI = NewPauseUI(g)
	if watch {
		w, err := prefabs.NewWatcher(prefabs.Dir)
		if err != nil {
			g.log.Warn("prefab watch disabled", "dir", prefabs.Dir, "err", err)
		} else {
			g.watcher = w
		}
	}
	return g, nil
}

func (g *Game) Close() {
	if g.watcher != nil {
		_ = g.watcher.Close()
	}
}

func (g *Game) Update() error {
	if g.quit {
		return ebiten.Termination
	}
	g.pollWatcher()

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		if g.sim.Paused() {
			g.sim.Resume()
		} else {
			g.sim.Pause()
		}
	}
	if g.sim.Paused() {
		g.pauseUI.Update()
		return nil
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.reload("manual")
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyK) {
		g.sim.Kill("player")
	}

	dir := 0.0
	if ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyArrowLeft) {
		dir--
	}
	if ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyArrowRight) {
		dir++
	}
	g.sim.MovePlayer(dir)

	g.sim.Step(1.0 / float64(ebiten.TPS()))
	return nil
}

func (g *Game) pollWatcher() {
	if g.watcher == nil {
		return
	}
	for {
		select {
		case name, ok := <-g.watcher.Events:
			if !ok {
				g.watcher = nil
				return
			}
			g.reload(name)
		case err, ok := <-g.watcher.Errors:
			if ok {
				g.log.Warn("prefab watch", "err", err)
			}
		default:
			return
		}
	}
}

func (g *Game) reload(reason string) {
	if err := g.sim.Reload(); err != nil {
		g.log.Error("reload failed", "reason", reason, "err", err)
		return
	}
	g.log.Info("arena reloaded", "reason", reason)
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(colornames.Black)
	w := g.sim.World
	spec := g.sim.Spec

	vector.StrokeRect(screen, sx(0), sy(0), float32(spec.Width*unit), float32(spec.GroundY*unit), 1, colornames.Dimgray, false)
	vector.StrokeLine(screen, sx(0), sy(spec.GroundY), sx(spec.Width), sy(spec.GroundY), 2, colornames.Gray, false)

	ecs.ForEach3(w, component.ObstacleComponent.Kind(), component.PhysicsBodyComponent.Kind(), component.TransformComponent.Kind(), func(_ ecs.Entity, _ *component.Obstacle, pb *component.PhysicsBody, t *component.Transform) {
		drawBox(screen, t.X, t.Y, pb.Width, pb.Height, colornames.Slategray)
	})

	if pb, ok := ecs.Get(w, g.sim.Player, component.PhysicsBodyComponent.Kind()); ok {
		pos := g.sim.PlayerPosition()
		drawBox(screen, pos.X, pos.Y, pb.Width, pb.Height, colornames.Steelblue)
	}

	g.drawRobot(screen)

	ecs.ForEach2(w, component.RocketComponent.Kind(), component.TransformComponent.Kind(), func(_ ecs.Entity, r *component.Rocket, t *component.Transform) {
		vector.FillCircle(screen, sx(t.X), sy(t.Y), float32(r.Radius*unit), colornames.Orange, true)
	})

	c := g.sim.Robot.Controller
	hp, maxHP := g.sim.PlayerHealth()
	ebitenutil.DebugPrint(screen, fmt.Sprintf(
		"TPS: %.0f  t=%.1fs  level %d\nrobot: %s (%.2fs)  dist %.1f  node %d  melee-range %v\nplayer hp %d/%d  rockets %d\n[A/D] move  [K] kill robot  [R] reload  [Esc] pause",
		ebiten.ActualTPS(), g.sim.Time(), g.sim.LevelIndex(),
		c.State(), c.StateElapsed(), c.Distance(), c.PathNodeIndex(), c.InMeleeRange(),
		hp, maxHP, g.sim.Robot.Spawner.Spawned(),
	))

	if g.sim.Paused() {
		g.pauseUI.Draw(screen)
	}
}

func (g *Game) drawRobot(screen *ebiten.Image) {
	w := g.sim.World
	robot := g.sim.Robot
	pb, ok := ecs.Get(w, robot.Entity, component.PhysicsBodyComponent.Kind())
	if !ok || pb.Body == nil {
		return
	}
	pos := pb.Body.Position()
	c := robot.Controller
	drawBox(screen, pos.X, pos.Y, pb.Width, pb.Height, stateColor(c.State()))

	fwd := c.Forward()
	vector.StrokeLine(screen, sx(pos.X), sy(pos.Y), sx(pos.X+fwd.X), sy(pos.Y+fwd.Y), 2, colornames.White, true)

	if weapon, ok := ecs.Get(w, robot.Entity, component.MeleeWeaponComponent.Kind()); ok && weapon.Active {
		vector.StrokeCircle(screen, sx(pos.X), sy(pos.Y), float32(weapon.Reach*unit), 1, colornames.Red, true)
	}

	if !g.debug {
		return
	}
	wps := robot.Navigator.Waypoints()
	for i, wp := range wps {
		clr := colornames.Lightgrey
		if i == c.PathNodeIndex() {
			clr = colornames.Yellow
		}
		vector.FillCircle(screen, sx(wp.X), sy(wp.Y), 2, clr, true)
	}
}

func stateColor(s ai.State) color.Color {
	switch s {
	case ai.StatePursue:
		return colornames.Gold
	case ai.StateMelee:
		return colornames.Crimson
	case ai.StateRanged:
		return colornames.Darkorange
	case ai.StateDead:
		return colornames.Darkslategray
	default:
		return colornames.Seagreen
	}
}

func drawBox(screen *ebiten.Image, cx, cy, w, h float64, clr color.Color) {
	vector.FillRect(screen, sx(cx-w/2), sy(cy-h/2), float32(w*unit), float32(h*unit), clr, false)
}

func sx(x float64) float32 { return float32(originX + x*unit) }
func sy(y float64) float32 { return float32(originY + y*unit) }

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	return baseWidth, baseHeight
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}
