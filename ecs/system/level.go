package system

import (
	"github.com/charmbracelet/log"
	"github.com/milk9111/bossfight/ecs"
	"github.com/milk9111/bossfight/ecs/component"
)

// LevelAdvancer implements ai.LevelProgression by queueing a
// LevelChangeRequest on the level entity.
type LevelAdvancer struct {
	world *ecs.World
}

func NewLevelAdvancer(w *ecs.World) *LevelAdvancer {
	return &LevelAdvancer{world: w}
}

func (l *LevelAdvancer) Advance() {
	e, ok := ecs.First(l.world, component.LevelComponent.Kind())
	if !ok {
		return
	}
	level, _ := ecs.Get(l.world, e, component.LevelComponent.Kind())
	_ = ecs.Add(l.world, e, component.LevelChangeRequestComponent.Kind(), &component.LevelChangeRequest{
		From: level.Index,
		To:   level.Index + 1,
	})
}

// LevelSystem applies queued level changes. OnChange is called once per
// applied request.
type LevelSystem struct {
	OnChange func(from, to int)
	log      *log.Logger
}

func NewLevelSystem(logger *log.Logger, onChange func(from, to int)) *LevelSystem {
	if logger == nil {
		logger = log.Default()
	}
	return &LevelSystem{OnChange: onChange, log: logger}
}

func (s *LevelSystem) Update(w *ecs.World, _ float64) {
	if w == nil {
		return
	}

	ecs.ForEach2(w, component.LevelChangeRequestComponent.Kind(), component.LevelComponent.Kind(), func(e ecs.Entity, req *component.LevelChangeRequest, level *component.Level) {
		ecs.Remove(w, e, component.LevelChangeRequestComponent.Kind())
		if req.From != level.Index {
			s.log.Warn("stale level change ignored", "from", req.From, "current", level.Index)
			return
		}
		level.Index = req.To
		s.log.Info("level advanced", "level", level.Name, "from", req.From, "to", req.To)
		if s.OnChange != nil {
			s.OnChange(req.From, req.To)
		}
	})
}
