package system

import (
	"math/rand"

	"github.com/charmbracelet/log"
	"github.com/milk9111/bossfight/ecs"
	"github.com/milk9111/bossfight/ecs/component"
)

type AudioSystem struct{}

func NewAudioSystem() *AudioSystem {
	return &AudioSystem{}
}

func (a *AudioSystem) Update(w *ecs.World, _ float64) {
	ecs.ForEach(w, component.AudioComponent.Kind(), func(_ ecs.Entity, audioComp *component.Audio) {
		count := min(len(audioComp.Players), len(audioComp.Play), len(audioComp.Stop))

		for i := 0; i < count; i++ {
			if !audioComp.Stop[i] {
				continue
			}
			if player := audioComp.Players[i]; player != nil && player.IsPlaying() {
				player.Pause()
			}
			audioComp.Stop[i] = false
		}

		for i := 0; i < count; i++ {
			if !audioComp.Play[i] {
				continue
			}
			audioComp.Play[i] = false

			interrupt := i < len(audioComp.Interrupt) && audioComp.Interrupt[i]
			if i < len(audioComp.Interrupt) {
				audioComp.Interrupt[i] = false
			}
			if interrupt {
				for j, other := range audioComp.Players[:count] {
					if j != i && other != nil && other.IsPlaying() {
						other.Pause()
					}
				}
			}

			player := audioComp.Players[i]
			if player == nil || (player.IsPlaying() && !interrupt) {
				continue
			}
			if i < len(audioComp.Volume) {
				player.SetVolume(audioComp.Volume[i])
			}
			_ = player.Rewind()
			player.Play()
		}
	})
}

// AudioClips implements ai.AudioService by flagging clips on an entity's
// Audio bank. AudioSystem does the playback.
type AudioClips struct {
	world  *ecs.World
	entity ecs.Entity
	rng    *rand.Rand
	log    *log.Logger
}

func NewAudioClips(w *ecs.World, e ecs.Entity, rng *rand.Rand, logger *log.Logger) *AudioClips {
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}
	if logger == nil {
		logger = log.Default()
	}
	return &AudioClips{world: w, entity: e, rng: rng, log: logger}
}

func (c *AudioClips) Play(clip string, interrupt bool) {
	bank, ok := ecs.Get(c.world, c.entity, component.AudioComponent.Kind())
	if !ok {
		return
	}
	i := bank.Index(clip)
	if i < 0 || i >= len(bank.Play) {
		c.log.Warn("unknown audio clip", "clip", clip)
		return
	}
	bank.Play[i] = true
	if i < len(bank.Interrupt) {
		bank.Interrupt[i] = bank.Interrupt[i] || interrupt
	}
}

func (c *AudioClips) PlayRandom(clips []string, interrupt bool) {
	if len(clips) == 0 {
		return
	}
	c.Play(clips[c.rng.Intn(len(clips))], interrupt)
}
