package entity

import (
	"fmt"

	"github.com/milk9111/bossfight/ecs/component"
	"github.com/milk9111/bossfight/prefabs"
)

// ClipLoader opens an audio asset. A nil loader builds a silent bank whose
// clips can still be flagged and observed.
type ClipLoader func(file string) (component.ClipPlayer, error)

func buildAudioComponent(audioSpecs []prefabs.AudioSpec, load ClipLoader) (*component.Audio, error) {
	n := len(audioSpecs)
	if n == 0 {
		return nil, nil
	}

	bank := &component.Audio{
		Names:     make([]string, 0, n),
		Players:   make([]component.ClipPlayer, 0, n),
		Volume:    make([]float64, 0, n),
		Play:      make([]bool, n),
		Stop:      make([]bool, n),
		Interrupt: make([]bool, n),
	}

	for i, clip := range audioSpecs {
		var player component.ClipPlayer
		if load != nil {
			p, err := load(clip.File)
			if err != nil {
				return nil, fmt.Errorf("audio clip %d (%q): %w", i, clip.Name, err)
			}
			player = p
		}
		bank.Names = append(bank.Names, clip.Name)
		bank.Players = append(bank.Players, player)
		bank.Volume = append(bank.Volume, clip.Volume)
	}

	return bank, nil
}
