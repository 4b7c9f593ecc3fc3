package component

// ClipPlayer is the subset of *audio.Player the audio system drives.
type ClipPlayer interface {
	IsPlaying() bool
	Rewind() error
	Play()
	Pause()
	SetVolume(volume float64)
}

// Audio holds a named clip bank. Play, Stop and Interrupt are per-clip
// one-shot flags cleared by AudioSystem.
type Audio struct {
	Names     []string
	Players   []ClipPlayer
	Volume    []float64
	Play      []bool
	Stop      []bool
	Interrupt []bool
}

var AudioComponent = NewComponent[Audio]()

// Index returns the clip slot for name, or -1.
func (a *Audio) Index(name string) int {
	if a == nil {
		return -1
	}
	for i, n := range a.Names {
		if n == name {
			return i
		}
	}
	return -1
}
