package game

import (
	"chosenoffset.com/gallery/internal/sound"
)

// SoundPlayer plays a sound effect. *audio.SoundManager satisfies it.
type SoundPlayer interface {
	Play(effect sound.Effect)
}

type silence struct{}

func (silence) Play(sound.Effect) {}
