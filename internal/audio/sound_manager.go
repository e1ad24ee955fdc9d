// Package audio plays synthesized sound effects.
package audio

import (
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"

	"chosenoffset.com/gallery/internal/sound"
)

const sampleRate = beep.SampleRate(44100)

// SoundManager mixes effects into a single speaker stream.
// Play calls before a successful Initialize are silently dropped.
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	volume      *effects.Volume
	initialized bool
}

// NewSoundManager creates a manager at the given master volume (0.0 to 1.0).
func NewSoundManager(masterVolume float64) *SoundManager {
	mixer := &beep.Mixer{}
	return &SoundManager{
		mixer: mixer,
		volume: &effects.Volume{
			Streamer: mixer,
			Base:     2,
			Volume:   volumeExponent(masterVolume),
			Silent:   masterVolume <= 0,
		},
	}
}

// volumeExponent maps a linear gain to beep's base-2 exponent.
func volumeExponent(gain float64) float64 {
	if gain <= 0 {
		return 0
	}
	return math.Log2(math.Min(gain, 1))
}

// Initialize opens the speaker and starts the mixer.
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(50*time.Millisecond)); err != nil {
		return fmt.Errorf("failed to open speaker: %w", err)
	}

	speaker.Play(sm.volume)
	sm.initialized = true
	return nil
}

// Initialized reports whether effects reach the speaker.
func (sm *SoundManager) Initialized() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.initialized
}

// Play queues an effect on the mixer.
func (sm *SoundManager) Play(st sound.Effect) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	s := newEffect(st, sampleRate)
	if s == nil {
		return
	}

	speaker.Lock()
	sm.mixer.Add(s)
	speaker.Unlock()
}

// Cleanup stops all sounds.
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	speaker.Clear()
	sm.mixer.Clear()
	sm.initialized = false
}
