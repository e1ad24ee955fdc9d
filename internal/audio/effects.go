package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"

	"chosenoffset.com/gallery/internal/sound"
)

// sweep is a finite oscillator whose frequency glides linearly from
// start to end while its amplitude decays exponentially.
type sweep struct {
	rate     beep.SampleRate
	start    float64
	end      float64
	decay    float64 // amplitude time constant in seconds
	square   bool
	total    int
	position int
	phase    float64
}

func newSweep(rate beep.SampleRate, d time.Duration, start, end, decay float64, square bool) *sweep {
	return &sweep{
		rate:   rate,
		start:  start,
		end:    end,
		decay:  decay,
		square: square,
		total:  rate.N(d),
	}
}

func (s *sweep) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if s.position >= s.total {
			return i, i > 0
		}
		progress := float64(s.position) / float64(s.total)
		freq := s.start + (s.end-s.start)*progress
		seconds := float64(s.position) / float64(s.rate)
		amp := math.Exp(-seconds / s.decay)

		val := math.Sin(2 * math.Pi * s.phase)
		if s.square {
			val = 1
			if s.phase >= 0.5 {
				val = -1
			}
		}
		val *= amp
		samples[i][0] = val
		samples[i][1] = val

		s.phase += freq / float64(s.rate)
		s.phase -= math.Floor(s.phase)
		s.position++
	}
	return len(samples), true
}

func (s *sweep) Err() error { return nil }

// noiseBurst is white noise with an exponential decay envelope.
type noiseBurst struct {
	rate     beep.SampleRate
	rng      *rand.Rand
	decay    float64
	total    int
	position int
}

func newNoiseBurst(rate beep.SampleRate, d time.Duration, decay float64, seed int64) *noiseBurst {
	return &noiseBurst{
		rate:  rate,
		rng:   rand.New(rand.NewSource(seed)),
		decay: decay,
		total: rate.N(d),
	}
}

func (b *noiseBurst) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if b.position >= b.total {
			return i, i > 0
		}
		seconds := float64(b.position) / float64(b.rate)
		val := (b.rng.Float64()*2 - 1) * math.Exp(-seconds/b.decay)
		samples[i][0] = val
		samples[i][1] = val
		b.position++
	}
	return len(samples), true
}

func (b *noiseBurst) Err() error { return nil }

// newEffect builds the streamer for a sound type.
func newEffect(st sound.Effect, rate beep.SampleRate) beep.Streamer {
	switch st {
	case sound.Shot:
		// short crack over a low thump
		mixer := &beep.Mixer{}
		mixer.Add(
			newNoiseBurst(rate, 120*time.Millisecond, 0.03, 1),
			newSweep(rate, 120*time.Millisecond, 180, 60, 0.05, false),
		)
		return beep.Take(rate.N(120*time.Millisecond), mixer)
	case sound.Hit:
		return newSweep(rate, 90*time.Millisecond, 660, 1320, 0.08, false)
	case sound.GameOver:
		return newSweep(rate, 700*time.Millisecond, 220, 55, 0.4, true)
	default:
		return nil
	}
}
