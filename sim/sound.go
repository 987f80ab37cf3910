package sim

import (
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const (
	chimeSampleRate = beep.SampleRate(44100)
	chimeFreq       = 880
	chimeDuration   = 50 * time.Millisecond
	chimeCooldown   = 500 * time.Millisecond
)

// Chime plays a short tone when bodies collide. Audio is best-effort:
// if the speaker fails to initialize the simulation runs silent.
type Chime struct {
	ready    bool
	lastPlay time.Time
}

// NewChime initializes the speaker. A nil error means tones will play.
func NewChime() (*Chime, error) {
	err := speaker.Init(chimeSampleRate, chimeSampleRate.N(time.Second/10))
	if err != nil {
		return &Chime{}, err
	}
	return &Chime{ready: true}, nil
}

// Play sounds the chime, at most once per cooldown window so a
// persistent overlap does not turn into a continuous tone
func (c *Chime) Play(now time.Time) {
	if !c.ready || now.Sub(c.lastPlay) < chimeCooldown {
		return
	}
	c.lastPlay = now

	sine, err := generators.SineTone(chimeSampleRate, chimeFreq)
	if err != nil {
		return
	}
	speaker.Play(beep.Take(chimeSampleRate.N(chimeDuration), sine))
}

// Close releases the speaker
func (c *Chime) Close() {
	if c.ready {
		speaker.Close()
	}
}
