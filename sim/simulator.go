package sim

import (
	"log"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/halvard/gravmap/physics"
	"github.com/halvard/gravmap/render"
	"github.com/halvard/gravmap/vmath"
)

// Simulator drives the simulation at a fixed tick rate. Each tick it
// renders the current positions, moves every body by its velocity,
// applies pairwise gravitation over a pre-tick snapshot, and recenters
// the population around the origin.
type Simulator struct {
	cfg      Config
	set      *physics.Set
	integ    physics.Integrator
	screen   tcell.Screen
	renderer *render.ScreenRenderer
	chime    *Chime

	tick   uint64
	paused bool
}

// New creates a simulator on the given screen. A zero Seed draws one
// from the clock, so two default runs never look the same.
func New(cfg Config, screen tcell.Screen) (*Simulator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	set, err := physics.NewSet(cfg.Bodies, cfg.scale(), vmath.NewFastRand(seed))
	if err != nil {
		return nil, err
	}

	s := &Simulator{
		cfg:      cfg,
		set:      set,
		integ:    physics.Integrator{G: cfg.G},
		screen:   screen,
		renderer: render.NewScreenRenderer(screen),
	}

	if cfg.Sound {
		chime, err := NewChime()
		if err != nil {
			// Non-fatal, the simulation can run without sound
			log.Printf("Audio initialization failed: %v", err)
		}
		s.chime = chime
	}

	return s, nil
}

// Bodies exposes the body set for inspection
func (s *Simulator) Bodies() *physics.Set {
	return s.set
}

// Tick returns the number of fired ticks so far
func (s *Simulator) Tick() uint64 {
	return s.tick
}

// Paused reports whether integration is suspended
func (s *Simulator) Paused() bool {
	return s.paused
}

// Step runs one tick. The terminal size is re-read every time so the
// map follows live resizes. While paused the frame still redraws but
// the physics stands still.
func (s *Simulator) Step() {
	width, height := s.renderer.Size()
	s.renderer.Frame(render.Frame(s.set.Bodies, width, height), s.tick, s.set.Len(), s.paused)

	if s.paused {
		return
	}

	s.set.AdvancePositions()
	collisions := s.integ.Step(s.set)
	s.set.Recenter()

	if collisions > 0 && s.chime != nil {
		s.chime.Play(time.Now())
	}

	s.tick++
}

// Run loops until the user quits. The ticker blocks between ticks
// instead of spinning, at the same observable fixed rate.
func (s *Simulator) Run() {
	ticker := time.NewTicker(time.Second / time.Duration(s.cfg.UpdatesPerSecond))
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 16)
	go func() {
		for {
			eventChan <- s.screen.PollEvent()
		}
	}()

	for {
		select {
		case ev := <-eventChan:
			if !s.handleEvent(ev) {
				return
			}

		case <-ticker.C:
			s.Step()
		}
	}
}

// handleEvent returns false when the simulation should exit
func (s *Simulator) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
			return false
		}
		if ev.Key() == tcell.KeyRune {
			switch ev.Rune() {
			case 'q':
				return false
			case ' ':
				s.paused = !s.paused
			}
		}

	case *tcell.EventResize:
		s.screen.Sync()
	}

	return true
}

// Cleanup releases the speaker and restores the terminal
func (s *Simulator) Cleanup() {
	if s.chime != nil {
		s.chime.Close()
	}
	s.screen.Fini()
}
