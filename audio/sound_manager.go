// Package audio plays short synthesized cues for camera focus and pause toggles
package audio

import (
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const (
	sampleRate = beep.SampleRate(48000)

	focusDuration  = 450 * time.Millisecond
	toggleDuration = 40 * time.Millisecond
)

// SoundManager owns the speaker and a mixer that cues are added to
// Every Play call is a no-op until Initialize succeeds
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
}

// NewSoundManager creates an uninitialized sound manager
func NewSoundManager() *SoundManager {
	return &SoundManager{
		mixer: &beep.Mixer{},
	}
}

// Initialize opens the speaker, safe to call more than once
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return err
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup drops queued cues, beep has no speaker close so the mixer is cleared instead
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	sm.initialized = false
}

// Enabled reports whether cues are audible
func (sm *SoundManager) Enabled() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.initialized
}

func (sm *SoundManager) play(s beep.Streamer) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	speaker.Lock()
	sm.mixer.Add(s)
	speaker.Unlock()
}

// PlayFocus plays a rising chime when a camera transition starts
func (sm *SoundManager) PlayFocus() {
	sm.play(beep.Take(sampleRate.N(focusDuration), NewChimeGenerator(sampleRate, 440, 880)))
}

// PlayToggle plays a short click on pause and resume
func (sm *SoundManager) PlayToggle() {
	sm.play(beep.Take(sampleRate.N(toggleDuration), NewClickGenerator(sampleRate, 1800)))
}

// ChimeGenerator sweeps a soft sine from one pitch to another with exponential decay
type ChimeGenerator struct {
	sr       beep.SampleRate
	from, to float64
	sweep    int
	pos      int
	phase    float64
}

// NewChimeGenerator creates a chime sweeping from→to Hz over the first half of the focus cue
func NewChimeGenerator(sr beep.SampleRate, from, to float64) *ChimeGenerator {
	return &ChimeGenerator{
		sr:    sr,
		from:  from,
		to:    to,
		sweep: sr.N(focusDuration / 2),
	}
}

func (g *ChimeGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)

		k := math.Min(float64(g.pos)/float64(g.sweep), 1)
		freq := g.from + (g.to-g.from)*k
		g.phase += 2 * math.Pi * freq / float64(g.sr)

		// 5ms attack, then decay
		envelope := math.Min(t/0.005, 1) * math.Exp(-t*6)
		sample := 0.18 * envelope * (math.Sin(g.phase) + 0.3*math.Sin(2*g.phase))

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *ChimeGenerator) Err() error {
	return nil
}

// ClickGenerator produces a very short damped tone
type ClickGenerator struct {
	sr   beep.SampleRate
	freq float64
	pos  int
}

// NewClickGenerator creates a click generator at freq Hz
func NewClickGenerator(sr beep.SampleRate, freq float64) *ClickGenerator {
	return &ClickGenerator{sr: sr, freq: freq}
}

func (g *ClickGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)
		sample := 0.2 * math.Exp(-t*120) * math.Sin(2*math.Pi*g.freq*t)
		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *ClickGenerator) Err() error {
	return nil
}
