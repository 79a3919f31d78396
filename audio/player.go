// Package audio synthesizes short feedback cues and plays them through the system speaker.
package audio

import (
	"errors"
	"sync"
	"sync/atomic"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/floorsim/engine"
	"github.com/lixenwraith/floorsim/parameter"
)

var ErrNotInitialized = errors.New("audio: speaker not initialized")

// Player mixes cues into a single speaker stream
// Implements engine.AudioPlayer; safe for concurrent use
type Player struct {
	mu          sync.Mutex
	rate        beep.SampleRate
	mixer       *beep.Mixer
	initialized bool

	muted  atomic.Bool
	played atomic.Int64
}

// NewPlayer creates an uninitialized player
func NewPlayer() *Player {
	return &Player{
		rate:  beep.SampleRate(parameter.AudioSampleRate),
		mixer: &beep.Mixer{},
	}
}

// Initialize opens the speaker and starts the mixer
func (p *Player) Initialize() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}
	if err := speaker.Init(p.rate, p.rate.N(parameter.AudioBufferTime)); err != nil {
		return err
	}
	speaker.Play(p.mixer)
	p.initialized = true
	return nil
}

// Play queues a cue; returns false when muted, uninitialized or the cue is unknown
func (p *Player) Play(cue engine.Cue) bool {
	if p.muted.Load() {
		return false
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.initialized {
		return false
	}

	s := NewCue(cue, p.rate)
	if s == nil {
		return false
	}

	speaker.Lock()
	p.mixer.Add(s)
	speaker.Unlock()

	p.played.Add(1)
	return true
}

// IsMuted reports whether cues are suppressed
func (p *Player) IsMuted() bool {
	return p.muted.Load()
}

// SetMuted suppresses or enables cues
func (p *Player) SetMuted(muted bool) {
	p.muted.Store(muted)
}

// Played returns the number of cues started
func (p *Player) Played() int64 {
	return p.played.Load()
}

// Close stops playback and releases the speaker
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	speaker.Clear()
	speaker.Close()
	p.initialized = false
}
