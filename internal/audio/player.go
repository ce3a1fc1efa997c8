// Package audio plays the short synthesised cues that accompany board events.
// Sound is optional: when no output device is available the player stays
// silent and the game runs unchanged.
package audio

import (
	"io"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/numblocks/internal/core"
)

// Config controls audio output.
type Config struct {
	Enabled    bool
	Volume     float64 // 0..1
	SampleRate int
	Buffer     time.Duration
}

// DefaultConfig returns the standard audio settings.
func DefaultConfig() Config {
	return Config{
		Enabled:    true,
		Volume:     1,
		SampleRate: 44100,
		Buffer:     100 * time.Millisecond,
	}
}

// Player mixes cue streamers into the speaker.
type Player struct {
	mu     sync.Mutex
	cfg    Config
	rate   beep.SampleRate
	mixer  *beep.Mixer
	logger *log.Logger
	ready  bool
	muted  bool
	played map[core.Cue]int
}

// New creates a player and opens the speaker. Any failure leaves a
// disabled player whose Play is a no-op.
func New(cfg Config, logger *log.Logger) *Player {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	if cfg.SampleRate <= 0 {
		cfg.SampleRate = DefaultConfig().SampleRate
	}
	if cfg.Buffer <= 0 {
		cfg.Buffer = DefaultConfig().Buffer
	}

	p := &Player{
		cfg:    cfg,
		rate:   beep.SampleRate(cfg.SampleRate),
		mixer:  &beep.Mixer{},
		logger: logger,
		played: make(map[core.Cue]int),
	}
	if !cfg.Enabled {
		logger.Debug("audio disabled by configuration")
		return p
	}

	if err := speaker.Init(p.rate, p.rate.N(cfg.Buffer)); err != nil {
		logger.Warn("audio unavailable, continuing without sound", "err", err)
		return p
	}
	speaker.Play(p.mixer)
	p.ready = true
	logger.Debug("audio ready", "rate", cfg.SampleRate)
	return p
}

// Enabled reports whether sound reaches a device.
func (p *Player) Enabled() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.ready
}

// Play starts a cue without waiting for it to finish.
func (p *Player) Play(cue core.Cue) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.played[cue]++
	if !p.ready || p.muted {
		return
	}
	s := Build(cue, p.rate, p.cfg.Volume)
	if s == nil {
		p.logger.Debug("unknown cue", "cue", cue)
		return
	}

	speaker.Lock()
	p.mixer.Add(s)
	speaker.Unlock()
}

// PlayAll plays every cue in order.
func (p *Player) PlayAll(cues []core.Cue) {
	for _, c := range cues {
		p.Play(c)
	}
}

// ToggleMute flips muting and returns the new state.
func (p *Player) ToggleMute() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.muted = !p.muted
	return p.muted
}

// Muted reports whether the player is muted.
func (p *Player) Muted() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.muted
}

// Requested returns how many times a cue was asked for, played or not.
func (p *Player) Requested(cue core.Cue) int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.played[cue]
}

// Close stops playback and releases the device.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.ready {
		return
	}
	speaker.Clear()
	speaker.Close()
	p.ready = false
}
