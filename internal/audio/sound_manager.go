package audio

import (
	"fmt"
	"io"
	"math"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"
)

const (
	sampleRate = beep.SampleRate(44100)

	jumpDuration   = 180 * time.Millisecond
	pickupDuration = 140 * time.Millisecond
)

// SoundManager plays through the system speaker.
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	master      *effects.Volume
	music       *beep.Ctrl
	logger      *log.Logger
	initialized bool
}

// NewSoundManager creates a manager. volume is 0..1; 0 mutes.
// A nil logger discards log output.
func NewSoundManager(volume float64, logger *log.Logger) *SoundManager {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	mixer := &beep.Mixer{}
	return &SoundManager{
		mixer:  mixer,
		master: masterVolume(mixer, volume),
		logger: logger,
	}
}

// masterVolume maps a linear 0..1 level onto beep's logarithmic scale.
func masterVolume(s beep.Streamer, vol float64) *effects.Volume {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	if vol > 1 {
		vol = 1
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// Initialize opens the speaker. Calling it twice is a no-op.
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return fmt.Errorf("audio: init speaker: %w", err)
	}
	speaker.Play(sm.master)
	sm.initialized = true
	return nil
}

// Cleanup silences everything. The speaker itself stays open.
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	speaker.Lock()
	if sm.music != nil {
		sm.music.Streamer = nil
	}
	sm.mixer.Clear()
	speaker.Unlock()
	sm.music = nil
	sm.initialized = false
}

// Play starts a one-shot effect.
func (sm *SoundManager) Play(s Sound) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	var streamer beep.Streamer
	switch s {
	case SoundJump:
		streamer = beep.Take(sampleRate.N(jumpDuration), NewSweepGenerator(sampleRate, 320, 720, jumpDuration))
	case SoundPickup:
		streamer = beep.Take(sampleRate.N(pickupDuration), NewChimeGenerator(sampleRate))
	default:
		sm.logger.Debug("unknown sound", "sound", int(s))
		return
	}

	speaker.Lock()
	sm.mixer.Add(streamer)
	speaker.Unlock()
}

// PlayMusic starts the background loop unless it is already playing.
func (sm *SoundManager) PlayMusic() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	if sm.music != nil {
		return
	}

	ctrl := &beep.Ctrl{Streamer: beep.Loop(-1, NewLoopGenerator(sampleRate))}
	speaker.Lock()
	sm.mixer.Add(ctrl)
	speaker.Unlock()
	sm.music = ctrl
}

// StopMusic stops the background loop.
func (sm *SoundManager) StopMusic() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.music == nil {
		return
	}
	// A Ctrl with no streamer reports itself drained, so the mixer drops it.
	speaker.Lock()
	sm.music.Streamer = nil
	speaker.Unlock()
	sm.music = nil
}
