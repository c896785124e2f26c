package audio

import (
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/math-snake/constants"
	"github.com/lixenwraith/math-snake/event"
)

// SoundManager plays one-shot effects for game markers through a shared mixer
type SoundManager struct {
	mu          sync.Mutex
	cfg         *AudioConfig
	mixer       *beep.Mixer
	initialized bool
	lastPlayed  [soundTypeCount]time.Time
	now         func() time.Time
	logger      *log.Logger
}

// NewSoundManager creates a sound manager; a nil cfg uses defaults and a nil logger log.Default()
func NewSoundManager(cfg *AudioConfig, logger *log.Logger) *SoundManager {
	if cfg == nil {
		cfg = DefaultAudioConfig()
	}
	cfg.Normalize()
	if logger == nil {
		logger = log.Default()
	}
	return &SoundManager{
		cfg:    cfg,
		mixer:  &beep.Mixer{},
		now:    time.Now,
		logger: logger,
	}
}

// Initialize opens the speaker. The game runs silently if it fails.
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}
	if !sm.cfg.Enabled {
		return ErrAudioDisabled
	}

	rate := beep.SampleRate(sm.cfg.SampleRate)
	if err := speaker.Init(rate, rate.N(constants.SpeakerBufferDuration)); err != nil {
		return fmt.Errorf("speaker init at %d Hz: %w", sm.cfg.SampleRate, err)
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	sm.logger.Printf("audio initialized at %d Hz", sm.cfg.SampleRate)
	return nil
}

// Cleanup silences all sounds
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()

	// beep keeps the speaker open for the process lifetime; clearing the mixer stops output
	sm.initialized = false
}

// Play starts soundType and reports whether it was queued
func (sm *SoundManager) Play(soundType SoundType) bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || !sm.admit(soundType) {
		return false
	}

	streamer := GetSoundEffect(soundType, sm.cfg)
	if streamer == nil {
		return false
	}

	speaker.Lock()
	sm.mixer.Add(streamer)
	speaker.Unlock()
	return true
}

// PlayMarkers plays the effect of each marker in order
func (sm *SoundManager) PlayMarkers(markers []event.Marker) {
	for _, m := range markers {
		if st, ok := SoundForMarker(m.Type); ok {
			sm.Play(st)
		}
	}
}

// admit rate-limits repeats of one sound to MinSoundGap. Caller holds mu.
func (sm *SoundManager) admit(soundType SoundType) bool {
	if soundType < 0 || soundType >= soundTypeCount {
		return false
	}
	now := sm.now()
	if last := sm.lastPlayed[soundType]; !last.IsZero() && now.Sub(last) < constants.MinSoundGap {
		return false
	}
	sm.lastPlayed[soundType] = now
	return true
}
