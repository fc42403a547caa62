package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"

	"github.com/lixenwraith/terminal-transport/components"
)

// SoundManager plays signal chimes through the system speaker
// All methods are safe to call before Initialize or after a failed init; they do nothing
// and the manager reports itself muted.
type SoundManager struct {
	mu          sync.Mutex
	cfg         *AudioConfig
	out         output
	mixer       *beep.Mixer
	initialized bool
	muted       bool
	played      int
}

// NewSoundManager creates a new sound manager; nil cfg uses defaults
func NewSoundManager(cfg *AudioConfig) *SoundManager {
	if cfg == nil {
		cfg = DefaultAudioConfig()
	}
	return &SoundManager{
		cfg:   cfg,
		out:   speakerOutput{},
		mixer: &beep.Mixer{},
		muted: !cfg.Enabled,
	}
}

// Initialize opens the speaker and starts the mixer
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	rate := beep.SampleRate(sm.cfg.SampleRate)
	if err := sm.out.Init(rate, rate.N(100*time.Millisecond)); err != nil {
		sm.muted = true
		return err
	}

	sm.out.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup stops all sounds and closes the speaker
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	sm.out.Close()
	sm.initialized = false
}

// Play queues a sound effect unless muted or uninitialized
func (sm *SoundManager) Play(soundType SoundType) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || sm.muted {
		return
	}

	s := GetSoundEffect(soundType, sm.cfg)
	if s == nil {
		return
	}

	sm.out.Lock()
	sm.mixer.Add(s)
	sm.out.Unlock()
	sm.played++
}

// ToggleMute flips the mute flag and returns true when now muted
// Without an open speaker there is nothing to unmute and it stays muted.
func (sm *SoundManager) ToggleMute() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return true
	}
	sm.muted = !sm.muted
	return sm.muted
}

// Muted reports whether sounds are silenced, including when no speaker is open
func (sm *SoundManager) Muted() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.muted || !sm.initialized
}

// Played returns the number of sounds queued since creation
func (sm *SoundManager) Played() int {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.played
}

// SignalChanged plays the chime matching the light's new color
func (sm *SoundManager) SignalChanged(index int, light *components.TrafficLightComponent) {
	if light.Green {
		sm.Play(SoundSignalGreen)
		return
	}
	sm.Play(SoundSignalRed)
}
