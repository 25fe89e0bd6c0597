package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/culture-catch/constants"
)

// Player renders feedback cues
type Player interface {
	Play(SoundType)
}

// SpeakerPlayer plays cues through the system speaker via a shared beep mixer
type SpeakerPlayer struct {
	mu          sync.Mutex
	cfg         *AudioConfig
	mixer       *beep.Mixer
	initialized bool
	lastPlayed  [soundTypeCount]time.Time
}

// NewSpeakerPlayer creates a player; nothing is audible until Initialize
func NewSpeakerPlayer(cfg *AudioConfig) *SpeakerPlayer {
	if cfg == nil {
		cfg = DefaultAudioConfig()
	}
	return &SpeakerPlayer{
		cfg:   cfg,
		mixer: &beep.Mixer{},
	}
}

// Initialize opens the speaker; a disabled config stays silent without error
func (p *SpeakerPlayer) Initialize() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized || !p.cfg.Enabled {
		return nil
	}

	rate := beep.SampleRate(p.cfg.SampleRate)
	if err := speaker.Init(rate, rate.N(constants.AudioBufferDuration)); err != nil {
		return err
	}

	speaker.Play(p.mixer)
	p.initialized = true
	return nil
}

// Play queues a cue; repeats of the same cue inside MinSoundGap are dropped
func (p *SpeakerPlayer) Play(st SoundType) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized || st < 0 || st >= soundTypeCount {
		return
	}
	now := time.Now()
	if now.Sub(p.lastPlayed[st]) < constants.MinSoundGap {
		return
	}
	p.lastPlayed[st] = now

	s := GetSoundEffect(st, p.cfg)
	if s == nil {
		return
	}
	speaker.Lock()
	p.mixer.Add(s)
	speaker.Unlock()
}

// Cleanup silences everything still playing
func (p *SpeakerPlayer) Cleanup() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}

	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()

	// The speaker has no reopen path, the mixer stays attached
	p.initialized = false
}
