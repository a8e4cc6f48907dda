// Package sound manages playback of short synthesized samples with support for
// interrupting, per-sample volume and avoiding overlapping playback of the same sample.
package sound

import (
	"errors"
	"sync"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/effects"
)

// Sound names
const (
	INTRO      = "intro"
	EAT        = "eat"
	GAME_OVER  = "game_over"
	HIGH_SCORE = "high_score"
	QUIT       = "quit"
)

const CommonSampleRate = 44100 // Common sample rate for all sounds

// Manager controls the loading and playback of audio samples.
type Manager struct {
	mu         sync.Mutex
	samples    map[string]*beep.Buffer
	ctrl       map[string]*beep.Ctrl
	mix        *beep.Mixer
	format     beep.Format
	muted      bool
	vol        *effects.Volume    // master volume
	sampleVols map[string]float64 // per-sample volume in dB

	backend   any
	pulseCtrl *pulseControl
}

// NewManager initializes the audio system and creates a new Manager.
func NewManager(sampleRate beep.SampleRate) (*Manager, error) {
	mgr := newManager(sampleRate)
	bufferSize := sampleRate.N(time.Second / 10)
	if err := mgr.initBackend(sampleRate, bufferSize); err != nil {
		return nil, err
	}
	return mgr, nil
}

// newManager builds the mixer chain without touching an audio device.
func newManager(sampleRate beep.SampleRate) *Manager {
	mgr := &Manager{
		samples:    make(map[string]*beep.Buffer),
		ctrl:       make(map[string]*beep.Ctrl),
		mix:        &beep.Mixer{},
		format:     beep.Format{SampleRate: sampleRate, NumChannels: 1, Precision: 2},
		sampleVols: make(map[string]float64),
	}
	mgr.vol = &effects.Volume{
		Streamer: mgr.mix,
		Base:     2,
		Volume:   0, // 0 dB
		Silent:   false,
	}
	return mgr
}

// LoadSamples synthesizes every named sample into memory.
func (mgr *Manager) LoadSamples() error {
	mgr.mu.Lock()
	defer mgr.mu.Unlock()

	for name, notes := range melodies {
		buf, err := synthesize(mgr.format, notes)
		if err != nil {
			return err
		}
		mgr.samples[name] = buf
	}
	mgr.sampleVols[EAT] = -1
	return nil
}

// SetMasterVolume sets the gain of the whole mix in base-2 decibels.
func (mgr *Manager) SetMasterVolume(db float64) {
	if mgr == nil {
		return
	}
	mgr.lockStream()
	defer mgr.unlockStream()
	mgr.vol.Volume = db
}

// Play stops current playback of the sample (if any) and plays it from the start.
func (mgr *Manager) Play(name string) error {
	if mgr == nil {
		return errors.New("sound manager is nil")
	}
	mgr.mu.Lock()
	defer mgr.mu.Unlock()

	buf, ok := mgr.samples[name]
	if !ok {
		return errors.New("sample not loaded: " + name)
	}

	vol := &effects.Volume{
		Streamer: buf.Streamer(0, buf.Len()),
		Base:     2,
		Volume:   mgr.sampleVols[name],
	}
	ctrl := &beep.Ctrl{Streamer: vol}

	mgr.lockStream()
	defer mgr.unlockStream()
	// Interrupt previous if exists
	if prev, exists := mgr.ctrl[name]; exists {
		prev.Streamer = nil
	}
	mgr.mix.Add(ctrl)
	mgr.ctrl[name] = ctrl
	return nil
}

// PlayWithCallback plays the sample and calls done once it has finished.
// done runs on the audio goroutine with the stream locked, so it must not
// call back into the manager synchronously.
func (mgr *Manager) PlayWithCallback(name string, done func()) error {
	if mgr == nil {
		return errors.New("sound manager is nil")
	}
	if err := mgr.Play(name); err != nil {
		return err
	}
	wait := mgr.silenceOf(name)
	mgr.lockStream()
	defer mgr.unlockStream()
	mgr.mix.Add(beep.Seq(wait, beep.Callback(done)))
	return nil
}

// silenceOf returns a silent streamer as long as the named sample.
func (mgr *Manager) silenceOf(name string) beep.Streamer {
	mgr.mu.Lock()
	defer mgr.mu.Unlock()
	buf := mgr.samples[name]
	return &effects.Volume{Streamer: buf.Streamer(0, buf.Len()), Silent: true}
}

// StopListed stops playback of the specified samples by name.
// If a sample is not currently playing, it is ignored.
func (mgr *Manager) StopListed(names ...string) {
	if mgr == nil {
		return
	}
	mgr.mu.Lock()
	defer mgr.mu.Unlock()
	mgr.lockStream()
	defer mgr.unlockStream()
	for _, name := range names {
		if ctrl, ok := mgr.ctrl[name]; ok {
			ctrl.Paused = true
			delete(mgr.ctrl, name)
		}
	}
}

// StopAll halts playback of all currently playing samples.
func (mgr *Manager) StopAll() {
	if mgr == nil {
		return
	}
	mgr.mu.Lock()
	names := make([]string, 0, len(mgr.ctrl))
	for name := range mgr.ctrl {
		names = append(names, name)
	}
	mgr.mu.Unlock()
	mgr.StopListed(names...)
}

// Mute disables all audio output.
func (mgr *Manager) Mute() {
	mgr.setSilent(true)
}

// Unmute enables audio output.
func (mgr *Manager) Unmute() {
	mgr.setSilent(false)
}

func (mgr *Manager) setSilent(silent bool) {
	if mgr == nil {
		return
	}
	mgr.mu.Lock()
	mgr.muted = silent
	mgr.mu.Unlock()

	mgr.lockStream()
	defer mgr.unlockStream()
	mgr.vol.Silent = silent
}

// Muted reports whether output is disabled.
func (mgr *Manager) Muted() bool {
	mgr.mu.Lock()
	defer mgr.mu.Unlock()
	return mgr.muted
}

// Close stops the backend and frees resources.
func (mgr *Manager) Close() {
	if mgr == nil {
		return
	}
	mgr.closeBackend()
}
