package audio

import (
	"bytes"
	"fmt"
	"sync"
	"time"

	"github.com/ebitengine/oto/v3"
	"github.com/gen2brain/beeep"

	"github.com/rvelden/tomat/internal/ports"
)

// Fallback single tone used when the audio device cannot be acquired.
const (
	fallbackFreq     = 880.0
	fallbackDuration = 200 // milliseconds
)

// Engine plays the chime through the default output. The oto context
// is created lazily on first playback and reused afterwards; creating
// one per completion would leak device handles on some platforms.
type Engine struct {
	mu      sync.Mutex
	ctx     *oto.Context
	samples []byte
}

// NewEngine creates an engine without touching the audio device.
func NewEngine() *Engine {
	return &Engine{}
}

// EnsureReady acquires the audio device if needed and resumes it if
// the platform suspended it. Idempotent.
func (e *Engine) EnsureReady() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.ensureReadyLocked()
}

func (e *Engine) ensureReadyLocked() error {
	if e.ctx != nil {
		return e.ctx.Resume()
	}
	ctx, ready, err := oto.NewContext(&oto.NewContextOptions{
		SampleRate:   sampleRate,
		ChannelCount: 1,
		Format:       oto.FormatSignedInt16LE,
	})
	if err != nil {
		return fmt.Errorf("open audio device: %w", err)
	}
	<-ready
	e.ctx = ctx
	e.samples = chimeSamples()
	return nil
}

// PlayChime plays the two-tone chime, or a single flat beep when the
// device cannot be acquired. Playback happens in the background; the
// call returns once the tone is scheduled.
func (e *Engine) PlayChime() error {
	e.mu.Lock()
	err := e.ensureReadyLocked()
	ctx, samples := e.ctx, e.samples
	e.mu.Unlock()

	if err != nil {
		if beepErr := beeep.Beep(fallbackFreq, fallbackDuration); beepErr != nil {
			return fmt.Errorf("chime fallback: %w", beepErr)
		}
		return nil
	}

	player := ctx.NewPlayer(bytes.NewReader(samples))
	player.Play()
	go func() {
		for player.IsPlaying() {
			time.Sleep(10 * time.Millisecond)
		}
		player.Close()
	}()
	return nil
}

// Close suspends the audio device. The oto context itself cannot be
// torn down; suspend releases the output stream.
func (e *Engine) Close() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.ctx == nil {
		return nil
	}
	return e.ctx.Suspend()
}

var _ ports.AudioEngine = (*Engine)(nil)
