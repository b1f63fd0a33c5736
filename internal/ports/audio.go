package ports

// AudioEngine produces the completion chime. The backing resource is
// created lazily and reused across completions; EnsureReady is
// idempotent and resumes a suspended device before tones are
// scheduled.
type AudioEngine interface {
	// EnsureReady acquires the audio device if needed.
	EnsureReady() error

	// PlayChime plays the completion cue. It must not block for the
	// duration of the tone.
	PlayChime() error

	// Close releases the audio device.
	Close() error
}

// NoopAudio is the silent engine for headless environments.
type NoopAudio struct{}

func (NoopAudio) EnsureReady() error { return nil }
func (NoopAudio) PlayChime() error   { return nil }
func (NoopAudio) Close() error       { return nil }

var _ AudioEngine = NoopAudio{}
