// Package audio synthesizes and plays the completion chime.
package audio

import (
	"encoding/binary"
	"math"
)

// Chime shape: two simultaneous sine tones for half a second with a
// linear volume envelope, silence -> peak at 100ms -> silence at the
// end. Sounds like a small bell rather than a flat beep.
const (
	sampleRate = 44100

	toneLowHz  = 880.0   // A5
	toneHighHz = 1108.73 // C#6

	chimeSeconds = 0.5
	attackSecs   = 0.1
	peakGain     = 0.5
)

// envelopeAt returns the gain at t seconds into the chime.
func envelopeAt(t float64) float64 {
	if t < 0 || t >= chimeSeconds {
		return 0
	}
	if t < attackSecs {
		return peakGain * t / attackSecs
	}
	return peakGain * (chimeSeconds - t) / (chimeSeconds - attackSecs)
}

// chimeSamples renders the chime as 16-bit little-endian mono PCM.
func chimeSamples() []byte {
	n := int(chimeSeconds * sampleRate)
	buf := make([]byte, n*2)
	for i := 0; i < n; i++ {
		t := float64(i) / sampleRate
		gain := envelopeAt(t)
		// Each tone at half weight so the sum stays within the gain.
		v := gain * 0.5 * (math.Sin(2*math.Pi*toneLowHz*t) + math.Sin(2*math.Pi*toneHighHz*t))
		sample := int16(v * math.MaxInt16)
		binary.LittleEndian.PutUint16(buf[i*2:], uint16(sample))
	}
	return buf
}
