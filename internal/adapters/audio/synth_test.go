package audio

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChimeSamples_Length(t *testing.T) {
	samples := chimeSamples()
	want := int(chimeSeconds*sampleRate) * 2 // 16-bit mono
	require.Len(t, samples, want)
}

func TestChimeSamples_Envelope(t *testing.T) {
	samples := chimeSamples()

	peakAt := func(fromSec, toSec float64) float64 {
		peak := 0.0
		from, to := int(fromSec*sampleRate), int(toSec*sampleRate)
		for i := from; i < to && i*2+1 < len(samples); i++ {
			v := math.Abs(float64(int16(binary.LittleEndian.Uint16(samples[i*2:]))) / math.MaxInt16)
			if v > peak {
				peak = v
			}
		}
		return peak
	}

	// Starts and ends near silence, loudest around the attack peak.
	assert.Less(t, peakAt(0, 0.005), 0.1, "chime should fade in from silence")
	assert.Less(t, peakAt(0.49, 0.5), 0.1, "chime should fade out to silence")
	assert.Greater(t, peakAt(0.08, 0.15), 0.25, "attack peak missing")

	// Two half-weight tones inside a 0.5 envelope never clip.
	assert.LessOrEqual(t, peakAt(0, 0.5), peakGain+0.01)
}

func TestEnvelopeAt(t *testing.T) {
	assert.Zero(t, envelopeAt(-0.1))
	assert.Zero(t, envelopeAt(chimeSeconds))
	assert.InDelta(t, peakGain, envelopeAt(attackSecs), 1e-9)
	assert.InDelta(t, peakGain/2, envelopeAt(attackSecs/2), 1e-9)
	assert.InDelta(t, 0, envelopeAt(chimeSeconds-1e-9), 1e-6)
}
