package adsb

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// buildPreamble writes a valid 16-sample preamble (pulses at 0,2,7,9) at
// offset k into mags, which must already be sized to hold it.
func buildPreamble(mags []float64, k int, pulse, noise float64) {
	window := mags[k : k+PreambleSamples]
	for i := range window {
		window[i] = noise
	}
	for _, off := range preamblePulseOffsets {
		window[off] = pulse
	}
}

func TestDetectPreamblesFindsSingleCandidate(t *testing.T) {
	mags := make([]float64, CandidateSamples+20)
	buildPreamble(mags, 10, 100.0, 1.0)

	candidates := DetectPreambles(mags, DefaultPreambleThresholdRatio)
	assert.Len(t, candidates, 1)
	assert.Equal(t, 10, candidates[0].Index)
}

func TestDetectPreamblesRejectsFlatNoise(t *testing.T) {
	mags := make([]float64, CandidateSamples+20)
	for i := range mags {
		mags[i] = 5.0
	}

	candidates := DetectPreambles(mags, DefaultPreambleThresholdRatio)
	assert.Empty(t, candidates)
}

func TestDetectPreamblesRejectsTiedQuietSlot(t *testing.T) {
	mags := make([]float64, CandidateSamples+20)
	buildPreamble(mags, 0, 100.0, 1.0)
	// A quiet slot tied with the weakest pulse must be rejected.
	mags[1] = 100.0

	candidates := DetectPreambles(mags, DefaultPreambleThresholdRatio)
	assert.Empty(t, candidates)
}

func TestDetectPreamblesSkipsAheadPastConfirmedCandidate(t *testing.T) {
	mags := make([]float64, 2*CandidateSamples+20)
	buildPreamble(mags, 0, 100.0, 1.0)
	buildPreamble(mags, CandidateSamples, 100.0, 1.0)

	candidates := DetectPreambles(mags, DefaultPreambleThresholdRatio)
	assert.Len(t, candidates, 2)
	assert.Equal(t, 0, candidates[0].Index)
	assert.Equal(t, CandidateSamples, candidates[1].Index)
}

func TestDetectPreamblesEmptyInput(t *testing.T) {
	assert.Empty(t, DetectPreambles(nil, DefaultPreambleThresholdRatio))
}

// TestDetectPreamblesWeakSignal exercises a borderline ~10dB SNR preamble:
// pulses only modestly above the noise floor, just clearing the default
// ratio threshold.
func TestDetectPreamblesWeakSignal(t *testing.T) {
	mags := make([]float64, CandidateSamples+20)
	buildPreamble(mags, 0, 12.0, 2.0) // ratio 6.0, just above alpha=5.0

	candidates := DetectPreambles(mags, DefaultPreambleThresholdRatio)
	assert.Len(t, candidates, 1)
}

func TestDetectPreamblesBelowThresholdRatio(t *testing.T) {
	mags := make([]float64, CandidateSamples+20)
	buildPreamble(mags, 0, 9.0, 2.0) // ratio 4.5, below alpha=5.0

	candidates := DetectPreambles(mags, DefaultPreambleThresholdRatio)
	assert.Empty(t, candidates)
}
