package adsb

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFrameBitAndBits(t *testing.T) {
	var f Frame
	f[0] = 0b10001101 // DF=17 (bits 1-5 = 10001)

	assert.Equal(t, uint8(17), f.GetDF())
	assert.Equal(t, uint8(1), f.Bit(1))
	assert.Equal(t, uint8(0), f.Bit(2))
	assert.Equal(t, uint64(17), f.Bits(1, 5))
}

// encodeFrameToMags builds 224 PPM-encoded magnitude samples (plus a
// leading zeroed preamble) representing frame f, so Demodulate(mags, 0)
// should recover it exactly.
func encodeFrameToMags(f Frame) []float64 {
	mags := make([]float64, PreambleSamples+PayloadSamples)
	for i := 0; i < FrameBits; i++ {
		bit := f.Bit(i + 1)
		base := PreambleSamples + 2*i
		if bit == 1 {
			mags[base] = 10.0
			mags[base+1] = 1.0
		} else {
			mags[base] = 1.0
			mags[base+1] = 10.0
		}
	}
	return mags
}

func TestDemodulateRoundTrip(t *testing.T) {
	var f Frame
	f[0] = 0x8D
	f[1] = 0x48
	f[2] = 0x40
	f[3] = 0xD6

	mags := encodeFrameToMags(f)
	got, ok := Demodulate(mags, 0)
	assert.True(t, ok)
	assert.Equal(t, f, got)
}

func TestDemodulateRejectsTie(t *testing.T) {
	var f Frame
	mags := encodeFrameToMags(f)
	mags[PreambleSamples] = 5.0
	mags[PreambleSamples+1] = 5.0

	_, ok := Demodulate(mags, 0)
	assert.False(t, ok)
}

func TestDemodulateRejectsShortBuffer(t *testing.T) {
	mags := make([]float64, PreambleSamples+10)
	_, ok := Demodulate(mags, 0)
	assert.False(t, ok)
}
