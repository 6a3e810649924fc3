package adsb

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMagnitudeCenterIsZero(t *testing.T) {
	mags := Magnitude([]byte{128, 128})
	assert.InDelta(t, 0.0, mags[0], 1.0)
}

func TestMagnitudeCorner(t *testing.T) {
	mags := Magnitude([]byte{255, 255})
	assert.InDelta(t, 127.5*1.41421356, mags[0], 0.01)
}

func TestMagnitudeLength(t *testing.T) {
	mags := Magnitude(make([]byte, 100))
	assert.Len(t, mags, 50)
}

func TestMagnitudeEmpty(t *testing.T) {
	mags := Magnitude(nil)
	assert.Empty(t, mags)
}
