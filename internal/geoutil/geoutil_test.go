package geoutil

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidAcceptsOrdinaryPosition(t *testing.T) {
	assert.True(t, Valid(52.1, 3.9))
}

func TestValidAcceptsExtremes(t *testing.T) {
	assert.True(t, Valid(90, 180))
	assert.True(t, Valid(-90, -180))
}

func TestValidRejectsNaN(t *testing.T) {
	assert.False(t, Valid(math.NaN(), 0))
	assert.False(t, Valid(0, math.NaN()))
}

func TestValidRejectsOutOfRangeLatitude(t *testing.T) {
	assert.False(t, Valid(91, 0))
	assert.False(t, Valid(-91, 0))
}
