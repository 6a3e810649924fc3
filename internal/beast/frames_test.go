package beast

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go1090/internal/adsb"
)

func TestToFrameAcceptsModeSLong(t *testing.T) {
	msg := &Message{MessageType: ModeSLong, Data: make([]byte, adsb.FrameBytes)}
	msg.Data[0] = 0x8D

	frame, ok := msg.ToFrame()
	require.True(t, ok)
	assert.Equal(t, byte(0x8D), frame[0])
}

func TestToFrameRejectsWrongType(t *testing.T) {
	msg := &Message{MessageType: ModeS, Data: make([]byte, 7)}
	_, ok := msg.ToFrame()
	assert.False(t, ok)
}

func TestToFrameRejectsWrongLength(t *testing.T) {
	msg := &Message{MessageType: ModeSLong, Data: make([]byte, 10)}
	_, ok := msg.ToFrame()
	assert.False(t, ok)
}

func TestDecodeFramesExtractsModeSLongOnly(t *testing.T) {
	var long [14]byte
	long[0] = 0x8D

	buf := buildModeSLongFrame(long)
	d := NewDecoder(testLogger())

	frames, timestamps, err := DecodeFrames(buf, d)
	require.NoError(t, err)
	require.Len(t, frames, 1)
	require.Len(t, timestamps, 1)
	assert.Equal(t, byte(0x8D), frames[0][0])
}
