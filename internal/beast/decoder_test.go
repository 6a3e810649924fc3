package beast

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)
	return logger
}

// buildModeSLongFrame assembles a raw Beast-framed Mode S long message with
// no 0x1A bytes in the body, so no unescaping is needed.
func buildModeSLongFrame(payload [14]byte) []byte {
	buf := []byte{SyncByte, ModeSLong}
	buf = append(buf, 0, 0, 0, 0, 0, 1) // 6-byte timestamp
	buf = append(buf, 0x20)             // signal
	buf = append(buf, payload[:]...)
	return buf
}

func TestDecoderDecodesSingleMessage(t *testing.T) {
	var payload [14]byte
	payload[0] = 0x8D
	payload[1] = 0x48
	payload[2] = 0x40
	payload[3] = 0xD6

	d := NewDecoder(testLogger())
	messages, err := d.Decode(buildModeSLongFrame(payload))
	require.NoError(t, err)
	require.Len(t, messages, 1)

	assert.Equal(t, ModeSLong, messages[0].MessageType)
	assert.Equal(t, payload[:], messages[0].Data)
}

func TestDecoderSkipsGarbageBeforeSync(t *testing.T) {
	var payload [14]byte
	payload[0] = 0x8D

	d := NewDecoder(testLogger())
	buf := append([]byte{0xFF, 0xFF, 0xFF}, buildModeSLongFrame(payload)...)
	messages, err := d.Decode(buf)
	require.NoError(t, err)
	require.Len(t, messages, 1)
}

func TestDecoderBuffersPartialMessage(t *testing.T) {
	var payload [14]byte
	payload[0] = 0x8D

	d := NewDecoder(testLogger())
	full := buildModeSLongFrame(payload)

	messages, err := d.Decode(full[:10])
	require.NoError(t, err)
	assert.Empty(t, messages)

	messages, err = d.Decode(full[10:])
	require.NoError(t, err)
	require.Len(t, messages, 1)
}

func TestDecoderHandlesMultipleMessages(t *testing.T) {
	var payloadA, payloadB [14]byte
	payloadA[0] = 0x8D
	payloadB[0] = 0x5D

	d := NewDecoder(testLogger())
	buf := append(buildModeSLongFrame(payloadA), buildModeSLongFrame(payloadB)...)

	messages, err := d.Decode(buf)
	require.NoError(t, err)
	require.Len(t, messages, 2)
	assert.Equal(t, byte(0x8D), messages[0].Data[0])
	assert.Equal(t, byte(0x5D), messages[1].Data[0])
}
