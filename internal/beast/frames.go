package beast

import "go1090/internal/adsb"

// ToFrame converts a decoded ModeSLong Beast message directly into an
// adsb.Frame, skipping magnitude/preamble/PPM demodulation entirely —
// the Beast protocol already delivers fully demodulated bits. ok is
// false for any message type other than ModeSLong, since only 112-bit
// long Mode S frames can carry a DF17 extended squitter.
func (msg *Message) ToFrame() (adsb.Frame, bool) {
	var frame adsb.Frame

	if msg.MessageType != ModeSLong || len(msg.Data) != adsb.FrameBytes {
		return frame, false
	}

	copy(frame[:], msg.Data)
	return frame, true
}

// DecodeFrames extracts every DF17-capable frame from a raw in-memory
// Beast-protocol buffer, pairing each with a monotonic index (its
// position in the decoded message stream) for use as the CPR resolver's
// sample-index clock.
func DecodeFrames(buf []byte, d *Decoder) ([]adsb.Frame, []int64, error) {
	messages, err := d.Decode(buf)
	if err != nil {
		return nil, nil, err
	}

	var frames []adsb.Frame
	var timestamps []int64

	for i, msg := range messages {
		frame, ok := msg.ToFrame()
		if !ok {
			continue
		}
		frames = append(frames, frame)
		timestamps = append(timestamps, int64(i))
	}

	return frames, timestamps, nil
}
