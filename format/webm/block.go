package webm

import (
	"errors"
)

// ErrTrackOverflow is returned when a track number cannot be encoded in the
// single-byte VINT a SimpleBlock header carries.
var ErrTrackOverflow = errors.New("webm: track number does not fit one-byte VINT")

// BlockFlags is the flag byte of a SimpleBlock.
type BlockFlags struct {
	Keyframe    bool
	Invisible   bool
	Lacing      uint8 // 0 = none
	Discardable bool
}

// PackSimpleBlock builds a SimpleBlock payload: one-byte track VINT, signed
// 16-bit big-endian cluster-relative timecode, flag byte, then the frame
// bitstream verbatim. Track numbers above 127 are rejected rather than
// silently truncated.
func PackSimpleBlock(track int, timecode int16, flags BlockFlags, frame []byte) ([]byte, error) {
	if track < 0 || track > 127 {
		return nil, ErrTrackOverflow
	}

	b := make([]byte, 4+len(frame))
	b[0] = 0x80 | byte(track)
	b[1] = byte(timecode >> 8)
	b[2] = byte(timecode)

	var f byte
	if flags.Keyframe {
		f |= 0x80
	}
	if flags.Invisible {
		f |= 0x08
	}
	f |= (flags.Lacing & 0x03) << 1
	if flags.Discardable {
		f |= 0x01
	}
	b[3] = f

	copy(b[4:], frame)
	return b, nil
}
