package vp8parser

import (
	"bytes"
	"encoding/binary"
	"errors"
)

// StartCode is the 3 byte signature that opens every VP8 keyframe,
// right after the 3 byte frame tag.
var StartCode = []byte{0x9d, 0x01, 0x2a}

const frameTagSize = 3

var (
	ErrStartCodeNotFound = errors.New("vp8parser: keyframe start code not found")
	ErrTruncated         = errors.New("vp8parser: truncated keyframe header")
)

// FrameInfo holds the dimensions read from a VP8 keyframe header together
// with the bitstream they were read from. Bitstream starts at the frame tag,
// so it can be packed into a container block unchanged.
type FrameInfo struct {
	Width      int
	Height     int
	HorizScale int
	VertScale  int
	Bitstream  []byte
}

// ParseKeyframe scans payload for the keyframe start code and decodes the
// two little-endian 16-bit words that follow it: the low 14 bits carry the
// dimension, the high 2 bits the scale factor.
func ParseKeyframe(payload []byte) (info FrameInfo, err error) {
	i := bytes.Index(payload, StartCode)
	if i < 0 {
		err = ErrStartCodeNotFound
		return
	}
	if i < frameTagSize || len(payload) < i+len(StartCode)+4 {
		err = ErrTruncated
		return
	}

	dims := payload[i+len(StartCode):]
	w := binary.LittleEndian.Uint16(dims[0:2])
	h := binary.LittleEndian.Uint16(dims[2:4])

	info.Width = int(w & 0x3fff)
	info.HorizScale = int(w >> 14)
	info.Height = int(h & 0x3fff)
	info.VertScale = int(h >> 14)
	info.Bitstream = payload[i-frameTagSize:]

	return
}
