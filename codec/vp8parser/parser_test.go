package vp8parser

import (
	"bytes"
	"encoding/binary"
	"testing"
)

// makeKeyframe builds a minimal VP8 keyframe: 3 byte frame tag, start code,
// dimension words, then filler.
func makeKeyframe(width, height, hscale, vscale int) []byte {
	b := []byte{0x50, 0x11, 0x00} // frame tag
	b = append(b, StartCode...)
	dims := make([]byte, 4)
	binary.LittleEndian.PutUint16(dims[0:2], uint16(width)|uint16(hscale)<<14)
	binary.LittleEndian.PutUint16(dims[2:4], uint16(height)|uint16(vscale)<<14)
	b = append(b, dims...)
	return append(b, 0xaa, 0xbb, 0xcc)
}

func TestParseKeyframe(t *testing.T) {
	values := []struct {
		W, H, HS, VS int
	}{
		{64, 64, 0, 0},
		{640, 480, 0, 0},
		{1, 1, 3, 1},
		{16383, 16383, 3, 3},
	}
	for _, ex := range values {
		frame := makeKeyframe(ex.W, ex.H, ex.HS, ex.VS)

		info, err := ParseKeyframe(frame)
		if err != nil {
			t.Fatalf("%dx%d: %v", ex.W, ex.H, err)
		}
		if info.Width != ex.W || info.Height != ex.H {
			t.Errorf("expected %dx%d, got %dx%d", ex.W, ex.H, info.Width, info.Height)
		}
		if info.HorizScale != ex.HS || info.VertScale != ex.VS {
			t.Errorf("expected scale %d/%d, got %d/%d", ex.HS, ex.VS, info.HorizScale, info.VertScale)
		}
		if !bytes.Equal(info.Bitstream, frame) {
			t.Errorf("bitstream does not start at the frame tag")
		}
	}
}

// A payload may carry container header bytes ahead of the frame; the
// bitstream must still start at the frame tag, 3 bytes before the start
// code.
func TestParseKeyframeLeadingBytes(t *testing.T) {
	frame := makeKeyframe(320, 240, 0, 0)
	payload := append([]byte{0x12, 0x00, 0x00, 0x00}, frame...)

	info, err := ParseKeyframe(payload)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(info.Bitstream, frame) {
		t.Errorf("expected bitstream % x, got % x", frame, info.Bitstream)
	}
}

func TestParseKeyframeNotFound(t *testing.T) {
	_, err := ParseKeyframe([]byte{0x00, 0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07})
	if err != ErrStartCodeNotFound {
		t.Fatalf("expected ErrStartCodeNotFound, got %v", err)
	}
}

func TestParseKeyframeTruncated(t *testing.T) {
	frame := makeKeyframe(64, 64, 0, 0)

	if _, err := ParseKeyframe(frame[:len(frame)-6]); err != ErrTruncated {
		t.Fatalf("expected ErrTruncated for short dimension words, got %v", err)
	}
	if _, err := ParseKeyframe(frame[2:]); err != ErrTruncated {
		t.Fatalf("expected ErrTruncated for missing frame tag, got %v", err)
	}
}
