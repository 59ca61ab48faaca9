package webm

import (
	"encoding/binary"
	"io"
	"time"

	"github.com/vidkit/webm/format/webm/webmio"
)

// Packet is one frame read back out of a document.
type Packet struct {
	IsKeyFrame  bool
	TrackNumber int
	Time        time.Duration
	Data        []byte
}

// Demuxer walks a WebM document and yields the frames its clusters carry.
type Demuxer struct {
	r  *webmio.Document
	tc uint64 // timecode of the cluster being walked, in ms ticks
}

func NewDemuxer(r io.Reader) *Demuxer {
	return &Demuxer{
		r: webmio.InitDocument(r),
	}
}

// ReadPacket returns the next SimpleBlock as a packet with its absolute
// time resolved against the enclosing cluster's timecode. io.EOF marks the
// end of the document.
func (d *Demuxer) ReadPacket() (Packet, error) {
	for {
		el, err := d.r.ParseElement()
		if err != nil {
			return Packet{}, err
		}

		switch el.ElementRegister.ID {
		case webmio.ElementTimecode.ID:
			d.tc = 0
			for _, b := range el.Content {
				d.tc = d.tc<<8 | uint64(b)
			}
		case webmio.ElementSimpleBlock.ID:
			if len(el.Content) < 4 {
				return Packet{}, webmio.ErrParse
			}
			rel := int16(binary.BigEndian.Uint16(el.Content[1:3]))
			return Packet{
				IsKeyFrame:  el.Content[3]&0x80 != 0,
				TrackNumber: int(el.Content[0] & 0x7f),
				Time:        time.Duration(int64(d.tc)+int64(rel)) * time.Millisecond,
				Data:        el.Content[4:],
			}, nil
		}
	}
}
