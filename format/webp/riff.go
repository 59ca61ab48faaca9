package webp

import (
	"encoding/binary"
	"errors"
)

// Chunk FourCCs the extractor recognizes. RIFF and LIST wrap nested chunk
// lists; WEBP marks the single-image payload this extractor is after.
const (
	FourCCRIFF = "RIFF"
	FourCCLIST = "LIST"
	FourCCWEBP = "WEBP"
)

var ErrShortChunk = errors.New("webp: truncated chunk")

// Chunk is one parsed RIFF chunk. Data is set for leaf chunks, List for
// container chunks.
type Chunk struct {
	ID   string
	Data []byte
	List *Document
}

// Document groups the chunks of one container level by FourCC, keeping
// arrival order within each id.
type Document struct {
	chunks map[string][]*Chunk
}

// Chunks returns the chunks carrying the given FourCC, in parse order.
func (doc *Document) Chunks(id string) []*Chunk {
	return doc.chunks[id]
}

// Find returns the first chunk with the given FourCC, descending into
// container chunks depth-first. Returns nil if the document has none.
func (doc *Document) Find(id string) *Chunk {
	if c := doc.chunks[id]; len(c) > 0 {
		return c[0]
	}
	for _, list := range doc.chunks {
		for _, c := range list {
			if c.List == nil {
				continue
			}
			if found := c.List.Find(id); found != nil {
				return found
			}
		}
	}
	return nil
}

func (doc *Document) add(c *Chunk) {
	if doc.chunks == nil {
		doc.chunks = make(map[string][]*Chunk)
	}
	doc.chunks[c.ID] = append(doc.chunks[c.ID], c)
}

// Parse walks the buffer as a RIFF chunk sequence. Container chunks (RIFF,
// LIST) declare a little-endian length and are parsed recursively. The WEBP
// form takes the rest of the buffer past its 8 byte header verbatim and
// ends the walk; so does any unrecognized id past its FourCC. The image
// payload keeps its leading chunk header bytes, the bitstream consumer
// locates the frame by its start code. This is a minimal extractor for
// single-image WebP buffers, not a general RIFF directory reader.
func Parse(b []byte) (*Document, error) {
	doc := new(Document)

	for off := 0; off < len(b); {
		if len(b)-off < 4 {
			return nil, ErrShortChunk
		}
		id := string(b[off : off+4])

		switch id {
		case FourCCRIFF, FourCCLIST:
			if len(b)-off < 8 {
				return nil, ErrShortChunk
			}
			length := int(binary.LittleEndian.Uint32(b[off+4 : off+8]))
			if length > len(b)-off-8 {
				return nil, ErrShortChunk
			}
			sub, err := Parse(b[off+8 : off+8+length])
			if err != nil {
				return nil, err
			}
			doc.add(&Chunk{ID: id, List: sub})
			off += 8 + length
		case FourCCWEBP:
			if len(b)-off < 8 {
				return nil, ErrShortChunk
			}
			doc.add(&Chunk{ID: id, Data: b[off+8:]})
			return doc, nil
		default:
			doc.add(&Chunk{ID: id, Data: b[off+4:]})
			return doc, nil
		}
	}

	return doc, nil
}
