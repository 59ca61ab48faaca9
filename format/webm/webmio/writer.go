package webmio

import (
	"math"
)

// PutUintBE returns the shortest big-endian representation of v.
// Zero encodes to no bytes at all; EBML reads an empty uint payload as 0.
func PutUintBE(v uint64) []byte {
	if v == 0 {
		return nil
	}
	n := 0
	for x := v; x > 0; x >>= 8 {
		n++
	}
	b := make([]byte, n)
	for i := n - 1; i >= 0; i-- {
		b[i] = byte(v)
		v >>= 8
	}
	return b
}

// PutFixedUintBE returns exactly width big-endian bytes, zero-extending or
// truncating v to fit.
func PutFixedUintBE(v uint64, width int) []byte {
	b := make([]byte, width)
	for i := width - 1; i >= 0; i-- {
		b[i] = byte(v)
		v >>= 8
	}
	return b
}

// PutFloatBE returns the 8 byte big-endian IEEE-754 representation of f.
func PutFloatBE(f float64) []byte {
	return PutFixedUintBE(math.Float64bits(f), 8)
}

// PutSize returns the EBML variable-length descriptor for a content length.
// The descriptor spans the smallest n bytes with length < 1<<(7*n); the
// marker bit sits after n-1 leading zero bits.
func PutSize(length uint64) []byte {
	n := 1
	for n < 8 && length >= uint64(1)<<(7*uint(n)) {
		n++
	}
	b := make([]byte, n)
	for i := n - 1; i >= 0; i-- {
		b[i] = byte(length)
		length >>= 8
	}
	b[0] |= 0x80 >> (n - 1)
	return b
}

// Marshal renders the element to its full binary representation, children
// first. Raw elements pass through verbatim. The result is cached in
// el.Bytes.
func (el *Element) Marshal() []byte {
	if el.Type == ElementTypeRaw {
		return el.Content
	}
	content := el.payload()
	b := make([]byte, 0, 8+len(content))
	b = append(b, PutUintBE(uint64(el.ID))...)
	b = append(b, PutSize(uint64(len(content)))...)
	b = append(b, content...)
	el.Size = uint64(len(content))
	el.Bytes = b
	return b
}

// MarshalSize returns the element's encoded length, reusing bytes already
// rendered by a previous Marshal call.
func (el *Element) MarshalSize() int {
	if el.Type == ElementTypeRaw {
		return len(el.Content)
	}
	if el.Bytes == nil {
		el.Marshal()
	}
	return len(el.Bytes)
}

// MarshalElements renders a sibling list in order into one buffer.
func MarshalElements(els []*Element) []byte {
	var b []byte
	for _, el := range els {
		b = append(b, el.Marshal()...)
	}
	return b
}

func (el *Element) payload() []byte {
	switch el.Type {
	case ElementTypeMaster:
		var b []byte
		for _, child := range el.Children {
			b = append(b, child.Marshal()...)
		}
		return b
	case ElementTypeUint:
		if el.Width > 0 {
			return PutFixedUintBE(el.Value, el.Width)
		}
		return PutUintBE(el.Value)
	case ElementTypeString, ElementTypeUnicode:
		return []byte(el.Text)
	case ElementTypeFloat:
		return PutFloatBE(el.Float)
	default:
		return el.Content
	}
}
