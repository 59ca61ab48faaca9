package webmio

import (
	"io"
)

// Document represents a WebM file
type Document struct {
	r io.Reader
}

// ElementRegister contains the ID, type and name of the
// standard WebM/Matroska elements
type ElementRegister struct {
	ID   uint32
	Type uint8
	Name string
}

// Element is a Matroska/WebM/EBML element. On the write side the payload
// field matching the register's type is consumed by Marshal; on the read
// side the parser fills Size, Content and Bytes.
type Element struct {
	ElementRegister

	Parent *Element
	Level  int32
	Size   uint64

	Value    uint64 // payload for Uint elements
	Width    int    // non-zero pins a Uint payload to an exact byte width
	Float    float64
	Text     string
	Content  []byte // payload for Binary elements, verbatim bytes for Raw
	Children []*Element

	Bytes []byte // Whole binary representation of the element (nil if data is missing)
}

// Master builds a container element holding the given children in order.
func Master(reg ElementRegister, children ...*Element) *Element {
	return &Element{ElementRegister: reg, Children: children}
}

// Uint builds an unsigned integer element with a minimal big-endian payload.
func Uint(reg ElementRegister, v uint64) *Element {
	return &Element{ElementRegister: reg, Value: v}
}

// FixedUint builds an unsigned integer element whose payload keeps an exact
// byte width no matter the value, so the element's serialized length stays
// stable while the value is rewritten.
func FixedUint(reg ElementRegister, v uint64, width int) *Element {
	return &Element{ElementRegister: reg, Value: v, Width: width}
}

// String builds a string element.
func String(reg ElementRegister, s string) *Element {
	return &Element{ElementRegister: reg, Text: s}
}

// Binary builds a binary element.
func Binary(reg ElementRegister, b []byte) *Element {
	return &Element{ElementRegister: reg, Content: b}
}

// Float builds a float element with an 8 byte big-endian IEEE-754 payload.
func Float(reg ElementRegister, f float64) *Element {
	return &Element{ElementRegister: reg, Float: f}
}

// Raw wraps already-serialized bytes so they pass through Marshal verbatim,
// with no id or size prefix of their own.
func Raw(b []byte) *Element {
	return &Element{ElementRegister: ElementRaw, Content: b}
}
