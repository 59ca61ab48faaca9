package webmio

import (
	"bytes"
	"testing"
)

func TestPutSize(t *testing.T) {
	values := []struct {
		L uint64
		B []byte
	}{
		{0, []byte{0x80}},
		{1, []byte{0x81}},
		{127, []byte{0xff}},
		{128, []byte{0x40, 0x80}},
		{16383, []byte{0x7f, 0xff}},
		{16384, []byte{0x20, 0x40, 0x00}},
		{1 << 21, []byte{0x10, 0x20, 0x00, 0x00}},
		{1<<28 - 1, []byte{0x1f, 0xff, 0xff, 0xff}},
		{1 << 28, []byte{0x08, 0x10, 0x00, 0x00, 0x00}},
	}
	for _, ex := range values {
		b := PutSize(ex.L)
		if !bytes.Equal(b, ex.B) {
			t.Errorf("PutSize(%d): expected % x, got % x", ex.L, ex.B, b)
		}
	}
}

// Every descriptor must decode back to its length through the parser, using
// the minimal byte count.
func TestPutSizeRoundTrip(t *testing.T) {
	lengths := []uint64{
		0, 1, 2, 126, 127, 128, 129, 16382, 16383, 16384,
		1<<21 - 1, 1 << 21, 1<<28 - 1, 1 << 28,
	}
	for _, l := range lengths {
		b := PutSize(l)

		var el Element
		doc := InitDocument(bytes.NewReader(b))
		v, err := doc.GetElementSize(&el)
		if err != nil {
			t.Fatalf("PutSize(%d) = % x: decode failed: %v", l, b, err)
		}
		if v != l {
			t.Errorf("PutSize(%d) = % x: decoded to %d", l, b, v)
		}
	}
}

func TestPutUintBE(t *testing.T) {
	values := []struct {
		V uint64
		B []byte
	}{
		{0, nil},
		{1, []byte{0x01}},
		{255, []byte{0xff}},
		{256, []byte{0x01, 0x00}},
		{0xa3, []byte{0xa3}},
		{0x1a45dfa3, []byte{0x1a, 0x45, 0xdf, 0xa3}},
	}
	for _, ex := range values {
		b := PutUintBE(ex.V)
		if !bytes.Equal(b, ex.B) {
			t.Errorf("PutUintBE(%#x): expected % x, got % x", ex.V, ex.B, b)
		}
	}
}

func TestPutFixedUintBE(t *testing.T) {
	values := []uint64{0, 1, 255, 1 << 16, 1 << 40, 1<<64 - 1}
	for _, v := range values {
		b := PutFixedUintBE(v, 8)
		if len(b) != 8 {
			t.Fatalf("PutFixedUintBE(%d, 8): %d bytes", v, len(b))
		}
		if pack(8, b) != v {
			t.Errorf("PutFixedUintBE(%d, 8) = % x does not round-trip", v, b)
		}
	}

	if b := PutFixedUintBE(0x1ff, 1); !bytes.Equal(b, []byte{0xff}) {
		t.Errorf("expected truncation to ff, got % x", b)
	}
}

func TestElementMarshal(t *testing.T) {
	values := []struct {
		El *Element
		B  []byte
	}{
		{Uint(ElementTrackNumber, 1), []byte{0xd7, 0x81, 0x01}},
		{Uint(ElementTimecode, 0), []byte{0xe7, 0x80}},
		{String(ElementDocType, "webm"), []byte{0x42, 0x82, 0x84, 'w', 'e', 'b', 'm'}},
		{Binary(ElementSimpleBlock, []byte{0x81, 0x00, 0x00, 0x80}), []byte{0xa3, 0x84, 0x81, 0x00, 0x00, 0x80}},
		{Raw([]byte{0xde, 0xad}), []byte{0xde, 0xad}},
		{
			Master(ElementVideo,
				Uint(ElementPixelWidth, 64),
				Uint(ElementPixelHeight, 64)),
			[]byte{0xe0, 0x86, 0xb0, 0x81, 0x40, 0xba, 0x81, 0x40},
		},
	}
	for _, ex := range values {
		b := ex.El.Marshal()
		if !bytes.Equal(b, ex.B) {
			t.Errorf("%s: expected % x, got % x", ex.El.Name, ex.B, b)
		}
		if n := ex.El.MarshalSize(); n != len(ex.B) {
			t.Errorf("%s: MarshalSize %d, want %d", ex.El.Name, n, len(ex.B))
		}
	}
}

// A fixed-width element keeps its serialized length while the value is
// rewritten in place.
func TestFixedUintStability(t *testing.T) {
	el := FixedUint(ElementCueClusterPosition, 0, 8)
	n := len(el.Marshal())

	for _, v := range []uint64{1, 0xffff, 1 << 40, 1<<64 - 1} {
		el.Value = v
		if got := len(el.Marshal()); got != n {
			t.Errorf("value %#x: length changed %d -> %d", v, n, got)
		}
	}
}

func TestMarshalParseRoundTrip(t *testing.T) {
	root := Master(ElementInfo,
		Uint(ElementTimecodeScale, 1000000),
		Float(ElementDuration, 3000),
		String(ElementMuxingApp, "webmio"),
	)
	b := root.Marshal()

	doc := InitDocument(bytes.NewReader(b))

	el, err := doc.ParseElement()
	if err != nil {
		t.Fatal(err)
	}
	if el.ID != ElementInfo.ID || el.Type != ElementTypeMaster {
		t.Fatalf("expected Info master, got %s", el.Name)
	}
	if int(el.Size) != len(b)-len(el.Bytes) {
		t.Fatalf("Info size %d, want %d", el.Size, len(b)-len(el.Bytes))
	}

	scale, err := doc.ParseElement()
	if err != nil {
		t.Fatal(err)
	}
	if scale.ID != ElementTimecodeScale.ID || pack(len(scale.Content), scale.Content) != 1000000 {
		t.Fatalf("bad TimecodeScale element: %+v", scale)
	}

	dur, err := doc.ParseElement()
	if err != nil {
		t.Fatal(err)
	}
	if dur.ID != ElementDuration.ID || len(dur.Content) != 8 {
		t.Fatalf("bad Duration element: %+v", dur)
	}

	app, err := doc.ParseElement()
	if err != nil {
		t.Fatal(err)
	}
	if app.ID != ElementMuxingApp.ID || string(app.Content) != "webmio" {
		t.Fatalf("bad MuxingApp element: %+v", app)
	}
}
