package webmio

import (
	"errors"
	"io"
	"math/bits"
)

var (
	ErrParse         = errors.New("parse error")
	ErrUnexpectedEOF = errors.New("unexpected EOF")
)

// InitDocument creates a WebM document reading from r.
// It does not do any parsing
func InitDocument(r io.Reader) *Document {
	doc := new(Document)
	doc.r = r

	return doc
}

// ParseAll parses the entire WebM document.
// When an EBML element is encountered, it calls the provided function
// and passes the newly parsed element
func (doc *Document) ParseAll(c func(Element)) error {
	for {
		el, err := doc.ParseElement()
		if err != nil {
			return err
		}

		c(el)
	}
}

// ParseElement parses an EBML element starting at the document's current
// cursor position. Master elements are returned with their content unread,
// so the cursor descends into them on the next call.
func (doc *Document) ParseElement() (Element, error) {
	var el Element

	id, err := doc.GetElementID(&el)
	if err != nil {
		return el, err
	}

	size, err := doc.GetElementSize(&el)
	if err != nil {
		return el, err
	}

	el.ElementRegister = GetElementRegister(id)
	if el.Type == ElementTypeUnknown {
		el.ID = id
	}
	el.Size = size

	if el.Type != ElementTypeMaster {
		d, err := doc.GetElementContent(&el)
		if err != nil {
			return el, err
		}

		el.Content = d
	}

	return el, nil
}

// GetElementID tries to parse the next element's id,
// starting from the document's current cursor position.
func (doc *Document) GetElementID(el *Element) (uint32, error) {
	b := make([]byte, 1)

	if _, err := io.ReadFull(doc.r, b); err != nil {
		return 0, err
	}

	// The id class (1 to 4 bytes) is given by the leading zero count of
	// the first byte; marker bits stay part of the id.
	n := bits.LeadingZeros8(b[0]) + 1
	if n > 4 {
		return 0, ErrParse
	}

	bb := make([]byte, n)
	bb[0] = b[0]
	if n > 1 {
		if _, err := io.ReadFull(doc.r, bb[1:]); err != nil {
			return 0, err
		}
	}

	el.Bytes = append(el.Bytes, bb...)
	return uint32(pack(n, bb)), nil
}

// GetElementSize tries to parse the next element's size descriptor,
// starting from the document's current cursor position.
func (doc *Document) GetElementSize(el *Element) (uint64, error) {
	b := make([]byte, 1)

	if _, err := io.ReadFull(doc.r, b); err != nil {
		return 0, err
	}

	n := bits.LeadingZeros8(b[0]) + 1
	if n > 8 {
		return 0, ErrParse
	}

	bb := make([]byte, n)
	bb[0] = b[0]
	if n > 1 {
		if _, err := io.ReadFull(doc.r, bb[1:]); err != nil {
			return 0, err
		}
	}

	el.Bytes = append(el.Bytes, bb...)

	bb[0] &= 0xff >> n // drop the marker bit
	return pack(n, bb), nil
}

// GetElementContent returns the element's data (if any)
// Data is present if the element's type is not Master
func (doc *Document) GetElementContent(el *Element) ([]byte, error) {
	buf := make([]byte, el.Size)

	if _, err := io.ReadFull(doc.r, buf); err != nil {
		return nil, err
	}

	el.Bytes = append(el.Bytes, buf...)
	return buf, nil
}
