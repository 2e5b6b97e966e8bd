package String_View

import (
	"String_View/buffer"

	"github.com/sirupsen/logrus"
)

// View is a non-owning window onto a sub-range of a Buffer's bytes: a
// borrowed buffer reference plus an offset and length, with no storage
// of its own.
//
// A View is meant to be used as a value type, not a pointer (like a
// time.Time). The zero value is the absent view: no backing buffer,
// offset 0, length 0. It behaves exactly like a present view of length
// 0 in every comparison and conversion.
//
// The buffer reference is a borrow, not a lease: a View stays correct
// only while its Buffer is unmutated. Appending to, resetting, or
// otherwise reshaping the Buffer invalidates every View into it. That
// contract is the caller's to uphold; nothing here checks it.
type View struct {
	buf    *buffer.Buffer
	offset int
	length int
}

// NewView returns a view over all of buf's bytes.
func NewView(buf *buffer.Buffer) View {
	if buf == nil {
		logrus.Error("view: nil buffer")
		panic("view: nil buffer")
	}
	return View{buf: buf, length: buf.Len()}
}

// NewViewAt returns a view over buf's bytes from offset through the
// end. offset == buf.Len() yields an empty view. offset past the end
// is a programmer defect and aborts.
func NewViewAt(buf *buffer.Buffer, offset int) View {
	if buf == nil {
		logrus.Error("view: nil buffer")
		panic("view: nil buffer")
	}
	if offset < 0 || offset > buf.Len() {
		logrus.Errorf("view: offset %d out of range for buffer of length %d", offset, buf.Len())
		panic("view: offset out of range")
	}
	return View{buf: buf, offset: offset, length: buf.Len() - offset}
}

// NewViewRange returns a view over length bytes of buf starting at
// offset. A range that does not fit inside the buffer aborts.
func NewViewRange(buf *buffer.Buffer, offset, length int) View {
	if buf == nil {
		logrus.Error("view: nil buffer")
		panic("view: nil buffer")
	}
	if offset < 0 || offset > buf.Len() {
		logrus.Errorf("view: offset %d out of range for buffer of length %d", offset, buf.Len())
		panic("view: offset out of range")
	}
	if length < 0 || length > buf.Len()-offset {
		logrus.Errorf("view: length %d out of range at offset %d for buffer of length %d", length, offset, buf.Len())
		panic("view: length out of range")
	}
	return View{buf: buf, offset: offset, length: length}
}

// Offset returns the view's byte offset into its buffer.
func (v View) Offset() int {
	return v.offset
}

// Len returns the number of bytes visible through the view.
func (v View) Len() int {
	return v.length
}

// Size
// Size is an alias of Len.
func (v View) Size() int {
	return v.length
}

// IsEmpty reports whether the view has a length of zero.
func (v View) IsEmpty() bool {
	return v.length == 0
}

// At returns the byte at index i, counted from the view's offset.
// Bounds checking is delegated to the Buffer: an index that lands
// inside the buffer but past the view's own length still succeeds. An
// absent view, or an index past the buffer's end, aborts.
func (v View) At(i int) byte {
	if v.buf == nil {
		logrus.Errorf("view: checked access at index %d on absent view", i)
		panic("view: access on absent view")
	}
	return v.buf.At(v.offset + i)
}

// RawAt returns the byte at index i without checking i against the
// view's length. Only a present buffer is required; the caller must
// ensure i < Len(). Exists for validated hot paths where the checked
// form's cost has been paid already.
func (v View) RawAt(i int) byte {
	if v.buf == nil {
		logrus.Errorf("view: raw access at index %d on absent view", i)
		panic("view: access on absent view")
	}
	return v.buf.RawFrom(v.offset)[i]
}

// RawBytes returns the backing buffer's bytes starting at the view's
// offset.
//
// WARNING: the result is NOT truncated at the view's length — it runs
// through the end of the buffer, with no terminator at Len(). Callers
// must pair it with Len() explicitly and must never scan it for an
// end marker. The slice aliases the buffer's storage; it goes stale on
// the next mutation. Aborts on an absent view.
func (v View) RawBytes() []byte {
	if v.buf == nil {
		logrus.Error("view: raw range access on absent view")
		panic("view: access on absent view")
	}
	return v.buf.RawFrom(v.offset)
}
