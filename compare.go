package String_View

import (
	"bytes"

	"String_View/buffer"
)

// visible returns the bytes the view exposes. Only valid for a present
// view; callers gate on length first so an absent view is never
// dereferenced.
func (v View) visible() []byte {
	return v.buf.RawFrom(v.offset)[:v.length]
}

// EqualString reports whether the view's bytes match s. An absent view
// equals the empty string.
func (v View) EqualString(s string) bool {
	if v.length != len(s) {
		return false
	}
	if v.length == 0 {
		return true
	}
	return string(v.visible()) == s
}

// EqualByte reports whether the view is exactly one byte long and that
// byte is c.
func (v View) EqualByte(c byte) bool {
	return v.length == 1 && v.RawAt(0) == c
}

// Equal reports whether two views expose the same bytes. Equality is
// pure byte-content equality: which buffer or offset backs each side
// does not matter, and two zero-length views are equal no matter what
// (or whether) they point at.
func (v View) Equal(other View) bool {
	if v.length != other.length {
		return false
	}
	if v.length == 0 {
		return true
	}
	if v.buf == other.buf && v.offset == other.offset { // shortcut
		return true
	}
	return bytes.Equal(v.visible(), other.visible())
}

// EqualBuffer reports whether the view's bytes match the whole content
// of b. A nil b counts as empty.
func (v View) EqualBuffer(b *buffer.Buffer) bool {
	if b == nil {
		return v.length == 0
	}
	return v.Equal(NewView(b))
}

// Compare orders two views lexicographically over unsigned byte
// values, returning -1, 0, or 1. Bytes are compared up to the shorter
// length; if the shared prefix matches, the shorter view is less. A
// zero-length view is equal to another zero-length view and less than
// anything else.
func (v View) Compare(other View) int {
	if v.length == 0 {
		if other.length == 0 {
			return 0
		}
		return -1
	}
	if other.length == 0 {
		return 1
	}
	return bytes.Compare(v.visible(), other.visible())
}

// CompareBuffer orders the view against the whole content of b. A nil
// b counts as empty.
func (v View) CompareBuffer(b *buffer.Buffer) int {
	if b == nil {
		return v.Compare(View{})
	}
	return v.Compare(NewView(b))
}
