package String_View

import "String_View/buffer"

// The three conversions below are one contract behind three call
// surfaces: each allocates a fresh copy of exactly the visible bytes,
// sharing no storage with the backing buffer. An absent view converts
// to an empty result.

// String returns the view's bytes as an owned string.
func (v View) String() string {
	if v.length == 0 {
		return ""
	}
	return string(v.visible())
}

// ByteSlice returns a copy of the view's bytes.
func (v View) ByteSlice() []byte {
	c := make([]byte, v.length)
	if v.length > 0 {
		copy(c, v.visible())
	}
	return c
}

// Clone returns a new Buffer holding a copy of the view's bytes.
func (v View) Clone() *buffer.Buffer {
	if v.length == 0 {
		return buffer.New()
	}
	return buffer.NewFromBytes(v.visible())
}

// AppendTo copies the view's visible bytes onto the end of dst. The
// view is never mutated. dst must not be the buffer backing v: the
// append may grow dst and shift its storage out from under the view
// mid-copy. That aliasing rule is the caller's responsibility.
func (v View) AppendTo(dst *buffer.Buffer) {
	if v.length == 0 {
		return
	}
	dst.Append(v.visible())
}

// ConcatBuffer returns a new Buffer holding lhs's bytes followed by
// the view's visible bytes. lhs is left unchanged, and the result
// shares storage with neither operand.
func ConcatBuffer(lhs *buffer.Buffer, v View) *buffer.Buffer {
	res := lhs.Clone()
	v.AppendTo(res)
	return res
}
