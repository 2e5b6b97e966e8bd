// Package buffer implements the owning growable byte string that views
// borrow from.
package buffer

import (
	"bytes"

	"github.com/sirupsen/logrus"
)

// Options
// Options controls the initial allocation and growth of a Buffer.
type Options struct {
	InitialCap int // capacity allocated up front

	GrowthFactor float64 // multiplier applied when the backing array is full
}

// DefaultOptions
// DefaultOptions provides baseline allocation settings.
func DefaultOptions() Options {
	return Options{
		InitialCap:   64,
		GrowthFactor: 2.0,
	}
}

// Option
type Option func(*Options)

// WithInitialCap sets the capacity allocated at construction.
func WithInitialCap(capacity int) Option {
	return func(o *Options) {
		if capacity > 0 {
			o.InitialCap = capacity
		}
	}
}

// WithGrowthFactor sets the multiplier used when growing the backing array.
func WithGrowthFactor(factor float64) Option {
	return func(o *Options) {
		if factor > 1 {
			o.GrowthFactor = factor
		}
	}
}

// Buffer
// Buffer is a growable byte string. It owns its bytes outright; views
// borrow from it and are invalidated by any mutation that moves or
// shrinks the content. Not safe for concurrent mutation.
type Buffer struct {
	data []byte
	opts Options
}

// New
// New returns an empty Buffer.
func New(opts ...Option) *Buffer {
	options := DefaultOptions()
	for _, opt := range opts {
		opt(&options)
	}
	return &Buffer{
		data: make([]byte, 0, options.InitialCap),
		opts: options,
	}
}

// NewFromString builds a Buffer holding a copy of s.
func NewFromString(s string, opts ...Option) *Buffer {
	b := New(opts...)
	b.AppendString(s)
	return b
}

// NewFromBytes builds a Buffer holding a copy of p. Later mutation of p
// does not affect the Buffer.
func NewFromBytes(p []byte, opts ...Option) *Buffer {
	b := New(opts...)
	b.Append(p)
	return b
}

// Len
func (b *Buffer) Len() int {
	return len(b.data)
}

// Cap
func (b *Buffer) Cap() int {
	return cap(b.data)
}

// At returns the byte at index i. Out-of-range access is a programmer
// defect and aborts.
func (b *Buffer) At(i int) byte {
	if i < 0 || i >= len(b.data) {
		logrus.Errorf("buffer: index %d out of range [0, %d)", i, len(b.data))
		panic("buffer: index out of range")
	}
	return b.data[i]
}

// RawFrom returns the bytes from offset through the end of the content.
// The slice aliases the Buffer's storage: treat it as read-only, and do
// not hold it across an Append. There is no terminator; callers must
// carry an explicit length. offset == Len() yields an empty slice;
// anything past that aborts.
func (b *Buffer) RawFrom(offset int) []byte {
	if offset < 0 || offset > len(b.data) {
		logrus.Errorf("buffer: raw offset %d out of range [0, %d]", offset, len(b.data))
		panic("buffer: raw offset out of range")
	}
	return b.data[offset:len(b.data):len(b.data)]
}

// Append extends the content with a copy of p, growing the backing
// array by GrowthFactor when needed.
func (b *Buffer) Append(p []byte) {
	if len(p) == 0 {
		return
	}
	b.grow(len(p))
	b.data = append(b.data, p...)
}

// AppendString extends the content with a copy of s.
func (b *Buffer) AppendString(s string) {
	if len(s) == 0 {
		return
	}
	b.grow(len(s))
	b.data = append(b.data, s...)
}

// AppendByte extends the content with a single byte.
func (b *Buffer) AppendByte(c byte) {
	b.grow(1)
	b.data = append(b.data, c)
}

// grow reallocates so that n more bytes fit, keeping amortized growth
// under the configured factor.
func (b *Buffer) grow(n int) {
	need := len(b.data) + n
	if need <= cap(b.data) {
		return
	}
	factor := b.opts.GrowthFactor
	if factor <= 1 {
		factor = 2.0
	}
	newCap := int(float64(cap(b.data)) * factor)
	if newCap < need {
		newCap = need
	}
	if newCap < b.opts.InitialCap {
		newCap = b.opts.InitialCap
	}
	grown := make([]byte, len(b.data), newCap)
	copy(grown, b.data)
	b.data = grown
}

// Clone returns an independently owned copy of the Buffer.
func (b *Buffer) Clone() *Buffer {
	c := &Buffer{
		data: make([]byte, len(b.data), cap(b.data)),
		opts: b.opts,
	}
	copy(c.data, b.data)
	return c
}

// String returns a copy of the content as a string.
func (b *Buffer) String() string {
	return string(b.data)
}

// Equal reports whether two Buffers hold the same bytes.
func (b *Buffer) Equal(other *Buffer) bool {
	if other == nil {
		return len(b.data) == 0
	}
	return bytes.Equal(b.data, other.data)
}

// Reset empties the content, keeping the allocated capacity.
func (b *Buffer) Reset() {
	b.data = b.data[:0]
}
