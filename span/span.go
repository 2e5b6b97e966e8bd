// Package span provides a generic non-owning view over a slice, the
// array counterpart of the byte View in the root package.
package span

import (
	"iter"

	"github.com/sirupsen/logrus"
)

// Span
// Span borrows a window of an existing slice. It never copies and
// never outlives the validity of the backing array; keeping it correct
// across mutation of the source is the caller's responsibility.
type Span[T any] struct {
	data []T
}

// NewSpan returns a span over data. A span is always non-empty;
// constructing one over nothing is a programmer defect and aborts.
func NewSpan[T any](data []T) Span[T] {
	if len(data) == 0 {
		logrus.Error("span: empty data")
		panic("span: empty data")
	}
	return Span[T]{data: data}
}

// Size returns the number of items in the span.
func (s Span[T]) Size() int {
	return len(s.data)
}

// At returns the item at index i. An index past the end aborts.
func (s Span[T]) At(i int) T {
	if i < 0 || i >= len(s.data) {
		logrus.Errorf("span: index %d out of range [0, %d)", i, len(s.data))
		panic("span: index out of range")
	}
	return s.data[i]
}

// Get returns the item at index i without checking i against the
// span's size. The caller must ensure i is in range.
func (s Span[T]) Get(i int) T {
	return s.data[i]
}

// Slice returns a sub-span of count items starting at offset. A count
// of 0 means "through the end". A range that does not fit aborts.
func (s Span[T]) Slice(offset, count int) Span[T] {
	if offset < 0 || count < 0 || offset+count > len(s.data) {
		logrus.Errorf("span: slice [%d, %d+%d) out of range for size %d", offset, offset, count, len(s.data))
		panic("span: slice out of range")
	}
	if count == 0 {
		count = len(s.data) - offset
	}
	// A span is never empty, so slicing nothing off the end aborts too.
	if count == 0 {
		logrus.Errorf("span: empty slice at offset %d for size %d", offset, len(s.data))
		panic("span: empty data")
	}
	return Span[T]{data: s.data[offset : offset+count]}
}

// Data returns the borrowed backing slice.
func (s Span[T]) Data() []T {
	return s.data
}

// All returns an iterator over the span's items in order.
func (s Span[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, item := range s.data {
			if !yield(item) {
				return
			}
		}
	}
}
