// Package bbuf implements a fixed-capacity contiguous buffer of homogeneous
// elements. Typical usage: allocate once with the hard upper bound, push and
// remove elements freely, Clear() to reuse, Release() when done.
package bbuf

import (
	"math"
	"unsafe"
)

// Buffer is a fixed-capacity contiguous buffer. The backing array is
// allocated once at construction and never moves or grows. Not
// goroutine-safe.
type Buffer[T any] struct {
	data     []T  // backing array, len(data) == capacity; nil when capacity is 0
	len      int  // live elements occupy data[:len]
	released bool // set by Release; all mutation panics afterwards
}

// New creates a Buffer with room for exactly capacity elements of T.
// A capacity of 0 is valid and allocates nothing.
//
// New panics if capacity is negative or if capacity elements of T would
// overflow the addressable size limit. An out-of-memory condition aborts the
// program; a buffer that exists to bound memory cannot proceed without its
// backing storage.
func New[T any](capacity int) *Buffer[T] {
	if capacity < 0 {
		panic("bbuf: negative capacity")
	}
	var zero T
	if size := unsafe.Sizeof(zero); size > 0 && uintptr(capacity) > uintptr(math.MaxInt)/size {
		panic("bbuf: capacity is too large")
	}
	b := &Buffer[T]{}
	if capacity > 0 {
		b.data = make([]T, capacity)
	}
	return b
}

// Len returns the number of live elements.
func (b *Buffer[T]) Len() int {
	return b.len
}

// Cap returns the fixed capacity set at construction.
// A released buffer reports 0.
func (b *Buffer[T]) Cap() int {
	return len(b.data)
}

// Get returns a pointer to the element at index, or (nil, false) when index
// is outside the live range [0, Len()). The pointer aliases the buffer's
// backing array: it stays valid only until the next mutation or Release.
func (b *Buffer[T]) Get(index int) (*T, bool) {
	if index < 0 || index >= b.len {
		return nil, false
	}
	return &b.data[index], true
}

// Slice returns a view over exactly the live elements [0, Len()). The slice
// aliases the backing array, so writes through it are visible in the buffer.
// It is invalidated by any mutation or Release and must not outlive them.
func (b *Buffer[T]) Slice() []T {
	b.panicIfReleased()
	return b.data[:b.len]
}

// TryPush appends v at the end if there is room. It returns false, leaving
// the buffer and v untouched, when the buffer is full.
func (b *Buffer[T]) TryPush(v T) bool {
	b.panicIfReleased()
	if b.len == len(b.data) {
		return false
	}
	b.PushUnchecked(v)
	return true
}

// TryInsert inserts v at index, shifting elements [index, Len()) one slot to
// the right. It returns false, leaving the buffer and v untouched, when the
// buffer is full or index is outside [0, Len()].
func (b *Buffer[T]) TryInsert(index int, v T) bool {
	b.panicIfReleased()
	if b.len == len(b.data) || index < 0 || index > b.len {
		return false
	}
	b.InsertUnchecked(index, v)
	return true
}

// InsertLossy inserts v at index, shifting the tail right, and enforces the
// capacity bound by discarding rather than growing: when the buffer is full
// the rightmost element that no longer fits is dropped - the old tail
// element for index < Cap(), or v itself when the insert position is the
// capacity. Len() never exceeds Cap() and the operation never fails.
//
// index must be within [0, Len()]. InsertLossy does not validate this;
// callers are expected to have established it via the Try family, and
// violating it is a caller error.
func (b *Buffer[T]) InsertLossy(index int, v T) {
	b.panicIfReleased()
	end := b.len
	if end == len(b.data) {
		if index == end {
			// Full and inserting past the last slot: v is the element
			// that does not fit.
			return
		}
		end-- // the old tail is shifted out
	}
	copy(b.data[index+1:end+1], b.data[index:end])
	b.data[index] = v
	if b.len < len(b.data) {
		b.len++
	}
}

// Remove removes and returns the element at index, shifting elements
// [index+1, Len()) one slot to the left. The vacated tail slot is reset to
// the zero value so the element's references are dropped.
//
// Remove panics when index is outside the live range; removing past the end
// is a programming error, not a boundary condition.
func (b *Buffer[T]) Remove(index int) T {
	if index < 0 || index >= b.len {
		panic("bbuf: index out of bounds")
	}
	v := b.data[index]
	copy(b.data[index:b.len-1], b.data[index+1:b.len])
	b.len--
	var zero T
	b.data[b.len] = zero
	return v
}

// Pop removes and returns the last element. It returns (zero, false) on an
// empty buffer; emptiness is a boundary condition, never a panic.
func (b *Buffer[T]) Pop() (T, bool) {
	var zero T
	if b.len == 0 {
		return zero, false
	}
	b.len--
	v := b.data[b.len]
	b.data[b.len] = zero
	return v, true
}

// Clear resets the buffer to empty, zeroing every live slot so element
// references are dropped. Capacity and the backing array are retained, so a
// cleared buffer is indistinguishable from a freshly constructed one.
func (b *Buffer[T]) Clear() {
	b.panicIfReleased()
	clear(b.data[:b.len])
	b.len = 0
}

// Clone returns a new buffer with the same capacity holding a copy of the
// live elements.
func (b *Buffer[T]) Clone() *Buffer[T] {
	b.panicIfReleased()
	c := New[T](len(b.data))
	c.len = b.len
	copy(c.data, b.data[:b.len])
	return c
}

// Release drops the backing array and makes the buffer unusable. The garbage
// collector reclaims the region and anything the live elements referenced.
// Any subsequent mutation panics; reads report an empty buffer. Release is
// idempotent.
func (b *Buffer[T]) Release() {
	b.data = nil
	b.len = 0
	b.released = true
}

// panicIfReleased panics if the buffer has been released.
func (b *Buffer[T]) panicIfReleased() {
	if b.released {
		panic("bbuf: use after Release()")
	}
}
