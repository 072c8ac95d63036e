package bbuf

import "unsafe"

// The unchecked family skips capacity and index validation. Each operation
// has the same effect as its checked counterpart once the precondition
// holds; violating the precondition is undefined behavior. These exist for
// hot paths where the caller has already validated bounds through the Try
// family and cannot afford to pay for the checks twice.

// GetUnchecked returns a pointer to the element at index without bounds
// checking, using direct pointer arithmetic on the backing array.
// Use with caution - the caller must guarantee 0 <= index < Len().
func (b *Buffer[T]) GetUnchecked(index int) *T {
	return b.elemPtr(index)
}

// PushUnchecked appends v at the end without checking capacity.
// Use with caution - the caller must guarantee Len() < Cap().
func (b *Buffer[T]) PushUnchecked(v T) {
	*b.elemPtr(b.len) = v
	b.len++
}

// InsertUnchecked inserts v at index, shifting elements [index, Len()) one
// slot to the right, without checking capacity or index.
// Use with caution - the caller must guarantee Len() < Cap() and
// 0 <= index <= Len().
func (b *Buffer[T]) InsertUnchecked(index int, v T) {
	copy(b.data[index+1:b.len+1], b.data[index:b.len])
	b.data[index] = v
	b.len++
}

// elemPtr returns a pointer to slot index computed from the backing array's
// base address, avoiding slice bounds checks.
func (b *Buffer[T]) elemPtr(index int) *T {
	var zero T
	base := unsafe.Pointer(unsafe.SliceData(b.data))
	return (*T)(unsafe.Add(base, uintptr(index)*unsafe.Sizeof(zero)))
}
