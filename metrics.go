package bbuf

import "unsafe"

// ElemSize returns the size of one element in bytes.
func (b *Buffer[T]) ElemSize() int {
	var zero T
	return int(unsafe.Sizeof(zero))
}

// SizeInUse returns the number of bytes occupied by live elements.
func (b *Buffer[T]) SizeInUse() int {
	return b.len * b.ElemSize()
}

// SizeReserved returns the total size of the backing array in bytes.
// A released buffer reports 0.
func (b *Buffer[T]) SizeReserved() int {
	return len(b.data) * b.ElemSize()
}

// Utilization returns the ratio of live elements to capacity (0.0 to 1.0).
// Returns 0.0 if the buffer has no capacity.
func (b *Buffer[T]) Utilization() float64 {
	if len(b.data) == 0 {
		return 0
	}
	return float64(b.len) / float64(len(b.data))
}

// Metrics returns a snapshot of buffer statistics.
func (b *Buffer[T]) Metrics() BufferMetrics {
	return BufferMetrics{
		Len:          b.len,
		Cap:          len(b.data),
		ElemSize:     b.ElemSize(),
		SizeInUse:    b.SizeInUse(),
		SizeReserved: b.SizeReserved(),
		Utilization:  b.Utilization(),
	}
}

// BufferMetrics contains statistical information about a buffer.
type BufferMetrics struct {
	Len          int     // Live element count
	Cap          int     // Fixed capacity
	ElemSize     int     // Size of one element in bytes
	SizeInUse    int     // Bytes occupied by live elements
	SizeReserved int     // Bytes of the backing array
	Utilization  float64 // Ratio of live elements to capacity (0.0-1.0)
}
