// Package bbuf implements a fixed-capacity, contiguous bounded buffer for Go.
//
// # Overview
//
// A bounded buffer is a growable-array primitive whose capacity is fixed at
// construction time. It never reallocates, never moves its backing memory,
// and never grows past its capacity. This is particularly useful for:
//
//   - Ring buffers and bounded queues built on top of a stable region
//   - Fixed-size pools with a hard upper bound on memory usage
//   - Hot paths that cannot afford the reallocation spikes of append()
//   - Sliding windows over recent items (via lossy insertion)
//
// # Basic Usage
//
//	buf := bbuf.New[int](64) // Capacity fixed at 64
//	defer buf.Release()      // Clean up when done
//
//	// Append while there is room
//	ok := buf.TryPush(42)
//
//	// Random access over the live range
//	p, ok := buf.Get(0)
//
//	// View exactly the live elements
//	for _, v := range buf.Slice() {
//		_ = v
//	}
//
//	// Reuse without reallocating
//	buf.Clear()
//
// # Checked vs Unchecked Operations
//
// The public surface comes in two families. The checked family (TryPush,
// TryInsert, Get, Pop) validates every capacity and index condition and
// reports boundary cases through boolean results - it never panics on a full
// buffer or an out-of-range read. The unchecked family (PushUnchecked,
// InsertUnchecked, GetUnchecked) skips that validation for hot paths where
// the caller has already established the precondition; violating an
// unchecked precondition is a caller bug with undefined results. The two
// families live in separate files so opting out of safety is always visible
// at the call site.
//
// # Thread Safety
//
// Buffer is not safe for concurrent use. Callers sharing one instance across
// goroutines must provide their own synchronization.
//
// # Memory Layout and Lifetime
//
// The backing array is allocated once by New (a zero-capacity buffer
// allocates nothing) and its address is stable for the buffer's lifetime,
// which is what makes the pointers returned by Get and the slices returned
// by Slice valid. Slots past Len() always hold the zero value of T: removal,
// Pop, and Clear overwrite vacated slots so the garbage collector can
// reclaim anything the removed elements referenced.
//
// Pointers and slices obtained from a buffer are views, not copies. They are
// invalidated by any mutation (insert, remove, clear) and by Release;
// reading a stale view is a caller error.
//
// Release drops the backing array and marks the buffer unusable - any
// subsequent mutation panics. Releasing is optional for memory correctness
// (an abandoned buffer is collected like any other Go value) but gives a
// deterministic end-of-life point for element references.
//
// # Performance Characteristics
//
//   - TryPush / Pop: O(1)
//   - TryInsert / Remove at index i: O(Len() - i) due to the element shift
//   - Clear: O(Len())
//   - No operation allocates after construction
//
// # Metrics and Monitoring
//
// The buffer reports its memory footprint in bytes:
//
//	m := buf.Metrics()
//	fmt.Printf("Utilization: %.2f%%\n", m.Utilization * 100)
//	fmt.Printf("Bytes in use: %d of %d\n", m.SizeInUse, m.SizeReserved)
package bbuf
