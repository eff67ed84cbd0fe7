package minheap

import "errors"

// Sentinel errors for heap misuse.
var (
	// ErrHeapFull indicates Insert beyond the heap's capacity.
	ErrHeapFull = errors.New("minheap: heap is full")

	// ErrKeyOutOfRange indicates a key outside [0, capacity).
	ErrKeyOutOfRange = errors.New("minheap: key out of range")

	// ErrDuplicateKey indicates Insert of a key already in the heap.
	ErrDuplicateKey = errors.New("minheap: key already present")

	// ErrEmptyHeap indicates RemoveMin or Min on an empty heap.
	ErrEmptyHeap = errors.New("minheap: heap is empty")

	// ErrNotPresent indicates DecreaseKey of a key not in the heap.
	ErrNotPresent = errors.New("minheap: key not present")

	// ErrKeyNotDecreasing indicates DecreaseKey with a priority that is
	// not strictly below the current one.
	ErrKeyNotDecreasing = errors.New("minheap: new priority does not decrease key")
)

// item is one heap slot.
type item struct {
	key      int
	priority int64
}

// Heap is an indexed binary min-heap.
type Heap struct {
	items []item // items[1..size] occupied; items[0] unused
	pos   []int  // key → slot, 0 = absent
	size  int
}
