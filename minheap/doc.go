// Package minheap implements an indexed binary min-heap of (key, priority)
// pairs with O(log n) decrease-key.
//
// Keys are dense integers in [0, capacity). Alongside the 1-based heap
// array (slot 0 is never used) the heap keeps a position array so that
// pos[key] is the slot currently holding key, or 0 when the key is absent.
// This is what lets DecreaseKey find an element without scanning.
//
// Invariants, restored before every method returns:
//
//   - for every occupied slot i > 1: items[i].priority >= items[i/2].priority
//   - for every occupied slot i:     pos[items[i].key] == i
//
// Complexity:
//
//   - Insert, RemoveMin, DecreaseKey: O(log n)
//   - Contains, Priority, Min, Len:   O(1)
//   - Space: O(capacity)
//
// Errors (sentinel) signal misuse by the caller, never a transient state:
//
//	ErrHeapFull, ErrKeyOutOfRange, ErrDuplicateKey,
//	ErrEmptyHeap, ErrNotPresent, ErrKeyNotDecreasing.
//
// A Heap is not safe for concurrent use.
package minheap
