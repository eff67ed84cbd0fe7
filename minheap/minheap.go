package minheap

import "fmt"

// New returns an empty heap able to hold keys 0..capacity-1.
// A negative capacity is treated as zero.
func New(capacity int) *Heap {
	if capacity < 0 {
		capacity = 0
	}

	return &Heap{
		items: make([]item, capacity+1),
		pos:   make([]int, capacity),
	}
}

// Len returns the number of keys currently in the heap.
func (h *Heap) Len() int { return h.size }

// IsEmpty reports whether the heap holds no keys.
func (h *Heap) IsEmpty() bool { return h.size == 0 }

// Cap returns the maximum number of keys.
func (h *Heap) Cap() int { return len(h.pos) }

// Contains reports whether key is currently queued.
func (h *Heap) Contains(key int) bool {
	return key >= 0 && key < len(h.pos) && h.pos[key] != 0
}

// Priority returns the current priority of key.
func (h *Heap) Priority(key int) (int64, bool) {
	if !h.Contains(key) {
		return 0, false
	}

	return h.items[h.pos[key]].priority, true
}

// Min returns the minimum element without removing it.
func (h *Heap) Min() (int, int64, error) {
	if h.size == 0 {
		return -1, 0, ErrEmptyHeap
	}

	return h.items[1].key, h.items[1].priority, nil
}

// Insert queues key with the given priority.
func (h *Heap) Insert(key int, priority int64) error {
	if h.size+1 > len(h.pos) {
		return fmt.Errorf("%w: capacity %d", ErrHeapFull, len(h.pos))
	}
	if key < 0 || key >= len(h.pos) {
		return fmt.Errorf("%w: %d not in [0,%d)", ErrKeyOutOfRange, key, len(h.pos))
	}
	if h.pos[key] != 0 {
		return fmt.Errorf("%w: %d", ErrDuplicateKey, key)
	}

	h.size++
	h.items[h.size] = item{key: key, priority: priority}
	h.pos[key] = h.size
	h.siftUp(h.size)

	return nil
}

// RemoveMin pops and returns the key with the smallest priority.
func (h *Heap) RemoveMin() (int, error) {
	if h.size == 0 {
		return -1, ErrEmptyHeap
	}

	top := h.items[1].key
	h.swap(1, h.size)
	h.pos[top] = 0
	h.items[h.size] = item{}
	h.size--
	if h.size > 1 {
		h.siftDown(1)
	}

	return top, nil
}

// DecreaseKey lowers the priority of a queued key. The new priority must
// be strictly smaller than the current one.
func (h *Heap) DecreaseKey(key int, priority int64) error {
	if !h.Contains(key) {
		return fmt.Errorf("%w: %d", ErrNotPresent, key)
	}
	slot := h.pos[key]
	if priority >= h.items[slot].priority {
		return fmt.Errorf("%w: key %d has %d, got %d",
			ErrKeyNotDecreasing, key, h.items[slot].priority, priority)
	}

	h.items[slot].priority = priority
	h.siftUp(slot)

	return nil
}

// siftUp moves slot s toward the root while it beats its parent.
func (h *Heap) siftUp(s int) {
	for s > 1 {
		parent := s / 2
		if h.items[s].priority >= h.items[parent].priority {
			return
		}
		h.swap(s, parent)
		s = parent
	}
}

// siftDown moves slot s toward the leaves while a child beats it.
// The right child is chosen only when strictly smaller than the left.
func (h *Heap) siftDown(s int) {
	for {
		child := 2 * s
		if child > h.size {
			return // leaf
		}
		if right := child + 1; right <= h.size && h.items[right].priority < h.items[child].priority {
			child = right
		}
		if h.items[child].priority >= h.items[s].priority {
			return
		}
		h.swap(s, child)
		s = child
	}
}

// swap exchanges two slots and keeps pos in step.
func (h *Heap) swap(a, b int) {
	h.items[a], h.items[b] = h.items[b], h.items[a]
	h.pos[h.items[a].key] = a
	h.pos[h.items[b].key] = b
}
