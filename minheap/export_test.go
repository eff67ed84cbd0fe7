package minheap

import "fmt"

// CheckInvariant verifies heap order and the position index.
// It lives in a _test file so the check never ships in production builds.
func (h *Heap) CheckInvariant() error {
	for i := 2; i <= h.size; i++ {
		if h.items[i].priority < h.items[i/2].priority {
			return fmt.Errorf("slot %d (prio %d) beats parent %d (prio %d)",
				i, h.items[i].priority, i/2, h.items[i/2].priority)
		}
	}
	present := 0
	for i := 1; i <= h.size; i++ {
		if got := h.pos[h.items[i].key]; got != i {
			return fmt.Errorf("pos[%d] = %d, want %d", h.items[i].key, got, i)
		}
	}
	for _, p := range h.pos {
		if p != 0 {
			present++
		}
	}
	if present != h.size {
		return fmt.Errorf("%d keys marked present, size is %d", present, h.size)
	}

	return nil
}
