package log

import (
	"fmt"
	"io"
	"sync"
)

// CircularBuffer is a thread-safe [io.Writer] that retains the most recent
// entries. The TUI swallows stderr while it owns the terminal, so log output
// is captured here and flushed once the program exits.
type CircularBuffer struct {
	entries  [][]byte
	capacity int
	start    int
	count    int
	mu       sync.RWMutex
}

// NewCircularBuffer creates a buffer retaining up to capacity entries.
func NewCircularBuffer(capacity int) *CircularBuffer {
	if capacity <= 0 {
		capacity = 100
	}

	return &CircularBuffer{
		entries:  make([][]byte, capacity),
		capacity: capacity,
	}
}

// Write stores p as one entry, evicting the oldest entry when full.
// The data is copied so callers may reuse p.
func (cb *CircularBuffer) Write(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}

	cb.mu.Lock()
	defer cb.mu.Unlock()

	entry := make([]byte, len(p))
	copy(entry, p)

	idx := (cb.start + cb.count) % cb.capacity
	cb.entries[idx] = entry

	if cb.count < cb.capacity {
		cb.count++
	} else {
		// Buffer full, the oldest entry was just overwritten.
		cb.start = (cb.start + 1) % cb.capacity
	}

	return len(p), nil
}

// Entries returns a copy of all retained entries, oldest first.
func (cb *CircularBuffer) Entries() [][]byte {
	cb.mu.RLock()
	defer cb.mu.RUnlock()

	if cb.count == 0 {
		return nil
	}

	result := make([][]byte, 0, cb.count)
	for i := range cb.count {
		src := cb.entries[(cb.start+i)%cb.capacity]

		entry := make([]byte, len(src))
		copy(entry, src)

		result = append(result, entry)
	}

	return result
}

// Size returns the current number of entries.
func (cb *CircularBuffer) Size() int {
	cb.mu.RLock()
	defer cb.mu.RUnlock()

	return cb.count
}

// Capacity returns the maximum number of retained entries.
func (cb *CircularBuffer) Capacity() int {
	return cb.capacity
}

// IsFull reports whether older entries are being evicted.
func (cb *CircularBuffer) IsFull() bool {
	cb.mu.RLock()
	defer cb.mu.RUnlock()

	return cb.count == cb.capacity
}

// Clear removes all entries.
func (cb *CircularBuffer) Clear() {
	cb.mu.Lock()
	defer cb.mu.Unlock()

	cb.start = 0
	cb.count = 0
	for i := range cb.entries {
		cb.entries[i] = nil
	}
}

// WriteTo flushes all retained entries to w in chronological order.
func (cb *CircularBuffer) WriteTo(w io.Writer) (int64, error) {
	var total int64

	for _, entry := range cb.Entries() {
		n, err := w.Write(entry)
		total += int64(n)

		if err != nil {
			return total, fmt.Errorf("write entry: %w", err)
		}
	}

	return total, nil
}
