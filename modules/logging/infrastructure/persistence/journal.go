package persistence

import "sync"

// DefaultCapacity bounds each journal when the caller passes a non-positive
// capacity.
const DefaultCapacity = 1000

// journal keeps the newest capacity entries in insertion order. The oldest
// entry is dropped once the journal is full.
type journal[T any] struct {
	mu       sync.RWMutex
	capacity int
	nextID   uint
	entries  []T
}

func newJournal[T any](capacity int) *journal[T] {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &journal[T]{capacity: capacity}
}

func (j *journal[T]) append(entry T, setID func(*T, uint)) T {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.nextID++
	setID(&entry, j.nextID)
	if len(j.entries) == j.capacity {
		copy(j.entries, j.entries[1:])
		j.entries = j.entries[:len(j.entries)-1]
	}
	j.entries = append(j.entries, entry)
	return entry
}

// find returns copies of the matching entries, newest first.
func (j *journal[T]) find(match func(*T) bool, limit, offset int) []*T {
	j.mu.RLock()
	defer j.mu.RUnlock()
	out := make([]*T, 0)
	skipped := 0
	for i := len(j.entries) - 1; i >= 0; i-- {
		e := j.entries[i]
		if !match(&e) {
			continue
		}
		if skipped < offset {
			skipped++
			continue
		}
		out = append(out, &e)
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out
}

func (j *journal[T]) count(match func(*T) bool) int64 {
	j.mu.RLock()
	defer j.mu.RUnlock()
	var n int64
	for i := range j.entries {
		if match(&j.entries[i]) {
			n++
		}
	}
	return n
}
