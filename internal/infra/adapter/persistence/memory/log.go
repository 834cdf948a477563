// Package memory provides process-memory implementations of the registry interfaces.
// Contents live only as long as the registry value; there is no persistence.
package memory

import "sync"

// appendLog is an ordered, append-only list safe for concurrent use.
type appendLog[T any] struct {
	mu    sync.RWMutex
	items []*T
}

func (l *appendLog[T]) append(v *T) {
	if v == nil {
		return
	}
	l.mu.Lock()
	l.items = append(l.items, v)
	l.mu.Unlock()
}

func (l *appendLog[T]) snapshot() []*T {
	l.mu.RLock()
	defer l.mu.RUnlock()
	out := make([]*T, len(l.items))
	copy(out, l.items)
	return out
}

func (l *appendLog[T]) contains(v *T) bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	for _, item := range l.items {
		if item == v {
			return true
		}
	}
	return false
}

func (l *appendLog[T]) len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.items)
}
