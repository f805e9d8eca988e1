package service

import (
	"slices"
	"sync"

	"github.com/MKhiriev/go-life-keeper/models"
)

// listeners is a callback registry for one event type. Callbacks run on the
// emitting goroutine in subscription order, outside the registry lock.
type listeners[T any] struct {
	mu      sync.RWMutex
	next    uint64
	entries []listener[T]
}

type listener[T any] struct {
	id uint64
	fn func(T)
}

func (l *listeners[T]) add(fn func(T)) Unsubscribe {
	l.mu.Lock()
	defer l.mu.Unlock()

	id := l.next
	l.next++
	l.entries = append(l.entries, listener[T]{id: id, fn: fn})

	var once sync.Once
	return func() {
		once.Do(func() { l.remove(id) })
	}
}

func (l *listeners[T]) remove(id uint64) {
	l.mu.Lock()
	defer l.mu.Unlock()

	for i, e := range l.entries {
		if e.id == id {
			l.entries = slices.Delete(l.entries, i, i+1)
			return
		}
	}
}

func (l *listeners[T]) emit(v T) {
	l.mu.RLock()
	entries := slices.Clone(l.entries)
	l.mu.RUnlock()

	for _, e := range entries {
		e.fn(v)
	}
}

func (l *listeners[T]) len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.entries)
}

// syncEvents groups the lifecycle notifications of one engine.
type syncEvents struct {
	statusChanged     listeners[models.SyncStatus]
	syncStarted       listeners[struct{}]
	syncCompleted     listeners[models.DrainReport]
	queueUpdated      listeners[int]
	conflictsDetected listeners[[]models.Conflict]
}
