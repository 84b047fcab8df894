// Package keylock serializes work per key, e.g. per courier id, without
// holding a process-wide lock.
package keylock

import "sync"

// Locker hands out one mutex per key. Entries are reference counted and
// removed once the last holder unlocks, so the map only grows with the
// number of keys currently in use.
//
// The zero value is ready to use. A Locker must not be copied after first use.
type Locker struct {
	mu      sync.Mutex
	entries map[string]*entry
}

type entry struct {
	mu   sync.Mutex
	refs int
}

// New returns an empty Locker.
func New() *Locker {
	return &Locker{}
}

// Lock blocks until key is free and returns the function that releases it.
//
// Example:
//
//	unlock := locker.Lock(courierID.String())
//	defer unlock()
func (l *Locker) Lock(key string) (unlock func()) {
	l.mu.Lock()
	if l.entries == nil {
		l.entries = make(map[string]*entry)
	}
	e, ok := l.entries[key]
	if !ok {
		e = &entry{}
		l.entries[key] = e
	}
	e.refs++
	l.mu.Unlock()

	e.mu.Lock()

	var once sync.Once
	return func() {
		once.Do(func() {
			e.mu.Unlock()

			l.mu.Lock()
			e.refs--
			if e.refs == 0 {
				delete(l.entries, key)
			}
			l.mu.Unlock()
		})
	}
}

// LockAll acquires keys in the given order and releases them in reverse.
// Callers must pass keys in a consistent order across operations.
func (l *Locker) LockAll(keys ...string) (unlock func()) {
	unlocks := make([]func(), 0, len(keys))
	for _, key := range keys {
		unlocks = append(unlocks, l.Lock(key))
	}
	return func() {
		for i := len(unlocks) - 1; i >= 0; i-- {
			unlocks[i]()
		}
	}
}

// Len reports how many keys are currently held or waited on.
func (l *Locker) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.entries)
}
