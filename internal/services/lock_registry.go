package services

import (
	"sort"
	"sync"
)

// LockRegistry hands out named mutexes so engine operations can serialize
// writers per hotel and per client. Every mutating operation must hold the
// locks of all hotels and clients it touches before checking capacity.
type LockRegistry struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// NewLockRegistry creates an empty lock registry
func NewLockRegistry() *LockRegistry {
	return &LockRegistry{
		locks: make(map[string]*sync.Mutex),
	}
}

func (r *LockRegistry) lockFor(key string) *sync.Mutex {
	r.mu.Lock()
	defer r.mu.Unlock()

	lock, ok := r.locks[key]
	if !ok {
		lock = &sync.Mutex{}
		r.locks[key] = lock
	}
	return lock
}

// Acquire locks all the given keys and returns a release function. Keys
// are deduplicated and locked in sorted order so two operations touching
// overlapping key sets cannot deadlock.
func (r *LockRegistry) Acquire(keys ...string) func() {
	unique := make(map[string]bool, len(keys))
	ordered := make([]string, 0, len(keys))
	for _, key := range keys {
		if key == "" || unique[key] {
			continue
		}
		unique[key] = true
		ordered = append(ordered, key)
	}
	sort.Strings(ordered)

	acquired := make([]*sync.Mutex, 0, len(ordered))
	for _, key := range ordered {
		lock := r.lockFor(key)
		lock.Lock()
		acquired = append(acquired, lock)
	}

	return func() {
		// Release in reverse acquisition order
		for i := len(acquired) - 1; i >= 0; i-- {
			acquired[i].Unlock()
		}
	}
}
