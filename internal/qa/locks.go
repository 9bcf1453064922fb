package qa

import (
	"fmt"
	"sync"
)

// keyLock serializes mutations per entity. Operations on the same
// parent (question, answer, trust list, review) take the same mutex so
// read-modify-write sequences never interleave; operations on different
// entities proceed in parallel. Mutexes are kept for the process
// lifetime; the key space is bounded by the entities actually touched.
type keyLock struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func newKeyLock() *keyLock {
	return &keyLock{locks: make(map[string]*sync.Mutex)}
}

// lock acquires the mutex for kind/id and returns the unlock function.
func (k *keyLock) lock(kind string, id int64) func() {
	key := fmt.Sprintf("%s/%d", kind, id)

	k.mu.Lock()
	m, ok := k.locks[key]
	if !ok {
		m = &sync.Mutex{}
		k.locks[key] = m
	}
	k.mu.Unlock()

	m.Lock()
	return m.Unlock
}
