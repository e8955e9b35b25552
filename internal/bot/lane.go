package bot

import "sync"

// laneLock provides per-user serialization. Messages from the same user are
// processed one at a time while different users proceed concurrently.
//
// A global mutex protects the lane map; each lane has its own mutex for
// per-user serialization. The global mutex is held only briefly to look up
// or create the per-user mutex.
type laneLock struct {
	mu    sync.Mutex
	lanes map[string]*lane
}

// lane stores per-user synchronization metadata. refs counts goroutines
// that acquired (or are waiting on) this lane; the entry is removed once
// refs drops to zero.
type lane struct {
	mu   sync.Mutex
	refs int
}

func newLaneLock() *laneLock {
	return &laneLock{
		lanes: make(map[string]*lane),
	}
}

// Acquire gets or creates the per-user mutex and locks it.
// The caller must call Release with the same key when done.
func (l *laneLock) Acquire(key string) {
	l.mu.Lock()
	ln, ok := l.lanes[key]
	if !ok {
		ln = &lane{}
		l.lanes[key] = ln
	}
	ln.refs++
	l.mu.Unlock()

	// Lock outside the global mutex so other users are not blocked.
	ln.mu.Lock()
}

// Release unlocks the per-user mutex for the given key.
// The caller must have previously called Acquire with the same key.
func (l *laneLock) Release(key string) {
	l.mu.Lock()
	ln, ok := l.lanes[key]
	if !ok {
		l.mu.Unlock()
		return
	}
	ln.refs--
	if ln.refs == 0 {
		delete(l.lanes, key)
	}
	l.mu.Unlock()

	ln.mu.Unlock()
}
