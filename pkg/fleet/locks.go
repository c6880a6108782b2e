package fleet

import "sync"

// EngineLocks serializes scoring per engine. Entries are reference counted
// and dropped when the last holder unlocks.
type EngineLocks struct {
	mu    sync.Mutex
	locks map[uint]*engineLock
}

type engineLock struct {
	mu   sync.Mutex
	refs int
}

func NewEngineLocks() *EngineLocks {
	return &EngineLocks{locks: make(map[uint]*engineLock)}
}

// Lock blocks until engineID is free and returns its unlock func.
func (l *EngineLocks) Lock(engineID uint) func() {
	l.mu.Lock()
	el, ok := l.locks[engineID]
	if !ok {
		el = &engineLock{}
		l.locks[engineID] = el
	}
	el.refs++
	l.mu.Unlock()

	el.mu.Lock()

	return func() {
		el.mu.Unlock()

		l.mu.Lock()
		el.refs--
		if el.refs == 0 {
			delete(l.locks, engineID)
		}
		l.mu.Unlock()
	}
}

func (l *EngineLocks) size() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.locks)
}
