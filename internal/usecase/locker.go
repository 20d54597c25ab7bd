package usecase

import "sync"

// gameLocker serializes operations on the same game id.
type gameLocker struct {
	mu    sync.Mutex
	locks map[string]*gameLock
}

type gameLock struct {
	sync.Mutex
	refs int
}

func newGameLocker() *gameLocker {
	return &gameLocker{
		locks: make(map[string]*gameLock),
	}
}

// Lock - blocks until id is free and returns the matching unlock.
func (that *gameLocker) Lock(id string) func() {
	that.mu.Lock()
	lock, ok := that.locks[id]
	if !ok {
		lock = &gameLock{}
		that.locks[id] = lock
	}
	lock.refs++
	that.mu.Unlock()

	lock.Lock()

	return func() {
		lock.Unlock()

		that.mu.Lock()
		lock.refs--
		if lock.refs == 0 {
			delete(that.locks, id)
		}
		that.mu.Unlock()
	}
}
