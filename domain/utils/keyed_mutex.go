package utils

import (
	"sync"
)

// KeyedMutex provides per-key locking. Bounty reaction events use it to
// serialize quorum transitions per guild: "reached 2, start countdown" and
// "dropped below 2, cancel countdown" are not commutative if interleaved.
type KeyedMutex struct {
	locks sync.Map // int64 -> *sync.Mutex
}

// NewKeyedMutex creates a new KeyedMutex.
func NewKeyedMutex() *KeyedMutex {
	return &KeyedMutex{}
}

// Lock acquires the mutex for key, creating it on first use.
func (km *KeyedMutex) Lock(key int64) {
	km.get(key).Lock()
}

// Unlock releases the mutex for key.
func (km *KeyedMutex) Unlock(key int64) {
	km.get(key).Unlock()
}

// WithLock runs fn while holding the mutex for key.
func (km *KeyedMutex) WithLock(key int64, fn func() error) error {
	km.Lock(key)
	defer km.Unlock(key)
	return fn()
}

func (km *KeyedMutex) get(key int64) *sync.Mutex {
	if v, ok := km.locks.Load(key); ok {
		return v.(*sync.Mutex)
	}
	v, _ := km.locks.LoadOrStore(key, &sync.Mutex{})
	return v.(*sync.Mutex)
}
