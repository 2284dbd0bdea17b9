package services

import "sync"

// Locker guards the read-compare-write sequence of bidding and closing on one listing.
type Locker interface {
	Lock(listingID uint) (unlock func())
}

// NoopLocker performs no serialisation.
type NoopLocker struct{}

func (NoopLocker) Lock(uint) func() {
	return func() {}
}

// KeyedLocker holds one mutex per listing id for the life of the process.
type KeyedLocker struct {
	mu    sync.Mutex
	locks map[uint]*sync.Mutex
}

func NewKeyedLocker() *KeyedLocker {
	return &KeyedLocker{locks: make(map[uint]*sync.Mutex)}
}

func (k *KeyedLocker) Lock(listingID uint) func() {
	k.mu.Lock()
	m, ok := k.locks[listingID]
	if !ok {
		m = &sync.Mutex{}
		k.locks[listingID] = m
	}
	k.mu.Unlock()

	m.Lock()
	return m.Unlock
}
