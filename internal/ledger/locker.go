package ledger

import (
	"sync"
)

// identityLocker serializes trades per profile identity.
// Uses per-identity locks instead of a global lock.
type identityLocker struct {
	locks    map[string]*sync.Mutex // identity → mutex
	mapMutex sync.RWMutex           // protects the map itself
}

func newIdentityLocker() *identityLocker {
	return &identityLocker{
		locks: make(map[string]*sync.Mutex),
	}
}

// Lock locks the profile for a specific identity.
func (l *identityLocker) Lock(identity string) {
	// First, get or create the mutex for this identity
	l.mapMutex.Lock()

	if l.locks[identity] == nil {
		l.locks[identity] = &sync.Mutex{}
	}

	mu := l.locks[identity]
	l.mapMutex.Unlock()

	// Now lock that identity's mutex
	mu.Lock()
}

// Unlock unlocks the profile for a specific identity.
func (l *identityLocker) Unlock(identity string) {
	l.mapMutex.RLock()
	mu := l.locks[identity]
	l.mapMutex.RUnlock()

	if mu != nil {
		mu.Unlock()
	}
}
