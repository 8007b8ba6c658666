package providers

import "sync"

// Keys is a snapshot of both upstream API keys. An empty key means the
// corresponding provider is unconfigured.
type Keys struct {
	BallDontLie string
	Odds        string
}

// Keyring holds the upstream API keys behind a lock so they can be swapped
// at runtime without rebuilding the HTTP clients that read them.
type Keyring struct {
	mu   sync.RWMutex
	keys Keys
}

func NewKeyring(keys Keys) *Keyring {
	return &Keyring{keys: keys}
}

// BallDontLie returns the current balldontlie API key.
func (k *Keyring) BallDontLie() string {
	if k == nil {
		return ""
	}
	k.mu.RLock()
	defer k.mu.RUnlock()
	return k.keys.BallDontLie
}

// Odds returns the current odds API key.
func (k *Keyring) Odds() string {
	if k == nil {
		return ""
	}
	k.mu.RLock()
	defer k.mu.RUnlock()
	return k.keys.Odds
}

// Snapshot returns both keys as of one read.
func (k *Keyring) Snapshot() Keys {
	if k == nil {
		return Keys{}
	}
	k.mu.RLock()
	defer k.mu.RUnlock()
	return k.keys
}

// Update replaces both keys in one step.
func (k *Keyring) Update(keys Keys) {
	if k == nil {
		return
	}
	k.mu.Lock()
	k.keys = keys
	k.mu.Unlock()
}
