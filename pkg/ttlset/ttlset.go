// Package ttlset provides a concurrency-safe membership set with per-key
// expiry, used for webhook replay suppression.
package ttlset

import (
	"sync"
	"time"
)

const scavengeInterval = 1 * time.Second

// Set is a bounded-time membership set. Insert is the one-shot idempotency
// primitive: it reports whether the key was absent (or expired) at the time
// of the call. A background scavenger drops expired entries once per second;
// Insert never trusts a stale entry, so scavenger lag is unobservable.
type Set struct {
	mu      sync.Mutex
	entries map[string]time.Time
	stopCh  chan struct{}
	once    sync.Once
}

// New creates a Set and starts its scavenger goroutine. Callers must Close
// the set when done with it.
func New() *Set {
	s := &Set{
		entries: make(map[string]time.Time),
		stopCh:  make(chan struct{}),
	}
	go s.scavenge()
	return s
}

// Insert adds key with the given ttl. It returns true if the key was not
// present or its previous entry had already expired, false if the key is
// still fresh. The expiry is always refreshed.
func (s *Set) Insert(key string, ttl time.Duration) bool {
	now := time.Now()

	s.mu.Lock()
	defer s.mu.Unlock()

	expiry, ok := s.entries[key]
	s.entries[key] = now.Add(ttl)
	return !ok || !expiry.After(now)
}

// Len returns the number of entries currently held, expired or not.
func (s *Set) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}

// Close stops the scavenger. Safe to call more than once.
func (s *Set) Close() {
	s.once.Do(func() { close(s.stopCh) })
}

func (s *Set) scavenge() {
	ticker := time.NewTicker(scavengeInterval)
	defer ticker.Stop()

	for {
		select {
		case <-s.stopCh:
			return
		case now := <-ticker.C:
			s.mu.Lock()
			for key, expiry := range s.entries {
				if !expiry.After(now) {
					delete(s.entries, key)
				}
			}
			s.mu.Unlock()
		}
	}
}
