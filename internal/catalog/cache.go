package catalog

import (
	"context"
	"sync"
	"time"

	"github.com/secmap/capmap-agent/internal/models"
)

type cacheEntry struct {
	safeguard   *models.Safeguard
	requirement *models.DomainRequirement
	expiresAt   time.Time
}

// CachedStore memoizes safeguard lookups with a time-based expiry and a
// periodic sweep. It caches values only, never classification results.
type CachedStore struct {
	inner Store
	ttl   time.Duration

	mu      sync.RWMutex
	entries map[string]cacheEntry

	stop chan struct{}
	once sync.Once
}

func NewCachedStore(inner Store, ttl time.Duration, sweepInterval time.Duration) *CachedStore {
	s := &CachedStore{
		inner:   inner,
		ttl:     ttl,
		entries: make(map[string]cacheEntry),
		stop:    make(chan struct{}),
	}

	go s.sweep(sweepInterval)
	return s
}

// Stop terminates the sweep loop.
func (s *CachedStore) Stop() {
	s.once.Do(func() { close(s.stop) })
}

func (s *CachedStore) GetSafeguard(ctx context.Context, id string) (*models.Safeguard, error) {
	if entry, ok := s.lookup(id); ok && entry.safeguard != nil {
		return entry.safeguard, nil
	}

	safeguard, err := s.inner.GetSafeguard(ctx, id)
	if err != nil {
		return nil, err
	}

	requirement, err := s.inner.GetDomainRequirement(ctx, id)
	if err != nil {
		return nil, err
	}

	s.put(id, cacheEntry{safeguard: safeguard, requirement: requirement})
	return safeguard, nil
}

func (s *CachedStore) GetDomainRequirement(ctx context.Context, id string) (*models.DomainRequirement, error) {
	if entry, ok := s.lookup(id); ok {
		return entry.requirement, nil
	}

	// Populates the entry for the id as a side effect.
	if _, err := s.GetSafeguard(ctx, id); err != nil {
		return nil, err
	}

	entry, _ := s.lookup(id)
	return entry.requirement, nil
}

func (s *CachedStore) ListSafeguardIDs(ctx context.Context) ([]string, error) {
	return s.inner.ListSafeguardIDs(ctx)
}

func (s *CachedStore) lookup(id string) (cacheEntry, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entry, ok := s.entries[id]
	if !ok || time.Now().After(entry.expiresAt) {
		return cacheEntry{}, false
	}
	return entry, true
}

func (s *CachedStore) put(id string, entry cacheEntry) {
	entry.expiresAt = time.Now().Add(s.ttl)

	s.mu.Lock()
	s.entries[id] = entry
	s.mu.Unlock()
}

func (s *CachedStore) sweep(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-s.stop:
			return
		case <-ticker.C:
			now := time.Now()
			s.mu.Lock()
			for id, entry := range s.entries {
				if now.After(entry.expiresAt) {
					delete(s.entries, id)
				}
			}
			s.mu.Unlock()
		}
	}
}
