package catalog

import (
	"context"
	"errors"

	"github.com/secmap/capmap-agent/internal/models"
)

var ErrSafeguardNotFound = errors.New("safeguard not found")

// Store is the reference-data boundary the engine reads safeguards through.
type Store interface {
	GetSafeguard(ctx context.Context, id string) (*models.Safeguard, error)
	// GetDomainRequirement returns nil when the safeguard carries no
	// domain restriction.
	GetDomainRequirement(ctx context.Context, id string) (*models.DomainRequirement, error)
	ListSafeguardIDs(ctx context.Context) ([]string, error)
}

// MemoryStore serves the catalog loaded at startup. The maps are never
// written after construction, so it is safe for concurrent reads.
type MemoryStore struct {
	safeguards map[string]models.Safeguard
	ids        []string
}

func NewMemoryStore(cfg *CatalogConfig) *MemoryStore {
	safeguards := make(map[string]models.Safeguard, len(cfg.Safeguards))
	ids := make([]string, 0, len(cfg.Safeguards))

	for _, entry := range cfg.Safeguards {
		safeguards[entry.ID] = models.Safeguard{
			ID:                entry.ID,
			Title:             entry.Title,
			Description:       entry.Description,
			Domain:            entry.Domain,
			RequiredToolTypes: entry.RequiredToolTypes,
		}
		ids = append(ids, entry.ID)
	}

	return &MemoryStore{
		safeguards: safeguards,
		ids:        ids,
	}
}

func (s *MemoryStore) GetSafeguard(ctx context.Context, id string) (*models.Safeguard, error) {
	safeguard, ok := s.safeguards[id]
	if !ok {
		return nil, ErrSafeguardNotFound
	}
	return &safeguard, nil
}

func (s *MemoryStore) GetDomainRequirement(ctx context.Context, id string) (*models.DomainRequirement, error) {
	safeguard, ok := s.safeguards[id]
	if !ok || len(safeguard.RequiredToolTypes) == 0 {
		return nil, nil
	}

	return &models.DomainRequirement{
		SafeguardID:       safeguard.ID,
		Domain:            safeguard.Domain,
		RequiredToolTypes: safeguard.RequiredToolTypes,
	}, nil
}

func (s *MemoryStore) ListSafeguardIDs(ctx context.Context) ([]string, error) {
	ids := make([]string, len(s.ids))
	copy(ids, s.ids)
	return ids, nil
}
