package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/secmap/capmap-agent/internal/models"
)

const safeguardKeyPrefix = "capmap:safeguard:"

// RedisStore is a read-through cache in front of another Store, for
// deployments running several agent instances against one catalog. Cache
// failures fall back to the inner store.
type RedisStore struct {
	client *redis.Client
	inner  Store
	ttl    time.Duration
	logger *zerolog.Logger
}

func NewRedisStore(client *redis.Client, inner Store, ttl time.Duration, logger *zerolog.Logger) *RedisStore {
	return &RedisStore{
		client: client,
		inner:  inner,
		ttl:    ttl,
		logger: logger,
	}
}

func (s *RedisStore) GetSafeguard(ctx context.Context, id string) (*models.Safeguard, error) {
	key := safeguardKeyPrefix + id

	payload, err := s.client.Get(ctx, key).Result()
	if err == nil {
		var safeguard models.Safeguard
		if err := json.Unmarshal([]byte(payload), &safeguard); err == nil {
			return &safeguard, nil
		}
		s.logger.Warn().Str("key", key).Msg("Discarding malformed cache entry")
	} else if !errors.Is(err, redis.Nil) {
		s.logger.Warn().Err(err).Str("key", key).Msg("Cache read failed, falling back to store")
	}

	safeguard, err := s.inner.GetSafeguard(ctx, id)
	if err != nil {
		return nil, err
	}

	if payload, err := json.Marshal(safeguard); err == nil {
		if err := s.client.Set(ctx, key, payload, s.ttl).Err(); err != nil {
			s.logger.Warn().Err(err).Str("key", key).Msg("Cache write failed")
		}
	}

	return safeguard, nil
}

func (s *RedisStore) GetDomainRequirement(ctx context.Context, id string) (*models.DomainRequirement, error) {
	safeguard, err := s.GetSafeguard(ctx, id)
	if err != nil {
		return nil, err
	}
	if len(safeguard.RequiredToolTypes) == 0 {
		return nil, nil
	}

	return &models.DomainRequirement{
		SafeguardID:       safeguard.ID,
		Domain:            safeguard.Domain,
		RequiredToolTypes: safeguard.RequiredToolTypes,
	}, nil
}

func (s *RedisStore) ListSafeguardIDs(ctx context.Context) ([]string, error) {
	return s.inner.ListSafeguardIDs(ctx)
}
