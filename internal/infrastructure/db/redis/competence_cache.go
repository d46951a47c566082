package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/parkstaff/recruitment-api/internal/api/metrics"
	"github.com/parkstaff/recruitment-api/internal/core/domain"
)

const cacheTTL = 10 * time.Minute

// CompetenceCache caches localized competence lists in Redis.
// Key format: competences:<lang>
type CompetenceCache struct {
	client *redis.Client
}

// NewCompetenceCache creates a CompetenceCache wrapping the given Redis client.
func NewCompetenceCache(client *redis.Client) *CompetenceCache {
	return &CompetenceCache{client: client}
}

// Get returns the cached list for lang, or (nil, nil) on a miss.
func (c *CompetenceCache) Get(ctx context.Context, lang string) ([]domain.Competence, error) {
	raw, err := c.client.Get(ctx, c.key(lang)).Bytes()
	if err == redis.Nil {
		metrics.CompetenceCacheTotal.WithLabelValues("miss").Inc()
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("competence cache get: %w", err)
	}

	var list []domain.Competence
	if err := json.Unmarshal(raw, &list); err != nil {
		return nil, fmt.Errorf("competence cache decode: %w", err)
	}
	metrics.CompetenceCacheTotal.WithLabelValues("hit").Inc()
	return list, nil
}

// Set stores the list for lang (expires after cacheTTL).
func (c *CompetenceCache) Set(ctx context.Context, lang string, competences []domain.Competence) error {
	raw, err := json.Marshal(competences)
	if err != nil {
		return fmt.Errorf("competence cache encode: %w", err)
	}
	return c.client.Set(ctx, c.key(lang), raw, cacheTTL).Err()
}

func (c *CompetenceCache) key(lang string) string {
	return "competences:" + lang
}
