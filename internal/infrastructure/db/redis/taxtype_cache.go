package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/fiscal/tax-management-system/internal/core/domain"
)

const cacheTTL = 10 * time.Minute

// TaxTypeCache caches tax type records in Redis as JSON.
// Key format: taxtype:<id>
type TaxTypeCache struct {
	client *redis.Client
}

// NewTaxTypeCache creates a TaxTypeCache wrapping the given Redis client.
func NewTaxTypeCache(client *redis.Client) *TaxTypeCache {
	return &TaxTypeCache{client: client}
}

// Get returns the cached tax type, or (nil, nil) on a miss.
func (c *TaxTypeCache) Get(ctx context.Context, id int64) (*domain.TaxType, error) {
	payload, err := c.client.Get(ctx, c.key(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("tax type cache get: %w", err)
	}

	var taxType domain.TaxType
	if err := json.Unmarshal(payload, &taxType); err != nil {
		return nil, fmt.Errorf("tax type cache decode: %w", err)
	}
	return &taxType, nil
}

// Set stores the tax type (expires after cacheTTL).
func (c *TaxTypeCache) Set(ctx context.Context, taxType *domain.TaxType) error {
	payload, err := json.Marshal(taxType)
	if err != nil {
		return fmt.Errorf("tax type cache encode: %w", err)
	}
	return c.client.Set(ctx, c.key(taxType.ID), payload, cacheTTL).Err()
}

// Invalidate drops the cached entry for the given id.
func (c *TaxTypeCache) Invalidate(ctx context.Context, id int64) error {
	return c.client.Del(ctx, c.key(id)).Err()
}

func (c *TaxTypeCache) key(id int64) string {
	return fmt.Sprintf("taxtype:%d", id)
}
