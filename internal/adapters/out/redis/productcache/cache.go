// Package productcache decorates the product catalog repository with a Redis
// read-through cache. The catalog changes only through migrations, so entries
// are cached with a long TTL and the whole keyspace can be dropped on deploy.
package productcache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/Ramos-Maykol/project/internal/core/domain/model/product"
	"github.com/Ramos-Maykol/project/internal/core/ports"

	"github.com/redis/go-redis/v9"
)

const (
	keyPrefix  = "catalog:product_type:"
	allKey     = "catalog:product_types"
	defaultTTL = time.Hour
)

// productTypeEntry is the cached JSON representation of a catalog entry.
type productTypeEntry struct {
	ID                 int     `json:"id"`
	Name               string  `json:"name"`
	MaterialType       string  `json:"material_type"`
	BaseProductionTime float64 `json:"base_production_time"`
	ComplexityFactor   float64 `json:"complexity_factor"`
}

// CachedProductTypeRepository is a read-through cache over a
// ProductTypeRepository. Cache failures are logged and degrade to the inner
// repository; they never fail a request.
type CachedProductTypeRepository struct {
	inner  ports.ProductTypeRepository
	client *redis.Client
	ttl    time.Duration
	logger *slog.Logger
}

// NewCachedProductTypeRepository creates a caching decorator over inner.
func NewCachedProductTypeRepository(
	inner ports.ProductTypeRepository,
	client *redis.Client,
	logger *slog.Logger,
) *CachedProductTypeRepository {
	return &CachedProductTypeRepository{
		inner:  inner,
		client: client,
		ttl:    defaultTTL,
		logger: logger.With("component", "product_cache"),
	}
}

// Get retrieves a product type, preferring the cache.
func (r *CachedProductTypeRepository) Get(ctx context.Context, id int) (product.ProductType, error) {
	key := fmt.Sprintf("%s%d", keyPrefix, id)

	payload, err := r.client.Get(ctx, key).Bytes()
	if err == nil {
		pt, decodeErr := decodeEntry(payload)
		if decodeErr == nil {
			return pt, nil
		}
		r.logger.Warn("dropping undecodable cache entry", "key", key, "error", decodeErr)
		_ = r.client.Del(ctx, key).Err()
	} else if !errors.Is(err, redis.Nil) {
		r.logger.Warn("cache read failed", "key", key, "error", err)
	}

	pt, err := r.inner.Get(ctx, id)
	if err != nil {
		return product.ProductType{}, err
	}

	r.store(ctx, key, pt)
	return pt, nil
}

// GetAll retrieves the full catalog, preferring the cache.
func (r *CachedProductTypeRepository) GetAll(ctx context.Context) ([]product.ProductType, error) {
	payload, err := r.client.Get(ctx, allKey).Bytes()
	if err == nil {
		catalog, decodeErr := decodeCatalog(payload)
		if decodeErr == nil {
			return catalog, nil
		}
		r.logger.Warn("dropping undecodable cache entry", "key", allKey, "error", decodeErr)
		_ = r.client.Del(ctx, allKey).Err()
	} else if !errors.Is(err, redis.Nil) {
		r.logger.Warn("cache read failed", "key", allKey, "error", err)
	}

	catalog, err := r.inner.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	entries := make([]productTypeEntry, len(catalog))
	for i, pt := range catalog {
		entries[i] = toEntry(pt)
	}
	if encoded, encodeErr := json.Marshal(entries); encodeErr == nil {
		if cacheErr := r.client.Set(ctx, allKey, encoded, r.ttl).Err(); cacheErr != nil {
			r.logger.Warn("cache write failed", "key", allKey, "error", cacheErr)
		}
	}

	return catalog, nil
}

func (r *CachedProductTypeRepository) store(ctx context.Context, key string, pt product.ProductType) {
	encoded, err := json.Marshal(toEntry(pt))
	if err != nil {
		return
	}
	if err = r.client.Set(ctx, key, encoded, r.ttl).Err(); err != nil {
		r.logger.Warn("cache write failed", "key", key, "error", err)
	}
}

func toEntry(pt product.ProductType) productTypeEntry {
	return productTypeEntry{
		ID:                 pt.ID(),
		Name:               pt.Name(),
		MaterialType:       pt.MaterialType(),
		BaseProductionTime: pt.BaseProductionTime(),
		ComplexityFactor:   pt.ComplexityFactor(),
	}
}

func decodeEntry(payload []byte) (product.ProductType, error) {
	var entry productTypeEntry
	if err := json.Unmarshal(payload, &entry); err != nil {
		return product.ProductType{}, err
	}

	return product.NewProductType(
		entry.ID, entry.Name, entry.MaterialType,
		entry.BaseProductionTime, entry.ComplexityFactor,
	)
}

func decodeCatalog(payload []byte) ([]product.ProductType, error) {
	var entries []productTypeEntry
	if err := json.Unmarshal(payload, &entries); err != nil {
		return nil, err
	}

	catalog := make([]product.ProductType, 0, len(entries))
	for _, entry := range entries {
		pt, err := product.NewProductType(
			entry.ID, entry.Name, entry.MaterialType,
			entry.BaseProductionTime, entry.ComplexityFactor,
		)
		if err != nil {
			return nil, err
		}
		catalog = append(catalog, pt)
	}

	return catalog, nil
}
