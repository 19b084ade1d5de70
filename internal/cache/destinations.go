package cache

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/mrlokans/wayfarer/internal/entities"
)

const (
	destinationsKey      = "cache:destinations"
	destinationKeyPrefix = "cache:destination:"
)

// DestinationSource is the authoritative destination store.
type DestinationSource interface {
	ListDestinations(ctx context.Context) ([]entities.Destination, error)
	GetDestinationByID(ctx context.Context, id string) (*entities.Destination, error)
}

// CachedDestinations is a read-through cache in front of a DestinationSource.
// Cache failures are logged and fall back to the source; source errors,
// including not-found, are never cached.
type CachedDestinations struct {
	source DestinationSource
	store  Store
	ttl    time.Duration
}

func NewCachedDestinations(source DestinationSource, store Store, ttl time.Duration) *CachedDestinations {
	return &CachedDestinations{source: source, store: store, ttl: ttl}
}

func destinationKey(id string) string {
	return destinationKeyPrefix + id
}

func (c *CachedDestinations) ListDestinations(ctx context.Context) ([]entities.Destination, error) {
	var cached []entities.Destination
	if c.load(ctx, destinationsKey, &cached) {
		return cached, nil
	}

	destinations, err := c.source.ListDestinations(ctx)
	if err != nil {
		return nil, err
	}
	c.save(ctx, destinationsKey, destinations)
	return destinations, nil
}

func (c *CachedDestinations) GetDestinationByID(ctx context.Context, id string) (*entities.Destination, error) {
	var cached entities.Destination
	if c.load(ctx, destinationKey(id), &cached) {
		return &cached, nil
	}

	destination, err := c.source.GetDestinationByID(ctx, id)
	if err != nil {
		return nil, err
	}
	c.save(ctx, destinationKey(id), destination)
	return destination, nil
}

// Invalidate drops the cached list after the catalogue changed.
func (c *CachedDestinations) Invalidate(ctx context.Context) {
	if err := c.store.Delete(ctx, destinationsKey); err != nil {
		log.Printf("[CACHE] Failed to invalidate destinations: %v", err)
	}
}

func (c *CachedDestinations) load(ctx context.Context, key string, into any) bool {
	data, ok, err := c.store.Get(ctx, key)
	if err != nil {
		log.Printf("[CACHE] Read %s failed, falling back to database: %v", key, err)
		return false
	}
	if !ok {
		return false
	}
	if err := json.Unmarshal(data, into); err != nil {
		log.Printf("[CACHE] Discarding undecodable entry %s: %v", key, err)
		return false
	}
	return true
}

func (c *CachedDestinations) save(ctx context.Context, key string, value any) {
	payload, err := json.Marshal(value)
	if err != nil {
		log.Printf("[CACHE] Failed to encode %s: %v", key, err)
		return
	}
	if err := c.store.Set(ctx, key, payload, c.ttl); err != nil {
		log.Printf("[CACHE] Write %s failed: %v", key, err)
	}
}
