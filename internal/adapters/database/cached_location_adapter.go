package database

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/AlexSchroder3798/FlyFishing3/internal/domain/entities"
	"github.com/AlexSchroder3798/FlyFishing3/internal/domain/providers"
	"github.com/AlexSchroder3798/FlyFishing3/internal/domain/repositories"
	"github.com/AlexSchroder3798/FlyFishing3/internal/infrastructure/observability"
)

// CachedLocationAdapter wraps LocationAdapter with read-through caching.
// The location catalog is shared and changes rarely, so it caches harder
// than the user-owned collections, which are never cached.
type CachedLocationAdapter struct {
	adapter repositories.LocationRepository
	cache   providers.CacheProvider
}

// NewCachedLocationAdapter creates a new cached location adapter
func NewCachedLocationAdapter(adapter repositories.LocationRepository, cache providers.CacheProvider) repositories.LocationRepository {
	return &CachedLocationAdapter{
		adapter: adapter,
		cache:   cache,
	}
}

// Cache TTLs (in seconds)
const (
	locationByIDTTL  = 300
	locationsListTTL = 180
)

func locationCacheKey(id string) string {
	return fmt.Sprintf("location:%s", id)
}

func locationsListCacheKey(filter repositories.LocationFilter) string {
	return fmt.Sprintf("locations:list:%s:%s:%s:%d:%d",
		filter.Type, filter.Difficulty, filter.Access, filter.Limit, filter.Offset)
}

// Create persists through to the store and invalidates list entries by
// letting them expire; the new row is cached by id immediately
func (a *CachedLocationAdapter) Create(ctx context.Context, location *entities.FishingLocation) (*entities.FishingLocation, error) {
	created, err := a.adapter.Create(ctx, location)
	if err != nil {
		return nil, err
	}

	go func() {
		bgCtx := context.Background()
		if data, err := json.Marshal(created); err == nil {
			if err := a.cache.Set(bgCtx, locationCacheKey(created.ID), data, locationByIDTTL); err != nil {
				observability.GetLogger().Warn().Err(err).Str("location_id", created.ID).Msg("failed to cache location")
			}
		}
	}()

	return created, nil
}

// GetByID retrieves a location by ID with caching
func (a *CachedLocationAdapter) GetByID(ctx context.Context, id string) (*entities.FishingLocation, error) {
	cacheKey := locationCacheKey(id)

	if cached, err := a.cache.Get(ctx, cacheKey); err == nil {
		var location entities.FishingLocation
		if err := json.Unmarshal(cached, &location); err == nil {
			return &location, nil
		}
	}

	location, err := a.adapter.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	// Update cache asynchronously to avoid blocking the response
	go func() {
		bgCtx := context.Background()
		if data, err := json.Marshal(location); err == nil {
			if err := a.cache.Set(bgCtx, cacheKey, data, locationByIDTTL); err != nil {
				observability.GetLogger().Warn().Err(err).Str("location_id", id).Msg("failed to cache location")
			}
		}
	}()

	return location, nil
}

// List retrieves locations with caching keyed by the full filter
func (a *CachedLocationAdapter) List(ctx context.Context, filter repositories.LocationFilter) ([]*entities.FishingLocation, error) {
	cacheKey := locationsListCacheKey(filter)

	if cached, err := a.cache.Get(ctx, cacheKey); err == nil {
		var locations []*entities.FishingLocation
		if err := json.Unmarshal(cached, &locations); err == nil {
			return locations, nil
		}
	}

	locations, err := a.adapter.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	go func() {
		bgCtx := context.Background()
		if data, err := json.Marshal(locations); err == nil {
			if err := a.cache.Set(bgCtx, cacheKey, data, locationsListTTL); err != nil {
				observability.GetLogger().Warn().Err(err).Msg("failed to cache location list")
			}
		}
	}()

	return locations, nil
}
