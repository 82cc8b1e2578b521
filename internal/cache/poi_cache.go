// Package cache holds snapshots of the full POI listing so list and search
// requests can skip the store. Every implementation is safe for concurrent
// use and a failed lookup is always reported as a miss.
package cache

import (
	"context"

	"gps/internal/models/db_models"
)

type POICache interface {
	// Get returns the cached listing and whether it was present.
	Get(ctx context.Context) ([]db_models.POI, bool)
	Set(ctx context.Context, pois []db_models.POI)
	Invalidate(ctx context.Context)
}

type noopCache struct{}

// NewNoop returns a cache that never holds anything.
func NewNoop() POICache { return noopCache{} }

func (noopCache) Get(context.Context) ([]db_models.POI, bool) { return nil, false }
func (noopCache) Set(context.Context, []db_models.POI)        {}
func (noopCache) Invalidate(context.Context)                  {}
