package cache

import (
	"context"
	"sync"
	"time"

	"gps/internal/models/db_models"
)

type snapshot struct {
	pois      []db_models.POI
	expiresAt time.Time
}

// MemoryCache keeps one listing snapshot in process memory until its TTL
// passes or an insert invalidates it.
type MemoryCache struct {
	mu   sync.RWMutex
	ttl  time.Duration
	data *snapshot
	now  func() time.Time
}

func NewMemoryCache(ttl time.Duration) *MemoryCache {
	return &MemoryCache{ttl: ttl, now: time.Now}
}

func (m *MemoryCache) Get(_ context.Context) ([]db_models.POI, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.data == nil || m.now().After(m.data.expiresAt) {
		return nil, false
	}
	return clonePOIs(m.data.pois), true
}

func (m *MemoryCache) Set(_ context.Context, pois []db_models.POI) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data = &snapshot{
		pois:      clonePOIs(pois),
		expiresAt: m.now().Add(m.ttl),
	}
}

func (m *MemoryCache) Invalidate(_ context.Context) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data = nil
}

// callers may modify what they get back; the snapshot must not change.
func clonePOIs(pois []db_models.POI) []db_models.POI {
	out := make([]db_models.POI, len(pois))
	copy(out, pois)
	return out
}
