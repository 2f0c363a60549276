package mem

import (
	"context"
	"sync"
	"time"

	"trivia/internal/models/db_models"
)

// CategoryStore caches the full category list. Categories only change
// through seeding, so a TTL is the only invalidation needed at runtime.
type CategoryStore interface {
	Get(ctx context.Context) ([]db_models.Category, bool)
	Set(ctx context.Context, categories []db_models.Category)
	Invalidate(ctx context.Context)
}

type entry struct {
	categories []db_models.Category
	expiresAt  time.Time
}

type CategoryCache struct {
	mu    sync.RWMutex
	ttl   time.Duration
	data  *entry
	nowFn func() time.Time
}

func NewCategoryCache(ttl time.Duration) *CategoryCache {
	return &CategoryCache{
		ttl:   ttl,
		nowFn: time.Now,
	}
}

func (s *CategoryCache) Get(_ context.Context) ([]db_models.Category, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.data == nil || s.nowFn().After(s.data.expiresAt) {
		return nil, false
	}
	out := make([]db_models.Category, len(s.data.categories))
	copy(out, s.data.categories)
	return out, true
}

func (s *CategoryCache) Set(_ context.Context, categories []db_models.Category) {
	stored := make([]db_models.Category, len(categories))
	copy(stored, categories)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.data = &entry{
		categories: stored,
		expiresAt:  s.nowFn().Add(s.ttl),
	}
}

func (s *CategoryCache) Invalidate(_ context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data = nil
}
