package mem

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"trivia/internal/models/db_models"
)

const categoriesKey = "trivia:categories"

type cachedCategory struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

// RedisCategoryCache shares the category list between API instances. Redis
// failures are logged and treated as a miss so the store stays authoritative.
type RedisCategoryCache struct {
	client *redis.Client
	ttl    time.Duration
	log    *zap.Logger
}

func NewRedisCategoryCache(client *redis.Client, ttl time.Duration, log *zap.Logger) *RedisCategoryCache {
	return &RedisCategoryCache{client: client, ttl: ttl, log: log}
}

func (r *RedisCategoryCache) Get(ctx context.Context) ([]db_models.Category, bool) {
	raw, err := r.client.Get(ctx, categoriesKey).Bytes()
	if err != nil {
		if err != redis.Nil {
			r.log.Warn("read category cache", zap.Error(err))
		}
		return nil, false
	}

	var cached []cachedCategory
	if err := json.Unmarshal(raw, &cached); err != nil {
		r.log.Warn("decode category cache", zap.Error(err))
		return nil, false
	}

	categories := make([]db_models.Category, 0, len(cached))
	for _, c := range cached {
		categories = append(categories, db_models.Category{ID: c.ID, Name: c.Name})
	}
	return categories, true
}

func (r *RedisCategoryCache) Set(ctx context.Context, categories []db_models.Category) {
	cached := make([]cachedCategory, 0, len(categories))
	for _, c := range categories {
		cached = append(cached, cachedCategory{ID: c.ID, Name: c.Name})
	}

	raw, err := json.Marshal(cached)
	if err != nil {
		r.log.Warn("encode category cache", zap.Error(err))
		return
	}
	if err := r.client.Set(ctx, categoriesKey, raw, r.ttl).Err(); err != nil {
		r.log.Warn("write category cache", zap.Error(err))
	}
}

func (r *RedisCategoryCache) Invalidate(ctx context.Context) {
	if err := r.client.Del(ctx, categoriesKey).Err(); err != nil {
		r.log.Warn("invalidate category cache", zap.Error(err))
	}
}
