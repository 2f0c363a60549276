package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"trivia/internal/models/db_models"
	"trivia/internal/models/response_models"
	"trivia/internal/repositories"
	mem "trivia/pkg/memcache"
	"trivia/pkg/utils"
)

type CategoryServiceInterface interface {
	ListCategories(ctx context.Context) (response_models.CategoryList, error)
	CategoryNames(ctx context.Context) ([]string, error)
	FindCategory(ctx context.Context, id uint) (response_models.CategoryResponse, error)
}

type CategoryService struct {
	categoryRepo repositories.CategoryRepository
	cache        mem.CategoryStore
	log          *zap.Logger
}

func NewCategoryService(categoryRepo repositories.CategoryRepository, cache mem.CategoryStore, log *zap.Logger) CategoryServiceInterface {
	return &CategoryService{
		categoryRepo: categoryRepo,
		cache:        cache,
		log:          log,
	}
}

func (s *CategoryService) ListCategories(ctx context.Context) (response_models.CategoryList, error) {
	categories, err := s.categories(ctx)
	if err != nil {
		return response_models.CategoryList{}, err
	}

	if len(categories) == 0 {
		return response_models.CategoryList{}, fmt.Errorf("%w: no categories", utils.ErrNotFound)
	}

	responses := make([]response_models.CategoryResponse, 0, len(categories))
	for _, category := range categories {
		responses = append(responses, toCategoryResponse(category))
	}

	return response_models.CategoryList{
		Categories:      responses,
		TotalCategories: len(responses),
	}, nil
}

// CategoryNames returns every category name in id order.
func (s *CategoryService) CategoryNames(ctx context.Context) ([]string, error) {
	categories, err := s.categories(ctx)
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(categories))
	for _, category := range categories {
		names = append(names, category.Name)
	}
	return names, nil
}

// FindCategory looks in the cached list first. A miss is confirmed against
// the store; a category the cache does not know yet drops the stale list.
func (s *CategoryService) FindCategory(ctx context.Context, id uint) (response_models.CategoryResponse, error) {
	categories, err := s.categories(ctx)
	if err != nil {
		return response_models.CategoryResponse{}, err
	}

	for _, category := range categories {
		if category.ID == id {
			return toCategoryResponse(category), nil
		}
	}

	category, err := s.categoryRepo.GetCategoryByID(ctx, id)
	if err != nil {
		s.log.Error("get category", zap.Uint("id", id), zap.Error(err))
		return response_models.CategoryResponse{}, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	if category == nil {
		return response_models.CategoryResponse{}, fmt.Errorf("%w: category %d", utils.ErrNotFound, id)
	}

	s.cache.Invalidate(ctx)
	return toCategoryResponse(*category), nil
}

func (s *CategoryService) categories(ctx context.Context) ([]db_models.Category, error) {
	if cached, ok := s.cache.Get(ctx); ok {
		return cached, nil
	}

	categories, err := s.categoryRepo.ListCategories(ctx)
	if err != nil {
		s.log.Error("list categories", zap.Error(err))
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}

	// an empty table is not cached so seeding shows up immediately
	if len(categories) > 0 {
		s.cache.Set(ctx, categories)
	}
	return categories, nil
}

func toCategoryResponse(category db_models.Category) response_models.CategoryResponse {
	return response_models.CategoryResponse{
		ID:   category.ID,
		Name: category.Name,
	}
}
