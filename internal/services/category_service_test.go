package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"trivia/internal/models/db_models"
	mem "trivia/pkg/memcache"
	"trivia/pkg/utils"
)

func newCategoryService(repo *fakeCategoryRepo) CategoryServiceInterface {
	return NewCategoryService(repo, mem.NewCategoryCache(time.Minute), zap.NewNop())
}

func TestListCategoriesInIDOrder(t *testing.T) {
	svc := newCategoryService(scienceAndArt())

	list, err := svc.ListCategories(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, list.TotalCategories)
	assert.Equal(t, uint(1), list.Categories[0].ID)
	assert.Equal(t, "Science", list.Categories[0].Name)
	assert.Equal(t, "Art", list.Categories[1].Name)
}

func TestListCategoriesEmptyStoreIsNotFound(t *testing.T) {
	svc := newCategoryService(&fakeCategoryRepo{})

	_, err := svc.ListCategories(context.Background())
	assert.ErrorIs(t, err, utils.ErrNotFound)
}

func TestListCategoriesStoreFailure(t *testing.T) {
	svc := newCategoryService(&fakeCategoryRepo{err: errors.New("connection refused")})

	_, err := svc.ListCategories(context.Background())
	assert.ErrorIs(t, err, utils.ErrDatabaseError)
}

func TestCategoriesAreCached(t *testing.T) {
	repo := scienceAndArt()
	svc := newCategoryService(repo)
	ctx := context.Background()

	_, err := svc.ListCategories(ctx)
	require.NoError(t, err)
	names, err := svc.CategoryNames(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"Science", "Art"}, names)
	_, err = svc.FindCategory(ctx, 2)
	require.NoError(t, err)

	assert.Equal(t, 1, repo.calls)
}

func TestEmptyCategoriesAreNotCached(t *testing.T) {
	repo := &fakeCategoryRepo{}
	svc := newCategoryService(repo)
	ctx := context.Background()

	_, err := svc.ListCategories(ctx)
	require.ErrorIs(t, err, utils.ErrNotFound)

	repo.categories = []db_models.Category{{ID: 1, Name: "Science"}}
	list, err := svc.ListCategories(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, list.TotalCategories)
}

func TestFindCategory(t *testing.T) {
	svc := newCategoryService(scienceAndArt())

	category, err := svc.FindCategory(context.Background(), 2)
	require.NoError(t, err)
	assert.Equal(t, "Art", category.Name)

	_, err = svc.FindCategory(context.Background(), 42)
	assert.ErrorIs(t, err, utils.ErrNotFound)
}

func TestFindCategoryAddedAfterCaching(t *testing.T) {
	repo := scienceAndArt()
	svc := newCategoryService(repo)
	ctx := context.Background()

	_, err := svc.ListCategories(ctx)
	require.NoError(t, err)

	repo.categories = append(repo.categories, db_models.Category{ID: 3, Name: "Sports"})
	category, err := svc.FindCategory(ctx, 3)
	require.NoError(t, err)
	assert.Equal(t, "Sports", category.Name)

	list, err := svc.ListCategories(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, list.TotalCategories)
	assert.Equal(t, 2, repo.calls)
}
