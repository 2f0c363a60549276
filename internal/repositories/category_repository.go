package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"trivia/internal/models/db_models"
)

type CategoryRepository interface {
	ListCategories(ctx context.Context) ([]db_models.Category, error)
	GetCategoryByID(ctx context.Context, id uint) (*db_models.Category, error)
}

type categoryRepository struct {
	db *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) CategoryRepository {
	return &categoryRepository{db: db}
}

func (r *categoryRepository) ListCategories(ctx context.Context) ([]db_models.Category, error) {
	var categories []db_models.Category
	err := r.db.WithContext(ctx).Order("id ASC").Find(&categories).Error
	if err != nil {
		return nil, err
	}
	return categories, nil
}

// GetCategoryByID returns nil, nil when the category does not exist.
func (r *categoryRepository) GetCategoryByID(ctx context.Context, id uint) (*db_models.Category, error) {
	var category db_models.Category
	err := r.db.WithContext(ctx).First(&category, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &category, nil
}
