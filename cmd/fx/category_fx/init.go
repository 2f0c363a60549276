package category_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"trivia/internal/repositories"
	"trivia/internal/services"
	mem "trivia/pkg/memcache"
)

var Module = fx.Provide(
	provideCategoryRepo, provideCategoryService)

func provideCategoryRepo(db *gorm.DB) repositories.CategoryRepository {
	return repositories.NewCategoryRepository(db)
}

func provideCategoryService(categoryRepo repositories.CategoryRepository, cache mem.CategoryStore, log *zap.Logger) services.CategoryServiceInterface {
	return services.NewCategoryService(categoryRepo, cache, log)
}
