package question_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"trivia/internal/repositories"
	"trivia/internal/services"
)

var Module = fx.Provide(
	provideQuestionRepo, provideQuestionService)

func provideQuestionRepo(db *gorm.DB) repositories.QuestionRepository {
	return repositories.NewQuestionRepository(db)
}

func provideQuestionService(questionRepo repositories.QuestionRepository, categoryService services.CategoryServiceInterface, log *zap.Logger) services.QuestionServiceInterface {
	return services.NewQuestionService(questionRepo, categoryService, log)
}
