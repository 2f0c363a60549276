package controllers_fx

import (
	"go.uber.org/fx"

	"trivia/internal/api/controllers"
)

var Module = fx.Options(
	fx.Provide(controllers.NewCategoryController),
	fx.Provide(controllers.NewQuestionController),
	fx.Provide(controllers.NewQuizController),
	fx.Provide(controllers.NewHealthController))
