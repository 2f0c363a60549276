package quiz_fx

import (
	"go.uber.org/fx"

	"trivia/internal/services"
)

var Module = fx.Provide(services.NewQuizService)
