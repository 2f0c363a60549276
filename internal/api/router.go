package api

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"
	"go.uber.org/zap"

	_ "trivia/docs"
	"trivia/internal/api/controllers"
	"trivia/internal/config"
	"trivia/pkg/middleware"
	"trivia/pkg/utils"
)

type Controllers struct {
	fx.In

	Category *controllers.CategoryController
	Question *controllers.QuestionController
	Quiz     *controllers.QuizController
	Health   *controllers.HealthController
}

func ProvideRouter(cfg *config.Config, log *zap.Logger, ctrl Controllers) *gin.Engine {
	switch cfg.GinMode {
	case gin.DebugMode, gin.ReleaseMode, gin.TestMode:
		gin.SetMode(cfg.GinMode)
	default:
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.HandleMethodNotAllowed = true
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.RequestLogger(log))
	r.Use(gin.CustomRecovery(func(c *gin.Context, recovered any) {
		log.Error("panic recovered", zap.Any("panic", recovered), zap.String("path", c.Request.URL.Path))
		utils.RespondError(c, http.StatusInternalServerError)
	}))
	r.Use(middleware.CORSMiddleware())

	r.NoRoute(func(c *gin.Context) {
		utils.HandleServiceError(c, fmt.Errorf("%w: %s %s", utils.ErrNotFound, c.Request.Method, c.Request.URL.Path))
	})
	r.NoMethod(func(c *gin.Context) {
		utils.HandleServiceError(c, fmt.Errorf("%w: %s %s", utils.ErrMethodNotAllowed, c.Request.Method, c.Request.URL.Path))
	})

	if cfg.EnableSwagger {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	RegisterRoutes(r, ctrl)
	return r
}

func RegisterRoutes(r *gin.Engine, ctrl Controllers) {
	r.GET("/health", ctrl.Health.Health)
	r.GET("/categories", ctrl.Category.ListCategories)

	questions := r.Group("/questions")
	questions.GET("", ctrl.Question.ListQuestions)
	questions.POST("", ctrl.Question.CreateQuestion)
	questions.POST("/search", ctrl.Question.SearchQuestions)
	questions.DELETE("/:id", ctrl.Question.DeleteQuestion)

	category := r.Group("/category")
	category.POST("/questions", ctrl.Question.ListCategoryQuestions)
	category.POST("/quiz/questions", ctrl.Quiz.NextQuestion)
}
