package controllers

import (
	"github.com/gin-gonic/gin"
	"trivia/internal/models/request_models"
	"trivia/internal/services"
	"trivia/pkg/utils"
)

type QuizController struct {
	quizService services.QuizServiceInterface
}

func NewQuizController(quizService services.QuizServiceInterface) *QuizController {
	return &QuizController{
		quizService: quizService,
	}
}

// NextQuestion godoc
// @Summary Next quiz question
// @Description Return a random question of the category that is not in previous_questions.
// @Description When every question was served, question is null and quiz_complete is true.
// @Tags Quiz
// @Accept json
// @Produce json
// @Param request body request_models.QuizQuestionRequest true "Quiz payload"
// @Success 200 {object} response_models.QuizQuestion
// @Failure 404 {object} utils.ErrorResponse
// @Router /category/quiz/questions [post]
func (qc *QuizController) NextQuestion(c *gin.Context) {
	var req request_models.QuizQuestionRequest
	if err := utils.BindJSON(c, &req); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	next, err := qc.quizService.NextQuestion(c.Request.Context(), *req.Category, req.PreviousQuestions)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, next)
}
