package controllers

import (
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"
	"trivia/internal/models/request_models"
	"trivia/internal/repositories"
	"trivia/internal/services"
	"trivia/pkg/utils"
)

type QuestionController struct {
	questionService services.QuestionServiceInterface
}

func NewQuestionController(questionService services.QuestionServiceInterface) *QuestionController {
	return &QuestionController{
		questionService: questionService,
	}
}

// ListQuestions godoc
// @Summary List questions
// @Description Fetch a page of 10 questions, optionally limited to one category
// @Tags Questions
// @Produce json
// @Param category query int false "Category ID, 0 for all" default(0)
// @Param page query int false "Page number" default(1)
// @Success 200 {object} response_models.QuestionPage
// @Failure 404 {object} utils.ErrorResponse
// @Router /questions [get]
func (qc *QuestionController) ListQuestions(c *gin.Context) {
	categoryID, err := strconv.Atoi(c.DefaultQuery("category", "0"))
	if err != nil {
		categoryID = int(repositories.AllCategories)
	}
	if categoryID < 0 {
		utils.HandleServiceError(c, fmt.Errorf("%w: category %d", utils.ErrNotFound, categoryID))
		return
	}
	page := utils.ParsePage(c.Query("page"))

	questions, err := qc.questionService.ListQuestions(c.Request.Context(), uint(categoryID), page)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, questions)
}

// CreateQuestion godoc
// @Summary Create a question
// @Description Store a new question and return the current page of questions
// @Tags Questions
// @Accept json
// @Produce json
// @Param request body request_models.CreateQuestionRequest true "Question payload"
// @Param page query int false "Page number" default(1)
// @Success 200 {object} response_models.CreatedQuestion
// @Failure 400 {object} utils.ErrorResponse
// @Failure 422 {object} utils.ErrorResponse
// @Router /questions [post]
func (qc *QuestionController) CreateQuestion(c *gin.Context) {
	var req request_models.CreateQuestionRequest
	if err := utils.BindJSON(c, &req); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	created, err := qc.questionService.CreateQuestion(c.Request.Context(), req, utils.ParsePage(c.Query("page")))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, created)
}

// DeleteQuestion godoc
// @Summary Delete a question
// @Tags Questions
// @Produce json
// @Param id path int true "Question ID"
// @Param page query int false "Page number" default(1)
// @Success 200 {object} response_models.DeletedQuestion
// @Failure 422 {object} utils.ErrorResponse
// @Router /questions/{id} [delete]
func (qc *QuestionController) DeleteQuestion(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		utils.HandleServiceError(c, fmt.Errorf("%w: invalid question id %q", utils.ErrUnprocessable, c.Param("id")))
		return
	}

	deleted, err := qc.questionService.DeleteQuestion(c.Request.Context(), uint(id), utils.ParsePage(c.Query("page")))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, deleted)
}

// SearchQuestions godoc
// @Summary Search questions
// @Description Case-insensitive substring search over question text
// @Tags Questions
// @Accept json
// @Produce json
// @Param request body request_models.SearchQuestionsRequest true "Search payload"
// @Param page query int false "Page number" default(1)
// @Success 200 {object} response_models.SearchResult
// @Failure 404 {object} utils.ErrorResponse
// @Failure 422 {object} utils.ErrorResponse
// @Router /questions/search [post]
func (qc *QuestionController) SearchQuestions(c *gin.Context) {
	var req request_models.SearchQuestionsRequest
	if err := utils.BindJSON(c, &req); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	found, err := qc.questionService.SearchQuestions(c.Request.Context(), *req.SearchTerm, utils.ParsePage(c.Query("page")))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, found)
}

// ListCategoryQuestions godoc
// @Summary List questions of a category
// @Tags Questions
// @Accept json
// @Produce json
// @Param request body request_models.CategoryQuestionsRequest true "Category payload"
// @Param page query int false "Page number" default(1)
// @Success 200 {object} response_models.CategoryQuestions
// @Failure 404 {object} utils.ErrorResponse
// @Router /category/questions [post]
func (qc *QuestionController) ListCategoryQuestions(c *gin.Context) {
	var req request_models.CategoryQuestionsRequest
	if err := utils.BindJSON(c, &req); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	questions, err := qc.questionService.ListCategoryQuestions(c.Request.Context(), *req.Category, utils.ParsePage(c.Query("page")))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, questions)
}
