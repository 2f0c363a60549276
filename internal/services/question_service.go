package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"trivia/internal/models/db_models"
	"trivia/internal/models/request_models"
	"trivia/internal/models/response_models"
	"trivia/internal/repositories"
	"trivia/pkg/utils"
)

const allCategoriesLabel = "all"

type QuestionServiceInterface interface {
	ListQuestions(ctx context.Context, categoryID uint, page int) (response_models.QuestionPage, error)
	ListCategoryQuestions(ctx context.Context, categoryID uint, page int) (response_models.CategoryQuestions, error)
	CreateQuestion(ctx context.Context, req request_models.CreateQuestionRequest, page int) (response_models.CreatedQuestion, error)
	DeleteQuestion(ctx context.Context, id uint, page int) (response_models.DeletedQuestion, error)
	SearchQuestions(ctx context.Context, term string, page int) (response_models.SearchResult, error)
}

type QuestionService struct {
	questionRepo    repositories.QuestionRepository
	categoryService CategoryServiceInterface
	log             *zap.Logger
}

func NewQuestionService(questionRepo repositories.QuestionRepository, categoryService CategoryServiceInterface, log *zap.Logger) QuestionServiceInterface {
	return &QuestionService{
		questionRepo:    questionRepo,
		categoryService: categoryService,
		log:             log,
	}
}

// ListQuestions pages through every question, or through one category when
// categoryID is not repositories.AllCategories.
func (s *QuestionService) ListQuestions(ctx context.Context, categoryID uint, page int) (response_models.QuestionPage, error) {
	names, err := s.categoryService.CategoryNames(ctx)
	if err != nil {
		return response_models.QuestionPage{}, err
	}

	current := allCategoriesLabel
	if categoryID != repositories.AllCategories {
		category, err := s.categoryService.FindCategory(ctx, categoryID)
		if err != nil {
			return response_models.QuestionPage{}, err
		}
		current = category.Name
	}

	questions, err := s.questionRepo.ListQuestions(ctx, categoryID)
	if err != nil {
		s.log.Error("list questions", zap.Uint("category", categoryID), zap.Error(err))
		return response_models.QuestionPage{}, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}

	pageItems := utils.Paginate(toQuestionResponses(questions), page, utils.QuestionsPerPage)
	if len(pageItems) == 0 {
		return response_models.QuestionPage{}, fmt.Errorf("%w: page %d of category %d", utils.ErrNotFound, page, categoryID)
	}

	return response_models.QuestionPage{
		Questions:       pageItems,
		TotalQuestions:  len(questions),
		CurrentCategory: current,
		Categories:      names,
	}, nil
}

func (s *QuestionService) ListCategoryQuestions(ctx context.Context, categoryID uint, page int) (response_models.CategoryQuestions, error) {
	if categoryID == repositories.AllCategories {
		return response_models.CategoryQuestions{}, fmt.Errorf("%w: category %d", utils.ErrNotFound, categoryID)
	}

	listed, err := s.ListQuestions(ctx, categoryID, page)
	if err != nil {
		return response_models.CategoryQuestions{}, err
	}

	return response_models.CategoryQuestions{
		Questions:              listed.Questions,
		TotalCategoryQuestions: listed.TotalQuestions,
		CurrentCategory:        listed.CurrentCategory,
		Categories:             listed.Categories,
	}, nil
}

func (s *QuestionService) CreateQuestion(ctx context.Context, req request_models.CreateQuestionRequest, page int) (response_models.CreatedQuestion, error) {
	if req.Question == nil || req.Answer == nil || req.Difficulty == nil || req.Category == nil {
		return response_models.CreatedQuestion{}, fmt.Errorf("%w: question, answer, difficulty and category are required", utils.ErrUnprocessable)
	}

	if _, err := s.categoryService.FindCategory(ctx, *req.Category); err != nil {
		return response_models.CreatedQuestion{}, fmt.Errorf("%w: %v", utils.ErrUnprocessable, err)
	}

	id, err := s.questionRepo.CreateQuestion(ctx, &db_models.Question{
		Text:       *req.Question,
		Answer:     *req.Answer,
		CategoryID: *req.Category,
		Difficulty: *req.Difficulty,
	})
	if err != nil {
		s.log.Error("create question", zap.Uint("category", *req.Category), zap.Error(err))
		return response_models.CreatedQuestion{}, fmt.Errorf("%w: %v", utils.ErrUnprocessable, err)
	}

	current, total, err := s.currentPage(ctx, page)
	if err != nil {
		return response_models.CreatedQuestion{}, err
	}

	return response_models.CreatedQuestion{
		ID:             id,
		Questions:      current,
		TotalQuestions: total,
	}, nil
}

func (s *QuestionService) DeleteQuestion(ctx context.Context, id uint, page int) (response_models.DeletedQuestion, error) {
	existing, err := s.questionRepo.GetQuestionByID(ctx, id)
	if err != nil {
		s.log.Error("fetch question", zap.Uint("id", id), zap.Error(err))
		return response_models.DeletedQuestion{}, fmt.Errorf("%w: %v", utils.ErrUnprocessable, err)
	}
	if existing == nil {
		return response_models.DeletedQuestion{}, fmt.Errorf("%w: question %d does not exist", utils.ErrUnprocessable, id)
	}

	if err := s.questionRepo.DeleteQuestion(ctx, id); err != nil {
		s.log.Error("delete question", zap.Uint("id", id), zap.Error(err))
		return response_models.DeletedQuestion{}, fmt.Errorf("%w: %v", utils.ErrUnprocessable, err)
	}

	current, total, err := s.currentPage(ctx, page)
	if err != nil {
		return response_models.DeletedQuestion{}, err
	}

	return response_models.DeletedQuestion{
		ID:               id,
		CurrentQuestions: current,
		TotalQuestions:   total,
	}, nil
}

// SearchQuestions treats an empty match set as unprocessable; a page past
// existing matches is not found.
func (s *QuestionService) SearchQuestions(ctx context.Context, term string, page int) (response_models.SearchResult, error) {
	found, err := s.questionRepo.SearchQuestions(ctx, term)
	if err != nil {
		s.log.Error("search questions", zap.String("term", term), zap.Error(err))
		return response_models.SearchResult{}, fmt.Errorf("%w: %v", utils.ErrUnprocessable, err)
	}
	if len(found) == 0 {
		return response_models.SearchResult{}, fmt.Errorf("%w: no question matches %q", utils.ErrUnprocessable, term)
	}

	pageItems := utils.Paginate(toQuestionResponses(found), page, utils.QuestionsPerPage)
	if len(pageItems) == 0 {
		return response_models.SearchResult{}, fmt.Errorf("%w: page %d of search %q", utils.ErrNotFound, page, term)
	}

	return response_models.SearchResult{
		SearchTerm:     term,
		Questions:      pageItems,
		TotalQuestions: len(found),
	}, nil
}

// currentPage lists every question after a write. An empty page is valid
// here: the write already succeeded.
func (s *QuestionService) currentPage(ctx context.Context, page int) ([]response_models.QuestionResponse, int, error) {
	questions, err := s.questionRepo.ListQuestions(ctx, repositories.AllCategories)
	if err != nil {
		s.log.Error("list questions after write", zap.Error(err))
		return nil, 0, fmt.Errorf("%w: %v", utils.ErrUnprocessable, err)
	}
	return utils.Paginate(toQuestionResponses(questions), page, utils.QuestionsPerPage), len(questions), nil
}

func toQuestionResponse(q db_models.Question) response_models.QuestionResponse {
	return response_models.QuestionResponse{
		ID:         q.ID,
		Question:   q.Text,
		Answer:     q.Answer,
		Category:   q.CategoryID,
		Difficulty: q.Difficulty,
	}
}

func toQuestionResponses(questions []db_models.Question) []response_models.QuestionResponse {
	out := make([]response_models.QuestionResponse, 0, len(questions))
	for _, q := range questions {
		out = append(out, toQuestionResponse(q))
	}
	return out
}
