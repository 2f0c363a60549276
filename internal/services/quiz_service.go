package services

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"

	"go.uber.org/zap"
	"trivia/internal/models/response_models"
	"trivia/internal/repositories"
	"trivia/pkg/utils"
)

// ErrQuizComplete means every question of the category was already served.
var ErrQuizComplete = errors.New("quiz complete")

type QuizServiceInterface interface {
	NextQuestion(ctx context.Context, categoryID uint, previous []uint) (response_models.QuizQuestion, error)
}

type QuizService struct {
	questionRepo    repositories.QuestionRepository
	categoryService CategoryServiceInterface
	intn            func(n int) int
	log             *zap.Logger
}

func NewQuizService(questionRepo repositories.QuestionRepository, categoryService CategoryServiceInterface, log *zap.Logger) QuizServiceInterface {
	return &QuizService{
		questionRepo:    questionRepo,
		categoryService: categoryService,
		intn:            rand.IntN,
		log:             log,
	}
}

// NextQuestion picks a random question of the category that is not in
// previous. Category 0 plays across all categories. When nothing is left
// the result has QuizComplete set and no question.
func (s *QuizService) NextQuestion(ctx context.Context, categoryID uint, previous []uint) (response_models.QuizQuestion, error) {
	current := allCategoriesLabel
	if categoryID != repositories.AllCategories {
		category, err := s.categoryService.FindCategory(ctx, categoryID)
		if err != nil {
			return response_models.QuizQuestion{}, err
		}
		current = category.Name
	}

	ids, err := s.questionRepo.ListQuestionIDs(ctx, categoryID)
	if err != nil {
		s.log.Error("list quiz candidates", zap.Uint("category", categoryID), zap.Error(err))
		return response_models.QuizQuestion{}, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	if len(ids) == 0 {
		return response_models.QuizQuestion{}, fmt.Errorf("%w: category %d has no questions", utils.ErrNotFound, categoryID)
	}

	id, err := pickUnseen(ids, previous, s.intn)
	if errors.Is(err, ErrQuizComplete) {
		return response_models.QuizQuestion{
			TotalCategoryQuestions: len(ids),
			CurrentCategory:        current,
			QuizComplete:           true,
		}, nil
	}

	question, err := s.questionRepo.GetQuestionByID(ctx, id)
	if err != nil {
		s.log.Error("fetch quiz question", zap.Uint("id", id), zap.Error(err))
		return response_models.QuizQuestion{}, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	if question == nil {
		// deleted between listing and fetching
		return response_models.QuizQuestion{}, fmt.Errorf("%w: question %d", utils.ErrNotFound, id)
	}

	picked := toQuestionResponse(*question)
	return response_models.QuizQuestion{
		Question:               &picked,
		TotalCategoryQuestions: len(ids),
		CurrentCategory:        current,
	}, nil
}

// pickUnseen draws uniformly from ids minus previous.
func pickUnseen(ids, previous []uint, intn func(n int) int) (uint, error) {
	seen := make(map[uint]struct{}, len(previous))
	for _, id := range previous {
		seen[id] = struct{}{}
	}

	eligible := make([]uint, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; !ok {
			eligible = append(eligible, id)
		}
	}
	if len(eligible) == 0 {
		return 0, ErrQuizComplete
	}
	return eligible[intn(len(eligible))], nil
}
