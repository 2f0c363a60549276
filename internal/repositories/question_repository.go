package repositories

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
	"trivia/internal/models/db_models"
)

// AllCategories selects questions of every category.
const AllCategories uint = 0

const pgForeignKeyViolation = "23503"

var ErrUnknownCategory = errors.New("question references an unknown category")

type QuestionRepository interface {
	CreateQuestion(ctx context.Context, question *db_models.Question) (uint, error)
	DeleteQuestion(ctx context.Context, id uint) error

	GetQuestionByID(ctx context.Context, id uint) (*db_models.Question, error)
	ListQuestions(ctx context.Context, categoryID uint) ([]db_models.Question, error)
	ListQuestionIDs(ctx context.Context, categoryID uint) ([]uint, error)
	SearchQuestions(ctx context.Context, term string) ([]db_models.Question, error)
}

type questionRepository struct {
	db *gorm.DB
}

func NewQuestionRepository(db *gorm.DB) QuestionRepository {
	return &questionRepository{db: db}
}

func (r *questionRepository) CreateQuestion(ctx context.Context, question *db_models.Question) (uint, error) {
	if err := r.db.WithContext(ctx).Create(question).Error; err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgForeignKeyViolation {
			return 0, ErrUnknownCategory
		}
		return 0, err
	}
	return question.ID, nil
}

// DeleteQuestion removes the row permanently and reports
// gorm.ErrRecordNotFound when nothing was deleted.
func (r *questionRepository) DeleteQuestion(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&db_models.Question{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *questionRepository) GetQuestionByID(ctx context.Context, id uint) (*db_models.Question, error) {
	var question db_models.Question
	err := r.db.WithContext(ctx).First(&question, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &question, nil
}

// ListQuestions orders by category then id so pages are stable.
func (r *questionRepository) ListQuestions(ctx context.Context, categoryID uint) ([]db_models.Question, error) {
	var questions []db_models.Question
	err := r.db.WithContext(ctx).
		Scopes(inCategory(categoryID)).
		Order("category ASC").
		Order("id ASC").
		Find(&questions).Error
	if err != nil {
		return nil, err
	}
	return questions, nil
}

func (r *questionRepository) ListQuestionIDs(ctx context.Context, categoryID uint) ([]uint, error) {
	var ids []uint
	err := r.db.WithContext(ctx).
		Model(&db_models.Question{}).
		Scopes(inCategory(categoryID)).
		Order("id ASC").
		Pluck("id", &ids).Error
	if err != nil {
		return nil, err
	}
	return ids, nil
}

// SearchQuestions matches term case-insensitively anywhere in the question
// text. Both sides go through the store's LOWER so they fold the same way.
// Wildcards in term match literally.
func (r *questionRepository) SearchQuestions(ctx context.Context, term string) ([]db_models.Question, error) {
	var questions []db_models.Question
	err := r.db.WithContext(ctx).
		Where("LOWER(question) LIKE LOWER(?) ESCAPE '\\'", likePattern(term)).
		Order("id ASC").
		Find(&questions).Error
	if err != nil {
		return nil, err
	}
	return questions, nil
}

func inCategory(categoryID uint) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if categoryID == AllCategories {
			return db
		}
		return db.Where("category = ?", categoryID)
	}
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func likePattern(term string) string {
	return "%" + likeEscaper.Replace(term) + "%"
}
