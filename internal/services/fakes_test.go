package services

import (
	"context"
	"sort"
	"strings"

	"gorm.io/gorm"
	"trivia/internal/models/db_models"
	"trivia/internal/repositories"
)

type fakeCategoryRepo struct {
	categories []db_models.Category
	err        error
	calls      int
}

func (f *fakeCategoryRepo) ListCategories(_ context.Context) ([]db_models.Category, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return append([]db_models.Category(nil), f.categories...), nil
}

func (f *fakeCategoryRepo) GetCategoryByID(_ context.Context, id uint) (*db_models.Category, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, c := range f.categories {
		if c.ID == id {
			c := c
			return &c, nil
		}
	}
	return nil, nil
}

type fakeQuestionRepo struct {
	questions []db_models.Question
	nextID    uint
	err       error
}

func (f *fakeQuestionRepo) CreateQuestion(_ context.Context, q *db_models.Question) (uint, error) {
	if f.err != nil {
		return 0, f.err
	}
	f.nextID++
	q.ID = f.nextID
	f.questions = append(f.questions, *q)
	return q.ID, nil
}

func (f *fakeQuestionRepo) DeleteQuestion(_ context.Context, id uint) error {
	if f.err != nil {
		return f.err
	}
	for i, q := range f.questions {
		if q.ID == id {
			f.questions = append(f.questions[:i], f.questions[i+1:]...)
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (f *fakeQuestionRepo) GetQuestionByID(_ context.Context, id uint) (*db_models.Question, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, q := range f.questions {
		if q.ID == id {
			q := q
			return &q, nil
		}
	}
	return nil, nil
}

func (f *fakeQuestionRepo) ListQuestions(_ context.Context, categoryID uint) ([]db_models.Question, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []db_models.Question
	for _, q := range f.questions {
		if categoryID == repositories.AllCategories || q.CategoryID == categoryID {
			out = append(out, q)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].CategoryID != out[j].CategoryID {
			return out[i].CategoryID < out[j].CategoryID
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func (f *fakeQuestionRepo) ListQuestionIDs(ctx context.Context, categoryID uint) ([]uint, error) {
	questions, err := f.ListQuestions(ctx, categoryID)
	if err != nil {
		return nil, err
	}
	ids := make([]uint, 0, len(questions))
	for _, q := range questions {
		ids = append(ids, q.ID)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids, nil
}

func (f *fakeQuestionRepo) SearchQuestions(_ context.Context, term string) ([]db_models.Question, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []db_models.Question
	for _, q := range f.questions {
		if strings.Contains(strings.ToLower(q.Text), strings.ToLower(term)) {
			out = append(out, q)
		}
	}
	return out, nil
}

func scienceAndArt() *fakeCategoryRepo {
	return &fakeCategoryRepo{categories: []db_models.Category{
		{ID: 1, Name: "Science"},
		{ID: 2, Name: "Art"},
	}}
}

// questionsFor builds n questions per category with ids starting at 100.
func questionsFor(perCategory map[uint]int) *fakeQuestionRepo {
	repo := &fakeQuestionRepo{nextID: 99}
	cats := make([]uint, 0, len(perCategory))
	for c := range perCategory {
		cats = append(cats, c)
	}
	sort.Slice(cats, func(i, j int) bool { return cats[i] < cats[j] })
	for _, c := range cats {
		for i := 0; i < perCategory[c]; i++ {
			repo.nextID++
			repo.questions = append(repo.questions, db_models.Question{
				ID:         repo.nextID,
				Text:       "Question",
				Answer:     "Answer",
				CategoryID: c,
				Difficulty: 1,
			})
		}
	}
	return repo
}
