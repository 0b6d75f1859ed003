package services_test

import (
	"context"
	"sort"

	"github.com/mrclaudee/quizz-app/internal/models"
	"github.com/mrclaudee/quizz-app/internal/repository"
)

// In-memory repositories for service tests.

type fakeQuestions struct {
	rows   map[uint]models.Question
	nextID uint
	err    error // returned by every call when set
}

func newFakeQuestions(qs ...models.Question) *fakeQuestions {
	f := &fakeQuestions{rows: map[uint]models.Question{}, nextID: 1}
	for _, q := range qs {
		f.Save(context.Background(), &q)
	}
	return f
}

func (f *fakeQuestions) sorted() []models.Question {
	out := make([]models.Question, 0, len(f.rows))
	for _, q := range f.rows {
		out = append(out, q)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (f *fakeQuestions) FindAll(ctx context.Context) ([]models.Question, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.sorted(), nil
}

func (f *fakeQuestions) FindByCategory(ctx context.Context, category string) ([]models.Question, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []models.Question
	for _, q := range f.sorted() {
		if q.Category == category {
			out = append(out, q)
		}
	}
	return out, nil
}

// FindRandomByCategory is deterministic here: id order, first n.
func (f *fakeQuestions) FindRandomByCategory(ctx context.Context, category string, n int) ([]models.Question, error) {
	all, err := f.FindByCategory(ctx, category)
	if err != nil {
		return nil, err
	}
	if n < len(all) {
		all = all[:n]
	}
	return all, nil
}

func (f *fakeQuestions) Save(ctx context.Context, q *models.Question) error {
	if f.err != nil {
		return f.err
	}
	if _, ok := f.rows[q.ID]; !ok {
		q.ID = f.nextID
		f.nextID++
	}
	f.rows[q.ID] = *q
	return nil
}

func (f *fakeQuestions) DeleteByID(ctx context.Context, id uint) error {
	if f.err != nil {
		return f.err
	}
	delete(f.rows, id)
	return nil
}

type fakeQuizzes struct {
	rows   map[uint]models.Quiz
	nextID uint
	err    error
}

func newFakeQuizzes() *fakeQuizzes {
	return &fakeQuizzes{rows: map[uint]models.Quiz{}, nextID: 1}
}

func (f *fakeQuizzes) Create(ctx context.Context, quiz *models.Quiz, questions []models.Question) error {
	if f.err != nil {
		return f.err
	}
	quiz.ID = f.nextID
	f.nextID++
	quiz.Items = nil
	for i, q := range questions {
		quiz.Items = append(quiz.Items, models.QuizQuestion{
			QuizID: quiz.ID, QuestionID: q.ID, Question: q, Position: i,
		})
	}
	f.rows[quiz.ID] = *quiz
	return nil
}

func (f *fakeQuizzes) FindByID(ctx context.Context, id uint) (*models.Quiz, error) {
	if f.err != nil {
		return nil, f.err
	}
	q, ok := f.rows[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &q, nil
}

func question(id uint, category, answer string) models.Question {
	return models.Question{
		ID:              id,
		QuestionTitle:   "question " + answer,
		Category:        category,
		Option1:         "A",
		Option2:         "B",
		Option3:         "C",
		Option4:         "D",
		RightAnswer:     answer,
		DifficultyLevel: "medium",
	}
}
