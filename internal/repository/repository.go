package repository

import (
	"context"
	"errors"

	"github.com/mrclaudee/quizz-app/internal/models"
)

var (
	ErrNotFound = errors.New("record not found")
	// ErrInUse is returned when deleting a question that a quiz still references.
	ErrInUse = errors.New("record is referenced by a quiz")
)

type QuestionRepository interface {
	FindAll(ctx context.Context) ([]models.Question, error)
	FindByCategory(ctx context.Context, category string) ([]models.Question, error)
	// FindRandomByCategory returns up to n distinct questions of the category
	// in random order. Fewer than n are returned when the category is smaller.
	FindRandomByCategory(ctx context.Context, category string, n int) ([]models.Question, error)
	// Save inserts q when q.ID is zero, otherwise inserts or replaces the row
	// with that id. q.ID is set on return.
	Save(ctx context.Context, q *models.Question) error
	DeleteByID(ctx context.Context, id uint) error
}

type QuizRepository interface {
	// Create stores the quiz and its ordered question links in one transaction.
	Create(ctx context.Context, quiz *models.Quiz, questions []models.Question) error
	FindByID(ctx context.Context, id uint) (*models.Quiz, error)
}
