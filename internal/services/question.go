package services

import (
	"context"

	"github.com/mrclaudee/quizz-app/internal/logger"
	"github.com/mrclaudee/quizz-app/internal/models"
	"github.com/mrclaudee/quizz-app/internal/repository"
)

type QuestionService struct {
	repo repository.QuestionRepository
}

func NewQuestionService(repo repository.QuestionRepository) *QuestionService {
	return &QuestionService{repo: repo}
}

func (s *QuestionService) GetAllQuestions(ctx context.Context) ([]models.Question, error) {
	questions, err := s.repo.FindAll(ctx)
	if err != nil {
		logger.Errorf("list questions: %v", err)
		return nil, storageErr("list questions", err)
	}
	return questions, nil
}

func (s *QuestionService) GetQuestionsByCategory(ctx context.Context, category string) ([]models.Question, error) {
	questions, err := s.repo.FindByCategory(ctx, category)
	if err != nil {
		logger.Errorf("list questions of category %q: %v", category, err)
		return nil, storageErr("list questions by category", err)
	}
	return questions, nil
}

// Save inserts the question or, when it carries an id, replaces that record.
func (s *QuestionService) Save(ctx context.Context, q *models.Question) error {
	if err := s.repo.Save(ctx, q); err != nil {
		logger.Errorf("save question %d: %v", q.ID, err)
		return storageErr("save question", err)
	}
	return nil
}

func (s *QuestionService) DeleteByID(ctx context.Context, id uint) error {
	if err := s.repo.DeleteByID(ctx, id); err != nil {
		logger.Errorf("delete question %d: %v", id, err)
		return storageErr("delete question", err)
	}
	return nil
}
