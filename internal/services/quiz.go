package services

import (
	"context"
	"errors"

	"github.com/mrclaudee/quizz-app/internal/logger"
	"github.com/mrclaudee/quizz-app/internal/models"
	"github.com/mrclaudee/quizz-app/internal/repository"
)

type QuizService struct {
	quizzes   repository.QuizRepository
	questions repository.QuestionRepository
	scoring   *ScoringService
}

func NewQuizService(quizzes repository.QuizRepository, questions repository.QuestionRepository, scoring *ScoringService) *QuizService {
	return &QuizService{quizzes: quizzes, questions: questions, scoring: scoring}
}

// CreateResult reports how many questions were asked for and how many the
// category could supply.
type CreateResult struct {
	QuizID    uint
	Requested int
	Selected  int
}

func (r CreateResult) Short() bool {
	return r.Selected < r.Requested
}

// Create samples count questions of category at random and stores them as a
// new quiz. A category smaller than count yields a quiz with every question
// it has; an empty category is an error.
func (s *QuizService) Create(ctx context.Context, category string, count int, title string) (CreateResult, error) {
	if count <= 0 {
		return CreateResult{}, ErrInvalidCount
	}

	sampled, err := s.questions.FindRandomByCategory(ctx, category, count)
	if err != nil {
		logger.Errorf("sample %d questions of %q: %v", count, category, err)
		return CreateResult{}, storageErr("sample questions", err)
	}
	if len(sampled) == 0 {
		return CreateResult{}, ErrEmptyCategory
	}

	quiz := &models.Quiz{Title: title}
	if err := s.quizzes.Create(ctx, quiz, sampled); err != nil {
		logger.Errorf("create quiz %q: %v", title, err)
		return CreateResult{}, storageErr("create quiz", err)
	}

	res := CreateResult{QuizID: quiz.ID, Requested: count, Selected: len(sampled)}
	if res.Short() {
		logger.Warnf("quiz %d: category %q has %d of %d requested questions", quiz.ID, category, res.Selected, res.Requested)
	}
	return res, nil
}

// GetByID returns the quiz's questions without answers, in quiz order.
func (s *QuizService) GetByID(ctx context.Context, quizID uint) ([]models.QuestionDto, error) {
	quiz, err := s.load(ctx, quizID)
	if err != nil {
		return nil, err
	}

	questions := quiz.Questions()
	dtos := make([]models.QuestionDto, 0, len(questions))
	for _, q := range questions {
		dtos = append(dtos, q.Dto())
	}
	return dtos, nil
}

func (s *QuizService) CalculateResult(ctx context.Context, quizID uint, responses []models.QuizResponseDto) (int, error) {
	quiz, err := s.load(ctx, quizID)
	if err != nil {
		return 0, err
	}
	return s.scoring.Score(quiz.Questions(), responses), nil
}

func (s *QuizService) load(ctx context.Context, quizID uint) (*models.Quiz, error) {
	quiz, err := s.quizzes.FindByID(ctx, quizID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		logger.Errorf("load quiz %d: %v", quizID, err)
		return nil, storageErr("load quiz", err)
	}
	return quiz, nil
}
