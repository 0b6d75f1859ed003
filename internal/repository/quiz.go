package repository

import (
	"context"
	"errors"

	"github.com/mrclaudee/quizz-app/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type GormQuizRepository struct {
	db *gorm.DB
}

func NewQuizRepository(db *gorm.DB) *GormQuizRepository {
	return &GormQuizRepository{db: db}
}

func (r *GormQuizRepository) Create(ctx context.Context, quiz *models.Quiz, questions []models.Question) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Create(quiz).Error; err != nil {
			return err
		}
		if len(questions) == 0 {
			return nil
		}

		items := make([]models.QuizQuestion, len(questions))
		for i, q := range questions {
			items[i] = models.QuizQuestion{
				QuizID:     quiz.ID,
				QuestionID: q.ID,
				Position:   i,
			}
		}
		if err := tx.Omit("Question").Create(&items).Error; err != nil {
			return err
		}

		for i := range items {
			items[i].Question = questions[i]
		}
		quiz.Items = items
		return nil
	})
}

func (r *GormQuizRepository) FindByID(ctx context.Context, id uint) (*models.Quiz, error) {
	var quiz models.Quiz
	err := r.db.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		}).
		Preload("Items.Question").
		First(&quiz, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &quiz, nil
}
