package repository

import (
	"context"
	"math/rand/v2"

	"github.com/mrclaudee/quizz-app/internal/models"

	"gorm.io/gorm"
)

// ShuffleFunc has the signature of rand.Shuffle.
type ShuffleFunc func(n int, swap func(i, j int))

type GormQuestionRepository struct {
	db      *gorm.DB
	shuffle ShuffleFunc
}

func NewQuestionRepository(db *gorm.DB) *GormQuestionRepository {
	return &GormQuestionRepository{db: db, shuffle: rand.Shuffle}
}

// WithShuffle replaces the random source used for sampling.
func (r *GormQuestionRepository) WithShuffle(fn ShuffleFunc) *GormQuestionRepository {
	r.shuffle = fn
	return r
}

func (r *GormQuestionRepository) FindAll(ctx context.Context) ([]models.Question, error) {
	questions := []models.Question{}
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&questions).Error; err != nil {
		return nil, err
	}
	return questions, nil
}

func (r *GormQuestionRepository) FindByCategory(ctx context.Context, category string) ([]models.Question, error) {
	questions := []models.Question{}
	err := r.db.WithContext(ctx).
		Where("category = ?", category).
		Order("id ASC").
		Find(&questions).Error
	if err != nil {
		return nil, err
	}
	return questions, nil
}

func (r *GormQuestionRepository) FindRandomByCategory(ctx context.Context, category string, n int) ([]models.Question, error) {
	if n <= 0 {
		return []models.Question{}, nil
	}

	var ids []uint
	err := r.db.WithContext(ctx).
		Model(&models.Question{}).
		Where("category = ?", category).
		Order("id ASC").
		Pluck("id", &ids).Error
	if err != nil {
		return nil, err
	}

	r.shuffle(len(ids), func(i, j int) { ids[i], ids[j] = ids[j], ids[i] })
	if n < len(ids) {
		ids = ids[:n]
	}
	if len(ids) == 0 {
		return []models.Question{}, nil
	}

	var rows []models.Question
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&rows).Error; err != nil {
		return nil, err
	}

	byID := make(map[uint]models.Question, len(rows))
	for _, q := range rows {
		byID[q.ID] = q
	}
	sampled := make([]models.Question, 0, len(ids))
	for _, id := range ids {
		// a row deleted between the two queries is skipped
		if q, ok := byID[id]; ok {
			sampled = append(sampled, q)
		}
	}
	return sampled, nil
}

// Save updates the row with q.ID when it exists and inserts otherwise. An
// id with no matching row is dropped so the database assigns the key; a
// caller-chosen key would not advance the postgres id sequence.
func (r *GormQuestionRepository) Save(ctx context.Context, q *models.Question) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if q.ID != 0 {
			var n int64
			if err := tx.Model(&models.Question{}).Where("id = ?", q.ID).Count(&n).Error; err != nil {
				return err
			}
			if n > 0 {
				return tx.Save(q).Error
			}
			q.ID = 0
		}
		return tx.Create(q).Error
	})
}

func (r *GormQuestionRepository) DeleteByID(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var refs int64
		if err := tx.Model(&models.QuizQuestion{}).Where("question_id = ?", id).Count(&refs).Error; err != nil {
			return err
		}
		if refs > 0 {
			return ErrInUse
		}
		return tx.Delete(&models.Question{}, id).Error
	})
}
