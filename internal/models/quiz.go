package models

import "time"

type Quiz struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	Title     string         `gorm:"size:255;not null" json:"title"`
	Items     []QuizQuestion `gorm:"foreignKey:QuizID;constraint:OnDelete:CASCADE" json:"-"`
	CreatedAt time.Time      `json:"created_at"`
}

// QuizQuestion links a quiz to one of its questions. Position is zero-based
// and fixes the order answers are scored in.
type QuizQuestion struct {
	ID         uint     `gorm:"primaryKey" json:"-"`
	QuizID     uint     `gorm:"not null;uniqueIndex:idx_quiz_position;uniqueIndex:idx_quiz_question" json:"-"`
	QuestionID uint     `gorm:"not null;uniqueIndex:idx_quiz_question;index" json:"-"`
	Question   Question `gorm:"foreignKey:QuestionID;constraint:OnDelete:RESTRICT" json:"-"`
	Position   int      `gorm:"not null;uniqueIndex:idx_quiz_position" json:"-"`
}

// Questions returns the quiz's questions in position order. Items are
// expected to be loaded already sorted.
func (q *Quiz) Questions() []Question {
	out := make([]Question, 0, len(q.Items))
	for _, it := range q.Items {
		out = append(out, it.Question)
	}
	return out
}

// QuizResponseDto is one submitted answer, aligned by index with the quiz's
// question order.
type QuizResponseDto struct {
	ID       uint   `json:"id"`
	Response string `json:"response"`
}
