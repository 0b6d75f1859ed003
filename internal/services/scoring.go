package services

import (
	"github.com/mrclaudee/quizz-app/internal/models"
)

type ScoringService struct{}

func NewScoringService() *ScoringService {
	return &ScoringService{}
}

// Score counts responses that exactly equal the right answer of the question
// at the same index. A short response list scores only its prefix; entries
// past the last question are ignored.
func (s *ScoringService) Score(questions []models.Question, responses []models.QuizResponseDto) int {
	n := len(responses)
	if len(questions) < n {
		n = len(questions)
	}

	right := 0
	for i := 0; i < n; i++ {
		if responses[i].Response == questions[i].RightAnswer {
			right++
		}
	}
	return right
}
