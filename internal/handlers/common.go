package handlers

import (
	"strconv"

	"github.com/mrclaudee/quizz-app/internal/models"
)

const (
	msgSuccess      = "success"
	msgCannotSave   = "cannot save question"
	msgCannotDelete = "cannot delete question"
	msgCannotCreate = "cannot create quiz"
	headerQuizID    = "X-Quiz-Id"
	headerRequested = "X-Quiz-Requested"
	headerSelected  = "X-Quiz-Selected"
)

type ErrorResponse struct {
	Error string `json:"error" example:"something went wrong"`
}

// Aliases so handler annotations can name models without the package prefix.
type Question = models.Question
type QuestionDto = models.QuestionDto
type QuizResponseDto = models.QuizResponseDto

func parseID(raw string) (uint, bool) {
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, false
	}
	return uint(id), true
}
