package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/mrclaudee/quizz-app/internal/logger"
	"github.com/mrclaudee/quizz-app/internal/models"
	"github.com/mrclaudee/quizz-app/internal/services"

	"github.com/gin-gonic/gin"
)

type QuizHandler struct {
	quizService *services.QuizService
}

func NewQuizHandler(quizService *services.QuizService) *QuizHandler {
	return &QuizHandler{quizService: quizService}
}

type CreateQuizQuery struct {
	Category string `form:"category" binding:"required" example:"science"`
	NumQ     int    `form:"numQ" binding:"required,min=1" example:"5"`
	Title    string `form:"title" example:"Science basics"`
}

// CreateQuiz godoc
// @Summary      Create a quiz from random questions of a category
// @Description  When the category holds fewer than numQ questions the quiz
// @Description  gets all of them; X-Quiz-Selected then differs from X-Quiz-Requested.
// @Tags         quiz
// @Produce      plain
// @Param        category query string true "Category"
// @Param        numQ query int true "Number of questions"
// @Param        title query string true "Quiz title, may be empty"
// @Success      200 {string} string "success"
// @Failure      400 {string} string "cannot create quiz"
// @Router       /quiz/create [post]
func (h *QuizHandler) CreateQuiz(c *gin.Context) {
	var req CreateQuizQuery
	if err := c.ShouldBindQuery(&req); err != nil {
		logger.Warnf("bind quiz query: %v", err)
		c.String(http.StatusBadRequest, msgCannotCreate)
		return
	}
	// title must be present but may be empty
	if _, ok := c.GetQuery("title"); !ok {
		logger.Warnf("bind quiz query: missing title")
		c.String(http.StatusBadRequest, msgCannotCreate)
		return
	}

	res, err := h.quizService.Create(c.Request.Context(), req.Category, req.NumQ, req.Title)
	if err != nil {
		if !isStorage(err) {
			logger.Warnf("create quiz %q from %q: %v", req.Title, req.Category, err)
		}
		c.String(http.StatusBadRequest, msgCannotCreate)
		return
	}

	c.Header(headerQuizID, strconv.FormatUint(uint64(res.QuizID), 10))
	c.Header(headerRequested, strconv.Itoa(res.Requested))
	c.Header(headerSelected, strconv.Itoa(res.Selected))
	c.String(http.StatusOK, msgSuccess)
}

// GetQuizQuestions godoc
// @Summary      Get a quiz's questions without answers
// @Tags         quiz
// @Produce      json
// @Param        quizId path int true "Quiz ID"
// @Success      200 {array} QuestionDto
// @Failure      404 {array} QuestionDto
// @Router       /quiz/get/{quizId} [get]
func (h *QuizHandler) GetQuizQuestions(c *gin.Context) {
	quizID, ok := parseID(c.Param("quizId"))
	if !ok {
		c.JSON(http.StatusNotFound, []models.QuestionDto{})
		return
	}

	questions, err := h.quizService.GetByID(c.Request.Context(), quizID)
	if err != nil {
		c.JSON(http.StatusNotFound, []models.QuestionDto{})
		return
	}
	c.JSON(http.StatusOK, questions)
}

// Submit godoc
// @Summary      Score answers for a quiz
// @Description  Responses are matched to questions by position. Entries past
// @Description  the last question are ignored.
// @Tags         quiz
// @Accept       json
// @Produce      json
// @Param        id path int true "Quiz ID"
// @Param        request body []QuizResponseDto true "Answers in quiz order"
// @Success      200 {integer} int
// @Failure      400 {integer} int
// @Router       /quiz/submit/{id} [post]
func (h *QuizHandler) Submit(c *gin.Context) {
	quizID, ok := parseID(c.Param("id"))
	if !ok {
		c.JSON(http.StatusBadRequest, 0)
		return
	}

	var responses []models.QuizResponseDto
	if err := c.ShouldBindJSON(&responses); err != nil {
		logger.Warnf("bind responses for quiz %d: %v", quizID, err)
		c.JSON(http.StatusBadRequest, 0)
		return
	}

	score, err := h.quizService.CalculateResult(c.Request.Context(), quizID, responses)
	if err != nil {
		c.JSON(http.StatusBadRequest, 0)
		return
	}
	c.JSON(http.StatusOK, score)
}

func isStorage(err error) bool {
	var se *services.StorageError
	return errors.As(err, &se)
}
