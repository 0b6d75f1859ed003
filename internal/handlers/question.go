package handlers

import (
	"net/http"

	"github.com/mrclaudee/quizz-app/internal/logger"
	"github.com/mrclaudee/quizz-app/internal/models"
	"github.com/mrclaudee/quizz-app/internal/services"

	"github.com/gin-gonic/gin"
)

type QuestionHandler struct {
	questionService *services.QuestionService
}

func NewQuestionHandler(questionService *services.QuestionService) *QuestionHandler {
	return &QuestionHandler{questionService: questionService}
}

// GetAllQuestions godoc
// @Summary      List all questions
// @Tags         questions
// @Produce      json
// @Success      200 {array} Question
// @Failure      400 {array} Question
// @Router       /question/allQuestions [get]
func (h *QuestionHandler) GetAllQuestions(c *gin.Context) {
	questions, err := h.questionService.GetAllQuestions(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusBadRequest, []models.Question{})
		return
	}
	c.JSON(http.StatusOK, questions)
}

// GetQuestionsByCategory godoc
// @Summary      List questions of one category
// @Tags         questions
// @Produce      json
// @Param        category path string true "Category, matched exactly"
// @Success      200 {array} Question
// @Failure      400 {array} Question
// @Router       /question/category/{category} [get]
func (h *QuestionHandler) GetQuestionsByCategory(c *gin.Context) {
	questions, err := h.questionService.GetQuestionsByCategory(c.Request.Context(), c.Param("category"))
	if err != nil {
		c.JSON(http.StatusBadRequest, []models.Question{})
		return
	}
	c.JSON(http.StatusOK, questions)
}

// SaveQuestion backs both /question/add and /question/update: a body with
// an id replaces that question, one without creates a new question.
//
// @Summary      Add or update a question
// @Tags         questions
// @Accept       json
// @Produce      plain
// @Param        request body Question true "Question"
// @Success      201 {string} string "success"
// @Failure      400 {string} string "cannot save question"
// @Router       /question/add [post]
// @Router       /question/update [put]
func (h *QuestionHandler) SaveQuestion(c *gin.Context) {
	var req models.Question
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warnf("bind question: %v", err)
		c.String(http.StatusBadRequest, msgCannotSave)
		return
	}

	if err := h.questionService.Save(c.Request.Context(), &req); err != nil {
		c.String(http.StatusBadRequest, msgCannotSave)
		return
	}
	c.String(http.StatusCreated, msgSuccess)
}

// DeleteQuestion godoc
// @Summary      Delete a question
// @Tags         questions
// @Param        id path int true "Question ID"
// @Success      204
// @Failure      400 {string} string "cannot delete question"
// @Router       /question/delete/{id} [delete]
func (h *QuestionHandler) DeleteQuestion(c *gin.Context) {
	id, ok := parseID(c.Param("id"))
	if !ok {
		c.String(http.StatusBadRequest, msgCannotDelete)
		return
	}

	if err := h.questionService.DeleteByID(c.Request.Context(), id); err != nil {
		c.String(http.StatusBadRequest, msgCannotDelete)
		return
	}
	c.String(http.StatusNoContent, msgSuccess)
}
