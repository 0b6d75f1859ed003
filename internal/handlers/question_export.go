package handlers

import (
	"fmt"
	"io"
	"net/http"

	"github.com/mrclaudee/quizz-app/internal/logger"
	"github.com/mrclaudee/quizz-app/internal/models"
	"github.com/mrclaudee/quizz-app/internal/seed"

	"github.com/gin-gonic/gin"
)

type ImportResponse struct {
	ImportedQuestions int `json:"imported_questions" example:"12"`
}

// ExportQuestions godoc
// @Summary      Export the question bank
// @Description  Full records including answers, as JSON (seed file layout) or CSV.
// @Tags         questions
// @Produce      json
// @Produce      text/csv
// @Param        format query string false "json or csv" default(json)
// @Param        category query string false "Only this category"
// @Success      200 {object} seed.File
// @Failure      400 {object} ErrorResponse
// @Router       /question/export [get]
func (h *QuestionHandler) ExportQuestions(c *gin.Context) {
	var (
		questions []models.Question
		err       error
	)
	filename := "questions"
	if category := c.Query("category"); category != "" {
		questions, err = h.questionService.GetQuestionsByCategory(c.Request.Context(), category)
		filename = category
	} else {
		questions, err = h.questionService.GetAllQuestions(c.Request.Context())
	}
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "cannot export questions"})
		return
	}

	switch c.DefaultQuery("format", "json") {
	case "csv":
		c.Header("Content-Type", "text/csv; charset=utf-8")
		c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename+".csv"))
		c.Status(http.StatusOK)
		if err := seed.WriteCSV(c.Writer, questions); err != nil {
			logger.Errorf("write csv export: %v", err)
		}
	case "json":
		c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename+".json"))
		c.JSON(http.StatusOK, seed.FromQuestions(questions))
	default:
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "format must be json or csv"})
	}
}

// ImportQuestions godoc
// @Summary      Import questions from a file
// @Description  Accepts the export formats (.json, .csv) and YAML seed files (.yaml, .yml).
// @Tags         questions
// @Accept       multipart/form-data
// @Produce      json
// @Param        file formData file true "Question file"
// @Success      200 {object} ImportResponse
// @Failure      400 {object} ErrorResponse
// @Router       /question/import [post]
func (h *QuestionHandler) ImportQuestions(c *gin.Context) {
	file, header, err := c.Request.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "file required"})
		return
	}
	defer file.Close()

	body, err := io.ReadAll(file)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "cannot read file"})
		return
	}

	entries, err := seed.Parse(header.Filename, body)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	count, err := seed.Import(c.Request.Context(), h.questionService, entries)
	if err != nil {
		logger.Warnf("import %s: stored %d of %d: %v", header.Filename, count, len(entries), err)
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: fmt.Sprintf("imported %d of %d questions, then failed", count, len(entries))})
		return
	}
	c.JSON(http.StatusOK, ImportResponse{ImportedQuestions: count})
}
