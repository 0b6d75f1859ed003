package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type Route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
}

// Routes is the full HTTP surface of the service.
func Routes(questions *QuestionHandler, quizzes *QuizHandler, health *HealthHandler) []Route {
	return []Route{
		{http.MethodGet, "/health", health.Health},

		{http.MethodGet, "/question/allQuestions", questions.GetAllQuestions},
		{http.MethodGet, "/question/category/:category", questions.GetQuestionsByCategory},
		{http.MethodPost, "/question/add", questions.SaveQuestion},
		{http.MethodPut, "/question/update", questions.SaveQuestion},
		{http.MethodDelete, "/question/delete/:id", questions.DeleteQuestion},
		{http.MethodGet, "/question/export", questions.ExportQuestions},
		{http.MethodPost, "/question/import", questions.ImportQuestions},

		{http.MethodPost, "/quiz/create", quizzes.CreateQuiz},
		{http.MethodGet, "/quiz/get/:quizId", quizzes.GetQuizQuestions},
		{http.MethodPost, "/quiz/submit/:id", quizzes.Submit},
	}
}

func Register(r gin.IRoutes, routes []Route) {
	for _, rt := range routes {
		r.Handle(rt.Method, rt.Path, rt.Handler)
	}
}
