package app

import (
	_ "github.com/mrclaudee/quizz-app/docs"
	"github.com/mrclaudee/quizz-app/internal/config"
	"github.com/mrclaudee/quizz-app/internal/database"
	"github.com/mrclaudee/quizz-app/internal/handlers"
	"github.com/mrclaudee/quizz-app/internal/middleware"
	"github.com/mrclaudee/quizz-app/internal/repository"
	"github.com/mrclaudee/quizz-app/internal/services"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// NewRouter wires repositories, services and handlers over db and returns
// the ready gin engine.
func NewRouter(cfg *config.Config, db *gorm.DB) *gin.Engine {
	questionRepo := repository.NewQuestionRepository(db)
	quizRepo := repository.NewQuizRepository(db)

	questionService := services.NewQuestionService(questionRepo)
	quizService := services.NewQuizService(quizRepo, questionRepo, services.NewScoringService())

	questionHandler := handlers.NewQuestionHandler(questionService)
	quizHandler := handlers.NewQuizHandler(quizService)
	healthHandler := handlers.NewHealthHandler(func() error { return database.Ping(db) })

	r := gin.New()
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(cors.New(cors.Config{
		AllowOrigins:  cfg.AllowedOrigins(),
		AllowMethods:  []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", middleware.RequestIDHeader},
		ExposeHeaders: []string{middleware.RequestIDHeader, "X-Quiz-Id", "X-Quiz-Requested", "X-Quiz-Selected"},
	}))

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	handlers.Register(r, handlers.Routes(questionHandler, quizHandler, healthHandler))
	return r
}
