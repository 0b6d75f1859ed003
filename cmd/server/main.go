package main

import (
	"context"
	"fmt"
	"os"

	"github.com/mrclaudee/quizz-app/internal/app"
	"github.com/mrclaudee/quizz-app/internal/config"
	"github.com/mrclaudee/quizz-app/internal/database"
	"github.com/mrclaudee/quizz-app/internal/logger"
	"github.com/mrclaudee/quizz-app/internal/repository"
	"github.com/mrclaudee/quizz-app/internal/seed"
	"github.com/mrclaudee/quizz-app/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/urfave/cli/v3"
	"gorm.io/gorm"
)

// Set at build time through -ldflags.
var Version = "dev"

// @title           Quiz App API
// @version         1.0
// @description     Question bank and quiz API: question CRUD, random quizzes per category, scoring.
// @host            localhost:8080
// @BasePath        /

func main() {
	if err := newCommand().Run(context.Background(), os.Args); err != nil {
		logger.Fatalf("%v", err)
	}
}

func newCommand() *cli.Command {
	return &cli.Command{
		Name:    "quizz-app",
		Usage:   "quiz management API server",
		Version: Version,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "path to a YAML config file",
				Sources: cli.EnvVars("CONFIG_PATH"),
			},
		},
		Action: serve,
		Commands: []*cli.Command{
			{
				Name:   "serve",
				Usage:  "run the HTTP server (default)",
				Action: serve,
			},
			{
				Name:   "migrate",
				Usage:  "create or update the database schema and exit",
				Action: migrate,
			},
			{
				Name:  "seed",
				Usage: "load questions from a YAML, JSON or CSV file",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "file",
						Aliases:  []string{"f"},
						Usage:    "seed file (.yaml, .yml, .json or .csv)",
						Required: true,
					},
				},
				Action: seedQuestions,
			},
		},
	}
}

// bootstrap loads config, sets up logging and opens a migrated database.
func bootstrap(cmd *cli.Command) (*config.Config, *gorm.DB, error) {
	cfg, err := config.Load(cmd.String("config"))
	if err != nil {
		return nil, nil, err
	}
	if err := logger.Setup(cfg.LogLevel); err != nil {
		return nil, nil, err
	}

	db, err := database.Connect(cfg)
	if err != nil {
		return nil, nil, err
	}
	if err := database.AutoMigrate(db); err != nil {
		return nil, nil, err
	}
	return cfg, db, nil
}

func serve(ctx context.Context, cmd *cli.Command) error {
	cfg, db, err := bootstrap(cmd)
	if err != nil {
		return err
	}

	gin.SetMode(cfg.GinMode)
	r := app.NewRouter(cfg, db)

	logger.Infof("server starting on :%s", cfg.ServerPort)
	if err := r.Run(":" + cfg.ServerPort); err != nil {
		return fmt.Errorf("failed to start server: %w", err)
	}
	return nil
}

func migrate(ctx context.Context, cmd *cli.Command) error {
	_, _, err := bootstrap(cmd)
	return err
}

func seedQuestions(ctx context.Context, cmd *cli.Command) error {
	_, db, err := bootstrap(cmd)
	if err != nil {
		return err
	}

	entries, err := seed.Load(cmd.String("file"))
	if err != nil {
		return err
	}
	svc := services.NewQuestionService(repository.NewQuestionRepository(db))
	n, err := seed.Import(ctx, svc, entries)
	logger.Infof("seeded %d of %d questions", n, len(entries))
	return err
}
