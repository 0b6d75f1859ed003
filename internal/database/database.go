package database

import (
	"fmt"
	"strings"

	"github.com/mrclaudee/quizz-app/internal/config"
	"github.com/mrclaudee/quizz-app/internal/logger"
	"github.com/mrclaudee/quizz-app/internal/models"

	"github.com/glebarez/sqlite"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func Connect(cfg *config.Config) (*gorm.DB, error) {
	dialector, err := dialectorFor(cfg)
	if err != nil {
		return nil, err
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormLevel()),
	})
	if err != nil {
		return nil, fmt.Errorf("connect %s: %w", cfg.DBDriver, err)
	}

	if cfg.DBDriver == "sqlite" {
		sqlDB, err := db.DB()
		if err != nil {
			return nil, err
		}
		// one writer at a time; also keeps shared in-memory databases alive
		sqlDB.SetMaxOpenConns(1)
	}

	logger.Infof("database connected (%s)", cfg.DBDriver)
	return db, nil
}

func dialectorFor(cfg *config.Config) (gorm.Dialector, error) {
	switch cfg.DBDriver {
	case "postgres":
		dsn := fmt.Sprintf(
			"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
			cfg.DBHost, cfg.DBPort, cfg.DBUser, cfg.DBPassword, cfg.DBName,
		)
		return postgres.Open(dsn), nil
	case "mysql":
		dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
			cfg.DBUser, cfg.DBPassword, cfg.DBHost, cfg.DBPort, cfg.DBName,
		)
		return mysql.Open(dsn), nil
	case "sqlite":
		return sqlite.Open(SQLiteDSN(cfg.DBPath)), nil
	}
	return nil, fmt.Errorf("unsupported db driver %q", cfg.DBDriver)
}

// SQLiteDSN appends the foreign_keys pragma so the RESTRICT constraint on
// quiz_questions is enforced.
func SQLiteDSN(path string) string {
	sep := "?"
	if strings.Contains(path, "?") {
		sep = "&"
	}
	return path + sep + "_pragma=foreign_keys(1)"
}

func gormLevel() gormlogger.LogLevel {
	switch logger.CurrentLevel() {
	case logger.DEBUG:
		return gormlogger.Info
	case logger.ERROR:
		return gormlogger.Error
	default:
		return gormlogger.Warn
	}
}

func AutoMigrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&models.Question{},
		&models.Quiz{},
		&models.QuizQuestion{},
	)
	if err != nil {
		return fmt.Errorf("auto-migrate: %w", err)
	}
	logger.Infof("database migrated")
	return nil
}

func Ping(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}
