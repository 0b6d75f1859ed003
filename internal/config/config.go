package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v2"
)

type Config struct {
	ServerPort  string `yaml:"server_port"`
	GinMode     string `yaml:"gin_mode"`
	CORSOrigins string `yaml:"cors_origins"`
	LogLevel    string `yaml:"log_level"`

	DBDriver   string `yaml:"db_driver"`
	DBHost     string `yaml:"db_host"`
	DBPort     string `yaml:"db_port"`
	DBUser     string `yaml:"db_user"`
	DBPassword string `yaml:"db_password"`
	DBName     string `yaml:"db_name"`
	DBPath     string `yaml:"db_path"`
}

// Load builds the configuration from, in increasing precedence: built-in
// defaults, the YAML file at path (if non-empty), a local .env file and the
// process environment.
func Load(path string) (*Config, error) {
	// .env is optional
	_ = godotenv.Load()

	file := &Config{}
	if path == "" {
		path = os.Getenv("CONFIG_PATH")
	}
	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
		if err := yaml.Unmarshal(raw, file); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	cfg := &Config{
		ServerPort:  getEnv("SERVER_PORT", or(file.ServerPort, "8080")),
		GinMode:     getEnv("GIN_MODE", or(file.GinMode, "debug")),
		CORSOrigins: getEnv("CORS_ORIGINS", or(file.CORSOrigins, "*")),
		LogLevel:    getEnv("LOG_LEVEL", or(file.LogLevel, "info")),
		DBDriver:    getEnv("DB_DRIVER", or(file.DBDriver, "postgres")),
		DBHost:      getEnv("DB_HOST", or(file.DBHost, "localhost")),
		DBPort:      getEnv("DB_PORT", or(file.DBPort, "5432")),
		DBUser:      getEnv("DB_USER", or(file.DBUser, "postgres")),
		DBPassword:  getEnv("DB_PASSWORD", or(file.DBPassword, "postgres")),
		DBName:      getEnv("DB_NAME", or(file.DBName, "quizapp")),
		DBPath:      getEnv("DB_PATH", or(file.DBPath, "quiz.db")),
	}
	cfg.DBDriver = strings.ToLower(cfg.DBDriver)

	switch cfg.DBDriver {
	case "postgres", "mysql", "sqlite":
	default:
		return nil, fmt.Errorf("unsupported db driver %q", cfg.DBDriver)
	}
	return cfg, nil
}

// AllowedOrigins splits CORSOrigins on commas.
func (c *Config) AllowedOrigins() []string {
	var out []string
	for _, o := range strings.Split(c.CORSOrigins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			out = append(out, o)
		}
	}
	if len(out) == 0 {
		return []string{"*"}
	}
	return out
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func or(val, fallback string) string {
	if val != "" {
		return val
	}
	return fallback
}
