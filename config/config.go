package config

import (
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"punchline/pkg/logger"
)

// Config holds everything the server reads from the environment.
type Config struct {
	DBUser     string `env:"user"`
	DBPassword string `env:"password"`
	DBHost     string `env:"host"`
	DBPort     string `env:"port"`
	DBName     string `env:"dbname"`
	JWTSecret  string `env:"JWT_SECRET,required,notEmpty"`
	Addr       string `env:"ADDR" envDefault:":8080"`
}

// Load reads a .env file if present, then parses the environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		logger.Sugar.Info("No .env file found, using environment variables from OS")
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, err
	}

	// Hosted Postgres dashboards love trailing whitespace in copied credentials.
	cfg.DBUser = strings.TrimSpace(cfg.DBUser)
	cfg.DBPassword = strings.TrimSpace(cfg.DBPassword)
	cfg.DBHost = strings.TrimSpace(cfg.DBHost)
	cfg.DBPort = strings.TrimSpace(cfg.DBPort)
	cfg.DBName = strings.TrimSpace(cfg.DBName)

	return &cfg, nil
}
