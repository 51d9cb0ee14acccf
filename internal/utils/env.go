package utils

import (
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func LoadEnv(logger *zap.Logger) {
	if err := godotenv.Load(); err != nil {
		logger.Warn("No .env file found, relying on process environment")
		return
	}
	logger.Info(".env file loaded")
}
