package db

import (
	"backend/internal/app/board"
	"backend/internal/app/card"
	"backend/internal/app/comment"
	"backend/internal/app/list"
	"backend/internal/app/user"
	"backend/internal/config"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func Connect(cfg *config.Config, logger *zap.Logger) (*gorm.DB, error) {
	dsn := cfg.PostgresDSN()
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	if err := sqlDB.Ping(); err != nil {
		return nil, err
	}

	logger.Info("Connected to PostgreSQL",
		zap.String("host", cfg.DBHost),
		zap.String("database", cfg.DBName),
	)
	return db, nil
}

// Migrate runs in dependency order so the cascade constraints can be created.
func Migrate(db *gorm.DB, logger *zap.Logger) error {
	if err := db.AutoMigrate(
		&user.User{},
		&board.Board{},
		&list.List{},
		&card.Card{},
		&comment.Comment{},
	); err != nil {
		return err
	}

	logger.Info("Database migrated")
	return nil
}
