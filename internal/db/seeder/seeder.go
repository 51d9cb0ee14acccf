package seeder

import (
	"backend/internal/app/board"
	"backend/internal/app/card"
	"backend/internal/app/list"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Seeder struct {
	db     *gorm.DB
	logger *zap.Logger
}

func NewSeeder(db *gorm.DB, logger *zap.Logger) *Seeder {
	return &Seeder{
		db:     db,
		logger: logger,
	}
}

func (s *Seeder) Seed() error {
	s.logger.Info("Running database seeders...")

	if err := s.seedSampleBoard(); err != nil {
		return err
	}

	s.logger.Info("Database seeders completed successfully")
	return nil
}

func (s *Seeder) seedSampleBoard() error {
	var count int64
	s.db.Model(&board.Board{}).Count(&count)
	if count > 0 {
		s.logger.Info("Boards already exist, skipping seed")
		return nil
	}

	b := board.Board{Title: "Sample Project Board"}
	if err := s.db.Create(&b).Error; err != nil {
		return err
	}

	lists := []list.List{
		{BoardID: b.ID, Title: "To Do", Position: 0},
		{BoardID: b.ID, Title: "In Progress", Position: 1},
		{BoardID: b.ID, Title: "Done", Position: 2},
	}
	if err := s.db.Create(&lists).Error; err != nil {
		return err
	}

	cards := []card.Card{
		{ListID: lists[0].ID, Title: "Implement authentication", Position: 0},
		{ListID: lists[0].ID, Title: "Add drag-and-drop", Position: 1},
		{ListID: lists[0].ID, Title: "Deploy to production", Position: 2},
		{ListID: lists[1].ID, Title: "Build the board UI", Position: 0},
		{ListID: lists[1].ID, Title: "WebSocket integration", Position: 1},
		{ListID: lists[2].ID, Title: "Project setup", Position: 0},
		{ListID: lists[2].ID, Title: "Data model", Position: 1},
	}
	if err := s.db.Create(&cards).Error; err != nil {
		return err
	}

	s.logger.Info("Seeded sample board",
		zap.Int("lists", len(lists)),
		zap.Int("cards", len(cards)),
	)
	return nil
}
