package board

import (
	"backend/internal/app/list"

	"gorm.io/gorm"
)

type Repository interface {
	GetAllBoards() ([]*Board, error)
	GetBoardByID(id uint64) (*Board, error)
	CreateBoard(board *Board) error
	SaveBoard(board *Board) error
	DeleteBoard(id uint64) (int64, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

// The full nested read: lists and cards by position (id as tiebreak), comments
// newest-first, owner and assignees resolved.
func withTree(db *gorm.DB) *gorm.DB {
	return db.
		Preload("Owner").
		Preload("Lists", func(db *gorm.DB) *gorm.DB {
			return db.Order("lists.position ASC, lists.id ASC")
		}).
		Preload("Lists.Cards", func(db *gorm.DB) *gorm.DB {
			return db.Order("cards.position ASC, cards.id ASC")
		}).
		Preload("Lists.Cards.Comments", func(db *gorm.DB) *gorm.DB {
			return db.Order("comments.created_at DESC")
		}).
		Preload("Lists.Cards.Comments.Author").
		Preload("Lists.Cards.AssignedTo")
}

func (r *repository) GetAllBoards() ([]*Board, error) {
	var boards []*Board
	err := withTree(r.db).
		Order("created_at ASC").
		Find(&boards).Error
	if err != nil {
		return nil, err
	}
	for _, b := range boards {
		normalize(b)
	}
	return boards, nil
}

func (r *repository) GetBoardByID(id uint64) (*Board, error) {
	var board Board
	err := withTree(r.db).First(&board, id).Error
	if err != nil {
		return nil, err
	}
	normalize(&board)
	return &board, nil
}

func (r *repository) CreateBoard(board *Board) error {
	return r.db.Create(board).Error
}

func (r *repository) SaveBoard(board *Board) error {
	return r.db.Model(&Board{ID: board.ID}).
		Updates(map[string]interface{}{
			"title": board.Title,
		}).Error
}

func (r *repository) DeleteBoard(id uint64) (int64, error) {
	result := r.db.Delete(&Board{}, id)
	return result.RowsAffected, result.Error
}

func normalize(b *Board) {
	if b.Lists == nil {
		b.Lists = []list.List{}
	}
}
