package card

import (
	"backend/internal/app/comment"

	"gorm.io/gorm"
)

type Repository interface {
	GetAllCards() ([]*Card, error)
	GetCardByID(id uint64) (*Card, error)
	CreateCard(card *Card) error
	SaveCard(card *Card) error
	DeleteCard(id uint64) (int64, error)
	NextPositionInList(listID uint64) (int, error)
	ListExists(listID uint64) (bool, error)
	BoardIDForCard(cardID uint64) (uint64, error)
	BoardIDForList(listID uint64) (uint64, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

// withAssociations loads the full serialized-card shape: comments newest-first
// with their authors, plus the resolved assignee.
func withAssociations(db *gorm.DB) *gorm.DB {
	return db.
		Preload("Comments", func(db *gorm.DB) *gorm.DB {
			return db.Order("comments.created_at DESC")
		}).
		Preload("Comments.Author").
		Preload("AssignedTo")
}

func (r *repository) GetAllCards() ([]*Card, error) {
	var cards []*Card
	err := withAssociations(r.db).
		Order("position ASC, id ASC").
		Find(&cards).Error
	if err != nil {
		return nil, err
	}
	for _, c := range cards {
		normalize(c)
	}
	return cards, nil
}

func (r *repository) GetCardByID(id uint64) (*Card, error) {
	var card Card
	err := withAssociations(r.db).First(&card, id).Error
	if err != nil {
		return nil, err
	}
	normalize(&card)
	return &card, nil
}

func (r *repository) CreateCard(card *Card) error {
	return r.db.Create(card).Error
}

// SaveCard writes the mutable fields only, so stale preloaded associations are
// never written back.
func (r *repository) SaveCard(card *Card) error {
	return r.db.Model(&Card{ID: card.ID}).
		Updates(map[string]interface{}{
			"list_id":     card.ListID,
			"title":       card.Title,
			"description": card.Description,
			"position":    card.Position,
			"due_date":    card.DueDate,
		}).Error
}

func (r *repository) DeleteCard(id uint64) (int64, error) {
	result := r.db.Delete(&Card{}, id)
	return result.RowsAffected, result.Error
}

// NextPositionInList implements the append policy: max(sibling positions)+1,
// or 0 for an empty list.
func (r *repository) NextPositionInList(listID uint64) (int, error) {
	var next int
	err := r.db.Table("cards").
		Select("COALESCE(MAX(position) + 1, 0)").
		Where("list_id = ?", listID).
		Scan(&next).Error
	return next, err
}

func (r *repository) ListExists(listID uint64) (bool, error) {
	var count int64
	err := r.db.Table("lists").Where("id = ?", listID).Count(&count).Error
	return count > 0, err
}

func (r *repository) BoardIDForCard(cardID uint64) (uint64, error) {
	var row struct {
		BoardID uint64
	}
	err := r.db.Table("cards").
		Select("lists.board_id AS board_id").
		Joins("JOIN lists ON lists.id = cards.list_id").
		Where("cards.id = ?", cardID).
		Take(&row).Error
	return row.BoardID, err
}

func (r *repository) BoardIDForList(listID uint64) (uint64, error) {
	var row struct {
		BoardID uint64
	}
	err := r.db.Table("lists").
		Select("board_id").
		Where("id = ?", listID).
		Take(&row).Error
	return row.BoardID, err
}

func normalize(c *Card) {
	if c.Comments == nil {
		c.Comments = []comment.Comment{}
	}
}
