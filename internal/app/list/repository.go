package list

import (
	"backend/internal/app/card"

	"gorm.io/gorm"
)

type Repository interface {
	GetAllLists() ([]*List, error)
	GetListByID(id uint64) (*List, error)
	CreateList(list *List) error
	SaveList(list *List) error
	DeleteList(id uint64) (int64, error)
	BoardExists(boardID uint64) (bool, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

// Cards are ordered by position with id as the stable tiebreak; nested
// comments come newest-first with their authors.
func withCards(db *gorm.DB) *gorm.DB {
	return db.
		Preload("Cards", func(db *gorm.DB) *gorm.DB {
			return db.Order("cards.position ASC, cards.id ASC")
		}).
		Preload("Cards.Comments", func(db *gorm.DB) *gorm.DB {
			return db.Order("comments.created_at DESC")
		}).
		Preload("Cards.Comments.Author").
		Preload("Cards.AssignedTo")
}

func (r *repository) GetAllLists() ([]*List, error) {
	var lists []*List
	err := withCards(r.db).
		Order("position ASC, id ASC").
		Find(&lists).Error
	if err != nil {
		return nil, err
	}
	for _, l := range lists {
		normalize(l)
	}
	return lists, nil
}

func (r *repository) GetListByID(id uint64) (*List, error) {
	var list List
	err := withCards(r.db).First(&list, id).Error
	if err != nil {
		return nil, err
	}
	normalize(&list)
	return &list, nil
}

func (r *repository) CreateList(list *List) error {
	return r.db.Create(list).Error
}

func (r *repository) SaveList(list *List) error {
	return r.db.Model(&List{ID: list.ID}).
		Updates(map[string]interface{}{
			"board_id": list.BoardID,
			"title":    list.Title,
			"position": list.Position,
		}).Error
}

func (r *repository) DeleteList(id uint64) (int64, error) {
	result := r.db.Delete(&List{}, id)
	return result.RowsAffected, result.Error
}

func (r *repository) BoardExists(boardID uint64) (bool, error) {
	var count int64
	err := r.db.Table("boards").Where("id = ?", boardID).Count(&count).Error
	return count > 0, err
}

func normalize(l *List) {
	if l.Cards == nil {
		l.Cards = []card.Card{}
	}
}
