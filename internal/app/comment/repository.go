package comment

import "gorm.io/gorm"

type Repository interface {
	CreateComment(comment *Comment) error
	GetAllComments() ([]*Comment, error)
	GetCommentByID(id uint64) (*Comment, error)
	SaveComment(comment *Comment) error
	DeleteComment(id uint64) (int64, error)
	CardExists(cardID uint64) (bool, error)
	BoardIDForComment(id uint64) (uint64, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) CreateComment(comment *Comment) error {
	if err := r.db.Create(comment).Error; err != nil {
		return err
	}
	return r.db.Preload("Author").First(comment, comment.ID).Error
}

// Comments read newest-first.
func (r *repository) GetAllComments() ([]*Comment, error) {
	var comments []*Comment
	err := r.db.
		Preload("Author").
		Order("created_at DESC").
		Find(&comments).Error
	return comments, err
}

func (r *repository) GetCommentByID(id uint64) (*Comment, error) {
	var comment Comment
	err := r.db.Preload("Author").First(&comment, id).Error
	if err != nil {
		return nil, err
	}
	return &comment, nil
}

// SaveComment writes the text column only; the preloaded Author is never
// written back.
func (r *repository) SaveComment(comment *Comment) error {
	return r.db.Model(&Comment{ID: comment.ID}).
		Update("text", comment.Text).Error
}

func (r *repository) DeleteComment(id uint64) (int64, error) {
	result := r.db.Delete(&Comment{}, id)
	return result.RowsAffected, result.Error
}

func (r *repository) CardExists(cardID uint64) (bool, error) {
	var count int64
	err := r.db.Table("cards").Where("id = ?", cardID).Count(&count).Error
	return count > 0, err
}

func (r *repository) BoardIDForComment(id uint64) (uint64, error) {
	var row struct {
		BoardID uint64
	}
	err := r.db.Table("comments").
		Select("lists.board_id AS board_id").
		Joins("JOIN cards ON cards.id = comments.card_id").
		Joins("JOIN lists ON lists.id = cards.list_id").
		Where("comments.id = ?", id).
		Take(&row).Error
	return row.BoardID, err
}
