package card

import (
	"time"

	"backend/internal/app/comment"
	"backend/internal/app/user"
)

type Card struct {
	ID           uint64            `json:"id" gorm:"primaryKey"`
	ListID       uint64            `json:"list" gorm:"not null;index"`
	Title        string            `json:"title" gorm:"not null"`
	Description  string            `json:"description"`
	Position     int               `json:"position" gorm:"not null;default:0"`
	DueDate      *time.Time        `json:"due_date"`
	AssignedToID *uint64           `json:"-"`
	AssignedTo   *user.User        `json:"assigned_to" gorm:"foreignKey:AssignedToID;constraint:OnDelete:SET NULL"`
	Comments     []comment.Comment `json:"comments" gorm:"foreignKey:CardID;constraint:OnDelete:CASCADE"`
	CreatedAt    time.Time         `json:"created_at"`
	UpdatedAt    time.Time         `json:"updated_at"`
}

type CreateCardRequest struct {
	List        uint64     `json:"list" binding:"required"`
	Title       string     `json:"title" binding:"required"`
	Description string     `json:"description"`
	Position    int        `json:"position"`
	DueDate     *time.Time `json:"due_date"`
}

type UpdateCardRequest struct {
	List        *uint64    `json:"list"`
	Title       *string    `json:"title"`
	Description *string    `json:"description"`
	Position    *int       `json:"position"`
	DueDate     *time.Time `json:"due_date"`
}

type AddCommentRequest struct {
	Text string `json:"text"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
