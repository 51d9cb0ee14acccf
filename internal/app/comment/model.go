package comment

import (
	"time"

	"backend/internal/app/user"
)

type Comment struct {
	ID        uint64    `json:"id" gorm:"primaryKey"`
	CardID    uint64    `json:"card" gorm:"not null;index"`
	AuthorID  uint64    `json:"-" gorm:"not null;index"`
	Author    user.User `json:"author" gorm:"foreignKey:AuthorID;constraint:OnDelete:CASCADE"`
	Text      string    `json:"text" gorm:"not null"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type CreateCommentRequest struct {
	Card uint64 `json:"card" binding:"required"`
	Text string `json:"text" binding:"required"`
}

type UpdateCommentRequest struct {
	Text *string `json:"text"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
