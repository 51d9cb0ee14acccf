package board

import (
	"time"

	"backend/internal/app/list"
	"backend/internal/app/user"
)

type Board struct {
	ID        uint64      `json:"id" gorm:"primaryKey"`
	Title     string      `json:"title" gorm:"not null"`
	OwnerID   *uint64     `json:"-"`
	Owner     *user.User  `json:"owner" gorm:"foreignKey:OwnerID;constraint:OnDelete:CASCADE"`
	Lists     []list.List `json:"lists" gorm:"foreignKey:BoardID;constraint:OnDelete:CASCADE"`
	CreatedAt time.Time   `json:"created_at"`
}

type CreateBoardRequest struct {
	Title string `json:"title" binding:"required"`
}

type UpdateBoardRequest struct {
	Title *string `json:"title"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
