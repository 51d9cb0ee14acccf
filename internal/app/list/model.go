package list

import "backend/internal/app/card"

type List struct {
	ID       uint64      `json:"id" gorm:"primaryKey"`
	BoardID  uint64      `json:"board" gorm:"not null;index"`
	Title    string      `json:"title" gorm:"not null"`
	Position int         `json:"position" gorm:"not null;default:0"`
	Cards    []card.Card `json:"cards" gorm:"foreignKey:ListID;constraint:OnDelete:CASCADE"`
}

type CreateListRequest struct {
	Board    uint64 `json:"board" binding:"required"`
	Title    string `json:"title" binding:"required"`
	Position int    `json:"position"`
}

type UpdateListRequest struct {
	Board    *uint64 `json:"board"`
	Title    *string `json:"title"`
	Position *int    `json:"position"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
