package card

import (
	"errors"
	"net/http"
	"strconv"

	"backend/internal/middleware"
	"backend/internal/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type Handler interface {
	GetAllCards(c *gin.Context)
	GetCardByID(c *gin.Context)
	CreateCard(c *gin.Context)
	UpdateCard(c *gin.Context)
	DeleteCard(c *gin.Context)
	AddComment(c *gin.Context)
}

type handler struct {
	service Service
}

func NewHandler(service Service) Handler {
	return &handler{service: service}
}

// @Summary List cards
// @Tags Card
// @Produce json
// @Success 200 {array} Card
// @Router /api/cards [get]
func (h *handler) GetAllCards(c *gin.Context) {
	cards, err := h.service.GetAllCards(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to fetch cards"})
		return
	}
	c.JSON(http.StatusOK, cards)
}

// @Summary Get a card
// @Tags Card
// @Produce json
// @Param id path int true "Card ID"
// @Success 200 {object} Card
// @Failure 404 {object} ErrorResponse
// @Router /api/cards/{id} [get]
func (h *handler) GetCardByID(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid card ID"})
		return
	}

	card, err := h.service.GetCardByID(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "card not found"})
		return
	}
	c.JSON(http.StatusOK, card)
}

// @Summary Create a card
// @Tags Card
// @Accept json
// @Produce json
// @Success 201 {object} Card
// @Failure 400 {object} map[string][]string
// @Router /api/cards [post]
func (h *handler) CreateCard(c *gin.Context) {
	var req CreateCardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, utils.ValidationErrors(err, req))
		return
	}

	card, err := h.service.CreateCard(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, ErrListNotFound) {
			c.JSON(http.StatusBadRequest, gin.H{"list": []string{"Invalid list id."}})
			return
		}
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to create card"})
		return
	}

	c.JSON(http.StatusCreated, card)
}

// @Summary Update a card
// @Description Partial update; only the provided fields are written
// @Tags Card
// @Accept json
// @Produce json
// @Param id path int true "Card ID"
// @Success 200 {object} Card
// @Failure 404 {object} ErrorResponse
// @Router /api/cards/{id} [patch]
func (h *handler) UpdateCard(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid card ID"})
		return
	}

	var req UpdateCardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	card, err := h.service.UpdateCard(c.Request.Context(), id, req)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "card not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to update card"})
		return
	}
	c.JSON(http.StatusOK, card)
}

// @Summary Delete a card
// @Tags Card
// @Param id path int true "Card ID"
// @Success 204
// @Failure 404 {object} ErrorResponse
// @Router /api/cards/{id} [delete]
func (h *handler) DeleteCard(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid card ID"})
		return
	}

	if err := h.service.DeleteCard(c.Request.Context(), id); err != nil {
		if errors.Is(err, ErrCardNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "card not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to delete card"})
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Comment on a card
// @Description Create a comment authored by the caller; empty text is rejected
// @Tags Card
// @Accept json
// @Produce json
// @Param id path int true "Card ID"
// @Success 201 {object} comment.Comment
// @Failure 400 {object} ErrorResponse
// @Router /api/cards/{id}/add_comment [post]
func (h *handler) AddComment(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "authentication required"})
		return
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid card ID"})
		return
	}

	var req AddCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	created, err := h.service.AddComment(c.Request.Context(), id, userID, req.Text)
	if err != nil {
		switch {
		case errors.Is(err, ErrTextRequired):
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Text is required"})
		case errors.Is(err, gorm.ErrRecordNotFound):
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "card not found"})
		default:
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to add comment"})
		}
		return
	}

	c.JSON(http.StatusCreated, created)
}
