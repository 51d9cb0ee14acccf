package comment

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
	CreateComment(c *gin.Context)
	GetAllComments(c *gin.Context)
	GetCommentByID(c *gin.Context)
	UpdateComment(c *gin.Context)
	DeleteComment(c *gin.Context)
}

type handler struct {
	service Service
}

func NewHandler(service Service) Handler {
	return &handler{service: service}
}

// @Summary Create a comment
// @Description Create a comment on a card; the author is the authenticated caller
// @Tags Comment
// @Accept json
// @Produce json
// @Success 201 {object} Comment
// @Failure 400 {object} map[string][]string
// @Router /api/comments [post]
func (h *handler) CreateComment(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "authentication required"})
		return
	}

	var req CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, utils.ValidationErrors(err, req))
		return
	}

	comment, err := h.service.CreateComment(userID, req)
	if err != nil {
		if errors.Is(err, ErrCardNotFound) {
			c.JSON(http.StatusBadRequest, gin.H{"card": []string{"Invalid card id."}})
			return
		}
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to create comment"})
		return
	}

	c.JSON(http.StatusCreated, comment)
}

// @Summary List comments
// @Tags Comment
// @Produce json
// @Success 200 {array} Comment
// @Router /api/comments [get]
func (h *handler) GetAllComments(c *gin.Context) {
	comments, err := h.service.GetAllComments()
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to fetch comments"})
		return
	}
	c.JSON(http.StatusOK, comments)
}

func (h *handler) GetCommentByID(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid comment ID"})
		return
	}

	comment, err := h.service.GetCommentByID(id)
	if err != nil {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "comment not found"})
		return
	}
	c.JSON(http.StatusOK, comment)
}

func (h *handler) UpdateComment(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid comment ID"})
		return
	}

	var req UpdateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	comment, err := h.service.UpdateComment(id, req)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "comment not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to update comment"})
		return
	}
	c.JSON(http.StatusOK, comment)
}

func (h *handler) DeleteComment(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid comment ID"})
		return
	}

	if err := h.service.DeleteComment(id); err != nil {
		if errors.Is(err, ErrCommentNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "comment not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to delete comment"})
		return
	}
	c.Status(http.StatusNoContent)
}
