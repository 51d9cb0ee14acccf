package list

import (
	"errors"
	"net/http"
	"strconv"

	"backend/internal/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type Handler interface {
	GetAllLists(c *gin.Context)
	GetListByID(c *gin.Context)
	CreateList(c *gin.Context)
	UpdateList(c *gin.Context)
	DeleteList(c *gin.Context)
}

type handler struct {
	service Service
}

func NewHandler(service Service) Handler {
	return &handler{service: service}
}

// @Summary List lists
// @Tags List
// @Produce json
// @Success 200 {array} List
// @Router /api/lists [get]
func (h *handler) GetAllLists(c *gin.Context) {
	lists, err := h.service.GetAllLists()
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to fetch lists"})
		return
	}
	c.JSON(http.StatusOK, lists)
}

func (h *handler) GetListByID(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid list ID"})
		return
	}

	list, err := h.service.GetListByID(id)
	if err != nil {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "list not found"})
		return
	}
	c.JSON(http.StatusOK, list)
}

// @Summary Create a list
// @Tags List
// @Accept json
// @Produce json
// @Success 201 {object} List
// @Failure 400 {object} map[string][]string
// @Router /api/lists [post]
func (h *handler) CreateList(c *gin.Context) {
	var req CreateListRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, utils.ValidationErrors(err, req))
		return
	}

	list, err := h.service.CreateList(req)
	if err != nil {
		if errors.Is(err, ErrBoardNotFound) {
			c.JSON(http.StatusBadRequest, gin.H{"board": []string{"Invalid board id."}})
			return
		}
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to create list"})
		return
	}

	c.JSON(http.StatusCreated, list)
}

func (h *handler) UpdateList(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid list ID"})
		return
	}

	var req UpdateListRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	list, err := h.service.UpdateList(id, req)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "list not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to update list"})
		return
	}
	c.JSON(http.StatusOK, list)
}

func (h *handler) DeleteList(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid list ID"})
		return
	}

	if err := h.service.DeleteList(id); err != nil {
		if errors.Is(err, ErrListNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "list not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to delete list"})
		return
	}
	c.Status(http.StatusNoContent)
}
