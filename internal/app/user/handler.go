package user

import (
	"net/http"

	"backend/internal/middleware"
	"backend/internal/utils"

	"github.com/gin-gonic/gin"
)

type Handler interface {
	Register(c *gin.Context)
	Me(c *gin.Context)
}

type handler struct {
	service Service
}

func NewHandler(service Service) Handler {
	return &handler{service: service}
}

// @Summary Register a new user
// @Description Create a user account with username, email and password
// @Tags User
// @Accept json
// @Produce json
// @Success 201 {object} RegisterResponse
// @Failure 400 {object} map[string][]string
// @Router /api/register [post]
func (h *handler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, utils.ValidationErrors(err, req))
		return
	}

	user, err := h.service.Register(req)
	if err != nil {
		if err == ErrUsernameTaken {
			c.JSON(http.StatusBadRequest, gin.H{
				"username": []string{"A user with that username already exists."},
			})
			return
		}
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to register user"})
		return
	}

	c.JSON(http.StatusCreated, RegisterResponse{
		User:    user,
		Message: "User registered successfully",
	})
}

// @Summary Current user profile
// @Description Return the authenticated caller's profile
// @Tags User
// @Accept json
// @Produce json
// @Success 200 {object} User
// @Failure 401 {object} ErrorResponse
// @Router /api/user/me [get]
func (h *handler) Me(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Not authenticated"})
		return
	}

	user, err := h.service.GetUserByID(userID)
	if err != nil {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "user not found"})
		return
	}

	c.JSON(http.StatusOK, user)
}
