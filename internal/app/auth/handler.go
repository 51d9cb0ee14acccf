package auth

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type Handler interface {
	Token(c *gin.Context)
	RefreshToken(c *gin.Context)
}

type handler struct {
	service Service
}

func NewHandler(service Service) Handler {
	return &handler{service: service}
}

// @Summary Issue a token pair
// @Description Exchange username and password for access and refresh tokens
// @Tags Auth
// @Accept json
// @Produce json
// @Success 200 {object} TokenPair
// @Failure 401 {object} ErrorResponse
// @Router /api/token [post]
func (h *handler) Token(c *gin.Context) {
	var req TokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "username and password are required"})
		return
	}

	pair, err := h.service.IssueTokens(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		if err == ErrInvalidCredentials {
			c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "no active account found with the given credentials"})
			return
		}
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to issue tokens"})
		return
	}

	c.JSON(http.StatusOK, pair)
}

// @Summary Refresh a token pair
// @Description Rotate a refresh token for a new access/refresh pair
// @Tags Auth
// @Accept json
// @Produce json
// @Success 200 {object} TokenPair
// @Failure 401 {object} ErrorResponse
// @Router /api/token/refresh [post]
func (h *handler) RefreshToken(c *gin.Context) {
	var req RefreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "refresh token is required"})
		return
	}

	pair, err := h.service.Refresh(c.Request.Context(), req.Refresh)
	if err != nil {
		if err == ErrInvalidToken {
			c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "token is invalid or expired"})
			return
		}
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to refresh tokens"})
		return
	}

	c.JSON(http.StatusOK, pair)
}
