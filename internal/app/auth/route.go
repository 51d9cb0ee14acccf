package auth

import "github.com/gin-gonic/gin"

func RegisterRoutes(rg gin.IRoutes, handler Handler) {
	rg.POST("/token", handler.Token)
	rg.POST("/token/refresh", handler.RefreshToken)
}
