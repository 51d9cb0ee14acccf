package user

import "github.com/gin-gonic/gin"

func RegisterRoutes(rg gin.IRoutes, handler Handler, requireAuth gin.HandlerFunc) {
	rg.POST("/register", handler.Register)
	rg.GET("/user/me", requireAuth, handler.Me)
}
