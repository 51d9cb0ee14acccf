package board

import "github.com/gin-gonic/gin"

// Reads are open; writes require authentication.
func RegisterRoutes(rg gin.IRoutes, handler Handler, requireAuth gin.HandlerFunc) {
	rg.GET("/boards", handler.GetAllBoards)
	rg.GET("/boards/:id", handler.GetBoardByID)
	rg.POST("/boards", requireAuth, handler.CreateBoard)
	rg.PUT("/boards/:id", requireAuth, handler.UpdateBoard)
	rg.PATCH("/boards/:id", requireAuth, handler.UpdateBoard)
	rg.DELETE("/boards/:id", requireAuth, handler.DeleteBoard)
}
