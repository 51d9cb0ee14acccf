package comment

import "github.com/gin-gonic/gin"

func RegisterRoutes(rg gin.IRoutes, handler Handler, requireAuth gin.HandlerFunc) {
	rg.GET("/comments", requireAuth, handler.GetAllComments)
	rg.POST("/comments", requireAuth, handler.CreateComment)
	rg.GET("/comments/:id", requireAuth, handler.GetCommentByID)
	rg.PUT("/comments/:id", requireAuth, handler.UpdateComment)
	rg.PATCH("/comments/:id", requireAuth, handler.UpdateComment)
	rg.DELETE("/comments/:id", requireAuth, handler.DeleteComment)
}
