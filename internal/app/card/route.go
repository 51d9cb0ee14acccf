package card

import "github.com/gin-gonic/gin"

func RegisterRoutes(rg gin.IRoutes, handler Handler, requireAuth gin.HandlerFunc) {
	rg.GET("/cards", handler.GetAllCards)
	rg.POST("/cards", handler.CreateCard)
	rg.GET("/cards/:id", handler.GetCardByID)
	rg.PUT("/cards/:id", handler.UpdateCard)
	rg.PATCH("/cards/:id", handler.UpdateCard)
	rg.DELETE("/cards/:id", handler.DeleteCard)
	rg.POST("/cards/:id/add_comment", requireAuth, handler.AddComment)
}
