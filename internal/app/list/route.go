package list

import "github.com/gin-gonic/gin"

func RegisterRoutes(rg gin.IRoutes, handler Handler) {
	rg.GET("/lists", handler.GetAllLists)
	rg.POST("/lists", handler.CreateList)
	rg.GET("/lists/:id", handler.GetListByID)
	rg.PUT("/lists/:id", handler.UpdateList)
	rg.PATCH("/lists/:id", handler.UpdateList)
	rg.DELETE("/lists/:id", handler.DeleteList)
}
