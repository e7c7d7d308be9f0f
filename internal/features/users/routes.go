package users

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(router gin.IRouter, directory Directory, requireAuth gin.HandlerFunc) {
	handler := NewHandler(directory)

	users := router.Group("/users")
	users.Use(requireAuth)
	{
		users.GET("/username/:username", handler.GetUserByUsername)
		users.GET("/:id", handler.GetUserByID)
	}
}
