package tasks

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(router gin.IRouter, service *Service, requireAuth gin.HandlerFunc) {
	handler := NewHandler(service)

	tasks := router.Group("/tasks")
	tasks.Use(requireAuth)
	{
		tasks.GET("", handler.List)
		tasks.POST("", handler.Create)
		tasks.PATCH("/:id", handler.Update)
		tasks.DELETE("/:id", handler.Delete)
	}
}
