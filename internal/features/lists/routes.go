package lists

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(router gin.IRouter, service *Service, requireAuth gin.HandlerFunc) {
	handler := NewHandler(service)

	lists := router.Group("/lists")
	lists.Use(requireAuth) // All list routes require authentication
	{
		lists.GET("", handler.List)
		lists.POST("", handler.Create)
		lists.PATCH("/:id", handler.Rename)
		lists.DELETE("/:id", handler.Delete)

		lists.GET("/:id/tasks", handler.GetTasks)
		lists.PATCH("/:id/tasks", handler.AddTask)
		lists.PATCH("/:id/tasks/delete", handler.RemoveTask)
		lists.PATCH("/:id/tasks/update", handler.SetCompletion)
		lists.PATCH("/:id/tasks/rename", handler.RenameTask)

		lists.PATCH("/:id/collaborators", handler.AddCollaborator)
		lists.DELETE("/:id/collaborators/:userId", handler.RemoveCollaborator)
	}
}
