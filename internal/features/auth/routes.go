package auth

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers the credential routes. limiter guards the
// unauthenticated endpoints, requireAuth guards /me.
func RegisterRoutes(router gin.IRouter, service *Service, limiter, requireAuth gin.HandlerFunc) {
	handler := NewHandler(service)

	router.POST("/register", limiter, handler.Register)
	router.POST("/signin", limiter, handler.SignIn)
	router.GET("/me", requireAuth, handler.Me)
}
