package routes

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/xyz-asif/tasklists/internal/config"
	"github.com/xyz-asif/tasklists/internal/features/auth"
	"github.com/xyz-asif/tasklists/internal/features/lists"
	"github.com/xyz-asif/tasklists/internal/features/tasks"
	"github.com/xyz-asif/tasklists/internal/features/users"
	"github.com/xyz-asif/tasklists/internal/middleware"
	"github.com/xyz-asif/tasklists/internal/pkg/ratelimit"
)

// SetupRoutes wires repositories, services and handlers onto router.
// ctx bounds background work such as rate limiter cleanup.
func SetupRoutes(ctx context.Context, router gin.IRouter, db *mongo.Database, cfg *config.Config) {
	authService := auth.NewService(auth.NewRepository(db), auth.BcryptHasher{Cost: cfg.BcryptCost})
	requireAuth := middleware.Auth(authService)

	// register/signin are throttled per client IP
	limiter := ratelimit.New(cfg.AuthRateLimit, cfg.AuthRateWindow)
	limiter.StartCleanup(ctx, 5*time.Minute)

	auth.RegisterRoutes(router, authService, ratelimit.Middleware(limiter), requireAuth)
	lists.RegisterRoutes(router, lists.NewService(lists.NewRepository(db), authService), requireAuth)
	tasks.RegisterRoutes(router, tasks.NewService(tasks.NewRepository(db)), requireAuth)
	users.RegisterRoutes(router, authService, requireAuth)
}
