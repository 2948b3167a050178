package events

import (
	"github.com/gin-gonic/gin"

	"github.com/Abu-ellil/arena-app-abosaleh/internal/shared/config"
	"github.com/Abu-ellil/arena-app-abosaleh/internal/shared/middleware"
)

func SetupEventRoutes(router *gin.RouterGroup, controller Controller, cfg *config.Config) {
	// Public routes - anyone can browse
	publicEvents := router.Group("/events")
	{
		publicEvents.GET("", controller.GetAllEvents) // GET /api/v1/events
		publicEvents.GET("/:id", controller.GetEvent) // GET /api/v1/events/:id?date=
	}

	// Admin routes
	adminEvents := router.Group("/admin/events")
	adminEvents.Use(middleware.JWTAuth(cfg), middleware.RequireAdmin())
	{
		adminEvents.POST("", controller.CreateEvent)    // POST /api/v1/admin/events
		adminEvents.PUT("/:id", controller.UpdateEvent) // PUT /api/v1/admin/events/:id
	}
}
