package auth

import (
	"github.com/gin-gonic/gin"
)

// SetupRoutes registers the unauthenticated admin bootstrap routes
func SetupRoutes(rg *gin.RouterGroup, controller *Controller) {
	admin := rg.Group("/admin")
	{
		admin.POST("/setup", controller.Setup) // POST /api/v1/admin/setup
		admin.POST("/login", controller.Login) // POST /api/v1/admin/login
	}
}
