package settings

import (
	"github.com/gin-gonic/gin"

	"github.com/Abu-ellil/arena-app-abosaleh/internal/shared/config"
	"github.com/Abu-ellil/arena-app-abosaleh/internal/shared/middleware"
)

func SetupSettingsRoutes(router *gin.RouterGroup, controller Controller, cfg *config.Config) {
	router.GET("/settings", controller.GetAll)        // GET /api/v1/settings
	router.GET("/settings/:key", controller.GetByKey) // GET /api/v1/settings/:key
	router.GET("/currency", controller.GetCurrency)   // GET /api/v1/currency

	admin := router.Group("/admin")
	admin.Use(middleware.JWTAuth(cfg), middleware.RequireAdmin())
	{
		admin.PUT("/currency", controller.UpdateCurrency)     // PUT /api/v1/admin/currency
		admin.PUT("/settings/:key", controller.UpdateSetting) // PUT /api/v1/admin/settings/:key
	}
}
