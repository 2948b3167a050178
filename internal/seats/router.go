package seats

import (
	"github.com/gin-gonic/gin"

	"github.com/Abu-ellil/arena-app-abosaleh/internal/shared/config"
	"github.com/Abu-ellil/arena-app-abosaleh/internal/shared/middleware"
)

func SetupSeatRoutes(rg *gin.RouterGroup, controller *Controller, cfg *config.Config) {
	publicSeats := rg.Group("/events/:id")
	{
		publicSeats.GET("/seats", controller.GetSeatMap) // GET /api/v1/events/:id/seats?date=
		publicSeats.GET("/legend", controller.GetLegend) // GET /api/v1/events/:id/legend?date=
	}

	adminSeats := rg.Group("/admin/events/:id/seats")
	adminSeats.Use(middleware.JWTAuth(cfg), middleware.RequireAdmin())
	{
		adminSeats.POST("", controller.GenerateLayout)   // POST /api/v1/admin/events/:id/seats
		adminSeats.PUT("/booked", controller.MarkBooked) // PUT /api/v1/admin/events/:id/seats/booked
	}
}
