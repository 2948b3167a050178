package notifications

import (
	"github.com/gin-gonic/gin"
)

func SetupNotificationRoutes(rg *gin.RouterGroup, controller *Controller) {
	rg.POST("/telegram", controller.SendBooking) // POST /api/v1/telegram
}
