package bookings

import (
	"github.com/gin-gonic/gin"
)

// SetupBookingRoutes configures the selection, checkout and payment flow
func SetupBookingRoutes(rg *gin.RouterGroup, controller *Controller) {
	selections := rg.Group("/selections")
	{
		selections.POST("", controller.OpenSelection)                           // POST /api/v1/selections
		selections.GET("/:sessionId", controller.GetSelection)                  // GET /api/v1/selections/:sessionId
		selections.DELETE("/:sessionId", controller.CloseSelection)             // DELETE /api/v1/selections/:sessionId
		selections.POST("/:sessionId/seats/:seatId", controller.SelectSeat)     // POST /api/v1/selections/:sessionId/seats/:seatId
		selections.DELETE("/:sessionId/seats/:seatId", controller.DeselectSeat) // DELETE /api/v1/selections/:sessionId/seats/:seatId
	}

	rg.GET("/checkout", controller.OpenCheckout)              // GET /api/v1/checkout?eventId=&seats=&total=
	rg.POST("/checkout/:visitId/proceed", controller.Proceed) // POST /api/v1/checkout/:visitId/proceed
	rg.GET("/payment", controller.OpenPayment)                // GET /api/v1/payment?eventId=&seats=&fullName=...
	rg.POST("/payment/:visitId/submit", controller.Submit)    // POST /api/v1/payment/:visitId/submit

	visits := rg.Group("/visits")
	{
		visits.GET("/:id", controller.GetVisit)      // GET /api/v1/visits/:id
		visits.DELETE("/:id", controller.CloseVisit) // DELETE /api/v1/visits/:id
	}
}

// Flow:
// 1. POST /selections opens a 7 minute seat map session
// 2. Seats are picked and released; the summary carries the checkout URL
// 3. GET /checkout opens a 7 minute window, POST .../proceed returns the payment URL
// 4. GET /payment opens a 10 minute window, POST .../submit sends the order
// 5. An expired window answers 410 with where to redirect
