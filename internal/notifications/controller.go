package notifications

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Abu-ellil/arena-app-abosaleh/internal/shared/utils/response"
)

type Controller struct {
	service *Service
}

func NewController(service *Service) *Controller {
	return &Controller{service: service}
}

// SendBooking godoc
// @Summary  Forward a booking to the box office
// @Tags     notifications
// @Accept   json
// @Produce  json
// @Param    body body BookingRequest true "Booking"
// @Success  200 {object} response.StandardApiResponse
// @Failure  502 {object} response.StandardApiResponse
// @Router   /telegram [post]
func (c *Controller) SendBooking(ctx *gin.Context) {
	var req BookingRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid request body", nil, err.Error())
		return
	}

	order := req.BookingData
	if err := c.service.SendOrder(ctx.Request.Context(), order); err != nil {
		c.service.log.LogOrderFailed(ctx.Request.Context(), order.BookingID, err)
		response.RespondJSON(ctx, "error", http.StatusBadGateway, "Failed to send booking notification",
			BookingResponse{OK: false, BookingID: order.BookingID},
			response.RetryHint{Retry: true, BookingID: order.BookingID})
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Booking notification sent",
		BookingResponse{OK: true, BookingID: order.BookingID}, nil)
}
