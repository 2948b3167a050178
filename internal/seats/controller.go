package seats

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Abu-ellil/arena-app-abosaleh/internal/events"
	"github.com/Abu-ellil/arena-app-abosaleh/internal/shared/utils/response"
)

type Controller struct {
	service Service
}

func NewController(service Service) *Controller {
	return &Controller{service: service}
}

// statusFor maps service errors to HTTP codes
func statusFor(err error) int {
	switch {
	case errors.Is(err, events.ErrEventNotFound), errors.Is(err, events.ErrDateNotScheduled):
		return http.StatusNotFound
	case errors.Is(err, events.ErrInvalidEventID), errors.Is(err, ErrDateRequired),
		errors.Is(err, ErrDuplicateSeat), errors.Is(err, ErrPriceRequired), errors.Is(err, ErrUnknownTier):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// GetSeatMap godoc
// @Summary  Seat map of a show
// @Tags     seats
// @Produce  json
// @Param    id   path  string true "Event ID"
// @Param    date query string true "Show date"
// @Success  200 {object} response.StandardApiResponse
// @Router   /events/{id}/seats [get]
func (c *Controller) GetSeatMap(ctx *gin.Context) {
	var q SeatMapQuery
	if err := ctx.ShouldBindQuery(&q); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "date is required", nil, err.Error())
		return
	}

	seatMap, err := c.service.GetSeatMap(ctx.Request.Context(), ctx.Param("id"), q.Date)
	if err != nil {
		response.RespondJSON(ctx, "error", statusFor(err), err.Error(), nil, nil)
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Seats retrieved successfully", seatMap, nil)
}

// GetLegend godoc
// @Summary  Category legend of a show
// @Tags     seats
// @Produce  json
// @Param    id   path  string true "Event ID"
// @Param    date query string true "Show date"
// @Success  200 {object} response.StandardApiResponse
// @Router   /events/{id}/legend [get]
func (c *Controller) GetLegend(ctx *gin.Context) {
	var q SeatMapQuery
	if err := ctx.ShouldBindQuery(&q); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "date is required", nil, err.Error())
		return
	}

	legend, err := c.service.GetLegend(ctx.Request.Context(), ctx.Param("id"), q.Date)
	if err != nil {
		response.RespondJSON(ctx, "error", statusFor(err), err.Error(), nil, nil)
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Legend retrieved successfully", legend, nil)
}

// GenerateLayout godoc
// @Summary  Generate the seat map of a show
// @Tags     admin
// @Accept   json
// @Produce  json
// @Security BearerAuth
// @Param    id   path string        true "Event ID"
// @Param    body body LayoutRequest true "Layout"
// @Success  201 {object} response.StandardApiResponse
// @Router   /admin/events/{id}/seats [post]
func (c *Controller) GenerateLayout(ctx *gin.Context) {
	var req LayoutRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid request body", nil, err.Error())
		return
	}

	result, err := c.service.GenerateLayout(ctx.Request.Context(), ctx.Param("id"), req)
	if err != nil {
		response.RespondJSON(ctx, "error", statusFor(err), err.Error(), nil, nil)
		return
	}

	response.RespondJSON(ctx, "success", http.StatusCreated, "Seat map generated successfully", result, nil)
}

// MarkBooked godoc
// @Summary  Mark seats booked or free
// @Tags     admin
// @Accept   json
// @Produce  json
// @Security BearerAuth
// @Param    id   path string            true "Event ID"
// @Param    body body MarkBookedRequest true "Seats"
// @Success  200 {object} response.StandardApiResponse
// @Router   /admin/events/{id}/seats/booked [put]
func (c *Controller) MarkBooked(ctx *gin.Context) {
	var req MarkBookedRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid request body", nil, err.Error())
		return
	}

	result, err := c.service.MarkBooked(ctx.Request.Context(), ctx.Param("id"), req)
	if err != nil {
		response.RespondJSON(ctx, "error", statusFor(err), err.Error(), nil, nil)
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Seats updated successfully", result, nil)
}
