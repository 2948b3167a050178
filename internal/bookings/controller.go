package bookings

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Abu-ellil/arena-app-abosaleh/internal/cart"
	"github.com/Abu-ellil/arena-app-abosaleh/internal/checkout"
	"github.com/Abu-ellil/arena-app-abosaleh/internal/events"
	"github.com/Abu-ellil/arena-app-abosaleh/internal/reservation"
	"github.com/Abu-ellil/arena-app-abosaleh/internal/shared/utils/response"
)

const (
	msgInvalidForm  = "يرجى تصحيح الأخطاء في النموذج"
	msgSubmitFailed = "حدث خطأ أثناء إرسال الطلب، يرجى المحاولة مرة أخرى"
)

type Controller struct {
	service Service
}

func NewController(service Service) *Controller {
	return &Controller{service: service}
}

// OpenSelection godoc
// @Summary  Start picking seats for a show
// @Tags     bookings
// @Accept   json
// @Produce  json
// @Param    body body OpenSelectionRequest true "Event and show date"
// @Success  201 {object} response.StandardApiResponse
// @Failure  404 {object} response.StandardApiResponse
// @Router   /selections [post]
func (c *Controller) OpenSelection(ctx *gin.Context) {
	var req OpenSelectionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid request body", nil, err.Error())
		return
	}

	selection, err := c.service.OpenSelection(ctx.Request.Context(), req)
	if err != nil {
		respondError(ctx, err, reservation.StageSelection)
		return
	}

	response.RespondJSON(ctx, "success", http.StatusCreated, "Selection opened", selection, nil)
}

// GetSelection godoc
// @Summary  Current selection and total
// @Tags     bookings
// @Produce  json
// @Param    sessionId path string true "Session ID"
// @Success  200 {object} response.StandardApiResponse
// @Failure  410 {object} response.StandardApiResponse
// @Router   /selections/{sessionId} [get]
func (c *Controller) GetSelection(ctx *gin.Context) {
	summary, err := c.service.Selection(ctx.Request.Context(), ctx.Param("sessionId"))
	if err != nil {
		respondError(ctx, err, reservation.StageSelection)
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Selection retrieved", summary, nil)
}

// SelectSeat godoc
// @Summary  Select a seat
// @Tags     bookings
// @Produce  json
// @Param    sessionId path string true "Session ID"
// @Param    seatId    path string true "Seat ID"
// @Success  200 {object} response.StandardApiResponse
// @Failure  409 {object} response.StandardApiResponse
// @Router   /selections/{sessionId}/seats/{seatId} [post]
func (c *Controller) SelectSeat(ctx *gin.Context) {
	summary, err := c.service.SelectSeat(ctx.Request.Context(), ctx.Param("sessionId"), ctx.Param("seatId"))
	if err != nil {
		respondError(ctx, err, reservation.StageSelection)
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Seat selected", summary, nil)
}

// DeselectSeat godoc
// @Summary  Release a selected seat
// @Tags     bookings
// @Produce  json
// @Param    sessionId path string true "Session ID"
// @Param    seatId    path string true "Seat ID"
// @Success  200 {object} response.StandardApiResponse
// @Router   /selections/{sessionId}/seats/{seatId} [delete]
func (c *Controller) DeselectSeat(ctx *gin.Context) {
	summary, err := c.service.DeselectSeat(ctx.Request.Context(), ctx.Param("sessionId"), ctx.Param("seatId"))
	if err != nil {
		respondError(ctx, err, reservation.StageSelection)
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Seat released", summary, nil)
}

// CloseSelection godoc
// @Summary  Leave the seat map
// @Tags     bookings
// @Param    sessionId path string true "Session ID"
// @Success  200 {object} response.StandardApiResponse
// @Router   /selections/{sessionId} [delete]
func (c *Controller) CloseSelection(ctx *gin.Context) {
	if err := c.service.CloseSelection(ctx.Request.Context(), ctx.Param("sessionId")); err != nil {
		respondError(ctx, err, reservation.StageSelection)
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Selection closed", nil, nil)
}

// OpenCheckout godoc
// @Summary  Checkout page
// @Tags     bookings
// @Produce  json
// @Param    eventId  query string true  "Event ID"
// @Param    seats    query string true  "Cart token"
// @Param    total    query string false "Displayed total"
// @Param    setPrice query string false "Set price"
// @Success  200 {object} response.StandardApiResponse
// @Router   /checkout [get]
func (c *Controller) OpenCheckout(ctx *gin.Context) {
	view, err := c.service.OpenCheckout(ctx.Request.Context(), cart.ParseCheckoutQuery(ctx.Request.URL.Query()))
	if err != nil {
		respondError(ctx, err, reservation.StageCheckout)
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Checkout opened", view, nil)
}

// Proceed godoc
// @Summary  Submit the contact form
// @Tags     bookings
// @Accept   json
// @Produce  json
// @Param    visitId path string         true "Visit ID"
// @Param    body    body ProceedRequest true "Contact form"
// @Success  200 {object} response.StandardApiResponse
// @Failure  422 {object} response.StandardApiResponse
// @Failure  410 {object} response.StandardApiResponse
// @Router   /checkout/{visitId}/proceed [post]
func (c *Controller) Proceed(ctx *gin.Context) {
	var form ProceedRequest
	if err := ctx.ShouldBindJSON(&form); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid request body", nil, err.Error())
		return
	}

	next, errs, err := c.service.Proceed(ctx.Request.Context(), ctx.Param("visitId"), form)
	if err != nil {
		if errors.Is(err, checkout.ErrInvalidForm) {
			response.RespondValidation(ctx, msgInvalidForm, errs)
			return
		}
		respondError(ctx, err, reservation.StageCheckout)
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Proceed to payment", next, nil)
}

// OpenPayment godoc
// @Summary  Payment page
// @Tags     bookings
// @Produce  json
// @Param    eventId  query string true  "Event ID"
// @Param    seats    query string true  "Cart token"
// @Param    total    query string false "Displayed total"
// @Param    fullName query string false "Customer name"
// @Param    phone    query string false "Customer phone"
// @Param    email    query string false "Customer email"
// @Param    setPrice query string false "Set price"
// @Success  200 {object} response.StandardApiResponse
// @Router   /payment [get]
func (c *Controller) OpenPayment(ctx *gin.Context) {
	view, err := c.service.OpenPayment(ctx.Request.Context(), cart.ParsePaymentQuery(ctx.Request.URL.Query()))
	if err != nil {
		respondError(ctx, err, reservation.StagePayment)
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Payment opened", view, nil)
}

// Submit godoc
// @Summary  Pay and place the order
// @Tags     bookings
// @Accept   json
// @Produce  json
// @Param    visitId path string        true "Visit ID"
// @Param    body    body SubmitRequest true "Card form"
// @Success  200 {object} response.StandardApiResponse
// @Failure  422 {object} response.StandardApiResponse
// @Failure  410 {object} response.StandardApiResponse
// @Failure  409 {object} response.StandardApiResponse
// @Failure  502 {object} response.StandardApiResponse
// @Router   /payment/{visitId}/submit [post]
func (c *Controller) Submit(ctx *gin.Context) {
	var form SubmitRequest
	if err := ctx.ShouldBindJSON(&form); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid request body", nil, err.Error())
		return
	}

	confirmation, errs, err := c.service.Submit(ctx.Request.Context(), ctx.Param("visitId"), form)
	if err != nil {
		var submitErr *checkout.SubmitError
		switch {
		case errors.Is(err, checkout.ErrInvalidForm):
			response.RespondValidation(ctx, msgInvalidForm, errs)
		case errors.As(err, &submitErr):
			response.RespondJSON(ctx, "error", http.StatusBadGateway, msgSubmitFailed, nil,
				response.RetryHint{Retry: submitErr.Retryable, BookingID: submitErr.BookingID})
		default:
			respondError(ctx, err, reservation.StagePayment)
		}
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Order placed", confirmation, nil)
}

// GetVisit godoc
// @Summary  Countdown of a page visit
// @Tags     bookings
// @Produce  json
// @Param    id path string true "Visit ID"
// @Success  200 {object} response.StandardApiResponse
// @Router   /visits/{id} [get]
func (c *Controller) GetVisit(ctx *gin.Context) {
	status, err := c.service.VisitStatus(ctx.Param("id"))
	if err != nil {
		respondError(ctx, err, "")
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Visit retrieved", status, nil)
}

// CloseVisit godoc
// @Summary  Stop a countdown
// @Tags     bookings
// @Param    id path string true "Visit ID"
// @Success  200 {object} response.StandardApiResponse
// @Router   /visits/{id} [delete]
func (c *Controller) CloseVisit(ctx *gin.Context) {
	if err := c.service.CloseVisit(ctx.Request.Context(), ctx.Param("id")); err != nil {
		respondError(ctx, err, "")
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Visit closed", nil, nil)
}

func respondError(ctx *gin.Context, err error, stage reservation.Stage) {
	switch {
	case errors.Is(err, reservation.ErrVisitExpired):
		expiry := reservation.ExpiryFor(stage)
		response.RespondJSON(ctx, "error", http.StatusGone, err.Error(), nil,
			response.RedirectHint{Redirect: expiry.Redirect, Notice: expiry.Notice})
	case errors.Is(err, ErrSessionNotFound),
		errors.Is(err, reservation.ErrVisitNotFound),
		errors.Is(err, events.ErrEventNotFound),
		errors.Is(err, events.ErrDateNotScheduled):
		response.RespondJSON(ctx, "error", http.StatusNotFound, err.Error(), nil, nil)
	case errors.Is(err, events.ErrInvalidEventID):
		response.RespondJSON(ctx, "error", http.StatusBadRequest, err.Error(), nil, nil)
	case errors.Is(err, ErrSeatUnavailable), errors.Is(err, ErrSeatNotSelected), errors.Is(err, ErrSubmitInFlight):
		response.RespondJSON(ctx, "error", http.StatusConflict, err.Error(), nil, nil)
	default:
		response.RespondJSON(ctx, "error", http.StatusInternalServerError, err.Error(), nil, nil)
	}
}
