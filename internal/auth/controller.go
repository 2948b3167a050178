package auth

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/Abu-ellil/arena-app-abosaleh/internal/shared/utils/response"
	"github.com/Abu-ellil/arena-app-abosaleh/pkg/logger"
)

type Controller struct {
	service   Service
	validator *validator.Validate
	log       *logger.Logger
}

func NewController(service Service, log *logger.Logger) *Controller {
	if log == nil {
		log = logger.GetDefault()
	}
	return &Controller{
		service:   service,
		validator: validator.New(),
		log:       log,
	}
}

// Setup godoc
// @Summary  Create the first admin account
// @Tags     admin
// @Accept   json
// @Produce  json
// @Param    body body SetupRequest false "Optional credentials"
// @Success  200 {object} response.StandardApiResponse
// @Router   /admin/setup [post]
func (c *Controller) Setup(ctx *gin.Context) {
	var req SetupRequest
	// An empty or malformed body means default credentials
	if err := ctx.ShouldBindJSON(&req); err != nil {
		req = SetupRequest{}
	}

	if err := c.validator.Struct(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Validation failed", nil, err.Error())
		return
	}

	resp, err := c.service.Setup(ctx.Request.Context(), &req)
	if err != nil {
		c.log.LogHTTPError(ctx, err, http.StatusInternalServerError)
		response.RespondJSON(ctx, "error", http.StatusInternalServerError, "Failed to setup admin user", nil, nil)
		return
	}

	code := http.StatusOK
	if resp.Created {
		code = http.StatusCreated
	}
	response.RespondJSON(ctx, "success", code, resp.Message, resp, nil)
}

// Login godoc
// @Summary  Admin login
// @Tags     admin
// @Accept   json
// @Produce  json
// @Param    body body LoginRequest true "Credentials"
// @Success  200 {object} response.StandardApiResponse
// @Failure  401 {object} response.StandardApiResponse
// @Router   /admin/login [post]
func (c *Controller) Login(ctx *gin.Context) {
	var req LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid request body", nil, err.Error())
		return
	}

	if err := c.validator.Struct(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Validation failed", nil, err.Error())
		return
	}

	resp, err := c.service.Login(ctx.Request.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidCredentials):
			c.log.LogAuthFailure(ctx.Request.Context(), "invalid credentials", ctx.ClientIP())
			response.RespondJSON(ctx, "error", http.StatusUnauthorized, "Invalid username or password", nil, nil)
		default:
			response.RespondJSON(ctx, "error", http.StatusInternalServerError, "Failed to login", nil, nil)
		}
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Login successful", resp, nil)
}
