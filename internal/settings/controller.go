package settings

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/Abu-ellil/arena-app-abosaleh/internal/shared/middleware"
	"github.com/Abu-ellil/arena-app-abosaleh/internal/shared/utils/response"
)

type Controller interface {
	GetAll(c *gin.Context)
	GetByKey(c *gin.Context)
	GetCurrency(c *gin.Context)
	UpdateCurrency(c *gin.Context)
	UpdateSetting(c *gin.Context)
}

type controller struct {
	service   Service
	validator *validator.Validate
}

func NewController(service Service) Controller {
	return &controller{service: service, validator: validator.New()}
}

// GetAll godoc
// @Summary  All storefront settings
// @Tags     settings
// @Produce  json
// @Success  200 {object} response.StandardApiResponse
// @Router   /settings [get]
func (ctrl *controller) GetAll(c *gin.Context) {
	values, err := ctrl.service.All(c.Request.Context())
	if err != nil {
		// An empty map keeps the storefront on its defaults
		response.RespondJSON(c, "success", http.StatusOK, "Settings unavailable, using defaults", map[string]string{}, nil)
		return
	}
	response.RespondJSON(c, "success", http.StatusOK, "Settings retrieved successfully", values, nil)
}

// GetByKey godoc
// @Summary  Single setting
// @Tags     settings
// @Produce  json
// @Param    key path string true "Setting key"
// @Success  200 {object} response.StandardApiResponse
// @Failure  404 {object} response.StandardApiResponse
// @Router   /settings/{key} [get]
func (ctrl *controller) GetByKey(c *gin.Context) {
	key := c.Param("key")
	value, err := ctrl.service.Get(c.Request.Context(), key)
	if err != nil {
		if errors.Is(err, ErrSettingNotFound) {
			response.RespondJSON(c, "error", http.StatusNotFound, "Setting not found", nil, nil)
			return
		}
		response.RespondJSON(c, "error", http.StatusInternalServerError, "Failed to fetch setting", nil, nil)
		return
	}
	response.RespondJSON(c, "success", http.StatusOK, "Setting retrieved successfully", ValueResponse{Key: key, Value: value}, nil)
}

// GetCurrency godoc
// @Summary  Display currency
// @Tags     settings
// @Produce  json
// @Success  200 {object} response.StandardApiResponse
// @Router   /currency [get]
func (ctrl *controller) GetCurrency(c *gin.Context) {
	response.RespondJSON(c, "success", http.StatusOK, "Currency retrieved successfully",
		ValueResponse{Value: ctrl.service.Currency(c.Request.Context())}, nil)
}

// UpdateCurrency godoc
// @Summary  Set the display currency
// @Tags     admin
// @Accept   json
// @Produce  json
// @Security BearerAuth
// @Param    body body ValueRequest true "New value"
// @Success  200 {object} response.StandardApiResponse
// @Router   /admin/currency [put]
func (ctrl *controller) UpdateCurrency(c *gin.Context) {
	ctrl.upsert(c, KeyCurrency)
}

// UpdateSetting godoc
// @Summary  Upsert a setting
// @Tags     admin
// @Accept   json
// @Produce  json
// @Security BearerAuth
// @Param    key  path string       true "Setting key"
// @Param    body body ValueRequest true "New value"
// @Success  200 {object} response.StandardApiResponse
// @Router   /admin/settings/{key} [put]
func (ctrl *controller) UpdateSetting(c *gin.Context) {
	key := c.Param("key")
	if err := ctrl.validator.Struct(keyParam{Key: key}); err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid setting key", nil, err.Error())
		return
	}
	ctrl.upsert(c, key)
}

func (ctrl *controller) upsert(c *gin.Context, key string) {
	var req ValueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid request body", nil, err.Error())
		return
	}

	setting, err := ctrl.service.Set(c.Request.Context(), key, stringify(req.Value), middleware.AdminID(c))
	if err != nil {
		response.RespondJSON(c, "error", http.StatusInternalServerError, "Failed to update setting", nil, nil)
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Setting updated successfully", setting, nil)
}
