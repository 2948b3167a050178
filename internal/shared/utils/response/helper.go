package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func RespondJSON(c *gin.Context, status string, code int, message string, data interface{}, errors interface{}) {
	c.JSON(code, StandardApiResponse{
		Status:     status,
		StatusCode: code,
		Message:    message,
		Data:       data,
		Errors:     errors,
	})
}

// RespondValidation answers 422 with field-keyed messages
func RespondValidation(c *gin.Context, message string, fieldErrors map[string]string) {
	RespondJSON(c, "error", http.StatusUnprocessableEntity, message, nil, fieldErrors)
}
