package response

import (
	"github.com/gin-gonic/gin"

	appErrors "github.com/noah-isme/roomfinder-api/pkg/errors"
)

const (
	// StatusSuccess marks a successful response body.
	StatusSuccess = "success"
	// StatusError marks a failed response body.
	StatusError = "error"
)

// ErrorBody is the body of every failed API response.
type ErrorBody struct {
	Status  string `json:"status" example:"error"`
	Message string `json:"message" example:"Missing required parameters: day, from, to"`
}

// JSON sends body with caching disabled.
func JSON(c *gin.Context, status int, body interface{}) {
	c.Header("Cache-Control", "no-store")
	c.Header("Pragma", "no-cache")
	c.JSON(status, body)
}

// Error converts err to the common error body and aborts the chain.
func Error(c *gin.Context, err error) {
	appErr := appErrors.FromError(err)
	c.Header("Cache-Control", "no-store")
	c.Header("Pragma", "no-cache")
	c.AbortWithStatusJSON(appErr.Status, ErrorBody{Status: StatusError, Message: appErr.Message})
}
