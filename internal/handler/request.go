package handler

import (
	"errors"
	"io"

	"github.com/gin-gonic/gin"

	appErrors "github.com/noah-isme/roomfinder-api/pkg/errors"
)

// bindBody decodes the JSON body into dest. An empty body leaves dest zero so
// the service reports the missing fields.
func bindBody(c *gin.Context, dest interface{}) error {
	if c.Request.Body == nil || c.Request.ContentLength == 0 {
		return nil
	}
	if err := c.ShouldBindJSON(dest); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "Invalid JSON body")
	}
	return nil
}
