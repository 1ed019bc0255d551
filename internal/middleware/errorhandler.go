package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/nsepulse/nsepulse/internal/domain/dto"
)

// ErrorHandler converts errors attached to the gin context (via c.Error)
// into the standard JSON envelope, for handlers that defer error rendering
// instead of writing a response themselves. Handlers that already wrote a
// body are left alone.
func ErrorHandler(c *gin.Context) {
	c.Next()

	if len(c.Errors) == 0 || c.Writer.Written() {
		return
	}

	status := c.Writer.Status()
	if status < http.StatusBadRequest {
		status = http.StatusInternalServerError
	}

	last := c.Errors.Last()
	c.JSON(status, dto.NewErrorResponse("request failed", last.Err))
}
