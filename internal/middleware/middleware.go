package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/stockprice/internal/domain/dto"
	"github.com/guttosm/stockprice/internal/logger"
)

// ErrorHandler renders errors attached with c.Error when the handler did not
// write a response itself.
//
// Behavior:
//   - Runs after the handler chain.
//   - If the response is already written, only logs the errors.
//   - Otherwise responds 500 with a dto.ErrorResponse built from the last error.
func ErrorHandler(c *gin.Context) {
	c.Next()

	if len(c.Errors) == 0 {
		return
	}
	last := c.Errors.Last()
	rid, _ := c.Get(RequestIDKey)
	logger.L().Error().
		Str("request_id", toString(rid)).
		Str("path", c.Request.URL.Path).
		Err(last.Err).
		Msg("request failed")

	if c.Writer.Written() {
		return
	}
	c.AbortWithStatusJSON(http.StatusInternalServerError, dto.NewErrorResponse("Internal server error", last.Err))
}

// AbortWithError stops the chain and writes a dto.ErrorResponse with the given status.
//
// Parameters:
//   - c: request context.
//   - status: HTTP status code.
//   - message: summary for the client.
//   - err: underlying error (may be nil); also attached to c.Errors for logging.
func AbortWithError(c *gin.Context, status int, message string, err error) {
	if err != nil {
		_ = c.Error(err)
	}
	c.AbortWithStatusJSON(status, dto.NewErrorResponse(message, err))
}
