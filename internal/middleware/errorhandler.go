package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/budgetops/fiscalpulse/internal/domain/dto"
	"github.com/budgetops/fiscalpulse/internal/logger"
)

// ErrorHandler converts errors accumulated on the Gin context into a
// standardized 500 response. Handlers that already wrote a response are
// left untouched; this is the safety net for errors attached via c.Error.
func ErrorHandler(c *gin.Context) {
	c.Next()

	if len(c.Errors) == 0 || c.Writer.Written() {
		return
	}

	err := c.Errors.Last().Err
	logger.L().Error().Err(err).Str("path", c.Request.URL.Path).Msg("unhandled request error")
	c.AbortWithStatusJSON(http.StatusInternalServerError, dto.NewErrorResponse("Internal server error", err))
}
