package middelware

import (
	"net/http"
	"strings"
	"time"

	"noticeboard-backend/models"
	"noticeboard-backend/utils/logger"

	"github.com/gin-gonic/gin"
)

// LoggingMiddleware logs console traffic and recovers panics into the API
// error envelope
type LoggingMiddleware struct {
	logger logger.Logger
}

func NewLoggingMiddleware(log logger.Logger) *LoggingMiddleware {
	return &LoggingMiddleware{logger: log}
}

// RequestLogger emits one line per request, leveled by response status. The
// account id is included once the auth middleware has resolved one; health
// probes are skipped to keep the logs about console traffic.
func (m *LoggingMiddleware) RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path

		c.Next()

		if strings.HasSuffix(path, "/health") {
			return
		}

		latency := time.Since(start)
		status := c.Writer.Status()

		line := c.Request.Method + " " + path
		if query := c.Request.URL.RawQuery; query != "" {
			line += "?" + query
		}
		if adminID := c.GetString("admin_id"); adminID != "" {
			line += " account=" + adminID
		}
		if len(c.Errors) > 0 {
			line += " errors=" + c.Errors.String()
		}

		switch {
		case status >= 500:
			m.logger.Errorf("%s -> %d (%s, %s)", line, status, latency, c.ClientIP())
		case status >= 400:
			m.logger.Warnf("%s -> %d (%s, %s)", line, status, latency, c.ClientIP())
		default:
			m.logger.Infof("%s -> %d (%s, %s)", line, status, latency, c.ClientIP())
		}
	}
}

// Recovery turns a handler panic into a 500 inside the standard envelope so
// clients never see a bare stack trace
func (m *LoggingMiddleware) Recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		m.logger.Errorf("Panic recovered on %s %s: %v", c.Request.Method, c.Request.URL.Path, recovered)

		c.AbortWithStatusJSON(http.StatusInternalServerError, models.APIResponse{
			Status:  "error",
			Code:    http.StatusInternalServerError,
			Message: "Internal server error",
			Error: &models.APIError{
				Type:    "InternalError",
				Details: "An unexpected error occurred",
			},
		})
	})
}
