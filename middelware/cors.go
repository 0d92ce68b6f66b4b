package middelware

import (
	"net/http"
	"strings"

	"noticeboard-backend/models"

	"github.com/gin-gonic/gin"
)

// CORSMiddleware lets the browser consoles call the API from their own
// origins. Allowed origins come from config; "*" opens the API up (dev only)
// and "*.domain" admits every subdomain.
type CORSMiddleware struct {
	exact    map[string]bool
	suffixes []string
	any      bool
}

func NewCORSMiddleware(cfg *models.Config) *CORSMiddleware {
	m := &CORSMiddleware{exact: make(map[string]bool)}
	for _, origin := range cfg.CORSOrigins {
		switch {
		case origin == "*":
			m.any = true
		case strings.HasPrefix(origin, "*."):
			m.suffixes = append(m.suffixes, origin[1:])
		default:
			m.exact[origin] = true
		}
	}
	return m
}

// CORS answers preflights and stamps the response headers for allowed origins
func (m *CORSMiddleware) CORS() gin.HandlerFunc {
	return func(c *gin.Context) {
		origin := c.Request.Header.Get("Origin")
		if origin != "" && m.allows(origin) {
			c.Header("Access-Control-Allow-Origin", origin)
			c.Header("Access-Control-Allow-Credentials", "true")
			c.Header("Vary", "Origin")
		}

		if c.Request.Method == http.MethodOptions {
			c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
			c.Header("Access-Control-Allow-Headers", "Authorization, Content-Type")
			c.Header("Access-Control-Max-Age", "86400")
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}

func (m *CORSMiddleware) allows(origin string) bool {
	if m.any || m.exact[origin] {
		return true
	}
	for _, suffix := range m.suffixes {
		if strings.HasSuffix(origin, suffix) {
			return true
		}
	}
	return false
}
