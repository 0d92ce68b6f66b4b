package middelware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"noticeboard-backend/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

// CORSMiddlewareTestSuite exercises the origin rules over a real router
type CORSMiddlewareTestSuite struct {
	suite.Suite
	router *gin.Engine
}

func (suite *CORSMiddlewareTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	cfg := &models.Config{CORSOrigins: []string{
		"https://console.noticeboard.example",
		"*.preview.noticeboard.example",
	}}

	suite.router = gin.New()
	suite.router.Use(NewCORSMiddleware(cfg).CORS())
	suite.router.GET("/organizations", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
}

func TestCORSMiddlewareTestSuite(t *testing.T) {
	suite.Run(t, new(CORSMiddlewareTestSuite))
}

func (suite *CORSMiddlewareTestSuite) request(method, origin string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, "/organizations", nil)
	if origin != "" {
		req.Header.Set("Origin", origin)
	}
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

// TestAllowedOriginEchoed tests that a configured origin comes back verbatim
func (suite *CORSMiddlewareTestSuite) TestAllowedOriginEchoed() {
	w := suite.request(http.MethodGet, "https://console.noticeboard.example")

	assert.Equal(suite.T(), http.StatusOK, w.Code)
	assert.Equal(suite.T(), "https://console.noticeboard.example", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(suite.T(), "Origin", w.Header().Get("Vary"))
}

// TestSubdomainWildcard tests the *.domain form
func (suite *CORSMiddlewareTestSuite) TestSubdomainWildcard() {
	w := suite.request(http.MethodGet, "https://pr42.preview.noticeboard.example")

	assert.Equal(suite.T(), "https://pr42.preview.noticeboard.example", w.Header().Get("Access-Control-Allow-Origin"))
}

// TestUnknownOriginGetsNoHeader tests that unlisted origins are not admitted
func (suite *CORSMiddlewareTestSuite) TestUnknownOriginGetsNoHeader() {
	w := suite.request(http.MethodGet, "https://evil.example")

	assert.Equal(suite.T(), http.StatusOK, w.Code)
	assert.Empty(suite.T(), w.Header().Get("Access-Control-Allow-Origin"))
}

// TestPreflightShortCircuits tests that OPTIONS never reaches the handler
func (suite *CORSMiddlewareTestSuite) TestPreflightShortCircuits() {
	w := suite.request(http.MethodOptions, "https://console.noticeboard.example")

	assert.Equal(suite.T(), http.StatusNoContent, w.Code)
	assert.Contains(suite.T(), w.Header().Get("Access-Control-Allow-Headers"), "Authorization")
	assert.Empty(suite.T(), w.Body.String())
}
