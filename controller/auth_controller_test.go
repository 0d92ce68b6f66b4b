package controller

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"noticeboard-backend/middelware"
	"noticeboard-backend/models"
	"noticeboard-backend/services"
	"noticeboard-backend/utils/logger"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// MockAuthService implements AuthServiceInterface for testing
type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Login(ctx context.Context, email, password string) (*models.LoginResult, error) {
	args := m.Called(ctx, email, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.LoginResult), args.Error(1)
}

func (m *MockAuthService) Logout(ctx context.Context, token string) error {
	args := m.Called(ctx, token)
	return args.Error(0)
}

func (m *MockAuthService) ChangePassword(ctx context.Context, adminID string, req *models.ChangePasswordRequest) error {
	args := m.Called(ctx, adminID, req)
	return args.Error(0)
}

func (m *MockAuthService) Profile(ctx context.Context, adminID string) (*models.Admin, error) {
	args := m.Called(ctx, adminID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Admin), args.Error(1)
}

func (m *MockAuthService) UpdateProfile(ctx context.Context, adminID string, patch *models.AdminPatch) (*models.Admin, error) {
	args := m.Called(ctx, adminID, patch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Admin), args.Error(1)
}

// AuthControllerTestSuite contains the test suite for AuthController
type AuthControllerTestSuite struct {
	suite.Suite
	authController *AuthController
	mockService    *MockAuthService
	jwtManager     *middelware.JWTManager
	ctx            context.Context
	router         *gin.Engine
}

func (suite *AuthControllerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.ctx = context.Background()
	suite.mockService = &MockAuthService{}

	log := logger.NewLogger("error", "json")
	cfg := &models.Config{
		AppName:      "noticeboard-test",
		JWTSecret:    "test-secret",
		JWTExpiresIn: time.Hour,
	}
	suite.jwtManager = middelware.NewJWTManager(cfg, log)
	suite.authController = NewAuthController(suite.ctx, suite.mockService, suite.jwtManager, log)

	suite.router = gin.New()
	suite.router.POST("/auth/login", suite.authController.Login)
}

func TestAuthControllerTestSuite(t *testing.T) {
	suite.Run(t, new(AuthControllerTestSuite))
}

// TestLoginSuccess tests that a login returns the token and account context
func (suite *AuthControllerTestSuite) TestLoginSuccess() {
	result := &models.LoginResult{
		Token:   "signed-token",
		ID:      "ADMIN002",
		Name:    "Acme Admin",
		Role:    "orgadmin",
		OrgID:   "ORG004",
		OrgName: "Acme Organization",
	}
	suite.mockService.On("Login", mock.Anything, "admin@acme.com", "password123").Return(result, nil)

	body, _ := json.Marshal(models.LoginRequest{Email: "admin@acme.com", Password: "password123"})
	req, _ := http.NewRequest(http.MethodPost, "/auth/login", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var response models.APIResponse
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "success", response.Status)
	assert.Equal(suite.T(), "Login successful", response.Message)

	data, ok := response.Data.(map[string]interface{})
	assert.True(suite.T(), ok)
	assert.Equal(suite.T(), "signed-token", data["token"])
	assert.Equal(suite.T(), "Acme Organization", data["orgName"])
}

// TestLoginBadCredentials tests the 401 envelope
func (suite *AuthControllerTestSuite) TestLoginBadCredentials() {
	suite.mockService.On("Login", mock.Anything, "admin@acme.com", "wrong").Return(nil, services.ErrBadCredentials)

	body, _ := json.Marshal(models.LoginRequest{Email: "admin@acme.com", Password: "wrong"})
	req, _ := http.NewRequest(http.MethodPost, "/auth/login", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusUnauthorized, w.Code)

	var response models.APIResponse
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "error", response.Status)
	assert.Equal(suite.T(), "Invalid email or password", response.Message)
	assert.Equal(suite.T(), "AuthenticationError", response.Error.Type)
}

// TestLoginMissingFields tests body validation before the service is called
func (suite *AuthControllerTestSuite) TestLoginMissingFields() {
	body, _ := json.Marshal(models.LoginRequest{Email: "admin@acme.com"})
	req, _ := http.NewRequest(http.MethodPost, "/auth/login", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
	suite.mockService.AssertNotCalled(suite.T(), "Login", mock.Anything, mock.Anything, mock.Anything)
}

// TestChangePassword tests that the handler passes the account id from the
// token claims, not from the request body
func (suite *AuthControllerTestSuite) TestChangePassword() {
	suite.mockService.On("ChangePassword", mock.Anything, "ADMIN002", mock.MatchedBy(func(r *models.ChangePasswordRequest) bool {
		return r.NewPassword == "newpassword1"
	})).Return(nil)

	body, _ := json.Marshal(models.ChangePasswordRequest{
		CurrentPassword: "password123",
		NewPassword:     "newpassword1",
		ConfirmPassword: "newpassword1",
	})
	req, _ := http.NewRequest(http.MethodPost, "/auth/change-password", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	suite.router.POST("/auth/change-password", func(c *gin.Context) {
		c.Set("jwt_claims", &models.JWTClaims{AdminID: "ADMIN002"})
		suite.authController.ChangePassword(c)
	})
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusOK, w.Code)
	suite.mockService.AssertExpectations(suite.T())
}

// TestChangePasswordWithoutClaims tests the misconfigured-route guard
func (suite *AuthControllerTestSuite) TestChangePasswordWithoutClaims() {
	body, _ := json.Marshal(models.ChangePasswordRequest{
		CurrentPassword: "password123",
		NewPassword:     "newpassword1",
		ConfirmPassword: "newpassword1",
	})
	req, _ := http.NewRequest(http.MethodPost, "/auth/change-password", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	suite.router.POST("/auth/change-password", suite.authController.ChangePassword)
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
	suite.mockService.AssertNotCalled(suite.T(), "ChangePassword", mock.Anything, mock.Anything, mock.Anything)
}

// TestLogoutRevokesToken tests that a revoked token no longer validates
func (suite *AuthControllerTestSuite) TestLogoutRevokesToken() {
	admin := &models.Admin{ID: "ADMIN002", Email: "admin@acme.com", Role: "orgadmin"}
	token, err := suite.jwtManager.GenerateToken(admin)
	assert.NoError(suite.T(), err)

	claims, err := suite.jwtManager.ValidateToken(token)
	assert.NoError(suite.T(), err)

	req, _ := http.NewRequest(http.MethodPost, "/auth/logout", nil)
	w := httptest.NewRecorder()

	suite.router.POST("/auth/logout", func(c *gin.Context) {
		c.Set("jwt_claims", claims)
		suite.authController.Logout(c)
	})
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	_, err = suite.jwtManager.ValidateToken(token)
	assert.Error(suite.T(), err)
	assert.Contains(suite.T(), err.Error(), "revoked")
}

// TestProfile tests the profile round trip with the hash kept out of the body
func (suite *AuthControllerTestSuite) TestProfile() {
	admin := &models.Admin{ID: "ADMIN002", Name: "Acme Admin", Email: "admin@acme.com", PasswordHash: "must-not-leak"}
	suite.mockService.On("Profile", mock.Anything, "ADMIN002").Return(admin, nil)

	req, _ := http.NewRequest(http.MethodGet, "/profile", nil)
	w := httptest.NewRecorder()

	suite.router.GET("/profile", func(c *gin.Context) {
		c.Set("jwt_claims", &models.JWTClaims{AdminID: "ADMIN002"})
		suite.authController.Profile(c)
	})
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusOK, w.Code)
	assert.NotContains(suite.T(), w.Body.String(), "must-not-leak")
}
