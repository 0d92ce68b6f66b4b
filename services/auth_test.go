package services

import (
	"context"
	"errors"
	"testing"

	"noticeboard-backend/models"
	"noticeboard-backend/repository"
	"noticeboard-backend/utils"
	"noticeboard-backend/utils/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// MockAdminRepository implements AdminRepositoryInterface for testing
type MockAdminRepository struct {
	mock.Mock
}

func (m *MockAdminRepository) GetByID(ctx context.Context, id string) (*models.Admin, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Admin), args.Error(1)
}

func (m *MockAdminRepository) GetByEmail(ctx context.Context, email string) (*models.Admin, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Admin), args.Error(1)
}

func (m *MockAdminRepository) Update(ctx context.Context, id string, patch *models.AdminPatch) (*models.Admin, error) {
	args := m.Called(ctx, id, patch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Admin), args.Error(1)
}

func (m *MockAdminRepository) SetPassword(ctx context.Context, id, passwordHash string) error {
	args := m.Called(ctx, id, passwordHash)
	return args.Error(0)
}

func (m *MockAdminRepository) Seed(ctx context.Context, admin *models.Admin) error {
	args := m.Called(ctx, admin)
	return args.Error(0)
}

// MockTokenIssuer implements TokenIssuer for testing
type MockTokenIssuer struct {
	mock.Mock
}

func (m *MockTokenIssuer) GenerateToken(admin *models.Admin) (string, error) {
	args := m.Called(admin)
	return args.String(0), args.Error(1)
}

func (m *MockTokenIssuer) ValidateToken(token string) (*models.JWTClaims, error) {
	args := m.Called(token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.JWTClaims), args.Error(1)
}

func (m *MockTokenIssuer) RevokeToken(claims *models.JWTClaims) {
	m.Called(claims)
}

// AuthServiceTestSuite contains the test suite for AuthService
type AuthServiceTestSuite struct {
	suite.Suite
	service   *AuthService
	adminRepo *MockAdminRepository
	orgRepo   *MockMemberOrgRepository
	tokens    *MockTokenIssuer
	ctx       context.Context
}

func (suite *AuthServiceTestSuite) SetupTest() {
	suite.ctx = context.Background()
	suite.adminRepo = &MockAdminRepository{}
	suite.orgRepo = &MockMemberOrgRepository{}
	suite.tokens = &MockTokenIssuer{}

	suite.service = NewAuthService(suite.adminRepo, suite.orgRepo, suite.tokens, logger.NewLogger("error", "json"))
}

func TestAuthServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AuthServiceTestSuite))
}

func (suite *AuthServiceTestSuite) hashOf(password string) string {
	hash, err := utils.HashPassword(password)
	suite.Require().NoError(err)
	return hash
}

// TestLoginSuccess tests a full login: credentials verified, token minted,
// organization name resolved for the console
func (suite *AuthServiceTestSuite) TestLoginSuccess() {
	admin := &models.Admin{
		ID:             "ADMIN002",
		Name:           "Acme Admin",
		Email:          "admin@acme.com",
		Role:           "orgadmin",
		OrganizationID: "ORG004",
		PasswordHash:   suite.hashOf("password123"),
	}

	suite.adminRepo.On("GetByEmail", suite.ctx, "admin@acme.com").Return(admin, nil)
	suite.tokens.On("GenerateToken", admin).Return("signed-token", nil)
	suite.orgRepo.On("GetByID", suite.ctx, "ORG004").Return(&models.Organization{ID: "ORG004", Name: "Acme Organization"}, nil)

	result, err := suite.service.Login(suite.ctx, "admin@acme.com", "password123")

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "signed-token", result.Token)
	assert.Equal(suite.T(), "ADMIN002", result.ID)
	assert.Equal(suite.T(), "orgadmin", result.Role)
	assert.Equal(suite.T(), "ORG004", result.OrgID)
	assert.Equal(suite.T(), "Acme Organization", result.OrgName)
}

// TestLoginSuperadminHasNoOrganization tests that the platform account logs
// in without an organization lookup
func (suite *AuthServiceTestSuite) TestLoginSuperadminHasNoOrganization() {
	admin := &models.Admin{
		ID:           "ADMIN001",
		Name:         "Super Admin",
		Email:        "admin@superadmin.com",
		Role:         "superadmin",
		PasswordHash: suite.hashOf("admin123"),
	}

	suite.adminRepo.On("GetByEmail", suite.ctx, "admin@superadmin.com").Return(admin, nil)
	suite.tokens.On("GenerateToken", admin).Return("signed-token", nil)

	result, err := suite.service.Login(suite.ctx, "admin@superadmin.com", "admin123")

	assert.NoError(suite.T(), err)
	assert.Empty(suite.T(), result.OrgID)
	assert.Empty(suite.T(), result.OrgName)
	suite.orgRepo.AssertNotCalled(suite.T(), "GetByID", mock.Anything, mock.Anything)
}

// TestLoginUnknownEmail tests that an unknown account reads as bad
// credentials, indistinguishable from a wrong password
func (suite *AuthServiceTestSuite) TestLoginUnknownEmail() {
	suite.adminRepo.On("GetByEmail", suite.ctx, "nobody@example.com").Return(nil, repository.ErrNotFound)

	result, err := suite.service.Login(suite.ctx, "nobody@example.com", "whatever")

	assert.Nil(suite.T(), result)
	assert.True(suite.T(), errors.Is(err, ErrBadCredentials))
}

// TestLoginWrongPassword tests the wrong-password path
func (suite *AuthServiceTestSuite) TestLoginWrongPassword() {
	admin := &models.Admin{
		ID:           "ADMIN002",
		Email:        "admin@acme.com",
		PasswordHash: suite.hashOf("password123"),
	}

	suite.adminRepo.On("GetByEmail", suite.ctx, "admin@acme.com").Return(admin, nil)

	result, err := suite.service.Login(suite.ctx, "admin@acme.com", "wrong-password")

	assert.Nil(suite.T(), result)
	assert.True(suite.T(), errors.Is(err, ErrBadCredentials))
	suite.tokens.AssertNotCalled(suite.T(), "GenerateToken", mock.Anything)
}

// TestLogoutRevokesValidToken tests that logout validates and then revokes
func (suite *AuthServiceTestSuite) TestLogoutRevokesValidToken() {
	claims := &models.JWTClaims{AdminID: "ADMIN002"}
	suite.tokens.On("ValidateToken", "signed-token").Return(claims, nil)
	suite.tokens.On("RevokeToken", claims).Return()

	err := suite.service.Logout(suite.ctx, "signed-token")

	assert.NoError(suite.T(), err)
	suite.tokens.AssertCalled(suite.T(), "RevokeToken", claims)
}

// TestLogoutInvalidToken tests that a token that fails validation is never
// revoked
func (suite *AuthServiceTestSuite) TestLogoutInvalidToken() {
	suite.tokens.On("ValidateToken", "garbage").Return(nil, errors.New("invalid token"))

	err := suite.service.Logout(suite.ctx, "garbage")

	assert.True(suite.T(), errors.Is(err, ErrBadCredentials))
	suite.tokens.AssertNotCalled(suite.T(), "RevokeToken", mock.Anything)
}

// TestChangePasswordMismatchedConfirmation tests that the confirmation check
// runs before any store access
func (suite *AuthServiceTestSuite) TestChangePasswordMismatchedConfirmation() {
	err := suite.service.ChangePassword(suite.ctx, "ADMIN002", &models.ChangePasswordRequest{
		CurrentPassword: "password123",
		NewPassword:     "newpassword1",
		ConfirmPassword: "different1",
	})

	var verr *ValidationError
	assert.True(suite.T(), errors.As(err, &verr))
	assert.Equal(suite.T(), "confirmPassword", verr.Field)
	suite.adminRepo.AssertNotCalled(suite.T(), "GetByID", mock.Anything, mock.Anything)
}

// TestChangePasswordTooShort tests the length rule, also before store access
func (suite *AuthServiceTestSuite) TestChangePasswordTooShort() {
	err := suite.service.ChangePassword(suite.ctx, "ADMIN002", &models.ChangePasswordRequest{
		CurrentPassword: "password123",
		NewPassword:     "short",
		ConfirmPassword: "short",
	})

	var verr *ValidationError
	assert.True(suite.T(), errors.As(err, &verr))
	assert.Equal(suite.T(), "newPassword", verr.Field)
	suite.adminRepo.AssertNotCalled(suite.T(), "GetByID", mock.Anything, mock.Anything)
}

// TestChangePasswordWrongCurrent tests that a wrong current password is a
// credential failure and nothing is written
func (suite *AuthServiceTestSuite) TestChangePasswordWrongCurrent() {
	admin := &models.Admin{ID: "ADMIN002", PasswordHash: suite.hashOf("password123")}
	suite.adminRepo.On("GetByID", suite.ctx, "ADMIN002").Return(admin, nil)

	err := suite.service.ChangePassword(suite.ctx, "ADMIN002", &models.ChangePasswordRequest{
		CurrentPassword: "wrong-password",
		NewPassword:     "newpassword1",
		ConfirmPassword: "newpassword1",
	})

	assert.True(suite.T(), errors.Is(err, ErrBadCredentials))
	suite.adminRepo.AssertNotCalled(suite.T(), "SetPassword", mock.Anything, mock.Anything, mock.Anything)
}

// TestChangePasswordSuccess tests that the stored hash verifies against the
// new password
func (suite *AuthServiceTestSuite) TestChangePasswordSuccess() {
	admin := &models.Admin{ID: "ADMIN002", PasswordHash: suite.hashOf("password123")}
	suite.adminRepo.On("GetByID", suite.ctx, "ADMIN002").Return(admin, nil)
	suite.adminRepo.On("SetPassword", suite.ctx, "ADMIN002", mock.MatchedBy(func(hash string) bool {
		return utils.CheckPassword(hash, "newpassword1")
	})).Return(nil)

	err := suite.service.ChangePassword(suite.ctx, "ADMIN002", &models.ChangePasswordRequest{
		CurrentPassword: "password123",
		NewPassword:     "newpassword1",
		ConfirmPassword: "newpassword1",
	})

	assert.NoError(suite.T(), err)
	suite.adminRepo.AssertExpectations(suite.T())
}
