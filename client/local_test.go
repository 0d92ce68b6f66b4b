package client

import (
	"context"
	"errors"
	"testing"

	"noticeboard-backend/dal"
	"noticeboard-backend/utils"
	"noticeboard-backend/models"
	"noticeboard-backend/repository"
	"noticeboard-backend/services"
	"noticeboard-backend/utils/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

// staticTokenIssuer hands out one fixed token and records revocations
type staticTokenIssuer struct {
	revoked int
}

func (*staticTokenIssuer) GenerateToken(admin *models.Admin) (string, error) {
	return "static-token", nil
}

func (*staticTokenIssuer) ValidateToken(token string) (*models.JWTClaims, error) {
	if token != "static-token" {
		return nil, errors.New("invalid token")
	}
	return &models.JWTClaims{AdminID: "ADMIN001"}, nil
}

func (s *staticTokenIssuer) RevokeToken(claims *models.JWTClaims) {
	s.revoked++
}

// LocalClientTestSuite runs the in-process data layer over the full service
// stack backed by the in-memory store
type LocalClientTestSuite struct {
	suite.Suite
	client Client
	repos  *repository.Repository
	tokens *staticTokenIssuer
	ctx    context.Context
}

func (suite *LocalClientTestSuite) SetupTest() {
	suite.ctx = context.Background()
	log := logger.NewLogger("error", "json")
	cfg := &models.Config{DynamoDBTablePrefix: "test", UseMockData: true}

	suite.repos = repository.NewRepository(dal.NewMemoryClient(log), cfg, log)
	suite.tokens = &staticTokenIssuer{}
	svc := services.NewService(suite.repos, suite.tokens, log)
	suite.client = New(cfg, svc, log)
}

func TestLocalClientTestSuite(t *testing.T) {
	suite.Run(t, new(LocalClientTestSuite))
}

// TestNewSelectsLocalClient tests the config switch
func (suite *LocalClientTestSuite) TestNewSelectsLocalClient() {
	_, ok := suite.client.(*LocalClient)
	assert.True(suite.T(), ok)
}

// TestLoginLogoutThroughClient tests that the data layer covers the auth
// operations: login returns the account context and logout revokes the token
func (suite *LocalClientTestSuite) TestLoginLogoutThroughClient() {
	hash, err := utils.HashPassword("password123")
	assert.NoError(suite.T(), err)
	err = suite.repos.Admin.Seed(suite.ctx, &models.Admin{
		ID:           "ADMIN001",
		Name:         "Acme Admin",
		Email:        "admin@acme.com",
		Role:         "superadmin",
		PasswordHash: hash,
	})
	assert.NoError(suite.T(), err)

	result, err := suite.client.Login(suite.ctx, "admin@acme.com", "password123")
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "static-token", result.Token)
	assert.Equal(suite.T(), "ADMIN001", result.ID)

	err = suite.client.Logout(suite.ctx)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), 1, suite.tokens.revoked)
}

// TestLoginBadPassword tests that a failed login surfaces as an error and
// leaves nothing to revoke
func (suite *LocalClientTestSuite) TestLoginBadPassword() {
	hash, _ := utils.HashPassword("password123")
	suite.repos.Admin.Seed(suite.ctx, &models.Admin{
		ID: "ADMIN001", Email: "admin@acme.com", PasswordHash: hash,
	})

	result, err := suite.client.Login(suite.ctx, "admin@acme.com", "wrong")
	assert.Nil(suite.T(), result)
	assert.Error(suite.T(), err)

	assert.NoError(suite.T(), suite.client.Logout(suite.ctx))
	assert.Equal(suite.T(), 0, suite.tokens.revoked)
}

// TestReadYourWrites tests that a list issued after a create observes it
func (suite *LocalClientTestSuite) TestReadYourWrites() {
	created, err := suite.client.CreateOrganization(suite.ctx, &models.Organization{Name: "Alpha Corp"})
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "ORG001", created.ID)

	orgs, err := suite.client.Organizations(suite.ctx)
	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), orgs, 1)
	assert.Equal(suite.T(), "Alpha Corp", orgs[0].Name)
}

// TestDeleteBoolean tests that delete reports success once and failure after
func (suite *LocalClientTestSuite) TestDeleteBoolean() {
	created, _ := suite.client.CreateOrganization(suite.ctx, &models.Organization{Name: "Alpha Corp"})

	assert.True(suite.T(), suite.client.DeleteOrganization(suite.ctx, created.ID))
	assert.False(suite.T(), suite.client.DeleteOrganization(suite.ctx, created.ID))
}

// TestMemberLifecycleThroughClient tests validated references end to end:
// members can only join organizations that exist
func (suite *LocalClientTestSuite) TestMemberLifecycleThroughClient() {
	_, err := suite.client.CreateMember(suite.ctx, &models.Member{Name: "John Smith", OrganizationID: "ORG999"})
	assert.Error(suite.T(), err)

	org, _ := suite.client.CreateOrganization(suite.ctx, &models.Organization{Name: "Alpha Corp"})
	member, err := suite.client.CreateMember(suite.ctx, &models.Member{Name: "John Smith", OrganizationID: org.ID})
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "Alpha Corp", member.Organization)

	members, err := suite.client.Members(suite.ctx, org.ID)
	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), members, 1)

	refreshed, err := suite.client.Organization(suite.ctx, org.ID)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), 1, refreshed.Members)
}
