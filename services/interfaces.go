package services

import (
	"context"

	"noticeboard-backend/models"
)

// OrganizationServiceInterface defines the contract for organization operations
type OrganizationServiceInterface interface {
	List(ctx context.Context) ([]*models.Organization, error)
	Get(ctx context.Context, id string) (*models.Organization, error)
	Create(ctx context.Context, org *models.Organization) (*models.Organization, error)
	Update(ctx context.Context, id string, patch *models.OrganizationPatch) (*models.Organization, error)
	Delete(ctx context.Context, id string) error
	GetSettings(ctx context.Context, orgID string) (*models.OrgSettings, error)
	UpdateSettings(ctx context.Context, orgID string, settings *models.OrgSettings) error
}

// MemberServiceInterface defines the contract for member operations
type MemberServiceInterface interface {
	List(ctx context.Context, organizationID string) ([]*models.Member, error)
	Get(ctx context.Context, id string) (*models.Member, error)
	Create(ctx context.Context, member *models.Member) (*models.Member, error)
	Update(ctx context.Context, id string, patch *models.MemberPatch) (*models.Member, error)
	Delete(ctx context.Context, id string) error
}

// MessageServiceInterface defines the contract for message operations
type MessageServiceInterface interface {
	List(ctx context.Context, organizationID string) ([]*models.Message, error)
	Get(ctx context.Context, id string) (*models.Message, error)
	Send(ctx context.Context, message *models.Message) (*models.Message, error)
	Delete(ctx context.Context, id string) error
	Recent(ctx context.Context, organizationID, period string) (*models.MessageWindow, error)
}

// AnalyticsServiceInterface defines the contract for dashboard aggregates
type AnalyticsServiceInterface interface {
	KPIs(ctx context.Context) ([]*models.KPI, error)
	MessageVolume(ctx context.Context) ([]*models.MessageVolume, error)
	MessagesPerOrg(ctx context.Context) ([]*models.OrgMessageCount, error)
	Activities(ctx context.Context) ([]*models.Activity, error)
	Stats(ctx context.Context, organizationID string) (*models.DashboardStats, error)
	Refresh(ctx context.Context) error
}

// AuthServiceInterface defines the contract for login, logout, profile and
// password operations
type AuthServiceInterface interface {
	Login(ctx context.Context, email, password string) (*models.LoginResult, error)
	Logout(ctx context.Context, token string) error
	ChangePassword(ctx context.Context, adminID string, req *models.ChangePasswordRequest) error
	Profile(ctx context.Context, adminID string) (*models.Admin, error)
	UpdateProfile(ctx context.Context, adminID string, patch *models.AdminPatch) (*models.Admin, error)
}

// TokenIssuer mints, validates and revokes API tokens for authenticated
// accounts. Implemented by the JWT manager in middelware.
type TokenIssuer interface {
	GenerateToken(admin *models.Admin) (string, error)
	ValidateToken(token string) (*models.JWTClaims, error)
	RevokeToken(claims *models.JWTClaims)
}
