package repository

import (
	"context"
	"time"

	"noticeboard-backend/models"
)

// OrganizationRepositoryInterface defines the contract for the organization repository
type OrganizationRepositoryInterface interface {
	List(ctx context.Context) ([]*models.Organization, error)
	GetByID(ctx context.Context, id string) (*models.Organization, error)
	Create(ctx context.Context, org *models.Organization) (*models.Organization, error)
	Update(ctx context.Context, id string, patch *models.OrganizationPatch) (*models.Organization, error)
	Delete(ctx context.Context, id string) error
	Seed(ctx context.Context, org *models.Organization) error
}

// MemberRepositoryInterface defines the contract for the member repository
type MemberRepositoryInterface interface {
	List(ctx context.Context, organizationID string) ([]*models.Member, error)
	GetByID(ctx context.Context, id string) (*models.Member, error)
	Create(ctx context.Context, member *models.Member) (*models.Member, error)
	Update(ctx context.Context, id string, patch *models.MemberPatch) (*models.Member, error)
	Delete(ctx context.Context, id string) error
	Seed(ctx context.Context, member *models.Member) error
}

// MessageRepositoryInterface defines the contract for the message repository
type MessageRepositoryInterface interface {
	List(ctx context.Context, organizationID string) ([]*models.Message, error)
	ListSince(ctx context.Context, organizationID string, cutoff time.Time) ([]*models.Message, error)
	GetByID(ctx context.Context, id string) (*models.Message, error)
	Create(ctx context.Context, message *models.Message) (*models.Message, error)
	Delete(ctx context.Context, id string) error
	Seed(ctx context.Context, message *models.Message) error
}

// ActivityRepositoryInterface defines the contract for the activity feed.
// The feed is append-only; nothing updates or deletes an entry.
type ActivityRepositoryInterface interface {
	List(ctx context.Context) ([]*models.Activity, error)
	Append(ctx context.Context, activity *models.Activity) (*models.Activity, error)
	Seed(ctx context.Context, activity *models.Activity) error
}

// AdminRepositoryInterface defines the contract for console accounts
type AdminRepositoryInterface interface {
	GetByID(ctx context.Context, id string) (*models.Admin, error)
	GetByEmail(ctx context.Context, email string) (*models.Admin, error)
	Update(ctx context.Context, id string, patch *models.AdminPatch) (*models.Admin, error)
	SetPassword(ctx context.Context, id, passwordHash string) error
	Seed(ctx context.Context, admin *models.Admin) error
}
