package client

import (
	"context"

	"noticeboard-backend/models"
	"noticeboard-backend/services"
	"noticeboard-backend/utils/logger"
)

// Client is the typed data layer consumed by frontends and tooling. Every
// getter returns a zero value together with the error on failure; the Delete
// methods report plain success so callers can branch without inspecting
// errors.
//
// Two implementations exist: LocalClient runs against the in-process services
// (mock mode), HTTPClient talks to a running API server. Which one New hands
// back is decided once, from config, at startup.
type Client interface {
	Login(ctx context.Context, email, password string) (*models.LoginResult, error)
	Logout(ctx context.Context) error

	Organizations(ctx context.Context) ([]*models.Organization, error)
	Organization(ctx context.Context, id string) (*models.Organization, error)
	CreateOrganization(ctx context.Context, org *models.Organization) (*models.Organization, error)
	UpdateOrganization(ctx context.Context, id string, patch *models.OrganizationPatch) (*models.Organization, error)
	DeleteOrganization(ctx context.Context, id string) bool

	Members(ctx context.Context, organizationID string) ([]*models.Member, error)
	Member(ctx context.Context, id string) (*models.Member, error)
	CreateMember(ctx context.Context, member *models.Member) (*models.Member, error)
	UpdateMember(ctx context.Context, id string, patch *models.MemberPatch) (*models.Member, error)
	DeleteMember(ctx context.Context, id string) bool

	Messages(ctx context.Context, organizationID string) ([]*models.Message, error)
	Message(ctx context.Context, id string) (*models.Message, error)
	SendMessage(ctx context.Context, message *models.Message) (*models.Message, error)
	DeleteMessage(ctx context.Context, id string) bool
	RecentMessages(ctx context.Context, organizationID, period string) (*models.MessageWindow, error)

	KPIs(ctx context.Context) ([]*models.KPI, error)
	MessageVolume(ctx context.Context) ([]*models.MessageVolume, error)
	MessagesPerOrg(ctx context.Context) ([]*models.OrgMessageCount, error)
	Activities(ctx context.Context) ([]*models.Activity, error)
	Stats(ctx context.Context, organizationID string) (*models.DashboardStats, error)
}

// New selects the data layer implementation from config. Mock mode keeps
// everything in-process; otherwise calls go over HTTP to APIBaseURL.
func New(cfg *models.Config, svc *services.Service, log logger.Logger) Client {
	if cfg.UseMockData {
		log.Info("Client data layer: in-process (mock data)")
		return NewLocalClient(svc, log)
	}
	log.Infof("Client data layer: HTTP against %s", cfg.APIBaseURL)
	return NewHTTPClient(cfg, log)
}
