package client

import (
	"context"
	"sync"

	"noticeboard-backend/models"
	"noticeboard-backend/services"
	"noticeboard-backend/utils/logger"
)

// LocalClient serves the data layer straight from the in-process services.
// Writes are visible to the next read in the same process.
type LocalClient struct {
	svc    *services.Service
	logger logger.Logger

	mu    sync.Mutex
	token string
}

func NewLocalClient(svc *services.Service, log logger.Logger) *LocalClient {
	return &LocalClient{svc: svc, logger: log}
}

// Login authenticates against the in-process auth service and keeps the
// token for Logout.
func (c *LocalClient) Login(ctx context.Context, email, password string) (*models.LoginResult, error) {
	result, err := c.svc.Auth.Login(ctx, email, password)
	if err != nil {
		return nil, err
	}
	c.mu.Lock()
	c.token = result.Token
	c.mu.Unlock()
	return result, nil
}

// Logout revokes the token from the last Login and forgets it
func (c *LocalClient) Logout(ctx context.Context) error {
	c.mu.Lock()
	token := c.token
	c.token = ""
	c.mu.Unlock()

	if token == "" {
		return nil
	}
	return c.svc.Auth.Logout(ctx, token)
}

func (c *LocalClient) Organizations(ctx context.Context) ([]*models.Organization, error) {
	return c.svc.Organization.List(ctx)
}

func (c *LocalClient) Organization(ctx context.Context, id string) (*models.Organization, error) {
	return c.svc.Organization.Get(ctx, id)
}

func (c *LocalClient) CreateOrganization(ctx context.Context, org *models.Organization) (*models.Organization, error) {
	return c.svc.Organization.Create(ctx, org)
}

func (c *LocalClient) UpdateOrganization(ctx context.Context, id string, patch *models.OrganizationPatch) (*models.Organization, error) {
	return c.svc.Organization.Update(ctx, id, patch)
}

func (c *LocalClient) DeleteOrganization(ctx context.Context, id string) bool {
	if err := c.svc.Organization.Delete(ctx, id); err != nil {
		c.logger.Warnf("Delete organization %s failed: %v", id, err)
		return false
	}
	return true
}

func (c *LocalClient) Members(ctx context.Context, organizationID string) ([]*models.Member, error) {
	return c.svc.Member.List(ctx, organizationID)
}

func (c *LocalClient) Member(ctx context.Context, id string) (*models.Member, error) {
	return c.svc.Member.Get(ctx, id)
}

func (c *LocalClient) CreateMember(ctx context.Context, member *models.Member) (*models.Member, error) {
	return c.svc.Member.Create(ctx, member)
}

func (c *LocalClient) UpdateMember(ctx context.Context, id string, patch *models.MemberPatch) (*models.Member, error) {
	return c.svc.Member.Update(ctx, id, patch)
}

func (c *LocalClient) DeleteMember(ctx context.Context, id string) bool {
	if err := c.svc.Member.Delete(ctx, id); err != nil {
		c.logger.Warnf("Delete member %s failed: %v", id, err)
		return false
	}
	return true
}

func (c *LocalClient) Messages(ctx context.Context, organizationID string) ([]*models.Message, error) {
	return c.svc.Message.List(ctx, organizationID)
}

func (c *LocalClient) Message(ctx context.Context, id string) (*models.Message, error) {
	return c.svc.Message.Get(ctx, id)
}

func (c *LocalClient) SendMessage(ctx context.Context, message *models.Message) (*models.Message, error) {
	return c.svc.Message.Send(ctx, message)
}

func (c *LocalClient) DeleteMessage(ctx context.Context, id string) bool {
	if err := c.svc.Message.Delete(ctx, id); err != nil {
		c.logger.Warnf("Delete message %s failed: %v", id, err)
		return false
	}
	return true
}

func (c *LocalClient) RecentMessages(ctx context.Context, organizationID, period string) (*models.MessageWindow, error) {
	return c.svc.Message.Recent(ctx, organizationID, period)
}

func (c *LocalClient) KPIs(ctx context.Context) ([]*models.KPI, error) {
	return c.svc.Analytics.KPIs(ctx)
}

func (c *LocalClient) MessageVolume(ctx context.Context) ([]*models.MessageVolume, error) {
	return c.svc.Analytics.MessageVolume(ctx)
}

func (c *LocalClient) MessagesPerOrg(ctx context.Context) ([]*models.OrgMessageCount, error) {
	return c.svc.Analytics.MessagesPerOrg(ctx)
}

func (c *LocalClient) Activities(ctx context.Context) ([]*models.Activity, error) {
	return c.svc.Analytics.Activities(ctx)
}

func (c *LocalClient) Stats(ctx context.Context, organizationID string) (*models.DashboardStats, error) {
	return c.svc.Analytics.Stats(ctx, organizationID)
}
