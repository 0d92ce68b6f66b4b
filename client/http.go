package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"sync"

	"noticeboard-backend/models"
	"noticeboard-backend/utils/logger"
)

// envelope mirrors models.APIResponse with the payload kept raw so it can be
// decoded into the caller's concrete type after the status check.
type envelope struct {
	Status  string           `json:"status"`
	Code    int              `json:"code"`
	Message string           `json:"message"`
	Data    json.RawMessage  `json:"data"`
	Error   *models.APIError `json:"error"`
}

// HTTPClient implements the data layer over the REST API. Every method
// normalizes failures to a zero value plus error, so callers never see a
// half-decoded payload.
type HTTPClient struct {
	baseURL    string
	httpClient *http.Client
	logger     logger.Logger

	mu    sync.RWMutex
	token string
}

func NewHTTPClient(cfg *models.Config, log logger.Logger) *HTTPClient {
	return &HTTPClient{
		baseURL:    cfg.APIBaseURL,
		httpClient: &http.Client{Timeout: cfg.HTTPTimeout},
		logger:     log,
	}
}

// SetToken stores the bearer token attached to subsequent requests. Pass the
// token from a successful /auth/login response.
func (c *HTTPClient) SetToken(token string) {
	c.mu.Lock()
	c.token = token
	c.mu.Unlock()
}

// Login authenticates against the API and remembers the returned token.
func (c *HTTPClient) Login(ctx context.Context, email, password string) (*models.LoginResult, error) {
	var result models.LoginResult
	body := models.LoginRequest{Email: email, Password: password}
	if err := c.do(ctx, http.MethodPost, "/auth/login", body, &result); err != nil {
		return nil, err
	}
	c.SetToken(result.Token)
	return &result, nil
}

// Logout revokes the stored token server-side and forgets it locally
func (c *HTTPClient) Logout(ctx context.Context) error {
	if err := c.do(ctx, http.MethodPost, "/auth/logout", nil, nil); err != nil {
		return err
	}
	c.SetToken("")
	return nil
}

func (c *HTTPClient) do(ctx context.Context, method, path string, body, out interface{}) error {
	var reqBody *bytes.Buffer
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reqBody = bytes.NewBuffer(encoded)
	} else {
		reqBody = bytes.NewBuffer(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	c.mu.RLock()
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
	c.mu.RUnlock()

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request to %s failed: %w", path, err)
	}
	defer resp.Body.Close()

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return fmt.Errorf("failed to decode response from %s: %w", path, err)
	}

	if env.Status != "success" {
		if env.Error != nil && env.Error.Details != "" {
			return fmt.Errorf("%s", env.Error.Details)
		}
		if env.Message != "" {
			return fmt.Errorf("%s", env.Message)
		}
		return fmt.Errorf("request to %s failed with status %d", path, resp.StatusCode)
	}

	if out != nil && len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return fmt.Errorf("failed to decode payload from %s: %w", path, err)
		}
	}
	return nil
}

func (c *HTTPClient) Organizations(ctx context.Context) ([]*models.Organization, error) {
	var orgs []*models.Organization
	if err := c.do(ctx, http.MethodGet, "/organizations", nil, &orgs); err != nil {
		return nil, err
	}
	return orgs, nil
}

func (c *HTTPClient) Organization(ctx context.Context, id string) (*models.Organization, error) {
	var org models.Organization
	if err := c.do(ctx, http.MethodGet, "/organizations/"+url.PathEscape(id), nil, &org); err != nil {
		return nil, err
	}
	return &org, nil
}

func (c *HTTPClient) CreateOrganization(ctx context.Context, org *models.Organization) (*models.Organization, error) {
	var created models.Organization
	if err := c.do(ctx, http.MethodPost, "/organizations", org, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (c *HTTPClient) UpdateOrganization(ctx context.Context, id string, patch *models.OrganizationPatch) (*models.Organization, error) {
	var updated models.Organization
	if err := c.do(ctx, http.MethodPut, "/organizations/"+url.PathEscape(id), patch, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (c *HTTPClient) DeleteOrganization(ctx context.Context, id string) bool {
	if err := c.do(ctx, http.MethodDelete, "/organizations/"+url.PathEscape(id), nil, nil); err != nil {
		c.logger.Warnf("Delete organization %s failed: %v", id, err)
		return false
	}
	return true
}

func (c *HTTPClient) Members(ctx context.Context, organizationID string) ([]*models.Member, error) {
	path := "/members"
	if organizationID != "" {
		path += "?organizationId=" + url.QueryEscape(organizationID)
	}
	var members []*models.Member
	if err := c.do(ctx, http.MethodGet, path, nil, &members); err != nil {
		return nil, err
	}
	return members, nil
}

func (c *HTTPClient) Member(ctx context.Context, id string) (*models.Member, error) {
	var member models.Member
	if err := c.do(ctx, http.MethodGet, "/members/"+url.PathEscape(id), nil, &member); err != nil {
		return nil, err
	}
	return &member, nil
}

func (c *HTTPClient) CreateMember(ctx context.Context, member *models.Member) (*models.Member, error) {
	var created models.Member
	if err := c.do(ctx, http.MethodPost, "/members", member, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (c *HTTPClient) UpdateMember(ctx context.Context, id string, patch *models.MemberPatch) (*models.Member, error) {
	var updated models.Member
	if err := c.do(ctx, http.MethodPut, "/members/"+url.PathEscape(id), patch, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (c *HTTPClient) DeleteMember(ctx context.Context, id string) bool {
	if err := c.do(ctx, http.MethodDelete, "/members/"+url.PathEscape(id), nil, nil); err != nil {
		c.logger.Warnf("Delete member %s failed: %v", id, err)
		return false
	}
	return true
}

func (c *HTTPClient) Messages(ctx context.Context, organizationID string) ([]*models.Message, error) {
	path := "/messages"
	if organizationID != "" {
		path += "?organizationId=" + url.QueryEscape(organizationID)
	}
	var messages []*models.Message
	if err := c.do(ctx, http.MethodGet, path, nil, &messages); err != nil {
		return nil, err
	}
	return messages, nil
}

func (c *HTTPClient) Message(ctx context.Context, id string) (*models.Message, error) {
	var message models.Message
	if err := c.do(ctx, http.MethodGet, "/messages/"+url.PathEscape(id), nil, &message); err != nil {
		return nil, err
	}
	return &message, nil
}

func (c *HTTPClient) SendMessage(ctx context.Context, message *models.Message) (*models.Message, error) {
	var sent models.Message
	if err := c.do(ctx, http.MethodPost, "/messages", message, &sent); err != nil {
		return nil, err
	}
	return &sent, nil
}

func (c *HTTPClient) DeleteMessage(ctx context.Context, id string) bool {
	if err := c.do(ctx, http.MethodDelete, "/messages/"+url.PathEscape(id), nil, nil); err != nil {
		c.logger.Warnf("Delete message %s failed: %v", id, err)
		return false
	}
	return true
}

func (c *HTTPClient) RecentMessages(ctx context.Context, organizationID, period string) (*models.MessageWindow, error) {
	query := url.Values{}
	if organizationID != "" {
		query.Set("organizationId", organizationID)
	}
	query.Set("period", period)
	var window models.MessageWindow
	if err := c.do(ctx, http.MethodGet, "/messages/recent?"+query.Encode(), nil, &window); err != nil {
		return nil, err
	}
	return &window, nil
}

func (c *HTTPClient) KPIs(ctx context.Context) ([]*models.KPI, error) {
	var kpis []*models.KPI
	if err := c.do(ctx, http.MethodGet, "/analytics/kpis", nil, &kpis); err != nil {
		return nil, err
	}
	return kpis, nil
}

func (c *HTTPClient) MessageVolume(ctx context.Context) ([]*models.MessageVolume, error) {
	var volume []*models.MessageVolume
	if err := c.do(ctx, http.MethodGet, "/analytics/message-volume", nil, &volume); err != nil {
		return nil, err
	}
	return volume, nil
}

func (c *HTTPClient) MessagesPerOrg(ctx context.Context) ([]*models.OrgMessageCount, error) {
	var counts []*models.OrgMessageCount
	if err := c.do(ctx, http.MethodGet, "/analytics/messages-per-org", nil, &counts); err != nil {
		return nil, err
	}
	return counts, nil
}

func (c *HTTPClient) Activities(ctx context.Context) ([]*models.Activity, error) {
	var activities []*models.Activity
	if err := c.do(ctx, http.MethodGet, "/analytics/activities", nil, &activities); err != nil {
		return nil, err
	}
	return activities, nil
}

func (c *HTTPClient) Stats(ctx context.Context, organizationID string) (*models.DashboardStats, error) {
	path := "/analytics/stats"
	if organizationID != "" {
		path += "?organizationId=" + url.QueryEscape(organizationID)
	}
	var stats models.DashboardStats
	if err := c.do(ctx, http.MethodGet, path, nil, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}
