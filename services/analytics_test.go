package services

import (
	"context"
	"testing"
	"time"

	"noticeboard-backend/dal"
	"noticeboard-backend/models"
	"noticeboard-backend/repository"
	"noticeboard-backend/utils/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

// AnalyticsServiceTestSuite runs the analytics service over real
// repositories backed by the in-memory store, with the clock pinned.
type AnalyticsServiceTestSuite struct {
	suite.Suite
	service *AnalyticsService
	repos   *repository.Repository
	ctx     context.Context
	now     time.Time
}

func (suite *AnalyticsServiceTestSuite) SetupTest() {
	suite.ctx = context.Background()
	suite.now = time.Date(2026, time.March, 18, 12, 0, 0, 0, time.UTC)

	log := logger.NewLogger("error", "json")
	cfg := &models.Config{DynamoDBTablePrefix: "test"}
	suite.repos = repository.NewRepository(dal.NewMemoryClient(log), cfg, log)

	suite.service = NewAnalyticsService(suite.repos.Organization, suite.repos.Member, suite.repos.Message, suite.repos.Activity, log)
	suite.service.now = func() time.Time { return suite.now }
}

func TestAnalyticsServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AnalyticsServiceTestSuite))
}

func (suite *AnalyticsServiceTestSuite) seedMessage(id, orgID string, sentAt time.Time) {
	err := suite.repos.Message.Seed(suite.ctx, &models.Message{
		ID:             id,
		OrganizationID: orgID,
		Type:           models.MessageTypeAnnouncement,
		Title:          "Notice " + id,
		Content:        "content",
		SentAt:         sentAt,
	})
	suite.Require().NoError(err)
}

func (suite *AnalyticsServiceTestSuite) seedFixtures() {
	suite.Require().NoError(suite.repos.Organization.Seed(suite.ctx, &models.Organization{ID: "ORG001", Name: "Alpha Corp"}))
	suite.Require().NoError(suite.repos.Organization.Seed(suite.ctx, &models.Organization{ID: "ORG002", Name: "Beta Corp"}))

	suite.Require().NoError(suite.repos.Member.Seed(suite.ctx, &models.Member{ID: "MEM001", Name: "Alice", OrganizationID: "ORG001", Status: models.MemberStatusActive}))
	suite.Require().NoError(suite.repos.Member.Seed(suite.ctx, &models.Member{ID: "MEM002", Name: "Bob", OrganizationID: "ORG001", Status: models.MemberStatusInactive}))
	suite.Require().NoError(suite.repos.Member.Seed(suite.ctx, &models.Member{ID: "MEM003", Name: "Carol", OrganizationID: "ORG002", Status: models.MemberStatusActive}))

	// Two today, one yesterday, one last month, one long gone
	suite.seedMessage("MSG001", "ORG001", suite.now.Add(-2*time.Hour))
	suite.seedMessage("MSG002", "ORG001", suite.now.Add(-4*time.Hour))
	suite.seedMessage("MSG003", "ORG002", suite.now.AddDate(0, 0, -1))
	suite.seedMessage("MSG004", "ORG001", suite.now.AddDate(0, 0, -20))
	suite.seedMessage("MSG005", "ORG002", suite.now.AddDate(0, 0, -300))
}

// TestKPIs tests the headline cards over a known data set
func (suite *AnalyticsServiceTestSuite) TestKPIs() {
	suite.seedFixtures()

	kpis, err := suite.service.KPIs(suite.ctx)

	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), kpis, 4)

	assert.Equal(suite.T(), "Total Organizations", kpis[0].Title)
	assert.Equal(suite.T(), "2", kpis[0].Value)

	assert.Equal(suite.T(), "Total Members", kpis[1].Title)
	assert.Equal(suite.T(), "3", kpis[1].Value)

	assert.Equal(suite.T(), "Messages Today", kpis[2].Title)
	assert.Equal(suite.T(), "2", kpis[2].Value)
	assert.Equal(suite.T(), "+100%", kpis[2].Change)

	assert.Equal(suite.T(), "Messages This Month", kpis[3].Title)
	assert.Equal(suite.T(), "3", kpis[3].Value)
}

// TestMessageVolume tests that the weekly chart has one bucket per day with
// today last
func (suite *AnalyticsServiceTestSuite) TestMessageVolume() {
	suite.seedFixtures()

	volume, err := suite.service.MessageVolume(suite.ctx)

	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), volume, 7)
	assert.Equal(suite.T(), suite.now.Format("Mon"), volume[6].Day)
	assert.Equal(suite.T(), 2, volume[6].Messages)
	assert.Equal(suite.T(), 1, volume[5].Messages)
	assert.Equal(suite.T(), 0, volume[0].Messages)
}

// TestMessagesPerOrg tests the per-organization ranking, busiest first
func (suite *AnalyticsServiceTestSuite) TestMessagesPerOrg() {
	suite.seedFixtures()

	perOrg, err := suite.service.MessagesPerOrg(suite.ctx)

	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), perOrg, 2)
	assert.Equal(suite.T(), "Alpha Corp", perOrg[0].Name)
	assert.Equal(suite.T(), 3, perOrg[0].Messages)
	assert.Equal(suite.T(), "Beta Corp", perOrg[1].Name)
	assert.Equal(suite.T(), 2, perOrg[1].Messages)
}

// TestActivitiesNewestFirst tests feed ordering and re-humanized ages
func (suite *AnalyticsServiceTestSuite) TestActivitiesNewestFirst() {
	suite.Require().NoError(suite.repos.Activity.Seed(suite.ctx, &models.Activity{
		ID:        "ACT001",
		Type:      models.ActivityTypeOrg,
		Text:      "Alpha Corp was created",
		Timestamp: suite.now.Add(-3 * time.Hour),
	}))
	suite.Require().NoError(suite.repos.Activity.Seed(suite.ctx, &models.Activity{
		ID:        "ACT002",
		Type:      models.ActivityTypeMessage,
		Text:      "New announcement sent by Alpha Corp",
		Timestamp: suite.now.Add(-5 * time.Minute),
	}))

	activities, err := suite.service.Activities(suite.ctx)

	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), activities, 2)
	assert.Equal(suite.T(), "ACT002", activities[0].ID)
	assert.Equal(suite.T(), "5 minutes ago", activities[0].Time)
	assert.Equal(suite.T(), "ACT001", activities[1].ID)
	assert.Equal(suite.T(), "3 hours ago", activities[1].Time)
}

// TestStats tests the per-organization headline block
func (suite *AnalyticsServiceTestSuite) TestStats() {
	suite.seedFixtures()

	stats, err := suite.service.Stats(suite.ctx, "ORG001")

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), 2, stats.TotalMembers)
	assert.Equal(suite.T(), 3, stats.TotalMessages)
	assert.Equal(suite.T(), 1, stats.ActiveUsers)
}

// TestSnapshotRefresh tests that Refresh recomputes even inside the TTL
func (suite *AnalyticsServiceTestSuite) TestSnapshotRefresh() {
	suite.Require().NoError(suite.repos.Organization.Seed(suite.ctx, &models.Organization{ID: "ORG001", Name: "Alpha Corp"}))

	kpis, err := suite.service.KPIs(suite.ctx)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "1", kpis[0].Value)

	// Still inside the TTL: the cached snapshot does not see the new org
	suite.Require().NoError(suite.repos.Organization.Seed(suite.ctx, &models.Organization{ID: "ORG002", Name: "Beta Corp"}))
	kpis, err = suite.service.KPIs(suite.ctx)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "1", kpis[0].Value)

	assert.NoError(suite.T(), suite.service.Refresh(suite.ctx))
	kpis, err = suite.service.KPIs(suite.ctx)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "2", kpis[0].Value)
}
