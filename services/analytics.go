package services

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"noticeboard-backend/models"
	"noticeboard-backend/repository"
	"noticeboard-backend/utils"
	"noticeboard-backend/utils/logger"
)

// snapshotTTL is how long a cached analytics snapshot stays fresh between
// worker refreshes.
const snapshotTTL = 5 * time.Minute

// AnalyticsService computes dashboard aggregates from the live collections.
// A full recompute is cheap at this scale, but results are cached in a
// snapshot so the read endpoints do not rescan on every request; the snapshot
// worker refreshes it on a schedule.
type AnalyticsService struct {
	organizationRepo repository.OrganizationRepositoryInterface
	memberRepo       repository.MemberRepositoryInterface
	messageRepo      repository.MessageRepositoryInterface
	activityRepo     repository.ActivityRepositoryInterface
	logger           logger.Logger

	mu       sync.RWMutex
	snapshot *models.AnalyticsSnapshot

	now func() time.Time
}

func NewAnalyticsService(organizationRepo repository.OrganizationRepositoryInterface, memberRepo repository.MemberRepositoryInterface, messageRepo repository.MessageRepositoryInterface, activityRepo repository.ActivityRepositoryInterface, log logger.Logger) *AnalyticsService {
	return &AnalyticsService{
		organizationRepo: organizationRepo,
		memberRepo:       memberRepo,
		messageRepo:      messageRepo,
		activityRepo:     activityRepo,
		logger:           log,
		now:              time.Now,
	}
}

func (s *AnalyticsService) KPIs(ctx context.Context) ([]*models.KPI, error) {
	snap, err := s.currentSnapshot(ctx)
	if err != nil {
		return nil, err
	}
	return snap.KPIs, nil
}

func (s *AnalyticsService) MessageVolume(ctx context.Context) ([]*models.MessageVolume, error) {
	snap, err := s.currentSnapshot(ctx)
	if err != nil {
		return nil, err
	}
	return snap.MessageVolume, nil
}

func (s *AnalyticsService) MessagesPerOrg(ctx context.Context) ([]*models.OrgMessageCount, error) {
	snap, err := s.currentSnapshot(ctx)
	if err != nil {
		return nil, err
	}
	return snap.PerOrg, nil
}

// Activities returns the feed newest-first with freshly humanized ages
func (s *AnalyticsService) Activities(ctx context.Context) ([]*models.Activity, error) {
	activities, err := s.activityRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	now := s.now()
	out := make([]*models.Activity, len(activities))
	for i, a := range activities {
		entry := *a
		entry.Time = utils.HumanizeSince(entry.Timestamp, now)
		out[len(activities)-1-i] = &entry
	}
	return out, nil
}

// Stats is the org console headline block
func (s *AnalyticsService) Stats(ctx context.Context, organizationID string) (*models.DashboardStats, error) {
	members, err := s.memberRepo.List(ctx, organizationID)
	if err != nil {
		return nil, err
	}
	messages, err := s.messageRepo.List(ctx, organizationID)
	if err != nil {
		return nil, err
	}

	active := 0
	for _, m := range members {
		if m.Status == models.MemberStatusActive {
			active++
		}
	}

	return &models.DashboardStats{
		TotalMembers:  len(members),
		TotalMessages: len(messages),
		ActiveUsers:   active,
	}, nil
}

// Refresh recomputes the snapshot unconditionally. Called by the worker.
func (s *AnalyticsService) Refresh(ctx context.Context) error {
	snap, err := s.compute(ctx)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.snapshot = snap
	s.mu.Unlock()

	s.logger.Debugf("Analytics snapshot refreshed at %s", snap.ComputedAt.Format(time.RFC3339))
	return nil
}

// currentSnapshot serves the cached snapshot while fresh and recomputes
// inline once it goes stale.
func (s *AnalyticsService) currentSnapshot(ctx context.Context) (*models.AnalyticsSnapshot, error) {
	s.mu.RLock()
	snap := s.snapshot
	s.mu.RUnlock()

	if snap != nil && s.now().Sub(snap.ComputedAt) < snapshotTTL {
		return snap, nil
	}

	if err := s.Refresh(ctx); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshot, nil
}

func (s *AnalyticsService) compute(ctx context.Context) (*models.AnalyticsSnapshot, error) {
	orgs, err := s.organizationRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	members, err := s.memberRepo.List(ctx, "")
	if err != nil {
		return nil, err
	}
	messages, err := s.messageRepo.List(ctx, "")
	if err != nil {
		return nil, err
	}

	now := s.now()
	startOfDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	startOfMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	today, yesterday := 0, 0
	thisMonth, lastMonth := 0, 0
	for _, m := range messages {
		switch {
		case !m.SentAt.Before(startOfDay):
			today++
		case !m.SentAt.Before(startOfDay.AddDate(0, 0, -1)):
			yesterday++
		}
		switch {
		case !m.SentAt.Before(startOfMonth):
			thisMonth++
		case !m.SentAt.Before(startOfMonth.AddDate(0, -1, 0)):
			lastMonth++
		}
	}

	kpis := []*models.KPI{
		{Title: "Total Organizations", Value: fmt.Sprintf("%d", len(orgs)), Change: percentChange(len(orgs), len(orgs)), Icon: "Building2"},
		{Title: "Total Members", Value: fmt.Sprintf("%d", len(members)), Change: percentChange(len(members), len(members)), Icon: "Users"},
		{Title: "Messages Today", Value: fmt.Sprintf("%d", today), Change: percentChange(today, yesterday), Icon: "MessageSquare"},
		{Title: "Messages This Month", Value: fmt.Sprintf("%d", thisMonth), Change: percentChange(thisMonth, lastMonth), Icon: "TrendingUp"},
	}

	// Weekly volume: one bucket per day, last seven days ending today
	volume := make([]*models.MessageVolume, 7)
	buckets := make(map[string]*models.MessageVolume, 7)
	for i := 6; i >= 0; i-- {
		day := now.AddDate(0, 0, -i)
		v := &models.MessageVolume{Day: day.Format("Mon")}
		volume[6-i] = v
		buckets[day.Format("2006-01-02")] = v
	}
	for _, m := range messages {
		if v, ok := buckets[m.SentAt.Format("2006-01-02")]; ok {
			v.Messages++
		}
	}

	perOrg := make([]*models.OrgMessageCount, 0, len(orgs))
	for _, org := range orgs {
		count := 0
		for _, m := range messages {
			if m.OrganizationID == org.ID {
				count++
			}
		}
		perOrg = append(perOrg, &models.OrgMessageCount{Name: org.Name, Messages: count})
	}
	sort.SliceStable(perOrg, func(i, j int) bool { return perOrg[i].Messages > perOrg[j].Messages })

	return &models.AnalyticsSnapshot{
		KPIs:          kpis,
		MessageVolume: volume,
		PerOrg:        perOrg,
		ComputedAt:    now,
	}, nil
}

// percentChange renders a pre-formatted change string for a KPI card
func percentChange(current, previous int) string {
	if previous == 0 {
		if current == 0 {
			return "+0%"
		}
		return "+100%"
	}
	change := float64(current-previous) / float64(previous) * 100
	return fmt.Sprintf("%+.0f%%", change)
}
