package infrastructure

import (
	"context"
	_ "embed"
	"encoding/json"
	"fmt"
	"time"

	"noticeboard-backend/models"
	"noticeboard-backend/repository"
	"noticeboard-backend/utils"
	"noticeboard-backend/utils/logger"

	"github.com/tidwall/gjson"
)

//go:embed seed.json
var fixtures []byte

// Seeder loads the demo fixtures into the repositories. It backs the mock
// data mode: the seeded collections are what the consoles show before anyone
// creates real data.
type Seeder struct {
	repos  *repository.Repository
	logger logger.Logger
	now    func() time.Time
}

func NewSeeder(repos *repository.Repository, log logger.Logger) *Seeder {
	return &Seeder{
		repos:  repos,
		logger: log,
		now:    time.Now,
	}
}

// Seed loads every fixture collection. Relative ages in the fixture file
// (hoursAgo, minutesAgo) are resolved against the current clock so the demo
// data always looks recent.
func (s *Seeder) Seed(ctx context.Context) error {
	if err := s.seedOrganizations(ctx); err != nil {
		return err
	}
	if err := s.seedMembers(ctx); err != nil {
		return err
	}
	if err := s.seedMessages(ctx); err != nil {
		return err
	}
	if err := s.seedActivities(ctx); err != nil {
		return err
	}
	if err := s.seedAdmins(ctx); err != nil {
		return err
	}

	s.logger.Info("Fixture data seeded")
	return nil
}

func (s *Seeder) seedOrganizations(ctx context.Context) error {
	for _, raw := range gjson.GetBytes(fixtures, "organizations").Array() {
		var org models.Organization
		if err := json.Unmarshal([]byte(raw.Raw), &org); err != nil {
			return fmt.Errorf("bad organization fixture: %w", err)
		}
		if err := s.repos.Organization.Seed(ctx, &org); err != nil {
			return err
		}
	}
	return nil
}

func (s *Seeder) seedMembers(ctx context.Context) error {
	for _, raw := range gjson.GetBytes(fixtures, "members").Array() {
		var member models.Member
		if err := json.Unmarshal([]byte(raw.Raw), &member); err != nil {
			return fmt.Errorf("bad member fixture: %w", err)
		}
		if err := s.repos.Member.Seed(ctx, &member); err != nil {
			return err
		}
	}
	return nil
}

func (s *Seeder) seedMessages(ctx context.Context) error {
	now := s.now()
	for _, raw := range gjson.GetBytes(fixtures, "messages").Array() {
		var message models.Message
		if err := json.Unmarshal([]byte(raw.Raw), &message); err != nil {
			return fmt.Errorf("bad message fixture: %w", err)
		}
		message.SentAt = now.Add(-time.Duration(raw.Get("hoursAgo").Int()) * time.Hour)
		if err := s.repos.Message.Seed(ctx, &message); err != nil {
			return err
		}
	}
	return nil
}

func (s *Seeder) seedActivities(ctx context.Context) error {
	now := s.now()
	for _, raw := range gjson.GetBytes(fixtures, "activities").Array() {
		activity := models.Activity{
			ID:        raw.Get("id").String(),
			Type:      models.ActivityType(raw.Get("type").String()),
			Text:      raw.Get("text").String(),
			Timestamp: now.Add(-time.Duration(raw.Get("minutesAgo").Int()) * time.Minute),
		}
		activity.Time = utils.HumanizeSince(activity.Timestamp, now)
		if err := s.repos.Activity.Seed(ctx, &activity); err != nil {
			return err
		}
	}
	return nil
}

// seedAdmins hashes the fixture passwords on the way in; the plaintext only
// ever lives in the fixture file.
func (s *Seeder) seedAdmins(ctx context.Context) error {
	for _, raw := range gjson.GetBytes(fixtures, "admins").Array() {
		hash, err := utils.HashPassword(raw.Get("password").String())
		if err != nil {
			return fmt.Errorf("failed to hash fixture password: %w", err)
		}

		admin := models.Admin{
			ID:             raw.Get("id").String(),
			Name:           raw.Get("name").String(),
			Email:          raw.Get("email").String(),
			Role:           raw.Get("role").String(),
			OrganizationID: raw.Get("orgId").String(),
			PasswordHash:   hash,
		}
		if err := s.repos.Admin.Seed(ctx, &admin); err != nil {
			return err
		}
	}
	return nil
}
