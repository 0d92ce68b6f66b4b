package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"noticeboard-backend/models"
	"noticeboard-backend/repository"
	"noticeboard-backend/utils/logger"
)

type MessageService struct {
	messageRepo      repository.MessageRepositoryInterface
	organizationRepo repository.OrganizationRepositoryInterface
	activityRepo     repository.ActivityRepositoryInterface
	logger           logger.Logger

	// now is swappable so the time-window tests can pin the clock
	now func() time.Time
}

func NewMessageService(messageRepo repository.MessageRepositoryInterface, organizationRepo repository.OrganizationRepositoryInterface, activityRepo repository.ActivityRepositoryInterface, log logger.Logger) *MessageService {
	return &MessageService{
		messageRepo:      messageRepo,
		organizationRepo: organizationRepo,
		activityRepo:     activityRepo,
		logger:           log,
		now:              time.Now,
	}
}

func (s *MessageService) List(ctx context.Context, organizationID string) ([]*models.Message, error) {
	return s.messageRepo.List(ctx, organizationID)
}

func (s *MessageService) Get(ctx context.Context, id string) (*models.Message, error) {
	return s.messageRepo.GetByID(ctx, id)
}

// Send validates the organization reference and the type-specific field set,
// then stores the message. Announcements need a title; funeral notices need
// an address and a death type.
func (s *MessageService) Send(ctx context.Context, message *models.Message) (*models.Message, error) {
	org, err := s.resolveOrganization(ctx, message.OrganizationID)
	if err != nil {
		return nil, err
	}

	switch message.Type {
	case models.MessageTypeAnnouncement:
		if message.Title == "" {
			return nil, NewValidationError("title", "announcement requires a title")
		}
	case models.MessageTypeFuneral:
		if message.Address == "" {
			return nil, NewValidationError("address", "funeral notice requires an address")
		}
		if message.DeathType == "" {
			return nil, NewValidationError("deathType", "funeral notice requires a death type")
		}
	default:
		return nil, NewValidationError("type", "message type must be announcement or funeral")
	}

	toStore := *message
	toStore.OrganizationName = org.Name
	if toStore.Recipients == 0 {
		toStore.Recipients = org.Members
	}

	created, err := s.messageRepo.Create(ctx, &toStore)
	if err != nil {
		return nil, err
	}

	s.adjustMessageCount(ctx, org)
	s.recordActivity(ctx, fmt.Sprintf("New %s sent by %s", created.Type, org.Name))
	return created, nil
}

func (s *MessageService) Delete(ctx context.Context, id string) error {
	return s.messageRepo.Delete(ctx, id)
}

// Recent returns the organization's messages inside the requested window.
// The cutoff uses calendar-aware subtraction, so "month" means one calendar
// month back rather than a fixed thirty days.
func (s *MessageService) Recent(ctx context.Context, organizationID, period string) (*models.MessageWindow, error) {
	now := s.now()

	var cutoff time.Time
	switch period {
	case "1day":
		cutoff = now.AddDate(0, 0, -1)
	case "7days":
		cutoff = now.AddDate(0, 0, -7)
	case "month":
		cutoff = now.AddDate(0, -1, 0)
	case "year":
		cutoff = now.AddDate(-1, 0, 0)
	default:
		return nil, NewValidationError("period", "period must be one of 1day, 7days, month, year")
	}

	messages, err := s.messageRepo.ListSince(ctx, organizationID, cutoff)
	if err != nil {
		return nil, err
	}

	return &models.MessageWindow{
		Period:   period,
		Count:    len(messages),
		Messages: messages,
	}, nil
}

func (s *MessageService) resolveOrganization(ctx context.Context, orgID string) (*models.Organization, error) {
	if orgID == "" {
		return nil, NewValidationError("organizationId", "organization id is required")
	}
	org, err := s.organizationRepo.GetByID(ctx, orgID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, NewValidationError("organizationId", fmt.Sprintf("organization %s does not exist", orgID))
	}
	if err != nil {
		return nil, err
	}
	return org, nil
}

// adjustMessageCount bumps the organization's denormalized message count.
// Best-effort.
func (s *MessageService) adjustMessageCount(ctx context.Context, org *models.Organization) {
	count := org.Messages + 1
	if _, err := s.organizationRepo.Update(ctx, org.ID, &models.OrganizationPatch{Messages: &count}); err != nil {
		s.logger.Warnf("Failed to adjust message count for %s: %v", org.ID, err)
	}
}

func (s *MessageService) recordActivity(ctx context.Context, text string) {
	_, err := s.activityRepo.Append(ctx, &models.Activity{
		Type: models.ActivityTypeMessage,
		Text: text,
	})
	if err != nil {
		s.logger.Warnf("Failed to record activity: %v", err)
	}
}
