package services

import (
	"context"
	"fmt"
	"strings"

	"noticeboard-backend/models"
	"noticeboard-backend/repository"
	"noticeboard-backend/utils/logger"
)

type OrganizationService struct {
	organizationRepo repository.OrganizationRepositoryInterface
	activityRepo     repository.ActivityRepositoryInterface
	logger           logger.Logger
}

func NewOrganizationService(organizationRepo repository.OrganizationRepositoryInterface, activityRepo repository.ActivityRepositoryInterface, log logger.Logger) *OrganizationService {
	return &OrganizationService{
		organizationRepo: organizationRepo,
		activityRepo:     activityRepo,
		logger:           log,
	}
}

func (s *OrganizationService) List(ctx context.Context) ([]*models.Organization, error) {
	return s.organizationRepo.List(ctx)
}

func (s *OrganizationService) Get(ctx context.Context, id string) (*models.Organization, error) {
	return s.organizationRepo.GetByID(ctx, id)
}

func (s *OrganizationService) Create(ctx context.Context, org *models.Organization) (*models.Organization, error) {
	if strings.TrimSpace(org.Name) == "" {
		return nil, NewValidationError("name", "organization name is required")
	}

	existing, err := s.organizationRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	for _, e := range existing {
		if strings.EqualFold(e.Name, org.Name) {
			return nil, NewValidationError("name", "organization with this name already exists")
		}
	}

	created, err := s.organizationRepo.Create(ctx, org)
	if err != nil {
		return nil, err
	}

	s.recordActivity(ctx, fmt.Sprintf("Organization %s was created", created.Name))
	return created, nil
}

func (s *OrganizationService) Update(ctx context.Context, id string, patch *models.OrganizationPatch) (*models.Organization, error) {
	updated, err := s.organizationRepo.Update(ctx, id, patch)
	if err != nil {
		return nil, err
	}

	s.recordActivity(ctx, fmt.Sprintf("Organization %s updated", updated.Name))
	return updated, nil
}

func (s *OrganizationService) Delete(ctx context.Context, id string) error {
	org, err := s.organizationRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.organizationRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.recordActivity(ctx, fmt.Sprintf("Organization %s was deleted", org.Name))
	return nil
}

// GetSettings projects the organization's contact fields into the settings
// page payload.
func (s *OrganizationService) GetSettings(ctx context.Context, orgID string) (*models.OrgSettings, error) {
	org, err := s.organizationRepo.GetByID(ctx, orgID)
	if err != nil {
		return nil, err
	}
	return &models.OrgSettings{
		Name:    org.Name,
		Email:   org.Email,
		Phone:   org.Phone,
		Address: org.Address,
	}, nil
}

// UpdateSettings writes the settings page payload back onto the organization
func (s *OrganizationService) UpdateSettings(ctx context.Context, orgID string, settings *models.OrgSettings) error {
	if strings.TrimSpace(settings.Name) == "" {
		return NewValidationError("name", "organization name is required")
	}

	patch := &models.OrganizationPatch{
		Name:    &settings.Name,
		Email:   &settings.Email,
		Phone:   &settings.Phone,
		Address: &settings.Address,
	}
	_, err := s.organizationRepo.Update(ctx, orgID, patch)
	return err
}

// recordActivity appends to the feed best-effort; a feed failure never fails
// the mutation that triggered it.
func (s *OrganizationService) recordActivity(ctx context.Context, text string) {
	_, err := s.activityRepo.Append(ctx, &models.Activity{
		Type: models.ActivityTypeOrg,
		Text: text,
	})
	if err != nil {
		s.logger.Warnf("Failed to record activity: %v", err)
	}
}
