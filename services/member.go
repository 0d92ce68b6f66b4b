package services

import (
	"context"
	"errors"
	"fmt"

	"noticeboard-backend/models"
	"noticeboard-backend/repository"
	"noticeboard-backend/utils/logger"
)

type MemberService struct {
	memberRepo       repository.MemberRepositoryInterface
	organizationRepo repository.OrganizationRepositoryInterface
	activityRepo     repository.ActivityRepositoryInterface
	logger           logger.Logger
}

func NewMemberService(memberRepo repository.MemberRepositoryInterface, organizationRepo repository.OrganizationRepositoryInterface, activityRepo repository.ActivityRepositoryInterface, log logger.Logger) *MemberService {
	return &MemberService{
		memberRepo:       memberRepo,
		organizationRepo: organizationRepo,
		activityRepo:     activityRepo,
		logger:           log,
	}
}

func (s *MemberService) List(ctx context.Context, organizationID string) ([]*models.Member, error) {
	return s.memberRepo.List(ctx, organizationID)
}

func (s *MemberService) Get(ctx context.Context, id string) (*models.Member, error) {
	return s.memberRepo.GetByID(ctx, id)
}

// Create validates the organization reference before storing the member. A
// dangling organizationId is a validation failure, not a silent accept.
func (s *MemberService) Create(ctx context.Context, member *models.Member) (*models.Member, error) {
	org, err := s.resolveOrganization(ctx, member.OrganizationID)
	if err != nil {
		return nil, err
	}

	toStore := *member
	toStore.Organization = org.Name

	created, err := s.memberRepo.Create(ctx, &toStore)
	if err != nil {
		return nil, err
	}

	s.adjustMemberCount(ctx, org, +1)
	s.recordActivity(ctx, fmt.Sprintf("%s joined %s", created.Name, org.Name))
	return created, nil
}

func (s *MemberService) Update(ctx context.Context, id string, patch *models.MemberPatch) (*models.Member, error) {
	if patch.OrganizationID != nil {
		org, err := s.resolveOrganization(ctx, *patch.OrganizationID)
		if err != nil {
			return nil, err
		}
		patch.Organization = &org.Name
	}

	updated, err := s.memberRepo.Update(ctx, id, patch)
	if err != nil {
		return nil, err
	}

	s.recordActivity(ctx, fmt.Sprintf("Member %s updated", updated.Name))
	return updated, nil
}

func (s *MemberService) Delete(ctx context.Context, id string) error {
	member, err := s.memberRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.memberRepo.Delete(ctx, id); err != nil {
		return err
	}

	if org, orgErr := s.organizationRepo.GetByID(ctx, member.OrganizationID); orgErr == nil {
		s.adjustMemberCount(ctx, org, -1)
	}
	s.recordActivity(ctx, fmt.Sprintf("Member %s was removed", member.Name))
	return nil
}

func (s *MemberService) resolveOrganization(ctx context.Context, orgID string) (*models.Organization, error) {
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

// adjustMemberCount keeps the organization's denormalized member count in
// step with the collection. Best-effort.
func (s *MemberService) adjustMemberCount(ctx context.Context, org *models.Organization, delta int) {
	count := org.Members + delta
	if count < 0 {
		count = 0
	}
	if _, err := s.organizationRepo.Update(ctx, org.ID, &models.OrganizationPatch{Members: &count}); err != nil {
		s.logger.Warnf("Failed to adjust member count for %s: %v", org.ID, err)
	}
}

func (s *MemberService) recordActivity(ctx context.Context, text string) {
	_, err := s.activityRepo.Append(ctx, &models.Activity{
		Type: models.ActivityTypeMember,
		Text: text,
	})
	if err != nil {
		s.logger.Warnf("Failed to record activity: %v", err)
	}
}
