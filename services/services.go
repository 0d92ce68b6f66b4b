package services

import (
	"noticeboard-backend/repository"
	"noticeboard-backend/utils/logger"
)

// Service bundles every domain service with its dependencies injected
type Service struct {
	Organization OrganizationServiceInterface
	Member       MemberServiceInterface
	Message      MessageServiceInterface
	Analytics    AnalyticsServiceInterface
	Auth         AuthServiceInterface
}

// NewService creates a new service container over the repository container
func NewService(repos *repository.Repository, tokens TokenIssuer, log logger.Logger) *Service {
	return &Service{
		Organization: NewOrganizationService(repos.Organization, repos.Activity, log),
		Member:       NewMemberService(repos.Member, repos.Organization, repos.Activity, log),
		Message:      NewMessageService(repos.Message, repos.Organization, repos.Activity, log),
		Analytics:    NewAnalyticsService(repos.Organization, repos.Member, repos.Message, repos.Activity, log),
		Auth:         NewAuthService(repos.Admin, repos.Organization, tokens, log),
	}
}
