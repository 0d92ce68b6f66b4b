package repository

import (
	"noticeboard-backend/dal"
	"noticeboard-backend/models"
	"noticeboard-backend/utils/logger"
)

// Repository bundles every per-entity repository over one backing store
type Repository struct {
	Organization *OrganizationRepository
	Member       *MemberRepository
	Message      *MessageRepository
	Activity     *ActivityRepository
	Admin        *AdminRepository
}

func NewRepository(db dal.DatabaseClientInterface, cfg *models.Config, log logger.Logger) *Repository {
	return &Repository{
		Organization: NewOrganizationRepository(db, cfg, log),
		Member:       NewMemberRepository(db, cfg, log),
		Message:      NewMessageRepository(db, cfg, log),
		Activity:     NewActivityRepository(db, cfg, log),
		Admin:        NewAdminRepository(db, cfg, log),
	}
}
