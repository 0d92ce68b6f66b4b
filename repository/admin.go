package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"noticeboard-backend/dal"
	"noticeboard-backend/models"
	"noticeboard-backend/utils/logger"
)

// adminRecord is the stored shape of an account. The API model hides the
// password hash from serialization, so accounts round-trip through this
// record to keep the hash in the store.
type adminRecord struct {
	ID             string `json:"id" dynamodbav:"id"`
	Name           string `json:"name" dynamodbav:"name"`
	Email          string `json:"email" dynamodbav:"email"`
	Role           string `json:"role" dynamodbav:"role"`
	OrganizationID string `json:"orgId,omitempty" dynamodbav:"organization_id,omitempty"`
	PasswordHash   string `json:"passwordHash" dynamodbav:"password_hash"`
}

func toAdminRecord(admin *models.Admin) *adminRecord {
	return &adminRecord{
		ID:             admin.ID,
		Name:           admin.Name,
		Email:          admin.Email,
		Role:           admin.Role,
		OrganizationID: admin.OrganizationID,
		PasswordHash:   admin.PasswordHash,
	}
}

func (rec *adminRecord) toModel() *models.Admin {
	return &models.Admin{
		ID:             rec.ID,
		Name:           rec.Name,
		Email:          rec.Email,
		Role:           rec.Role,
		OrganizationID: rec.OrganizationID,
		PasswordHash:   rec.PasswordHash,
	}
}

// AdminRepository implements AdminRepositoryInterface. Accounts are only ever
// seeded from fixtures; there is no self-service registration.
type AdminRepository struct {
	db     dal.DatabaseClientInterface
	table  string
	logger logger.Logger
}

func NewAdminRepository(db dal.DatabaseClientInterface, cfg *models.Config, log logger.Logger) *AdminRepository {
	return &AdminRepository{
		db:     db,
		table:  cfg.DynamoDBTablePrefix + "_admins",
		logger: log,
	}
}

// GetByID returns the account or ErrNotFound
func (r *AdminRepository) GetByID(ctx context.Context, id string) (*models.Admin, error) {
	if id == "" {
		return nil, errors.New("admin id is required")
	}

	var rec adminRecord
	err := r.db.GetItem(ctx, r.table, id, &rec)
	if errors.Is(err, dal.ErrItemNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		r.logger.Errorf("Failed to get admin %s: %v", id, err)
		return nil, fmt.Errorf("failed to get admin: %w", err)
	}
	return rec.toModel(), nil
}

// GetByEmail scans the directory for a case-insensitive email match
func (r *AdminRepository) GetByEmail(ctx context.Context, email string) (*models.Admin, error) {
	records := []*adminRecord{}
	if err := r.db.Scan(ctx, r.table, &records); err != nil {
		r.logger.Errorf("Failed to scan admins: %v", err)
		return nil, fmt.Errorf("failed to scan admins: %w", err)
	}

	for _, rec := range records {
		if strings.EqualFold(rec.Email, email) {
			return rec.toModel(), nil
		}
	}
	return nil, ErrNotFound
}

// Update merges non-nil profile fields; the password hash is untouched here
func (r *AdminRepository) Update(ctx context.Context, id string, patch *models.AdminPatch) (*models.Admin, error) {
	existing, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if patch.Name != nil {
		existing.Name = *patch.Name
	}
	if patch.Email != nil {
		existing.Email = *patch.Email
	}

	if err := r.db.PutItem(ctx, r.table, id, toAdminRecord(existing)); err != nil {
		r.logger.Errorf("Failed to update admin %s: %v", id, err)
		return nil, fmt.Errorf("failed to update admin: %w", err)
	}
	return existing, nil
}

// SetPassword replaces the stored password hash
func (r *AdminRepository) SetPassword(ctx context.Context, id, passwordHash string) error {
	existing, err := r.GetByID(ctx, id)
	if err != nil {
		return err
	}

	existing.PasswordHash = passwordHash
	if err := r.db.PutItem(ctx, r.table, id, toAdminRecord(existing)); err != nil {
		r.logger.Errorf("Failed to set password for admin %s: %v", id, err)
		return fmt.Errorf("failed to set password: %w", err)
	}
	return nil
}

// Seed inserts a fixture account as-is
func (r *AdminRepository) Seed(ctx context.Context, admin *models.Admin) error {
	if admin.ID == "" {
		return errors.New("seed admin requires an id")
	}
	return r.db.PutItem(ctx, r.table, admin.ID, toAdminRecord(admin))
}
