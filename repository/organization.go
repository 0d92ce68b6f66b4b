package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"noticeboard-backend/dal"
	"noticeboard-backend/models"
	"noticeboard-backend/utils/logger"
)

// OrganizationRepository implements OrganizationRepositoryInterface
type OrganizationRepository struct {
	db     dal.DatabaseClientInterface
	table  string
	seq    *idSequence
	logger logger.Logger
}

func NewOrganizationRepository(db dal.DatabaseClientInterface, cfg *models.Config, log logger.Logger) *OrganizationRepository {
	return &OrganizationRepository{
		db:     db,
		table:  cfg.DynamoDBTablePrefix + "_organizations",
		seq:    newIDSequence("ORG"),
		logger: log,
	}
}

// List returns every organization in insertion order
func (r *OrganizationRepository) List(ctx context.Context) ([]*models.Organization, error) {
	orgs := []*models.Organization{}
	if err := r.db.Scan(ctx, r.table, &orgs); err != nil {
		r.logger.Errorf("Failed to list organizations: %v", err)
		return nil, fmt.Errorf("failed to list organizations: %w", err)
	}
	return orgs, nil
}

// GetByID returns the organization or ErrNotFound
func (r *OrganizationRepository) GetByID(ctx context.Context, id string) (*models.Organization, error) {
	if id == "" {
		return nil, errors.New("organization id is required")
	}

	var org models.Organization
	err := r.db.GetItem(ctx, r.table, id, &org)
	if errors.Is(err, dal.ErrItemNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		r.logger.Errorf("Failed to get organization %s: %v", id, err)
		return nil, fmt.Errorf("failed to get organization: %w", err)
	}
	return &org, nil
}

// Create stores a new organization. The id and the created date are assigned
// here, never by the caller, and the caller's struct is not mutated.
func (r *OrganizationRepository) Create(ctx context.Context, org *models.Organization) (*models.Organization, error) {
	if err := r.seq.ensureSynced(ctx, r.db, r.table); err != nil {
		r.logger.Errorf("Failed to sync organization ids: %v", err)
		return nil, fmt.Errorf("failed to create organization: %w", err)
	}

	stored := *org
	stored.ID = r.seq.Next()
	stored.Created = time.Now().Format("2006-01-02")
	if stored.Status == "" {
		stored.Status = models.OrganizationStatusActive
	}

	if err := r.db.PutItem(ctx, r.table, stored.ID, &stored); err != nil {
		r.logger.Errorf("Failed to create organization: %v", err)
		return nil, fmt.Errorf("failed to create organization: %w", err)
	}

	r.logger.Infof("Organization created: %s", stored.ID)
	return &stored, nil
}

// Update merges the non-nil patch fields into the stored record. Absent
// fields keep their previous values; an unknown id mutates nothing.
func (r *OrganizationRepository) Update(ctx context.Context, id string, patch *models.OrganizationPatch) (*models.Organization, error) {
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
	if patch.Phone != nil {
		existing.Phone = *patch.Phone
	}
	if patch.Address != nil {
		existing.Address = *patch.Address
	}
	if patch.Description != nil {
		existing.Description = *patch.Description
	}
	if patch.Status != nil {
		existing.Status = *patch.Status
	}
	if patch.Members != nil {
		existing.Members = *patch.Members
	}
	if patch.Messages != nil {
		existing.Messages = *patch.Messages
	}

	if err := r.db.PutItem(ctx, r.table, id, existing); err != nil {
		r.logger.Errorf("Failed to update organization %s: %v", id, err)
		return nil, fmt.Errorf("failed to update organization: %w", err)
	}
	return existing, nil
}

// Delete removes the organization; a second delete of the same id reports
// ErrNotFound.
func (r *OrganizationRepository) Delete(ctx context.Context, id string) error {
	err := r.db.DeleteItem(ctx, r.table, id)
	if errors.Is(err, dal.ErrItemNotFound) {
		return ErrNotFound
	}
	if err != nil {
		r.logger.Errorf("Failed to delete organization %s: %v", id, err)
		return fmt.Errorf("failed to delete organization: %w", err)
	}
	r.logger.Infof("Organization deleted: %s", id)
	return nil
}

// Seed inserts a fixture record as-is and moves the id counter past it
func (r *OrganizationRepository) Seed(ctx context.Context, org *models.Organization) error {
	if org.ID == "" {
		return errors.New("seed organization requires an id")
	}
	r.seq.Observe(org.ID)
	return r.db.PutItem(ctx, r.table, org.ID, org)
}
