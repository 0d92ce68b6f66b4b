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

// MemberRepository implements MemberRepositoryInterface
type MemberRepository struct {
	db     dal.DatabaseClientInterface
	table  string
	seq    *idSequence
	logger logger.Logger
}

func NewMemberRepository(db dal.DatabaseClientInterface, cfg *models.Config, log logger.Logger) *MemberRepository {
	return &MemberRepository{
		db:     db,
		table:  cfg.DynamoDBTablePrefix + "_members",
		seq:    newIDSequence("MEM"),
		logger: log,
	}
}

// List returns members in insertion order, narrowed by organization when
// organizationID is non-empty.
func (r *MemberRepository) List(ctx context.Context, organizationID string) ([]*models.Member, error) {
	members := []*models.Member{}
	if err := r.db.Scan(ctx, r.table, &members); err != nil {
		r.logger.Errorf("Failed to list members: %v", err)
		return nil, fmt.Errorf("failed to list members: %w", err)
	}
	if organizationID == "" {
		return members, nil
	}

	filtered := []*models.Member{}
	for _, m := range members {
		if m.OrganizationID == organizationID {
			filtered = append(filtered, m)
		}
	}
	return filtered, nil
}

// GetByID returns the member or ErrNotFound
func (r *MemberRepository) GetByID(ctx context.Context, id string) (*models.Member, error) {
	if id == "" {
		return nil, errors.New("member id is required")
	}

	var member models.Member
	err := r.db.GetItem(ctx, r.table, id, &member)
	if errors.Is(err, dal.ErrItemNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		r.logger.Errorf("Failed to get member %s: %v", id, err)
		return nil, fmt.Errorf("failed to get member: %w", err)
	}
	return &member, nil
}

// Create stores a new member with a server-assigned id and join date
func (r *MemberRepository) Create(ctx context.Context, member *models.Member) (*models.Member, error) {
	if err := r.seq.ensureSynced(ctx, r.db, r.table); err != nil {
		r.logger.Errorf("Failed to sync member ids: %v", err)
		return nil, fmt.Errorf("failed to create member: %w", err)
	}

	stored := *member
	stored.ID = r.seq.Next()
	stored.JoinedDate = time.Now().Format("2006-01-02")
	if stored.Role == "" {
		stored.Role = models.MemberRoleMember
	}
	if stored.Status == "" {
		stored.Status = models.MemberStatusActive
	}

	if err := r.db.PutItem(ctx, r.table, stored.ID, &stored); err != nil {
		r.logger.Errorf("Failed to create member: %v", err)
		return nil, fmt.Errorf("failed to create member: %w", err)
	}

	r.logger.Infof("Member created: %s", stored.ID)
	return &stored, nil
}

// Update merges non-nil patch fields; unknown ids mutate nothing
func (r *MemberRepository) Update(ctx context.Context, id string, patch *models.MemberPatch) (*models.Member, error) {
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
	if patch.Role != nil {
		existing.Role = *patch.Role
	}
	if patch.OrganizationID != nil {
		existing.OrganizationID = *patch.OrganizationID
	}
	if patch.Organization != nil {
		existing.Organization = *patch.Organization
	}
	if patch.Status != nil {
		existing.Status = *patch.Status
	}
	if patch.LastActive != nil {
		existing.LastActive = *patch.LastActive
	}

	if err := r.db.PutItem(ctx, r.table, id, existing); err != nil {
		r.logger.Errorf("Failed to update member %s: %v", id, err)
		return nil, fmt.Errorf("failed to update member: %w", err)
	}
	return existing, nil
}

// Delete removes the member; re-deleting reports ErrNotFound
func (r *MemberRepository) Delete(ctx context.Context, id string) error {
	err := r.db.DeleteItem(ctx, r.table, id)
	if errors.Is(err, dal.ErrItemNotFound) {
		return ErrNotFound
	}
	if err != nil {
		r.logger.Errorf("Failed to delete member %s: %v", id, err)
		return fmt.Errorf("failed to delete member: %w", err)
	}
	r.logger.Infof("Member deleted: %s", id)
	return nil
}

// Seed inserts a fixture record as-is and moves the id counter past it
func (r *MemberRepository) Seed(ctx context.Context, member *models.Member) error {
	if member.ID == "" {
		return errors.New("seed member requires an id")
	}
	r.seq.Observe(member.ID)
	return r.db.PutItem(ctx, r.table, member.ID, member)
}
