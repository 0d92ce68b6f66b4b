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

// MessageRepository implements MessageRepositoryInterface
type MessageRepository struct {
	db     dal.DatabaseClientInterface
	table  string
	seq    *idSequence
	logger logger.Logger
}

func NewMessageRepository(db dal.DatabaseClientInterface, cfg *models.Config, log logger.Logger) *MessageRepository {
	return &MessageRepository{
		db:     db,
		table:  cfg.DynamoDBTablePrefix + "_messages",
		seq:    newIDSequence("MSG"),
		logger: log,
	}
}

// List returns messages in insertion order, narrowed by organization when
// organizationID is non-empty.
func (r *MessageRepository) List(ctx context.Context, organizationID string) ([]*models.Message, error) {
	messages := []*models.Message{}
	if err := r.db.Scan(ctx, r.table, &messages); err != nil {
		r.logger.Errorf("Failed to list messages: %v", err)
		return nil, fmt.Errorf("failed to list messages: %w", err)
	}
	if organizationID == "" {
		return messages, nil
	}

	filtered := []*models.Message{}
	for _, m := range messages {
		if m.OrganizationID == organizationID {
			filtered = append(filtered, m)
		}
	}
	return filtered, nil
}

// ListSince returns the organization's messages whose SentAt is at or after
// the cutoff. The cutoff itself is computed by the caller with calendar-aware
// arithmetic so that "one month ago" honors variable month lengths.
func (r *MessageRepository) ListSince(ctx context.Context, organizationID string, cutoff time.Time) ([]*models.Message, error) {
	messages, err := r.List(ctx, organizationID)
	if err != nil {
		return nil, err
	}

	recent := []*models.Message{}
	for _, m := range messages {
		if !m.SentAt.Before(cutoff) {
			recent = append(recent, m)
		}
	}
	return recent, nil
}

// GetByID returns the message or ErrNotFound
func (r *MessageRepository) GetByID(ctx context.Context, id string) (*models.Message, error) {
	if id == "" {
		return nil, errors.New("message id is required")
	}

	var message models.Message
	err := r.db.GetItem(ctx, r.table, id, &message)
	if errors.Is(err, dal.ErrItemNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		r.logger.Errorf("Failed to get message %s: %v", id, err)
		return nil, fmt.Errorf("failed to get message: %w", err)
	}
	return &message, nil
}

// Create stores a new message with a server-assigned id and sent timestamp
func (r *MessageRepository) Create(ctx context.Context, message *models.Message) (*models.Message, error) {
	if err := r.seq.ensureSynced(ctx, r.db, r.table); err != nil {
		r.logger.Errorf("Failed to sync message ids: %v", err)
		return nil, fmt.Errorf("failed to create message: %w", err)
	}

	stored := *message
	stored.ID = r.seq.Next()
	if stored.SentAt.IsZero() {
		stored.SentAt = time.Now()
	}
	if stored.Status == "" {
		stored.Status = models.MessageStatusSent
	}

	if err := r.db.PutItem(ctx, r.table, stored.ID, &stored); err != nil {
		r.logger.Errorf("Failed to create message: %v", err)
		return nil, fmt.Errorf("failed to create message: %w", err)
	}

	r.logger.Infof("Message created: %s", stored.ID)
	return &stored, nil
}

// Delete removes the message; re-deleting reports ErrNotFound
func (r *MessageRepository) Delete(ctx context.Context, id string) error {
	err := r.db.DeleteItem(ctx, r.table, id)
	if errors.Is(err, dal.ErrItemNotFound) {
		return ErrNotFound
	}
	if err != nil {
		r.logger.Errorf("Failed to delete message %s: %v", id, err)
		return fmt.Errorf("failed to delete message: %w", err)
	}
	r.logger.Infof("Message deleted: %s", id)
	return nil
}

// Seed inserts a fixture record as-is and moves the id counter past it
func (r *MessageRepository) Seed(ctx context.Context, message *models.Message) error {
	if message.ID == "" {
		return errors.New("seed message requires an id")
	}
	r.seq.Observe(message.ID)
	return r.db.PutItem(ctx, r.table, message.ID, message)
}
