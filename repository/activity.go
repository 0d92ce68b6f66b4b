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

// ActivityRepository implements ActivityRepositoryInterface. The feed is
// append-only: entries are written once and never mutated.
type ActivityRepository struct {
	db     dal.DatabaseClientInterface
	table  string
	seq    *idSequence
	logger logger.Logger
}

func NewActivityRepository(db dal.DatabaseClientInterface, cfg *models.Config, log logger.Logger) *ActivityRepository {
	return &ActivityRepository{
		db:     db,
		table:  cfg.DynamoDBTablePrefix + "_activities",
		seq:    newIDSequence("ACT"),
		logger: log,
	}
}

// List returns the feed in insertion order (oldest first)
func (r *ActivityRepository) List(ctx context.Context) ([]*models.Activity, error) {
	activities := []*models.Activity{}
	if err := r.db.Scan(ctx, r.table, &activities); err != nil {
		r.logger.Errorf("Failed to list activities: %v", err)
		return nil, fmt.Errorf("failed to list activities: %w", err)
	}
	return activities, nil
}

// Append records a new entry with a server-assigned id and timestamp
func (r *ActivityRepository) Append(ctx context.Context, activity *models.Activity) (*models.Activity, error) {
	if err := r.seq.ensureSynced(ctx, r.db, r.table); err != nil {
		r.logger.Errorf("Failed to sync activity ids: %v", err)
		return nil, fmt.Errorf("failed to append activity: %w", err)
	}

	stored := *activity
	stored.ID = r.seq.Next()
	if stored.Timestamp.IsZero() {
		stored.Timestamp = time.Now()
	}

	if err := r.db.PutItem(ctx, r.table, stored.ID, &stored); err != nil {
		r.logger.Errorf("Failed to append activity: %v", err)
		return nil, fmt.Errorf("failed to append activity: %w", err)
	}
	return &stored, nil
}

// Seed inserts a fixture entry as-is and moves the id counter past it
func (r *ActivityRepository) Seed(ctx context.Context, activity *models.Activity) error {
	if activity.ID == "" {
		return errors.New("seed activity requires an id")
	}
	r.seq.Observe(activity.ID)
	return r.db.PutItem(ctx, r.table, activity.ID, activity)
}
