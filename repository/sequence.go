package repository

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"sync"

	"noticeboard-backend/dal"
)

// idSequence issues prefix-tagged sequential ids (ORG001, MEM002, ...). The
// counter is owned by the repository and only ever moves forward, so ids stay
// unique across deletes and concurrent creates. Seeding observes existing ids
// to start the counter past them; ensureSynced does the same for ids already
// in the store when the repository starts over existing data.
type idSequence struct {
	mu     sync.Mutex
	prefix string
	next   int
	synced bool
}

// storedID projects just the id column out of a table scan
type storedID struct {
	ID string `json:"id" dynamodbav:"id"`
}

func newIDSequence(prefix string) *idSequence {
	return &idSequence{prefix: prefix, next: 1}
}

// Next returns the next id in the sequence
func (s *idSequence) Next() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := fmt.Sprintf("%s%03d", s.prefix, s.next)
	s.next++
	return id
}

// Observe bumps the counter past an externally assigned id
func (s *idSequence) Observe(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.observeLocked(id)
}

func (s *idSequence) observeLocked(id string) {
	n, ok := s.numericSuffix(id)
	if !ok {
		return
	}
	if n >= s.next {
		s.next = n + 1
	}
}

// ensureSynced scans the table once and moves the counter past every id
// already stored, so a repository constructed over a non-empty table does not
// reissue ids and overwrite existing records. A failed scan is retried on the
// next call rather than risking a collision.
func (s *idSequence) ensureSynced(ctx context.Context, db dal.DatabaseClientInterface, table string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.synced {
		return nil
	}

	ids := []*storedID{}
	if err := db.Scan(ctx, table, &ids); err != nil {
		return fmt.Errorf("failed to read existing %s ids: %w", s.prefix, err)
	}
	for _, item := range ids {
		s.observeLocked(item.ID)
	}
	s.synced = true
	return nil
}

func (s *idSequence) numericSuffix(id string) (int, bool) {
	if !strings.HasPrefix(id, s.prefix) {
		return 0, false
	}
	n, err := strconv.Atoi(strings.TrimPrefix(id, s.prefix))
	if err != nil || n < 0 {
		return 0, false
	}
	return n, true
}
