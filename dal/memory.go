package dal

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"noticeboard-backend/utils/logger"
)

// MemoryClient is the mock backend: an in-process store that stands in for
// DynamoDB during development, demos and tests. Items are kept as JSON blobs
// so the client stays entity-agnostic, mirroring how the DynamoDB client
// round-trips through attributevalue marshalling.
//
// Writes are serialized per client by a single mutex, which preserves the
// read-your-writes behaviour the consoles rely on: a list issued after a
// resolved mutation always observes that mutation.
type MemoryClient struct {
	mu     sync.RWMutex
	tables map[string]*memTable
	logger logger.Logger
}

// memTable keeps insertion order next to the id index
type memTable struct {
	order []string
	items map[string][]byte
}

// NewMemoryClient creates an empty in-memory store
func NewMemoryClient(log logger.Logger) *MemoryClient {
	return &MemoryClient{
		tables: make(map[string]*memTable),
		logger: log,
	}
}

func (c *MemoryClient) table(name string) *memTable {
	t, ok := c.tables[name]
	if !ok {
		t = &memTable{items: make(map[string][]byte)}
		c.tables[name] = t
	}
	return t
}

// PutItem inserts or replaces an item. New ids are appended, so Scan returns
// entities in insertion order.
func (c *MemoryClient) PutItem(ctx context.Context, tableName, id string, item interface{}) error {
	if id == "" {
		return fmt.Errorf("put into %s: id is required", tableName)
	}

	buf, err := json.Marshal(item)
	if err != nil {
		return fmt.Errorf("failed to marshal item: %w", err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	t := c.table(tableName)
	if _, exists := t.items[id]; !exists {
		t.order = append(t.order, id)
	}
	t.items[id] = buf
	return nil
}

// GetItem unmarshals the stored item into result, or reports ErrItemNotFound
func (c *MemoryClient) GetItem(ctx context.Context, tableName, id string, result interface{}) error {
	c.mu.RLock()
	defer c.mu.RUnlock()

	t, ok := c.tables[tableName]
	if !ok {
		return ErrItemNotFound
	}
	buf, ok := t.items[id]
	if !ok {
		return ErrItemNotFound
	}
	return json.Unmarshal(buf, result)
}

// DeleteItem removes the item, reporting ErrItemNotFound when it is absent so
// a second delete of the same id does not look like a success.
func (c *MemoryClient) DeleteItem(ctx context.Context, tableName, id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	t, ok := c.tables[tableName]
	if !ok {
		return ErrItemNotFound
	}
	if _, ok := t.items[id]; !ok {
		return ErrItemNotFound
	}
	delete(t.items, id)
	for i, existing := range t.order {
		if existing == id {
			t.order = append(t.order[:i], t.order[i+1:]...)
			break
		}
	}
	return nil
}

// Scan unmarshals every item of the table into results (a pointer to a slice)
// in insertion order. An unknown table scans as empty, matching DynamoDB's
// behaviour for a table with no items.
func (c *MemoryClient) Scan(ctx context.Context, tableName string, results interface{}) error {
	c.mu.RLock()
	defer c.mu.RUnlock()

	raw := make([]json.RawMessage, 0)
	if t, ok := c.tables[tableName]; ok {
		for _, id := range t.order {
			raw = append(raw, t.items[id])
		}
	}

	buf, err := json.Marshal(raw)
	if err != nil {
		return fmt.Errorf("failed to marshal scan result: %w", err)
	}
	return json.Unmarshal(buf, results)
}
