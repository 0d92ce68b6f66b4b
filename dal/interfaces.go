package dal

import (
	"context"
	"errors"
)

// ErrItemNotFound is reported when a keyed read or delete misses. Repositories
// translate it into their own not-found outcome; it never reaches a handler.
var ErrItemNotFound = errors.New("item not found")

// DatabaseClientInterface is the contract every backing store implements.
// MemoryClient serves the mock/demo path and tests, DynamoDBClient the live
// path. Repositories are written against this interface only, so the two are
// interchangeable at startup.
type DatabaseClientInterface interface {
	PutItem(ctx context.Context, tableName, id string, item interface{}) error
	GetItem(ctx context.Context, tableName, id string, result interface{}) error
	DeleteItem(ctx context.Context, tableName, id string) error

	// Scan returns every item of the table. MemoryClient guarantees insertion
	// order; DynamoDB does not, which is acceptable because no caller relies
	// on a sort beyond the mock path.
	Scan(ctx context.Context, tableName string, results interface{}) error
}
