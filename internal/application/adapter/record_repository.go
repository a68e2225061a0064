// Package adapter defines interfaces for external dependencies.
package adapter

import (
	"context"
	"time"

	"github.com/finance-dashboard/agent/internal/domain/entity"
)

// RecordRepository persists financial records in the local database, one
// table per collection.
type RecordRepository interface {
	// Migrate creates the collection tables if they are absent.
	Migrate(ctx context.Context) error

	// LoadAll returns every record in the collection.
	LoadAll(ctx context.Context, collection entity.Collection) ([]entity.Record, error)

	// Save inserts a new record into its collection.
	Save(ctx context.Context, record entity.Record) error

	// Update replaces an existing record, matched by id.
	Update(ctx context.Context, record entity.Record) error

	// Delete removes the record with the given id from the collection.
	Delete(ctx context.Context, collection entity.Collection, id string) error
}

// MetaRepository stores small durable key/value state such as the cache
// snapshot timestamp used for staleness checks.
type MetaRepository interface {
	SetSnapshotTime(ctx context.Context, t time.Time) error
	SnapshotTime(ctx context.Context) (time.Time, error)
}
