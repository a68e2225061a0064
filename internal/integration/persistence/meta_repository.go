package persistence

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/finance-dashboard/agent/internal/application/adapter"
	"github.com/finance-dashboard/agent/internal/integration/persistence/model"
)

const snapshotTimeKey = "cache_snapshot_time"

// metaRepository implements adapter.MetaRepository over a key/value
// table.
type metaRepository struct {
	db *gorm.DB
}

// NewMetaRepository creates a new meta repository instance.
func NewMetaRepository(db *gorm.DB) adapter.MetaRepository {
	return &metaRepository{
		db: db,
	}
}

// SetSnapshotTime records when the cache last changed.
func (r *metaRepository) SetSnapshotTime(ctx context.Context, t time.Time) error {
	row := &model.MetaModel{
		Key:   snapshotTimeKey,
		Value: t.UTC().Format(time.RFC3339Nano),
	}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value"}),
		}).
		Create(row).Error
}

// SnapshotTime returns the recorded snapshot timestamp, or the zero time
// when none has been written yet.
func (r *metaRepository) SnapshotTime(ctx context.Context) (time.Time, error) {
	var row model.MetaModel
	err := r.db.WithContext(ctx).Where("key = ?", snapshotTimeKey).First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return time.Time{}, nil
		}
		return time.Time{}, err
	}
	return time.Parse(time.RFC3339Nano, row.Value)
}
