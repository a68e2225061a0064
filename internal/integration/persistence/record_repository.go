// Package persistence implements repository interfaces for the local
// database.
package persistence

import (
	"context"

	"gorm.io/gorm"

	"github.com/finance-dashboard/agent/internal/application/adapter"
	"github.com/finance-dashboard/agent/internal/domain/entity"
	domainerror "github.com/finance-dashboard/agent/internal/domain/error"
	"github.com/finance-dashboard/agent/internal/integration/persistence/model"
)

// recordRepository implements the adapter.RecordRepository interface over
// one table per collection.
type recordRepository struct {
	db *gorm.DB
}

// NewRecordRepository creates a new record repository instance.
func NewRecordRepository(db *gorm.DB) adapter.RecordRepository {
	return &recordRepository{
		db: db,
	}
}

// Migrate creates the collection tables if they are absent.
func (r *recordRepository) Migrate(ctx context.Context) error {
	return r.db.WithContext(ctx).AutoMigrate(
		&model.AssetModel{},
		&model.LiabilityModel{},
		&model.ExpenseModel{},
		&model.DailyExpenseModel{},
		&model.IncomeModel{},
		&model.TransactionModel{},
	)
}

// LoadAll returns every record in the collection.
func (r *recordRepository) LoadAll(ctx context.Context, collection entity.Collection) ([]entity.Record, error) {
	db := r.db.WithContext(ctx)

	switch collection {
	case entity.CollectionAssets:
		var models []model.AssetModel
		if err := db.Order("created_at ASC").Find(&models).Error; err != nil {
			return nil, err
		}
		records := make([]entity.Record, len(models))
		for i := range models {
			records[i] = models[i].ToEntity()
		}
		return records, nil

	case entity.CollectionLiabilities:
		var models []model.LiabilityModel
		if err := db.Order("created_at ASC").Find(&models).Error; err != nil {
			return nil, err
		}
		records := make([]entity.Record, len(models))
		for i := range models {
			records[i] = models[i].ToEntity()
		}
		return records, nil

	case entity.CollectionExpenses:
		var models []model.ExpenseModel
		if err := db.Order("created_at ASC").Find(&models).Error; err != nil {
			return nil, err
		}
		records := make([]entity.Record, len(models))
		for i := range models {
			records[i] = models[i].ToEntity()
		}
		return records, nil

	case entity.CollectionDailyExpenses:
		var models []model.DailyExpenseModel
		if err := db.Order("created_at ASC").Find(&models).Error; err != nil {
			return nil, err
		}
		records := make([]entity.Record, len(models))
		for i := range models {
			records[i] = models[i].ToEntity()
		}
		return records, nil

	case entity.CollectionIncome:
		var models []model.IncomeModel
		if err := db.Order("created_at ASC").Find(&models).Error; err != nil {
			return nil, err
		}
		records := make([]entity.Record, len(models))
		for i := range models {
			records[i] = models[i].ToEntity()
		}
		return records, nil

	case entity.CollectionTransactions:
		var models []model.TransactionModel
		if err := db.Order("created_at ASC").Find(&models).Error; err != nil {
			return nil, err
		}
		records := make([]entity.Record, len(models))
		for i := range models {
			records[i] = models[i].ToEntity()
		}
		return records, nil
	}

	return nil, domainerror.ErrUnknownCollection
}

// Save inserts a new record into its collection.
func (r *recordRepository) Save(ctx context.Context, record entity.Record) error {
	m, err := toModel(record)
	if err != nil {
		return err
	}
	return r.db.WithContext(ctx).Create(m).Error
}

// Update replaces an existing record, matched by id.
func (r *recordRepository) Update(ctx context.Context, record entity.Record) error {
	m, err := toModel(record)
	if err != nil {
		return err
	}
	return r.db.WithContext(ctx).Save(m).Error
}

// Delete removes the record with the given id from the collection.
func (r *recordRepository) Delete(ctx context.Context, collection entity.Collection, id string) error {
	db := r.db.WithContext(ctx)

	switch collection {
	case entity.CollectionAssets:
		return db.Delete(&model.AssetModel{}, "id = ?", id).Error
	case entity.CollectionLiabilities:
		return db.Delete(&model.LiabilityModel{}, "id = ?", id).Error
	case entity.CollectionExpenses:
		return db.Delete(&model.ExpenseModel{}, "id = ?", id).Error
	case entity.CollectionDailyExpenses:
		return db.Delete(&model.DailyExpenseModel{}, "id = ?", id).Error
	case entity.CollectionIncome:
		return db.Delete(&model.IncomeModel{}, "id = ?", id).Error
	case entity.CollectionTransactions:
		return db.Delete(&model.TransactionModel{}, "id = ?", id).Error
	}
	return domainerror.ErrUnknownCollection
}

// toModel maps a domain record onto its persistence model.
func toModel(record entity.Record) (any, error) {
	switch rec := record.(type) {
	case *entity.Asset:
		return model.AssetFromEntity(rec), nil
	case *entity.Liability:
		return model.LiabilityFromEntity(rec), nil
	case *entity.Expense:
		return model.ExpenseFromEntity(rec), nil
	case *entity.DailyExpense:
		return model.DailyExpenseFromEntity(rec), nil
	case *entity.Income:
		return model.IncomeFromEntity(rec), nil
	case *entity.Transaction:
		return model.TransactionFromEntity(rec), nil
	}
	return nil, domainerror.ErrUnknownCollection
}
