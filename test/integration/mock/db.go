// Package mock provides test doubles for integration tests.
package mock

import (
	"database/sql"
	"sync"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/finance-dashboard/agent/internal/integration/persistence/model"
)

var once sync.Once
var db *Db

// Db wraps a shared in-memory sqlite connection for the test suite.
// Scenarios call Clear between runs instead of reopening the database.
type Db struct {
	Conn *gorm.DB
}

var allModels = []any{
	&model.AssetModel{},
	&model.LiabilityModel{},
	&model.ExpenseModel{},
	&model.DailyExpenseModel{},
	&model.IncomeModel{},
	&model.TransactionModel{},
	&model.SyncItemModel{},
	&model.MetaModel{},
}

// NewDb opens (once) the shared in-memory database and migrates every
// table the agent uses.
func NewDb() *Db {
	once.Do(func() {
		db = open()
	})
	return db
}

func open() *Db {
	dbSQL, err := sql.Open("sqlite", "file::memory:?cache=shared")
	if err != nil {
		panic(err)
	}
	dbSQL.SetMaxOpenConns(1)

	conn, err := gorm.Open(sqlite.Dialector{Conn: dbSQL}, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		panic("failed to connect to database. err: " + err.Error())
	}

	if err := conn.AutoMigrate(allModels...); err != nil {
		panic("failed to migrate test database. err: " + err.Error())
	}

	return &Db{Conn: conn}
}

// Clear empties every table so scenarios start from a blank slate.
func (d *Db) Clear() error {
	for _, m := range allModels {
		if err := d.Conn.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(m).Error; err != nil {
			return err
		}
	}
	return nil
}
