// Package sqlitedb opens throwaway sqlite stores shaped like the MySQL schema.
package sqlitedb

import (
	"testing"

	"loan-application-api/internal/domain/application"
	"loan-application-api/internal/domain/customer"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Tables lists every table a submission can write, in insert order.
var Tables = []string{
	"new_application",
	"customer_details",
	"bank_details",
	"property_firm",
	"firm_details",
	"policy_details",
	"guarantor_details",
	"directors_partners",
	"income_returns",
	"purchase_sales",
	"shares_add",
}

// Models returns the domain models for every table. The domain models carry
// no MySQL-only column types, so sqlite can migrate them as they are.
func Models() []any {
	return []any{
		&application.NewApplication{},
		&customer.Details{},
		&customer.BankDetail{},
		&customer.PropertyFirm{},
		&customer.FirmDetail{},
		&customer.PolicyDetail{},
		&customer.GuarantorDetail{},
		&customer.DirectorPartner{},
		&customer.IncomeReturn{},
		&customer.PurchaseSale{},
		&customer.SharesAdd{},
	}
}

// Open creates an in-memory sqlite DB and migrates models (Models() when
// none are given). The pool is capped at one connection because every
// ":memory:" connection is a separate database.
func Open(t *testing.T, models ...any) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("sql db: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	if len(models) == 0 {
		models = Models()
	}
	if err := db.AutoMigrate(models...); err != nil {
		t.Fatalf("auto-migrate: %v", err)
	}
	return db
}

// Count returns the number of rows in table.
func Count(t *testing.T, db *gorm.DB, table string) int64 {
	t.Helper()
	var n int64
	if err := db.Table(table).Count(&n).Error; err != nil {
		t.Fatalf("count %s: %v", table, err)
	}
	return n
}

// Counts returns the row count of every table in Tables.
func Counts(t *testing.T, db *gorm.DB) map[string]int64 {
	t.Helper()
	out := make(map[string]int64, len(Tables))
	for _, tbl := range Tables {
		out[tbl] = Count(t, db, tbl)
	}
	return out
}

// InUse reports how many pooled connections are checked out.
func InUse(t *testing.T, db *gorm.DB) int {
	t.Helper()
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("sql db: %v", err)
	}
	return sqlDB.Stats().InUse
}
