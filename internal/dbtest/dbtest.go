// Package dbtest opens a throwaway migrated database for package tests.
package dbtest

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"lenscraft-server/internal/client"
	"lenscraft-server/internal/config"
	"lenscraft-server/internal/model"
)

// New returns a sqlite database in t.TempDir. A single connection keeps sqlite
// writers serialized so concurrent tests do not trip over SQLITE_BUSY.
func New(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := client.InitDBClient(config.Database{
		Driver:          "sqlite",
		URL:             filepath.Join(t.TempDir(), "lenscraft.db"),
		MaxOpenConns:    1,
		MaxIdleConns:    1,
		ConnMaxLifetime: time.Hour,
	})
	require.NoError(t, err)

	t.Cleanup(func() {
		_ = client.CloseDBClient(db)
	})

	return db
}

// SeedClass inserts a class with the given capacity and status.
func SeedClass(t *testing.T, db *gorm.DB, seats, enrolled int, status model.ClassStatus) *model.Class {
	t.Helper()

	class := &model.Class{
		ID:            uuid.NewString(),
		Name:          "Street Photography " + uuid.NewString()[:8],
		Image:         "https://img.example.com/street.jpg",
		Instructor:    model.Instructor{Name: "Ansel", Email: "ansel@example.com"},
		Seats:         seats,
		EnrolledCount: enrolled,
		Price:         decimal.RequireFromString("49.99"),
		Status:        status,
	}
	require.NoError(t, db.Create(class).Error)

	return class
}

// SeedCartItem inserts a cart row for class and email.
func SeedCartItem(t *testing.T, db *gorm.DB, class *model.Class, email string) *model.CartItem {
	t.Helper()

	item := &model.CartItem{
		ID:         uuid.NewString(),
		ClassID:    class.ID,
		Email:      email,
		Name:       class.Name,
		Image:      class.Image,
		Price:      class.Price,
		Instructor: class.Instructor,
	}
	require.NoError(t, db.Omit("Class").Create(item).Error)

	return item
}

// SeedPayment inserts a payment for class and email dated at date.
func SeedPayment(t *testing.T, db *gorm.DB, class *model.Class, email string, date time.Time) *model.PaymentRecord {
	t.Helper()

	record := &model.PaymentRecord{
		ID:            uuid.NewString(),
		Email:         email,
		ClassID:       class.ID,
		PaymentAmount: class.Price,
		TransactionID: "txn_" + uuid.NewString(),
		Date:          date.UTC(),
	}
	require.NoError(t, db.Omit("Class").Create(record).Error)

	return record
}
