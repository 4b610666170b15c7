package repository

import (
	"context"

	"gorm.io/gorm"

	"lenscraft-server/internal/model"
)

type PaymentRepository interface {
	Create(ctx context.Context, tx *gorm.DB, record *model.PaymentRecord) error
	Exists(ctx context.Context, tx *gorm.DB, classID, email string) (bool, error)
	ListEnrolled(ctx context.Context, email string) ([]*model.PaymentRecord, error)
}

type paymentRepoImpl struct {
	db *gorm.DB
}

func NewPaymentRepository(db *gorm.DB) PaymentRepository {
	return &paymentRepoImpl{
		db: db,
	}
}

func (r *paymentRepoImpl) Create(ctx context.Context, tx *gorm.DB, record *model.PaymentRecord) error {
	return translate(tx.WithContext(ctx).Omit("Class").Create(record).Error)
}

func (r *paymentRepoImpl) Exists(ctx context.Context, tx *gorm.DB, classID, email string) (bool, error) {
	var count int64
	err := tx.WithContext(ctx).Model(&model.PaymentRecord{}).
		Where("class_id = ? AND email = ?", classID, email).
		Count(&count).Error

	return count > 0, err
}

// ListEnrolled returns the user's purchases with class details, most recent first.
func (r *paymentRepoImpl) ListEnrolled(ctx context.Context, email string) ([]*model.PaymentRecord, error) {
	records := make([]*model.PaymentRecord, 0)
	err := r.db.WithContext(ctx).
		InnerJoins("Class").
		Where("payment_records.email = ?", email).
		Order("payment_records.date DESC").
		Find(&records).Error
	if err != nil {
		return nil, err
	}

	return records, nil
}
