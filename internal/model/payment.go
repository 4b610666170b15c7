package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentRecord is a completed purchase. Rows are only ever inserted.
type PaymentRecord struct {
	ID            string          `gorm:"primaryKey;size:36" json:"id"`
	Email         string          `gorm:"size:255;not null;uniqueIndex:idx_payment_class_email;index" json:"email"`
	ClassID       string          `gorm:"size:36;not null;uniqueIndex:idx_payment_class_email" json:"classId"`
	PaymentAmount decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"paymentAmount"`
	TransactionID string          `gorm:"size:128;not null;uniqueIndex" json:"transactionId"`
	Date          time.Time       `gorm:"not null;index" json:"date"`

	Class *Class `gorm:"foreignKey:ClassID" json:"classDetails,omitempty"`
}

// Models lists every table owned by the service, in migration order.
func Models() []any {
	return []any{
		&User{},
		&Class{},
		&CartItem{},
		&PaymentRecord{},
	}
}
