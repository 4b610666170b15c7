package model

import (
	"time"

	"github.com/shopspring/decimal"
)

func init() {
	// prices travel as JSON numbers, not quoted strings
	decimal.MarshalJSONWithoutQuotes = true
}

type ClassStatus string

const (
	ClassStatusPending  ClassStatus = "pending"
	ClassStatusApproved ClassStatus = "approved"
	ClassStatusDenied   ClassStatus = "denied"
)

// Instructor is stored inline on classes and cart snapshots.
type Instructor struct {
	Name  string `gorm:"size:255" json:"name"`
	Email string `gorm:"size:255;index" json:"email"`
}

type Class struct {
	ID            string          `gorm:"primaryKey;size:36" json:"id"`
	Name          string          `gorm:"size:255;not null" json:"name"`
	Image         string          `gorm:"size:1024" json:"image"`
	Instructor    Instructor      `gorm:"embedded;embeddedPrefix:instructor_" json:"instructor"`
	Seats         int             `gorm:"not null;check:seats >= 0" json:"seats"`
	EnrolledCount int             `gorm:"not null;default:0;check:enrolled_count >= 0" json:"enrolledCount"`
	Price         decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"price"`
	Status        ClassStatus     `gorm:"size:16;index;not null;default:pending" json:"status"`
	CreatedAt     time.Time       `json:"createdAt"`
	UpdatedAt     time.Time       `json:"updatedAt"`
}

func (c *Class) AvailableSeats() int {
	return c.Seats - c.EnrolledCount
}
