package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// CartItem is a class a user saved but has not paid for yet. Name, image, price and
// instructor are a snapshot taken when the item was added.
type CartItem struct {
	ID         string          `gorm:"primaryKey;size:36" json:"id"`
	ClassID    string          `gorm:"size:36;not null;uniqueIndex:idx_cart_class_email" json:"classId"`
	Email      string          `gorm:"size:255;not null;uniqueIndex:idx_cart_class_email;index" json:"email"`
	Name       string          `gorm:"size:255" json:"name"`
	Image      string          `gorm:"size:1024" json:"image"`
	Price      decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"price"`
	Instructor Instructor      `gorm:"embedded;embeddedPrefix:instructor_" json:"instructor"`
	CreatedAt  time.Time       `json:"createdAt"`

	Class *Class `gorm:"foreignKey:ClassID" json:"-"`
}

// SelectedClass is a cart row enriched with the seats still open on its class.
type SelectedClass struct {
	CartItem
	AvailableSeats int `json:"availableSeats"`
}
