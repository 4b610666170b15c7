package repository

import (
	"context"

	"gorm.io/gorm"

	"lenscraft-server/internal/model"
)

type CartRepository interface {
	Create(ctx context.Context, tx *gorm.DB, item *model.CartItem) error
	Delete(ctx context.Context, tx *gorm.DB, itemID string) (int64, error)
	DeleteOwned(ctx context.Context, tx *gorm.DB, itemID, email, classID string) (int64, error)
	ListSelected(ctx context.Context, email string) ([]*model.SelectedClass, error)
}

type cartRepoImpl struct {
	db *gorm.DB
}

func NewCartRepository(db *gorm.DB) CartRepository {
	return &cartRepoImpl{
		db: db,
	}
}

// Create relies on the (class_id, email) unique index; a second slot for the same
// pair comes back as ErrDuplicate.
func (r *cartRepoImpl) Create(ctx context.Context, tx *gorm.DB, item *model.CartItem) error {
	return translate(tx.WithContext(ctx).Omit("Class").Create(item).Error)
}

func (r *cartRepoImpl) Delete(ctx context.Context, tx *gorm.DB, itemID string) (int64, error) {
	result := tx.WithContext(ctx).
		Where("id = ?", itemID).
		Delete(&model.CartItem{})

	return result.RowsAffected, result.Error
}

func (r *cartRepoImpl) DeleteOwned(ctx context.Context, tx *gorm.DB, itemID, email, classID string) (int64, error) {
	result := tx.WithContext(ctx).
		Where("id = ? AND email = ? AND class_id = ?", itemID, email, classID).
		Delete(&model.CartItem{})

	return result.RowsAffected, result.Error
}

// ListSelected joins the user's cart rows with their classes. Rows whose class no
// longer exists are dropped by the inner join.
func (r *cartRepoImpl) ListSelected(ctx context.Context, email string) ([]*model.SelectedClass, error) {
	var items []*model.CartItem
	err := r.db.WithContext(ctx).
		InnerJoins("Class").
		Where("cart_items.email = ?", email).
		Find(&items).Error
	if err != nil {
		return nil, err
	}

	selected := make([]*model.SelectedClass, 0, len(items))
	for _, item := range items {
		seats := item.Class.AvailableSeats()
		item.Class = nil
		selected = append(selected, &model.SelectedClass{
			CartItem:       *item,
			AvailableSeats: seats,
		})
	}

	return selected, nil
}
