package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"lenscraft-server/internal/model"
)

type ClassRepository interface {
	Create(ctx context.Context, tx *gorm.DB, class *model.Class) error
	FindByID(ctx context.Context, tx *gorm.DB, classID string) (*model.Class, error)
	List(ctx context.Context) ([]*model.Class, error)
	ListByStatus(ctx context.Context, status model.ClassStatus) ([]*model.Class, error)
	Popular(ctx context.Context, limit int) ([]*model.Class, error)
	IncrementEnrolled(ctx context.Context, tx *gorm.DB, classID string) (int64, error)
	TransitionStatus(ctx context.Context, tx *gorm.DB, classID string, from, to model.ClassStatus) (int64, error)
}

type classRepoImpl struct {
	db *gorm.DB
}

func NewClassRepository(db *gorm.DB) ClassRepository {
	return &classRepoImpl{
		db: db,
	}
}

func (r *classRepoImpl) Create(ctx context.Context, tx *gorm.DB, class *model.Class) error {
	return translate(tx.WithContext(ctx).Create(class).Error)
}

func (r *classRepoImpl) FindByID(ctx context.Context, tx *gorm.DB, classID string) (*model.Class, error) {
	var class model.Class
	err := tx.WithContext(ctx).
		Where("id = ?", classID).
		First(&class).Error
	if err != nil {
		return nil, translate(err)
	}

	return &class, nil
}

func (r *classRepoImpl) List(ctx context.Context) ([]*model.Class, error) {
	classes := make([]*model.Class, 0)
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&classes).Error
	if err != nil {
		return nil, err
	}

	return classes, nil
}

func (r *classRepoImpl) ListByStatus(ctx context.Context, status model.ClassStatus) ([]*model.Class, error) {
	classes := make([]*model.Class, 0)
	err := r.db.WithContext(ctx).
		Where("status = ?", status).
		Order("created_at DESC").
		Find(&classes).Error
	if err != nil {
		return nil, err
	}

	return classes, nil
}

func (r *classRepoImpl) Popular(ctx context.Context, limit int) ([]*model.Class, error) {
	classes := make([]*model.Class, 0)
	err := r.db.WithContext(ctx).
		Where("status = ?", model.ClassStatusApproved).
		Order("enrolled_count DESC").
		Limit(limit).
		Find(&classes).Error
	if err != nil {
		return nil, err
	}

	return classes, nil
}

// IncrementEnrolled takes one seat in a single conditional statement, so concurrent
// enrollments never lose an update and never push enrolled_count past seats.
// Zero rows affected means the class is missing or full.
func (r *classRepoImpl) IncrementEnrolled(ctx context.Context, tx *gorm.DB, classID string) (int64, error) {
	result := tx.WithContext(ctx).Model(&model.Class{}).
		Where("id = ? AND enrolled_count < seats", classID).
		Updates(map[string]interface{}{
			"enrolled_count": gorm.Expr("enrolled_count + ?", 1),
			"updated_at":     time.Now().UTC(),
		})

	return result.RowsAffected, result.Error
}

// TransitionStatus moves a class from one status to another only if it is still in from.
func (r *classRepoImpl) TransitionStatus(ctx context.Context, tx *gorm.DB, classID string, from, to model.ClassStatus) (int64, error) {
	result := tx.WithContext(ctx).Model(&model.Class{}).
		Where("id = ? AND status = ?", classID, from).
		Updates(map[string]interface{}{
			"status":     to,
			"updated_at": time.Now().UTC(),
		})

	return result.RowsAffected, result.Error
}
