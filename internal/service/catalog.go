package service

import (
	"context"
	"errors"
	"fmt"

	charmlog "github.com/charmbracelet/log"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"lenscraft-server/internal/dto"
	"lenscraft-server/internal/model"
	"lenscraft-server/internal/repository"
)

const popularLimit = 6

type CatalogService interface {
	CreateClass(ctx context.Context, instructor model.Instructor, req *dto.CreateClassRequest) (*model.Class, error)
	ListAll(ctx context.Context) ([]*model.Class, error)
	ListApproved(ctx context.Context) ([]*model.Class, error)
	Popular(ctx context.Context) ([]*model.Class, error)
	Moderate(ctx context.Context, classID string, action model.ClassStatus) (*model.Class, error)
}

type catalogServiceImpl struct {
	db        *gorm.DB
	logger    *charmlog.Logger
	classRepo repository.ClassRepository
}

func NewCatalogService(
	db *gorm.DB,
	logger *charmlog.Logger,
	classRepo repository.ClassRepository,
) CatalogService {
	return &catalogServiceImpl{
		db:        db,
		logger:    logger,
		classRepo: classRepo,
	}
}

// CreateClass records an instructor submission. New classes always start pending
// with no enrollments.
func (s *catalogServiceImpl) CreateClass(ctx context.Context, instructor model.Instructor, req *dto.CreateClassRequest) (*model.Class, error) {
	if req.Seats < 0 {
		return nil, fmt.Errorf("%w: seats must not be negative", ErrInvalidInput)
	}
	if req.Price.IsNegative() {
		return nil, fmt.Errorf("%w: price must not be negative", ErrInvalidInput)
	}

	class := &model.Class{
		ID:            uuid.NewString(),
		Name:          req.Name,
		Image:         req.Image,
		Instructor:    instructor,
		Seats:         req.Seats,
		EnrolledCount: 0,
		Price:         req.Price,
		Status:        model.ClassStatusPending,
	}
	if err := s.classRepo.Create(ctx, s.db, class); err != nil {
		return nil, persistence("store class", err)
	}

	return class, nil
}

func (s *catalogServiceImpl) ListAll(ctx context.Context) ([]*model.Class, error) {
	classes, err := s.classRepo.List(ctx)
	if err != nil {
		return nil, persistence("list classes", err)
	}
	return classes, nil
}

func (s *catalogServiceImpl) ListApproved(ctx context.Context) ([]*model.Class, error) {
	classes, err := s.classRepo.ListByStatus(ctx, model.ClassStatusApproved)
	if err != nil {
		return nil, persistence("list approved classes", err)
	}
	return classes, nil
}

func (s *catalogServiceImpl) Popular(ctx context.Context) ([]*model.Class, error) {
	classes, err := s.classRepo.Popular(ctx, popularLimit)
	if err != nil {
		return nil, persistence("list popular classes", err)
	}
	return classes, nil
}

// Moderate moves a pending class to approved or denied. Both outcomes are terminal.
func (s *catalogServiceImpl) Moderate(ctx context.Context, classID string, action model.ClassStatus) (*model.Class, error) {
	if action != model.ClassStatusApproved && action != model.ClassStatusDenied {
		return nil, fmt.Errorf("%w: unknown moderation action %q", ErrInvalidInput, action)
	}

	var class *model.Class
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		updated, err := s.classRepo.TransitionStatus(ctx, tx, classID, model.ClassStatusPending, action)
		if err != nil {
			return persistence("update class status", err)
		}

		class, err = s.classRepo.FindByID(ctx, tx, classID)
		if errors.Is(err, repository.ErrNotFound) {
			return fmt.Errorf("%w: class %s", ErrNotFound, classID)
		}
		if err != nil {
			return persistence("load class", err)
		}

		if updated == 0 {
			return fmt.Errorf("%w: class %s is already %s", ErrInvalidTransition, classID, class.Status)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("class moderated", "classId", classID, "status", class.Status)
	return class, nil
}
