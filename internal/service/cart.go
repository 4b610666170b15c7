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

type CartService interface {
	Add(ctx context.Context, req *dto.AddCartItemRequest) (*model.CartItem, error)
	Remove(ctx context.Context, itemID string) (*dto.DeleteResult, error)
}

type cartServiceImpl struct {
	db          *gorm.DB
	logger      *charmlog.Logger
	classRepo   repository.ClassRepository
	cartRepo    repository.CartRepository
	paymentRepo repository.PaymentRepository
}

func NewCartService(
	db *gorm.DB,
	logger *charmlog.Logger,
	classRepo repository.ClassRepository,
	cartRepo repository.CartRepository,
	paymentRepo repository.PaymentRepository,
) CartService {
	return &cartServiceImpl{
		db:          db,
		logger:      logger,
		classRepo:   classRepo,
		cartRepo:    cartRepo,
		paymentRepo: paymentRepo,
	}
}

// Add admits a class into the user's cart. The class must be approved, not yet
// purchased by the user and not already in the user's cart. The last rule is
// enforced by the store's unique index, so two racing adds cannot both win.
func (s *cartServiceImpl) Add(ctx context.Context, req *dto.AddCartItemRequest) (*model.CartItem, error) {
	if req.Price.IsNegative() {
		return nil, fmt.Errorf("%w: price must not be negative", ErrInvalidInput)
	}

	item := &model.CartItem{
		ID:         uuid.NewString(),
		ClassID:    req.ClassID,
		Email:      req.Email,
		Name:       req.Name,
		Image:      req.Image,
		Price:      req.Price,
		Instructor: req.Instructor.Model(),
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		class, err := s.classRepo.FindByID(ctx, tx, req.ClassID)
		if errors.Is(err, repository.ErrNotFound) {
			return fmt.Errorf("%w: class %s", ErrNotFound, req.ClassID)
		}
		if err != nil {
			return persistence("load class", err)
		}
		if class.Status != model.ClassStatusApproved {
			return fmt.Errorf("%w: class %s is not open for enrollment", ErrNotFound, req.ClassID)
		}

		purchased, err := s.paymentRepo.Exists(ctx, tx, req.ClassID, req.Email)
		if err != nil {
			return persistence("check payments", err)
		}
		if purchased {
			return fmt.Errorf("%w: %s course is already purchased", ErrConflict, displayName(req.Name, class))
		}

		err = s.cartRepo.Create(ctx, tx, item)
		if errors.Is(err, repository.ErrDuplicate) {
			return fmt.Errorf("%w: %s is already added", ErrConflict, displayName(req.Name, class))
		}
		if err != nil {
			return persistence("store cart item", err)
		}
		return nil
	})
	if err != nil {
		s.logger.Debug("cart add rejected", "email", req.Email, "classId", req.ClassID, "err", err)
		return nil, err
	}

	return item, nil
}

// Remove deletes a cart row. Removing a row that does not exist succeeds with zero deletions.
func (s *cartServiceImpl) Remove(ctx context.Context, itemID string) (*dto.DeleteResult, error) {
	deleted, err := s.cartRepo.Delete(ctx, s.db, itemID)
	if err != nil {
		return nil, persistence("delete cart item", err)
	}

	return &dto.DeleteResult{DeletedCount: deleted}, nil
}

func displayName(requested string, class *model.Class) string {
	if requested != "" {
		return requested
	}
	return class.Name
}
