package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	charmlog "github.com/charmbracelet/log"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"lenscraft-server/internal/dto"
	"lenscraft-server/internal/model"
	"lenscraft-server/internal/repository"
)

type EnrollmentService interface {
	Enroll(ctx context.Context, req *dto.SavePaymentRequest) (*dto.SavePaymentResponse, error)
}

type enrollmentServiceImpl struct {
	db          *gorm.DB
	logger      *charmlog.Logger
	now         func() time.Time
	classRepo   repository.ClassRepository
	cartRepo    repository.CartRepository
	paymentRepo repository.PaymentRepository
}

func NewEnrollmentService(
	db *gorm.DB,
	logger *charmlog.Logger,
	classRepo repository.ClassRepository,
	cartRepo repository.CartRepository,
	paymentRepo repository.PaymentRepository,
) EnrollmentService {
	return &enrollmentServiceImpl{
		db:          db,
		logger:      logger,
		now:         time.Now,
		classRepo:   classRepo,
		cartRepo:    cartRepo,
		paymentRepo: paymentRepo,
	}
}

// Enroll converts a paid cart item into a payment record and takes one seat on the class.
// The ledger insert, the cart delete and the seat increment commit together or not at all.
func (s *enrollmentServiceImpl) Enroll(ctx context.Context, req *dto.SavePaymentRequest) (*dto.SavePaymentResponse, error) {
	if req.PaymentAmount.IsNegative() {
		return nil, fmt.Errorf("%w: payment amount must not be negative", ErrInvalidInput)
	}

	record := &model.PaymentRecord{
		ID:            uuid.NewString(),
		Email:         req.Email,
		ClassID:       req.ClassID,
		PaymentAmount: req.PaymentAmount,
		TransactionID: req.TransactionID,
		Date:          s.now().UTC(),
	}
	resp := &dto.SavePaymentResponse{Result: record}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := s.paymentRepo.Create(ctx, tx, record)
		switch {
		case errors.Is(err, repository.ErrDuplicate):
			return fmt.Errorf("%w: payment for class %s is already recorded", ErrConflict, req.ClassID)
		case errors.Is(err, repository.ErrForeignKey):
			return fmt.Errorf("%w: class %s", ErrNotFound, req.ClassID)
		case err != nil:
			return persistence("store payment", err)
		}

		deleted, err := s.cartRepo.DeleteOwned(ctx, tx, req.CartItemID, req.Email, req.ClassID)
		if err != nil {
			return persistence("delete cart item", err)
		}
		if deleted == 0 {
			return fmt.Errorf("%w: cart item %s", ErrNotFound, req.CartItemID)
		}
		resp.DeleteResult = dto.DeleteResult{DeletedCount: deleted}

		updated, err := s.classRepo.IncrementEnrolled(ctx, tx, req.ClassID)
		if err != nil {
			return persistence("increment enrolled count", err)
		}

		class, err := s.classRepo.FindByID(ctx, tx, req.ClassID)
		if errors.Is(err, repository.ErrNotFound) {
			return fmt.Errorf("%w: class %s", ErrNotFound, req.ClassID)
		}
		if err != nil {
			return persistence("load class", err)
		}
		if updated == 0 {
			return fmt.Errorf("%w: class %s", ErrClassFull, req.ClassID)
		}

		resp.UpdateResult = dto.UpdateResult{
			MatchedCount:  updated,
			ModifiedCount: updated,
			EnrolledCount: class.EnrolledCount,
		}
		return nil
	})
	if err != nil {
		s.logger.Warn("enrollment rolled back",
			"email", req.Email,
			"classId", req.ClassID,
			"cartItemId", req.CartItemID,
			"err", err,
		)
		return nil, err
	}

	s.logger.Info("enrollment committed",
		"email", req.Email,
		"classId", req.ClassID,
		"transactionId", req.TransactionID,
		"enrolledCount", resp.UpdateResult.EnrolledCount,
	)
	return resp, nil
}
