package service

import (
	"context"

	"lenscraft-server/internal/model"
	"lenscraft-server/internal/repository"
)

type ViewService interface {
	SelectedClasses(ctx context.Context, email string) ([]*model.SelectedClass, error)
	EnrolledClasses(ctx context.Context, email string) ([]*model.PaymentRecord, error)
}

type viewServiceImpl struct {
	cartRepo    repository.CartRepository
	paymentRepo repository.PaymentRepository
}

func NewViewService(
	cartRepo repository.CartRepository,
	paymentRepo repository.PaymentRepository,
) ViewService {
	return &viewServiceImpl{
		cartRepo:    cartRepo,
		paymentRepo: paymentRepo,
	}
}

func (s *viewServiceImpl) SelectedClasses(ctx context.Context, email string) ([]*model.SelectedClass, error) {
	selected, err := s.cartRepo.ListSelected(ctx, email)
	if err != nil {
		return nil, persistence("list selected classes", err)
	}
	return selected, nil
}

// EnrolledClasses lists purchases newest first.
func (s *viewServiceImpl) EnrolledClasses(ctx context.Context, email string) ([]*model.PaymentRecord, error) {
	enrolled, err := s.paymentRepo.ListEnrolled(ctx, email)
	if err != nil {
		return nil, persistence("list enrolled classes", err)
	}
	return enrolled, nil
}
