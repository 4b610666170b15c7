package service

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"lenscraft-server/internal/client"
)

type PaymentService interface {
	CreateIntent(ctx context.Context, price decimal.Decimal) (*client.PaymentIntent, error)
}

type paymentServiceImpl struct {
	gateway  client.PaymentGateway
	currency string
}

func NewPaymentService(gateway client.PaymentGateway, currency string) PaymentService {
	return &paymentServiceImpl{
		gateway:  gateway,
		currency: currency,
	}
}

func (s *paymentServiceImpl) CreateIntent(ctx context.Context, price decimal.Decimal) (*client.PaymentIntent, error) {
	if !price.IsPositive() {
		return nil, fmt.Errorf("%w: price must be positive", ErrInvalidInput)
	}

	intent, err := s.gateway.CreatePaymentIntent(ctx, price, s.currency)
	if err != nil {
		return nil, fmt.Errorf("payment gateway: %w", err)
	}
	return intent, nil
}
