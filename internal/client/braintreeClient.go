package client

import (
	"context"
	"fmt"

	"github.com/braintree-go/braintree-go"
	"github.com/shopspring/decimal"

	"lenscraft-server/internal/config"
)

// --- INTERFACE ---

// PaymentIntent is what the checkout page needs to collect a card for a given amount.
type PaymentIntent struct {
	ClientSecret string
	Amount       int64 // minor units
	Currency     string
}

type PaymentGateway interface {
	// CreatePaymentIntent prepares the processor for a charge of amount (major units)
	CreatePaymentIntent(ctx context.Context, amount decimal.Decimal, currency string) (*PaymentIntent, error)
}

// --- IMPLEMENTATION ---

type braintreeClientImpl struct {
	gateway *braintree.Braintree
}

// NewBraintreeClient initializes the Braintree SDK gateway
func NewBraintreeClient(cfg *config.Braintree) PaymentGateway {
	env := braintree.Sandbox
	if cfg.Environment == "production" {
		env = braintree.Production
	}

	gateway := braintree.New(
		env,
		cfg.MerchantID,
		cfg.PublicKey,
		cfg.PrivateKey,
	)

	return &braintreeClientImpl{
		gateway: gateway,
	}
}

// ToMinorUnits converts a price such as 12.345 into cents, rounding half away from zero.
func ToMinorUnits(amount decimal.Decimal) int64 {
	return amount.Mul(decimal.NewFromInt(100)).Round(0).IntPart()
}

func (c *braintreeClientImpl) CreatePaymentIntent(ctx context.Context, amount decimal.Decimal, currency string) (*PaymentIntent, error) {
	token, err := c.gateway.ClientToken().Generate(ctx)
	if err != nil {
		return nil, fmt.Errorf("generate client token: %w", err)
	}

	return &PaymentIntent{
		ClientSecret: token,
		Amount:       ToMinorUnits(amount),
		Currency:     currency,
	}, nil
}
